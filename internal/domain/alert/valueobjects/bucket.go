package valueobjects

import "fmt"

// Bucket is one of the four mutually exclusive display categories an alert
// occupies at a given instant. Buckets are derived live from stored fields
// and wall-clock time; they are never persisted as the current state.
type Bucket string

const (
	BucketPending   Bucket = "pending"
	BucketEscalated Bucket = "escalated"
	BucketOverdue   Bucket = "overdue"
	BucketClosed    Bucket = "closed"
)

var validBuckets = map[Bucket]bool{
	BucketPending:   true,
	BucketEscalated: true,
	BucketOverdue:   true,
	BucketClosed:    true,
}

func (b Bucket) String() string {
	return string(b)
}

func (b Bucket) IsValid() bool {
	return validBuckets[b]
}

func NewBucket(v string) (Bucket, error) {
	b := Bucket(v)
	if !b.IsValid() {
		return "", fmt.Errorf("invalid bucket: %s", v)
	}
	return b, nil
}
