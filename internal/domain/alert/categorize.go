package alert

import (
	"sort"
	"time"

	vo "vigia/internal/domain/alert/valueobjects"
)

// Board groups alerts into the four display buckets. Each slice is ordered
// newest-first by creation time.
type Board struct {
	Pending   []*Alert
	Escalated []*Alert
	Overdue   []*Alert
	Closed    []*Alert
}

// Categorize places every alert into exactly one bucket as of the given
// instant. The input order is irrelevant; each bucket comes out sorted by
// creation time descending.
func Categorize(alerts []*Alert, now time.Time) Board {
	board := Board{}
	for _, a := range alerts {
		switch a.Bucket(now) {
		case vo.BucketPending:
			board.Pending = append(board.Pending, a)
		case vo.BucketEscalated:
			board.Escalated = append(board.Escalated, a)
		case vo.BucketOverdue:
			board.Overdue = append(board.Overdue, a)
		case vo.BucketClosed:
			board.Closed = append(board.Closed, a)
		}
	}
	sortNewestFirst(board.Pending)
	sortNewestFirst(board.Escalated)
	sortNewestFirst(board.Overdue)
	sortNewestFirst(board.Closed)
	return board
}

func sortNewestFirst(alerts []*Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].CreatedAt().After(alerts[j].CreatedAt())
	})
}

// Total returns the number of alerts across all buckets.
func (b Board) Total() int {
	return len(b.Pending) + len(b.Escalated) + len(b.Overdue) + len(b.Closed)
}
