package reply

import "context"

type ReplyRepository interface {
	Save(ctx context.Context, r *Reply) error
	// ListRecent returns the newest entries first, at most limit of them.
	ListRecent(ctx context.Context, limit int) ([]*Reply, error)
}
