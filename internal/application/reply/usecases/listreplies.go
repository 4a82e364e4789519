package usecases

import (
	"context"

	"vigia/internal/application/reply/dto"
	"vigia/internal/domain/reply"
	"vigia/internal/shared/errors"
	"vigia/internal/shared/logger"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

type ListRepliesQuery struct {
	Limit int
}

type ListRepliesExecutor interface {
	Execute(ctx context.Context, query ListRepliesQuery) ([]dto.ReplyDTO, error)
}

type ListRepliesUseCase struct {
	replyRepo reply.ReplyRepository
	logger    logger.Interface
}

func NewListRepliesUseCase(replyRepo reply.ReplyRepository, logger logger.Interface) *ListRepliesUseCase {
	return &ListRepliesUseCase{replyRepo: replyRepo, logger: logger}
}

func (uc *ListRepliesUseCase) Execute(ctx context.Context, query ListRepliesQuery) ([]dto.ReplyDTO, error) {
	limit := query.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	if limit < 0 || limit > maxListLimit {
		return nil, errors.NewValidationError("limit must be between 1 and 500")
	}

	replies, err := uc.replyRepo.ListRecent(ctx, limit)
	if err != nil {
		uc.logger.Errorw("failed to list replies", "error", err)
		return nil, err
	}

	return dto.NewReplyDTOs(replies), nil
}
