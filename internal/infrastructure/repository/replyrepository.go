package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"vigia/internal/domain/reply"
	"vigia/internal/infrastructure/persistence/mappers"
	"vigia/internal/infrastructure/persistence/models"
	"vigia/internal/shared/db"
)

type ReplyRepository struct {
	db     *gorm.DB
	mapper mappers.ReplyMapper
}

func NewReplyRepository(db *gorm.DB) *ReplyRepository {
	return &ReplyRepository{
		db:     db,
		mapper: mappers.NewReplyMapper(),
	}
}

func (r *ReplyRepository) Save(ctx context.Context, entry *reply.Reply) error {
	model := r.mapper.ToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save reply: %w", err)
	}

	return entry.SetID(model.ID)
}

func (r *ReplyRepository) ListRecent(ctx context.Context, limit int) ([]*reply.Reply, error) {
	var modelList []models.ReplyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("received_at DESC, id DESC").Limit(limit).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}

	replies := make([]*reply.Reply, 0, len(modelList))
	for i := range modelList {
		entry, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		replies = append(replies, entry)
	}
	return replies, nil
}
