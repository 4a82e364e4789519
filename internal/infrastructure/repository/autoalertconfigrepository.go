package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"vigia/internal/domain/autoalert"
	"vigia/internal/infrastructure/persistence/mappers"
	"vigia/internal/infrastructure/persistence/models"
	"vigia/internal/shared/biztime"
	"vigia/internal/shared/db"
)

type AutoAlertConfigRepository struct {
	db     *gorm.DB
	mapper mappers.AutoAlertConfigMapper
}

func NewAutoAlertConfigRepository(db *gorm.DB) *AutoAlertConfigRepository {
	return &AutoAlertConfigRepository{
		db:     db,
		mapper: mappers.NewAutoAlertConfigMapper(),
	}
}

// Get returns the single configuration row, inserting the defaults on first
// access.
func (r *AutoAlertConfigRepository) Get(ctx context.Context) (*autoalert.Config, error) {
	var model models.AutoAlertConfigModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Order("id ASC").First(&model).Error
	if err == gorm.ErrRecordNotFound {
		return r.createDefault(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load auto alert config: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AutoAlertConfigRepository) Update(ctx context.Context, c *autoalert.Config) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AutoAlertConfigModel{}).
		Where("id = ?", model.ID).
		Select("enabled", "interval_minutes", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update auto alert config: %w", result.Error)
	}
	return nil
}

func (r *AutoAlertConfigRepository) createDefault(ctx context.Context) (*autoalert.Config, error) {
	cfg, err := autoalert.NewConfig(false, autoalert.DefaultIntervalMinutes, biztime.Now())
	if err != nil {
		return nil, err
	}

	model := r.mapper.ToModel(cfg)
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to create default auto alert config: %w", err)
	}
	if err := cfg.SetID(model.ID); err != nil {
		return nil, err
	}
	return cfg, nil
}
