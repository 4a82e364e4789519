package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vigia/internal/domain/alert"
	"vigia/internal/infrastructure/persistence/mappers"
	"vigia/internal/infrastructure/persistence/models"
	"vigia/internal/shared/db"
)

type AlertRepository struct {
	db     *gorm.DB
	mapper mappers.AlertMapper
}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{
		db:     db,
		mapper: mappers.NewAlertMapper(),
	}
}

func (r *AlertRepository) Save(ctx context.Context, a *alert.Alert) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save alert: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AlertRepository) Update(ctx context.Context, a *alert.Alert) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AlertModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update alert: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

// FindByID returns (nil, nil) when no alert has the given id.
func (r *AlertRepository) FindByID(ctx context.Context, id uint) (*alert.Alert, error) {
	var model models.AlertModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find alert: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AlertRepository) ListAll(ctx context.Context) ([]*alert.Alert, error) {
	var modelList []models.AlertModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("created_at DESC, id DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	alerts := make([]*alert.Alert, 0, len(modelList))
	for i := range modelList {
		a, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, nil
}

// FindOldestUnansweredForUpdate claims the head of the reply queue. Inside a
// transaction on MySQL the row is locked until commit, so two concurrent
// replies cannot both claim it. SQLite serializes writers on its own and
// rejects FOR UPDATE, so the locking clause is only added on MySQL.
func (r *AlertRepository) FindOldestUnansweredForUpdate(ctx context.Context) (*alert.Alert, error) {
	var model models.AlertModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.
		Where("eta_at IS NULL").
		Order("created_at ASC, id ASC")
	if tx.Dialector.Name() == "mysql" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	if err := query.First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find unanswered alert: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AlertRepository) CountUnanswered(ctx context.Context) (int64, error) {
	return r.countWhere(ctx, "eta_at IS NULL")
}

func (r *AlertRepository) CountAnswered(ctx context.Context) (int64, error) {
	return r.countWhere(ctx, "eta_at IS NOT NULL")
}

func (r *AlertRepository) Count(ctx context.Context) (int64, error) {
	return r.countWhere(ctx, "")
}

func (r *AlertRepository) countWhere(ctx context.Context, cond string) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.AlertModel{})
	if cond != "" {
		tx = tx.Where(cond)
	}
	if err := tx.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count alerts: %w", err)
	}
	return count, nil
}

func (r *AlertRepository) DeleteAll(ctx context.Context) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("1 = 1").Delete(&models.AlertModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete alerts: %w", err)
	}
	return nil
}
