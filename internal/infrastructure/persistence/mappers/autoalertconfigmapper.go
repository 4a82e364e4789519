package mappers

import (
	"vigia/internal/domain/autoalert"
	"vigia/internal/infrastructure/persistence/models"
	"vigia/internal/shared/biztime"
)

type AutoAlertConfigMapper interface {
	ToModel(c *autoalert.Config) *models.AutoAlertConfigModel
	ToDomain(model *models.AutoAlertConfigModel) (*autoalert.Config, error)
}

type AutoAlertConfigMapperImpl struct{}

func NewAutoAlertConfigMapper() AutoAlertConfigMapper {
	return &AutoAlertConfigMapperImpl{}
}

func (m *AutoAlertConfigMapperImpl) ToModel(c *autoalert.Config) *models.AutoAlertConfigModel {
	return &models.AutoAlertConfigModel{
		ID:              c.ID(),
		Enabled:         c.Enabled(),
		IntervalMinutes: c.IntervalMinutes(),
		UpdatedAt:       biztime.ToWall(c.UpdatedAt()),
	}
}

func (m *AutoAlertConfigMapperImpl) ToDomain(model *models.AutoAlertConfigModel) (*autoalert.Config, error) {
	return autoalert.ReconstructConfig(
		model.ID,
		model.Enabled,
		model.IntervalMinutes,
		biztime.FromWall(model.UpdatedAt),
	)
}
