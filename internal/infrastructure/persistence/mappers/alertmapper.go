package mappers

import (
	"time"

	"vigia/internal/domain/alert"
	vo "vigia/internal/domain/alert/valueobjects"
	"vigia/internal/infrastructure/persistence/models"
	"vigia/internal/shared/biztime"
)

// AlertMapper handles the conversion between Alert domain entities and persistence models.
type AlertMapper interface {
	ToModel(a *alert.Alert) *models.AlertModel
	ToDomain(model *models.AlertModel) (*alert.Alert, error)
}

type AlertMapperImpl struct{}

func NewAlertMapper() AlertMapper {
	return &AlertMapperImpl{}
}

// ToModel re-tags every timestamp as a UTC-labeled wall time so the stored
// DATETIME value carries the civil clock reading verbatim.
func (m *AlertMapperImpl) ToModel(a *alert.Alert) *models.AlertModel {
	d := a.Descriptor()
	model := &models.AlertModel{
		ID:              a.ID(),
		Recipient:       a.Recipient(),
		Description:     a.Description(),
		MessageID:       a.MessageID(),
		ETAText:         a.ETAText(),
		ETAAt:           wallPtr(a.ETAAt()),
		OperatingStatus: string(a.OperatingStatus()),
		ResponsibleName: a.ResponsibleName(),
		Justification:   a.Justification(),
		Code:            d.Code,
		Unit:            d.Unit,
		Front:           d.Front,
		Equipment:       d.Equipment,
		EquipmentCode:   d.EquipmentCode,
		OperationType:   d.OperationType,
		Operation:       d.Operation,
		OperatorName:    d.OperatorName,
		OperationDate:   wallPtr(d.OperationDate),
		OpenDuration:    d.OpenDuration,
		TreeType:        d.TreeType,
		CreatedAt:       biztime.ToWall(a.CreatedAt()),
		AnsweredAt:      wallPtr(a.AnsweredAt()),
		OperatingSince:  wallPtr(a.OperatingSince()),
	}
	if from := a.ClosedFrom(); from != nil {
		model.ClosedFrom = string(*from)
	}
	return model
}

// ToDomain rebuilds the entity. Every scanned timestamp goes through
// biztime.FromWall: the DATETIME columns hold civil wall times, and the
// driver hands them back tagged with whatever session location it was
// configured with.
func (m *AlertMapperImpl) ToDomain(model *models.AlertModel) (*alert.Alert, error) {
	status, err := vo.NewOperatingStatus(model.OperatingStatus)
	if err != nil {
		return nil, err
	}

	var closedFrom *vo.Bucket
	if model.ClosedFrom != "" {
		bucket, err := vo.NewBucket(model.ClosedFrom)
		if err != nil {
			return nil, err
		}
		closedFrom = &bucket
	}

	return alert.ReconstructAlert(
		model.ID,
		model.Recipient,
		model.Description,
		model.MessageID,
		model.ETAText,
		civilPtr(model.ETAAt),
		status,
		model.ResponsibleName,
		model.Justification,
		alert.Descriptor{
			Code:          model.Code,
			Unit:          model.Unit,
			Front:         model.Front,
			Equipment:     model.Equipment,
			EquipmentCode: model.EquipmentCode,
			OperationType: model.OperationType,
			Operation:     model.Operation,
			OperatorName:  model.OperatorName,
			OperationDate: civilPtr(model.OperationDate),
			OpenDuration:  model.OpenDuration,
			TreeType:      model.TreeType,
		},
		biztime.FromWall(model.CreatedAt),
		civilPtr(model.AnsweredAt),
		civilPtr(model.OperatingSince),
		closedFrom,
	)
}

func civilPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	civil := biztime.FromWall(*t)
	return &civil
}

func wallPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	wall := biztime.ToWall(*t)
	return &wall
}
