package mappers

import (
	"vigia/internal/domain/reply"
	"vigia/internal/infrastructure/persistence/models"
	"vigia/internal/shared/biztime"
)

type ReplyMapper interface {
	ToModel(r *reply.Reply) *models.ReplyModel
	ToDomain(model *models.ReplyModel) (*reply.Reply, error)
}

type ReplyMapperImpl struct{}

func NewReplyMapper() ReplyMapper {
	return &ReplyMapperImpl{}
}

func (m *ReplyMapperImpl) ToModel(r *reply.Reply) *models.ReplyModel {
	return &models.ReplyModel{
		ID:         r.ID(),
		ChatID:     r.ChatID(),
		SenderName: r.SenderName(),
		Text:       r.Text(),
		Outcome:    string(r.Outcome()),
		AlertID:    r.AlertID(),
		ReceivedAt: biztime.ToWall(r.ReceivedAt()),
	}
}

func (m *ReplyMapperImpl) ToDomain(model *models.ReplyModel) (*reply.Reply, error) {
	return reply.ReconstructReply(
		model.ID,
		model.ChatID,
		model.SenderName,
		model.Text,
		reply.Outcome(model.Outcome),
		model.AlertID,
		biztime.FromWall(model.ReceivedAt),
	)
}
