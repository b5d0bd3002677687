package mappers

import (
	"fmt"

	"github.com/estatedesk/estatedesk/internal/domain/jobcard"
	vo "github.com/estatedesk/estatedesk/internal/domain/jobcard/valueobjects"
	"github.com/estatedesk/estatedesk/internal/infrastructure/persistence/models"
	"github.com/estatedesk/estatedesk/internal/shared/biztime"
)

// JobCardMapper handles the conversion between job card entities and persistence models.
type JobCardMapper interface {
	ToModel(j *jobcard.JobCard) *models.JobCardModel
	ToDomain(model *models.JobCardModel) (*jobcard.JobCard, error)
	ToDomainList(list []models.JobCardModel) ([]*jobcard.JobCard, error)

	SignoffToModel(s *jobcard.Signoff) *models.JobCardSignoffModel
	SignoffToDomain(model *models.JobCardSignoffModel) *jobcard.Signoff

	MediaToModel(m *jobcard.Media) *models.JobCardMediaModel
	MediaToDomain(model *models.JobCardMediaModel) *jobcard.Media
}

type JobCardMapperImpl struct{}

func NewJobCardMapper() JobCardMapper {
	return &JobCardMapperImpl{}
}

func (m *JobCardMapperImpl) ToModel(j *jobcard.JobCard) *models.JobCardModel {
	model := &models.JobCardModel{
		ID:            j.ID(),
		TicketID:      j.TicketID(),
		PropertyID:    j.PropertyID(),
		Unit:          j.Unit(),
		CreatedBy:     j.CreatedBy(),
		AssignedTo:    j.AssignedTo(),
		Title:         j.Title(),
		Description:   j.Description(),
		Activities:    j.Activities(),
		EstimatedCost: j.EstimatedCost(),
		ActualCost:    j.ActualCost(),
		Status:        j.Status().String(),
		TokenIssuedAt: utcPtr(j.TokenIssuedAt()),
		CompletedAt:   utcPtr(j.CompletedAt()),
		CreatedAt:     utc(j.CreatedAt()),
		UpdatedAt:     utc(j.UpdatedAt()),
	}
	if token := j.PublicToken(); token != "" {
		model.PublicToken = &token
	}
	return model
}

func (m *JobCardMapperImpl) ToDomain(model *models.JobCardModel) (*jobcard.JobCard, error) {
	if model == nil {
		return nil, nil
	}

	token := ""
	if model.PublicToken != nil {
		token = *model.PublicToken
	}

	j, err := jobcard.ReconstructJobCard(
		model.ID,
		jobcard.Draft{
			TicketID:      model.TicketID,
			PropertyID:    model.PropertyID,
			Unit:          model.Unit,
			CreatedBy:     model.CreatedBy,
			AssignedTo:    model.AssignedTo,
			Title:         model.Title,
			Description:   model.Description,
			Activities:    model.Activities,
			EstimatedCost: model.EstimatedCost,
		},
		model.ActualCost,
		vo.JobCardStatus(model.Status),
		token,
		optionalTime(model.TokenIssuedAt),
		model.SignoffCount,
		biztime.In(model.CreatedAt),
		biztime.In(model.UpdatedAt),
		optionalTime(model.CompletedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct job card %d: %w", model.ID, err)
	}
	return j, nil
}

func (m *JobCardMapperImpl) ToDomainList(list []models.JobCardModel) ([]*jobcard.JobCard, error) {
	cards := make([]*jobcard.JobCard, 0, len(list))
	for i := range list {
		j, err := m.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		cards = append(cards, j)
	}
	return cards, nil
}

func (m *JobCardMapperImpl) SignoffToModel(s *jobcard.Signoff) *models.JobCardSignoffModel {
	return &models.JobCardSignoffModel{
		ID:         s.ID(),
		JobCardID:  s.JobCardID(),
		SignerName: s.SignerName(),
		Role:       s.Role(),
		Notes:      s.Notes(),
		Signature:  s.Signature(),
		CreatedAt:  utc(s.CreatedAt()),
	}
}

func (m *JobCardMapperImpl) SignoffToDomain(model *models.JobCardSignoffModel) *jobcard.Signoff {
	return jobcard.ReconstructSignoff(
		model.ID,
		model.JobCardID,
		model.SignerName,
		model.Role,
		model.Notes,
		model.Signature,
		biztime.In(model.CreatedAt),
	)
}

func (m *JobCardMapperImpl) MediaToModel(md *jobcard.Media) *models.JobCardMediaModel {
	return &models.JobCardMediaModel{
		ID:                  md.ID(),
		JobCardID:           md.JobCardID(),
		SourceTicketMediaID: md.SourceTicketMediaID(),
		FileName:            md.FileName(),
		ContentType:         md.ContentType(),
		Data:                md.Data(),
		CreatedAt:           utc(md.CreatedAt()),
	}
}

func (m *JobCardMapperImpl) MediaToDomain(model *models.JobCardMediaModel) *jobcard.Media {
	return jobcard.ReconstructMedia(
		model.ID,
		model.JobCardID,
		model.SourceTicketMediaID,
		model.FileName,
		model.ContentType,
		model.Data,
		biztime.In(model.CreatedAt),
	)
}
