package mappers

import (
	"fmt"

	"github.com/estatedesk/estatedesk/internal/domain/ticket"
	vo "github.com/estatedesk/estatedesk/internal/domain/ticket/valueobjects"
	"github.com/estatedesk/estatedesk/internal/infrastructure/persistence/models"
	"github.com/estatedesk/estatedesk/internal/shared/biztime"
)

// TicketMapper handles the conversion between ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	ToDomainList(list []models.TicketModel) ([]*ticket.Ticket, error)

	UpdateToModel(u *ticket.Update) *models.TicketUpdateModel
	UpdateToDomain(model *models.TicketUpdateModel) *ticket.Update

	ReassignmentToModel(r *ticket.Reassignment) *models.AdminChangeLogModel
	ReassignmentToDomain(model *models.AdminChangeLogModel) *ticket.Reassignment

	MediaToModel(m *ticket.Media) *models.TicketMediaModel
	MediaToDomain(model *models.TicketMediaModel) *ticket.Media
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:              t.ID(),
		UserID:          t.UserID(),
		Description:     t.Description(),
		Category:        t.Category().String(),
		Status:          t.Status().String(),
		PropertyID:      t.PropertyID(),
		AssignedAdminID: t.AssignedAdminID(),
		DueDate:         utcPtr(t.DueDate()),
		IsRead:          t.IsRead(),
		ResolvedAt:      utcPtr(t.ResolvedAt()),
		CreatedAt:       utc(t.CreatedAt()),
		UpdatedAt:       utc(t.UpdatedAt()),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	// Unknown stored labels load as Other.
	category, err := vo.NewCategory(model.Category)
	if err != nil {
		category = vo.CategoryOther
	}

	t, err := ticket.ReconstructTicket(
		model.ID,
		model.UserID,
		model.Description,
		category,
		vo.TicketStatus(model.Status),
		model.PropertyID,
		model.AssignedAdminID,
		optionalTime(model.DueDate),
		model.IsRead,
		biztime.In(model.CreatedAt),
		optionalTime(model.ResolvedAt),
		biztime.In(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket %d: %w", model.ID, err)
	}
	return t, nil
}

func (m *TicketMapperImpl) ToDomainList(list []models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(list))
	for i := range list {
		t, err := m.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func (m *TicketMapperImpl) UpdateToModel(u *ticket.Update) *models.TicketUpdateModel {
	return &models.TicketUpdateModel{
		ID:        u.ID(),
		TicketID:  u.TicketID(),
		Text:      u.Text(),
		Author:    u.Author(),
		CreatedAt: utc(u.CreatedAt()),
	}
}

func (m *TicketMapperImpl) UpdateToDomain(model *models.TicketUpdateModel) *ticket.Update {
	return ticket.ReconstructUpdate(model.ID, model.TicketID, model.Text, model.Author, biztime.In(model.CreatedAt))
}

func (m *TicketMapperImpl) ReassignmentToModel(r *ticket.Reassignment) *models.AdminChangeLogModel {
	return &models.AdminChangeLogModel{
		ID:            r.ID(),
		TicketID:      r.TicketID(),
		OldAdminID:    r.OldAdminID(),
		NewAdminID:    r.NewAdminID(),
		Actor:         r.Actor(),
		Reason:        r.Reason(),
		ReassignCount: r.ReassignCount(),
		Override:      r.Override(),
		CreatedAt:     utc(r.CreatedAt()),
	}
}

func (m *TicketMapperImpl) ReassignmentToDomain(model *models.AdminChangeLogModel) *ticket.Reassignment {
	return ticket.ReconstructReassignment(
		model.ID,
		model.TicketID,
		model.OldAdminID,
		model.NewAdminID,
		model.Actor,
		model.Reason,
		model.ReassignCount,
		model.Override,
		biztime.In(model.CreatedAt),
	)
}

func (m *TicketMapperImpl) MediaToModel(md *ticket.Media) *models.TicketMediaModel {
	return &models.TicketMediaModel{
		ID:          md.ID(),
		TicketID:    md.TicketID(),
		FileName:    md.FileName(),
		ContentType: md.ContentType(),
		Data:        md.Data(),
		CreatedAt:   utc(md.CreatedAt()),
	}
}

func (m *TicketMapperImpl) MediaToDomain(model *models.TicketMediaModel) *ticket.Media {
	return ticket.ReconstructMedia(
		model.ID,
		model.TicketID,
		model.FileName,
		model.ContentType,
		model.Data,
		biztime.In(model.CreatedAt),
	)
}
