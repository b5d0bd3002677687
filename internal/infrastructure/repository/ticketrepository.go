package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/estatedesk/estatedesk/internal/domain/ticket"
	"github.com/estatedesk/estatedesk/internal/infrastructure/persistence/mappers"
	"github.com/estatedesk/estatedesk/internal/infrastructure/persistence/models"
	"github.com/estatedesk/estatedesk/internal/shared/db"
	apperrors "github.com/estatedesk/estatedesk/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("*") writes zero values too: cleared assignees and due dates.
	result := tx.
		Model(&models.TicketModel{ID: model.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return r.get(ctx, db.GetTxFromContext(ctx, r.db), id)
}

func (r *TicketRepository) GetByIDForUpdate(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return r.get(ctx, db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate()), id)
}

func (r *TicketRepository) get(_ context.Context, tx *gorm.DB, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found", ticket.FormatNumber(id))
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.PropertyID != nil {
		query = query.Where("property_id = ?", *filter.PropertyID)
	}
	if filter.AssignedAdminID != nil {
		query = query.Where("assigned_admin_id = ?", *filter.AssignedAdminID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var list []models.TicketModel
	if err := query.
		Order("created_at DESC, id DESC").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets, err := r.mapper.ToDomainList(list)
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

func (r *TicketRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return count, nil
}

// TicketUpdateRepository persists the append-only update log.
type TicketUpdateRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketUpdateRepository(db *gorm.DB) *TicketUpdateRepository {
	return &TicketUpdateRepository{db: db, mapper: mappers.NewTicketMapper()}
}

func (r *TicketUpdateRepository) Create(ctx context.Context, u *ticket.Update) error {
	model := r.mapper.UpdateToModel(u)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket update: %w", err)
	}
	u.SetID(model.ID)
	return nil
}

func (r *TicketUpdateRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Update, error) {
	var list []models.TicketUpdateModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket updates: %w", err)
	}
	out := make([]*ticket.Update, 0, len(list))
	for i := range list {
		out = append(out, r.mapper.UpdateToDomain(&list[i]))
	}
	return out, nil
}

// ReassignmentRepository persists admin change logs.
type ReassignmentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewReassignmentRepository(db *gorm.DB) *ReassignmentRepository {
	return &ReassignmentRepository{db: db, mapper: mappers.NewTicketMapper()}
}

func (r *ReassignmentRepository) Create(ctx context.Context, re *ticket.Reassignment) error {
	model := r.mapper.ReassignmentToModel(re)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save reassignment: %w", err)
	}
	re.SetID(model.ID)
	return nil
}

func (r *ReassignmentRepository) LatestCount(ctx context.Context, ticketID uint) (int, error) {
	var model models.AdminChangeLogModel
	err := db.GetTxFromContext(ctx, r.db).
		Select("reassign_count").
		Where("ticket_id = ?", ticketID).
		Order("created_at DESC, id DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read reassign count: %w", err)
	}
	return model.ReassignCount, nil
}

func (r *ReassignmentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Reassignment, error) {
	var list []models.AdminChangeLogModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list reassignments: %w", err)
	}
	out := make([]*ticket.Reassignment, 0, len(list))
	for i := range list {
		out = append(out, r.mapper.ReassignmentToDomain(&list[i]))
	}
	return out, nil
}

// TicketMediaRepository stores attachments as blobs.
type TicketMediaRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketMediaRepository(db *gorm.DB) *TicketMediaRepository {
	return &TicketMediaRepository{db: db, mapper: mappers.NewTicketMapper()}
}

func (r *TicketMediaRepository) Create(ctx context.Context, m *ticket.Media) error {
	model := r.mapper.MediaToModel(m)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket media: %w", err)
	}
	m.SetID(model.ID)
	return nil
}

func (r *TicketMediaRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Media, error) {
	var list []models.TicketMediaModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id = ?", ticketID).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket media: %w", err)
	}
	out := make([]*ticket.Media, 0, len(list))
	for i := range list {
		out = append(out, r.mapper.MediaToDomain(&list[i]))
	}
	return out, nil
}

var (
	_ ticket.Repository             = (*TicketRepository)(nil)
	_ ticket.UpdateRepository       = (*TicketUpdateRepository)(nil)
	_ ticket.ReassignmentRepository = (*ReassignmentRepository)(nil)
	_ ticket.MediaRepository        = (*TicketMediaRepository)(nil)
)
