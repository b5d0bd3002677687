package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/estatedesk/estatedesk/internal/domain/jobcard"
	jobcardvo "github.com/estatedesk/estatedesk/internal/domain/jobcard/valueobjects"
	"github.com/estatedesk/estatedesk/internal/infrastructure/persistence/mappers"
	"github.com/estatedesk/estatedesk/internal/infrastructure/persistence/models"
	"github.com/estatedesk/estatedesk/internal/shared/biztime"
	"github.com/estatedesk/estatedesk/internal/shared/db"
	apperrors "github.com/estatedesk/estatedesk/internal/shared/errors"
)

const jobCardColumns = "job_cards.*, " +
	"(SELECT COUNT(*) FROM job_card_signoffs WHERE job_card_signoffs.job_card_id = job_cards.id) AS signoff_count"

type JobCardRepository struct {
	db     *gorm.DB
	mapper mappers.JobCardMapper
}

func NewJobCardRepository(db *gorm.DB) *JobCardRepository {
	return &JobCardRepository{
		db:     db,
		mapper: mappers.NewJobCardMapper(),
	}
}

func (r *JobCardRepository) query(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Model(&models.JobCardModel{}).
		Select(jobCardColumns)
}

func (r *JobCardRepository) Create(ctx context.Context, j *jobcard.JobCard) error {
	model := r.mapper.ToModel(j)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return jobcard.ErrTicketHasJobCard
		}
		return fmt.Errorf("failed to save job card: %w", err)
	}
	return j.SetID(model.ID)
}

// unlockedCard restricts a write to cards that are not signed off, so a
// signoff committed after the caller read the card still wins.
const unlockedCard = "status <> ? AND NOT EXISTS " +
	"(SELECT 1 FROM job_card_signoffs WHERE job_card_signoffs.job_card_id = job_cards.id)"

// Update writes the editable columns. The public token is only ever set by
// SetPublicTokenIfEmpty.
func (r *JobCardRepository) Update(ctx context.Context, j *jobcard.JobCard) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ToModel(j)
	result := tx.Model(&models.JobCardModel{ID: model.ID}).
		Where(unlockedCard, jobcardvo.StatusSignedOff.String()).
		Select("*").
		Omit("id", "ticket_id", "created_at", "public_token", "token_issued_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update job card: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// MySQL reports zero rows when nothing changed; tell that apart from a lock.
	current, err := r.GetByID(ctx, j.ID())
	if err != nil {
		return err
	}
	if current.IsLocked() {
		return jobcard.ErrLocked
	}
	return nil
}

func (r *JobCardRepository) MarkSignedOff(ctx context.Context, j *jobcard.JobCard) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.JobCardModel{}).
		Where("id = ?", j.ID()).
		UpdateColumns(map[string]any{
			"status":     jobcardvo.StatusSignedOff.String(),
			"updated_at": j.UpdatedAt().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark job card signed off: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("job card not found")
	}
	return nil
}

func (r *JobCardRepository) GetByID(ctx context.Context, id uint) (*jobcard.JobCard, error) {
	return r.get(r.query(ctx), id)
}

func (r *JobCardRepository) GetByIDForUpdate(ctx context.Context, id uint) (*jobcard.JobCard, error) {
	return r.get(r.query(ctx).Scopes(db.ForUpdate()), id)
}

func (r *JobCardRepository) get(query *gorm.DB, id uint) (*jobcard.JobCard, error) {
	var model models.JobCardModel
	if err := query.Where("job_cards.id = ?", id).Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("job card not found")
		}
		return nil, fmt.Errorf("failed to find job card: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *JobCardRepository) GetByTicketID(ctx context.Context, ticketID uint) (*jobcard.JobCard, error) {
	var list []models.JobCardModel
	if err := r.query(ctx).Where("job_cards.ticket_id = ?", ticketID).Limit(1).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to find job card by ticket: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return r.mapper.ToDomain(&list[0])
}

func (r *JobCardRepository) SetPublicTokenIfEmpty(ctx context.Context, j *jobcard.JobCard) (string, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	issuedAt := biztime.Now()
	if j.TokenIssuedAt() != nil {
		issuedAt = *j.TokenIssuedAt()
	}
	if err := tx.Model(&models.JobCardModel{}).
		Where("id = ? AND public_token IS NULL", j.ID()).
		UpdateColumns(map[string]any{
			"public_token":    j.PublicToken(),
			"token_issued_at": issuedAt.UTC(),
		}).Error; err != nil {
		return "", fmt.Errorf("failed to store public token: %w", err)
	}

	var stored models.JobCardModel
	if err := tx.Select("public_token").Where("id = ?", j.ID()).Take(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.NewNotFoundError("job card not found")
		}
		return "", fmt.Errorf("failed to reload public token: %w", err)
	}
	if stored.PublicToken == nil {
		return "", fmt.Errorf("public token missing after update")
	}
	return *stored.PublicToken, nil
}

func (r *JobCardRepository) List(ctx context.Context, filter jobcard.Filter) ([]*jobcard.JobCard, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.JobCardModel{})

	if filter.Status != nil {
		query = query.Where("job_cards.status = ?", filter.Status.String())
	}
	if filter.PropertyID != nil {
		query = query.Where("job_cards.property_id = ?", *filter.PropertyID)
	}
	if filter.AssignedTo != nil {
		query = query.Where("job_cards.assigned_to = ?", *filter.AssignedTo)
	}
	if filter.TicketID != nil {
		query = query.Where("job_cards.ticket_id = ?", *filter.TicketID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count job cards: %w", err)
	}

	var list []models.JobCardModel
	if err := query.
		Select(jobCardColumns).
		Order("job_cards.created_at DESC, job_cards.id DESC").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list job cards: %w", err)
	}

	cards, err := r.mapper.ToDomainList(list)
	if err != nil {
		return nil, 0, err
	}
	return cards, total, nil
}

type JobCardSignoffRepository struct {
	db     *gorm.DB
	mapper mappers.JobCardMapper
}

func NewJobCardSignoffRepository(db *gorm.DB) *JobCardSignoffRepository {
	return &JobCardSignoffRepository{db: db, mapper: mappers.NewJobCardMapper()}
}

func (r *JobCardSignoffRepository) Create(ctx context.Context, s *jobcard.Signoff) error {
	model := r.mapper.SignoffToModel(s)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save signoff: %w", err)
	}
	s.SetID(model.ID)
	return nil
}

func (r *JobCardSignoffRepository) ListByJobCard(ctx context.Context, jobCardID uint) ([]*jobcard.Signoff, error) {
	var list []models.JobCardSignoffModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("job_card_id = ?", jobCardID).
		Order("created_at ASC, id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list signoffs: %w", err)
	}
	out := make([]*jobcard.Signoff, 0, len(list))
	for i := range list {
		out = append(out, r.mapper.SignoffToDomain(&list[i]))
	}
	return out, nil
}

type JobCardMediaRepository struct {
	db     *gorm.DB
	mapper mappers.JobCardMapper
}

func NewJobCardMediaRepository(db *gorm.DB) *JobCardMediaRepository {
	return &JobCardMediaRepository{db: db, mapper: mappers.NewJobCardMapper()}
}

func (r *JobCardMediaRepository) Create(ctx context.Context, m *jobcard.Media) error {
	model := r.mapper.MediaToModel(m)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save job card media: %w", err)
	}
	m.SetID(model.ID)
	return nil
}

func (r *JobCardMediaRepository) CopyFromTicket(ctx context.Context, media []*jobcard.Media) (int, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	inserted := 0
	for _, m := range media {
		model := r.mapper.MediaToModel(m)
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(model)
		if result.Error != nil {
			return inserted, fmt.Errorf("failed to copy ticket media: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			continue
		}
		m.SetID(model.ID)
		inserted++
	}
	return inserted, nil
}

func (r *JobCardMediaRepository) ListByJobCard(ctx context.Context, jobCardID uint) ([]*jobcard.Media, error) {
	var list []models.JobCardMediaModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("job_card_id = ?", jobCardID).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list job card media: %w", err)
	}
	out := make([]*jobcard.Media, 0, len(list))
	for i := range list {
		out = append(out, r.mapper.MediaToDomain(&list[i]))
	}
	return out, nil
}

var (
	_ jobcard.Repository        = (*JobCardRepository)(nil)
	_ jobcard.SignoffRepository = (*JobCardSignoffRepository)(nil)
	_ jobcard.MediaRepository   = (*JobCardMediaRepository)(nil)
)
