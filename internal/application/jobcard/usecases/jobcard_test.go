package usecases

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatedesk/estatedesk/internal/domain/admin"
	"github.com/estatedesk/estatedesk/internal/domain/jobcard"
	vo "github.com/estatedesk/estatedesk/internal/domain/jobcard/valueobjects"
	"github.com/estatedesk/estatedesk/internal/domain/property"
	"github.com/estatedesk/estatedesk/internal/domain/tenant"
	"github.com/estatedesk/estatedesk/internal/domain/ticket"
	ticketvo "github.com/estatedesk/estatedesk/internal/domain/ticket/valueobjects"
	"github.com/estatedesk/estatedesk/internal/shared/authorization"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/id"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func uintPtr(v uint) *uint { return &v }

func newResolvedTicket(t *testing.T) *ticket.Ticket {
	t.Helper()
	resolved := testNow
	tk, err := ticket.ReconstructTicket(12, 7, "Bathroom ceiling leak", ticketvo.CategoryPlumbing, ticketvo.StatusResolved,
		uintPtr(1), uintPtr(2), nil, true, testNow.Add(-48*time.Hour), &resolved, testNow)
	require.NoError(t, err)
	return tk
}

func newSharedCard(t *testing.T, ticketID *uint) *jobcard.JobCard {
	t.Helper()
	issued := testNow
	card, err := jobcard.ReconstructJobCard(5, jobcard.Draft{
		TicketID:    ticketID,
		PropertyID:  uintPtr(1),
		Unit:        "B2",
		AssignedTo:  uintPtr(2),
		Title:       "Ceiling repair",
		Description: "Patch and repaint",
	}, 4500, vo.StatusCompleted, "abc123", &issued, 0, testNow, testNow, nil)
	require.NoError(t, err)
	return card
}

type ensureFixture struct {
	cards *mockJobCardRepo
	media *mockJobCardMediaRepo
	uc    *EnsureForTicketUseCase
}

func newEnsureFixture(t *testing.T) *ensureFixture {
	updates := &mockUpdateRepo{updates: []*ticket.Update{
		ticket.ReconstructUpdate(1, 12, "Plumber inspected roof", "Otieno", testNow.Add(-40*time.Hour)),
		ticket.ReconstructUpdate(2, 12, "Tiles replaced", "Mwangi", testNow.Add(-10*time.Hour)),
	}}
	rows := &mockReassignmentRepo{rows: []*ticket.Reassignment{
		ticket.ReconstructReassignment(1, 12, uintPtr(1), 2, "desk", "roofing skills", 1, false, testNow.Add(-30*time.Hour)),
	}}
	ticketMedia := &mockTicketMediaRepo{items: []*ticket.Media{
		ticket.ReconstructMedia(31, 12, "leak.jpg", "image/jpeg", []byte{1, 2, 3}, testNow),
		ticket.ReconstructMedia(32, 12, "stain.jpg", "image/jpeg", []byte{4, 5}, testNow),
	}}
	tenants := &mockTenantRepo{tenants: map[uint]*tenant.Tenant{
		7: tenant.ReconstructTenant(7, "Jane Wanjiku", "254711000111", uintPtr(1), "B2", testNow, testNow),
	}}

	f := &ensureFixture{cards: newMockJobCardRepo(), media: &mockJobCardMediaRepo{}}
	f.uc = NewEnsureForTicketUseCase(f.cards, f.media,
		&mockTicketRepo{tickets: map[uint]*ticket.Ticket{12: newResolvedTicket(t)}},
		updates, rows, ticketMedia, tenants,
		staticNames{1: "Otieno", 2: "Mwangi"}, fakeTx{}, noopLogger{})
	return f
}

func TestEnsureForTicket_DerivesCardFromTicket(t *testing.T) {
	f := newEnsureFixture(t)

	result, err := f.uc.Execute(context.Background(), EnsureForTicketCommand{TicketID: 12, CopyMedia: true})

	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, 2, result.MediaCopied)

	card, err := f.cards.GetByID(context.Background(), result.JobCardID)
	require.NoError(t, err)
	require.NotNil(t, card.TicketID())
	assert.Equal(t, uint(12), *card.TicketID())
	assert.Equal(t, uint(1), *card.PropertyID())
	assert.Equal(t, "B2", card.Unit())
	assert.Equal(t, "Bathroom ceiling leak", card.Description())
	assert.Equal(t, vo.StatusOpen, card.Status())

	activities := card.Activities()
	first := strings.Index(activities, "Plumber inspected roof")
	reassign := strings.Index(activities, "[REASSIGN]")
	second := strings.Index(activities, "Tiles replaced")
	require.True(t, first >= 0 && reassign >= 0 && second >= 0, activities)
	assert.Less(t, first, reassign)
	assert.Less(t, reassign, second)
	assert.Contains(t, activities, "Reassigned from Otieno to Mwangi")

	require.Len(t, f.media.items, 2)
	assert.Equal(t, uint(31), *f.media.items[0].SourceTicketMediaID())
}

func TestEnsureForTicket_Idempotent(t *testing.T) {
	f := newEnsureFixture(t)

	first, err := f.uc.Execute(context.Background(), EnsureForTicketCommand{TicketID: 12, CopyMedia: true})
	require.NoError(t, err)
	second, err := f.uc.Execute(context.Background(), EnsureForTicketCommand{TicketID: 12, CopyMedia: true})
	require.NoError(t, err)

	assert.Equal(t, first.JobCardID, second.JobCardID)
	assert.False(t, second.Created)
	assert.Len(t, f.cards.cards, 1)
	assert.Len(t, f.media.items, 2)
}

func TestEnsureForTicket_ConcurrentInsertReturnsWinner(t *testing.T) {
	f := newEnsureFixture(t)
	winner := newSharedCard(t, uintPtr(12))
	f.cards.CreateFunc = func(ctx context.Context, j *jobcard.JobCard) error {
		f.cards.mu.Lock()
		f.cards.cards[winner.ID()] = winner
		f.cards.mu.Unlock()
		return jobcard.ErrTicketHasJobCard
	}

	result, err := f.uc.Execute(context.Background(), EnsureForTicketCommand{TicketID: 12, CopyMedia: true})

	require.NoError(t, err)
	assert.Equal(t, winner.ID(), result.JobCardID)
	assert.False(t, result.Created)
	assert.Empty(t, f.media.items)
}

func TestEnsureForTicket_UnknownTicket(t *testing.T) {
	f := newEnsureFixture(t)

	_, err := f.uc.Execute(context.Background(), EnsureForTicketCommand{TicketID: 99})

	assert.True(t, errors.IsNotFoundError(err))
	assert.Empty(t, f.cards.cards)
}

func TestCreateStandalone_EmptyDescriptionRejected(t *testing.T) {
	repo := newMockJobCardRepo()
	uc := NewCreateStandaloneUseCase(repo, noopLogger{})

	_, err := uc.Execute(context.Background(), CreateStandaloneCommand{Description: "", Title: "Gate"})

	assert.True(t, errors.IsValidationError(err))
	assert.Empty(t, repo.cards)
}

func TestCreateStandalone(t *testing.T) {
	repo := newMockJobCardRepo()
	uc := NewCreateStandaloneUseCase(repo, noopLogger{})

	out, err := uc.Execute(context.Background(), CreateStandaloneCommand{
		Description:   "Service borehole pump\nQuarterly maintenance",
		PropertyID:    uintPtr(1),
		EstimatedCost: 1200000,
	})

	require.NoError(t, err)
	assert.Nil(t, out.TicketID)
	assert.Equal(t, "Service borehole pump", out.Title)
	assert.Equal(t, int64(1200000), out.EstimatedCost)
}

func TestSignOff_LocksCard(t *testing.T) {
	card := newSharedCard(t, uintPtr(12))
	cards := newMockJobCardRepo(card)
	signoffs := &mockSignoffRepo{}
	signOff := NewSignOffUseCase(cards, signoffs, &mockPropertyRepo{}, &mockAdminRepo{}, nil, fakeTx{}, noopLogger{})

	out, err := signOff.Execute(context.Background(), SignOffCommand{JobCardID: 5, SignerName: "Jane Wanjiku", Role: "Tenant"})
	require.NoError(t, err)
	assert.Equal(t, "Jane Wanjiku", out.SignerName)
	assert.Equal(t, vo.StatusSignedOff, card.Status())
	require.Len(t, signoffs.rows, 1)

	title := "New title"
	_, err = NewUpdateFieldsUseCase(cards, fakeTx{}, noopLogger{}).Execute(context.Background(), UpdateFieldsCommand{JobCardID: 5, Title: &title})
	assert.True(t, errors.IsConflictError(err))

	_, err = NewUpdateCostsUseCase(cards, fakeTx{}, noopLogger{}).Execute(context.Background(), UpdateCostsCommand{JobCardID: 5, ActualCost: 1})
	assert.True(t, errors.IsConflictError(err))

	_, err = NewChangeStatusUseCase(cards, fakeTx{}, noopLogger{}).Execute(context.Background(), ChangeStatusCommand{JobCardID: 5, Status: "In Progress"})
	assert.True(t, errors.IsConflictError(err))

	assert.Equal(t, "Ceiling repair", card.Title())
	assert.Equal(t, int64(4500), card.ActualCost())

	_, err = signOff.Execute(context.Background(), SignOffCommand{JobCardID: 5, SignerName: "Otieno", Role: "Property Supervisor"})
	require.NoError(t, err)
	assert.Len(t, signoffs.rows, 2)
}

func TestChangeStatus_SignedOffNeedsSignoff(t *testing.T) {
	card := newSharedCard(t, uintPtr(12))
	cards := newMockJobCardRepo(card)

	_, err := NewChangeStatusUseCase(cards, fakeTx{}, noopLogger{}).Execute(context.Background(),
		ChangeStatusCommand{JobCardID: 5, Status: vo.StatusSignedOff.String()})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, vo.StatusCompleted, card.Status())
	assert.False(t, card.IsLocked())
}

func TestSignOff_SignerRequired(t *testing.T) {
	card := newSharedCard(t, nil)
	signoffs := &mockSignoffRepo{}
	uc := NewSignOffUseCase(newMockJobCardRepo(card), signoffs, &mockPropertyRepo{}, &mockAdminRepo{}, nil, fakeTx{}, noopLogger{})

	_, err := uc.Execute(context.Background(), SignOffCommand{JobCardID: 5, SignerName: "  "})

	assert.True(t, errors.IsValidationError(err))
	assert.Empty(t, signoffs.rows)
	assert.False(t, card.IsLocked())
}

func TestSignOff_MailsSupervisor(t *testing.T) {
	card := newSharedCard(t, uintPtr(12))
	mailer := &mockMailer{}
	props := &mockPropertyRepo{properties: map[uint]*property.Property{
		1: property.ReconstructProperty(1, "Riverside Court", uintPtr(4), testNow, testNow),
	}}
	admins := &mockAdminRepo{admins: map[uint]*admin.Admin{
		4: admin.ReconstructAdmin(4, "otieno", "hash", admin.Profile{
			Name:  "Otieno",
			Email: "otieno@example.com",
			Role:  authorization.RolePropertySupervisor,
		}, testNow, testNow),
	}}
	uc := NewSignOffUseCase(newMockJobCardRepo(card), &mockSignoffRepo{}, props, admins, mailer, fakeTx{}, noopLogger{})

	_, err := uc.Execute(context.Background(), SignOffCommand{JobCardID: 5, SignerName: "Jane", Role: "Tenant"})

	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "otieno@example.com", mailer.recipients[0])
	assert.Equal(t, "Riverside Court", mailer.sent[0].PropertyName)
	assert.Equal(t, "#12", mailer.sent[0].TicketNumber)
}

func TestSignOff_MailFailureIgnored(t *testing.T) {
	card := newSharedCard(t, nil)
	mailer := &mockMailer{err: assert.AnError}
	props := &mockPropertyRepo{properties: map[uint]*property.Property{
		1: property.ReconstructProperty(1, "Riverside Court", uintPtr(4), testNow, testNow),
	}}
	admins := &mockAdminRepo{admins: map[uint]*admin.Admin{
		4: admin.ReconstructAdmin(4, "otieno", "hash", admin.Profile{Name: "Otieno", Email: "o@example.com"}, testNow, testNow),
	}}
	uc := NewSignOffUseCase(newMockJobCardRepo(card), &mockSignoffRepo{}, props, admins, mailer, fakeTx{}, noopLogger{})

	_, err := uc.Execute(context.Background(), SignOffCommand{JobCardID: 5, SignerName: "Jane"})

	require.NoError(t, err)
	assert.True(t, card.IsLocked())
}

func TestEnsurePublicToken_Idempotent(t *testing.T) {
	card, err := jobcard.NewJobCard(jobcard.Draft{Description: "Replace lock"})
	require.NoError(t, err)
	repo := newMockJobCardRepo()
	require.NoError(t, repo.Create(context.Background(), card))
	uc := NewEnsurePublicTokenUseCase(repo, noopLogger{})

	first, err := uc.Execute(context.Background(), card.ID())
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), card.ID())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, id.PublicTokenLength)
	assert.True(t, id.IsBase62(first))
}

func TestEnsurePublicToken_UnknownCard(t *testing.T) {
	uc := NewEnsurePublicTokenUseCase(newMockJobCardRepo(), noopLogger{})

	_, err := uc.Execute(context.Background(), 5)

	assert.True(t, errors.IsNotFoundError(err))
}

func TestGetPublicView(t *testing.T) {
	card := newSharedCard(t, uintPtr(12))
	props := &mockPropertyRepo{properties: map[uint]*property.Property{
		1: property.ReconstructProperty(1, "Riverside Court", nil, testNow, testNow),
	}}
	uc := NewGetPublicViewUseCase(newMockJobCardRepo(card), &mockSignoffRepo{}, props, noopLogger{})

	tests := []struct {
		name  string
		id    uint
		token string
	}{
		{"wrong token", 5, "wrong"},
		{"empty token", 5, ""},
		{"missing card", 6, "abc123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), PublicViewQuery{JobCardID: tt.id, Token: tt.token})
			require.Error(t, err)
			assert.True(t, errors.IsNotFoundError(err))
			assert.Equal(t, "job card not found", errors.GetAppError(err).Message)
		})
	}

	view, err := uc.Execute(context.Background(), PublicViewQuery{JobCardID: 5, Token: "abc123"})
	require.NoError(t, err)
	assert.Equal(t, "Riverside Court", view.PropertyName)
	assert.Equal(t, "Ceiling repair", view.Title)
	assert.Equal(t, int64(4500), view.ActualCost)
}

func TestVerifyPIN(t *testing.T) {
	tickets := &mockTicketRepo{tickets: map[uint]*ticket.Ticket{12: newResolvedTicket(t)}}
	tenants := &mockTenantRepo{tenants: map[uint]*tenant.Tenant{
		7: tenant.ReconstructTenant(7, "Jane", "254711000111", uintPtr(1), "B2", testNow, testNow),
	}}
	uc := NewVerifyPINUseCase(newMockJobCardRepo(newSharedCard(t, uintPtr(12))), tickets, tenants, noopLogger{})

	tests := []struct {
		name  string
		token string
		pin   string
		want  bool
	}{
		{"correct", "abc123", "0111", true},
		{"wrong pin", "abc123", "0112", false},
		{"wrong token with correct pin", "nope", "0111", false},
		{"short pin", "abc123", "111", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := uc.Execute(context.Background(), VerifyPINCommand{JobCardID: 5, Token: tt.token, PIN: tt.pin})
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestVerifyPIN_FailsClosed(t *testing.T) {
	tickets := &mockTicketRepo{tickets: map[uint]*ticket.Ticket{12: newResolvedTicket(t)}}

	t.Run("standalone card", func(t *testing.T) {
		uc := NewVerifyPINUseCase(newMockJobCardRepo(newSharedCard(t, nil)), tickets, &mockTenantRepo{}, noopLogger{})
		ok, err := uc.Execute(context.Background(), VerifyPINCommand{JobCardID: 5, Token: "abc123", PIN: "0111"})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("short contact handle", func(t *testing.T) {
		tenants := &mockTenantRepo{tenants: map[uint]*tenant.Tenant{
			7: tenant.ReconstructTenant(7, "Jane", "111", nil, "", testNow, testNow),
		}}
		uc := NewVerifyPINUseCase(newMockJobCardRepo(newSharedCard(t, uintPtr(12))), tickets, tenants, noopLogger{})
		ok, err := uc.Execute(context.Background(), VerifyPINCommand{JobCardID: 5, Token: "abc123", PIN: "0111"})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("tenant removed", func(t *testing.T) {
		uc := NewVerifyPINUseCase(newMockJobCardRepo(newSharedCard(t, uintPtr(12))), tickets, &mockTenantRepo{}, noopLogger{})
		ok, err := uc.Execute(context.Background(), VerifyPINCommand{JobCardID: 5, Token: "abc123", PIN: "0111"})
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestProvisioner(t *testing.T) {
	f := newEnsureFixture(t)
	p := NewProvisioner(f.uc, NewEnsurePublicTokenUseCase(f.cards, noopLogger{}))

	cardID, err := p.EnsureForTicket(context.Background(), 12, false)
	require.NoError(t, err)
	token, err := p.EnsurePublicToken(context.Background(), cardID)
	require.NoError(t, err)

	card, _ := f.cards.GetByID(context.Background(), cardID)
	assert.True(t, card.TokenMatches(token))
	assert.Empty(t, f.media.items)
}
