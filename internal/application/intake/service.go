// Package intake runs the WhatsApp conversation that registers tenants and
// turns their messages into tickets.
package intake

import (
	"context"
	"fmt"
	"mime"
	"time"

	"github.com/google/uuid"

	tenantdto "github.com/estatedesk/estatedesk/internal/application/tenant/dto"
	tenantUsecases "github.com/estatedesk/estatedesk/internal/application/tenant/usecases"
	ticketdto "github.com/estatedesk/estatedesk/internal/application/ticket/dto"
	ticketUsecases "github.com/estatedesk/estatedesk/internal/application/ticket/usecases"
	"github.com/estatedesk/estatedesk/internal/domain/admin"
	"github.com/estatedesk/estatedesk/internal/domain/property"
	"github.com/estatedesk/estatedesk/internal/domain/tenant"
	"github.com/estatedesk/estatedesk/internal/domain/ticket"
	vo "github.com/estatedesk/estatedesk/internal/domain/ticket/valueobjects"
	"github.com/estatedesk/estatedesk/internal/shared/biztime"
	"github.com/estatedesk/estatedesk/internal/shared/goroutine"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
	"github.com/estatedesk/estatedesk/internal/shared/utils"
)

const (
	MessageTypeText  = "text"
	MessageTypeImage = "image"

	lateMediaWindow  = 30 * time.Minute
	handleTimeout    = 30 * time.Second
	defaultDupWindow = 60 * time.Second
	defaultSelection = 10 * time.Minute
)

// InboundMessage is one message received from the messaging provider.
type InboundMessage struct {
	ID       string
	From     string
	Type     string
	Text     string
	MediaID  string
	MimeType string
}

type Messenger interface {
	SendText(ctx context.Context, to, message string) error
	TicketAssigned(ctx context.Context, to, ticketNumber, category, description string) error
}

// MediaFetcher downloads inbound media by provider id.
type MediaFetcher interface {
	FetchMedia(ctx context.Context, mediaID string) (data []byte, contentType string, err error)
}

type TicketCreator interface {
	Execute(ctx context.Context, cmd ticketUsecases.CreateTicketCommand) (*ticketdto.TicketDTO, error)
}

type MediaAttacher interface {
	Execute(ctx context.Context, cmd ticketUsecases.AddMediaCommand) (*ticketdto.MediaDTO, error)
}

type TenantRegistrar interface {
	Execute(ctx context.Context, cmd tenantUsecases.RegisterTenantCommand) (*tenantdto.TenantDTO, error)
}

type Config struct {
	DuplicateWindow  time.Duration
	SelectionTimeout time.Duration
}

type Service struct {
	tenantRepo   tenant.Repository
	propertyRepo property.Repository
	adminRepo    admin.Repository
	tickets      TicketCreator
	media        MediaAttacher
	registrar    TenantRegistrar
	messenger    Messenger
	fetcher      MediaFetcher
	store        *StateStore
	cfg          Config
	logger       logger.Interface
}

func NewService(
	tenantRepo tenant.Repository,
	propertyRepo property.Repository,
	adminRepo admin.Repository,
	tickets TicketCreator,
	media MediaAttacher,
	registrar TenantRegistrar,
	messenger Messenger,
	fetcher MediaFetcher,
	store *StateStore,
	cfg Config,
	logger logger.Interface,
) *Service {
	if cfg.DuplicateWindow <= 0 {
		cfg.DuplicateWindow = defaultDupWindow
	}
	if cfg.SelectionTimeout <= 0 {
		cfg.SelectionTimeout = defaultSelection
	}
	return &Service{
		tenantRepo:   tenantRepo,
		propertyRepo: propertyRepo,
		adminRepo:    adminRepo,
		tickets:      tickets,
		media:        media,
		registrar:    registrar,
		messenger:    messenger,
		fetcher:      fetcher,
		store:        store,
		cfg:          cfg,
		logger:       logger,
	}
}

// Dispatch handles msg on its own goroutine.
func (s *Service) Dispatch(msg InboundMessage) {
	goroutine.SafeGo(s.logger, "intake-message", func() {
		ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
		defer cancel()
		if err := s.HandleMessage(ctx, msg); err != nil {
			s.logger.Errorw("failed to handle inbound message", "message_id", msg.ID, "from", msg.From, "error", err)
		}
	})
}

// HandleMessage advances the sender's conversation by one message.
func (s *Service) HandleMessage(ctx context.Context, msg InboundMessage) error {
	now := biztime.Now()
	sender := utils.NormalizeContactHandle(msg.From)
	if sender == "" {
		return nil
	}

	if msg.ID != "" && !s.store.MarkSeen(ctx, msg.ID, now) {
		s.logger.Debugw("dropping redelivered message", "message_id", msg.ID)
		return nil
	}

	// Each step reads the session, talks to the outside and writes it back.
	unlock := s.store.LockSender(sender)
	defer unlock()

	if msg.Type == MessageTypeText && s.store.IsRepeat(sender, msg.Text, now, s.cfg.DuplicateWindow) {
		s.logger.Infow("dropping repeated message", "from", sender)
		return nil
	}

	t, err := s.tenantRepo.GetByContact(ctx, sender)
	if err != nil {
		s.reply(ctx, sender, msgTryAgain)
		return fmt.Errorf("failed to look up sender: %w", err)
	}
	if t == nil {
		return s.handleUnregistered(ctx, sender, msg)
	}

	switch msg.Type {
	case MessageTypeImage:
		return s.handleImage(ctx, t, msg, now)
	case MessageTypeText:
		return s.handleText(ctx, t, msg.Text, now)
	default:
		s.logger.Debugw("ignoring unsupported message type", "type", msg.Type, "from", sender)
		return nil
	}
}

func (s *Service) handleUnregistered(ctx context.Context, sender string, msg InboundMessage) error {
	sess := s.store.Session(sender)
	if sess.Stage != StageAwaitRegistration || msg.Type != MessageTypeText {
		s.store.SetSession(sender, Session{Stage: StageAwaitRegistration})
		s.reply(ctx, sender, msgRegisterPrompt)
		return nil
	}

	reg, ok := parseRegistration(msg.Text)
	if !ok || utils.ValidateStruct(reg) != nil {
		s.reply(ctx, sender, msgRegisterFormat)
		return nil
	}

	prop, err := s.findProperty(ctx, reg.Property)
	if err != nil {
		s.reply(ctx, sender, msgTryAgain)
		return err
	}
	if prop == nil {
		s.reply(ctx, sender, fmt.Sprintf(msgUnknownProperty, reg.Property))
		return nil
	}

	propertyID := prop.ID()
	registered, err := s.registrar.Execute(ctx, tenantUsecases.RegisterTenantCommand{
		Name:       reg.Name,
		Contact:    sender,
		PropertyID: &propertyID,
		Unit:       reg.Unit,
	})
	if err != nil {
		s.reply(ctx, sender, msgTryAgain)
		return fmt.Errorf("failed to register tenant: %w", err)
	}

	s.logger.Infow("tenant registered via intake", "tenant_id", registered.ID, "property_id", propertyID)
	s.store.SetSession(sender, Session{Stage: StageAwaitCategory})
	s.reply(ctx, sender, fmt.Sprintf(msgRegistered, registered.Name)+"\n\n"+categoryMenu())
	return nil
}

func (s *Service) handleText(ctx context.Context, t *tenant.Tenant, text string, now time.Time) error {
	sender := t.Contact()
	sess := s.store.Session(sender)

	switch sess.Stage {
	case StageAwaitDescription:
		return s.createTicket(ctx, t, sess, text, now)

	case StageAwaitCategory:
		category, ok := parseCategory(text)
		if !ok {
			s.reply(ctx, sender, msgInvalidCategory+"\n\n"+categoryMenu())
			return nil
		}
		sess.Stage = StageAwaitDescription
		sess.Category = category
		sess.PendingMedia = nil
		s.store.SetSession(sender, sess)
		s.store.ArmTimer(sender, s.cfg.SelectionTimeout, func() {
			s.expireSelection(sender, category)
		})
		s.reply(ctx, sender, fmt.Sprintf(msgDescribe, category))
		return nil

	default:
		sess.Stage = StageAwaitCategory
		s.store.SetSession(sender, sess)
		s.reply(ctx, sender, categoryMenu())
		return nil
	}
}

func (s *Service) createTicket(ctx context.Context, t *tenant.Tenant, sess Session, text string, now time.Time) error {
	sender := t.Contact()
	s.store.CancelTimer(sender)

	created, err := s.tickets.Execute(ctx, ticketUsecases.CreateTicketCommand{
		UserID:      t.ID(),
		Description: text,
		Category:    sess.Category.String(),
	})
	if err != nil {
		s.reply(ctx, sender, msgTryAgain)
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	for _, m := range sess.PendingMedia {
		s.attach(ctx, created.ID, m)
	}

	s.store.SetSession(sender, Session{Stage: StageIdle, LastTicketID: created.ID, LastTicketAt: now})
	s.reply(ctx, sender, fmt.Sprintf(msgTicketCreated, created.Number))
	s.notifyAssignee(ctx, created)
	return nil
}

func (s *Service) handleImage(ctx context.Context, t *tenant.Tenant, msg InboundMessage, now time.Time) error {
	sender := t.Contact()
	sess := s.store.Session(sender)

	recent := sess.LastTicketID != 0 && now.Sub(sess.LastTicketAt) < lateMediaWindow
	if sess.Stage != StageAwaitDescription && !recent {
		sess.Stage = StageAwaitCategory
		s.store.SetSession(sender, sess)
		s.reply(ctx, sender, categoryMenu())
		return nil
	}

	data, contentType, err := s.fetcher.FetchMedia(ctx, msg.MediaID)
	if err != nil {
		s.reply(ctx, sender, msgTryAgain)
		return fmt.Errorf("failed to fetch media %s: %w", msg.MediaID, err)
	}
	if contentType == "" {
		contentType = msg.MimeType
	}
	m := PendingMedia{FileName: mediaFileName(contentType), ContentType: contentType, Data: data}

	if sess.Stage == StageAwaitDescription {
		if !s.store.AddPendingMedia(sender, m) {
			s.reply(ctx, sender, msgMediaLimit)
		}
		return nil
	}

	if s.attach(ctx, sess.LastTicketID, m) {
		s.reply(ctx, sender, fmt.Sprintf(msgMediaAttached, ticket.FormatNumber(sess.LastTicketID)))
	}
	return nil
}

func (s *Service) attach(ctx context.Context, ticketID uint, m PendingMedia) bool {
	_, err := s.media.Execute(ctx, ticketUsecases.AddMediaCommand{
		TicketID:    ticketID,
		FileName:    m.FileName,
		ContentType: m.ContentType,
		Data:        m.Data,
	})
	if err != nil {
		s.logger.Warnw("failed to attach intake media", "ticket_id", ticketID, "error", err)
		return false
	}
	return true
}

func (s *Service) notifyAssignee(ctx context.Context, created *ticketdto.TicketDTO) {
	if created.AssignedAdminID == nil {
		return
	}
	a, err := s.adminRepo.GetByID(ctx, *created.AssignedAdminID)
	if err != nil {
		s.logger.Warnw("failed to load assignee for notification", "admin_id", *created.AssignedAdminID, "error", err)
		return
	}
	if err := s.messenger.TicketAssigned(ctx, a.Contact(), created.Number, created.Category, created.Description); err != nil {
		s.logger.Warnw("failed to notify assignee", "admin_id", a.ID(), "ticket_id", created.ID, "error", err)
	}
}

func (s *Service) expireSelection(sender string, category vo.Category) {
	unlock := s.store.LockSender(sender)
	defer unlock()
	if !s.store.ResetIf(sender, StageAwaitDescription, category) {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()
	s.logger.Infow("category selection expired", "from", sender, "category", category.String())
	s.reply(ctx, sender, msgSelectionExpired)
}

func (s *Service) findProperty(ctx context.Context, name string) (*property.Property, error) {
	props, err := s.propertyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	for _, p := range props {
		if sameName(p.Name(), name) {
			return p, nil
		}
	}
	return nil, nil
}

func (s *Service) reply(ctx context.Context, to, text string) {
	if err := s.messenger.SendText(ctx, to, text); err != nil {
		s.logger.Warnw("failed to send intake reply", "to", to, "error", err)
	}
}

func mediaFileName(contentType string) string {
	ext := ".bin"
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		ext = exts[0]
	}
	return "wa-" + uuid.NewString() + ext
}
