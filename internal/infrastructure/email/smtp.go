package email

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"

	jobcardUsecases "github.com/estatedesk/estatedesk/internal/application/jobcard/usecases"
	"github.com/estatedesk/estatedesk/internal/shared/biztime"
	"github.com/estatedesk/estatedesk/internal/shared/config"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
	"github.com/estatedesk/estatedesk/internal/shared/utils"
)

var ErrEmailServiceNotConfigured = errors.New("email service not configured")

const signedAtLayout = "02 Jan 2006 15:04"

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer delivers sign-off summaries to property supervisors.
type SMTPMailer struct {
	cfg    config.EmailConfig
	dialer dialer
	logger logger.Interface
}

var _ jobcardUsecases.SignoffMailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg config.EmailConfig, log logger.Interface) *SMTPMailer {
	m := &SMTPMailer{cfg: cfg, logger: log}
	if cfg.Enabled() {
		m.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	}
	return m
}

func (s *SMTPMailer) Configured() bool {
	return s.dialer != nil
}

func (s *SMTPMailer) SendSignoffNotice(ctx context.Context, to string, notice jobcardUsecases.SignoffNotice) error {
	if !s.Configured() {
		return ErrEmailServiceNotConfigured
	}
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("recipient address is empty")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	subject := fmt.Sprintf("Job card #%d signed off", notice.JobCardID)
	if notice.TicketNumber != "" {
		subject = fmt.Sprintf("%s (ticket %s)", subject, notice.TicketNumber)
	}

	if err := s.send(to, subject, signoffHTML(notice), signoffPlain(notice)); err != nil {
		return err
	}
	s.logger.Infow("signoff notice sent", "to", to, "job_card_id", notice.JobCardID)
	return nil
}

func (s *SMTPMailer) send(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	if s.cfg.FromName != "" {
		m.SetAddressHeader("From", s.cfg.FromAddress, s.cfg.FromName)
	} else {
		m.SetHeader("From", s.cfg.FromAddress)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

type summaryRow struct {
	label string
	value string
}

func summaryRows(n jobcardUsecases.SignoffNotice) []summaryRow {
	rows := []summaryRow{
		{"Job card", fmt.Sprintf("#%d", n.JobCardID)},
		{"Title", n.Title},
	}
	if n.TicketNumber != "" {
		rows = append(rows, summaryRow{"Ticket", n.TicketNumber})
	}
	if n.PropertyName != "" {
		rows = append(rows, summaryRow{"Property", n.PropertyName})
	}
	if n.Unit != "" {
		rows = append(rows, summaryRow{"Unit", n.Unit})
	}
	rows = append(rows,
		summaryRow{"Signed by", fmt.Sprintf("%s (%s)", n.SignerName, n.SignerRole)},
		summaryRow{"Signed at", biztime.Format(n.SignedAt, signedAtLayout)},
		summaryRow{"Actual cost", utils.FormatMinorUnits(n.ActualCost)},
	)
	if n.Notes != "" {
		rows = append(rows, summaryRow{"Notes", n.Notes})
	}
	return rows
}

func greeting(n jobcardUsecases.SignoffNotice) string {
	if n.SupervisorName == "" {
		return "Hello,"
	}
	return fmt.Sprintf("Hello %s,", n.SupervisorName)
}

func signoffPlain(n jobcardUsecases.SignoffNotice) string {
	var b strings.Builder
	b.WriteString(greeting(n))
	b.WriteString("\n\nA job card on one of your properties has been signed off.\n\n")
	for _, r := range summaryRows(n) {
		fmt.Fprintf(&b, "%s: %s\n", r.label, r.value)
	}
	return b.String()
}

func signoffHTML(n jobcardUsecases.SignoffNotice) string {
	var b strings.Builder
	b.WriteString("<html><body>\n")
	fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(greeting(n)))
	b.WriteString("<p>A job card on one of your properties has been signed off.</p>\n<table>\n")
	for _, r := range summaryRows(n) {
		fmt.Fprintf(&b, "<tr><th>%s</th><td>%s</td></tr>\n",
			html.EscapeString(r.label), html.EscapeString(r.value))
	}
	b.WriteString("</table>\n</body></html>")
	return b.String()
}
