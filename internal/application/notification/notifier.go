package notification

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

const defaultSendTimeout = 10 * time.Second

// Templates names the pre-approved message templates.
type Templates struct {
	StatusUpdate   string
	TicketUpdate   string
	TicketAssigned string
	JobCardLink    string
}

type Notifier struct {
	gateway   Gateway
	templates Templates
	timeout   time.Duration
	logger    logger.Interface
}

func NewNotifier(gateway Gateway, templates Templates, timeout time.Duration, log logger.Interface) *Notifier {
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	return &Notifier{
		gateway:   gateway,
		templates: templates,
		timeout:   timeout,
		logger:    log,
	}
}

// SendText sends a free text message within the notifier's timeout.
func (n *Notifier) SendText(ctx context.Context, to, message string) error {
	if strings.TrimSpace(to) == "" {
		n.logger.Warnw("skipping text notification", "reason", ErrNoDestination.Error())
		return ErrNoDestination
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
	defer cancel()

	if err := n.gateway.SendText(sendCtx, to, message); err != nil {
		n.logger.Warnw("text notification failed", "to", to, "error", err)
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	return nil
}

// SendTemplate sends a template message within the notifier's timeout.
// An unconfigured template name is treated as a delivery failure.
func (n *Notifier) SendTemplate(ctx context.Context, to, templateName string, params ...string) error {
	if strings.TrimSpace(to) == "" {
		n.logger.Warnw("skipping template notification", "template", templateName, "reason", ErrNoDestination.Error())
		return ErrNoDestination
	}
	if templateName == "" {
		n.logger.Warnw("template notification not configured", "to", to)
		return fmt.Errorf("%w: template name not configured", ErrDeliveryFailed)
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
	defer cancel()

	if err := n.gateway.SendTemplate(sendCtx, to, templateName, params); err != nil {
		n.logger.Warnw("template notification failed", "to", to, "template", templateName, "error", err)
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	return nil
}

// TicketUpdated tells the tenant about a new progress note.
func (n *Notifier) TicketUpdated(ctx context.Context, to, ticketNumber, text string) error {
	msg := fmt.Sprintf("Update on your ticket %s:\n%s", ticketNumber, text)
	err := n.SendText(ctx, to, msg)
	if err == nil || errors.Is(err, ErrNoDestination) || n.templates.TicketUpdate == "" {
		return err
	}
	return n.SendTemplate(ctx, to, n.templates.TicketUpdate, ticketNumber, text)
}

// TicketAssigned tells an admin that a ticket now belongs to them.
func (n *Notifier) TicketAssigned(ctx context.Context, to, ticketNumber, category, description string) error {
	msg := fmt.Sprintf("Ticket %s (%s) has been assigned to you:\n%s", ticketNumber, category, description)
	err := n.SendText(ctx, to, msg)
	if err == nil || errors.Is(err, ErrNoDestination) || n.templates.TicketAssigned == "" {
		return err
	}
	return n.SendTemplate(ctx, to, n.templates.TicketAssigned, ticketNumber, category)
}

// StatusChanged sends the status change template.
func (n *Notifier) StatusChanged(ctx context.Context, to, tenantName, ticketNumber, status string) error {
	return n.SendTemplate(ctx, to, n.templates.StatusUpdate, tenantName, ticketNumber, status)
}

// JobCardLink sends the verification link with the PIN rule as free text,
// falling back to the link template when the text cannot be delivered.
func (n *Notifier) JobCardLink(ctx context.Context, to, ticketNumber, link string) error {
	msg := fmt.Sprintf(
		"Your ticket %s has been resolved. View the job card here:\n%s\n"+
			"Enter the last 4 digits of your registered number as the PIN.",
		ticketNumber, link)

	err := n.SendText(ctx, to, msg)
	if err == nil || errors.Is(err, ErrNoDestination) {
		return err
	}
	n.logger.Infow("falling back to job card link template", "to", to, "ticket", ticketNumber)
	return n.SendTemplate(ctx, to, n.templates.JobCardLink, ticketNumber, link)
}

// VerificationLink builds the public job card URL.
func VerificationLink(baseURL string, jobCardID uint, token string) string {
	q := url.Values{}
	q.Set("id", strconv.FormatUint(uint64(jobCardID), 10))
	q.Set("t", token)
	return strings.TrimRight(baseURL, "/") + "/public/job-cards/view?" + q.Encode()
}
