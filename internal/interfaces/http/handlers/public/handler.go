// Package public renders the tenant-facing job card verification pages.
// Responses never reveal whether a card exists when the token is wrong.
package public

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/estatedesk/estatedesk/internal/application/jobcard/usecases"
	"github.com/estatedesk/estatedesk/internal/domain/jobcard"
	"github.com/estatedesk/estatedesk/internal/infrastructure/ratelimit"
	"github.com/estatedesk/estatedesk/internal/shared/biztime"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
	"github.com/estatedesk/estatedesk/internal/shared/services/markdown"
	"github.com/estatedesk/estatedesk/internal/shared/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

const displayLayout = "02 Jan 2006 15:04"

type publicViewUseCase interface {
	Execute(ctx context.Context, q usecases.PublicViewQuery) (*jobcard.PublicView, error)
}

type verifyPINUseCase interface {
	Execute(ctx context.Context, cmd usecases.VerifyPINCommand) (bool, error)
}

type Handler struct {
	viewUC    publicViewUseCase
	verifyUC  verifyPINUseCase
	limiter   ratelimit.RateLimiter
	limits    ratelimit.RateLimitConfig
	renderer  markdown.Renderer
	templates *template.Template
	logger    logger.Interface
}

// NewHandler builds the public handler. pinAttemptsPerHour caps PIN
// submissions per card and client address; zero disables the cap.
func NewHandler(
	viewUC publicViewUseCase,
	verifyUC verifyPINUseCase,
	limiter ratelimit.RateLimiter,
	pinAttemptsPerHour int,
	renderer markdown.Renderer,
	log logger.Interface,
) *Handler {
	return &Handler{
		viewUC:    viewUC,
		verifyUC:  verifyUC,
		limiter:   limiter,
		limits:    ratelimit.RateLimitConfig{RequestsPerHour: pinAttemptsPerHour},
		renderer:  renderer,
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
		logger:    log,
	}
}

type pinPage struct {
	Title string
	ID    uint
	Token string
	Error string
}

type signoffRow struct {
	SignerName string
	Role       string
	At         string
}

type cardPage struct {
	Title      string
	Card       *jobcard.PublicView
	Opened     string
	Completed  string
	Estimated  string
	Actual     string
	Activities template.HTML
	Signoffs   []signoffRow
}

type messagePage struct {
	Title   string
	Message string
}

func (h *Handler) render(c *gin.Context, status int, name string, data any) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := h.templates.ExecuteTemplate(c.Writer, name, data); err != nil {
		h.logger.Errorw("failed to render public page", "template", name, "error", err)
	}
}

func (h *Handler) notFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "message", messagePage{
		Title:   "Link not valid",
		Message: "This job card link is not valid. Please check the link you were sent.",
	})
}

func parseCardID(raw string) uint {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}

// View handles GET /public/job-cards/view?id=&t= and shows the PIN form for
// a valid link.
func (h *Handler) View(c *gin.Context) {
	id := parseCardID(c.Query("id"))
	token := c.Query("t")
	if id == 0 || token == "" {
		h.notFound(c)
		return
	}

	if _, err := h.viewUC.Execute(c.Request.Context(), usecases.PublicViewQuery{JobCardID: id, Token: token}); err != nil {
		if !errors.IsNotFoundError(err) {
			h.logger.Errorw("failed to load public job card", "job_card_id", id, "error", err)
		}
		h.notFound(c)
		return
	}

	h.render(c, http.StatusOK, "pin", pinPage{Title: "Job card verification", ID: id, Token: token})
}

// Verify handles POST /public/job-cards/verify with form fields id, t and pin.
func (h *Handler) Verify(c *gin.Context) {
	id := parseCardID(c.PostForm("id"))
	token := c.PostForm("t")
	pin := strings.TrimSpace(c.PostForm("pin"))
	if id == 0 || token == "" {
		h.notFound(c)
		return
	}

	if !h.allowAttempt(c, id) {
		h.render(c, http.StatusTooManyRequests, "message", messagePage{
			Title:   "Too many attempts",
			Message: "Too many PIN attempts. Please try again later.",
		})
		return
	}

	ok, err := h.verifyUC.Execute(c.Request.Context(), usecases.VerifyPINCommand{JobCardID: id, Token: token, PIN: pin})
	if err != nil {
		h.logger.Errorw("failed to verify job card PIN", "job_card_id", id, "error", err)
		h.render(c, http.StatusInternalServerError, "message", messagePage{
			Title:   "Something went wrong",
			Message: "Please try again in a moment.",
		})
		return
	}
	if !ok {
		h.render(c, http.StatusUnauthorized, "pin", pinPage{
			Title: "Job card verification",
			ID:    id,
			Token: token,
			Error: "That PIN is not correct.",
		})
		return
	}

	view, err := h.viewUC.Execute(c.Request.Context(), usecases.PublicViewQuery{JobCardID: id, Token: token})
	if err != nil {
		h.notFound(c)
		return
	}

	h.render(c, http.StatusOK, "card", h.cardPage(view))
}

func (h *Handler) allowAttempt(c *gin.Context, id uint) bool {
	if h.limiter == nil || h.limits.RequestsPerHour <= 0 {
		return true
	}
	key := "pin:" + strconv.FormatUint(uint64(id), 10) + ":" + c.ClientIP()
	allowed, err := h.limiter.Allow(c.Request.Context(), key, h.limits)
	if err != nil {
		h.logger.Warnw("pin rate limiter unavailable", "job_card_id", id, "error", err)
		return true
	}
	if !allowed {
		h.logger.Warnw("pin attempts exceeded", "job_card_id", id, "ip", c.ClientIP())
	}
	return allowed
}

func (h *Handler) cardPage(v *jobcard.PublicView) cardPage {
	page := cardPage{
		Title:     v.Title,
		Card:      v,
		Opened:    biztime.Format(v.CreatedAt, displayLayout),
		Estimated: utils.FormatMinorUnits(v.EstimatedCost),
		Actual:    utils.FormatMinorUnits(v.ActualCost),
	}
	if page.Title == "" {
		page.Title = "Job card #" + strconv.FormatUint(uint64(v.ID), 10)
	}
	if v.CompletedAt != nil {
		page.Completed = biztime.Format(*v.CompletedAt, displayLayout)
	}
	if v.Activities != "" && h.renderer != nil {
		if out, err := h.renderer.ToHTML(v.Activities); err == nil {
			page.Activities = out
		} else {
			h.logger.Warnw("failed to render activities", "job_card_id", v.ID, "error", err)
		}
	}
	for _, s := range v.Signoffs {
		page.Signoffs = append(page.Signoffs, signoffRow{
			SignerName: s.SignerName,
			Role:       s.Role,
			At:         biztime.Format(s.SignedAt, displayLayout),
		})
	}
	return page
}
