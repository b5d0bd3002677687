// Package ticket serves the staff ticket API.
package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	jobcardUsecases "github.com/estatedesk/estatedesk/internal/application/jobcard/usecases"
	"github.com/estatedesk/estatedesk/internal/application/ticket/dto"
	"github.com/estatedesk/estatedesk/internal/application/ticket/usecases"
	domain "github.com/estatedesk/estatedesk/internal/domain/ticket"
	"github.com/estatedesk/estatedesk/internal/interfaces/http/handlers/common"
	"github.com/estatedesk/estatedesk/internal/shared/authorization"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
	"github.com/estatedesk/estatedesk/internal/shared/utils"
)

type Handler struct {
	uc     UseCases
	logger logger.Interface
}

func NewHandler(uc UseCases, log logger.Interface) *Handler {
	return &Handler{uc: uc, logger: log}
}

// Create handles POST /tickets for tickets logged by staff on a tenant's behalf.
// @Summary Create a ticket
// @Description Open a maintenance ticket on behalf of a tenant
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body CreateTicketRequest true "Ticket data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /tickets [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.uc.Create.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// List handles GET /tickets. Caretakers only see their assigned property.
// @Summary List tickets
// @Description List tickets with filters
// @Tags tickets
// @Produce json
// @Security Bearer
// @Param status query string false "Status filter"
// @Param category query string false "Category filter"
// @Param property_id query int false "Property filter"
// @Param assigned_admin_id query int false "Assignee filter"
// @Param user_id query int false "Tenant filter"
// @Param unread query boolean false "Only unread tickets"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /tickets [get]
func (h *Handler) List(c *gin.Context) {
	query := parseListTicketsQuery(c)
	actor := common.ActorFromContext(c)
	query.ActorRole = actor.Role

	if authorization.HasPropertyAssignment(actor.Role) {
		a, err := h.uc.GetAdmin.Execute(c.Request.Context(), actor.ID)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		query.ActorPropertyID = a.PropertyID
	}

	result, err := h.uc.List.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.Size)
}

// Get handles GET /tickets/:id
// @Summary Get a ticket
// @Description Get a ticket with its updates
// @Tags tickets
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.Get.Execute(c.Request.Context(), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// History handles GET /tickets/:id/history
// @Summary Ticket history
// @Description List the ticket's audit trail
// @Tags tickets
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id}/history [get]
func (h *Handler) History(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	entries, err := h.uc.History.Execute(c.Request.Context(), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", entries)
}

// ChangeStatus handles PATCH /tickets/:id/status
// @Summary Change ticket status
// @Description Move a ticket to a new status
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Param body body ChangeStatusRequest true "New status"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /tickets/{id}/status [patch]
func (h *Handler) ChangeStatus(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.uc.ChangeStatus.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		TicketID: ticketID,
		Status:   req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("ticket status changed",
		"ticket_id", ticketID,
		"status", result.Status,
		"admin_id", common.ActorFromContext(c).ID,
	)
	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated", result)
}

// Reassign handles POST /tickets/:id/reassign
// @Summary Reassign a ticket
// @Description Hand a ticket to another admin
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Param body body ReassignRequest true "Reassignment"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /tickets/{id}/reassign [post]
func (h *Handler) Reassign(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	actor := common.ActorFromContext(c)
	result, err := h.uc.Reassign.Execute(c.Request.Context(), usecases.ReassignTicketCommand{
		TicketID:   ticketID,
		NewAdminID: req.NewAdminID,
		OldAdminID: req.OldAdminID,
		ActorName:  actor.Name,
		ActorRole:  actor.Role,
		Reason:     req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}

// AddUpdate handles POST /tickets/:id/updates
// @Summary Add a ticket update
// @Description Append a progress note to a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Param body body AddUpdateRequest true "Update text"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id}/updates [post]
func (h *Handler) AddUpdate(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.uc.AddUpdate.Execute(c.Request.Context(), usecases.AddUpdateCommand{
		TicketID:   ticketID,
		Text:       req.Text,
		AuthorName: common.ActorFromContext(c).Name,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Update added")
}

// MarkRead handles POST /tickets/:id/read
// @Summary Mark a ticket read
// @Description Clear the ticket's unread flag
// @Tags tickets
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Success 204
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id}/read [post]
func (h *Handler) MarkRead(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.uc.MarkRead.Execute(c.Request.Context(), ticketID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// SetDueDate handles PUT /tickets/:id/due-date
// @Summary Set due date
// @Description Set or clear a ticket's due date
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Param body body SetDueDateRequest true "Due date as YYYY-MM-DD"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id}/due-date [put]
func (h *Handler) SetDueDate(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetDueDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.uc.SetDueDate.Execute(c.Request.Context(), usecases.SetDueDateCommand{
		TicketID: ticketID,
		DueDate:  req.DueDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Due date updated", result)
}

// UploadMedia handles POST /tickets/:id/media as multipart field "file".
// @Summary Attach media
// @Description Attach a photo or document to a ticket
// @Tags tickets
// @Accept mpfd
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Param file formData file true "Media file"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 413 {object} utils.APIResponse
// @Router /tickets/{id}/media [post]
func (h *Handler) UploadMedia(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	upload, err := common.ReadUpload(c, "file", domain.MaxMediaSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.AddMedia.Execute(c.Request.Context(), usecases.AddMediaCommand{
		TicketID:    ticketID,
		FileName:    upload.FileName,
		ContentType: upload.ContentType,
		Data:        upload.Data,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Media attached")
}

// ListMedia handles GET /tickets/:id/media
// @Summary List ticket media
// @Description List media attached to a ticket
// @Tags tickets
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id}/media [get]
func (h *Handler) ListMedia(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	media, err := h.uc.ListMedia.Execute(c.Request.Context(), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	out := make([]dto.MediaDTO, 0, len(media))
	for _, m := range media {
		out = append(out, dto.ToMediaDTO(m))
	}
	utils.SuccessResponse(c, http.StatusOK, "", out)
}

// DownloadMedia handles GET /tickets/:id/media/:mediaId
// @Summary Download ticket media
// @Description Stream one media attachment
// @Tags tickets
// @Produce octet-stream
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Param mediaId path int true "Media ID"
// @Success 200 {file} file
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id}/media/{mediaId} [get]
func (h *Handler) DownloadMedia(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	mediaID, err := utils.ParseIDParam(c, "mediaId", "media")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	media, err := h.uc.ListMedia.Execute(c.Request.Context(), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	for _, m := range media {
		if m.ID() == mediaID {
			common.ServeBinary(c, m.FileName(), m.ContentType(), m.Data())
			return
		}
	}

	utils.ErrorResponseWithError(c, errors.NewNotFoundError("media not found"))
}

// EnsureJobCard handles POST /tickets/:id/job-card. It returns the ticket's
// job card, creating one first when none exists.
// @Summary Get or create the job card
// @Description Return the ticket's job card, creating it when none exists
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Param body body EnsureJobCardRequest false "Options"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id}/job-card [post]
func (h *Handler) EnsureJobCard(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EnsureJobCardRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
			return
		}
	}

	result, err := h.uc.EnsureJobCard.Execute(c.Request.Context(), jobcardUsecases.EnsureForTicketCommand{
		TicketID:  ticketID,
		CopyMedia: req.CopyMedia,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	utils.SuccessResponse(c, status, "", result)
}
