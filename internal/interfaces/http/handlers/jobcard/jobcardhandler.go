// Package jobcard serves the staff job card API.
package jobcard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estatedesk/estatedesk/internal/application/jobcard/usecases"
	"github.com/estatedesk/estatedesk/internal/application/notification"
	"github.com/estatedesk/estatedesk/internal/domain/ticket"
	"github.com/estatedesk/estatedesk/internal/interfaces/http/handlers/common"
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

func parseJobCardID(c *gin.Context) (uint, error) {
	return utils.ParseIDParam(c, "id", "job card")
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return false
	}
	return true
}

// Create handles POST /job-cards for cards not tied to a ticket.
// @Summary Create a job card
// @Description Create a standalone job card
// @Tags job-cards
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body CreateJobCardRequest true "Job card data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /job-cards [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateJobCardRequest
	if !bindJSON(c, &req) {
		return
	}

	actor := common.ActorFromContext(c)
	cmd := usecases.CreateStandaloneCommand{
		Title:         req.Title,
		Description:   req.Description,
		PropertyID:    req.PropertyID,
		Unit:          req.Unit,
		AssignedTo:    req.AssignedTo,
		Activities:    req.Activities,
		EstimatedCost: req.EstimatedCost,
	}
	if actor.ID != 0 {
		cmd.CreatedBy = &actor.ID
	}

	result, err := h.uc.Create.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Job card created successfully")
}

// List handles GET /job-cards
// @Summary List job cards
// @Description List job cards with filters
// @Tags job-cards
// @Produce json
// @Security Bearer
// @Param status query string false "Status filter"
// @Param property_id query int false "Property filter"
// @Param assigned_to query int false "Assignee filter"
// @Param ticket_id query int false "Source ticket filter"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /job-cards [get]
func (h *Handler) List(c *gin.Context) {
	result, err := h.uc.List.Execute(c.Request.Context(), parseListJobCardsQuery(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.JobCards, result.Total, result.Page, result.Size)
}

// Get handles GET /job-cards/:id with media metadata and signoffs.
// @Summary Get a job card
// @Description Get a job card by ID
// @Tags job-cards
// @Produce json
// @Security Bearer
// @Param id path int true "Job card ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /job-cards/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := parseJobCardID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.Get.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update handles PATCH /job-cards/:id
// @Summary Update a job card
// @Description Edit the descriptive fields of an unlocked job card
// @Tags job-cards
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Job card ID"
// @Param body body UpdateJobCardRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /job-cards/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	id, err := parseJobCardID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateJobCardRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.uc.UpdateFields.Execute(c.Request.Context(), usecases.UpdateFieldsCommand{
		JobCardID:   id,
		Title:       req.Title,
		Description: req.Description,
		Activities:  req.Activities,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Job card updated", result)
}

// UpdateCosts handles PUT /job-cards/:id/costs
// @Summary Update costs
// @Description Set estimated and actual cost in minor units
// @Tags job-cards
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Job card ID"
// @Param body body UpdateCostsRequest true "Costs"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /job-cards/{id}/costs [put]
func (h *Handler) UpdateCosts(c *gin.Context) {
	id, err := parseJobCardID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCostsRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.uc.UpdateCosts.Execute(c.Request.Context(), usecases.UpdateCostsCommand{
		JobCardID:     id,
		EstimatedCost: req.EstimatedCost,
		ActualCost:    req.ActualCost,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Costs updated", result)
}

// ChangeStatus handles PATCH /job-cards/:id/status
// @Summary Change job card status
// @Description Move a job card to a new status. Use the signoffs endpoint to sign off
// @Tags job-cards
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Job card ID"
// @Param body body ChangeStatusRequest true "New status"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /job-cards/{id}/status [patch]
func (h *Handler) ChangeStatus(c *gin.Context) {
	id, err := parseJobCardID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.uc.ChangeStatus.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		JobCardID: id,
		Status:    req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Job card status updated", result)
}

// UploadMedia handles POST /job-cards/:id/media as multipart field "file".
// @Summary Attach media
// @Description Attach a photo or document to a job card
// @Tags job-cards
// @Accept mpfd
// @Produce json
// @Security Bearer
// @Param id path int true "Job card ID"
// @Param file formData file true "Media file"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 413 {object} utils.APIResponse
// @Router /job-cards/{id}/media [post]
func (h *Handler) UploadMedia(c *gin.Context) {
	id, err := parseJobCardID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	upload, err := common.ReadUpload(c, "file", ticket.MaxMediaSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.AddMedia.Execute(c.Request.Context(), usecases.AddMediaCommand{
		JobCardID:   id,
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

// DownloadMedia handles GET /job-cards/:id/media/:mediaId
// @Summary Download job card media
// @Description Stream one media attachment
// @Tags job-cards
// @Produce octet-stream
// @Security Bearer
// @Param id path int true "Job card ID"
// @Param mediaId path int true "Media ID"
// @Success 200 {file} file
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /job-cards/{id}/media/{mediaId} [get]
func (h *Handler) DownloadMedia(c *gin.Context) {
	id, err := parseJobCardID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	mediaID, err := utils.ParseIDParam(c, "mediaId", "media")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	m, err := h.uc.GetMedia.Execute(c.Request.Context(), id, mediaID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	common.ServeBinary(c, m.FileName(), m.ContentType(), m.Data())
}

// SignOff handles POST /job-cards/:id/signoffs. A signoff locks the card.
// @Summary Sign off a job card
// @Description Record a signoff and lock the job card
// @Tags job-cards
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Job card ID"
// @Param body body SignOffRequest true "Signoff"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /job-cards/{id}/signoffs [post]
func (h *Handler) SignOff(c *gin.Context) {
	id, err := parseJobCardID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SignOffRequest
	if !bindJSON(c, &req) {
		return
	}

	signature, err := decodeSignature(req.Signature)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor := common.ActorFromContext(c)
	if req.SignerName == "" {
		req.SignerName = actor.Name
	}
	if req.Role == "" && actor.Role.IsValid() {
		req.Role = actor.Role.Label()
	}

	result, err := h.uc.SignOff.Execute(c.Request.Context(), usecases.SignOffCommand{
		JobCardID:  id,
		SignerName: req.SignerName,
		Role:       req.Role,
		Notes:      req.Notes,
		Signature:  signature,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("job card signed off", "job_card_id", id, "admin_id", actor.ID)
	utils.CreatedResponse(c, result, "Job card signed off")
}

// ListSignoffs handles GET /job-cards/:id/signoffs
// @Summary List signoffs
// @Description List a job card's signoffs, oldest first
// @Tags job-cards
// @Produce json
// @Security Bearer
// @Param id path int true "Job card ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /job-cards/{id}/signoffs [get]
func (h *Handler) ListSignoffs(c *gin.Context) {
	id, err := parseJobCardID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.ListSignoffs.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// PublicLink handles POST /job-cards/:id/public-link. The token is issued once
// and reused. Link is empty while no public base URL is configured.
// @Summary Issue a public link
// @Description Return the job card's read-only public token and link
// @Tags job-cards
// @Produce json
// @Security Bearer
// @Param id path int true "Job card ID"
// @Success 200 {object} utils.APIResponse{data=PublicLinkResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /job-cards/{id}/public-link [post]
func (h *Handler) PublicLink(c *gin.Context) {
	id, err := parseJobCardID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	token, err := h.uc.PublicToken.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := PublicLinkResponse{Token: token}
	if base := h.uc.Links.PublicBaseURL(c.Request.Context()); base != "" {
		resp.Link = notification.VerificationLink(base, id, token)
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}
