// Package admin serves staff accounts, login and system settings.
package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estatedesk/estatedesk/internal/application/admin/usecases"
	"github.com/estatedesk/estatedesk/internal/interfaces/http/handlers/common"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
	"github.com/estatedesk/estatedesk/internal/shared/utils"
)

type CreateAdminRequest struct {
	Name       string `json:"name" binding:"required"`
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required,min=8"`
	Contact    string `json:"contact"`
	Email      string `json:"email" binding:"omitempty,email"`
	Role       string `json:"role" binding:"required"`
	PropertyID *uint  `json:"property_id"`
}

type UpdateAdminRequest struct {
	Name       string `json:"name" binding:"required"`
	Contact    string `json:"contact"`
	Email      string `json:"email" binding:"omitempty,email"`
	Role       string `json:"role" binding:"required"`
	PropertyID *uint  `json:"property_id"`
	Password   string `json:"password" binding:"omitempty,min=8"`
}

// AdminHandler manages staff accounts.
type AdminHandler struct {
	createUC createAdminUseCase
	updateUC updateAdminUseCase
	deleteUC deleteAdminUseCase
	getUC    getAdminUseCase
	listUC   listAdminsUseCase
	logger   logger.Interface
}

func NewAdminHandler(
	createUC createAdminUseCase,
	updateUC updateAdminUseCase,
	deleteUC deleteAdminUseCase,
	getUC getAdminUseCase,
	listUC listAdminsUseCase,
	log logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   log,
	}
}

// Create handles POST /admins
// @Summary Create an admin
// @Description Create a staff account with a role
// @Tags admins
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body CreateAdminRequest true "Admin data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /admins [post]
func (h *AdminHandler) Create(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create admin", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateAdminCommand{
		Name:       req.Name,
		Username:   req.Username,
		Password:   req.Password,
		Contact:    req.Contact,
		Email:      req.Email,
		Role:       req.Role,
		PropertyID: req.PropertyID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Admin created successfully")
}

// List handles GET /admins?role=
// @Summary List admins
// @Description List staff accounts, optionally filtered by role
// @Tags admins
// @Produce json
// @Security Bearer
// @Param role query string false "Role filter"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /admins [get]
func (h *AdminHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)
	admins, total, err := h.listUC.Execute(c.Request.Context(), usecases.ListAdminsQuery{
		Role:     c.Query("role"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, admins, total, p.Page, p.PageSize)
}

// Get handles GET /admins/:id
// @Summary Get an admin
// @Description Get a staff account by ID
// @Tags admins
// @Produce json
// @Security Bearer
// @Param id path int true "Admin ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admins/{id} [get]
func (h *AdminHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "admin")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Me handles GET /auth/me
// @Summary Current admin
// @Description Get the signed-in staff account
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/me [get]
func (h *AdminHandler) Me(c *gin.Context) {
	actor := common.ActorFromContext(c)
	if actor.ID == 0 {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("not authenticated"))
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), actor.ID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update handles PUT /admins/:id
// @Summary Update an admin
// @Description Update a staff account
// @Tags admins
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Admin ID"
// @Param body body UpdateAdminRequest true "Admin data"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admins/{id} [put]
func (h *AdminHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "admin")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateAdminCommand{
		AdminID:    id,
		Name:       req.Name,
		Contact:    req.Contact,
		Email:      req.Email,
		Role:       req.Role,
		PropertyID: req.PropertyID,
		Password:   req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Admin updated", result)
}

// Delete handles DELETE /admins/:id. Staff cannot delete themselves.
// @Summary Delete an admin
// @Description Delete a staff account
// @Tags admins
// @Produce json
// @Security Bearer
// @Param id path int true "Admin ID"
// @Success 204
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admins/{id} [delete]
func (h *AdminHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "admin")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor := common.ActorFromContext(c)
	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteAdminCommand{AdminID: id, ActorID: actor.ID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("admin deleted", "admin_id", id, "actor_id", actor.ID)
	utils.NoContentResponse(c)
}
