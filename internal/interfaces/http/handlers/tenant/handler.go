// Package tenant serves the tenant directory.
package tenant

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estatedesk/estatedesk/internal/application/tenant/dto"
	"github.com/estatedesk/estatedesk/internal/application/tenant/usecases"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
	"github.com/estatedesk/estatedesk/internal/shared/utils"
)

type registerTenantUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterTenantCommand) (*dto.TenantDTO, error)
}

type updateTenantUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateTenantCommand) (*dto.TenantDTO, error)
}

type deleteTenantUseCase interface {
	Execute(ctx context.Context, tenantID uint) error
}

type getTenantUseCase interface {
	Execute(ctx context.Context, tenantID uint) (*dto.TenantDTO, error)
}

type listTenantsUseCase interface {
	Execute(ctx context.Context, q usecases.ListTenantsQuery) ([]*dto.TenantDTO, int64, error)
}

type TenantRequest struct {
	Name       string `json:"name" binding:"required"`
	Contact    string `json:"contact" binding:"required"`
	PropertyID *uint  `json:"property_id"`
	Unit       string `json:"unit"`
}

type UseCases struct {
	Register registerTenantUseCase
	Update   updateTenantUseCase
	Delete   deleteTenantUseCase
	Get      getTenantUseCase
	List     listTenantsUseCase
}

type Handler struct {
	uc     UseCases
	logger logger.Interface
}

func NewHandler(uc UseCases, log logger.Interface) *Handler {
	return &Handler{uc: uc, logger: log}
}

// Register handles POST /tenants
// @Summary Register a tenant
// @Description Register a tenant by contact number
// @Tags tenants
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body TenantRequest true "Tenant data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /tenants [post]
func (h *Handler) Register(c *gin.Context) {
	var req TenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.uc.Register.Execute(c.Request.Context(), usecases.RegisterTenantCommand{
		Name:       req.Name,
		Contact:    req.Contact,
		PropertyID: req.PropertyID,
		Unit:       req.Unit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Tenant registered successfully")
}

// Update handles PUT /tenants/:id
// @Summary Update a tenant
// @Description Update a tenant's details
// @Tags tenants
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Tenant ID"
// @Param body body TenantRequest true "Tenant data"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /tenants/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "tenant")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req TenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.uc.Update.Execute(c.Request.Context(), usecases.UpdateTenantCommand{
		TenantID:   id,
		Name:       req.Name,
		Contact:    req.Contact,
		PropertyID: req.PropertyID,
		Unit:       req.Unit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tenant updated", result)
}

// Delete handles DELETE /tenants/:id. Tenants with tickets are kept.
// @Summary Delete a tenant
// @Description Delete a tenant
// @Tags tenants
// @Produce json
// @Security Bearer
// @Param id path int true "Tenant ID"
// @Success 204
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tenants/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "tenant")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.uc.Delete.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// Get handles GET /tenants/:id
// @Summary Get a tenant
// @Description Get a tenant by ID
// @Tags tenants
// @Produce json
// @Security Bearer
// @Param id path int true "Tenant ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tenants/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "tenant")
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

// List handles GET /tenants?property_id=&q=
// @Summary List tenants
// @Description List tenants by property or name
// @Tags tenants
// @Produce json
// @Security Bearer
// @Param property_id query int false "Property filter"
// @Param q query string false "Name or contact search"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /tenants [get]
func (h *Handler) List(c *gin.Context) {
	p := utils.ParsePagination(c)
	tenants, total, err := h.uc.List.Execute(c.Request.Context(), usecases.ListTenantsQuery{
		PropertyID: utils.ParseOptionalUintQuery(c, "property_id"),
		Search:     c.Query("q"),
		Page:       p.Page,
		PageSize:   p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, tenants, total, p.Page, p.PageSize)
}
