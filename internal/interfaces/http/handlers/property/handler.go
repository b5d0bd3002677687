// Package property serves the property directory.
package property

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estatedesk/estatedesk/internal/application/property/dto"
	"github.com/estatedesk/estatedesk/internal/application/property/usecases"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
	"github.com/estatedesk/estatedesk/internal/shared/utils"
)

type createPropertyUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreatePropertyCommand) (*dto.PropertyDTO, error)
}

type updatePropertyUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdatePropertyCommand) (*dto.PropertyDTO, error)
}

type listPropertiesUseCase interface {
	Execute(ctx context.Context) ([]*dto.PropertyDTO, error)
}

type getPropertyUseCase interface {
	Execute(ctx context.Context, propertyID uint) (*dto.PropertyDTO, error)
}

// PropertyRequest is shared by create and update. A nil SupervisorID clears
// the supervisor on update.
type PropertyRequest struct {
	Name         string `json:"name" binding:"required"`
	SupervisorID *uint  `json:"supervisor_id"`
}

type Handler struct {
	createUC createPropertyUseCase
	updateUC updatePropertyUseCase
	listUC   listPropertiesUseCase
	getUC    getPropertyUseCase
	logger   logger.Interface
}

func NewHandler(
	createUC createPropertyUseCase,
	updateUC updatePropertyUseCase,
	listUC listPropertiesUseCase,
	getUC getPropertyUseCase,
	log logger.Interface,
) *Handler {
	return &Handler{createUC: createUC, updateUC: updateUC, listUC: listUC, getUC: getUC, logger: log}
}

// Create handles POST /properties
// @Summary Create a property
// @Description Register a property with an optional supervisor
// @Tags properties
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body PropertyRequest true "Property data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /properties [post]
func (h *Handler) Create(c *gin.Context) {
	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreatePropertyCommand{
		Name:         req.Name,
		SupervisorID: req.SupervisorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Property created successfully")
}

// Update handles PUT /properties/:id
// @Summary Update a property
// @Description Rename a property or change its supervisor
// @Tags properties
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Property ID"
// @Param body body PropertyRequest true "Property data"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /properties/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "property")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdatePropertyCommand{
		PropertyID:   id,
		Name:         req.Name,
		SupervisorID: req.SupervisorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Property updated", result)
}

// List handles GET /properties
// @Summary List properties
// @Description List every property
// @Tags properties
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /properties [get]
func (h *Handler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Get handles GET /properties/:id
// @Summary Get a property
// @Description Get a property by ID
// @Tags properties
// @Produce json
// @Security Bearer
// @Param id path int true "Property ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /properties/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "property")
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
