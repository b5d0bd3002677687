package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estatedesk/estatedesk/internal/application/setting/dto"
	"github.com/estatedesk/estatedesk/internal/interfaces/http/handlers/common"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
	"github.com/estatedesk/estatedesk/internal/shared/utils"
)

// SettingHandler handles persisted system settings.
type SettingHandler struct {
	getUC    getSettingsUseCase
	updateUC updateSettingsUseCase
	logger   logger.Interface
}

func NewSettingHandler(getUC getSettingsUseCase, updateUC updateSettingsUseCase, log logger.Interface) *SettingHandler {
	return &SettingHandler{getUC: getUC, updateUC: updateUC, logger: log}
}

// GetCategorySettings retrieves all settings in a category
// GET /settings/:category
// @Summary Get category settings
// @Description Get every setting in a category
// @Tags settings
// @Produce json
// @Security Bearer
// @Param category path string true "Setting category"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /settings/{category} [get]
func (h *SettingHandler) GetCategorySettings(c *gin.Context) {
	category := c.Param("category")
	if category == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "category parameter is required")
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), category)
	if err != nil {
		h.logger.Errorw("failed to get category settings", "category", category, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateCategorySettings batch updates settings in a category
// PUT /settings/:category
// @Summary Update category settings
// @Description Batch update settings in a category
// @Tags settings
// @Accept json
// @Produce json
// @Security Bearer
// @Param category path string true "Setting category"
// @Param body body dto.UpdateCategorySettingsRequest true "Settings"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /settings/{category} [put]
func (h *SettingHandler) UpdateCategorySettings(c *gin.Context) {
	category := c.Param("category")
	if category == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "category parameter is required")
		return
	}

	var req dto.UpdateCategorySettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update category settings", "category", category, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	actor := common.ActorFromContext(c)
	if actor.ID == 0 {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.updateUC.Execute(c.Request.Context(), category, req, actor.ID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("settings updated", "category", category, "admin_id", actor.ID)
	utils.SuccessResponse(c, http.StatusOK, "Settings updated", nil)
}
