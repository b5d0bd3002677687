// Package report serves KPI and cost reports.
package report

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estatedesk/estatedesk/internal/application/report/dto"
	"github.com/estatedesk/estatedesk/internal/application/report/usecases"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
	"github.com/estatedesk/estatedesk/internal/shared/utils"
)

type ticketKPIsUseCase interface {
	Execute(ctx context.Context, q usecases.WindowQuery) (*dto.TicketKPIsDTO, error)
}

type jobCardCostsUseCase interface {
	Execute(ctx context.Context, q usecases.WindowQuery) (*dto.JobCardCostsDTO, error)
}

type Handler struct {
	kpisUC  ticketKPIsUseCase
	costsUC jobCardCostsUseCase
	logger  logger.Interface
}

func NewHandler(kpisUC ticketKPIsUseCase, costsUC jobCardCostsUseCase, log logger.Interface) *Handler {
	return &Handler{kpisUC: kpisUC, costsUC: costsUC, logger: log}
}

func windowFromQuery(c *gin.Context) usecases.WindowQuery {
	return usecases.WindowQuery{From: c.Query("from"), To: c.Query("to")}
}

// TicketKPIs handles GET /reports/tickets?from=YYYY-MM-DD&to=YYYY-MM-DD
// @Summary Ticket KPIs
// @Description Ticket counts and resolution times over a date window
// @Tags reports
// @Produce json
// @Security Bearer
// @Param from query string false "Start date YYYY-MM-DD"
// @Param to query string false "End date YYYY-MM-DD"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /reports/tickets [get]
func (h *Handler) TicketKPIs(c *gin.Context) {
	result, err := h.kpisUC.Execute(c.Request.Context(), windowFromQuery(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// JobCardCosts handles GET /reports/job-card-costs?from=&to=
// @Summary Job card costs
// @Description Estimated against actual cost per property over a date window
// @Tags reports
// @Produce json
// @Security Bearer
// @Param from query string false "Start date YYYY-MM-DD"
// @Param to query string false "End date YYYY-MM-DD"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /reports/job-card-costs [get]
func (h *Handler) JobCardCosts(c *gin.Context) {
	result, err := h.costsUC.Execute(c.Request.Context(), windowFromQuery(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
