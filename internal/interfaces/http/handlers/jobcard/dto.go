package jobcard

import (
	"encoding/base64"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/estatedesk/estatedesk/internal/application/jobcard/usecases"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/utils"
)

// Costs are in minor currency units throughout.
type CreateJobCardRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description" binding:"required"`
	PropertyID    *uint  `json:"property_id"`
	Unit          string `json:"unit"`
	AssignedTo    *uint  `json:"assigned_to"`
	Activities    string `json:"activities"`
	EstimatedCost int64  `json:"estimated_cost" binding:"gte=0"`
}

type UpdateJobCardRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Activities  *string `json:"activities"`
	AssignedTo  *uint   `json:"assigned_to"`
}

type UpdateCostsRequest struct {
	EstimatedCost int64 `json:"estimated_cost" binding:"gte=0"`
	ActualCost    int64 `json:"actual_cost" binding:"gte=0"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SignOffRequest carries the drawn signature as a base64 PNG, optionally as a
// data URL. SignerName and Role default to the signed-in staff member.
type SignOffRequest struct {
	SignerName string `json:"signer_name"`
	Role       string `json:"role"`
	Notes      string `json:"notes"`
	Signature  string `json:"signature"`
}

type PublicLinkResponse struct {
	Token string `json:"token"`
	Link  string `json:"link,omitempty"`
}

func decodeSignature(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if i := strings.Index(raw, ","); strings.HasPrefix(raw, "data:") && i > 0 {
		raw = raw[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, errors.NewValidationError("signature must be base64 encoded")
	}
	return data, nil
}

func parseListJobCardsQuery(c *gin.Context) usecases.ListJobCardsQuery {
	p := utils.ParsePagination(c)
	return usecases.ListJobCardsQuery{
		Status:     c.Query("status"),
		PropertyID: utils.ParseOptionalUintQuery(c, "property_id"),
		AssignedTo: utils.ParseOptionalUintQuery(c, "assigned_to"),
		TicketID:   utils.ParseOptionalUintQuery(c, "ticket_id"),
		Page:       p.Page,
		PageSize:   p.PageSize,
	}
}
