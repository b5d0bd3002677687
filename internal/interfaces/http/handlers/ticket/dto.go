package ticket

import (
	"github.com/gin-gonic/gin"

	"github.com/estatedesk/estatedesk/internal/application/ticket/usecases"
	"github.com/estatedesk/estatedesk/internal/shared/utils"
)

type CreateTicketRequest struct {
	UserID          uint   `json:"user_id" binding:"required"`
	Description     string `json:"description" binding:"required"`
	Category        string `json:"category" binding:"required"`
	PropertyID      *uint  `json:"property_id"`
	AssignedAdminID *uint  `json:"assigned_admin_id"`
}

func (r CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		UserID:          r.UserID,
		Description:     r.Description,
		Category:        r.Category,
		PropertyID:      r.PropertyID,
		AssignedAdminID: r.AssignedAdminID,
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ReassignRequest struct {
	NewAdminID uint   `json:"new_admin_id" binding:"required"`
	OldAdminID *uint  `json:"old_admin_id"`
	Reason     string `json:"reason"`
}

type AddUpdateRequest struct {
	Text string `json:"text" binding:"required"`
}

// SetDueDateRequest clears the due date when DueDate is empty.
type SetDueDateRequest struct {
	DueDate string `json:"due_date"`
}

type EnsureJobCardRequest struct {
	CopyMedia bool `json:"copy_media"`
}

func parseListTicketsQuery(c *gin.Context) usecases.ListTicketsQuery {
	p := utils.ParsePagination(c)
	return usecases.ListTicketsQuery{
		Status:          c.Query("status"),
		Category:        c.Query("category"),
		PropertyID:      utils.ParseOptionalUintQuery(c, "property_id"),
		AssignedAdminID: utils.ParseOptionalUintQuery(c, "assigned_admin_id"),
		UserID:          utils.ParseOptionalUintQuery(c, "user_id"),
		UnreadOnly:      c.Query("unread") == "true",
		Page:            p.Page,
		PageSize:        p.PageSize,
	}
}
