package usecases

import (
	"fmt"
	"testing"
	"time"

	"github.com/estatedesk/estatedesk/internal/domain/admin"
	"github.com/estatedesk/estatedesk/internal/domain/tenant"
	"github.com/estatedesk/estatedesk/internal/domain/ticket"
	vo "github.com/estatedesk/estatedesk/internal/domain/ticket/valueobjects"
	"github.com/estatedesk/estatedesk/internal/shared/authorization"
	"github.com/estatedesk/estatedesk/internal/shared/biztime"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func uintPtr(v uint) *uint { return &v }

func fixClock(t *testing.T) {
	t.Helper()
	restore := biztime.SetClock(func() time.Time { return testNow })
	t.Cleanup(restore)
}

func newTestTicket(t *testing.T, id uint, status vo.TicketStatus, assignee *uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(id, 7, "Kitchen tap leaking", vo.CategoryPlumbing, status,
		uintPtr(1), assignee, nil, false, testNow.Add(-time.Hour), nil, testNow.Add(-time.Hour))
	if err != nil {
		t.Fatalf("reconstruct ticket: %v", err)
	}
	return tk
}

func newTestTenant(contact string) *tenant.Tenant {
	return tenant.ReconstructTenant(7, "Jane Wanjiku", contact, uintPtr(1), "A4", testNow, testNow)
}

func newTestAdmin(id uint, name string, role authorization.AdminRole) *admin.Admin {
	return admin.ReconstructAdmin(id, name, "hash", admin.Profile{
		Name:    name,
		Contact: fmt.Sprintf("2547000000%02d", id),
		Role:    role,
	}, testNow, testNow)
}
