package report

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/estatedesk/estatedesk/internal/application/report/dto"
	"github.com/estatedesk/estatedesk/internal/application/report/usecases"
	"github.com/estatedesk/estatedesk/internal/interfaces/http/handlers/testutil"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
)

type mockKPIsUC struct {
	got usecases.WindowQuery
	err error
}

func (m *mockKPIsUC) Execute(_ context.Context, q usecases.WindowQuery) (*dto.TicketKPIsDTO, error) {
	m.got = q
	if m.err != nil {
		return nil, m.err
	}
	return &dto.TicketKPIsDTO{From: q.From, To: q.To, Opened: 4}, nil
}

func TestHandler_TicketKPIs(t *testing.T) {
	mockUC := &mockKPIsUC{}
	handler := NewHandler(mockUC, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/reports/tickets", nil)
	testutil.SetQueryParams(c, map[string]string{"from": "2026-03-01", "to": "2026-03-31"})
	handler.TicketKPIs(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.WindowQuery{From: "2026-03-01", To: "2026-03-31"}, mockUC.got)

	mockUC.err = errors.NewValidationError("from must not be after to")
	c, w = testutil.NewTestContext(http.MethodGet, "/reports/tickets", nil)
	handler.TicketKPIs(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
