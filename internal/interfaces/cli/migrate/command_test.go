package migrate

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/estatedesk/estatedesk/internal/infrastructure/migration"
)

func TestNewCommand_Subcommands(t *testing.T) {
	cmd := NewCommand()

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"up", "down", "status"}, names)
}

func TestPrintStatus(t *testing.T) {
	var buf bytes.Buffer
	applied := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	printStatus(&buf, 1, []migration.Status{
		{Version: 1, Name: "001_init.sql", Applied: true, AppliedAt: applied},
		{Version: 2, Name: "002_media.sql"},
	})

	out := buf.String()
	assert.Contains(t, out, "Current Version: 1")
	assert.Contains(t, out, "2026-03-01 09:30:00")
	assert.Contains(t, out, "002_media.sql")
}
