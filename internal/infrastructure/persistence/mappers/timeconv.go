package mappers

import (
	"time"

	"github.com/estatedesk/estatedesk/internal/shared/biztime"
)

// optionalTime converts a nullable column to the business timezone.
func optionalTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := biztime.In(*t)
	return &v
}

// Columns are written in UTC so SQLite text comparisons stay ordered.
func utc(t time.Time) time.Time {
	return t.UTC()
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
