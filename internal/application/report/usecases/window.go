package usecases

import (
	"time"

	"github.com/estatedesk/estatedesk/internal/shared/biztime"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
)

// WindowQuery takes inclusive business dates in YYYY-MM-DD form. Empty values
// default to the current month up to today.
type WindowQuery struct {
	From string
	To   string
}

type window struct {
	start, end time.Time
	fromLabel  string
	toLabel    string
}

func (q WindowQuery) resolve() (window, error) {
	var from, to time.Time
	var err error
	if q.From != "" {
		if from, err = biztime.ParseDate(q.From); err != nil {
			return window{}, errors.NewValidationError("invalid from date, expected YYYY-MM-DD")
		}
	}
	if q.To != "" {
		if to, err = biztime.ParseDate(q.To); err != nil {
			return window{}, errors.NewValidationError("invalid to date, expected YYYY-MM-DD")
		}
	}
	start, end := biztime.Window(from, to)
	if !start.Before(end) {
		return window{}, errors.NewValidationError("from must not be after to")
	}
	return window{
		start:     start,
		end:       end,
		fromLabel: biztime.Format(start, biztime.DateLayout),
		toLabel:   biztime.Format(end.AddDate(0, 0, -1), biztime.DateLayout),
	}, nil
}
