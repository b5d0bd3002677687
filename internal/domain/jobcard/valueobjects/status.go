package valueobjects

import (
	"fmt"
	"strings"
)

type JobCardStatus string

const (
	StatusOpen       JobCardStatus = "Open"
	StatusInProgress JobCardStatus = "In Progress"
	StatusCompleted  JobCardStatus = "Completed"
	StatusSignedOff  JobCardStatus = "Signed Off"
	StatusCancelled  JobCardStatus = "Cancelled"
)

var validJobCardStatuses = map[JobCardStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusSignedOff:  true,
	StatusCancelled:  true,
}

func (s JobCardStatus) String() string {
	return string(s)
}

func (s JobCardStatus) IsValid() bool {
	return validJobCardStatuses[s]
}

func (s JobCardStatus) IsSignedOff() bool {
	return s == StatusSignedOff
}

func NewJobCardStatus(s string) (JobCardStatus, error) {
	norm := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(s, "_", " ")))
	for st := range validJobCardStatuses {
		if strings.ToLower(string(st)) == norm {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid job card status: %s", s)
}
