package ticket

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/estatedesk/estatedesk/internal/shared/biztime"
)

const (
	ActionUpdate       = "Update"
	ActionReassignment = "Reassignment"
)

// HistoryEntry is one line of the merged ticket timeline.
type HistoryEntry struct {
	Action string
	Detail string
	Author string
	At     time.Time
}

// AdminNames resolves admin IDs to display names for the timeline.
type AdminNames map[uint]string

func (n AdminNames) name(id *uint) string {
	if id == nil {
		return "Unassigned"
	}
	if s, ok := n[*id]; ok && s != "" {
		return s
	}
	return fmt.Sprintf("Admin %d", *id)
}

// DescribeReassignment renders a change log row the way it appears in the timeline.
func DescribeReassignment(r *Reassignment, names AdminNames) string {
	newID := r.NewAdminID()
	return fmt.Sprintf("Reassigned from %s to %s. Reason: %s",
		names.name(r.OldAdminID()), names.name(&newID), r.Reason())
}

// BuildHistory merges updates and reassignments into one chronological
// sequence. Entries with equal timestamps keep updates before reassignments.
func BuildHistory(updates []*Update, reassignments []*Reassignment, names AdminNames) []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(updates)+len(reassignments))
	for _, u := range updates {
		entries = append(entries, HistoryEntry{
			Action: ActionUpdate,
			Detail: u.Text(),
			Author: u.Author(),
			At:     u.CreatedAt(),
		})
	}
	for _, r := range reassignments {
		entries = append(entries, HistoryEntry{
			Action: ActionReassignment,
			Detail: DescribeReassignment(r, names),
			Author: r.Actor(),
			At:     r.CreatedAt(),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].At.Before(entries[j].At)
	})
	return entries
}

// RenderActivities renders the merged timeline as the plain text audit
// trail stored on a job card derived from the ticket.
func RenderActivities(updates []*Update, reassignments []*Reassignment, names AdminNames) string {
	entries := BuildHistory(updates, reassignments, names)
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		tag := "[UPDATE]"
		if e.Action == ActionReassignment {
			tag = "[REASSIGN]"
		}
		fmt.Fprintf(&b, "%s %s", tag, biztime.Format(e.At, "2006-01-02 15:04"))
		if e.Author != "" {
			fmt.Fprintf(&b, " (%s)", e.Author)
		}
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}
