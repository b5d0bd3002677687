package intake

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	vo "github.com/estatedesk/estatedesk/internal/domain/ticket/valueobjects"
)

var folder = cases.Fold()

// foldName normalises a user typed name for comparison: NFKC, collapsed
// whitespace and Unicode case folding.
func foldName(s string) string {
	s = norm.NFKC.String(s)
	return folder.String(strings.Join(strings.Fields(s), " "))
}

func sameName(a, b string) bool {
	return foldName(a) == foldName(b)
}

// parseCategory accepts a menu number or a category name.
func parseCategory(text string) (vo.Category, bool) {
	text = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "."))
	if n, err := strconv.Atoi(text); err == nil {
		return vo.CategoryByMenuIndex(n)
	}
	for _, c := range vo.AllCategories() {
		if sameName(c.String(), text) {
			return c, true
		}
	}
	return "", false
}

type registration struct {
	Name     string `validate:"required,max=100"`
	Property string `validate:"required,max=100"`
	Unit     string `validate:"required,max=20"`
}

// parseRegistration splits "Name, Property, Unit".
func parseRegistration(text string) (registration, bool) {
	parts := strings.Split(text, ",")
	if len(parts) != 3 {
		return registration{}, false
	}
	return registration{
		Name:     strings.TrimSpace(parts[0]),
		Property: strings.TrimSpace(parts[1]),
		Unit:     strings.TrimSpace(parts[2]),
	}, true
}
