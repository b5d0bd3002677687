package valueobjects

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryPlumbing   Category = "Plumbing"
	CategoryElectrical Category = "Electrical"
	CategoryCarpentry  Category = "Carpentry"
	CategorySecurity   Category = "Security"
	CategoryCleaning   Category = "Cleaning"
	CategoryOther      Category = "Other"
)

// categoryOrder is the order categories are offered in the intake menu.
var categoryOrder = []Category{
	CategoryPlumbing,
	CategoryElectrical,
	CategoryCarpentry,
	CategorySecurity,
	CategoryCleaning,
	CategoryOther,
}

func AllCategories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	for _, v := range categoryOrder {
		if v == c {
			return true
		}
	}
	return false
}

func NewCategory(s string) (Category, error) {
	norm := strings.TrimSpace(s)
	for _, v := range categoryOrder {
		if strings.EqualFold(string(v), norm) {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid category: %s", s)
}

// CategoryByMenuIndex resolves a 1-based intake menu choice.
func CategoryByMenuIndex(i int) (Category, bool) {
	if i < 1 || i > len(categoryOrder) {
		return "", false
	}
	return categoryOrder[i-1], true
}
