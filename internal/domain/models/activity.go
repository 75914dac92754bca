package models

import (
	"errors"
	"strings"
)

// Activity categories. Stored lower-cased.
const (
	CategoryCurricular      = "curricular"
	CategoryCoCurricular    = "co-curricular"
	CategoryExtraCurricular = "extra-curricular"
)

// Activity is a curricular, co-curricular, or extra-curricular activity shown
// on the public activities page.
type Activity struct {
	Meta        `bson:",inline"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Category    string `bson:"category" json:"category"`
	Image       string `bson:"image,omitempty" json:"image,omitempty"`
	Order       int    `bson:"order" json:"order"`
}

// ValidActivityCategory reports whether s (after lower-casing) is one of the
// three known categories.
func ValidActivityCategory(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case CategoryCurricular, CategoryCoCurricular, CategoryExtraCurricular:
		return true
	}
	return false
}

func (a *Activity) Validate() error {
	if a.Title == "" {
		return errors.New("title is required")
	}
	if a.Description == "" {
		return errors.New("description is required")
	}
	if !ValidActivityCategory(a.Category) {
		return errors.New(`category must be "curricular", "co-curricular", or "extra-curricular"`)
	}
	a.Category = strings.ToLower(strings.TrimSpace(a.Category))
	return nil
}
