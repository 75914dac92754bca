package models

import "errors"

// Feature is one "why choose us" card on the home page.
type Feature struct {
	Meta        `bson:",inline"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Icon        string `bson:"icon,omitempty" json:"icon,omitempty"`
	Order       int    `bson:"order" json:"order"`
}

func (f *Feature) Validate() error {
	if f.Title == "" {
		return errors.New("title is required")
	}
	if f.Description == "" {
		return errors.New("description is required")
	}
	return nil
}
