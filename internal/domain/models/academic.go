package models

import "errors"

// Academic is one entry on the public academics page (a program, stream, or
// grade band). Display order is caller-assigned; duplicates are allowed and
// tie-break by creation time.
type Academic struct {
	Meta        `bson:",inline"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Icon        string `bson:"icon,omitempty" json:"icon,omitempty"`
	Order       int    `bson:"order" json:"order"`
}

func (a *Academic) Validate() error {
	if a.Title == "" {
		return errors.New("title is required")
	}
	if a.Description == "" {
		return errors.New("description is required")
	}
	return nil
}
