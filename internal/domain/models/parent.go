package models

import "errors"

// Parent is a parent testimonial shown on the home page.
type Parent struct {
	Meta     `bson:",inline"`
	Name     string `bson:"name" json:"name"`
	Relation string `bson:"relation,omitempty" json:"relation,omitempty"` // e.g. "Mother of Grade 4 student"
	Quote    string `bson:"quote" json:"quote"`
	Image    string `bson:"image,omitempty" json:"image,omitempty"`
}

func (p *Parent) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.Quote == "" {
		return errors.New("quote is required")
	}
	return nil
}
