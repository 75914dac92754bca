package models

import "errors"

// Service is one school service card (transport, library, labs, ...) on the
// public services page.
type Service struct {
	Meta        `bson:",inline"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Icon        string `bson:"icon,omitempty" json:"icon,omitempty"`
	Order       int    `bson:"order" json:"order"`
}

func (s *Service) Validate() error {
	if s.Title == "" {
		return errors.New("title is required")
	}
	if s.Description == "" {
		return errors.New("description is required")
	}
	return nil
}
