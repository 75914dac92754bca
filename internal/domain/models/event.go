package models

import (
	"errors"
	"time"
)

// Event is a school event shown on the public events page. Highlighted
// events are surfaced on the home page.
type Event struct {
	Meta        `bson:",inline"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Date        time.Time `bson:"date" json:"date"`
	Time        string    `bson:"time,omitempty" json:"time,omitempty"`
	Location    string    `bson:"location,omitempty" json:"location,omitempty"`
	Image       string    `bson:"image,omitempty" json:"image,omitempty"`
	Highlight   bool      `bson:"highlight" json:"highlight"`
}

func (e *Event) Validate() error {
	if e.Title == "" {
		return errors.New("title is required")
	}
	if e.Description == "" {
		return errors.New("description is required")
	}
	if e.Date.IsZero() {
		return errors.New("date is required")
	}
	return nil
}
