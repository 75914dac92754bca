package models

import (
	"errors"
	"time"
)

// Job types shown in the careers section.
const (
	JobFullTime = "full-time"
	JobPartTime = "part-time"
	JobContract = "contract"
)

// Job is an open position in the careers section. Applications are accepted
// while the job is active and its deadline has not passed.
type Job struct {
	Meta         `bson:",inline"`
	Title        string    `bson:"title" json:"title"`
	Department   string    `bson:"department" json:"department"`
	Location     string    `bson:"location,omitempty" json:"location,omitempty"`
	Type         string    `bson:"type" json:"type"`
	Description  string    `bson:"description" json:"description"`
	Requirements []string  `bson:"requirements,omitempty" json:"requirements,omitempty"`
	Deadline     time.Time `bson:"deadline" json:"deadline"`
	Active       bool      `bson:"active" json:"active"`
}

// ValidJobType reports whether s is a known job type.
func ValidJobType(s string) bool {
	switch s {
	case JobFullTime, JobPartTime, JobContract:
		return true
	}
	return false
}

func (j *Job) Validate() error {
	if j.Title == "" {
		return errors.New("title is required")
	}
	if j.Department == "" {
		return errors.New("department is required")
	}
	if j.Description == "" {
		return errors.New("description is required")
	}
	if j.Type == "" {
		j.Type = JobFullTime
	}
	if !ValidJobType(j.Type) {
		return errors.New(`type must be "full-time", "part-time", or "contract"`)
	}
	if j.Deadline.IsZero() {
		return errors.New("deadline is required")
	}
	return nil
}
