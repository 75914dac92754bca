package models

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Job application statuses. Caller-settable; no enforced transition order.
const (
	ApplicationPending     = "Pending"
	ApplicationUnderReview = "Under Review"
	ApplicationShortlisted = "Shortlisted"
	ApplicationRejected    = "Rejected"
	ApplicationHired       = "Hired"
)

// JobApplication is a public application against one Job. The referenced job
// must exist, be active, and have an open deadline at creation time; none of
// that is re-validated later.
type JobApplication struct {
	Meta        `bson:",inline"`
	JobID       primitive.ObjectID `bson:"job_id" json:"job_id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone" json:"phone"`
	ResumeURL   string             `bson:"resume_url,omitempty" json:"resume_url,omitempty"`
	CoverLetter string             `bson:"cover_letter,omitempty" json:"cover_letter,omitempty"`
	Experience  string             `bson:"experience,omitempty" json:"experience,omitempty"`
	Status      string             `bson:"status" json:"status"`

	// Job carries selected fields of the referenced job, joined in on read.
	// Never stored.
	Job *JobSummary `bson:"job,omitempty" json:"job,omitempty"`
}

// JobSummary is the slice of Job fields joined onto applications on read.
type JobSummary struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	Title      string             `bson:"title" json:"title"`
	Department string             `bson:"department" json:"department"`
}

// ValidApplicationStatus reports whether s is a known application status.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationPending, ApplicationUnderReview, ApplicationShortlisted,
		ApplicationRejected, ApplicationHired:
		return true
	}
	return false
}

func (a *JobApplication) Validate() error {
	if a.JobID.IsZero() {
		return errors.New("job_id is required")
	}
	if a.Name == "" {
		return errors.New("name is required")
	}
	if a.Email == "" {
		return errors.New("email is required")
	}
	if a.Phone == "" {
		return errors.New("phone is required")
	}
	if a.Status == "" {
		a.Status = ApplicationPending
	}
	if !ValidApplicationStatus(a.Status) {
		return errors.New(`status must be "Pending", "Under Review", "Shortlisted", "Rejected", or "Hired"`)
	}
	return nil
}
