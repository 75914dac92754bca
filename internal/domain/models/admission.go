package models

import "errors"

// Admission statuses. Caller-settable; no enforced transition order.
const (
	AdmissionNew      = "new"
	AdmissionReviewed = "reviewed"
	AdmissionAccepted = "accepted"
	AdmissionRejected = "rejected"
)

// Admission is a public admission enquiry submitted from the site. Read,
// update, and delete are admin-only.
type Admission struct {
	Meta           `bson:",inline"`
	StudentName    string `bson:"student_name" json:"student_name"`
	StudentNameCI  string `bson:"student_name_ci" json:"-"` // lowercase, diacritics-stripped
	ParentName     string `bson:"parent_name" json:"parent_name"`
	Email          string `bson:"email" json:"email"`
	Phone          string `bson:"phone" json:"phone"`
	Grade          string `bson:"grade" json:"grade"`
	Category       string `bson:"category,omitempty" json:"category,omitempty"`
	PreviousSchool string `bson:"previous_school,omitempty" json:"previous_school,omitempty"`
	Message        string `bson:"message,omitempty" json:"message,omitempty"`
	Status         string `bson:"status" json:"status"`
}

// ValidAdmissionStatus reports whether s is a known admission status.
func ValidAdmissionStatus(s string) bool {
	switch s {
	case AdmissionNew, AdmissionReviewed, AdmissionAccepted, AdmissionRejected:
		return true
	}
	return false
}

func (a *Admission) Validate() error {
	if a.StudentName == "" {
		return errors.New("student_name is required")
	}
	if a.ParentName == "" {
		return errors.New("parent_name is required")
	}
	if a.Email == "" {
		return errors.New("email is required")
	}
	if a.Phone == "" {
		return errors.New("phone is required")
	}
	if a.Grade == "" {
		return errors.New("grade is required")
	}
	if a.Status == "" {
		a.Status = AdmissionNew
	}
	if !ValidAdmissionStatus(a.Status) {
		return errors.New(`status must be "new", "reviewed", "accepted", or "rejected"`)
	}
	return nil
}
