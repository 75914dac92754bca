package models

import "errors"

// Contact statuses. Caller-settable; no enforced transition order.
const (
	ContactNew     = "new"
	ContactRead    = "read"
	ContactReplied = "replied"
)

// Contact is a message submitted through the public contact form.
type Contact struct {
	Meta    `bson:",inline"`
	Name    string `bson:"name" json:"name"`
	NameCI  string `bson:"name_ci" json:"-"` // lowercase, diacritics-stripped
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject string `bson:"subject" json:"subject"`
	Message string `bson:"message" json:"message"`
	Status  string `bson:"status" json:"status"`
}

// ValidContactStatus reports whether s is a known contact status.
func ValidContactStatus(s string) bool {
	switch s {
	case ContactNew, ContactRead, ContactReplied:
		return true
	}
	return false
}

func (c *Contact) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Email == "" {
		return errors.New("email is required")
	}
	if c.Subject == "" {
		return errors.New("subject is required")
	}
	if c.Message == "" {
		return errors.New("message is required")
	}
	if c.Status == "" {
		c.Status = ContactNew
	}
	if !ValidContactStatus(c.Status) {
		return errors.New(`status must be "new", "read", or "replied"`)
	}
	return nil
}
