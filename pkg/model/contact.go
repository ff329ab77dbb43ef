package model

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ContactStatus is the linear progression of a contact-form message through
// the admin inbox. Unlike moderation.Status it never branches and only
// moves forward.
type ContactStatus string

const (
	ContactPending ContactStatus = "pending"
	ContactRead    ContactStatus = "read"
	ContactReplied ContactStatus = "replied"
	ContactClosed  ContactStatus = "closed"
)

var ErrUnknownContactStatus = errors.New("unknown contact status")

var contactStatusRank = map[ContactStatus]int{
	ContactPending: 0,
	ContactRead:    1,
	ContactReplied: 2,
	ContactClosed:  3,
}

func ParseContactStatus(value string) (ContactStatus, error) {
	if _, ok := contactStatusRank[ContactStatus(value)]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownContactStatus, value)
	}

	return ContactStatus(value), nil
}

// CanAdvanceTo reports whether the progression may move to target. Staying
// in place is allowed; moving backward is not.
func (s ContactStatus) CanAdvanceTo(target ContactStatus) bool {
	from, ok := contactStatusRank[s]
	if !ok {
		return false
	}

	to, ok := contactStatusRank[target]
	if !ok {
		return false
	}

	return to >= from
}

type Contact struct {
	gorm.Model
	Name          string
	Email         string
	Subject       string
	Message       string
	AdminNote     string
	Status        ContactStatus `gorm:"type:varchar(16);index"`
	SubmittedByID *uint

	SubmittedBy *User `gorm:"foreignKey:SubmittedByID"`
}
