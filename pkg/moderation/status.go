// Package moderation holds the content-status state machine shared by all
// moderated entities (beers, breweries, styles, style requests).
package moderation

import (
	"errors"
	"fmt"
)

// Status is the review state of a piece of user-visible content. The store
// never sees a value outside this enum; ParseStatus guards every write path.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var (
	ErrUnknownStatus     = errors.New("unknown status")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrAdminRequired     = errors.New("admin privileges required")
)

func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(value), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, value)
}

func (s Status) String() string {
	return string(s)
}

// Role mirrors the role column on the users table.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Transition is one legal edge of the state machine together with the role
// allowed to take it.
type Transition struct {
	From         Status
	To           Status
	RequiredRole Role
}

// Transitions is the closed transition table. Every move between distinct
// states is an admin action; there is no self-transition and no transition a
// plain user may take directly (user submissions enter at pending via the
// initial-status rule, not via a transition).
var Transitions = []Transition{
	{From: StatusPending, To: StatusApproved, RequiredRole: RoleAdmin},
	{From: StatusPending, To: StatusRejected, RequiredRole: RoleAdmin},
	{From: StatusApproved, To: StatusPending, RequiredRole: RoleAdmin},
	{From: StatusApproved, To: StatusRejected, RequiredRole: RoleAdmin},
	{From: StatusRejected, To: StatusPending, RequiredRole: RoleAdmin},
	{From: StatusRejected, To: StatusApproved, RequiredRole: RoleAdmin},
}

// CanTransition reports whether role may move content from one status to
// another. A no-op transition (from == to) is always permitted so that
// repeated approve clicks stay benign.
func CanTransition(from Status, to Status, role Role) bool {
	if from == to {
		return true
	}

	for _, transition := range Transitions {
		if transition.From == from && transition.To == to {
			return transition.RequiredRole == role
		}
	}

	return false
}

// CheckTransition is CanTransition with the error taxonomy attached.
func CheckTransition(from Status, to Status, role Role) error {
	if from == to {
		return nil
	}

	for _, transition := range Transitions {
		if transition.From == from && transition.To == to {
			if transition.RequiredRole != role {
				return fmt.Errorf("%w: %s -> %s", ErrAdminRequired, from, to)
			}

			return nil
		}
	}

	return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
}

// InitialStatus returns the status newly created content enters with:
// pending for user submissions, approved for admin-direct creations.
func InitialStatus(role Role) Status {
	if role == RoleAdmin {
		return StatusApproved
	}

	return StatusPending
}
