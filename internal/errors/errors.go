package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ForbiddenError represents an authorization failure
type ForbiddenError struct {
	Action string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("only the team leader can %s", e.Action)
}

// Is enables errors.Is() comparison for ForbiddenError
func (e *ForbiddenError) Is(target error) bool {
	t, ok := target.(*ForbiddenError)
	if !ok {
		return false
	}
	return e.Action == t.Action
}

// ConflictError represents an invalid membership state transition,
// such as joining a team twice
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// UpstreamError represents a failed call to the Appwrite backend
type UpstreamError struct {
	Service    string // "databases" or "users"
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("appwrite %s: %s (status %d)", e.Service, e.Message, e.StatusCode)
}

// Entity Not Found Errors
var (
	ErrHackathonNotFound  = &NotFoundError{Entity: "hackathon"}
	ErrTeamNotFound       = &NotFoundError{Entity: "team"}
	ErrSubmissionNotFound = &NotFoundError{Entity: "submission"}
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
	ErrRequestNotFound    = &NotFoundError{Entity: "join request"}
)

// Forbidden Errors
var (
	ErrNotLeaderApprove = &ForbiddenError{Action: "approve requests"}
	ErrNotLeaderReject  = &ForbiddenError{Action: "reject requests"}
	ErrNotLeaderDelete  = &ForbiddenError{Action: "delete the team"}
)

// Membership Conflict Errors
var (
	ErrAlreadyMember  = &ConflictError{Message: "user is already a member of this team"}
	ErrRequestPending = &ConflictError{Message: "join request already pending"}
	ErrNotMember      = &ConflictError{Message: "user is not a member of this team"}
)

// IsNotFound reports whether err is any NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsForbidden reports whether err is any ForbiddenError
func IsForbidden(err error) bool {
	var fb *ForbiddenError
	return errors.As(err, &fb)
}

// IsConflict reports whether err is any ConflictError
func IsConflict(err error) bool {
	var cf *ConflictError
	return errors.As(err, &cf)
}

// IsValidation reports whether err is any ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
