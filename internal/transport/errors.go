package transport

import (
	"errors"
	"fmt"
)

// ErrUnauthorized means the token was rejected. Stored credentials are already
// cleared by the time a caller sees this; the caller redirects to login.
var ErrUnauthorized = errors.New("unauthorized")

// ErrBusinessRequired means the backend refused the call because no business
// is selected. Privileged roles go pick one; other roles surface it as a
// domain error.
var ErrBusinessRequired = errors.New("business not selected")

// ValidationError is a 4xx whose body carries a recognized field-specific
// marker, mapped to a message fit for the user.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// RequestError covers every other non-2xx outcome.
type RequestError struct {
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Body)
}

var validationMarkers = []struct {
	marker  string
	field   string
	message string
}{
	{"email already exists", "email", "a user with this email already exists"},
	{"username already exists", "username", "this username is already taken"},
	{"phone already exists", "phone", "a supplier with this phone already exists"},
}

var businessMarkers = []string{
	"business not selected",
	"business_id is required",
	"no business selected",
}
