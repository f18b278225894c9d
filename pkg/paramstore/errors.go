package paramstore

import (
	"errors"
	"fmt"

	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/smithy-go"
)

// NotFoundError indicates that Update was asked to modify a parameter
// that does not exist in the active group.
type NotFoundError struct {
	// Parameter is the leaf name that was looked up.
	Parameter string

	// Group is the active group at the time of the call, "" if none.
	Group string
}

// Error implements the error interface.
func (e NotFoundError) Error() string {
	if e.Group != "" {
		return fmt.Sprintf("parameter '%s' not found in group '%s'", e.Parameter, e.Group)
	}
	return fmt.Sprintf("parameter '%s' not found", e.Parameter)
}

// AlreadyExistsError indicates that Create was asked to create a
// parameter that already exists in the active group.
type AlreadyExistsError struct {
	Parameter string
	Group     string
}

// Error implements the error interface.
func (e AlreadyExistsError) Error() string {
	var msg string
	if e.Group != "" {
		msg = fmt.Sprintf("parameter '%s' already exists in group '%s'.", e.Parameter, e.Group)
	} else {
		msg = fmt.Sprintf("parameter '%s' already exists.", e.Parameter)
	}
	return msg + " Use Update to overwrite it or Upsert to create-or-overwrite"
}

// TagsWithOverwriteError indicates that tags were supplied to an
// overwriting write. The backend rejects Overwrite together with Tags,
// so the combination is refused here before any remote call is made.
type TagsWithOverwriteError struct {
	Parameter string
}

// Error implements the error interface.
func (e TagsWithOverwriteError) Error() string {
	return fmt.Sprintf("cannot overwrite parameter '%s' and set tags in the same call. Create it with tags, or tag it separately", e.Parameter)
}

// BackendError wraps a backend failure this layer does not translate,
// such as throttling, access denial or transport problems.
type BackendError struct {
	// Op describes the attempted operation, e.g. "put parameter /a/b".
	Op string

	// Code is the backend's API error code when one was supplied.
	Code string

	Err error
}

// Error implements the error interface.
func (e BackendError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying backend error.
func (e BackendError) Unwrap() error {
	return e.Err
}

// isNotFound reports whether err is the backend's missing-parameter
// signal.
func isNotFound(err error) bool {
	var nf *ssmtypes.ParameterNotFound
	return errors.As(err, &nf)
}

// isAlreadyExists reports whether err is the backend's duplicate-
// parameter signal.
func isAlreadyExists(err error) bool {
	var ae *ssmtypes.ParameterAlreadyExists
	return errors.As(err, &ae)
}

func backendError(op string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return BackendError{Op: op, Code: apiErr.ErrorCode(), Err: err}
	}
	return BackendError{Op: op, Err: err}
}
