package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrNotFound reports that no record exists for the requested id.
var ErrNotFound = errors.New("record not found")

// ValidationError reports missing or malformed input fields. It is
// mapped to a 400 at the API boundary.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErr(reason string) error {
	return &ValidationError{Reason: reason}
}

// IsValidation reports whether err is a ValidationError anywhere in
// its chain.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// wrapDB normalizes gorm errors: record-not-found becomes ErrNotFound,
// everything else is wrapped with the failing operation's name.
func wrapDB(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return errors.Wrap(err, op)
}
