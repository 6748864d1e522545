// Package errs holds the user-facing validation error shared by parsers, engines and adapters.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Validation reports a malformed or out-of-range argument supplied by a user.
// Its message is safe to show verbatim.
type Validation struct {
	Field   string
	Value   string
	Options []string
	Message string
}

func (v *Validation) Error() string {
	if v.Message != "" {
		return v.Message
	}

	msg := fmt.Sprintf("Invalid %s \"%s\".", v.Field, v.Value)
	if len(v.Options) > 0 {
		msg += fmt.Sprintf(" Valid options: %s.", strings.Join(v.Options, ", "))
	}
	return msg
}

// Invalid builds a Validation naming the rejected value and the accepted options.
func Invalid(field, value string, options ...string) error {
	return &Validation{Field: field, Value: value, Options: options}
}

// Newf builds a Validation with a custom message.
func Newf(format string, args ...any) error {
	return &Validation{Message: fmt.Sprintf(format, args...)}
}

// AsValidation unwraps err into a Validation when it is one.
func AsValidation(err error) (*Validation, bool) {
	var v *Validation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
