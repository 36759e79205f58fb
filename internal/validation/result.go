package validation

import (
	"strings"

	apperrors "github.com/target/bookshelf-web/internal/errors"
)

// FieldError is one failing field and the message to show next to it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of a validation: success, or the list of failing fields.
// The zero value is a success.
type Result struct {
	Errors []FieldError `json:"errors,omitempty"`
}

// OK reports whether validation passed.
func (r Result) OK() bool { return len(r.Errors) == 0 }

// Add returns r with one more failure. A field already failing keeps its first message.
func (r Result) Add(field, message string) Result {
	if r.Message(field) != "" {
		return r
	}
	out := make([]FieldError, len(r.Errors), len(r.Errors)+1)
	copy(out, r.Errors)
	r.Errors = append(out, FieldError{Field: field, Message: message})
	return r
}

// Merge returns r followed by the failures of other.
func (r Result) Merge(other Result) Result {
	for _, fe := range other.Errors {
		r = r.Add(fe.Field, fe.Message)
	}
	return r
}

// Message returns the failure message for field, or "" when the field passed.
func (r Result) Message(field string) string {
	for _, fe := range r.Errors {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// Fields returns failures keyed by field.
func (r Result) Fields() map[string]string {
	out := make(map[string]string, len(r.Errors))
	for _, fe := range r.Errors {
		out[fe.Field] = fe.Message
	}
	return out
}

// Err converts a failed result into a validation AppError naming the first field.
// It returns nil when validation passed.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, fe := range r.Errors {
		msgs = append(msgs, fe.Message)
	}
	return apperrors.ValidationField(r.Errors[0].Field, strings.Join(msgs, " "))
}

// Field validates a single value and reports it under name.
func Field(name, value string, validators ...Validator) Result {
	return New().Validate(name, value, validators...).Result()
}
