package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/nyaruka/phonenumbers"
)

// Password and username bounds, in characters.
const (
	UsernameMaxLen     = 30
	PasswordMinLen     = 8
	PasswordMaxLen     = 20
	PhoneDefaultRegion = "CN"
)

var (
	emailRe = regexp.MustCompile(`^[\w-]+(\.[\w-]+)*@[\w-]+(\.[\w-]+)+$`)
	phoneRe = regexp.MustCompile(`^1[3-9]\d{9}$`)
)

// Messages shown to the reader.
const (
	MsgEmailRequired    = "Please enter your email."
	MsgEmailInvalid     = "Email format is invalid."
	MsgUsernameRequired = "Please enter a username."
	MsgUsernameLength   = "Username must be 1-30 characters."
	MsgPasswordRequired = "Please enter a password."
	MsgPasswordLength   = "Password must be 8-20 characters."
	MsgPhoneRequired    = "Please enter a phone number."
	MsgPhoneInvalid     = "Phone number format is invalid."
	MsgConfirmRequired  = "Please enter the password again."
	MsgConfirmTooShort  = "Password must be at least 8 characters."
	MsgConfirmTooLong   = "Password cannot exceed 20 characters."
	MsgConfirmMismatch  = "The two passwords do not match."
	MsgCodeRequired     = "Please enter the verification code."
	MsgCodeInvalid      = "Verification code must be digits."
)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// Email requires a well-formed address. Surrounding whitespace is ignored.
func Email(v string) string {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return MsgEmailRequired
	case !IsValidEmail(v):
		return MsgEmailInvalid
	}
	return ""
}

// Username requires 1 to 30 characters.
func Username(v string) string {
	if v == "" {
		return MsgUsernameRequired
	}
	if utf8.RuneCountInString(v) > UsernameMaxLen {
		return MsgUsernameLength
	}
	return ""
}

// Password requires 8 to 20 characters.
func Password(v string) string {
	if v == "" {
		return MsgPasswordRequired
	}
	if n := utf8.RuneCountInString(v); n < PasswordMinLen || n > PasswordMaxLen {
		return MsgPasswordLength
	}
	return ""
}

// Phone requires an 11-digit mainland mobile number that libphonenumber accepts.
func Phone(v string) string {
	if v == "" {
		return MsgPhoneRequired
	}
	if !phoneRe.MatchString(v) || !validPhoneNumber(v, PhoneDefaultRegion) {
		return MsgPhoneInvalid
	}
	return ""
}

func validPhoneNumber(v, region string) bool {
	num, err := phonenumbers.Parse(v, region)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumberForRegion(num, region)
}

// ConfirmPassword returns a validator that requires the value to repeat original.
// original is read when the validator runs, so it may track a changing form field.
func ConfirmPassword(original func() string) Validator {
	return func(v string) string {
		n := utf8.RuneCountInString(v)
		switch {
		case v == "":
			return MsgConfirmRequired
		case n < PasswordMinLen:
			return MsgConfirmTooShort
		case n > PasswordMaxLen:
			return MsgConfirmTooLong
		case v != original():
			return MsgConfirmMismatch
		}
		return ""
	}
}

// Equals is ConfirmPassword against a fixed value.
func Equals(original string) Validator {
	return ConfirmPassword(func() string { return original })
}

// FieldValidators maps the names accepted by ValidateField to their checks.
var FieldValidators = map[string]Validator{
	"email":    Email,
	"username": Username,
	"password": Password,
	"phone":    Phone,
}

// ValidateField runs the named field check. Unknown names report ok=false.
func ValidateField(name, value string) (Result, bool) {
	v, ok := FieldValidators[name]
	if !ok {
		return Result{}, false
	}
	return Field(name, value, v), true
}
