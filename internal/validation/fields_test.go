package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/target/bookshelf-web/internal/errors"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"reader@example.com", ""},
		{"  first.last@mail.example.cn ", ""},
		{"a-b_c@d-e.org", ""},
		{"", MsgEmailRequired},
		{"   ", MsgEmailRequired},
		{"reader@", MsgEmailInvalid},
		{"reader@example", MsgEmailInvalid},
		{"two@@example.com", MsgEmailInvalid},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Email(tt.value), "Email(%q)", tt.value)
	}
}

func TestUsername(t *testing.T) {
	assert.Equal(t, MsgUsernameRequired, Username(""))
	assert.Empty(t, Username("a"))
	assert.Empty(t, Username(strings.Repeat("书", 30)))
	assert.Equal(t, MsgUsernameLength, Username(strings.Repeat("书", 31)))
}

func TestPassword(t *testing.T) {
	assert.Equal(t, MsgPasswordRequired, Password(""))
	assert.Equal(t, MsgPasswordLength, Password("1234567"))
	assert.Empty(t, Password("12345678"))
	assert.Empty(t, Password(strings.Repeat("x", 20)))
	assert.Equal(t, MsgPasswordLength, Password(strings.Repeat("x", 21)))
}

func TestPhone(t *testing.T) {
	assert.Equal(t, MsgPhoneRequired, Phone(""))
	assert.Empty(t, Phone("13800138000"))
	assert.Empty(t, Phone("18612345678"))
	assert.Equal(t, MsgPhoneInvalid, Phone("12800138000"), "second digit must be 3-9")
	assert.Equal(t, MsgPhoneInvalid, Phone("1380013800"), "ten digits")
	assert.Equal(t, MsgPhoneInvalid, Phone("+8613800138000"), "country prefix is not accepted")
	assert.Equal(t, MsgPhoneInvalid, Phone("1380013800a"))
}

func TestConfirmPassword(t *testing.T) {
	original := "password1"
	v := ConfirmPassword(func() string { return original })

	assert.Equal(t, MsgConfirmRequired, v(""))
	assert.Equal(t, MsgConfirmTooShort, v("1234567"))
	assert.Equal(t, MsgConfirmTooLong, v(strings.Repeat("x", 21)))
	assert.Equal(t, MsgConfirmMismatch, v("password2"))
	assert.Empty(t, v("password1"))

	// The original is read on every call.
	original = "password2"
	assert.Empty(t, v("password2"))
}

func TestValidateField(t *testing.T) {
	r, ok := ValidateField("email", "nope")
	require.True(t, ok)
	assert.False(t, r.OK())
	assert.Equal(t, MsgEmailInvalid, r.Message("email"))

	r, ok = ValidateField("phone", "13800138000")
	require.True(t, ok)
	assert.True(t, r.OK())

	_, ok = ValidateField("shoe-size", "42")
	assert.False(t, ok)
}

func TestResult_Err(t *testing.T) {
	assert.NoError(t, Result{}.Err())

	r := Result{}.Add("email", MsgEmailInvalid).Add("password", MsgPasswordLength)
	err := r.Err()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "email", apperrors.GetField(err))
	assert.Contains(t, err.Error(), MsgPasswordLength)
}

func TestResult_AddKeepsFirstMessage(t *testing.T) {
	r := Result{}.Add("email", "first").Add("email", "second")
	require.Len(t, r.Errors, 1)
	assert.Equal(t, "first", r.Message("email"))

	merged := r.Merge(Result{}.Add("phone", MsgPhoneInvalid))
	assert.Equal(t, map[string]string{"email": "first", "phone": MsgPhoneInvalid}, merged.Fields())
	assert.Len(t, r.Errors, 1, "merge must not mutate the receiver")
}
