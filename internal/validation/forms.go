package validation

import (
	"errors"
	"sort"

	ozzo "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/target/bookshelf-web/internal/domain/model"
)

// Address field bounds, in characters.
const (
	ConsigneeMaxLen = 30
	DetailMaxLen    = 200
	LabelMaxLen     = 20
)

// rule adapts a Validator to an ozzo rule. The validator sees the raw string,
// so it decides for itself how to treat empty input.
func rule(v Validator) ozzo.Rule {
	return ozzo.By(func(value interface{}) error {
		s, _ := value.(string)
		if msg := v(s); msg != "" {
			return errors.New(msg)
		}
		return nil
	})
}

var codeRules = []ozzo.Rule{
	ozzo.Required.Error(MsgCodeRequired),
	is.Digit.Error(MsgCodeInvalid),
}

// LoginForm validates an email and password sign-in.
func LoginForm(f model.LoginForm) Result {
	return fromOzzo(ozzo.ValidateStruct(&f,
		ozzo.Field(&f.Email, rule(Email)),
		ozzo.Field(&f.Password, rule(Password)),
	))
}

// CodeLoginForm validates a verification-code sign-in.
func CodeLoginForm(f model.CodeLoginForm) Result {
	return fromOzzo(ozzo.ValidateStruct(&f,
		ozzo.Field(&f.Email, rule(Email)),
		ozzo.Field(&f.Code, codeRules...),
	))
}

// RegisterForm validates a registration and its repeated password.
func RegisterForm(f model.RegisterForm, confirm string) Result {
	r := fromOzzo(ozzo.ValidateStruct(&f,
		ozzo.Field(&f.Username, rule(Username)),
		ozzo.Field(&f.Password, rule(Password)),
		ozzo.Field(&f.Email, rule(Email)),
		ozzo.Field(&f.Code, codeRules...),
	))
	return r.Merge(Field("confirm_password", confirm, Equals(f.Password)))
}

// ProfileForm validates profile edits. Phone and avatar are optional.
func ProfileForm(u model.User) Result {
	return fromOzzo(ozzo.ValidateStruct(&u,
		ozzo.Field(&u.Username, rule(Username)),
		ozzo.Field(&u.Email, rule(Email)),
		ozzo.Field(&u.Phone, rule(IfPresent(Phone))),
		ozzo.Field(&u.Avatar, is.URL),
	))
}

// AddressForm validates a delivery address.
func AddressForm(a model.AddressBook) Result {
	return fromOzzo(ozzo.ValidateStruct(&a,
		ozzo.Field(&a.Consignee, rule(RequiredRange("Consignee", 1, ConsigneeMaxLen))),
		ozzo.Field(&a.Sex, rule(OneOf("Sex", []string{"0", "1"}))),
		ozzo.Field(&a.Phone, rule(Phone)),
		ozzo.Field(&a.Detail, rule(Required("Address", DetailMaxLen))),
		ozzo.Field(&a.Label, rule(Optional("Label", LabelMaxLen))),
	))
}

// fromOzzo converts ozzo's per-field error map into a Result ordered by field name.
func fromOzzo(err error) Result {
	if err == nil {
		return Result{}
	}
	var errs ozzo.Errors
	if !errors.As(err, &errs) {
		return Result{}.Add("", err.Error())
	}
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var r Result
	for _, f := range fields {
		r = r.Add(f, errs[f].Error())
	}
	return r
}
