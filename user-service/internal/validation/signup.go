package validation

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/Youhab1/cloud-finalproject/user-service/internal/domain"
	"github.com/go-playground/validator/v10"
)

const (
	MsgUsernameRequired  = "Username is required"
	MsgUsernameTaken     = "Username already taken"
	MsgPasswordTooShort  = "Password must be at least 8 characters long"
	MsgPasswordTooWeak   = "Password must contain at least one uppercase letter, one lowercase letter, one number, and one special character"
	MsgPasswordsMismatch = "Passwords do not match"
	MsgPhoneRequired     = "Phone number is required"
	MsgPhoneInvalid      = "Invalid Egyptian phone number"
	MsgEmailInvalid      = "Invalid email address"
)

const passwordSpecials = "@$!%*?&"

var egyptianMobile = regexp.MustCompile(`^((\+?20)|0)?1[0125]\d{8}$`)

type rule struct {
	check func(v *validator.Validate, r domain.SignupRequest) error
	msg   string
}

func field(value func(domain.SignupRequest) string, tag string) func(*validator.Validate, domain.SignupRequest) error {
	return func(v *validator.Validate, r domain.SignupRequest) error {
		return v.Var(value(r), tag)
	}
}

func username(r domain.SignupRequest) string { return r.Username }
func password(r domain.SignupRequest) string { return r.Password }
func phone(r domain.SignupRequest) string    { return r.PhoneNumber }
func email(r domain.SignupRequest) string    { return r.Email }

// Rules run in order and every failing rule contributes its message, so a
// field can report more than one problem.
var signupRules = []rule{
	{field(username, "required"), MsgUsernameRequired},
	{field(password, "min=8"), MsgPasswordTooShort},
	{field(password, "strong_password"), MsgPasswordTooWeak},
	{func(v *validator.Validate, r domain.SignupRequest) error {
		return v.VarWithValue(r.ConfirmPassword, r.Password, "eqfield")
	}, MsgPasswordsMismatch},
	{field(phone, "required"), MsgPhoneRequired},
	{field(phone, "omitempty,eg_mobile"), MsgPhoneInvalid},
	{field(email, "email"), MsgEmailInvalid},
}

type SignupValidator struct {
	validate *validator.Validate
}

func NewSignupValidator() *SignupValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("strong_password", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
	_ = v.RegisterValidation("eg_mobile", func(fl validator.FieldLevel) bool {
		return IsEgyptianMobile(fl.Field().String())
	})
	return &SignupValidator{validate: v}
}

// Validate returns the messages of every failed check, empty when the
// request is acceptable. Username uniqueness needs the store and is checked
// by the caller.
func (s *SignupValidator) Validate(req domain.SignupRequest) []string {
	var msgs []string
	for _, r := range signupRules {
		if err := r.check(s.validate, req); err != nil {
			msgs = append(msgs, r.msg)
		}
	}
	return msgs
}

// IsStrongPassword reports whether p has a lowercase letter, an uppercase
// letter, a digit and one of @$!%*?&, and nothing else.
func IsStrongPassword(p string) bool {
	var lower, upper, digit, special bool
	for _, r := range p {
		switch {
		case r > unicode.MaxASCII:
			return false
		case 'a' <= r && r <= 'z':
			lower = true
		case 'A' <= r && r <= 'Z':
			upper = true
		case '0' <= r && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		default:
			return false
		}
	}
	return lower && upper && digit && special
}

func IsEgyptianMobile(phone string) bool {
	return egyptianMobile.MatchString(phone)
}
