package validator

import (
	"reflect"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Message keys rendered through Message by callers that check input before
// struct validation runs (presence, type coercion, unknown keys).
const (
	MsgRequired     = "required"
	MsgType         = "bind_type"
	MsgNull         = "bind_null"
	MsgUnknownField = "unknown_field"
)

// Tags reported by PasswordStrength, one per independent condition.
const (
	TagPasswordMin     = "password_min"
	TagPasswordUpper   = "password_upper"
	TagPasswordLower   = "password_lower"
	TagPasswordDigit   = "password_digit"
	TagPasswordSpecial = "password_special"
)

var (
	reUpper   = regexp.MustCompile(`[A-Z]`)
	reLower   = regexp.MustCompile(`[a-z]`)
	reDigit   = regexp.MustCompile(`[0-9]`)
	reSpecial = regexp.MustCompile(`[@$!%*?&]`)
)

var builtinMessages = map[string]string{
	MsgType:         "{0} must be a {1}",
	MsgNull:         "{0} must be a {1}, received null",
	MsgUnknownField: "{0} is not an allowed field",
}

func builtinRules() []Rule {
	return []Rule{
		{
			Tag:     "accepted",
			Message: "{0} must be agreed to",
			Field: func(fl validator.FieldLevel) bool {
				f := fl.Field()
				return f.Kind() == reflect.Bool && f.Bool()
			},
		},
		{
			// Replaces the stock uuid tag, which only matches lowercase hex.
			Tag:   "uuid",
			Field: func(fl validator.FieldLevel) bool { return isUUID(fl.Field().String()) },
		},
		{Tag: TagPasswordMin, Message: "{0} must be at least {1} characters long"},
		{Tag: TagPasswordUpper, Message: "{0} must contain at least one uppercase letter"},
		{Tag: TagPasswordLower, Message: "{0} must contain at least one lowercase letter"},
		{Tag: TagPasswordDigit, Message: "{0} must contain at least one number"},
		{Tag: TagPasswordSpecial, Message: "{0} must contain at least one special character (@$!%*?&)"},
	}
}

// isUUID accepts the hyphenated 8-4-4-4-12 form in either letter case.
func isUUID(s string) bool {
	return len(s) == 36 && uuid.Validate(s) == nil
}

// PasswordStrength returns a struct-level rule checking the string field
// named goField. Every unmet condition is reported separately: minimum
// length, an uppercase letter, a lowercase letter, a digit and one of
// @$!%*?&. An empty value is left to the field's own required tag.
func PasswordStrength(goField string, minLen int) validator.StructLevelFunc {
	return func(sl validator.StructLevel) {
		cur := sl.Current()
		sf, ok := cur.Type().FieldByName(goField)
		if !ok || sf.Type.Kind() != reflect.String {
			return
		}

		pw := cur.FieldByIndex(sf.Index).String()
		if pw == "" {
			return
		}

		name := FieldName(sf)
		if utf8.RuneCountInString(pw) < minLen {
			sl.ReportError(pw, name, goField, TagPasswordMin, strconv.Itoa(minLen))
		}
		if !reUpper.MatchString(pw) {
			sl.ReportError(pw, name, goField, TagPasswordUpper, "")
		}
		if !reLower.MatchString(pw) {
			sl.ReportError(pw, name, goField, TagPasswordLower, "")
		}
		if !reDigit.MatchString(pw) {
			sl.ReportError(pw, name, goField, TagPasswordDigit, "")
		}
		if !reSpecial.MatchString(pw) {
			sl.ReportError(pw, name, goField, TagPasswordSpecial, "")
		}
	}
}
