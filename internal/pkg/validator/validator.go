package validator

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// Validator validates structs and renders rule messages.
type Validator interface {
	// Validate runs every rule on data and returns ValidationErrors on failure.
	Validate(data any) error

	// Message renders the translation registered for key with the given params.
	// The first param is conventionally the field name.
	Message(key string, params ...string) string

	// Register adds custom rules. It must be called before the first Validate.
	Register(rules ...Rule) error
}

// Rule extends the validator with a custom tag, a struct-level check, or both.
type Rule struct {
	// Tag is the struct tag name of a field-level rule, or the error tag a
	// struct-level rule reports with.
	Tag string
	// Message is the English template for Tag; {0} is the field, {1} the param.
	Message string
	// Field is the field-level check bound to Tag.
	Field validator.Func
	// Struct is a struct-level check run for every type listed in Types.
	Struct validator.StructLevelFunc
	// Types lists the struct values Struct applies to.
	Types []any
}

// FieldError describes one failed rule on one field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationErrors is the ordered list of field failures returned by Validate.
//
// Field names are the JSON names of the struct fields.
type ValidationErrors []FieldError

// Error implements the error interface.
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation error"
	}

	b, err := json.Marshal(ve)
	if err != nil {
		return fmt.Sprintf("validation error (failed to marshal: %v)", err)
	}
	return string(b)
}

// Values returns the first message reported for each field.
func (ve ValidationErrors) Values() map[string]string {
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		if _, ok := out[fe.Field]; !ok {
			out[fe.Field] = fe.Message
		}
	}
	return out
}

// Fields returns the failing field names in report order without duplicates.
func (ve ValidationErrors) Fields() []string {
	return lo.Uniq(lo.Map(ve, func(fe FieldError, _ int) string {
		return fe.Field
	}))
}

// Has reports whether field failed with rule. An empty rule matches any rule.
func (ve ValidationErrors) Has(field, rule string) bool {
	return lo.ContainsBy(ve, func(fe FieldError) bool {
		return fe.Field == field && (rule == "" || fe.Rule == rule)
	})
}
