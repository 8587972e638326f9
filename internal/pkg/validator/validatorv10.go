package validator

import (
	"errors"
	"log/slog"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/shandysiswandi/finvalidate/internal/pkg/strcase"
	"github.com/shopspring/decimal"
)

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// V10Validator implements Validator using go-playground/validator v10.
type V10Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewV10Validator constructs a V10Validator with English translations and the
// built-in custom rules (accepted, password strength tags, message keys used
// by binders).
func NewV10Validator() (*V10Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(FieldName)
	validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	v := &V10Validator{
		validate:   validate,
		translator: enTrans,
	}

	if err := v.Register(builtinRules()...); err != nil {
		return nil, err
	}

	for key, text := range builtinMessages {
		if err := enTrans.Add(key, text, false); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Validate validates a struct and returns ValidationErrors on failure.
//
// Errors keep the order go-playground reports them in: fields in declaration
// order followed by struct-level errors.
func (v *V10Validator) Validate(data any) error {
	err := v.validate.Struct(data)
	if err == nil {
		return nil
	}

	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) {
		return err
	}

	out := make(ValidationErrors, 0, len(validateErrs))
	for _, fe := range validateErrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: fe.Translate(v.translator),
		})
	}

	return out
}

// Message renders the translation registered for key.
//
// Unknown keys fall back to the key itself so callers never lose the error.
func (v *V10Validator) Message(key string, params ...string) string {
	t, err := v.translator.T(key, params...)
	if err != nil {
		slog.Warn("warning: error translating", "key", key, "error", err)
		return key
	}

	return t
}

// Register adds custom rules and their English messages.
func (v *V10Validator) Register(rules ...Rule) error {
	for _, r := range rules {
		if r.Field != nil {
			if err := v.validate.RegisterValidation(r.Tag, r.Field); err != nil {
				return err
			}
		}

		if r.Struct != nil {
			v.validate.RegisterStructValidation(r.Struct, r.Types...)
		}

		if r.Message != "" {
			if err := v.registerMessage(r.Tag, r.Message); err != nil {
				return err
			}
		}
	}

	return nil
}

func (v *V10Validator) registerMessage(tag, text string) error {
	return v.validate.RegisterTranslation(tag, v.translator,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, false)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, err := ut.T(fe.Tag(), fe.Field(), fe.Param())
			if err != nil {
				slog.Warn("warning: error translating", "FieldError", fe, "error", err)
				return fe.(error).Error()
			}

			return t
		},
	)
}

// FieldName returns the external name of a struct field: the JSON name when
// tagged, the snake_case Go name otherwise.
func FieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return strcase.ToLowerSnake(fld.Name)
	default:
		return name
	}
}

// decimalValue exposes a decimal to the numeric tags as a float64. Values too
// small for float64 keep their sign so comparisons against zero stay exact.
func decimalValue(field reflect.Value) any {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}

	f, _ := d.Float64()
	if f == 0 && !d.IsZero() {
		return math.Copysign(math.SmallestNonzeroFloat64, float64(d.Sign()))
	}
	return f
}
