package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"slices"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/samber/lo"
	"github.com/shandysiswandi/finvalidate/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var (
	errNotDate   = errors.New("value is not a date")
	errNotNumber = errors.New("value is not a finite number")
)

// unknownFieldsReject turns keys outside a schema into errors. Any other
// value of validation.unknown_fields drops them.
const unknownFieldsReject = "reject"

// bind copies record into rec field by field in declaration order. It checks
// presence and coerces raw values to the field types; rule checks are left to
// the validator. The returned errors name every field that could not be bound.
func (s *Usecase) bind(sc *schema, record map[string]any, rec any) validator.ValidationErrors {
	out := reflect.ValueOf(rec).Elem()
	hook := mapstructure.ComposeDecodeHookFunc(dateHook(s.dateLayouts()), decimalHook)

	var errs validator.ValidationErrors
	for _, f := range sc.fields {
		raw, present := record[f.name]
		switch {
		case !present && f.optional:
			continue
		case !present:
			errs = append(errs, validator.FieldError{
				Field:   f.name,
				Rule:    validator.MsgRequired,
				Message: s.validator.Message(validator.MsgRequired, f.name),
			})
			continue
		case raw == nil:
			errs = append(errs, validator.FieldError{
				Field:   f.name,
				Rule:    "type",
				Message: s.validator.Message(validator.MsgNull, f.name, string(f.kind)),
			})
			continue
		}

		if err := decodeField(raw, f, out.Field(f.index), hook); err != nil {
			errs = append(errs, validator.FieldError{
				Field:   f.name,
				Rule:    "type",
				Message: s.validator.Message(validator.MsgType, f.name, string(f.kind)),
			})
		}
	}

	return errs
}

func decodeField(raw any, f field, target reflect.Value, hook mapstructure.DecodeHookFunc) error {
	// json.Number has a string kind, mapstructure would happily copy it into
	// string fields.
	if _, isNumber := raw.(json.Number); isNumber && f.kind != kindNumber {
		return fmt.Errorf("%s: number given for %s field", f.name, f.kind)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       hook,
		Result:           target.Addr().Interface(),
		WeaklyTypedInput: false,
	})
	if err != nil {
		return err
	}

	return dec.Decode(raw)
}

// unknownKeys reports keys of record outside the schema when the configured
// policy is reject. Keys are sorted so results stay deterministic.
func (s *Usecase) unknownKeys(sc *schema, record map[string]any) validator.ValidationErrors {
	if s.cfg.GetString("validation.unknown_fields") != unknownFieldsReject {
		return nil
	}

	keys := lo.Filter(lo.Keys(record), func(k string, _ int) bool {
		_, known := sc.position[k]
		return !known
	})
	slices.Sort(keys)

	return lo.Map(keys, func(k string, _ int) validator.FieldError {
		return validator.FieldError{
			Field:   k,
			Rule:    "unknown",
			Message: s.validator.Message(validator.MsgUnknownField, k),
		}
	})
}

func (s *Usecase) dateLayouts() []string {
	layouts := s.cfg.GetArray("validation.date_layouts")
	if len(layouts) == 0 {
		return []string{time.RFC3339, time.DateOnly}
	}
	return layouts
}

// dateHook accepts time.Time values as is and parses strings with the first
// matching layout.
func dateHook(layouts []string) mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		if to != timeType {
			return data, nil
		}

		switch v := data.(type) {
		case time.Time:
			return v, nil
		case string:
			for _, layout := range layouts {
				if t, err := time.Parse(layout, v); err == nil {
					return t, nil
				}
			}
			return nil, fmt.Errorf("%w: %q", errNotDate, v)
		default:
			return nil, errNotDate
		}
	}
}

// decimalHook converts numeric input into decimal.Decimal. Strings are not
// numbers and are rejected.
func decimalHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != decimalType {
		return data, nil
	}

	switch v := data.(type) {
	case decimal.Decimal:
		return v, nil
	case json.Number:
		return decimal.NewFromString(v.String())
	}

	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(rv.Uint()), 0), nil
	case reflect.Float32:
		f := float32(rv.Float())
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			return nil, errNotNumber
		}
		return decimal.NewFromFloat32(f), nil
	case reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, errNotNumber
		}
		return decimal.NewFromFloat(f), nil
	default:
		return nil, errNotNumber
	}
}
