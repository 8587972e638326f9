package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required"`
	Amount   decimal.Decimal `json:"amount" validate:"gte=0"`
	Agreed   bool            `json:"agreed" validate:"accepted"`
	Nickname *string         `json:"nickname" validate:"omitnil,min=3"`
	Color    string          `validate:"omitempty,color_name"`
}

func newTestValidator(t *testing.T) *V10Validator {
	t.Helper()

	v, err := NewV10Validator()
	require.NoError(t, err)

	err = v.Register(
		Rule{
			Tag:     "color_name",
			Message: "{0} must be a known color",
			Field: func(fl validator.FieldLevel) bool {
				return fl.Field().String() == "red" || fl.Field().String() == "blue"
			},
		},
		Rule{Struct: PasswordStrength("Password", 6), Types: []any{signup{}}},
	)
	require.NoError(t, err)

	return v
}

func asValidationErrors(t *testing.T, err error) ValidationErrors {
	t.Helper()

	var ve ValidationErrors
	require.True(t, errors.As(err, &ve), "expected ValidationErrors, got %T", err)
	return ve
}

func TestV10Validator_Validate_Success(t *testing.T) {
	t.Parallel()

	v := newTestValidator(t)
	nick := "neo"

	err := v.Validate(signup{
		Email:    "user@example.com",
		Password: "Abc123!",
		Amount:   decimal.Zero,
		Agreed:   true,
		Nickname: &nick,
		Color:    "red",
	})

	assert.NoError(t, err)
}

func TestV10Validator_Validate_PasswordStrength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		want     []string
	}{
		{name: "valid", password: "Abc123!", want: nil},
		{name: "lowercase digits only", password: "abc123", want: []string{TagPasswordUpper, TagPasswordSpecial}},
		{name: "no lowercase", password: "ABC123!", want: []string{TagPasswordLower}},
		{name: "no digit", password: "Abcdef!", want: []string{TagPasswordDigit}},
		{name: "too short", password: "Ab1!", want: []string{TagPasswordMin}},
		{name: "everything missing", password: "~~", want: []string{
			TagPasswordMin, TagPasswordUpper, TagPasswordLower, TagPasswordDigit, TagPasswordSpecial,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Arrange
			v := newTestValidator(t)
			in := signup{Email: "user@example.com", Password: tt.password, Agreed: true}

			// Act
			err := v.Validate(in)

			// Assert
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}

			ve := asValidationErrors(t, err)
			rules := make([]string, 0, len(ve))
			for _, fe := range ve {
				assert.Equal(t, "password", fe.Field)
				assert.NotEmpty(t, fe.Message)
				rules = append(rules, fe.Rule)
			}
			assert.Equal(t, tt.want, rules)
		})
	}
}

func TestV10Validator_Validate_CollectsAllFields(t *testing.T) {
	t.Parallel()

	v := newTestValidator(t)
	empty := ""

	err := v.Validate(signup{
		Email:    "not-an-email",
		Password: "Abc123!",
		Amount:   decimal.NewFromInt(-1),
		Agreed:   false,
		Nickname: &empty,
		Color:    "green",
	})

	ve := asValidationErrors(t, err)
	assert.Equal(t, []string{"email", "amount", "agreed", "nickname", "color"}, ve.Fields())
	assert.True(t, ve.Has("email", "email"))
	assert.True(t, ve.Has("amount", "gte"))
	assert.True(t, ve.Has("agreed", "accepted"))
	assert.True(t, ve.Has("nickname", "min"))
	assert.True(t, ve.Has("color", "color_name"))

	msgs := ve.Values()
	assert.Equal(t, "email must be a valid email address", msgs["email"])
	assert.Equal(t, "agreed must be agreed to", msgs["agreed"])
	assert.Equal(t, "color must be a known color", msgs["color"])
	assert.Contains(t, msgs["amount"], "0 or greater")
}

func TestV10Validator_Validate_NilOptionalSkipped(t *testing.T) {
	t.Parallel()

	v := newTestValidator(t)

	err := v.Validate(signup{Email: "user@example.com", Password: "Abc123!", Agreed: true})

	assert.NoError(t, err)
}

func TestV10Validator_Validate_InvalidInput(t *testing.T) {
	t.Parallel()

	v := newTestValidator(t)

	err := v.Validate(42)

	require.Error(t, err)
	var ve ValidationErrors
	assert.False(t, errors.As(err, &ve))
}

func TestV10Validator_Message(t *testing.T) {
	t.Parallel()

	v := newTestValidator(t)

	assert.Equal(t, "quantity must be a number", v.Message(MsgType, "quantity", "number"))
	assert.Equal(t, "name must be a string, received null", v.Message(MsgNull, "name", "string"))
	assert.Equal(t, "extra is not an allowed field", v.Message(MsgUnknownField, "extra"))
	assert.Equal(t, "email is a required field", v.Message(MsgRequired, "email"))
	assert.Equal(t, "no_such_key", v.Message("no_such_key", "x"))
}

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "validation error", ValidationErrors{}.Error())

	ve := ValidationErrors{{Field: "email", Rule: "email", Message: "bad"}}
	assert.True(t, strings.HasPrefix(ve.Error(), `[{"field":"email"`))
}

func TestV10Validator_Validate_UUID(t *testing.T) {
	t.Parallel()

	type ref struct {
		ID string `json:"id" validate:"uuid"`
	}

	tests := []struct {
		name  string
		id    string
		valid bool
	}{
		{name: "lowercase", id: "123e4567-e89b-12d3-a456-426614174000", valid: true},
		{name: "uppercase", id: "123E4567-E89B-12D3-A456-426614174000", valid: true},
		{name: "mixed case", id: "123e4567-E89B-12d3-A456-426614174000", valid: true},
		{name: "no hyphens", id: "123e4567e89b12d3a456426614174000"},
		{name: "braced", id: "{123e4567-e89b-12d3-a456-426614174000}"},
		{name: "urn prefix", id: "urn:uuid:123e4567-e89b-12d3-a456-426614174000"},
		{name: "non hex", id: "123e4567-e89b-12d3-a456-42661417400g"},
		{name: "misplaced hyphen", id: "123e456-7e89b-12d3-a456-426614174000"},
		{name: "empty", id: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := newTestValidator(t)

			err := v.Validate(ref{ID: tt.id})

			if tt.valid {
				assert.NoError(t, err)
				return
			}
			ve := asValidationErrors(t, err)
			require.Len(t, ve, 1)
			assert.Equal(t, FieldError{Field: "id", Rule: "uuid", Message: "id must be a valid UUID"}, ve[0])
		})
	}
}

func TestV10Validator_Validate_DecimalBelowFloatRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount string
		valid  bool
	}{
		{name: "tiny negative", amount: "-1e-400"},
		{name: "tiny positive", amount: "1e-400", valid: true},
		{name: "zero", amount: "0", valid: true},
		{name: "negative zero literal", amount: "-0", valid: true},
		{name: "huge positive", amount: "1e400", valid: true},
		{name: "huge negative", amount: "-1e400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Arrange
			v := newTestValidator(t)
			in := signup{
				Email:    "user@example.com",
				Password: "Abc123!",
				Amount:   decimal.RequireFromString(tt.amount),
				Agreed:   true,
			}

			// Act
			err := v.Validate(in)

			// Assert
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			ve := asValidationErrors(t, err)
			assert.Equal(t, []string{"amount"}, ve.Fields())
			assert.True(t, ve.Has("amount", "gte"))
		})
	}
}
