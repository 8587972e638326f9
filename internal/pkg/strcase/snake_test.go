package strcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToLowerSnake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "Name", want: "name"},
		{in: "FirstName", want: "first_name"},
		{in: "TaxID", want: "tax_id"},
		{in: "KycID", want: "kyc_id"},
		{in: "DocumentURL", want: "document_url"},
		{in: "ContactPersonPhoneNumber", want: "contact_person_phone_number"},
		{in: "HTTPServer", want: "http_server"},
		{in: "Address2Line", want: "address2_line"},
		{in: "already_snake", want: "already_snake"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ToLowerSnake(tt.in))
		})
	}
}
