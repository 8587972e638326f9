package usecase

import (
	"reflect"
	"time"

	"github.com/shandysiswandi/finvalidate/internal/pkg/validator"
	"github.com/shandysiswandi/finvalidate/internal/ruleset/entity"
	"github.com/shopspring/decimal"
)

// Schema names accepted by Validate.
const (
	SchemaUserRegistration     = "user_registration"
	SchemaKycDocument          = "kyc_document"
	SchemaInvoice              = "invoice"
	SchemaVendor               = "vendor"
	SchemaKycUpdate            = "kyc_update"
	SchemaMilestone            = "milestone"
	SchemaInvoiceUpdate        = "invoice_update"
	SchemaUserUpdate           = "user_update"
	SchemaFundingRequestUpdate = "funding_request_update"
	SchemaMilestoneUpdate      = "milestone_update"
	SchemaFundingRequest       = "funding_request"
	SchemaAdminUpdate          = "admin_update"
	SchemaNotification         = "notification"
	SchemaRegisterAppUser      = "register_app_user"
)

type kind string

const (
	kindString  kind = "string"
	kindNumber  kind = "number"
	kindBoolean kind = "boolean"
	kindDate    kind = "date"
)

var (
	timeType    = reflect.TypeFor[time.Time]()
	decimalType = reflect.TypeFor[decimal.Decimal]()
)

type field struct {
	name     string
	index    int
	optional bool
	kind     kind
}

type schema struct {
	name      string
	newRecord func() any
	fields    []field
	position  map[string]int
}

func newSchema[T any](name string) *schema {
	typ := reflect.TypeFor[T]()

	sc := &schema{
		name:      name,
		newRecord: func() any { return new(T) },
		position:  make(map[string]int, typ.NumField()),
	}

	for i := range typ.NumField() {
		sf := typ.Field(i)
		fname := validator.FieldName(sf)
		if !sf.IsExported() || fname == "" {
			continue
		}

		ft := sf.Type
		optional := ft.Kind() == reflect.Pointer
		if optional {
			ft = ft.Elem()
		}

		sc.position[fname] = len(sc.fields)
		sc.fields = append(sc.fields, field{
			name:     fname,
			index:    i,
			optional: optional,
			kind:     kindOf(ft),
		})
	}

	return sc
}

// positionOf orders errors: declared fields first, anything else after.
func (sc *schema) positionOf(name string) int {
	if pos, ok := sc.position[name]; ok {
		return pos
	}
	return len(sc.fields)
}

func kindOf(t reflect.Type) kind {
	switch {
	case t == timeType:
		return kindDate
	case t == decimalType:
		return kindNumber
	}

	switch t.Kind() {
	case reflect.Bool:
		return kindBoolean
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return kindNumber
	default:
		return kindString
	}
}

func registry() map[string]*schema {
	schemas := []*schema{
		newSchema[entity.UserRegistration](SchemaUserRegistration),
		newSchema[entity.KycDocument](SchemaKycDocument),
		newSchema[entity.Invoice](SchemaInvoice),
		newSchema[entity.Vendor](SchemaVendor),
		newSchema[entity.KycUpdate](SchemaKycUpdate),
		newSchema[entity.Milestone](SchemaMilestone),
		newSchema[entity.InvoiceUpdate](SchemaInvoiceUpdate),
		newSchema[entity.UserUpdate](SchemaUserUpdate),
		newSchema[entity.FundingRequestUpdate](SchemaFundingRequestUpdate),
		newSchema[entity.MilestoneUpdate](SchemaMilestoneUpdate),
		newSchema[entity.FundingRequest](SchemaFundingRequest),
		newSchema[entity.AdminUpdate](SchemaAdminUpdate),
		newSchema[entity.Notification](SchemaNotification),
		newSchema[entity.RegisterAppUser](SchemaRegisterAppUser),
	}

	out := make(map[string]*schema, len(schemas))
	for _, sc := range schemas {
		out[sc.name] = sc
	}
	return out
}
