package usecase

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/samber/lo"
	"github.com/shandysiswandi/finvalidate/internal/pkg/goerror"
	"github.com/shandysiswandi/finvalidate/internal/pkg/validator"
	"github.com/shandysiswandi/finvalidate/internal/ruleset/entity"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Validate checks record against the schema registered under name.
//
// On success it returns a pointer to the schema's record type holding the
// coerced values. On failure it returns a goerror of type validation wrapping
// validator.ValidationErrors, ordered by the schema's field order with keys
// outside the schema last.
func (s *Usecase) Validate(ctx context.Context, name string, record map[string]any) (any, error) {
	ctx, span := s.startSpan(ctx, "Validate")
	defer span.End()

	span.SetAttributes(attribute.String("schema", name))

	sc, ok := s.schemas[name]
	if !ok {
		slog.WarnContext(ctx, "unknown schema requested", "schema", name)
		return nil, goerror.NewBusiness("unknown schema "+name, goerror.CodeNotFound)
	}

	rec := sc.newRecord()
	errs := s.bind(sc, record, rec)

	if err := s.validator.Validate(rec); err != nil {
		var ruleErrs validator.ValidationErrors
		if !errors.As(err, &ruleErrs) {
			slog.ErrorContext(ctx, "failed to run schema rules", "schema", name, "error", err)
			return nil, goerror.NewServer(err)
		}

		unbound := errs.Fields()
		errs = append(errs, lo.Reject(ruleErrs, func(fe validator.FieldError, _ int) bool {
			return slices.Contains(unbound, fe.Field)
		})...)
	}

	errs = append(errs, s.unknownKeys(sc, record)...)
	slices.SortStableFunc(errs, func(a, b validator.FieldError) int {
		return sc.positionOf(a.Field) - sc.positionOf(b.Field)
	})

	s.record(ctx, name, len(errs) > 0)

	if len(errs) > 0 {
		span.SetAttributes(attribute.Int("errors", len(errs)))
		slog.InfoContext(ctx, "record rejected", "schema", name, "errors", len(errs))
		return nil, goerror.NewInvalidInput(errs)
	}

	return rec, nil
}

func (s *Usecase) record(ctx context.Context, name string, failed bool) {
	attrs := metric.WithAttributes(attribute.String("schema", name))
	if s.total != nil {
		s.total.Add(ctx, 1, attrs)
	}
	if failed && s.failed != nil {
		s.failed.Add(ctx, 1, attrs)
	}
}

func validateAs[T any](ctx context.Context, s *Usecase, name string, record map[string]any) (*T, error) {
	out, err := s.Validate(ctx, name, record)
	if err != nil {
		return nil, err
	}

	rec, ok := out.(*T)
	if !ok {
		err := errors.New("schema " + name + " produced an unexpected record type")
		trace.SpanFromContext(ctx).RecordError(err)
		return nil, goerror.NewServer(err)
	}
	return rec, nil
}

func (s *Usecase) ValidateUserRegistration(ctx context.Context, record map[string]any) (*entity.UserRegistration, error) {
	return validateAs[entity.UserRegistration](ctx, s, SchemaUserRegistration, record)
}

func (s *Usecase) ValidateKycDocument(ctx context.Context, record map[string]any) (*entity.KycDocument, error) {
	return validateAs[entity.KycDocument](ctx, s, SchemaKycDocument, record)
}

func (s *Usecase) ValidateInvoice(ctx context.Context, record map[string]any) (*entity.Invoice, error) {
	return validateAs[entity.Invoice](ctx, s, SchemaInvoice, record)
}

func (s *Usecase) ValidateVendor(ctx context.Context, record map[string]any) (*entity.Vendor, error) {
	return validateAs[entity.Vendor](ctx, s, SchemaVendor, record)
}

func (s *Usecase) ValidateKycUpdate(ctx context.Context, record map[string]any) (*entity.KycUpdate, error) {
	return validateAs[entity.KycUpdate](ctx, s, SchemaKycUpdate, record)
}

func (s *Usecase) ValidateMilestone(ctx context.Context, record map[string]any) (*entity.Milestone, error) {
	return validateAs[entity.Milestone](ctx, s, SchemaMilestone, record)
}

func (s *Usecase) ValidateInvoiceUpdate(ctx context.Context, record map[string]any) (*entity.InvoiceUpdate, error) {
	return validateAs[entity.InvoiceUpdate](ctx, s, SchemaInvoiceUpdate, record)
}

func (s *Usecase) ValidateUserUpdate(ctx context.Context, record map[string]any) (*entity.UserUpdate, error) {
	return validateAs[entity.UserUpdate](ctx, s, SchemaUserUpdate, record)
}

func (s *Usecase) ValidateFundingRequestUpdate(ctx context.Context, record map[string]any) (*entity.FundingRequestUpdate, error) {
	return validateAs[entity.FundingRequestUpdate](ctx, s, SchemaFundingRequestUpdate, record)
}

func (s *Usecase) ValidateMilestoneUpdate(ctx context.Context, record map[string]any) (*entity.MilestoneUpdate, error) {
	return validateAs[entity.MilestoneUpdate](ctx, s, SchemaMilestoneUpdate, record)
}

func (s *Usecase) ValidateFundingRequest(ctx context.Context, record map[string]any) (*entity.FundingRequest, error) {
	return validateAs[entity.FundingRequest](ctx, s, SchemaFundingRequest, record)
}

func (s *Usecase) ValidateAdminUpdate(ctx context.Context, record map[string]any) (*entity.AdminUpdate, error) {
	return validateAs[entity.AdminUpdate](ctx, s, SchemaAdminUpdate, record)
}

func (s *Usecase) ValidateNotification(ctx context.Context, record map[string]any) (*entity.Notification, error) {
	return validateAs[entity.Notification](ctx, s, SchemaNotification, record)
}

func (s *Usecase) ValidateRegisterAppUser(ctx context.Context, record map[string]any) (*entity.RegisterAppUser, error) {
	return validateAs[entity.RegisterAppUser](ctx, s, SchemaRegisterAppUser, record)
}
