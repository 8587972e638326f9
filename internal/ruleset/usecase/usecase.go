package usecase

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/shandysiswandi/finvalidate/internal/pkg/config"
	"github.com/shandysiswandi/finvalidate/internal/pkg/instrument"
	pkgvalidator "github.com/shandysiswandi/finvalidate/internal/pkg/validator"
	"github.com/shandysiswandi/finvalidate/internal/ruleset/entity"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	tagApprovalDecision = "approval_decision"
	tagNotificationType = "notification_type"

	registrationPasswordMin = 6
)

type Usecase struct {
	validator pkgvalidator.Validator
	cfg       config.Config
	ins       instrument.Instrumentation
	schemas   map[string]*schema

	total  metric.Int64Counter
	failed metric.Int64Counter
}

type Dependency struct {
	Validator  pkgvalidator.Validator
	Config     config.Config
	Instrument instrument.Instrumentation
}

// New registers the domain rules on dep.Validator and builds the schema
// registry.
func New(dep Dependency) (*Usecase, error) {
	if err := dep.Validator.Register(domainRules()...); err != nil {
		return nil, err
	}

	s := &Usecase{
		validator: dep.Validator,
		cfg:       dep.Config,
		ins:       dep.Instrument,
		schemas:   registry(),
	}

	meter := dep.Instrument.Meter("ruleset.usecase")

	var err error
	s.total, err = meter.Int64Counter("ruleset.validation.total",
		metric.WithDescription("Records checked against a schema"))
	if err != nil {
		slog.Warn("failed to create validation counter", "error", err)
	}

	s.failed, err = meter.Int64Counter("ruleset.validation.failed",
		metric.WithDescription("Records rejected by a schema"))
	if err != nil {
		slog.Warn("failed to create validation failure counter", "error", err)
	}

	return s, nil
}

func domainRules() []pkgvalidator.Rule {
	decisions := lo.Map(entity.ApprovalDecisions, func(s entity.ApprovalStatus, _ int) string {
		return s.String()
	})
	types := lo.Map(entity.NotificationTypes, func(t entity.NotificationType, _ int) string {
		return t.String()
	})

	return []pkgvalidator.Rule{
		{
			Tag:     tagApprovalDecision,
			Message: "{0} must be one of " + strings.Join(decisions, ", "),
			Field: func(fl validator.FieldLevel) bool {
				return entity.ApprovalStatus(fl.Field().String()).IsDecision()
			},
		},
		{
			Tag:     tagNotificationType,
			Message: "{0} must be one of " + strings.Join(types, ", "),
			Field: func(fl validator.FieldLevel) bool {
				return entity.NotificationType(fl.Field().String()).IsKnown()
			},
		},
		{
			Struct: pkgvalidator.PasswordStrength("Password", registrationPasswordMin),
			Types:  []any{entity.UserRegistration{}},
		},
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("ruleset.usecase").Start(ctx, name)
}

// Schemas returns the registered schema names in lexical order.
func (s *Usecase) Schemas() []string {
	names := lo.Keys(s.schemas)
	slices.Sort(names)
	return names
}
