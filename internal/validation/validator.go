// Package validation checks caller-supplied context objects before they
// enter the pipeline. Device-export data is never validated here; bad rows
// are the normalizer's concern and are reported as dropped counts, not
// errors.
package validation

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"swinglab/pkg/contracts/domain"
)

// Validator wraps the struct-tag validator with logging.
type Validator struct {
	validate *validator.Validate
	logger   *slog.Logger
}

// New builds a Validator.
func New(logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// Player checks the optional player attributes. All fields may be absent;
// present fields must be inside plausible human ranges.
func (v *Validator) Player(p domain.PlayerContext) error {
	if err := v.validate.Struct(p); err != nil {
		v.logger.Warn("player context rejected", slog.String("error", err.Error()))
		return fmt.Errorf("invalid player context: %w", describeFirst(err))
	}
	return nil
}

// Discipline checks caller-supplied plate-discipline rates.
func (v *Validator) Discipline(d domain.DisciplineMetrics) error {
	if err := v.validate.Struct(d); err != nil {
		v.logger.Warn("discipline metrics rejected", slog.String("error", err.Error()))
		return fmt.Errorf("invalid discipline metrics: %w", describeFirst(err))
	}
	return nil
}

// describeFirst turns the first field error into a readable message; the
// raw validator error names struct internals the caller never sees.
func describeFirst(err error) error {
	var fieldErrs validator.ValidationErrors
	if ok := asValidationErrors(err, &fieldErrs); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("field %s failed %s constraint (value %v)", fe.Field(), fe.Tag(), fe.Value())
	}
	return err
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if ok {
		*target = ve
	}
	return ok
}
