package invoice

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	facturaerrors "github.com/facturakit/facturakit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate performs structural validation on a finished invoice: hex accent
// colour, well-formed emails, non-negative quantities and prices, a template
// id present. The live-preview path deliberately skips this and relies on the
// coercion rules in ComputeTotals instead.
func Validate(inv *Invoice) error {
	if inv == nil {
		return facturaerrors.NewValidationError("invoice", "invoice is nil", nil)
	}

	if err := validatorInstance().Struct(inv); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]struct{}, len(inv.Items))
	for _, it := range inv.Items {
		if it.ID == "" {
			return facturaerrors.NewValidationError("items", "line item without id", nil)
		}
		if _, dup := seen[it.ID]; dup {
			return facturaerrors.NewValidationError("items", "duplicate line item id "+it.ID, nil)
		}
		seen[it.ID] = struct{}{}
	}

	return nil
}

func convertValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if ok := asValidationErrors(err, &fieldErrs); !ok || len(fieldErrs) == 0 {
		return facturaerrors.NewValidationError("invoice", err.Error(), err)
	}

	first := fieldErrs[0]
	field := strings.TrimPrefix(first.Namespace(), "Invoice.")
	return facturaerrors.NewValidationError(field, "failed rule "+first.Tag(), err)
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = ve
	return true
}
