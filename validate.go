package woot

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/dearkafka/woot/internal/partition"
	"github.com/dearkafka/woot/internal/signature"
)

var validate = validator.New()

// validateCall checks the query and body values of c against the rules of
// sig. Absent required fields fail with "required"; other rules only apply to
// values that were supplied.
func validateCall(sig signature.Signature, c partition.Call) map[string]string {
	failures := make(map[string]string)
	for _, p := range sig.Params {
		var bucket map[string]any
		switch p.Kind {
		case signature.Query:
			bucket = c.Query
		case signature.Body:
			bucket = c.Body
		default:
			continue
		}
		if sig.Kind(p.Name) != p.Kind {
			// shadowed by an earlier declaration of the same keyword
			continue
		}
		v, present := bucket[p.Field]
		if !present || isNil(v) {
			if p.Required {
				failures[p.Name] = "required"
			}
			continue
		}
		if p.Validate == "" {
			continue
		}
		data := map[string]any{p.Field: v}
		rules := map[string]any{p.Field: p.Validate}
		for _, err := range validate.ValidateMap(data, rules) {
			failures[p.Name] = describeValidation(err)
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return failures
}

func describeValidation(err any) string {
	e, ok := err.(error)
	if !ok {
		return "invalid"
	}
	var valErrs validator.ValidationErrors
	if errors.As(e, &valErrs) && len(valErrs) > 0 {
		return formatValidationError(valErrs[0])
	}
	return e.Error()
}
