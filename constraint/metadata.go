package constraint

import (
	"fmt"

	"github.com/katalvlaran/berger/core"
)

// ValuesValidator judges the list of metadata values extracted from a
// candidate's participants. Label names the rule for diagnostics.
//
// Validators receive one entry per participant, in slot order; a participant
// missing the key contributes nil.
type ValuesValidator struct {
	// Label names the validation rule.
	Label string

	// Validate reports whether the value list is acceptable.
	Validate func(values []interface{}) bool
}

// SameValue requires every extracted value to be identical
// (compared via fmt.Sprint rendering, so mixed-type equals are literal).
func SameValue() ValuesValidator {
	return ValuesValidator{
		Label: "same-value",
		Validate: func(values []interface{}) bool {
			if len(values) < 2 {
				return true
			}
			first := fmt.Sprint(values[0])
			for _, v := range values[1:] {
				if fmt.Sprint(v) != first {
					return false
				}
			}
			return true
		},
	}
}

// DistinctValues requires every extracted value to be unique.
func DistinctValues() ValuesValidator {
	return ValuesValidator{
		Label: "distinct-values",
		Validate: func(values []interface{}) bool {
			seen := make(map[string]struct{}, len(values))
			for _, v := range values {
				key := fmt.Sprint(v)
				if _, dup := seen[key]; dup {
					return false
				}
				seen[key] = struct{}{}
			}
			return true
		},
	}
}

// MaxUniqueValues caps the number of distinct extracted values at n.
func MaxUniqueValues(n int) ValuesValidator {
	return ValuesValidator{
		Label: fmt.Sprintf("max-unique(%d)", n),
		Validate: func(values []interface{}) bool {
			seen := make(map[string]struct{}, len(values))
			for _, v := range values {
				seen[fmt.Sprint(v)] = struct{}{}
			}
			return len(seen) <= n
		},
	}
}

// AdjacentValues requires numeric values spanning at most 1
// (max − min ≤ 1). Any non-numeric or missing value fails.
func AdjacentValues() ValuesValidator {
	return ValuesValidator{
		Label: "adjacent-values",
		Validate: func(values []interface{}) bool {
			if len(values) == 0 {
				return true
			}

			var (
				lo, hi float64
				ok     bool
			)
			for i, v := range values {
				f, numeric := asFloat(v)
				if !numeric {
					return false
				}
				if i == 0 {
					lo, hi, ok = f, f, true
					continue
				}
				if f < lo {
					lo = f
				}
				if f > hi {
					hi = f
				}
			}

			return ok && hi-lo <= 1
		},
	}
}

// asFloat widens the common numeric metadata types to float64.
func asFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}

// MetadataRule validates participant metadata under a named key: the value
// of that key is extracted from every participant in the candidate and the
// resulting list is judged by the validator.
type MetadataRule struct {
	key       string
	validator ValuesValidator
}

// Metadata returns the metadata constraint for the given key and validator.
func Metadata(key string, validator ValuesValidator) MetadataRule {
	return MetadataRule{key: key, validator: validator}
}

// Name implements Constraint.
func (c MetadataRule) Name() string {
	return fmt.Sprintf("Metadata(%s, %s)", c.key, c.validator.Label)
}

// IsSatisfied extracts the key from every participant and delegates to the
// validator. A nil validator function is vacuously satisfied.
//
// Complexity: O(participants) + validator cost.
func (c MetadataRule) IsSatisfied(e core.Event, _ *core.SchedulingContext) bool {
	if c.validator.Validate == nil {
		return true
	}

	values := make([]interface{}, len(e.Participants))
	for i, p := range e.Participants {
		if p.Metadata != nil {
			values[i] = p.Metadata[c.key]
		}
	}

	return c.validator.Validate(values)
}
