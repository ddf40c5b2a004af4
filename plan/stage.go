package plan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kbukum/enumkit/errors"
	"github.com/kbukum/enumkit/validation"
)

// Stage operators.
const (
	OpDrop     = "drop"
	OpTake     = "take"
	OpUntilEq  = "until_eq"
	OpUntilGt  = "until_gt"
	OpWhereNeq = "where_neq"
	OpWhereGt  = "where_gt"
	OpNegate   = "negate"
	OpAbs      = "abs"
)

// Stage is one step of a plan.
type Stage struct {
	Op    string `yaml:"op" mapstructure:"op" validate:"required,oneof=drop take until_eq until_gt where_neq where_gt negate abs"`
	N     int    `yaml:"n" mapstructure:"n" validate:"gte=0"`
	Value *int64 `yaml:"value" mapstructure:"value"`
}

func (s Stage) String() string {
	switch {
	case s.Op == OpDrop || s.Op == OpTake:
		return fmt.Sprintf("%s:%d", s.Op, s.N)
	case s.Value != nil:
		return fmt.Sprintf("%s:%d", s.Op, *s.Value)
	default:
		return s.Op
	}
}

// needsValue reports whether the operator compares against Value.
func needsValue(op string) bool {
	switch op {
	case OpUntilEq, OpUntilGt, OpWhereNeq, OpWhereGt:
		return true
	}
	return false
}

// validate collects the rules struct tags cannot express.
func (s Stage) validate(v *validation.Validator) {
	if needsValue(s.Op) {
		v.Check(s.Value != nil, "value", "is required for "+s.Op)
	}
}

// ParseStages parses the compact form "op[:arg],op[:arg],...". The argument
// is the count for drop and take and the comparison value otherwise.
func ParseStages(expr string) ([]Stage, error) {
	var stages []Stage
	for i, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		op, arg, hasArg := strings.Cut(part, ":")
		s := Stage{Op: strings.ToLower(strings.TrimSpace(op))}

		switch {
		case s.Op == OpDrop || s.Op == OpTake:
			n, err := strconv.Atoi(strings.TrimSpace(arg))
			if !hasArg || err != nil {
				return nil, errors.InvalidInput(fmt.Sprintf("stages[%d].n", i), fmt.Sprintf("%s needs an integer count, got %q", s.Op, arg))
			}
			s.N = n
		case needsValue(s.Op):
			v, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
			if !hasArg || err != nil {
				return nil, errors.InvalidInput(fmt.Sprintf("stages[%d].value", i), fmt.Sprintf("%s needs an integer value, got %q", s.Op, arg))
			}
			s.Value = &v
		case s.Op == OpNegate || s.Op == OpAbs:
			if hasArg {
				return nil, errors.InvalidInput(fmt.Sprintf("stages[%d]", i), s.Op+" takes no argument")
			}
		default:
			return nil, errors.UnknownStage(i, s.Op)
		}
		stages = append(stages, s)
	}
	return stages, nil
}
