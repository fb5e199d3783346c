package solrq

import (
	"fmt"
	"strings"
)

// Operator joins sibling clauses within one QueryBuilder.
// The zero value is undefined and is rejected by NewQueryBuilder.
type Operator uint8

const (
	OperatorAnd Operator = iota + 1
	OperatorOr
)

func (o Operator) String() string {
	var s string
	switch o {
	case OperatorAnd:
		s = "AND"
	case OperatorOr:
		s = "OR"
	default:
		s = fmt.Sprintf("Operator(%d)", uint8(o))
	}
	return s
}

func (o Operator) valid() bool {
	return o == OperatorAnd || o == OperatorOr
}

// ParseOperator reads "and" or "or", ignoring case.
func ParseOperator(s string) (Operator, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "AND":
		return OperatorAnd, nil
	case "OR":
		return OperatorOr, nil
	}
	return 0, fmt.Errorf("parse operator %q: %w", s, ErrUndefinedOperator)
}
