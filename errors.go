package solrq

import (
	"errors"
	"fmt"
)

var ErrUndefinedOperator = errors.New("operator is undefined")

// ErrInvalidOperator occurs when a QueryBuilder is given an operator other than OperatorAnd or OperatorOr.
type ErrInvalidOperator struct {
	Operator Operator
}

func (e ErrInvalidOperator) Error() string {
	return fmt.Sprintf(`"%s" is not a valid operator`, e.Operator)
}

func (e ErrInvalidOperator) Unwrap() error {
	return ErrUndefinedOperator
}

// ErrInvalidTableName occurs when a string provided cannot be used as a table name.
type ErrInvalidTableName struct {
	Name string
}

func (e ErrInvalidTableName) Error() string {
	return fmt.Sprintf(`"%s" is not a valid table name`, e.Name)
}
