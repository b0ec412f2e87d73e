package vartable

import (
	"errors"
	"fmt"
)

var ErrUnknownOperator = errors.New("unknown assignment operator")

// UndefinedVariableError is returned when a variable without binding is read
// or used with a compound assignment operator. Op is empty for reads
type UndefinedVariableError struct {
	Name string
	Op   string
}

func (e *UndefinedVariableError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("undefined variable '%s'", e.Name)
	}
	return fmt.Sprintf("using undefined variable '%s' with '%s'", e.Name, e.Op)
}
