// Package vartable holds values of script variables together with predefined
// named constants PI, E and NaN.
//
// Constants behave as if they were assigned with '=' before the script runs,
// so a script may overwrite them. A VarTable is not safe for concurrent use.
package vartable

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

var constants = map[string]float64{
	"PI":  math.Pi,
	"E":   math.E,
	"NaN": math.NaN(),
}

// VarTable maps identifiers to their current values
type VarTable struct {
	once   sync.Once
	lookup map[string]float64
}

// New creates an empty table. Constants are bound on first access
func New() *VarTable {
	return &VarTable{}
}

func (vt *VarTable) vars() map[string]float64 {
	vt.once.Do(func() {
		vt.lookup = make(map[string]float64, len(constants))
		for id, v := range constants {
			vt.lookup[id] = v
		}
	})
	return vt.lookup
}

// Get returns value of the variable or *UndefinedVariableError
func (vt *VarTable) Get(id string) (float64, error) {
	v, found := vt.vars()[id]
	if !found {
		return 0, &UndefinedVariableError{Name: id}
	}
	return v, nil
}

// IsDefined returns true if the variable has a binding
func (vt *VarTable) IsDefined(id string) bool {
	_, found := vt.vars()[id]
	return found
}

// Assign applies assignment operator op with right hand side x to the variable.
// '=' always binds the variable. Compound operators require existing binding
func (vt *VarTable) Assign(id, op string, x float64) error {
	kind, ok := assignOps[op]
	if !ok {
		return fmt.Errorf("'%s': %w", op, ErrUnknownOperator)
	}
	lookup := vt.vars()
	if kind == opAssign {
		lookup[id] = x
		return nil
	}
	stored, found := lookup[id]
	if !found {
		return &UndefinedVariableError{Name: id, Op: op}
	}
	lookup[id] = kind.apply(stored, x)
	return nil
}

// Remove unbinds the variable. Does nothing if the variable is not defined
func (vt *VarTable) Remove(id string) {
	delete(vt.vars(), id)
}

// Names returns sorted identifiers of all bound variables, constants included
func (vt *VarTable) Names() []string {
	lookup := vt.vars()
	ret := make([]string, 0, len(lookup))
	for id := range lookup {
		ret = append(ret, id)
	}
	sort.Strings(ret)
	return ret
}
