package vartable

import (
	"math"
)

type assignOp byte

const (
	opAssign assignOp = iota + 1
	opPlusEq
	opMinusEq
	opTimesEq
	opDivideEq
	opModEq
)

var assignOps = map[string]assignOp{
	"=":  opAssign,
	"+=": opPlusEq,
	"-=": opMinusEq,
	"*=": opTimesEq,
	"/=": opDivideEq,
	"%=": opModEq,
}

// IsAssignOp returns true if the token is one of supported assignment operators
func IsAssignOp(token string) bool {
	_, ok := assignOps[token]
	return ok
}

// apply combines stored value with the right hand side. Plain IEEE-754 arithmetic,
// '%' is the remainder with the sign of the dividend
func (op assignOp) apply(stored, x float64) float64 {
	switch op {
	case opPlusEq:
		return stored + x
	case opMinusEq:
		return stored - x
	case opTimesEq:
		return stored * x
	case opDivideEq:
		return stored / x
	case opModEq:
		return math.Mod(stored, x)
	}
	panic("not a compound assignment operator")
}
