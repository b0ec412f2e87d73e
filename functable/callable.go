package functable

import (
	"github.com/lunfardo314/unitrie/common"
)

// MaxArity is the largest number of arguments a builtin can declare
const MaxArity = 2

type (
	Fun0 func() float64
	Fun1 func(x float64) float64
	Fun2 func(x1, x2 float64) float64
)

// Callable is a builtin function with an arity fixed at construction.
// Exactly one of the function fields is set, the one matching arity
type Callable struct {
	arity int
	fun0  Fun0
	fun1  Fun1
	fun2  Fun2
}

// Func0 wraps a function without arguments
func Func0(f Fun0) Callable {
	return Callable{arity: 0, fun0: f}
}

// Func1 wraps a function of one argument
func Func1(f Fun1) Callable {
	return Callable{arity: 1, fun1: f}
}

// Func2 wraps a function of two arguments, passed in call order
func Func2(f Fun2) Callable {
	return Callable{arity: 2, fun2: f}
}

// Arity returns the number of arguments Call expects
func (c Callable) Arity() int {
	return c.arity
}

// Call invokes the function. Calling it with a number of arguments other than
// the declared arity is a programming error and panics
func (c Callable) Call(args ...float64) float64 {
	common.Assert(len(args) == c.arity, "callable with arity %d called with %d arguments", c.arity, len(args))
	switch c.arity {
	case 0:
		return c.fun0()
	case 1:
		return c.fun1(args[0])
	case 2:
		return c.fun2(args[0], args[1])
	}
	panic("wrong arity")
}
