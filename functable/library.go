package functable

import (
	"math"
)

type funDescriptor struct {
	sym string
	fun Callable
}

// builtins returns the fixed function catalog. Random functions are bound to the random source of the table
func (ft *FunctionTable) builtins() []funDescriptor {
	return []funDescriptor{
		// constants
		{sym: "null", fun: Func0(evalNull)},
		// logarithms and powers
		{sym: "log", fun: Func1(math.Log)},
		{sym: "log10", fun: Func1(math.Log10)},
		{sym: "exp", fun: Func1(math.Exp)},
		{sym: "sqrt", fun: Func1(math.Sqrt)},
		{sym: "pow", fun: Func2(math.Pow)},
		// rounding and sign
		{sym: "abs", fun: Func1(math.Abs)},
		{sym: "floor", fun: Func1(math.Floor)},
		{sym: "ceil", fun: Func1(math.Ceil)},
		{sym: "round", fun: Func1(math.Round)},
		{sym: "sign", fun: Func1(evalSign)},
		{sym: "min", fun: Func2(math.Min)},
		{sym: "max", fun: Func2(math.Max)},
		// tests, 1 for true and 0 for false
		{sym: "isnan", fun: Func1(evalIsNaN)},
		{sym: "isinf", fun: Func1(evalIsInf)},
		// random
		{sym: "rand", fun: Func1(ft.evalRand)},
		{sym: "randInt", fun: Func1(ft.evalRandInt)},
		// trigonometry
		{sym: "sin", fun: Func1(math.Sin)},
		{sym: "cos", fun: Func1(math.Cos)},
		{sym: "tan", fun: Func1(math.Tan)},
		{sym: "asin", fun: Func1(math.Asin)},
		{sym: "acos", fun: Func1(math.Acos)},
		{sym: "atan", fun: Func1(math.Atan)},
		{sym: "atan2", fun: Func2(math.Atan2)},
		{sym: "degToRad", fun: Func1(evalDegToRad)},
		{sym: "radToDeg", fun: Func1(evalRadToDeg)},
	}
}

func evalNull() float64 {
	return math.NaN()
}

func evalSign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	// zero and NaN are returned as is
	return x
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func evalIsNaN(x float64) float64 {
	return boolValue(math.IsNaN(x))
}

func evalIsInf(x float64) float64 {
	return boolValue(math.IsInf(x, 0))
}

func evalDegToRad(x float64) float64 {
	return math.Pi * x / 180
}

func evalRadToDeg(x float64) float64 {
	return x / math.Pi * 180
}

// evalRand returns uniform value in [0, x)
func (ft *FunctionTable) evalRand(x float64) float64 {
	return ft.rnd.Float64() * x
}

// evalRandInt returns uniform integer in [0, randIntBound(x)). Panics if the bound is below 1
func (ft *FunctionTable) evalRandInt(x float64) float64 {
	return float64(ft.rnd.Intn(randIntBound(x)))
}

// randIntBound truncates x toward zero and saturates it at math.MaxInt32.
// NaN and values below 1 give 0, which is not a valid bound
func randIntBound(x float64) int {
	switch {
	case math.IsNaN(x), x < 1:
		return 0
	case x >= math.MaxInt32:
		return math.MaxInt32
	}
	return int(x)
}
