package functable

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const tolerance = 1e-12

// fixedSource returns the same values every time and remembers the last bound
type fixedSource struct {
	f     float64
	n     int
	lastN int
}

func (s *fixedSource) Float64() float64 {
	return s.f
}

func (s *fixedSource) Intn(n int) int {
	s.lastN = n
	if n <= 0 {
		panic("invalid argument to Intn")
	}
	return s.n % n
}

func TestIsDefined(t *testing.T) {
	ft := New(NewRandomSource(1))
	t.Run("every arity", func(t *testing.T) {
		for _, sym := range ft.Names() {
			k, found := ft.Arity(sym)
			require.True(t, found)
			for j := -1; j <= MaxArity+1; j++ {
				require.EqualValues(t, j == k, ft.IsDefined(sym, j), "%s with %d args", sym, j)
			}
		}
	})
	t.Run("unary catalog", func(t *testing.T) {
		for _, sym := range []string{"log", "sqrt", "abs", "rand", "randInt", "sin", "cos", "tan",
			"asin", "acos", "atan", "degToRad", "radToDeg"} {
			require.True(t, ft.IsDefined(sym, 1), sym)
		}
	})
	t.Run("other arities", func(t *testing.T) {
		require.True(t, ft.IsDefined("null", 0))
		require.True(t, ft.IsDefined("min", 2))
		require.True(t, ft.IsDefined("atan2", 2))
		require.False(t, ft.IsDefined("min", 1))
	})
	t.Run("unknown and case sensitive", func(t *testing.T) {
		require.False(t, ft.IsDefined("unknownFn", 1))
		require.False(t, ft.IsDefined("SQRT", 1))
		require.False(t, ft.IsDefined("", 0))
	})
	t.Run("pure", func(t *testing.T) {
		before := ft.NumCalls()
		for i := 0; i < 5; i++ {
			require.True(t, ft.IsDefined("sqrt", 1))
		}
		require.EqualValues(t, before, ft.NumCalls())
	})
}

func TestInvoke(t *testing.T) {
	ft := New(NewRandomSource(1))
	t.Run("sqrt", func(t *testing.T) {
		ret, err := ft.Invoke("sqrt", 4)
		require.NoError(t, err)
		require.EqualValues(t, 2.0, ret)
	})
	t.Run("degToRad", func(t *testing.T) {
		ret, err := ft.Invoke("degToRad", 180)
		require.NoError(t, err)
		require.InDelta(t, math.Pi, ret, tolerance)
	})
	t.Run("radToDeg", func(t *testing.T) {
		ret, err := ft.Invoke("radToDeg", math.Pi)
		require.NoError(t, err)
		require.InDelta(t, 180.0, ret, tolerance)
	})
	t.Run("log", func(t *testing.T) {
		ret, err := ft.Invoke("log", math.E)
		require.NoError(t, err)
		require.InDelta(t, 1.0, ret, tolerance)
		ret, err = ft.Invoke("log", -1)
		require.NoError(t, err)
		require.True(t, math.IsNaN(ret))
	})
	t.Run("trigonometry", func(t *testing.T) {
		ret, err := ft.Invoke("sin", math.Pi/2)
		require.NoError(t, err)
		require.InDelta(t, 1.0, ret, tolerance)
		ret, err = ft.Invoke("acos", 1)
		require.NoError(t, err)
		require.InDelta(t, 0.0, ret, tolerance)
		ret, err = ft.Invoke("atan2", 1, 1)
		require.NoError(t, err)
		require.InDelta(t, math.Pi/4, ret, tolerance)
	})
	t.Run("abs", func(t *testing.T) {
		ret, err := ft.Invoke("abs", -3.5)
		require.NoError(t, err)
		require.EqualValues(t, 3.5, ret)
	})
	t.Run("null", func(t *testing.T) {
		ret, err := ft.Invoke("null")
		require.NoError(t, err)
		require.True(t, math.IsNaN(ret))
	})
	t.Run("two args in order", func(t *testing.T) {
		ret, err := ft.Invoke("min", 1, 2)
		require.NoError(t, err)
		require.EqualValues(t, 1.0, ret)
		ret, err = ft.Invoke("max", 1, 2)
		require.NoError(t, err)
		require.EqualValues(t, 2.0, ret)
		ret, err = ft.Invoke("pow", 2, 10)
		require.NoError(t, err)
		require.EqualValues(t, 1024.0, ret)
	})
	t.Run("rounding and sign", func(t *testing.T) {
		ret, err := ft.Invoke("round", -2.5)
		require.NoError(t, err)
		require.EqualValues(t, -3.0, ret)
		ret, err = ft.Invoke("sign", -0.1)
		require.NoError(t, err)
		require.EqualValues(t, -1.0, ret)
		ret, err = ft.Invoke("sign", 0)
		require.NoError(t, err)
		require.EqualValues(t, 0.0, ret)
	})
	t.Run("tests", func(t *testing.T) {
		ret, err := ft.Invoke("isnan", math.NaN())
		require.NoError(t, err)
		require.EqualValues(t, 1.0, ret)
		ret, err = ft.Invoke("isinf", 1)
		require.NoError(t, err)
		require.EqualValues(t, 0.0, ret)
	})
	t.Run("counts calls", func(t *testing.T) {
		before := ft.NumCalls()
		_, err := ft.Invoke("sqrt", 9)
		require.NoError(t, err)
		_, err = ft.Invoke("sqrt", 9, 9)
		require.Error(t, err)
		require.EqualValues(t, before+1, ft.NumCalls())
	})
}

func TestUnsupportedCall(t *testing.T) {
	ft := New(NewRandomSource(1))
	check := func(t *testing.T, name string, args ...float64) {
		_, err := ft.Invoke(name, args...)
		var errUnsupported *UnsupportedCallError
		require.True(t, errors.As(err, &errUnsupported), "expected UnsupportedCallError, got %v", err)
		require.EqualValues(t, name, errUnsupported.Name)
		require.EqualValues(t, len(args), errUnsupported.NumArgs)
	}
	t.Run("unknown", func(t *testing.T) {
		check(t, "unknownFn", 1)
	})
	t.Run("too many", func(t *testing.T) {
		check(t, "sqrt", 1, 2)
	})
	t.Run("too few", func(t *testing.T) {
		check(t, "sqrt")
		check(t, "min", 1)
	})
	t.Run("more than two", func(t *testing.T) {
		check(t, "sqrt", 1, 2, 3)
		check(t, "min", 1, 2, 3)
	})
	t.Run("message", func(t *testing.T) {
		_, err := ft.Invoke("foo", 1, 2, 3)
		require.EqualError(t, err, "unsupported function: 'foo' with 3 args")
	})
}

func TestRandom(t *testing.T) {
	t.Run("rand range", func(t *testing.T) {
		ft := New(NewRandomSource(42))
		for i := 0; i < 1000; i++ {
			ret, err := ft.Invoke("rand", 10)
			require.NoError(t, err)
			require.True(t, ret >= 0 && ret < 10, "%f", ret)
		}
	})
	t.Run("randInt range", func(t *testing.T) {
		ft := New(NewRandomSource(42))
		for i := 0; i < 1000; i++ {
			ret, err := ft.Invoke("randInt", 10)
			require.NoError(t, err)
			require.True(t, ret >= 0 && ret < 10, "%f", ret)
			require.EqualValues(t, math.Trunc(ret), ret)
		}
	})
	t.Run("same seed same sequence", func(t *testing.T) {
		ft1 := New(NewRandomSource(7))
		ft2 := New(NewRandomSource(7))
		for i := 0; i < 20; i++ {
			r1, err := ft1.Invoke("rand", 1)
			require.NoError(t, err)
			r2, err := ft2.Invoke("rand", 1)
			require.NoError(t, err)
			require.EqualValues(t, r1, r2)
		}
	})
	t.Run("injected source", func(t *testing.T) {
		ft := New(&fixedSource{f: 0.25, n: 13})
		ret, err := ft.Invoke("rand", 8)
		require.NoError(t, err)
		require.EqualValues(t, 2.0, ret)
		ret, err = ft.Invoke("randInt", 10)
		require.NoError(t, err)
		require.EqualValues(t, 3.0, ret)
	})
	t.Run("randInt bad bound", func(t *testing.T) {
		ft := New(&fixedSource{})
		_, err := ft.Invoke("randInt", 0.5)
		require.Error(t, err)
		var errUnsupported *UnsupportedCallError
		require.False(t, errors.As(err, &errUnsupported))
	})
	t.Run("randInt large bound", func(t *testing.T) {
		ft := New(NewRandomSource(3))
		for _, x := range []float64{1e10, 1e19, 1e20, math.Inf(1)} {
			ret, err := ft.Invoke("randInt", x)
			require.NoError(t, err, "bound %g", x)
			require.True(t, ret >= 0 && ret < math.MaxInt32, "bound %g: %f", x, ret)
			require.EqualValues(t, math.Trunc(ret), ret)
		}
	})
	t.Run("randInt saturated bound", func(t *testing.T) {
		src := &fixedSource{n: 5}
		ft := New(src)
		ret, err := ft.Invoke("randInt", 1e20)
		require.NoError(t, err)
		require.EqualValues(t, 5.0, ret)
		require.EqualValues(t, math.MaxInt32, src.lastN)
		_, err = ft.Invoke("randInt", 10.9)
		require.NoError(t, err)
		require.EqualValues(t, 10, src.lastN)
	})
	t.Run("randInt NaN and negative bound", func(t *testing.T) {
		ft := New(NewRandomSource(3))
		for _, x := range []float64{math.NaN(), math.Inf(-1), -5, 0} {
			_, err := ft.Invoke("randInt", x)
			require.Error(t, err, "bound %g", x)
		}
	})
	t.Run("nil source", func(t *testing.T) {
		ft := New(nil)
		ret, err := ft.Invoke("rand", 1)
		require.NoError(t, err)
		require.True(t, ret >= 0 && ret < 1)
	})
}

func TestConcurrentFirstLookup(t *testing.T) {
	ft := New(NewRandomSource(1))
	const numReaders = 16
	results := make([]bool, numReaders)
	var wg sync.WaitGroup
	wg.Add(numReaders)
	for i := 0; i < numReaders; i++ {
		go func(i int) {
			defer wg.Done()
			results[i] = ft.IsDefined("sqrt", 1) && !ft.IsDefined("sqrt", 2)
		}(i)
	}
	wg.Wait()
	for i := range results {
		require.True(t, results[i])
	}
	require.EqualValues(t, len(ft.builtins()), len(ft.Names()))
}
