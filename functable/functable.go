// Package functable implements the table of builtin functions callable from
// Jiffle scripts.
//
// Every function has a fixed arity of 0, 1 or 2 arguments. The evaluator is
// expected to check a call with IsDefined before evaluating the arguments and
// then run it with Invoke. A FunctionTable is not safe for concurrent use,
// apart from the one-time build of the catalog.
package functable

import (
	"fmt"
	"sort"
	"sync"

	"github.com/lunfardo314/unitrie/common"
	"go.uber.org/atomic"
)

// FunctionTable maps function names to builtins and owns the random source of
// the random functions
type FunctionTable struct {
	once      sync.Once
	funByName map[string]Callable
	rnd       RandomSource
	numCalls  atomic.Uint64
}

// New creates a function table. Optional random source makes 'rand' and
// 'randInt' deterministic, otherwise the source is seeded from the clock
func New(rnd ...RandomSource) *FunctionTable {
	ret := &FunctionTable{}
	if len(rnd) > 0 && rnd[0] != nil {
		ret.rnd = rnd[0]
	} else {
		ret.rnd = defaultRandomSource()
	}
	return ret
}

func (ft *FunctionTable) lookup() map[string]Callable {
	ft.once.Do(func() {
		ft.funByName = make(map[string]Callable)
		for _, fd := range ft.builtins() {
			if _, already := ft.funByName[fd.sym]; already {
				panic(fmt.Errorf("repeating symbol '%s'", fd.sym))
			}
			ft.funByName[fd.sym] = fd.fun
		}
	})
	return ft.funByName
}

// IsDefined returns true if function with the name exists and takes exactly numArgs arguments
func (ft *FunctionTable) IsDefined(name string, numArgs int) bool {
	fun, found := ft.lookup()[name]
	if !found {
		return false
	}
	return fun.Arity() == numArgs
}

// Arity returns declared number of arguments of the function
func (ft *FunctionTable) Arity(name string) (int, bool) {
	fun, found := ft.lookup()[name]
	if !found {
		return 0, false
	}
	return fun.Arity(), true
}

// Names returns sorted names of all functions in the table
func (ft *FunctionTable) Names() []string {
	lookup := ft.lookup()
	ret := make([]string, 0, len(lookup))
	for sym := range lookup {
		ret = append(ret, sym)
	}
	sort.Strings(ret)
	return ret
}

// Invoke calls the function with arguments in order. It returns *UnsupportedCallError
// if the function does not exist or the number of arguments does not match its arity.
// A panic inside the function is returned as an error
func (ft *FunctionTable) Invoke(name string, args ...float64) (float64, error) {
	if len(args) > MaxArity || !ft.IsDefined(name, len(args)) {
		return 0, &UnsupportedCallError{Name: name, NumArgs: len(args)}
	}
	fun := ft.lookup()[name]

	var ret float64
	err := common.CatchPanicOrError(func() error {
		ret = fun.Call(args...)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("function '%s' failed: %w", name, err)
	}
	ft.numCalls.Inc()
	return ret, nil
}

// NumCalls returns number of successful invocations
func (ft *FunctionTable) NumCalls() uint64 {
	return ft.numCalls.Load()
}
