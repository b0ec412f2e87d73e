// Package jiffle provides the runtime environment in which compiled Jiffle
// scripts are evaluated: the table of builtin functions and the table of
// variables of one evaluation session.
package jiffle

import (
	"fmt"

	"github.com/lunfardo314/jiffle/config"
	"github.com/lunfardo314/jiffle/functable"
	"github.com/lunfardo314/jiffle/util/logging"
	"github.com/lunfardo314/jiffle/vartable"
	"go.uber.org/zap"
)

// Runtime is one evaluation session. It is not safe for concurrent use
type Runtime struct {
	log       *zap.SugaredLogger
	functions *functable.FunctionTable
	vars      *vartable.VarTable
}

// NewRuntime creates session from the configuration. If log is nil, logger is created according to cfg.Debug
func NewRuntime(cfg *config.Config, log *zap.SugaredLogger) (*Runtime, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		var err error
		if log, err = logging.New("jiffle", logging.WithDebug(cfg.Debug)); err != nil {
			return nil, err
		}
	}
	ret := &Runtime{
		log:  log.Named("runtime"),
		vars: vartable.New(),
	}
	if seed, ok := cfg.Seed(); ok {
		ret.functions = functable.New(functable.NewRandomSource(seed))
		ret.log.Infof("random source seeded with %d", seed)
	} else {
		ret.functions = functable.New()
	}
	for _, id := range cfg.ConstantNames() {
		if err := ret.vars.Assign(id, "=", cfg.Constants[id]); err != nil {
			return nil, err
		}
		ret.log.Debugf("constant %s = %v", id, cfg.Constants[id])
	}
	ret.log.Infof("STARTED")
	return ret, nil
}

// Functions returns the function table of the session
func (r *Runtime) Functions() *functable.FunctionTable {
	return r.functions
}

// Vars returns the variable table of the session
func (r *Runtime) Vars() *vartable.VarTable {
	return r.vars
}

// IsDefined returns true if function call with numArgs arguments is valid
func (r *Runtime) IsDefined(name string, numArgs int) bool {
	return r.functions.IsDefined(name, numArgs)
}

// Call invokes builtin function. Errors wrap *functable.UnsupportedCallError when applicable
func (r *Runtime) Call(name string, args ...float64) (float64, error) {
	ret, err := r.functions.Invoke(name, args...)
	if err != nil {
		r.log.Debugf("call %s%v failed: %v", name, args, err)
		return 0, fmt.Errorf("runtime: %w", err)
	}
	r.log.Debugf("call %s%v = %v", name, args, ret)
	return ret, nil
}

// Get returns value of the variable. Error wraps *vartable.UndefinedVariableError
func (r *Runtime) Get(id string) (float64, error) {
	ret, err := r.vars.Get(id)
	if err != nil {
		r.log.Debugf("get %s failed: %v", id, err)
		return 0, fmt.Errorf("runtime: %w", err)
	}
	r.log.Debugf("get %s = %v", id, ret)
	return ret, nil
}

// Assign applies assignment operator to the variable. Errors wrap
// *vartable.UndefinedVariableError or vartable.ErrUnknownOperator
func (r *Runtime) Assign(id, op string, x float64) error {
	if err := r.vars.Assign(id, op, x); err != nil {
		r.log.Debugf("%s %s %v failed: %v", id, op, x, err)
		return fmt.Errorf("runtime: %w", err)
	}
	r.log.Debugf("%s %s %v", id, op, x)
	return nil
}

// Remove unbinds the variable, if bound
func (r *Runtime) Remove(id string) {
	r.vars.Remove(id)
	r.log.Debugf("removed %s", id)
}

// Close ends the session and logs its statistics
func (r *Runtime) Close() {
	r.log.Infof("STOPPED. Function calls: %d, variables left: %d", r.functions.NumCalls(), len(r.vars.Names()))
	_ = r.log.Sync()
}
