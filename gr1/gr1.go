package gr1

import (
	"github.com/GEO-IASS/gr1c/automaton"
	"github.com/GEO-IASS/gr1c/bdd"
	"github.com/GEO-IASS/gr1c/encode"
	"github.com/GEO-IASS/gr1c/extract"
	"github.com/GEO-IASS/gr1c/fixpoint"
	"github.com/GEO-IASS/gr1c/model"
)

// Options bundles the construction-time choices a caller can make: the
// initial-condition mode the fixpoint engine checks and any BDD manager
// tuning to forward to the encoder.
type Options struct {
	Mode fixpoint.InitCondition
	BDD  []bdd.Option
}

// Realizable compiles spec and runs the fixpoint computation, reporting
// whether a winning system strategy exists. It does not build the
// automaton; call Synthesize for that.
func Realizable(spec *model.Specification, opts Options) (bool, *fixpoint.Result, error) {
	if err := spec.Validate(); err != nil {
		return false, nil, err
	}
	enc, err := encode.New(spec.Vars, opts.BDD...)
	if err != nil {
		return false, nil, err
	}
	eng, err := fixpoint.New(enc, spec, fixpoint.Mode(opts.Mode))
	if err != nil {
		return false, nil, err
	}
	result, err := eng.Compute()
	if err != nil {
		return false, nil, err
	}
	return result.Realizable, result, nil
}

// Synthesize compiles spec, checks realizability and, if realizable,
// extracts the automaton. If the specification is unrealizable it returns a
// nil automaton and ok=false without error: unrealizability is a legitimate
// outcome, not a failure (§7).
func Synthesize(spec *model.Specification, opts Options) (auto *automaton.Automaton, ok bool, err error) {
	if err := spec.Validate(); err != nil {
		return nil, false, err
	}
	enc, err := encode.New(spec.Vars, opts.BDD...)
	if err != nil {
		return nil, false, err
	}
	eng, err := fixpoint.New(enc, spec, fixpoint.Mode(opts.Mode))
	if err != nil {
		return nil, false, err
	}
	result, err := eng.Compute()
	if err != nil {
		return nil, false, err
	}
	if !result.Realizable {
		return nil, false, nil
	}
	auto, err = extract.Extract(eng, result)
	if err != nil {
		return nil, false, err
	}
	return auto, true, nil
}
