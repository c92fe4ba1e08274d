package model

import "fmt"

// VarEnv is the pair of ordered, disjoint name lists that fixes both the
// variable-to-index mapping and the interleaved BDD layout described by the
// encoder: e0,e0',e1,e1',...,em-1,em-1',s0,s0',...,sn-1,sn-1'.
type VarEnv struct {
	EVars []string
	SVars []string

	index map[string]int // name -> position within EVars++SVars, 0-based
}

// NewVarEnv builds a VarEnv from the declared environment and system names.
// It reports a *SpecificationError if a name is empty, repeated, or shared
// between the two sides.
func NewVarEnv(evars, svars []string) (*VarEnv, error) {
	v := &VarEnv{
		EVars: append([]string(nil), evars...),
		SVars: append([]string(nil), svars...),
		index: make(map[string]int, len(evars)+len(svars)),
	}
	pos := 0
	for _, name := range v.EVars {
		if err := v.declare(name, pos); err != nil {
			return nil, err
		}
		pos++
	}
	for _, name := range v.SVars {
		if err := v.declare(name, pos); err != nil {
			return nil, err
		}
		pos++
	}
	return v, nil
}

func (v *VarEnv) declare(name string, pos int) error {
	if name == "" {
		return &SpecificationError{Reason: "empty variable name"}
	}
	if _, ok := v.index[name]; ok {
		return &SpecificationError{Name: name, Reason: "duplicate variable name"}
	}
	v.index[name] = pos
	return nil
}

// M is the number of environment variables.
func (v *VarEnv) M() int { return len(v.EVars) }

// N is the number of system variables.
func (v *VarEnv) N() int { return len(v.SVars) }

// Total is m+n, the number of current-step variables.
func (v *VarEnv) Total() int { return v.M() + v.N() }

// Index returns the 0-based position of name within EVars++SVars, used by
// the encoder to compute the BDD variable pair 2*idx, 2*idx+1.
func (v *VarEnv) Index(name string) (int, bool) {
	i, ok := v.index[name]
	return i, ok
}

// MustIndex is Index, panicking on an unknown name; used internally once a
// formula has already been validated by the encoder.
func (v *VarEnv) MustIndex(name string) int {
	i, ok := v.index[name]
	if !ok {
		panic(fmt.Sprintf("model: unresolved variable %q", name))
	}
	return i
}

// IsEnv reports whether the variable at idx belongs to the environment.
func (v *VarEnv) IsEnv(idx int) bool { return idx < v.M() }

// Name returns the declared name at the given 0-based index.
func (v *VarEnv) Name(idx int) string {
	if idx < v.M() {
		return v.EVars[idx]
	}
	return v.SVars[idx-v.M()]
}

// EnvIndices returns 0..m-1, the indices belonging to the environment.
func (v *VarEnv) EnvIndices() []int {
	res := make([]int, v.M())
	for i := range res {
		res[i] = i
	}
	return res
}

// SysIndices returns m..m+n-1, the indices belonging to the system.
func (v *VarEnv) SysIndices() []int {
	res := make([]int, v.N())
	for i := range res {
		res[i] = v.M() + i
	}
	return res
}
