package extract

import "fmt"

// ExtractError reports that step 4 of the extraction worklist found no
// admissible successor for a state believed to be winning. This indicates
// an internal inconsistency between the winning set and the rank tables
// that produced it, not a problem with the specification; it is never
// silently pruned.
type ExtractError struct {
	State []bool
	Mode  int
	Goal  int
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("extract: no admissible move from state %v mode %d toward goal %d", e.State, e.Mode, e.Goal)
}
