package encode

import "errors"

// errNotASingleState is returned by CubeToState when the given BDD is not a
// single minterm over the chosen side's variables (either unsatisfiable or
// still underdetermined).
var errNotASingleState = errors.New("encode: cube does not denote a single total state")
