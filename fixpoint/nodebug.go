// +build !debug

package fixpoint

const debugLog bool = false
