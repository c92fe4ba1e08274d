// +build debug

package fixpoint

const debugLog bool = true
