// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"errors"
	"fmt"
	"log"
)

var errMemory = errors.New("unable to free memory or resize bdd")
var errBadVar = errors.New("variable index out of range")

// Error returns the error status of the manager. We return an empty string if
// there are no errors.
func (b *BDD) Error() string {
	if b.error == nil {
		return ""
	}
	return b.error.Error()
}

// Errored returns true if an operation has previously set the error status.
func (b *BDD) Errored() bool {
	return b.error != nil
}

func (b *BDD) seterror(format string, a ...interface{}) Node {
	if b.error != nil {
		format = format + "; " + b.Error()
	}
	b.error = fmt.Errorf(format, a...)
	if _DEBUG {
		log.Println(b.error)
	}
	return nil
}
