// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// +build debug

package bdd

import (
	"log"
	"os"
)

const _DEBUG bool = true

func init() {
	log.SetOutput(os.Stdout)
	_LOGLEVEL = 1
}
