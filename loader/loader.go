// Copyright 2026 The gradjit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package loader exposes the JIT loader that turns generated C into
// callable forward/backward entry points.
//
// Example:
//
//	ld := loader.New("math.h")
//	if err := expr.Compile(ld); err != nil {
//	    log.Println(err) // engine still works interpreted
//	}
//	defer ld.Close()
package loader

import "github.com/gradjit/gradjit/internal/jit"

// Loader accumulates one C translation unit, compiles it through the
// external C compiler and loads the resulting shared object.
type Loader = jit.Loader

// ForwardFunc is the signature of a generated forward entry point.
type ForwardFunc = jit.ForwardFunc

// BackwardFunc is the signature of a generated backward entry point.
type BackwardFunc = jit.BackwardFunc

// Errors surfaced by CompileAndLoad.
var (
	ErrCompile        = jit.ErrCompile
	ErrLibraryLoad    = jit.ErrLibraryLoad
	ErrSymbolNotFound = jit.ErrSymbolNotFound
)

// New returns a Loader seeded with one #include per header and the
// v(x) macro.
func New(headers ...string) *Loader { return jit.New(headers...) }
