// Copyright 2026 The gradjit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dual is the public surface of the gradjit scalar autodiff
// engine.
//
// Expressions are built from leaves with ordinary arithmetic; the
// engine records them as a shared DAG and computes values and
// gradients by reverse accumulation, interpreted or JIT-compiled:
//
//	a := dual.Var(2)
//	c := dual.Var(7)
//	x := a.Mul(a).Add(dual.Const(5).Mul(c)) // x = a*a + 5*c
//
//	x.Backward(1)
//	fmt.Println(a.Grad(), c.Grad()) // 4 5
//
//	ld := loader.New("math.h")
//	if err := x.Compile(ld); err == nil {
//	    x.BackwardCompiled(1) // same cells, native code
//	}
package dual

import (
	"github.com/gradjit/gradjit/internal/dual"
	"github.com/gradjit/gradjit/internal/graph"
)

// Dual is a handle on one node of the expression DAG.
type Dual = dual.Dual

// Counts summarises a DAG: distinct nodes, constants, requires-grad.
type Counts = graph.Counts

// Const returns a constant leaf; its value may be inlined into
// generated code.
func Const(v float32) *Dual { return dual.Const(v) }

// Var returns a differentiable leaf.
func Var(v float32) *Dual { return dual.Var(v) }

// Leaf returns a plain input leaf: address-referenced in generated
// code but not differentiated.
func Leaf(v float32) *Dual { return dual.Leaf(v) }
