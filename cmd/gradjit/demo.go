package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gradjit/gradjit/dual"
	"github.com/gradjit/gradjit/loader"
)

// demoCmd builds the worked example x = sqrt((a*a + 5*c)^(2*b - 1))
// over named variables and prints the expression, its value and the
// gradients, interpreted and (optionally) compiled.
func demoCmd() *cobra.Command {
	var compile bool
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Evaluate and differentiate a worked example expression",
		RunE: func(*cobra.Command, []string) error {
			a, b, c := dual.Var(2), dual.Var(5), dual.Var(7)
			a.SetName("a")
			b.SetName("b")
			c.SetName("c")

			x := a.Mul(a).
				Add(dual.Const(5).Mul(c)).
				Pow(dual.Const(2).Mul(b).Sub(dual.Const(1))).
				Sqrt()

			fmt.Printf("x = %s\n", x.ExprString())

			counts := x.Counts()
			fmt.Printf("nodes: %d total, %d constants, %d differentiable\n",
				counts.Total, counts.Constants, counts.RequiresGrad)

			x.Backward(1)
			fmt.Printf("x = %v\n", x.Value())
			fmt.Printf("dx/da = %v\ndx/db = %v\ndx/dc = %v\n", a.Grad(), b.Grad(), c.Grad())

			if !compile {
				return nil
			}

			ld := loader.New("math.h")
			if err := x.Compile(ld); err != nil {
				return err
			}
			defer ld.Close()
			fmt.Printf("compiled %d bytes of C\n", len(ld.Source()))

			a.SetGrad(0)
			b.SetGrad(0)
			c.SetGrad(0)
			fmt.Printf("x (compiled) = %v\n", x.ForwardCompiled())
			x.BackwardCompiled(1)
			fmt.Printf("dx/da = %v\ndx/db = %v\ndx/dc = %v\n", a.Grad(), b.Grad(), c.Grad())
			return nil
		},
	}
	cmd.Flags().BoolVar(&compile, "compile", false, "rerun through the JIT backend")
	return cmd
}
