package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gradjit/gradjit/dual"
	"github.com/gradjit/gradjit/internal/exprgen"
	"github.com/gradjit/gradjit/internal/timing"
	"github.com/gradjit/gradjit/loader"
)

// benchCmd grows a random expression over three variables and times
// gradient-descent steps through the interpreter against the compiled
// passes.
func benchCmd() *cobra.Command {
	var (
		seed               int64
		minDepth, maxDepth int
		steps              int
		lr                 float32
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time interpreted vs compiled passes on a random expression",
		RunE: func(*cobra.Command, []string) error {
			a, b, c := dual.Var(2), dual.Var(5), dual.Var(7)
			a.SetName("a")
			b.SetName("b")
			c.SetName("c")
			vars := []*dual.Dual{a, b, c}

			x := exprgen.New(seed).Expr(minDepth, maxDepth, vars)
			counts := x.Counts()
			fmt.Printf("expression: %d nodes over %d variables\n", counts.Total, len(vars))

			var t timing.Timer

			descend := func(pass func()) {
				for i := 0; i < steps; i++ {
					for _, v := range vars {
						v.ZeroGrad()
					}
					pass()
					for _, v := range vars {
						v.SetValue(v.Value() - v.Grad()*lr)
					}
				}
			}

			stop := t.Track("interpreted")
			descend(func() { x.Forward(); x.Backward(1) })
			stop()
			fmt.Printf("interpreted: x=%v a=%v b=%v c=%v\n", x.Value(), a.Value(), b.Value(), c.Value())

			ld := loader.New("math.h")
			stop = t.Track("compile")
			err := x.Compile(ld)
			stop()
			if err != nil {
				return err
			}
			defer ld.Close()

			stop = t.Track("compiled")
			descend(func() { x.ForwardCompiled(); x.BackwardCompiled(1) })
			stop()
			fmt.Printf("compiled:    x=%v a=%v b=%v c=%v\n", x.Value(), a.Value(), b.Value(), c.Value())

			t.Report(os.Stdout)
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 16, "random seed")
	cmd.Flags().IntVar(&minDepth, "min-depth", 8, "minimum expression depth")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 8, "maximum expression depth")
	cmd.Flags().IntVar(&steps, "steps", 1000, "gradient steps per pass")
	cmd.Flags().Float32Var(&lr, "lr", 0.001, "learning rate")
	return cmd
}
