package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gradjit/gradjit/internal/regress"
	"github.com/gradjit/gradjit/internal/timing"
	"github.com/gradjit/gradjit/loader"
)

// regressCmd fits the 10-parameter linear-regression demo to its 7
// data points by gradient descent on mean-squared error.
func regressCmd() *cobra.Command {
	var (
		steps   int
		lr      float32
		compile bool
	)
	cmd := &cobra.Command{
		Use:   "regress",
		Short: "Train the linear-regression demo",
		RunE: func(*cobra.Command, []string) error {
			weights := regress.NewWeights()
			loss := regress.BuildLoss(weights)
			counts := loss.Counts()
			fmt.Printf("loss DAG: %d nodes (%d constants, %d differentiable)\n",
				counts.Total, counts.Constants, counts.RequiresGrad)

			step := regress.Step
			var t timing.Timer
			if compile {
				ld := loader.New("math.h")
				stop := t.Track("compile")
				err := loss.Compile(ld)
				stop()
				if err != nil {
					return err
				}
				defer ld.Close()
				step = regress.StepCompiled
			}

			stop := t.Track("train")
			first := float32(0)
			for i := 0; i < steps; i++ {
				value := step(loss, weights, lr)
				if i == 0 {
					first = value
				}
			}
			stop()

			fmt.Printf("loss: %v -> %v after %d steps (lr=%v)\n", first, loss.Forward(), steps, lr)
			for _, w := range weights {
				fmt.Printf("  %s = %v\n", w.Name(), w.Value())
			}
			t.Report(os.Stdout)
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 100, "gradient steps")
	cmd.Flags().Float32Var(&lr, "lr", 0.05, "learning rate")
	cmd.Flags().BoolVar(&compile, "compile", false, "train through the JIT backend")
	return cmd
}
