// Package main provides the gradjit CLI: demonstration drivers around
// the scalar autodiff engine.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "v0.1.0"

func main() {
	root := &cobra.Command{
		Use:          "gradjit",
		Short:        "Scalar reverse-mode autodiff with a C JIT backend",
		SilenceUsage: true,
	}
	root.AddCommand(demoCmd(), benchCmd(), regressCmd(), versionCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(*cobra.Command, []string) {
			fmt.Printf("gradjit %s\n", version)
		},
	}
}
