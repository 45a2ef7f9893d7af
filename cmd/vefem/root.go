// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/VillePe/vefem-sub000/version"
)

var rootCmd = &cobra.Command{
	Use:   "vefem",
	Short: "2D planar frame finite element analysis kernel",
	Long: `vefem - 2D Planar Frame FEA Kernel

A CLI front-end for the vefem-sub000 frame analysis library: linear-elastic
first-order analysis of 2D node/element frames under point, line,
triangular, trapezoid, rotational, strain and thermal loads.

This tool helps structural engineers:
  - Run a calculation against a serialized StructureModel (JSON)
  - Resolve a load's element-number selector against a given element set
  - Report the kernel's version`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Printf("  vefem v%s - 2D planar frame FEA kernel\n", version.String())
		fmt.Println("  Use 'vefem --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
