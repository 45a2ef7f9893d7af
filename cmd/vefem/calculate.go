// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/VillePe/vefem-sub000/jsonmodel"
)

var calculateOutPath string

var calculateCmd = &cobra.Command{
	Use:   "calculate <model.json>",
	Short: "Run a calculation against a serialized StructureModel",
	Long: `Read a serialized StructureModel (spec §6 JSON shape) from the given
file, run the kernel over every load combination it names, and write the
serialized result array to stdout (or --out).

Example:
  vefem calculate model.json
  vefem calculate model.json --out results.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCalculate,
}

func init() {
	calculateCmd.Flags().StringVarP(&calculateOutPath, "out", "o", "", "write the result JSON to this file instead of stdout")
	rootCmd.AddCommand(calculateCmd)
}

func runCalculate(cmd *cobra.Command, args []string) error {
	modelJSON, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	resultJSON, err := jsonmodel.Calculate(modelJSON)
	if err != nil {
		return fmt.Errorf("calculate: %w", err)
	}

	if calculateOutPath == "" {
		fmt.Println(string(resultJSON))
		return nil
	}
	if err := os.WriteFile(calculateOutPath, resultJSON, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", calculateOutPath, err)
	}
	fmt.Printf("wrote %s\n", calculateOutPath)
	return nil
}
