// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/VillePe/vefem-sub000/jsonmodel"
)

var extractElementsCmd = &cobra.Command{
	Use:   "extract-elements <load.json> <elements.json>",
	Short: "List the element numbers a load's selector binds to",
	Long: `Read a serialized Load and a serialized array of elements, resolve the
load's element-number selector grammar (comma list, "A..B" ranges, -1
wildcard) against that element set, and print the matching element numbers
as a JSON array.

Example:
  vefem extract-elements load.json elements.json`,
	Args: cobra.ExactArgs(2),
	RunE: runExtractElements,
}

func init() {
	rootCmd.AddCommand(extractElementsCmd)
}

func runExtractElements(cmd *cobra.Command, args []string) error {
	loadJSON, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	elementsJSON, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[1], err)
	}

	nums, err := jsonmodel.ExtractElementsFromLoad(loadJSON, elementsJSON)
	if err != nil {
		return fmt.Errorf("extract-elements: %w", err)
	}
	out, err := json.Marshal(nums)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
