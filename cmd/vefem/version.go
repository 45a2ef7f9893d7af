// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VillePe/vefem-sub000/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of vefem",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("vefem v%s\n", version.String())
		if version.GitCommit != "unknown" {
			fmt.Printf("Commit: %s\n", version.GitCommit)
		}
		if version.BuildTime != "unknown" {
			fmt.Printf("Built:  %s\n", version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
