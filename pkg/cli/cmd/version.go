// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

package cmd

import (
	"fmt"

	"github.com/mediaease/raidsetup/pkg/version"
	"github.com/spf13/cobra"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("raidsetup %s", version.Version())
			if c := version.GitCommit(); c != "" {
				fmt.Printf(" (%s)", c)
			}
			if d := version.BuildDate(); d != "" {
				fmt.Printf(" built %s", d)
			}
			fmt.Println()
		},
	}
}
