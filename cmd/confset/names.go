// Copyright (c) 2026 Confset Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNamesCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List the configuration names in a set",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, _, err := flags.loadInput()
			if err != nil {
				return err
			}

			for _, e := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), e.Name)
			}
			return nil
		},
	}
}
