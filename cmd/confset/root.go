// Copyright (c) 2026 Confset Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configsPath string
	schemaPath  string
	yaml        bool
	verbose     bool
}

func newRootCommand() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           "confset",
		Short:         "Inspect and validate configuration set files",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configsPath, "configs", "c", "", "path to the configuration set file")
	cmd.PersistentFlags().StringVarP(&flags.schemaPath, "schema", "s", "", "path to the schema file")
	cmd.PersistentFlags().BoolVar(&flags.yaml, "yaml", false, "treat input files as YAML instead of JSON")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newValidateCommand(&flags))
	cmd.AddCommand(newGetCommand(&flags))
	cmd.AddCommand(newNamesCommand(&flags))

	return cmd
}
