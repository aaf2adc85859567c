// Copyright (c) 2026 Confset Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/confset-go/confset"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGetCommand(flags *rootFlags) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "get key [key...]",
		Short: "Look up a setting by its key path",
		Long: `Look up a (possibly nested) setting in a configuration. Each argument
descends one level into the settings tree. Without --name the first
configuration in the set answers the lookup.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(flags.verbose)
			defer log.Sync()

			m, err := flags.loadManager(name)
			if err != nil {
				return err
			}
			log.Debug("resolving setting",
				zap.String("configuration", m.ActiveConfiguration()),
				zap.Strings("keys", args),
			)

			v, err := m.GetSetting(args...)
			if err != nil {
				return err
			}
			return printValue(cmd, v)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "configuration to resolve the lookup against")
	return cmd
}

func printValue(cmd *cobra.Command, v any) error {
	out := cmd.OutOrStdout()
	switch x := v.(type) {
	case nil:
		_, err := fmt.Fprintln(out, "null")
		return err
	case *confset.Settings:
		b, err := json.MarshalIndent(x.Map(), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	default:
		_, err := fmt.Fprintln(out, x)
		return err
	}
}
