// Copyright (c) 2026 Confset Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"errors"
	"fmt"

	"github.com/confset-go/confset"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newValidateCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate every configuration in a set against a schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(flags.verbose)
			defer log.Sync()

			if flags.schemaPath == "" {
				log.Warn("no schema given, only the settings tree shape is checked")
			}

			m, err := flags.loadManager("")
			if err != nil {
				var sve confset.SchemaValidationError
				if errors.As(err, &sve) {
					for _, v := range sve.Violations {
						log.Error("schema violation",
							zap.String("configuration", sve.Config),
							zap.String("path", v.Path),
							zap.String("kind", string(v.Kind)),
						)
					}
				}
				return err
			}

			names := m.ConfigurationNames()
			log.Debug("loaded configuration set", zap.Strings("names", names))

			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d configuration(s) valid\n", len(names))
			return nil
		},
	}
}
