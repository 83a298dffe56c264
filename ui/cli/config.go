// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rasmusac/bdx/internal/config"
	"github.com/rasmusac/bdx/internal/i18n"
	"github.com/rasmusac/bdx/internal/logging"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: i18n.T("cli.config.short"),
	}
	cmd.AddCommand(newConfigShowCmd(a), newConfigInitCmd(a))
	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: i18n.T("cli.config.show.short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Marshal(&a.config)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.configUsed != "" {
				fmt.Fprintf(out, "# %s\n", a.configUsed)
			}
			_, err = out.Write(data)
			return err
		},
	}
}

func newConfigInitCmd(a *app) *cobra.Command {
	var force, system bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       i18n.T("cli.config.init.short"),
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationCreatesConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			// write the effective settings so flags given here are kept
			c := a.config

			var path string
			var err error
			if a.cfgFile != "" {
				path = a.cfgFile
				err = config.WriteConfigFileAt(&c, path, force)
			} else {
				path, err = config.WriteConfigFile(&c, system, force)
			}
			if errors.Is(err, os.ErrExist) {
				return errors.New(i18n.T("cli.config.exists", path))
			}
			if err != nil {
				return err
			}

			logging.Debugf("config written to %s", path)
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.config.written", path))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	cmd.Flags().BoolVar(&system, "system", false, "write the system-wide config file instead of the user one")
	return cmd
}
