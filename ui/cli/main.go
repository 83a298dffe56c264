// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/rasmusac/bdx/buildvars"
	"github.com/rasmusac/bdx/core/radix"
	"github.com/rasmusac/bdx/internal/config"
	"github.com/rasmusac/bdx/internal/i18n"
	"github.com/rasmusac/bdx/internal/logging"
	"github.com/rasmusac/bdx/ui/tui"
	"github.com/spf13/cobra"
)

const modulePath = "github.com/rasmusac/bdx"

// annotationCreatesConfig marks commands that accept a --config path that
// does not exist yet.
const annotationCreatesConfig = "bdx.creates-config"

// debugLogFile receives log output while the TUI owns the terminal.
const debugLogFile = "bdx-debug.log"

var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// runTUI is swapped out in tests.
var runTUI = tui.Run

// app carries the state shared by the commands of one root command.
type app struct {
	cfgFile string
	verbose bool

	config     config.Config
	configUsed string
}

// setup loads the configuration and initializes i18n and logging before any
// command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	logging.SetDebug(a.verbose)

	explicitPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	a.config, a.configUsed, err = config.Load(cmd, explicitPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if a.configUsed != "" {
		logging.Debugf("config file: %s", a.configUsed)
	}

	i18n.SetLang(a.config.Language)
	if _, ok := i18n.GetAvailableLocales()[i18n.GetLang()]; !ok {
		logging.Warnf("no translation for language %q, falling back to English", i18n.GetLang())
	}
	return nil
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && cmd.Annotations[annotationCreatesConfig] == "true" {
			// the command is about to create it
			return nil, nil
		}
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// runInteractive launches the TUI, optionally seeded with the first argument.
func (a *app) runInteractive(cmd *cobra.Command, args []string) error {
	verbose := logging.DebugEnabled()
	if verbose {
		// the TUI owns the terminal, so debug output goes to a file
		closeLog, err := logging.OpenFile(debugLogFile)
		if err != nil {
			return err
		}
		defer func() {
			if err := closeLog(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "closing %s: %v\n", debugLogFile, err)
			}
		}()
		logging.Infof("starting tui %s", compositeVersion())
	}

	initial, err := initialValue(args, a.config)
	if err != nil {
		return err
	}
	if err := runTUI(tui.Options{
		Config:  a.config,
		Version: compositeVersion(),
		Initial: initial,
	}); err != nil {
		if verbose {
			logging.Errorf("tui stopped: %v", err)
		}
		return err
	}
	return nil
}

// initialValue checks the optional VALUE argument against the start base and
// strips its prefix. Input the TUI cannot type as given (foreign digits, a
// minus sign, overflow) is rejected like convert rejects it.
func initialValue(args []string, c config.Config) (string, error) {
	if len(args) == 0 {
		return "", nil
	}
	r, err := c.StartRadix()
	if err != nil {
		return "", err
	}
	text := trimPrefix(args[0], r)
	if radix.Parse(text, r).IsAbsent() || strings.HasPrefix(text, "-") {
		return "", fmt.Errorf("%w: %s", ErrInvalidInput, i18n.T("cli.convert.invalid", r.Short(), args[0]))
	}
	return text, nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	a := &app{}

	// i18n is not configured yet while the tree is built; the English
	// texts are used for --help.
	cmd := &cobra.Command{
		Use:               "bdx [VALUE]",
		Short:             i18n.T("cli.short"),
		Long:              i18n.T("cli.long"),
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runInteractive,
		Version:           compositeVersion(),
	}

	// Define flags
	pf := cmd.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging (written to "+debugLogFile+" while the TUI runs)")
	pf.StringVar(&a.cfgFile, "config", "", "config file")
	pf.String("language", "", `UI language ("`+strings.Join(i18n.Locales(), `", "`)+`")`)
	pf.String("theme", "", `TUI color theme ("auto", "dark", "light")`)
	pf.String("base", "", `base to start in ("dec", "hex", "oct", "bin")`)
	pf.Bool("strict", false, "reject digits that would overflow a 32-bit value")
	pf.Bool("prefixes", true, "show 0d/0x/0o/0b prefixes")

	cmd.AddCommand(
		newConvertCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T("cli.version.short"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

// compositeVersion joins version, commit and build date into one line.
func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" && c != v {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault("dev")
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't contain the version (some build paths), try to
		// find our module in the dependencies and use that version.
		if resolvedVersion == "dev" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort, show the commit passed via ldflags.
	if resolvedVersion == "dev" && resolvedCommit != "" && resolvedCommit != "dev" {
		resolvedVersion = resolvedCommit
	}
	return resolvedVersion, resolvedCommit, resolvedDate
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrInvalidInput):
		return 2
	}
	return 1
}
