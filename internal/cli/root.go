// Package cli implements the zoo command-line interface. Every command loads
// the layout file into a fresh in-memory zoo, runs one query or transaction
// against it, and prints the result; nothing is written back.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ngoguened/zoo/internal/logging"
	"github.com/ngoguened/zoo/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries a process exit code up to Execute. A nil err means the
// command already reported everything it had to say.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	layout    string
	jsonMode  bool
	logLevel  string
}

// app is the state shared by the commands of one root command.
type app struct {
	flags     rootFlags
	configDir string
	cfg       *viper.Viper
	log       *slog.Logger
}

// NewRootCmd creates the top-level "zoo" command with global flags and all
// subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{log: logging.NewNop()}

	root := &cobra.Command{
		Use:   "zoo",
		Short: "Query and operate a zoo described by a layout file",
		Long: `zoo loads a layout file describing areas, paths, animals and the entrance
cash machine, then answers questions about it: which paths are allowed,
what a visitor sees, which areas nobody can reach, whether an animal fits
a habitat, and what change the machine gives.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/zoo)")
	root.PersistentFlags().StringVar(&a.flags.layout, "layout", "", "layout file (default: ./zoo.yaml)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output as JSON")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newAreasCmd(a))
	root.AddCommand(newPathCmd(a))
	root.AddCommand(newVisitCmd(a))
	root.AddCommand(newUnreachableCmd(a))
	root.AddCommand(newPlaceCmd(a))
	root.AddCommand(newPayCmd(a))
	root.AddCommand(newChangeCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	err := root.Execute()
	if err == nil {
		return
	}

	code := exitUserError
	var ee *exitError
	if errors.As(err, &ee) {
		code = ee.code
		err = ee.err
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "zoo:", err)
	}
	os.Exit(code)
}

// setup resolves the config directory, loads config.yaml, and builds the
// logger. Log level precedence: --log-level > config log_level > info.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return &exitError{code: exitSysError, err: fmt.Errorf("resolve config dir: %w", err)}
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return &exitError{code: exitSysError, err: err}
	}

	levelName := a.flags.logLevel
	if levelName == "" {
		levelName = cfg.GetString(cfgKeyLogLevel)
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}

	a.configDir = configDir
	a.cfg = cfg
	a.log = logging.NewWithWriter(cmd.ErrOrStderr(), level)
	return nil
}
