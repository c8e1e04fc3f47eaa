package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/rafa3127/MCP-shared-Config/internal/branding"
	"github.com/rafa3127/MCP-shared-Config/internal/config"
	"github.com/rafa3127/MCP-shared-Config/internal/connector"
	"github.com/rafa3127/MCP-shared-Config/internal/environment"
	"github.com/rafa3127/MCP-shared-Config/internal/paths"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// errValidationFailed is returned after validation errors have already been
// reported to the user, so main only has to set the exit code.
var errValidationFailed = errors.New("configuration has validation errors")

// defaultEnvFile is overlaid on the process environment when present in
// the working directory and no --env-file is given.
const defaultEnvFile = ".env"

type buildInfo struct {
	Module  string `json:"module"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// rootOptions holds the flags of the root (generate) command. Persistent
// flags are shared with every subcommand.
type rootOptions struct {
	user     string
	output   string
	envFile  string
	validate bool
	dryRun   bool
	debug    bool
	list     bool
	noRedact bool

	// Collaborators. Tests replace them.
	fs      afero.Fs
	environ func() []string
	goos    string

	// logOut receives slog output once the command has started.
	logOut io.Writer
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd(version, commit, date string) *cobra.Command {
	opts := &rootOptions{
		fs:      afero.NewOsFs(),
		environ: os.Environ,
		goos:    runtime.GOOS,
	}
	return newRootCmd(opts, buildInfo{Module: branding.GoModule(), Version: version, Commit: commit, Date: date})
}

func newRootCmd(opts *rootOptions, info buildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` reads connector settings from the environment (and an optional .env
file), validates them and writes the connectors document a desktop client
loads its tool servers from. Only variables set to exactly "true" enable
a connector.

Source: https://github.com/` + branding.GitHubRepo(),
		Version:       info.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.Load()
			opts.logOut = cmd.ErrOrStderr()
			setupLogging(opts.logOut, opts.debug, os.Getenv)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.envFile, "env-file", "", "Overlay variables from this file instead of ./.env")
	pf.BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	f := cmd.Flags()
	f.StringVarP(&opts.user, "user", "u", "", "Write to this user's client config (default: current user)")
	f.StringVarP(&opts.output, "output", "o", "", "Write to this path instead of the client config")
	f.BoolVar(&opts.validate, "validate", false, "Only validate the configuration")
	f.BoolVar(&opts.dryRun, "dry-run", false, "Print the document instead of writing it")
	f.BoolVar(&opts.list, "list", false, "List available connectors")
	f.BoolVar(&opts.noRedact, "no-redact", false, "Show secrets in printed documents")

	cmd.AddCommand(
		newListCmd(opts),
		newValidateCmd(opts),
		newDocsCmd(opts),
		newDoctorCmd(opts),
		newEnvCmd(opts),
		newConfigCmd(),
		newVersionCmd(info),
	)
	return cmd
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	err := NewRootCmd(version, commit, date).Execute()
	if err != nil && !errors.Is(err, errValidationFailed) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// setupLogging installs the default slog logger on w. The level comes from
// MCPCONFIG_LOG_LEVEL (or the config file), then LOG_LEVEL as read by
// lookup.
func setupLogging(w io.Writer, debug bool, lookup func(string) string) {
	levelStr := config.Get(config.KeyLogLevel)
	if levelStr == "" {
		levelStr = lookup("LOG_LEVEL")
	}
	level, ok := config.ParseLogLevel(levelStr)
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	if !ok {
		slog.Warn("Invalid LOG_LEVEL, using INFO", "value", levelStr)
	}
}

// envFiles returns the dotfiles to overlay: the explicit flag, the
// configured env_file, or ./.env when it exists.
func (o *rootOptions) envFiles() []string {
	if o.envFile != "" {
		return []string{o.envFile}
	}
	if p := config.Get(config.KeyEnvFile); p != "" {
		return []string{p}
	}
	if ok, _ := afero.Exists(o.fs, defaultEnvFile); ok {
		return []string{defaultEnvFile}
	}
	return nil
}

// snapshot captures the environment once for the whole run.
func (o *rootOptions) snapshot() (environment.Snapshot, error) {
	files := o.envFiles()
	env, err := environment.Load(o.fs, o.environ(), files...)
	if err != nil {
		return environment.Snapshot{}, fmt.Errorf("loading environment: %w", err)
	}
	// LOG_LEVEL may come from a .env file, which is only visible now.
	if o.logOut != nil {
		setupLogging(o.logOut, o.debug, env.Get)
	}

	wd, _ := os.Getwd()
	slog.Debug("Environment loaded", "cwd", wd, "vars", env.Len(), "env_files", files)
	return env, nil
}

func (o *rootOptions) manager() (*connector.Manager, error) {
	env, err := o.snapshot()
	if err != nil {
		return nil, err
	}
	return connector.NewManager(env, connector.Options{Fs: o.fs}), nil
}

// outputPath resolves where the document goes. Flags win over settings:
// --output, then --user, then the configured output, then the configured
// user, then the current user.
func (o *rootOptions) outputPath() (string, error) {
	if o.output != "" {
		return o.output, nil
	}
	if o.user != "" {
		return paths.DefaultOutput(o.goos, o.user), nil
	}
	if p := config.Get(config.KeyOutput); p != "" {
		return p, nil
	}

	user := config.Get(config.KeyUser)
	if user == "" {
		u, err := paths.CurrentUsername()
		if err != nil {
			return "", err
		}
		user = u
	}
	return paths.DefaultOutput(o.goos, user), nil
}
