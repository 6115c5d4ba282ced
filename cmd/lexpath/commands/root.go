package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/MacroPower/lexpath/pkg/log"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrLogHandlerFailed = errors.New("log handler failed")
)

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       GetVersionString(),
	}

	cmd.PersistentFlags().StringVar(args.logLevel, "log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(args.logFormat, "log_format", "text", "Set the log format (text, logfmt, json)")
	cmd.PersistentFlags().StringVar(args.platform, "platform", "posix", "Select the path grammar (posix, windows)")
	cmd.PersistentFlags().
		StringVar(args.doubleSlash, "double_slash", "collapse", "Set the POSIX leading double-slash policy (collapse, preserve)")
	cmd.PersistentFlags().StringVar(args.configFile, "config", "", "Read flag defaults from a config file")

	err := cmd.MarkPersistentFlagFilename("config", "yaml", "yml")
	if err != nil {
		panic(err)
	}

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		err := applyConfigFile(cc, args)
		if err != nil {
			return err
		}

		var merr error

		platform, err := args.Platform()
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if _, err := args.ParseOptions(); err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
		}

		h, err := log.CreateHandlerWithStrings(cc.ErrOrStderr(), args.GetLogLevel(), args.GetLogFormat())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		slog.SetDefault(slog.New(h))

		slog.Debug("configured", slog.String("platform", platform.String()))

		return nil
	}

	cmd.AddCommand(NewExplainCmd(args))
	cmd.AddCommand(NewNormalizeCmd(args))
	cmd.AddCommand(NewJoinCmd(args))
	cmd.AddCommand(NewRelCmd(args))
	cmd.AddCommand(NewRootedCmd(args))
	cmd.AddCommand(NewInsideCmd(args))
	cmd.AddCommand(NewAbsCmd(args))
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// applyConfigFile fills in persistent flags from the config file, with
// explicitly set flags taking precedence over file values.
func applyConfigFile(cc *cobra.Command, args *RootArgs) error {
	path := args.GetConfigFile()
	explicit := path != ""

	if !explicit {
		path = DefaultConfigFile
	}

	cfg, err := LoadConfig(path, explicit)
	if err != nil {
		return err
	}

	flags := cc.Flags()
	for flag, value := range map[string]string{
		"platform":     cfg.Platform,
		"double_slash": cfg.DoubleSlash,
		"log_level":    cfg.LogLevel,
		"log_format":   cfg.LogFormat,
	} {
		if value == "" || flags.Changed(flag) {
			continue
		}

		if err := flags.Set(flag, value); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
	}

	return nil
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
