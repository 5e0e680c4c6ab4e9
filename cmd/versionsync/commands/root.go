package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/macropower/versionsync/pkg/config"
	"github.com/macropower/versionsync/pkg/log"
	"github.com/macropower/versionsync/pkg/paths"
	"github.com/macropower/versionsync/pkg/report"
	"github.com/macropower/versionsync/pkg/syncerrors"
	"github.com/macropower/versionsync/pkg/version"
	"github.com/macropower/versionsync/pkg/versionsync"
)

var ErrLogHandlerFailed = errors.New("log handler failed")

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:           name + " [new_version]",
		Short:         shortDesc,
		Long:          longDesc,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.String(),
	}

	cmd.PersistentFlags().StringVar(args.logLevel, "log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(args.logFormat, "log_format", "text", "Set the log format (text, logfmt, json)")
	cmd.PersistentFlags().StringVar(args.color, "color", "auto", "Colorize the report (auto, always, never)")

	cmd.Flags().StringVar(args.root, "root", "", "Repository root (default: the git repository containing the working directory)")
	cmd.Flags().StringVar(args.config, "config", "", "Manifest list file (default: "+config.DefaultFile+" in the repository root)")

	err := cmd.MarkFlagDirname("root")
	if err != nil {
		panic(err)
	}

	err = cmd.MarkFlagFilename("config", "yaml", "yml")
	if err != nil {
		panic(err)
	}

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		var merr error

		h, err := log.CreateHandlerWithStrings(cc.ErrOrStderr(), args.GetLogLevel(), args.GetLogFormat())
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%w: %w", ErrLogHandlerFailed, err))
		}

		_, err = report.ParseColorMode(args.GetColor())
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("%w: %w", syncerrors.ErrInvalidArguments, merr)
		}

		slog.SetDefault(slog.New(h))

		slog.Debug("ready to go")

		return nil
	}

	cmd.RunE = func(cc *cobra.Command, posArgs []string) error {
		root, err := paths.ResolveRoot(args.GetRoot())
		if err != nil {
			return fmt.Errorf("resolve repository root: %w", err)
		}

		entries, err := config.Load(root, args.GetConfig())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		opts := []versionsync.Option{versionsync.WithLogger(slog.Default())}
		if entries != nil {
			opts = append(opts, versionsync.WithEntries(entries))
		}

		s := versionsync.New(root, opts...)

		slog.Debug("using repository", slog.String("root", root), slog.Int("manifests", len(s.Entries())))

		if len(posArgs) == 1 {
			return s.Update(posArgs[0])
		}

		return runCheck(cc, s, args.GetColor())
	}

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

func runCheck(cc *cobra.Command, s *versionsync.Synchronizer, colorMode string) error {
	r, err := s.Check()
	if err != nil {
		return err
	}

	if r.Consistent() {
		return nil
	}

	mode, err := report.ParseColorMode(colorMode)
	if err != nil {
		return err
	}

	err = report.Write(cc.OutOrStdout(), r, report.WithColorMode(mode))
	if err != nil {
		return err
	}

	return syncerrors.ErrInconsistentVersions
}
