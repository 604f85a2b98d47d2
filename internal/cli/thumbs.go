package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nestjam/astrotools/internal/config"
	"github.com/nestjam/astrotools/internal/factory"
	"github.com/nestjam/astrotools/internal/thumb"
)

// ThumbsCmd returns the astrothumbs root command.
func ThumbsCmd(env config.Environment) *cobra.Command {
	conf := config.New()

	cmd := &cobra.Command{
		Use:   "astrothumbs [flags] [id[/rev]...]",
		Short: "Resolve AstroBin thumbnail file ids",
		Long: `Resolve the stable file ids of AstroBin thumbnails.

For every id or id/rev argument (revision defaults to 0) the thumbnail API is
queried for the real, qhd and qhd_sharpened variants. One line is printed per
resolved variant:

  <id[/rev]> <alias> <fileid>

Variants that cannot be resolved are skipped; run with --log-level=debug to see why.

Examples:
  astrothumbs 12345/2 abcdef
  astrothumbs -w 4 12345 23456 34567`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSetup(cmd, conf, env, func(c config.Config, logger *zap.Logger) error {
				out := cmd.OutOrStdout()
				r := factory.NewResolver(c, logger)

				err := r.Resolve(cmd.Context(), thumb.ParseTokens(args), func(res thumb.Result) {
					if res.OK() {
						fmt.Fprintln(out, res)
					}
				})

				return interrupted(err, logger)
			})
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	conf.BindFlags(cmd.PersistentFlags())
	cmd.AddCommand(aliasesCmd(&conf, env))

	return cmd
}

func aliasesCmd(conf *config.Config, env config.Environment) *cobra.Command {
	return &cobra.Command{
		Use:   "aliases [id[/rev]...]",
		Short: "List thumbnail aliases shown on the full image page",
		Long: `Scrape the full image page of every id or id/rev argument and print
one line per data-alias found on it:

  <id[/rev]> <alias>

Examples:
  astrothumbs aliases 12345/2`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSetup(cmd, *conf, env, func(c config.Config, logger *zap.Logger) error {
				out := cmd.OutOrStdout()
				client := factory.NewClient(c, logger)

				for _, token := range thumb.ParseTokens(args) {
					if err := cmd.Context().Err(); err != nil {
						return interrupted(err, logger)
					}

					aliases, err := client.PageAliases(cmd.Context(), token)
					if err != nil {
						logger.Debug("page skipped", zap.String("token", token.Raw), zap.Error(err))
						continue
					}

					for _, alias := range aliases {
						fmt.Fprintln(out, token.Raw, alias)
					}
				}

				return nil
			})
		},
	}
}

func withSetup(cmd *cobra.Command, conf config.Config, env config.Environment,
	run func(config.Config, *zap.Logger) error) error {
	conf, err := conf.FromEnv(env)
	if err != nil {
		return err
	}

	if err = conf.Validate(); err != nil {
		return err
	}

	logger, tearDown, err := factory.NewLogger(conf.LogLevel)
	if err != nil {
		return err
	}
	defer tearDown()

	logger.Debug("starting", zap.String("command", cmd.Name()), zap.String("base_url", conf.BaseURL))
	return run(conf, logger)
}

// A cancelled scan is reported in the log only; partial output stays valid.
func interrupted(err error, logger *zap.Logger) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		logger.Warn("interrupted", zap.Error(err))
		return nil
	}

	return err
}
