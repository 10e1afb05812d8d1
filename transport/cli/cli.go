package cli

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"tzconv/config"
	"tzconv/infras/otel"
	"tzconv/internal/handlers/convert"
	"tzconv/shared/constant"
	"tzconv/shared/logger"
	"tzconv/transport/cli/response"
)

var errListingTakesNoArgs = errors.New("--list and --aliases take no positional arguments")

type CLI struct {
	config  *config.Config
	handler convert.Handler
	otel    otel.Otel
}

func New(config *config.Config, handler convert.Handler, otel otel.Otel) *CLI {
	return &CLI{
		config:  config,
		handler: handler,
		otel:    otel,
	}
}

type flags struct {
	list    bool
	aliases bool
	noColor bool
	verbose int
}

// Execute parses args, runs the requested action and returns the exit code.
func (c *CLI) Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	defer func() {
		if err := c.otel.Shutdown(context.WithoutCancel(ctx)); err != nil {
			log.Debug().Err(err).Msg("Failed to shut down tracer provider")
		}
	}()

	code := constant.ExitCodeOK
	cmd := c.command(stdout, stderr, &code)

	// cobra reads os.Args when given nil
	if args == nil {
		args = []string{}
	}

	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		return c.handler.Usage(stderr, err, cmd.UsageString())
	}

	return code
}

func (c *CLI) command(stdout, stderr io.Writer, code *int) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   c.config.App.Name + " [timestamp] [zone|default]",
		Short: "Convert a UTC timestamp into named time zones",
		Long: "Convert a UTC timestamp (" + constant.InputLayout + ") into named time zones.\n\n" +
			"Without arguments the current time is shown in the default zones. With only a timestamp\n" +
			"a zone is chosen interactively. The zone may be an IANA identifier, a common abbreviation\n" +
			"such as IST or PST, or \"" + constant.DefaultKeyword + "\" for the default zones.",
		Example: "  " + c.config.App.Name + "\n" +
			"  " + c.config.App.Name + " 2025-04-01T15:30:00Z\n" +
			"  " + c.config.App.Name + " 2025-04-01T15:30:00Z default\n" +
			"  " + c.config.App.Name + " 2025-04-01T15:30:00Z Asia/Kolkata",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Raise(f.verbose)

			if f.noColor || c.config.App.NoColor {
				response.SetColor(false)
			}

			ctx := cmd.Context()

			switch {
			case (f.list || f.aliases) && len(args) > 0:
				return errListingTakesNoArgs
			case f.list:
				*code = c.handler.ListZones(ctx, stdout, stderr)
			case f.aliases:
				*code = c.handler.ListAliases(stdout)
			default:
				*code = c.handler.Convert(ctx, args, stdout, stderr)
			}

			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().BoolVarP(&f.list, "list", "l", false, "print every zone known to this system")
	cmd.Flags().BoolVar(&f.aliases, "aliases", false, "print the supported zone abbreviations")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "disable colored output")
	cmd.Flags().CountVarP(&f.verbose, "verbose", "v", "increase log verbosity (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("list", "aliases")

	return cmd
}
