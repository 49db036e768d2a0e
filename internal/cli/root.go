// Package cli implements fruitshopctl, a command-line front end over the same services
// the HTTP server uses.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/SscSPs/fruit_shop_app/internal/adapters/amqp"
	"github.com/SscSPs/fruit_shop_app/internal/adapters/pdf"
	portssvc "github.com/SscSPs/fruit_shop_app/internal/core/ports/services"
	"github.com/SscSPs/fruit_shop_app/internal/core/services"
	"github.com/SscSPs/fruit_shop_app/internal/platform/config"
	"github.com/SscSPs/fruit_shop_app/internal/repositories"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"
)

// Opener builds the service container for one command invocation. The returned func
// releases whatever the container holds.
type Opener func(ctx context.Context) (*portssvc.ServiceContainer, func(), error)

// app carries the state shared by every subcommand.
type app struct {
	open     Opener
	services *portssvc.ServiceContainer
	release  func()
}

// Execute runs fruitshopctl with args, writing to out and errOut.
func Execute(ctx context.Context, open Opener, args []string, out, errOut io.Writer) error {
	a := &app{open: open}
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.ExecuteContext(ctx)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "fruitshopctl",
		Short:         "Manage fruit and juice shop transactions",
		Long:          "fruitshopctl records income and expenses, prints summaries and exports reports\nagainst the store configured for the backend (STORAGE_DRIVER, SQLITE_PATH, PGSQL_URL).",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newGetCmd(a),
		newUpdateCmd(a),
		newDeleteCmd(a),
		newDeleteAllCmd(a),
		newSummaryCmd(a),
		newExportCmd(a),
		newWatchCmd(),
	)

	cc.Init(&cc.Config{
		RootCmd:         root,
		Headings:        cc.HiCyan + cc.Bold + cc.Underline,
		Commands:        cc.HiYellow + cc.Bold,
		CmdShortDescr:   cc.White,
		Example:         cc.Italic,
		ExecName:        cc.Bold,
		Flags:           cc.Bold,
		FlagsDescr:      cc.White,
		NoExtraNewlines: true,
	})
	return root
}

func (a *app) close() {
	if a.release != nil {
		a.release()
		a.release = nil
	}
}

// svc opens the services on first use.
func (a *app) svc(cmd *cobra.Command) (*portssvc.ServiceContainer, error) {
	if a.services != nil {
		return a.services, nil
	}
	container, release, err := a.open(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	a.services, a.release = container, release
	return container, nil
}

// ConfigOpener opens the configured store with a PDF renderer and, when AMQP_URL is set,
// an event publisher.
func ConfigOpener(logger *slog.Logger) Opener {
	return func(ctx context.Context) (*portssvc.ServiceContainer, func(), error) {
		cfg, err := config.LoadConfig()
		if err != nil {
			return nil, nil, err
		}

		repos, err := repositories.NewRepositoryProvider(ctx, cfg, logger)
		if err != nil {
			return nil, nil, err
		}

		var publisher portssvc.EventPublisher = amqp.NoopPublisher{}
		if cfg.AMQPURL != "" {
			client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPRoutingKey, cfg.ShopID)
			if err != nil {
				logger.Warn("Failed to connect to AMQP broker, transaction events disabled", slog.String("error", err.Error()))
			} else {
				publisher = client
			}
		}

		release := func() {
			if err := publisher.Close(); err != nil {
				logger.Warn("Error closing event publisher", slog.String("error", err.Error()))
			}
			if repos.Close != nil {
				repos.Close()
			}
		}
		return services.NewServiceContainer(cfg, repos, publisher, pdf.NewRenderer()), release, nil
	}
}

var errConfirmationRequired = errors.New("refusing to delete every transaction without --yes")
