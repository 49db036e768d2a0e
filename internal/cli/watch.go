package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/fruit_shop_app/internal/adapters/amqp"
	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
	"github.com/SscSPs/fruit_shop_app/internal/platform/config"
	"github.com/SscSPs/fruit_shop_app/internal/utils"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print transaction change events from the message broker",
		Long:  "watch consumes the queue bound to AMQP_ROUTING_KEY and prints one line per event until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if cfg.AMQPURL == "" {
				return errors.New("AMQP_URL is not set")
			}

			client, err := amqp.NewClientWithRetry(cmd.Context(), 3, cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPRoutingKey, cfg.ShopID)
			if err != nil {
				return err
			}
			defer client.Close()

			out := cmd.OutOrStdout()
			err = client.Consume(cmd.Context(), func(msg *amqp.TransactionEventMessage) error {
				_, err := fmt.Fprintln(out, formatEvent(msg))
				return err
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}

func formatEvent(msg *amqp.TransactionEventMessage) string {
	ts := msg.Timestamp.Format("2006-01-02 15:04:05")
	switch msg.Action {
	case domain.ActionDeletedAll:
		return fmt.Sprintf("%s  %s  %d transactions", ts, msg.Action, msg.DeletedCount)
	case domain.ActionDeleted:
		return fmt.Sprintf("%s  %s  %s", ts, msg.Action, msg.TransactionID)
	}
	if t := msg.Transaction; t != nil {
		return fmt.Sprintf("%s  %s  %s  %s %s %s (%s)",
			ts, msg.Action, msg.TransactionID,
			t.Date.Format(domain.DateLayout), t.Type, utils.FormatCurrency(t.Amount), t.PaymentMethod)
	}
	return fmt.Sprintf("%s  %s  %s", ts, msg.Action, msg.TransactionID)
}
