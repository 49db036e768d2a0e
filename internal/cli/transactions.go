package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
	portssvc "github.com/SscSPs/fruit_shop_app/internal/core/ports/services"
	"github.com/spf13/cobra"
)

// transactionFlags are shared by add and update.
type transactionFlags struct {
	txnType     string
	amount      string
	payment     string
	date        string
	description string
	fruit       string
	quantity    string
	price       string
}

func (f *transactionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.txnType, "type", "", "Transaction type: income or expense.")
	cmd.Flags().StringVar(&f.amount, "amount", "", "Amount, greater than zero.")
	cmd.Flags().StringVar(&f.payment, "payment", string(domain.Cash), "Payment method: cash or digital.")
	cmd.Flags().StringVar(&f.date, "date", "", "Calendar date (YYYY-MM-DD). Defaults to today.")
	cmd.Flags().StringVar(&f.description, "description", "", "Free text description.")
	cmd.Flags().StringVar(&f.fruit, "fruit", "", "Fruit or juice name.")
	cmd.Flags().StringVar(&f.quantity, "quantity", "", "Quantity sold or bought.")
	cmd.Flags().StringVar(&f.price, "price", "", "Price per unit.")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("amount")
}

func (f *transactionFlags) input(now time.Time) domain.TransactionInput {
	date := f.date
	if date == "" {
		date = now.Format(domain.DateLayout)
	}
	return domain.TransactionInput{
		Type:          strings.ToUpper(strings.TrimSpace(f.txnType)),
		Amount:        f.amount,
		Description:   f.description,
		FruitName:     f.fruit,
		Quantity:      f.quantity,
		PricePerUnit:  f.price,
		PaymentMethod: strings.ToUpper(strings.TrimSpace(f.payment)),
		Date:          date,
	}
}

func newAddCmd(a *app) *cobra.Command {
	var flags transactionFlags
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Record a transaction",
		Example: "  fruitshopctl add --type income --amount 120.50 --fruit Mango --quantity 12 --price 10",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.svc(cmd)
			if err != nil {
				return err
			}
			txn, err := svc.Transaction.AddTransaction(cmd.Context(), flags.input(time.Now()))
			if err != nil {
				return describeError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added transaction %s\n", txn.TransactionID)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newUpdateCmd(a *app) *cobra.Command {
	var flags transactionFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace every field of a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.svc(cmd)
			if err != nil {
				return err
			}
			txn, err := svc.Transaction.UpdateTransaction(cmd.Context(), args[0], flags.input(time.Now()))
			if err != nil {
				return describeError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated transaction %s\n", txn.TransactionID)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	var start, end string
	var sortByDate, desc bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions in the order they were added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := domain.ParseDateRange(start, end)
			if err != nil {
				return describeError(err)
			}
			svc, err := a.svc(cmd)
			if err != nil {
				return err
			}
			txns, err := svc.Transaction.ListTransactions(cmd.Context(), portssvc.ListTransactionsOptions{
				Range:      r,
				SortByDate: sortByDate,
				Descending: desc,
			})
			if err != nil {
				return err
			}
			return printTransactions(cmd.OutOrStdout(), txns)
		},
	}
	registerRangeFlags(cmd, &start, &end)
	cmd.Flags().BoolVar(&sortByDate, "sort-by-date", false, "Order by date instead of insertion order.")
	cmd.Flags().BoolVar(&desc, "desc", false, "With --sort-by-date, newest first.")
	return cmd
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.svc(cmd)
			if err != nil {
				return err
			}
			txn, err := svc.Transaction.GetTransactionByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printTransaction(cmd.OutOrStdout(), txn)
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.svc(cmd)
			if err != nil {
				return err
			}
			if err := svc.Transaction.DeleteTransaction(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted transaction %s\n", args[0])
			return nil
		},
	}
}

func newDeleteAllCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete-all",
		Short: "Delete every transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errConfirmationRequired
			}
			svc, err := a.svc(cmd)
			if err != nil {
				return err
			}
			n, err := svc.Transaction.DeleteAllTransactions(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d transactions\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the deletion.")
	return cmd
}

func registerRangeFlags(cmd *cobra.Command, start, end *string) {
	cmd.Flags().StringVar(start, "start", "", "Earliest date to include (YYYY-MM-DD).")
	cmd.Flags().StringVar(end, "end", "", "Latest date to include (YYYY-MM-DD).")
}
