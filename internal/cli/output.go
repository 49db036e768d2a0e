package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/SscSPs/fruit_shop_app/internal/apperrors"
	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
	"github.com/SscSPs/fruit_shop_app/internal/utils"
)

func printTransactions(w io.Writer, txns []domain.Transaction) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tTYPE\tAMOUNT\tPAYMENT\tDESCRIPTION")
	for _, t := range txns {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.TransactionID,
			t.Date.Format(domain.DateLayout),
			t.Type,
			utils.FormatAmount(t.Amount),
			t.PaymentMethod,
			t.DisplayDescription())
	}
	return tw.Flush()
}

func printTransaction(w io.Writer, t *domain.Transaction) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", t.TransactionID)
	fmt.Fprintf(tw, "Date:\t%s\n", t.Date.Format(domain.DateLayout))
	fmt.Fprintf(tw, "Type:\t%s\n", t.Type)
	fmt.Fprintf(tw, "Amount:\t%s\n", utils.FormatCurrency(t.Amount))
	fmt.Fprintf(tw, "Payment:\t%s\n", t.PaymentMethod)
	fmt.Fprintf(tw, "Description:\t%s\n", t.Description)
	fmt.Fprintf(tw, "Fruit:\t%s\n", t.FruitName)
	fmt.Fprintf(tw, "Quantity:\t%s\n", utils.FormatOptionalNumber(t.Quantity))
	fmt.Fprintf(tw, "Price/Unit:\t%s\n", utils.FormatOptionalNumber(t.PricePerUnit))
	return tw.Flush()
}

func printSummary(w io.Writer, res *domain.AnalyticsResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Total Income:\t%s\n", utils.FormatCurrency(res.TotalIncome))
	fmt.Fprintf(tw, "Total Expenses:\t%s\n", utils.FormatCurrency(res.TotalExpenses))
	fmt.Fprintf(tw, "Net Profit:\t%s\n", utils.FormatCurrency(res.NetProfit))
	fmt.Fprintf(tw, "Cash Income:\t%s\n", utils.FormatCurrency(res.CashIncome))
	fmt.Fprintf(tw, "Digital Income:\t%s\n", utils.FormatCurrency(res.DigitalIncome))
	fmt.Fprintf(tw, "Transactions:\t%d\n", res.TransactionCount)
	fmt.Fprintf(tw, "Days:\t%d\n", res.TotalDays)
	fmt.Fprintf(tw, "Avg Daily Income:\t%s\n", utils.FormatCurrency(res.AvgDailyIncome))
	fmt.Fprintf(tw, "Avg Daily Expense:\t%s\n", utils.FormatCurrency(res.AvgDailyExpense))
	fmt.Fprintf(tw, "Avg Daily Profit:\t%s\n", utils.FormatCurrency(res.AvgDailyProfit))
	return tw.Flush()
}

// describeError flattens validation failures into one line per field.
func describeError(err error) error {
	if ve, ok := apperrors.AsValidationError(err); ok {
		return fmt.Errorf("invalid transaction:\n  %s", strings.Join(ve.Messages(), "\n  "))
	}
	return err
}
