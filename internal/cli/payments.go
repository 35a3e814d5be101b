package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var paymentsCmd = &cobra.Command{
	Use:   "payments <negotiation-id>",
	Short: "List the governance fee payments of a negotiation",
	Args:  cobra.ExactArgs(1),
	RunE:  runPayments,
}

func runPayments(cmd *cobra.Command, args []string) error {
	list, err := payments.ListByNegotiationID(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("list payments: %w", err)
	}

	w := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(w, "No payments found.")
		return nil
	}
	for _, p := range list {
		fmt.Fprintf(w, "- %s %s %s %s %s [%s]\n", p.ID, p.Role, p.Amount.StringFixed(2), p.Currency, p.Date.Format("2006-01-02T15:04:05Z07:00"), p.Status)
		if verbose {
			fmt.Fprintf(w, "  payer: %s\n", p.PayerID)
		}
	}
	return nil
}
