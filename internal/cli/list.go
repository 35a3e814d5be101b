package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listUser string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List a user's negotiations, newest first",
	Long: `List every negotiation a user takes part in.

Examples:
  negotiationctl list --user seller-0002
  negotiationctl list --user seller-0002 -v`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listUser, "user", "u", "", "participant id (required)")
	_ = listCmd.MarkFlagRequired("user")
}

func runList(cmd *cobra.Command, args []string) error {
	views, err := negotiations.ListForUser(cmd.Context(), listUser)
	if err != nil {
		return fmt.Errorf("list negotiations: %w", err)
	}

	w := cmd.OutOrStdout()
	if len(views) == 0 {
		fmt.Fprintln(w, "No negotiations found.")
		return nil
	}

	fmt.Fprintf(w, "Negotiations (%d):\n\n", len(views))
	for _, v := range views {
		fmt.Fprintf(w, "- %s [%s] %s offer=%s with %s\n",
			v.ID, v.Status, v.ViewerRole, v.CurrentOffer.StringFixed(2), v.Counterpart.DisplayName)
		if verbose {
			fmt.Fprintf(w, "  %s %s, %d quote(s), %s\n", v.EntityType, v.EntityID, v.Stats.Rounds, v.Stats.GovernanceStatus)
		}
	}
	return nil
}
