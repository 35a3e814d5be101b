package cli

import (
	"encoding/json"
	"fmt"

	"blind_negotiation/internal/adapter/http/dto/response"

	"github.com/spf13/cobra"
)

var getViewer string

var getCmd = &cobra.Command{
	Use:   "get <negotiation-id>",
	Short: "Show a negotiation as one participant sees it",
	Long: `Show a negotiation through the identity policy of the given viewer.

Examples:
  negotiationctl get 3f2a... --viewer buyer-0001`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().StringVar(&getViewer, "viewer", "", "participant id to view as (required)")
	_ = getCmd.MarkFlagRequired("viewer")
}

func runGet(cmd *cobra.Command, args []string) error {
	view, err := negotiations.Get(cmd.Context(), args[0], getViewer)
	if err != nil {
		return fmt.Errorf("get negotiation: %w", err)
	}

	out, err := json.MarshalIndent(response.FromNegotiationView(view), "", "  ")
	if err != nil {
		return fmt.Errorf("encode negotiation: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
