package cli

import (
	"fmt"

	"blind_negotiation/internal/domain/entities"

	"github.com/spf13/cobra"
)

var finalizeActor string

var finalizeCmd = &cobra.Command{
	Use:   "finalize <negotiation-id>",
	Short: "Finalize an unlocked negotiation",
	Long: `Close a negotiation whose governance fees are both paid. Runs as the
platform administrator unless --actor names a participant.`,
	Args: cobra.ExactArgs(1),
	RunE: runFinalize,
}

func init() {
	finalizeCmd.Flags().StringVar(&finalizeActor, "actor", entities.SystemSenderID, "acting user")
}

func runFinalize(cmd *cobra.Command, args []string) error {
	update, err := negotiations.Finalize(cmd.Context(), args[0], finalizeActor)
	if err != nil {
		return fmt.Errorf("finalize negotiation: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Negotiation %s is %s (version %d)\n", update.NegotiationID, update.Status, update.Version)
	return nil
}
