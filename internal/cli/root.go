// Package cli provides the negotiationctl administration commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"blind_negotiation/internal/config"
	"blind_negotiation/internal/container"
	"blind_negotiation/internal/usecase"

	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose bool

	cfg          config.Config
	negotiations usecase.INegotiationUseCase
	payments     usecase.IGovernancePaymentUseCase
	closeFn      func() error

	// newServices builds the use cases the commands talk to.
	newServices = func(ctx context.Context, cfg config.Config) (usecase.INegotiationUseCase, usecase.IGovernancePaymentUseCase, func() error, error) {
		c, err := container.New(ctx, cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		return c.Negotiations, c.Payments, c.Close, nil
	}
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "negotiationctl",
	Short: "Administer blind negotiations",
	Long: `negotiationctl inspects negotiations and acts as the platform administrator
against the configured store (NEGOTIATION_STORE, NEGOTIATIONS_TABLE, ...).`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg = config.Load()
		var err error
		negotiations, payments, closeFn, err = newServices(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("init services: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if closeFn != nil {
			if err := closeFn(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close services: %v\n", err)
			}
			closeFn = nil
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(finalizeCmd)
	rootCmd.AddCommand(paymentsCmd)
}
