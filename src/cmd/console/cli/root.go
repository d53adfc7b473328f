// Package cli implements the bank-console command-line interface using Cobra.
package cli

import (
	"fmt"

	"github.com/api-sage/bank-account-console/src/internal/adapter/console"
	"github.com/api-sage/bank-account-console/src/internal/adapter/repository/memory"
	"github.com/api-sage/bank-account-console/src/internal/config"
	"github.com/api-sage/bank-account-console/src/internal/logger"
	"github.com/api-sage/bank-account-console/src/internal/usecase/services"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. The root command takes no flags and
// runs one interactive session on the command's input and output.
func NewRootCmd() *cobra.Command {
	var cfg config.Config

	root := &cobra.Command{
		Use:   "bank-console",
		Short: "Single-account bank console",
		Long: `bank-console asks for one account's details and then offers a menu to
deposit, withdraw or display the account until you choose Exit.
Nothing is saved between runs.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			closeLog, err := setupLogging(cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			service := services.NewAccountService(memory.NewAccountRepository())
			session := console.NewSession(service, cmd.InOrStdin(), cmd.OutOrStdout())
			return session.Run(cmd.Context())
		},
	}

	root.AddCommand(newServeCmd(&cfg))
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// setupLogging points the logger at the configured output. The returned
// func restores the default and releases the output.
func setupLogging(cfg config.Config) (func(), error) {
	w, closeFn, err := cfg.OpenLogOutput()
	if err != nil {
		return nil, err
	}
	logger.SetOutput(w)

	return func() {
		logger.SetOutput(nil)
		_ = closeFn()
	}, nil
}
