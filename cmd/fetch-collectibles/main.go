package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/feral-file/ff-collectibles/internal/adapter"
	"github.com/feral-file/ff-collectibles/internal/collectibles"
	"github.com/feral-file/ff-collectibles/internal/config"
	"github.com/feral-file/ff-collectibles/internal/domain"
	"github.com/feral-file/ff-collectibles/internal/logger"
	"github.com/feral-file/ff-collectibles/internal/types"
)

var (
	wallets    []string
	configFile string
	envPath    string
	canonical  bool
)

var rootCmd = &cobra.Command{
	Use:   "fetch-collectibles",
	Short: "Run one fetch cycle and print the reconciled collectibles",
	Long: `Fetch the holdings, creations and transfers of every wallet, reconcile them
into one collectible per asset and print the resulting state as JSON on stdout.

Examples:
  fetch-collectibles --wallet 0xabc... --wallet 0xdef...

  # RFC 8785 canonical output, stable across runs with the same data
  fetch-collectibles --wallet 0xabc... --canonical`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringArrayVar(&wallets, "wallet", nil, "Wallet address to fetch, repeatable")
	rootCmd.Flags().StringVar(&configFile, "config", "", "Path to configuration file")
	rootCmd.Flags().StringVar(&envPath, "env", "config/", "Path to environment files")
	rootCmd.Flags().BoolVar(&canonical, "canonical", false, "Print RFC 8785 canonical JSON")
	_ = rootCmd.MarkFlagRequired("wallet")
}

func run(cmd *cobra.Command, _ []string) error {
	for _, wallet := range wallets {
		if !types.IsEthereumAddress(wallet) {
			return fmt.Errorf("%w: %s", domain.ErrInvalidWallet, wallet)
		}
	}

	config.ChdirRepoRoot()
	cfg, err := config.LoadCLIConfig(configFile, envPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Logs go to stderr, stdout only carries the result
	if err := logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		Service:   "fetch-collectibles",
		SentryDSN: cfg.SentryDSN,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Flush(2 * time.Second)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runtime, err := collectibles.NewRuntime(ctx, cfg.CollectiblesConfig)
	if err != nil {
		return err
	}
	defer runtime.Close()

	state, err := runtime.Service.GetAllCollectibles(ctx, wallets)
	if err != nil {
		return err
	}

	return write(cmd, adapter.NewJSON(), state)
}

func write(cmd *cobra.Command, json adapter.JSON, state domain.CollectibleState) error {
	var (
		out []byte
		err error
	)
	if canonical {
		out, err = json.MarshalCanonical(state)
	} else {
		out, err = json.Marshal(state)
	}
	if err != nil {
		return fmt.Errorf("failed to encode collectibles: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error(err, zap.Strings("wallets", wallets))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
