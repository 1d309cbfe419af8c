package main

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/dan13ram/auction-client/app"
	"github.com/dan13ram/auction-client/auction"
	"github.com/dan13ram/auction-client/eth"
	"github.com/dan13ram/auction-client/eth/client"
	"github.com/dan13ram/auction-client/models"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"
)

const cliName = "auction-client"

var (
	configPath   string
	envPath      string
	account      string
	printMetrics bool
)

var rootCmd = &cobra.Command{
	Use:   cliName,
	Short: "auction-client follows and drives an on-chain English auction",
	Long: `auction-client connects to an auction contract through a local wallet.

It reads the auction's beneficiary, end time, highest bid, contract balance and
the refund owed to the selected account, and submits bids, withdrawals and the
end of the auction on behalf of that account.`,
	SilenceUsage: true,
	PersistentPreRun: func(c *cobra.Command, args []string) {
		var absConfigPath, absEnvPath string
		if configPath != "" {
			absConfigPath, _ = filepath.Abs(configPath)
		}
		if envPath != "" {
			absEnvPath, _ = filepath.Abs(envPath)
		}
		app.InitConfig(absConfigPath, absEnvPath)
		app.InitLogger()
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Read every auction field and print the snapshot",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		return withSession(c.Context(), func(ctx context.Context, s *session) error {
			snapshot, err := s.synchronizer.RefreshAll(ctx)
			printSnapshot(os.Stdout, snapshot, s.synchronizer.IsBeneficiary())
			return err
		})
	},
}

var refreshCmd = &cobra.Command{
	Use:       "refresh <field>",
	Short:     "Read one auction field",
	ValidArgs: fieldNames(),
	Args:      cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		field, ok := models.ParseField(args[0])
		if !ok {
			return fmt.Errorf("unknown field %q, expected one of %v", args[0], fieldNames())
		}
		return withSession(c.Context(), func(ctx context.Context, s *session) error {
			snapshot, err := s.synchronizer.Refresh(ctx, field)
			printSnapshot(os.Stdout, snapshot, s.synchronizer.IsBeneficiary())
			return err
		})
	},
}

var bidCmd = &cobra.Command{
	Use:   "bid <amount-wei>",
	Short: "Bid the given amount of wei from the selected account",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		amount, ok := new(big.Int).SetString(args[0], 10)
		if !ok || amount.Sign() <= 0 {
			return fmt.Errorf("invalid bid amount %q", args[0])
		}
		return withSession(c.Context(), func(ctx context.Context, s *session) error {
			snapshot, err := s.synchronizer.PlaceBid(ctx, amount)
			printSnapshot(os.Stdout, snapshot, s.synchronizer.IsBeneficiary())
			return err
		})
	},
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Withdraw the refund owed to the selected account",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		return withSession(c.Context(), func(ctx context.Context, s *session) error {
			snapshot, err := s.synchronizer.Withdraw(ctx)
			printSnapshot(os.Stdout, snapshot, s.synchronizer.IsBeneficiary())
			return err
		})
	},
}

var endCmd = &cobra.Command{
	Use:   "end",
	Short: "End the auction from the selected account",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		return withSession(c.Context(), func(ctx context.Context, s *session) error {
			if !s.synchronizer.IsBeneficiary() {
				log.Warnln("[RUNNER]", "Selected account is not the beneficiary, the contract will likely reject this")
			}
			snapshot, err := s.synchronizer.EndAuction(ctx)
			printSnapshot(os.Stdout, snapshot, s.synchronizer.IsBeneficiary())
			return err
		})
	},
}

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List the accounts held by the wallet, selected first",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		wallet, err := newWallet(c.Context())
		if err != nil {
			return err
		}
		defer wallet.Close()

		accounts, err := wallet.GetAccounts(c.Context())
		if err != nil {
			return err
		}
		printAccounts(os.Stdout, accounts)
		return nil
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stay connected, refresh periodically and follow account changes",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		return watch(c.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the yaml config file")
	rootCmd.PersistentFlags().StringVarP(&envPath, "env", "e", "", "path to an env file with overrides")
	rootCmd.PersistentFlags().StringVarP(&account, "account", "a", "", "account to act as, defaults to the wallet's first")
	rootCmd.PersistentFlags().BoolVar(&printMetrics, "print-metrics", false, "print client metrics before exiting")

	rootCmd.AddCommand(statusCmd, refreshCmd, bidCmd, withdrawCmd, endCmd, accountsCmd, watchCmd)
}

func fieldNames() []string {
	names := make([]string, 0, len(models.Fields))
	for _, f := range models.Fields {
		names = append(names, string(f))
	}
	return names
}

type session struct {
	wallet       *eth.Wallet
	synchronizer *auction.Synchronizer
}

func newWallet(ctx context.Context) (*eth.Wallet, error) {
	timeout := time.Duration(app.Config.Ethereum.RPCTimeoutMillis) * time.Millisecond
	ethClient, err := client.NewClient(ctx, app.Config.Ethereum.RPCURL, timeout)
	if err != nil {
		return nil, err
	}
	if app.Config.Ethereum.ChainID != "" {
		if err := ethClient.ValidateNetwork(ctx, app.Config.Ethereum.ChainID); err != nil {
			ethClient.Close()
			return nil, err
		}
	}

	signers, err := app.CreateSigners()
	if err != nil {
		ethClient.Close()
		return nil, err
	}

	wallet, err := eth.NewWallet(ethClient, signers)
	if err != nil {
		ethClient.Close()
		return nil, err
	}

	if account != "" {
		if !ethcommon.IsHexAddress(account) {
			wallet.Close()
			return nil, fmt.Errorf("invalid account %q", account)
		}
		if err := wallet.SelectAccount(ethcommon.HexToAddress(account)); err != nil {
			wallet.Close()
			return nil, err
		}
	}
	return wallet, nil
}

func newRegistry() (client.DeploymentRegistry, error) {
	var registries client.CombinedRegistry
	if len(app.Config.Auction.Deployments) > 0 {
		static, err := client.NewStaticRegistry(app.Config.Auction.Deployments)
		if err != nil {
			return nil, err
		}
		registries = append(registries, static)
	}
	if app.Config.Auction.ArtifactPath != "" {
		artifact, err := client.LoadArtifactRegistry(app.Config.Auction.ArtifactPath)
		if err != nil {
			return nil, err
		}
		registries = append(registries, artifact)
	}
	return registries, nil
}

func newSession(ctx context.Context) (*session, error) {
	registry, err := newRegistry()
	if err != nil {
		return nil, err
	}

	wallet, err := newWallet(ctx)
	if err != nil {
		return nil, err
	}

	actionTimeout := time.Duration(app.Config.Auction.ActionTimeoutMillis) * time.Millisecond
	synchronizer := auction.NewSynchronizer(wallet, registry, eth.NewGatewayForDeployment, actionTimeout, auction.NewMetrics())

	if _, err := synchronizer.Connect(ctx); err != nil && synchronizer.State() != models.StateConnected {
		wallet.Close()
		return nil, err
	} else if err != nil {
		log.WithError(err).Warnln("[RUNNER]", "Connected with unreadable fields")
	}
	return &session{wallet: wallet, synchronizer: synchronizer}, nil
}

func (s *session) Close() {
	if printMetrics {
		if err := s.synchronizer.Metrics().WriteText(os.Stdout); err != nil {
			log.WithError(err).Warnln("[RUNNER]", "Failed to print metrics")
		}
	}
	s.synchronizer.Disconnect()
	s.wallet.Close()
}

func withSession(ctx context.Context, run func(ctx context.Context, s *session) error) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s, err := newSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	err = run(ctx, s)
	if record, ok := s.synchronizer.Errors().Current(); ok {
		printError(os.Stderr, record)
	}
	return err
}

func watch(ctx context.Context) error {
	s, err := newSession(ctx)
	if err != nil {
		return err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	services, err := CreateServices(&wg, s.synchronizer)
	if err != nil {
		s.Close()
		return err
	}
	for _, service := range services {
		go service.Start()
	}

	watchDone := make(chan error, 1)
	go func() {
		watchDone <- s.synchronizer.Watch(watchCtx)
	}()

	// Gracefully shut down
	gracefulStop := make(chan os.Signal, 1)
	signal.Notify(gracefulStop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-gracefulStop:
		log.Debug("[RUNNER] Got signal: ", sig)
	case err := <-watchDone:
		log.WithError(err).Info("[RUNNER] Wallet stopped reporting accounts")
	}

	log.Debug("[RUNNER] Stopping services")
	for _, service := range services {
		service.Stop()
	}
	wg.Wait()
	cancel()
	s.Close()
	log.Info("[RUNNER] Stopped")
	return nil
}

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
