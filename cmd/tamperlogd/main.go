package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	tamperlog "github.com/jhilpatel06/TamperAware-IoT-Logger"
)

// version is overridden via -ldflags "-X main.version=...".
var version = "dev"

var cfgFile string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tamperlogd",
	Short: "Tamper-aware sensor logger",
	Long: `tamperlogd maintains a hash-chained log of sensor readings with a
trust anchor kept on a separate medium, so any after-the-fact edit of
the log file is detected and localized on verification.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.SetConfigName("tamperlogd")
			viper.SetConfigType("yaml")
			viper.AddConfigPath("/etc/tamperlogd")
			viper.AddConfigPath(".")
		}
		viper.SetEnvPrefix("tamperlog")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		viper.SetDefault("log.path", "data/sensor.log")
		viper.SetDefault("anchor.backend", "file")
		viper.SetDefault("anchor.path", "data/anchor/tip")
		viper.SetDefault("anchor.dsn", "data/anchor/anchor.db")
		viper.SetDefault("server.addr", ":8080")
		viper.SetDefault("sampler.enabled", true)
		viper.SetDefault("sampler.interval", "5s")
		viper.SetDefault("sensor.base", 20.0)
		viper.SetDefault("sensor.span", 5.0)
		viper.SetDefault("demo.attacks", false)

		_ = viper.ReadInConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default /etc/tamperlogd/tamperlogd.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(appendCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(tipCmd)
	rootCmd.AddCommand(recommitCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// openAnchor picks the anchor backend from configuration.
func openAnchor() (tamperlog.AnchorStore, func(), error) {
	switch backend := viper.GetString("anchor.backend"); backend {
	case "file":
		a, err := tamperlog.OpenFileAnchor(viper.GetString("anchor.path"))
		if err != nil {
			return nil, nil, fmt.Errorf("open anchor file: %w", err)
		}
		return a, func() {}, nil
	case "sqlite":
		a, err := tamperlog.OpenSQLiteAnchor(viper.GetString("anchor.dsn"))
		if err != nil {
			return nil, nil, fmt.Errorf("open anchor database: %w", err)
		}
		return a, func() { _ = a.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown anchor backend %q", backend)
	}
}

// openChain assembles the chain from the configured stores.
func openChain() (*tamperlog.Chain, string, func(), error) {
	logPath := viper.GetString("log.path")
	logStore, err := tamperlog.OpenFileLog(logPath)
	if err != nil {
		return nil, "", nil, fmt.Errorf("open log store: %w", err)
	}
	anchor, closeAnchor, err := openAnchor()
	if err != nil {
		_ = logStore.Close()
		return nil, "", nil, err
	}
	chain, err := tamperlog.NewChain(logStore, anchor)
	if err != nil {
		closeAnchor()
		_ = logStore.Close()
		return nil, "", nil, err
	}
	cleanup := func() {
		closeAnchor()
		_ = logStore.Close()
	}
	return chain, logPath, cleanup, nil
}

func newSensor() *tamperlog.SimulatedSensor {
	return tamperlog.NewSimulatedSensor(
		viper.GetFloat64("sensor.base"),
		viper.GetFloat64("sensor.span"),
	)
}

// ── serve ────────────────────────────────────────────────────────────────────

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server and background sampler",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer logger.Sync() //nolint:errcheck

		chain, logPath, cleanup, err := openChain()
		if err != nil {
			return err
		}
		defer cleanup()

		// Verify at boot: a device restart is exactly when offline
		// tampering would have happened.
		res, err := chain.Verify()
		if err != nil {
			return fmt.Errorf("boot verification: %w", err)
		}
		tamperlog.RecordVerification(res)
		if res.OK {
			logger.Info("boot verification passed",
				zap.Int("records", res.Length),
				zap.String("tip", string(res.Tip)))
		} else {
			logger.Error("boot verification FAILED, serving read-only evidence",
				zap.String("reason", string(res.Reason)),
				zap.Int("position", res.Position))
		}

		sensor := newSensor()
		var attacker *tamperlog.Attacker
		if viper.GetBool("demo.attacks") {
			attacker = &tamperlog.Attacker{LogPath: logPath}
			logger.Warn("demo attack endpoints enabled")
		}

		anchor, closeAnchor, err := openAnchor()
		if err != nil {
			return err
		}
		defer closeAnchor()

		srv := tamperlog.NewServer(chain, sensor, attacker, anchor, logger)

		httpSrv := &http.Server{
			Addr:              viper.GetString("server.addr"),
			Handler:           srv.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if viper.GetBool("sampler.enabled") {
			sampler := &tamperlog.Sampler{
				Chain:    chain,
				Sensor:   sensor,
				Interval: viper.GetDuration("sampler.interval"),
				Logger:   logger,
			}
			go sampler.Run(ctx)
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("http server listening", zap.String("addr", httpSrv.Addr))
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("http server: %w", err)
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	},
}

// ── console ──────────────────────────────────────────────────────────────────

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Run the interactive demo console",
	RunE: func(cmd *cobra.Command, args []string) error {
		chain, logPath, cleanup, err := openChain()
		if err != nil {
			return err
		}
		defer cleanup()

		var attacker *tamperlog.Attacker
		if viper.GetBool("demo.attacks") {
			attacker = &tamperlog.Attacker{LogPath: logPath}
		}

		console := &tamperlog.Console{
			Chain:    chain,
			Sensor:   newSensor(),
			Attacker: attacker,
			In:       os.Stdin,
			Out:      os.Stdout,
		}
		return console.Run()
	},
}

// ── one-shot commands ────────────────────────────────────────────────────────

var appendCmd = &cobra.Command{
	Use:   "append [timestamp value]",
	Short: "Commit one reading (samples the sensor when no args given)",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		chain, _, cleanup, err := openChain()
		if err != nil {
			return err
		}
		defer cleanup()

		var timestamp, value string
		if len(args) == 2 {
			timestamp, value = args[0], args[1]
		} else {
			timestamp, value, err = newSensor().Read()
			if err != nil {
				return err
			}
		}
		rec, err := chain.Append(timestamp, value)
		if err != nil {
			return err
		}
		tamperlog.RecordAppend()
		fmt.Printf("appended %s,%s\ntip %s\n", rec.Timestamp, rec.Value, rec.EntryHash)
		return nil
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Replay the chain and check it against the trust anchor",
	RunE: func(cmd *cobra.Command, args []string) error {
		chain, _, cleanup, err := openChain()
		if err != nil {
			return err
		}
		defer cleanup()

		res, err := chain.Verify()
		if err != nil {
			return err
		}
		tamperlog.RecordVerification(res)
		fmt.Println(res)
		if !res.OK {
			if res.Recoverable() {
				fmt.Println("anchor is one commit behind; run 'tamperlogd recommit' to recover")
				os.Exit(2)
			}
			os.Exit(1)
		}
		return nil
	},
}

var tipCmd = &cobra.Command{
	Use:   "tip",
	Short: "Print the current tip hash",
	RunE: func(cmd *cobra.Command, args []string) error {
		chain, _, cleanup, err := openChain()
		if err != nil {
			return err
		}
		defer cleanup()

		tip, err := chain.CurrentTip()
		if err != nil {
			return err
		}
		fmt.Println(tip)
		return nil
	},
}

var recommitCmd = &cobra.Command{
	Use:   "recommit",
	Short: "Re-point the trust anchor at a cleanly replaying chain",
	RunE: func(cmd *cobra.Command, args []string) error {
		chain, _, cleanup, err := openChain()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := chain.RecommitAnchor(); err != nil {
			return err
		}
		fmt.Println("anchor recommitted")
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard all history and start a fresh chain",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer logger.Sync() //nolint:errcheck

		chain, _, cleanup, err := openChain()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := chain.Reset(); err != nil {
			return err
		}
		tamperlog.RecordReset()
		// The chain cannot attest to its own erasure; this is the
		// out-of-band record of the reset.
		logger.Warn("chain reset: all history discarded")
		fmt.Println("chain reset")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}
