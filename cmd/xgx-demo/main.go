// Package main is the entry point for the xgx-demo binary. It prints what a
// caller observes for singleton identity across serialization and for
// failures raised by a resource's release step.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xgx-io/xgx-scope/internal/config"
	"github.com/xgx-io/xgx-scope/internal/demo"
	"github.com/xgx-io/xgx-scope/internal/logging"
	"github.com/xgx-io/xgx-scope/singleton"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd creates the root command. Observations go to out, logs to logw.
func newRootCmd(out, logw io.Writer) *cobra.Command {
	v := config.New()

	rootCmd := &cobra.Command{
		Use:           "xgx-demo",
		Short:         "Observe singleton identity and suppressed release failures",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file (YAML)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")
	_ = v.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(newSingletonCmd(v, out, logw), newSuppressCmd(v, out, logw))
	return rootCmd
}

func newSingletonCmd(v *viper.Viper, out, logw io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "singleton",
		Short: "Round-trip the canonical and the naive marker through a codec",
		Long: `Serializes the process-wide Marker and NaiveMarker and decodes them back,
reporting whether each decoded value is the identical instance.

Example:
  xgx-demo singleton --codec yaml --rounds 5 --dir /tmp`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup(cmd, v, logw)
			if err != nil {
				return err
			}
			codec, err := singleton.CodecByName(cfg.Codec)
			if err != nil {
				return err
			}
			log.Debug("round trip starting", "codec", codec.Name(), "rounds", cfg.Rounds, "dir", cfg.Dir)

			obs, err := demo.Identity(codec, cfg.Rounds, cfg.Dir)
			if err != nil {
				log.Error("round trip failed", logging.Err(err))
				return err
			}
			for _, o := range obs {
				log.Info("round trip",
					"type", o.Type,
					"round", o.Round,
					"codec", o.Codec,
					"identical", o.Identical,
				)
				fmt.Fprintf(out, "%-12s round=%d codec=%s identical=%t original=%s decoded=%s\n",
					o.Type, o.Round, o.Codec, o.Identical, o.Original, o.Decoded)
			}
			return nil
		},
	}
	cmd.Flags().String("codec", "json", "Codec ("+strings.Join(singleton.CodecNames(), ", ")+")")
	cmd.Flags().IntP("rounds", "n", 3, "Number of independent round trips")
	cmd.Flags().String("dir", "", "Directory for file-backed round trips (empty: in memory)")
	_ = v.BindPFlag(config.KeyCodec, cmd.Flags().Lookup("codec"))
	_ = v.BindPFlag(config.KeyRounds, cmd.Flags().Lookup("rounds"))
	_ = v.BindPFlag(config.KeyDir, cmd.Flags().Lookup("dir"))
	return cmd
}

func newSuppressCmd(v *viper.Viper, out, logw io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suppress",
		Short: "Show which failure propagates when a release step fails",
		Long: `Runs a resource whose work step and release step fail in every combination
and prints the propagated failure and its suppressed failures.

With --naive the release step runs in a plain deferred assignment, which
overwrites the work failure.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, log, err := setup(cmd, v, logw)
			if err != nil {
				return err
			}
			naive, err := cmd.Flags().GetBool("naive")
			if err != nil {
				return fmt.Errorf("failed to get naive flag: %w", err)
			}
			for _, o := range demo.Suppression(naive) {
				log.Info("scenario",
					"case", o.Case,
					"naive", naive,
					"failed", o.Failed,
					"message", o.Message,
					"suppressed", o.Suppressed,
					"closes", o.Closes,
				)
				if !o.Failed {
					fmt.Fprintf(out, "%-26s -> no failure\n", o.Case)
					continue
				}
				fmt.Fprintf(out, "%-26s -> %q suppressed=%q\n", o.Case, o.Message, o.Suppressed)
			}
			return nil
		},
	}
	cmd.Flags().Bool("naive", false, "Use the overwriting cleanup instead of xgxscope.Use")
	return cmd
}

// setup loads the configuration and builds the logger for a command.
func setup(cmd *cobra.Command, v *viper.Viper, logw io.Writer) (config.Config, *slog.Logger, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Load(v, path)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logging.New(cfg.LogLevel, cfg.LogFormat, logw), nil
}
