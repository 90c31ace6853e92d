package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/JOJOyh/goblebeacon/pkg/goblebeacon"
)

var (
	rootCmd = &cobra.Command{
		Use:   "beacon-analyze [hex]",
		Short: "Decode BLE proximity-beacon advertisements",
		Long:  "beacon-analyze decodes BLE proximity-beacon advertising payloads using the goblebeacon library.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := goblebeacon.AnalyzeOptions{
				ManufacturerDataOnly: mdOnly,
				MeasuredRSSI:         measuredRSSI,
			}
			ctx := cmd.Context()
			if len(args) == 0 {
				return runInteractive(ctx, opts)
			}
			return runAnalyze(ctx, opts, args[0])
		},
	}

	mdOnly       bool
	measuredRSSI float64
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&mdOnly, "md", false, "input is an already-isolated manufacturer-specific data block")
	rootCmd.PersistentFlags().Float64Var(&measuredRSSI, "rssi", 0, "measured RSSI in dBm for distance estimation (e.g. -65)")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

func runInteractive(ctx context.Context, opts goblebeacon.AnalyzeOptions) error {
	scanner := bufio.NewScanner(os.Stdin)
	logrus.Info("goblebeacon analyze mode. Paste a hex payload and press Enter (Ctrl+D to exit).")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := runAnalyze(ctx, opts, line); err != nil {
			logrus.WithError(err).Error("failed to decode payload")
		}
	}
	return scanner.Err()
}

func runAnalyze(ctx context.Context, opts goblebeacon.AnalyzeOptions, hex string) error {
	result, err := goblebeacon.AnalyzeHexWithOptions(ctx, hex, opts)
	if err != nil {
		return err
	}
	fmt.Println(result.String())
	return nil
}
