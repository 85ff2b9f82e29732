package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/mheijink/brief/config"
	"github.com/mheijink/brief/filter"
	"github.com/mheijink/brief/mbox"
	"github.com/mheijink/brief/progress"
	"github.com/mheijink/brief/stats"
)

var scanCmd = &cobra.Command{
	Use:   "scan [mbox file]",
	Short: "Validate the address headers of every message in an mbox file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadScanConfig(cmd, args)
		if err != nil {
			return err
		}

		logger, cleanup, err := setupLogger()
		if err != nil {
			return err
		}
		defer func() {
			_ = cleanup()
		}()
		slog.SetDefault(logger)
		logger.Debug("starting scan", "mbox", cfg.MboxPath, "headers", cfg.Headers)

		f, err := filter.New(filter.Options{
			IncludeDomain: cfg.IncludeDomain,
			ExcludeDomain: cfg.ExcludeDomain,
		})
		if err != nil {
			return fmt.Errorf("create filter: %w", err)
		}

		total, err := mbox.CountMessages(cfg.MboxPath)
		if err != nil {
			return fmt.Errorf("count messages: %w", err)
		}

		bar := progress.New(total, logLevel)
		collector := stats.NewCollector()
		started := time.Now()

		err = mbox.Scan(cfg.MboxPath, cfg.Headers, func(r mbox.Result) error {
			collector.AddMessage()
			bar.Increment(r.MessageID)

			for _, finding := range r.Findings {
				if !f.Allows(finding.Domain) {
					collector.AddFiltered()
					continue
				}
				collector.Add(finding)

				if !finding.Valid() {
					logger.Debug("invalid address",
						"messageID", finding.MessageID,
						"header", finding.Header,
						"value", finding.Raw,
						"err", finding.Err)
				}
			}
			return nil
		})
		bar.Stop()
		if err != nil {
			return fmt.Errorf("scan mbox: %w", err)
		}

		summary := collector.Snapshot()
		progress.PrintSummary(summary, cfg.TopN, time.Since(started))
		logger.Debug("scan finished", summary.LogAttrs()...)

		if cfg.ReportDir != "" {
			if err := stats.SaveCSVReports(cfg.ReportDir, summary, 1000); err != nil {
				return fmt.Errorf("save CSV reports: %w", err)
			}
			fmt.Printf("\nReports saved to directory: %s\n", cfg.ReportDir)
		}

		if summary.Invalid > 0 {
			return fmt.Errorf("%d invalid addresses found", summary.Invalid)
		}
		return nil
	},
}

func init() {
	config.RegisterScanFlags(scanCmd)
	rootCmd.AddCommand(scanCmd)
}
