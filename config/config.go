package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// defaultHeaders are the address-bearing header fields scanned when no
// --header flag is given.
var defaultHeaders = []string{"From", "To", "Cc", "Return-Path", "Delivered-To"}

// ScanConfig captures all command-line options required to run a scan.
type ScanConfig struct {
	MboxPath      string
	Headers       []string
	ReportDir     string
	TopN          int
	IncludeDomain []string
	ExcludeDomain []string
}

// RegisterScanFlags attaches the scan flags to the provided command.
func RegisterScanFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringArray("header", nil, "Address-bearing header fields to validate (default: From, To, Cc, Return-Path, Delivered-To)")
	flags.StringP("output", "o", "", "Output directory for CSV reports (no reports when empty)")
	flags.IntP("top", "t", 10, "Number of top domains to display in statistics")
	flags.StringArray("include-domain", nil, "Regex allow-list applied to address domains (mutually exclusive with --exclude-domain)")
	flags.StringArray("exclude-domain", nil, "Regex block-list applied to address domains (mutually exclusive with --include-domain)")
}

// LoadScanConfig converts the parsed Cobra flags into a ScanConfig with
// validation. args holds the positional arguments, args[0] being the mbox
// path.
func LoadScanConfig(cmd *cobra.Command, args []string) (ScanConfig, error) {
	flags := cmd.Flags()

	headers, err := flags.GetStringArray("header")
	if err != nil {
		return ScanConfig{}, err
	}
	reportDir, err := flags.GetString("output")
	if err != nil {
		return ScanConfig{}, err
	}
	topN, err := flags.GetInt("top")
	if err != nil {
		return ScanConfig{}, err
	}
	includeDomain, err := flags.GetStringArray("include-domain")
	if err != nil {
		return ScanConfig{}, err
	}
	excludeDomain, err := flags.GetStringArray("exclude-domain")
	if err != nil {
		return ScanConfig{}, err
	}

	if len(headers) == 0 {
		headers = defaultHeaders
	}

	cfg := ScanConfig{
		MboxPath:      strings.TrimSpace(args[0]),
		Headers:       headers,
		ReportDir:     reportDir,
		TopN:          topN,
		IncludeDomain: includeDomain,
		ExcludeDomain: excludeDomain,
	}

	if err := validateScanConfig(cfg); err != nil {
		return ScanConfig{}, err
	}

	return cfg, nil
}

func validateScanConfig(cfg ScanConfig) error {
	if cfg.MboxPath == "" {
		return fmt.Errorf("mbox path is required")
	}
	if cfg.TopN <= 0 {
		return fmt.Errorf("--top must be positive")
	}
	for _, h := range cfg.Headers {
		if strings.TrimSpace(h) == "" {
			return fmt.Errorf("--header must not be empty")
		}
	}
	if len(cfg.IncludeDomain) > 0 && len(cfg.ExcludeDomain) > 0 {
		return fmt.Errorf("include and exclude flags are mutually exclusive")
	}
	return nil
}
