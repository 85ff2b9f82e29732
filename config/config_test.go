package config

import (
	"testing"

	"github.com/spf13/cobra"
)

func scanCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "scan"}
	RegisterScanFlags(cmd)
	return cmd
}

func TestLoadScanConfig_Defaults(t *testing.T) {
	cmd := scanCommand()

	cfg, err := LoadScanConfig(cmd, []string{"archive.mbox"})
	if err != nil {
		t.Fatalf("LoadScanConfig() error = %v", err)
	}

	if cfg.MboxPath != "archive.mbox" {
		t.Errorf("MboxPath = %q, want archive.mbox", cfg.MboxPath)
	}
	if cfg.TopN != 10 {
		t.Errorf("TopN = %d, want 10", cfg.TopN)
	}
	if len(cfg.Headers) == 0 {
		t.Error("Headers should default to the address-bearing fields")
	}
}

func TestLoadScanConfig_Flags(t *testing.T) {
	cmd := scanCommand()
	if err := cmd.Flags().Parse([]string{
		"--header", "From",
		"--top", "3",
		"--exclude-domain", `spam`,
		"--output", "reports",
	}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	cfg, err := LoadScanConfig(cmd, []string{"archive.mbox"})
	if err != nil {
		t.Fatalf("LoadScanConfig() error = %v", err)
	}

	if len(cfg.Headers) != 1 || cfg.Headers[0] != "From" {
		t.Errorf("Headers = %v, want [From]", cfg.Headers)
	}
	if cfg.TopN != 3 {
		t.Errorf("TopN = %d, want 3", cfg.TopN)
	}
	if cfg.ReportDir != "reports" {
		t.Errorf("ReportDir = %q, want reports", cfg.ReportDir)
	}
}

func TestLoadScanConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		path string
	}{
		{"empty mbox path", nil, "  "},
		{"negative top", []string{"--top", "-1"}, "archive.mbox"},
		{"include and exclude", []string{"--include-domain", "a", "--exclude-domain", "b"}, "archive.mbox"},
		{"empty header", []string{"--header", " "}, "archive.mbox"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := scanCommand()
			if err := cmd.Flags().Parse(tt.args); err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if _, err := LoadScanConfig(cmd, []string{tt.path}); err == nil {
				t.Error("LoadScanConfig() succeeded, want error")
			}
		})
	}
}
