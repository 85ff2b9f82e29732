package progress

import (
	"sort"
	"sync"
	"time"

	"github.com/pterm/pterm"

	"github.com/mheijink/brief/stats"
)

// Bar manages a progress bar for tracking scanned messages.
type Bar struct {
	pb      *pterm.ProgressbarPrinter
	total   int
	mu      sync.Mutex
	enabled bool
}

// New creates a new progress bar if logLevel is "info".
func New(total int, logLevel string) *Bar {
	enabled := logLevel == "info"

	bar := &Bar{
		total:   total,
		enabled: enabled,
	}

	if enabled {
		pb, _ := pterm.DefaultProgressbar.
			WithTotal(total).
			WithTitle("Scanning messages").
			Start()
		bar.pb = pb

		pterm.Info.Printf("Total messages in mbox: %d\n", total)
		pterm.Println()
	}

	return bar
}

// Increment advances the bar by one message.
func (b *Bar) Increment(messageID string) {
	if !b.enabled || b.pb == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.pb.Increment()

	if messageID != "" {
		displayID := messageID
		if len(displayID) > 40 {
			displayID = displayID[:37] + "..."
		}
		b.pb.UpdateTitle("Scanning: " + displayID)
	}
}

// Stop finalizes the progress bar.
func (b *Bar) Stop() {
	if !b.enabled || b.pb == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.pb.Current < b.total {
		b.pb.Current = b.total
	}
	b.pb.Stop()
}

// PrintSummary renders the scan outcome.
func PrintSummary(summary stats.Summary, topN int, duration time.Duration) {
	pterm.Println()
	pterm.DefaultSection.Println("Scan Summary")
	pterm.Info.Printf("Duration: %v\n", duration)
	pterm.Info.Printf("Messages: %d\n", summary.Messages)
	pterm.Info.Printf("Addresses checked: %d\n", summary.Checked)
	pterm.Info.Printf("Valid: %d\n", summary.Valid)
	pterm.Info.Printf("Invalid: %d\n", summary.Invalid)
	if summary.Filtered > 0 {
		pterm.Info.Printf("Skipped by domain filter: %d\n", summary.Filtered)
	}

	headers := make([]string, 0, len(summary.PerHeader))
	for h := range summary.PerHeader {
		headers = append(headers, h)
	}
	sort.Strings(headers)
	for _, header := range headers {
		per := summary.PerHeader[header]
		pterm.Info.Printf("%s: %d valid, %d invalid\n", header, per.Valid, per.Invalid)
	}

	if len(summary.Failures) > 0 {
		pterm.Println()
		pterm.DefaultSection.Println("Failure Kinds")
		stats.PrettyPrintTop(summary.Failures, topN)
	}

	if len(summary.Domains) > 0 {
		pterm.Println()
		pterm.DefaultSection.Printf("Top %d Domains\n", topN)
		stats.PrettyPrintTop(summary.Domains, topN)
	}
}
