package stats

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"github.com/mheijink/brief/mail"
	"github.com/mheijink/brief/model"
)

// HeaderSummary counts validation outcomes for one header field.
type HeaderSummary struct {
	Valid   int
	Invalid int
}

// Summary aggregates the outcome of a scan run.
type Summary struct {
	Messages  int
	Checked   int
	Valid     int
	Invalid   int
	Filtered  int
	PerHeader map[string]HeaderSummary
	Failures  map[string]int // failure kind -> count
	Domains   map[string]int // valid-address domain -> count
}

// LogAttrs returns the summary as slog key/value pairs.
func (s Summary) LogAttrs() []any {
	return []any{
		"messages", s.Messages,
		"checked", s.Checked,
		"valid", s.Valid,
		"invalid", s.Invalid,
		"filtered", s.Filtered,
	}
}

// Collector accumulates findings into a Summary.
type Collector struct {
	mu      sync.Mutex
	summary Summary
}

func NewCollector() *Collector {
	return &Collector{
		summary: Summary{
			PerHeader: make(map[string]HeaderSummary),
			Failures:  make(map[string]int),
			Domains:   make(map[string]int),
		},
	}
}

// AddMessage records that one message was scanned.
func (c *Collector) AddMessage() {
	c.mu.Lock()
	c.summary.Messages++
	c.mu.Unlock()
}

// AddFiltered records a finding skipped by the domain filter.
func (c *Collector) AddFiltered() {
	c.mu.Lock()
	c.summary.Filtered++
	c.mu.Unlock()
}

// Add records one validation finding.
func (c *Collector) Add(f model.Finding) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.summary.Checked++
	per := c.summary.PerHeader[f.Header]
	if f.Valid() {
		c.summary.Valid++
		per.Valid++
		c.summary.Domains[f.Domain]++
	} else {
		c.summary.Invalid++
		per.Invalid++
		c.summary.Failures[FailureKind(f.Err)]++
	}
	c.summary.PerHeader[f.Header] = per
}

// Snapshot returns a copy of the current summary.
func (c *Collector) Snapshot() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	summary := c.summary
	summary.PerHeader = copyMap(c.summary.PerHeader)
	summary.Failures = copyMap(c.summary.Failures)
	summary.Domains = copyMap(c.summary.Domains)
	return summary
}

// FailureKind maps a parse error to a stable label for the failure
// histogram, naming the stage (name, user, domain) and the reason.
func FailureKind(err error) string {
	var (
		nameErr *mail.InvalidNameError
		addrErr *mail.InvalidAddressError
		userErr *mail.InvalidUserError
		domErr  *mail.InvalidDomainError
	)

	switch {
	case errors.Is(err, mail.ErrMissingAngleBrackets):
		return "missing angle brackets"
	case errors.Is(err, mail.ErrMissingOpeningAngleBracket):
		return "missing opening angle bracket"
	case errors.Is(err, mail.ErrMissingClosingAngleBracket):
		return "missing closing angle bracket"
	case errors.Is(err, mail.ErrAngleBracketOrder):
		return "wrong order of angle brackets"
	case errors.Is(err, mail.ErrMissingUserOrDomain):
		return "missing user or domain"
	case errors.As(err, &nameErr):
		return "invalid name: " + partReason(nameErr.Err)
	case errors.As(err, &userErr):
		return "invalid user: " + partReason(userErr.Err)
	case errors.As(err, &domErr):
		return "invalid domain: " + partReason(domErr.Err)
	case errors.As(err, &addrErr):
		return "invalid address"
	case err == nil:
		return ""
	default:
		return "other"
	}
}

func partReason(err error) string {
	var (
		fErr  *mail.ForbiddenCharacterError
		naErr *mail.NonASCIICharacterError
	)
	switch {
	case errors.Is(err, mail.ErrPartEmpty):
		return "empty"
	case errors.As(err, &fErr):
		return "forbidden character"
	case errors.As(err, &naErr):
		return "non-ascii character"
	default:
		return "other"
	}
}

// SaveCSVReports writes report_domains.csv and report_failures.csv to dir,
// sorted by count descending and truncated to limit rows.
func SaveCSVReports(dir string, summary Summary, limit int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	reports := []struct {
		name   string
		counts map[string]int
	}{
		{"domains", summary.Domains},
		{"failures", summary.Failures},
	}

	for _, report := range reports {
		if err := writeCSV(filepath.Join(dir, "report_"+report.name+".csv"), report.counts, limit); err != nil {
			return fmt.Errorf("write %s report: %w", report.name, err)
		}
	}
	return nil
}

func writeCSV(path string, counts map[string]int, limit int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"Value", "Count"}); err != nil {
		return err
	}

	for _, p := range sortedPairs(counts) {
		if limit <= 0 {
			break
		}
		limit--
		if err := writer.Write([]string{p.Key, strconv.Itoa(p.Value)}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// PrettyPrintTop prints the top N most frequent items in a map.
func PrettyPrintTop(m map[string]int, limit int) {
	pairs := sortedPairs(m)
	for i := 0; i < limit && i < len(pairs); i++ {
		fmt.Printf("%d. %s (%d)\n", i+1, pairs[i].Key, pairs[i].Value)
	}
}

type pair struct {
	Key   string
	Value int
}

func sortedPairs(m map[string]int) []pair {
	pairs := make([]pair, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, pair{k, v})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Value != pairs[j].Value {
			return pairs[i].Value > pairs[j].Value
		}
		return pairs[i].Key < pairs[j].Key
	})
	return pairs
}

func copyMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
