// Package cmd implements the subcommands of nw, the net worth analysis CLI.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/networth"
	"github.com/etnz/networth/selic"
	"github.com/google/subcommands"
)

const (
	EnvLedgerFile = "NW_LEDGER_FILE"
	EnvCurrency   = "NW_CURRENCY"
	EnvRateURL    = "NW_RATE_URL"
	EnvCacheDir   = "NW_CACHE_DIR"
	EnvVerbose    = "NW_VERBOSE"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&ledgerCmd{}, "ledger")
	c.Register(&institutionsCmd{}, "ledger")
	c.Register(&statsCmd{}, "ledger")

	c.Register(&ratesCmd{}, "goals")
	c.Register(&goalsCmd{}, "goals")
	c.Register(&assistCmd{}, "goals")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "", "Path to the CSV ledger with Date, Amount and Institution columns.\n If missing it will read the environment variable \""+EnvLedgerFile+"\", then default to \"ledger.csv\".")
var currency = flag.String("currency", "", "Currency of the ledger amounts.\n If missing it will read the environment variable \""+EnvCurrency+"\", then default to \"BRL\".")
var rateURL = flag.String("rate-url", "", "URL of the Selic rate history.\n If missing it will read the environment variable \""+EnvRateURL+"\", then default to the Banco Central do Brasil.")
var cacheDir = flag.String("cache-dir", "", "Folder where HTTP responses are cached for a day.\n If missing it will read the environment variable \""+EnvCacheDir+"\", then default to the user cache folder.")
var verbose = flag.Bool("verbose", false, "Log HTTP and cache activity to stderr.\n It is also enabled by the environment variable \""+EnvVerbose+"\".")

// stdout is where commands write their report.
var stdout io.Writer = os.Stdout

// rateCache is shared by all the commands of the process.
var rateCache = selic.NewCache(selic.TTL)

// setting returns the flag value if set, or the environment variable, or the default.
func setting(value *string, env, def string) string {
	if *value != "" {
		return *value
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

// LedgerFile returns the path to the ledger.
func LedgerFile() string { return setting(ledgerFile, EnvLedgerFile, "ledger.csv") }

// Currency returns the currency of the ledger amounts.
func Currency() string { return setting(currency, EnvCurrency, "BRL") }

// RateURL returns the URL of the rate history.
func RateURL() string { return setting(rateURL, EnvRateURL, selic.DefaultURL) }

// CacheDir returns the HTTP cache folder.
func CacheDir() string {
	def := filepath.Join(os.TempDir(), "nw")
	if dir, err := os.UserCacheDir(); err == nil {
		def = filepath.Join(dir, "nw")
	}
	return setting(cacheDir, EnvCacheDir, def)
}

// Verbose reports whether logs are enabled.
func Verbose() bool {
	if *verbose {
		return true
	}
	v, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	return v
}

// SetupLogs silences the standard logger unless Verbose.
func SetupLogs() {
	if !Verbose() {
		log.SetOutput(io.Discard)
	}
}

// DecodeLedger decodes the ledger file.
func DecodeLedger() (*networth.Ledger, error) {
	name := LedgerFile()
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger: %w", err)
	}
	defer f.Close()

	l, err := networth.DecodeLedgerCSV(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger %q: %w", name, err)
	}
	log.Printf("decoded %d transactions from %q", l.Len(), name)
	return l, nil
}

// DecodeStatistics decodes the ledger file and computes its statistics.
func DecodeStatistics() (*networth.Statistics, error) {
	l, err := DecodeLedger()
	if err != nil {
		return nil, err
	}
	return networth.ComputeStatistics(l), nil
}

// FetchRates returns the Selic schedule, through the process and the disk caches.
func FetchRates(ctx context.Context) (*networth.RateSchedule, error) {
	p := selic.New(rateCache)
	p.URL = RateURL()
	p.Client = networth.NewCachingClient(CacheDir(), selic.TTL, time.Now)
	return p.Fetch(ctx, time.Now())
}

// printMarkdown renders markdown for the terminal, or prints it raw if that fails.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	log.Printf("could not render markdown: %v", err)
	fmt.Fprint(stdout, md)
}
