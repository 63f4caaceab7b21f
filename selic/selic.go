// Package selic provides the schedule of the Selic target rate published by
// the Banco Central do Brasil.
package selic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/networth"
	"github.com/etnz/networth/date"
	"github.com/shopspring/decimal"
)

// DefaultURL is the BCB endpoint listing the Copom decisions.
const DefaultURL = "https://www.bcb.gov.br/api/servico/sitebcb/historicotaxasjuros"

// TTL is how long a fetched schedule is reused.
const TTL = 24 * time.Hour

// Provider fetches the Selic schedule through a Cache.
type Provider struct {
	URL    string
	Client *http.Client
	Cache  *Cache
}

// New returns a Provider on the default endpoint.
func New(cache *Cache) *Provider {
	return &Provider{URL: DefaultURL, Client: http.DefaultClient, Cache: cache}
}

// Fetch returns the rate schedule as of 'now'.
//
// The cached payload is used while it is fresh, otherwise the source is
// queried and the cache refreshed. Either way the decision still in force is
// resolved against 'now', so it always covers date.Of(now). Any failure to
// reach or decode the source is an error wrapping networth.ErrUnavailable; an
// expired payload is never used in that case.
func (p *Provider) Fetch(ctx context.Context, now time.Time) (*networth.RateSchedule, error) {
	if p.Cache != nil {
		if body, ok := p.Cache.Get(now); ok {
			return parseSchedule(body, date.Of(now))
		}
	}

	body, err := p.download(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", networth.ErrUnavailable, err)
	}
	s, err := parseSchedule(body, date.Of(now))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", networth.ErrUnavailable, err)
	}

	// only payloads that decode are cached.
	if p.Cache != nil {
		p.Cache.Put(body, now)
	}
	return s, nil
}

// download performs the GET request and returns the response body.
func (p *Provider) download(ctx context.Context) ([]byte, error) {
	addr := p.URL
	if addr == "" {
		addr = DefaultURL
	}
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	log.Println("Downloading Selic history from:", addr)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid rate source %q: %w", addr, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download from %s: %w", addr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download from %s: received status %s", addr, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// recordsPath locates the list of decisions in the BCB payload.
const recordsPath = "$.conteudo[*]"

// parseSchedule decodes the BCB payload.
//
// The source validity dates are inclusive on both ends, they are converted
// into half-open intervals ending the day after DataFimVigencia. A missing end
// date means the rate is still in force: the interval then covers 'today'.
func parseSchedule(body []byte, today date.Date) (*networth.RateSchedule, error) {
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return nil, fmt.Errorf("failed to decode json: %w", err)
	}

	// the payload is either wrapped in a "conteudo" object or a bare list.
	jlist, ok := jobj.([]any)
	if !ok {
		jval, err := jsonpath.Get(recordsPath, jobj)
		if err != nil {
			return nil, fmt.Errorf("error parsing %q: %w", recordsPath, err)
		}
		switch v := jval.(type) {
		case nil:
		case []any:
			jlist = v
		default:
			return nil, fmt.Errorf("error parsing %q: not a list %T", recordsPath, jval)
		}
	}

	intervals := make([]networth.RateInterval, 0, len(jlist))
	var errs error
	for i, jrec := range jlist {
		rec, ok := jrec.(map[string]any)
		if !ok {
			errs = errors.Join(errs, fmt.Errorf("record %d: not an object", i))
			continue
		}
		interval, err := parseRecord(rec, today)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		intervals = append(intervals, interval)
	}
	if errs != nil {
		return nil, errs
	}
	if len(intervals) == 0 {
		return nil, errors.New("no rate in payload")
	}
	return networth.NewRateSchedule(intervals...)
}

// parseRecord decodes a single decision.
func parseRecord(rec map[string]any, today date.Date) (networth.RateInterval, error) {
	var r networth.RateInterval

	start, err := parseDate(rec["DataInicioVigencia"])
	if err != nil {
		return r, fmt.Errorf("DataInicioVigencia: %w", err)
	}
	end := today
	if rec["DataFimVigencia"] != nil {
		if end, err = parseDate(rec["DataFimVigencia"]); err != nil {
			return r, fmt.Errorf("DataFimVigencia: %w", err)
		}
	}
	rate, err := parseRate(rec["MetaSelic"])
	if err != nil {
		return r, fmt.Errorf("MetaSelic: %w", err)
	}

	r.From, r.To, r.Rate = start, end.Add(1), rate
	return r, nil
}

// parseDate accepts "2024-06-20" and "2024-06-20T00:00:00".
func parseDate(jval any) (date.Date, error) {
	s, ok := jval.(string)
	if !ok {
		return date.Date{}, fmt.Errorf("not a string %v", jval)
	}
	day, _, _ := strings.Cut(s, "T")
	return date.Parse(day)
}

// parseRate accepts json numbers and numeric strings.
func parseRate(jval any) (decimal.Decimal, error) {
	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		return decimal.NewFromString(strings.Replace(v, ",", ".", 1))
	default:
		return decimal.Decimal{}, fmt.Errorf("not a number %v", jval)
	}
}
