package selic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/etnz/networth"
	"github.com/etnz/networth/date"
	"github.com/shopspring/decimal"
)

const payload = `{"conteudo":[
{"NumeroReuniaoCopom":262,"DataReuniaoCopom":"2024-03-20T00:00:00","DataInicioVigencia":"2024-03-21T00:00:00","DataFimVigencia":"2024-05-08T00:00:00","MetaSelic":10.75},
{"NumeroReuniaoCopom":263,"DataReuniaoCopom":"2024-05-08T00:00:00","DataInicioVigencia":"2024-05-09T00:00:00","DataFimVigencia":null,"MetaSelic":10.50}
]}`

func TestParseSchedule(t *testing.T) {
	today := date.New(2024, 6, 1)
	s, err := parseSchedule([]byte(payload), today)
	if err != nil {
		t.Fatalf("parseSchedule() failed: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("got %d intervals, want 2", s.Len())
	}

	testCases := []struct {
		on      date.Date
		want    float64
		wantErr bool
	}{
		{on: date.New(2024, 3, 20), wantErr: true},
		{on: date.New(2024, 3, 21), want: 10.75},
		{on: date.New(2024, 5, 8), want: 10.75}, // the source end date is inclusive
		{on: date.New(2024, 5, 9), want: 10.50},
		{on: today, want: 10.50}, // an open interval covers today
		{on: today.Add(1), wantErr: true},
	}
	for _, tc := range testCases {
		got, err := s.Lookup(tc.on)
		if tc.wantErr {
			if !errors.Is(err, networth.ErrNoRateFound) {
				t.Errorf("Lookup(%v) error = %v want ErrNoRateFound", tc.on, err)
			}
			continue
		}
		if err != nil || !got.Equal(decimal.NewFromFloat(tc.want)) {
			t.Errorf("Lookup(%v) = %v, %v want %v", tc.on, got, err, tc.want)
		}
	}
}

func TestParseSchedule_BareList(t *testing.T) {
	body := `[{"DataInicioVigencia":"2024-01-01","DataFimVigencia":"2024-01-31","MetaSelic":"11,75"}]`
	s, err := parseSchedule([]byte(body), date.New(2024, 6, 1))
	if err != nil {
		t.Fatalf("parseSchedule() failed: %v", err)
	}
	got, err := s.Lookup(date.New(2024, 1, 31))
	if err != nil || !got.Equal(decimal.NewFromFloat(11.75)) {
		t.Errorf("Lookup(2024-01-31) = %v, %v want 11.75", got, err)
	}
}

func TestParseSchedule_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"not json", `<html>`, "failed to decode json"},
		{"no records", `{"other":[]}`, "conteudo"},
		{"empty", `{"conteudo":[]}`, "no rate in payload"},
		{"bad start", `[{"DataInicioVigencia":"03/2024","MetaSelic":10}]`, "DataInicioVigencia"},
		{"bad rate", `[{"DataInicioVigencia":"2024-01-01","MetaSelic":true}]`, "MetaSelic"},
		{"not an object", `[1]`, "not an object"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseSchedule([]byte(tc.body), date.New(2024, 6, 1))
			if err == nil {
				t.Fatalf("parseSchedule() expected an error, but got none")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("parseSchedule() error = %q, want to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestProvider_Fetch(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	p := &Provider{URL: srv.URL, Client: srv.Client(), Cache: NewCache(TTL)}
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	first, err := p.Fetch(ctx, now)
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	second, err := p.Fetch(ctx, now.Add(23*time.Hour))
	if err != nil {
		t.Fatalf("Fetch() within ttl failed: %v", err)
	}
	if hits.Load() != 1 || second.Len() != first.Len() {
		t.Errorf("Fetch() within ttl: hits = %d want 1 and the same schedule", hits.Load())
	}

	third, err := p.Fetch(ctx, now.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("Fetch() after ttl failed: %v", err)
	}
	if hits.Load() != 2 {
		t.Errorf("Fetch() after ttl: hits = %d want 2", hits.Load())
	}
	// the refreshed open interval now covers the new day.
	if _, err := third.Lookup(date.New(2024, 6, 2)); err != nil {
		t.Errorf("Lookup(2024-06-02) on the refreshed schedule failed: %v", err)
	}
}

func TestProvider_FetchAfterMidnight(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	p := &Provider{URL: srv.URL, Client: srv.Client(), Cache: NewCache(TTL)}
	ctx := context.Background()
	lateEvening := time.Date(2024, 7, 1, 23, 0, 0, 0, time.UTC)

	if _, err := p.Fetch(ctx, lateEvening); err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	nextDay := lateEvening.Add(2 * time.Hour)
	s, err := p.Fetch(ctx, nextDay)
	if err != nil {
		t.Fatalf("Fetch() on the next day failed: %v", err)
	}
	if hits.Load() != 1 {
		t.Errorf("Fetch() on the next day: hits = %d want 1", hits.Load())
	}
	rate, err := s.Lookup(date.Of(nextDay))
	if err != nil {
		t.Fatalf("Lookup(%s) failed: %v", date.Of(nextDay), err)
	}
	if !rate.Equal(decimal.RequireFromString("10.50")) {
		t.Errorf("Lookup(%s) = %v want 10.50", date.Of(nextDay), rate)
	}
}

func TestProvider_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cache := NewCache(TTL)
	p := &Provider{URL: srv.URL, Client: srv.Client(), Cache: cache}
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	if _, err := p.Fetch(context.Background(), now); !errors.Is(err, networth.ErrUnavailable) {
		t.Errorf("Fetch() error = %v want ErrUnavailable", err)
	}

	// an expired schedule is not served when the source is down.
	cache.Put([]byte(payload), now.Add(-25*time.Hour))
	if _, err := p.Fetch(context.Background(), now); !errors.Is(err, networth.ErrUnavailable) {
		t.Errorf("Fetch() with an expired cache: error = %v want ErrUnavailable", err)
	}

	srv.Close()
	if _, err := p.Fetch(context.Background(), now); !errors.Is(err, networth.ErrUnavailable) {
		t.Errorf("Fetch() on a closed server: error = %v want ErrUnavailable", err)
	}
}

func TestCache(t *testing.T) {
	c := NewCache(time.Hour)
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	if _, ok := c.Get(now); ok {
		t.Error("Get() on an empty cache must miss")
	}
	c.Put([]byte(payload), now)
	if got, ok := c.Get(now.Add(59 * time.Minute)); !ok || string(got) != payload {
		t.Error("Get() within ttl must hit")
	}
	if _, ok := c.Get(now.Add(time.Hour)); ok {
		t.Error("Get() after ttl must miss")
	}
	if _, ok := c.Get(now.Add(-time.Minute)); ok {
		t.Error("Get() before the fetch time must miss")
	}
	c.Clear()
	if _, ok := c.Get(now); ok {
		t.Error("Get() after Clear() must miss")
	}
}
