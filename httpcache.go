package networth

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"
)

// contains http utils to deal with remote services

// diskCache implements a simple disk cache for HTTP responses.
//
// A cached response is served as long as it is younger than ttl. Only
// successful GET responses are stored.
type diskCache struct {
	base http.RoundTripper
	dir  string
	ttl  time.Duration
	now  func() time.Time
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	if req.Method != http.MethodGet {
		return c.base.RoundTrip(req)
	}
	key := fmt.Sprintf("%x", sha1.Sum([]byte(req.Method+" "+req.URL.String())))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		log.Printf("cache hit %v/%v", req.URL.Host, req.URL.Path)
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	// otherwise attempt to store it in cache

	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v\n", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk, if it has not expired.
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	file := filepath.Join(c.dir, key)
	info, err := os.Stat(file)
	if err != nil {
		return nil, err
	}
	if age := c.now().Sub(info.ModTime()); age < 0 || age >= c.ttl {
		return nil, fmt.Errorf("cache entry expired %v ago", age-c.ttl)
	}
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache. resp.Body remains readable.
func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0o750); err != nil {
		return err
	}
	file := filepath.Join(c.dir, key)
	if err := os.WriteFile(file, content, 0o600); err != nil {
		return err
	}
	// Stamp the entry with the cache clock rather than the wall clock.
	now := c.now()
	return os.Chtimes(file, now, now)
}

// NewCachingClient returns a client whose GET responses are cached in dir for ttl.
//
// A nil now uses time.Now.
func NewCachingClient(dir string, ttl time.Duration, now func() time.Time) *http.Client {
	if now == nil {
		now = time.Now
	}
	client := new(http.Client)
	client.Transport = &diskCache{base: http.DefaultTransport, dir: dir, ttl: ttl, now: now}
	return client
}
