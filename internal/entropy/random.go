// Package entropy provides the random sources used for cosmetic choices
// (flavor text, dice rolls). Terrain classification never draws from here.
// Sources: seeded math/rand for reproducible runs, crypto/rand as the default,
// and an optional random.org pool.
package entropy

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log/slog"
	mrand "math/rand"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Source yields uniform floats in [0, 1).
type Source interface {
	Float() float64
}

// Seeded is a reproducible source backed by math/rand.
type Seeded struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewSeeded returns a source that replays the same sequence for the same seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: mrand.New(mrand.NewSource(seed))}
}

// Float returns the next value of the seeded sequence.
func (s *Seeded) Float() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Fixed always returns the same value. Useful to pin coin flips in tests.
type Fixed float64

// Float returns the fixed value.
func (f Fixed) Float() float64 {
	return float64(f)
}

// Crypto draws from crypto/rand.
type Crypto struct{}

// Float returns a crypto/rand float.
func (Crypto) Float() float64 {
	return cryptoRandFloat()
}

const (
	randomOrgURL = "https://api.random.org/json-rpc/4/invoke"
	poolBatch    = 100 // Fractions fetched per refill
	poolLow      = 10  // Refill when fewer than this remain

	// refillInterval is the minimum gap between refill attempts, failed or not.
	refillInterval = 30 * time.Second
)

// Client draws from a local pool of random.org decimal fractions.
// A nil *Client is valid and falls back to crypto/rand.
type Client struct {
	apiKey   string
	endpoint string
	http     *http.Client
	refills  *rate.Limiter

	mu        sync.Mutex
	pool      []float64
	refilling bool
	inflight  sync.WaitGroup
}

// NewClient creates a random.org client. Returns nil if apiKey is empty.
func NewClient(apiKey string) *Client {
	if apiKey == "" {
		return nil
	}
	return &Client{
		apiKey:   apiKey,
		endpoint: randomOrgURL,
		http:     &http.Client{Timeout: 15 * time.Second},
		refills:  rate.NewLimiter(rate.Every(refillInterval), 1),
	}
}

// Float pops the next pooled fraction and never waits on the network.
// When the pool runs low a refill starts in the background, at most once per
// refillInterval; until it lands, draws use what is left, then crypto/rand.
func (c *Client) Float() float64 {
	if c == nil {
		return cryptoRandFloat()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.pool) < poolLow && !c.refilling && c.refills.Allow() {
		c.refilling = true
		c.inflight.Add(1)
		go c.refill()
	}
	if len(c.pool) == 0 {
		return cryptoRandFloat()
	}

	v := c.pool[0]
	c.pool = c.pool[1:]
	return v
}

func (c *Client) refill() {
	defer c.inflight.Done()

	batch, err := c.fetch(context.Background())
	if err != nil {
		slog.Debug("random.org refill failed", "error", err)
	}

	c.mu.Lock()
	c.pool = append(c.pool, batch...)
	c.refilling = false
	c.mu.Unlock()
}

type rpcRequest struct {
	JSONRPC string    `json:"jsonrpc"`
	Method  string    `json:"method"`
	Params  rpcParams `json:"params"`
	ID      int       `json:"id"`
}

type rpcParams struct {
	APIKey        string `json:"apiKey"`
	N             int    `json:"n"`
	DecimalPlaces int    `json:"decimalPlaces"`
}

type rpcResponse struct {
	Result struct {
		Random struct {
			Data []float64 `json:"data"`
		} `json:"random"`
	} `json:"result"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// fetch requests one batch of decimal fractions.
func (c *Client) fetch(ctx context.Context) ([]float64, error) {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  "generateDecimalFractions",
		Params:  rpcParams{APIKey: c.apiKey, N: poolBatch, DecimalPlaces: 6},
		ID:      1,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	var out rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if out.Error != nil {
		return nil, fmt.Errorf("random.org error %d: %s", out.Error.Code, out.Error.Message)
	}
	slog.Debug("random.org pool refilled", "count", len(out.Result.Random.Data))
	return out.Result.Random.Data, nil
}

// cryptoRandFloat generates a random float64 using crypto/rand as fallback.
func cryptoRandFloat() float64 {
	var buf [8]byte
	_, err := rand.Read(buf[:])
	if err != nil {
		return 0.5
	}
	// Use only 53 bits for a uniform float64 in [0, 1).
	n := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(n) / float64(1<<53)
}

// Enabled returns true if the client has a valid API key.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// Default picks the random.org client when configured, crypto/rand otherwise.
func Default(c *Client) Source {
	if c.Enabled() {
		return c
	}
	return Crypto{}
}

// Chance reports whether a draw from src falls below p.
func Chance(src Source, p float64) bool {
	return src.Float() < p
}
