package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/time/rate"

	"github.com/talgya/frontier-map/internal/world"
)

func TestDescriber_MissingKey(t *testing.T) {
	d := NewDescriber(NewClient(""))
	if got := d.DescribeHex(context.Background(), world.TerrainDesert, world.ElementSecret); got != DescriptionUnavailable {
		t.Errorf("DescribeHex = %q", got)
	}
	if got := d.DescribeEncounter(context.Background(), world.TerrainDesert, 3); got != EncounterUnavailable {
		t.Errorf("DescribeEncounter = %q", got)
	}
}

func TestDescriber_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	d := NewDescriber(NewClient("test-key").WithEndpoint(srv.URL))
	if got := d.DescribeHex(context.Background(), world.TerrainForest, world.ElementStandard); got != DescriptionFailed {
		t.Errorf("DescribeHex = %q", got)
	}
	if got := d.DescribeEncounter(context.Background(), world.TerrainForest, 0); got != EncounterFailed {
		t.Errorf("DescribeEncounter = %q", got)
	}
}

func TestDescriber_Success(t *testing.T) {
	var gotReq request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("api key header = %q", r.Header.Get("x-api-key"))
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content": [{"text": "  Jade spires pierce the dust.  "}], "usage": {"input_tokens": 10, "output_tokens": 8}}`))
	}))
	defer srv.Close()

	d := NewDescriber(NewClient("test-key").WithEndpoint(srv.URL))
	got := d.DescribeHex(context.Background(), world.TerrainMountain, world.ElementFeature)
	if got != "Jade spires pierce the dust." {
		t.Errorf("DescribeHex = %q", got)
	}
	if len(gotReq.Messages) != 1 || !strings.Contains(gotReq.Messages[0].Content, "Terrain: Mountain") {
		t.Errorf("prompt = %+v", gotReq.Messages)
	}
	if !strings.Contains(gotReq.System, "Wild West") {
		t.Errorf("system prompt = %q", gotReq.System)
	}
}

func TestDescriber_EncounterDefaultsLevel(t *testing.T) {
	var prompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req request
		json.NewDecoder(r.Body).Decode(&req)
		prompt = req.Messages[0].Content
		w.Write([]byte(`{"content": [{"text": ""}]}`))
	}))
	defer srv.Close()

	d := NewDescriber(NewClient("test-key").WithEndpoint(srv.URL))
	if got := d.DescribeEncounter(context.Background(), world.TerrainPlain, 0); got != EncounterEmpty {
		t.Errorf("DescribeEncounter = %q, want empty fallback", got)
	}
	if !strings.Contains(prompt, "party of level 5") {
		t.Errorf("prompt = %q", prompt)
	}
}

func TestClient_RateCap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content": [{"text": "ok"}]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key").WithEndpoint(srv.URL)
	c.limiter = rate.NewLimiter(0, 2)
	for i := 0; i < 2; i++ {
		if _, err := c.Complete(context.Background(), "", "hi", 10); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	if _, err := c.Complete(context.Background(), "", "hi", 10); !errors.Is(err, ErrRateLimited) {
		t.Errorf("third call err = %v, want ErrRateLimited", err)
	}
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewClient("test-key").WithEndpoint(srv.URL).Complete(context.Background(), "", "hi", 10)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("err = %v, want APIError 401", err)
	}
}
