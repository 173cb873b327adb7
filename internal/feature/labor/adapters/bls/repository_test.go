package bls

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"econ_backend/internal/feature/labor/adapters/bls/dto"
	"econ_backend/internal/feature/rates/domain"
)

func TestNewBLSLabor(t *testing.T) {
	t.Parallel()

	cfg := Config{APIKey: "key", BaseURL: "http://example.com", Timeout: 5 * time.Second}
	client := &http.Client{}

	repo := NewBLSLabor(cfg, client)

	if repo == nil {
		t.Fatal("NewBLSLabor returned nil")
	}
	if repo.cfg != cfg {
		t.Errorf("cfg = %+v, want %+v", repo.cfg, cfg)
	}
	if repo.client != client {
		t.Error("client not set")
	}
}

func TestGetSeries(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/timeseries/data/" {
			t.Errorf("path = %s, want /timeseries/data/", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content-type = %s, want application/json", ct)
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("read request body: %v", err)
		}
		var req dto.TimeseriesRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if len(req.SeriesID) != 1 || req.SeriesID[0] != "LNS14000000" {
			t.Errorf("seriesid = %v, want [LNS14000000]", req.SeriesID)
		}
		if req.StartYear != "2023" || req.EndYear != "2024" {
			t.Errorf("years = %s..%s, want 2023..2024", req.StartYear, req.EndYear)
		}
		if req.RegistrationKey != "test_key" {
			t.Errorf("registrationkey = %s, want test_key", req.RegistrationKey)
		}

		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{
			"status": "REQUEST_SUCCEEDED",
			"Results": {
				"series": [{
					"seriesID": "LNS14000000",
					"data": [
						{"year": "2024", "period": "M02", "value": "3.9"},
						{"year": "2024", "period": "M01", "value": "3.7"},
						{"year": "2023", "period": "M13", "value": "3.6"},
						{"year": "2023", "period": "M12", "value": "-"}
					]
				}]
			}
		}`)); err != nil {
			t.Fatalf("write response: %v", err)
		}
	}))
	defer server.Close()

	repo := NewBLSLabor(Config{APIKey: "test_key", BaseURL: server.URL}, server.Client())

	obs, err := repo.GetSeries(context.Background(), "LNS14000000", "2023", "2024")
	if err != nil {
		t.Fatalf("GetSeries returned error: %v", err)
	}

	// M13（年間平均）はスキップされ、3件が残る
	if len(obs) != 3 {
		t.Fatalf("len(obs) = %d, want 3", len(obs))
	}

	first := obs[0]
	if first.SeriesID != "LNS14000000" {
		t.Errorf("SeriesID = %s, want LNS14000000", first.SeriesID)
	}
	if want := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC); !first.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", first.Date, want)
	}
	if first.Value == nil || *first.Value != 3.9 {
		t.Errorf("Value = %v, want 3.9", first.Value)
	}

	// "-" は欠損値としてnilのまま保持される
	last := obs[2]
	if last.Value != nil {
		t.Errorf("missing value = %v, want nil", *last.Value)
	}
	if want := time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC); !last.Date.Equal(want) {
		t.Errorf("missing value Date = %v, want %v", last.Date, want)
	}
}

func TestGetSeries_MissingAPIKey(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	repo := NewBLSLabor(Config{APIKey: "", BaseURL: server.URL}, server.Client())

	_, err := repo.GetSeries(context.Background(), "LNS14000000", "2023", "2024")

	if !errors.Is(err, domain.ErrMissingAPIKey) {
		t.Errorf("error = %v, want ErrMissingAPIKey", err)
	}
	if n := calls.Load(); n != 0 {
		t.Errorf("server received %d requests, want 0", n)
	}
}

func TestGetSeries_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
	}{
		{"internal server error", http.StatusInternalServerError},
		{"too many requests", http.StatusTooManyRequests},
		{"not found", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			repo := NewBLSLabor(Config{APIKey: "test_key", BaseURL: server.URL}, server.Client())

			_, err := repo.GetSeries(context.Background(), "LNS14000000", "2023", "2024")

			if !errors.Is(err, domain.ErrRemoteService) {
				t.Errorf("error = %v, want ErrRemoteService", err)
			}
		})
	}
}

func TestGetSeries_APIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{
			"status": "REQUEST_NOT_PROCESSED",
			"message": ["invalid registration key"]
		}`)); err != nil {
			t.Fatalf("write response: %v", err)
		}
	}))
	defer server.Close()

	repo := NewBLSLabor(Config{APIKey: "bad_key", BaseURL: server.URL}, server.Client())

	_, err := repo.GetSeries(context.Background(), "LNS14000000", "2023", "2024")

	if !errors.Is(err, domain.ErrRemoteService) {
		t.Errorf("error = %v, want ErrRemoteService", err)
	}
}

func TestGetSeries_InvalidJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("not json")); err != nil {
			t.Fatalf("write response: %v", err)
		}
	}))
	defer server.Close()

	repo := NewBLSLabor(Config{APIKey: "test_key", BaseURL: server.URL}, server.Client())

	_, err := repo.GetSeries(context.Background(), "LNS14000000", "2023", "2024")

	if !errors.Is(err, domain.ErrRemoteService) {
		t.Errorf("error = %v, want ErrRemoteService", err)
	}
}

func TestGetSeries_ContextCancellation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
	}))
	defer server.Close()

	repo := NewBLSLabor(Config{APIKey: "test_key", BaseURL: server.URL}, server.Client())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.GetSeries(ctx, "LNS14000000", "2023", "2024")

	if err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestMonthOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		period string
		want   time.Month
		ok     bool
	}{
		{"M01", time.January, true},
		{"M06", time.June, true},
		{"M12", time.December, true},
		{"M13", 0, false},
		{"M00", 0, false},
		{"Q01", 0, false},
		{"A01", 0, false},
		{"M1", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			t.Parallel()

			got, ok := monthOf(tt.period)
			if ok != tt.ok {
				t.Fatalf("monthOf(%q) ok = %v, want %v", tt.period, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("monthOf(%q) = %v, want %v", tt.period, got, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("BLS_API_KEY", "env_key")
	t.Setenv("BLS_BASE_URL", "http://localhost:9999")

	cfg := LoadConfig()

	if cfg.APIKey != "env_key" {
		t.Errorf("APIKey = %s, want env_key", cfg.APIKey)
	}
	if cfg.BaseURL != "http://localhost:9999" {
		t.Errorf("BaseURL = %s, want http://localhost:9999", cfg.BaseURL)
	}
}

func TestLoadConfig_DefaultBaseURL(t *testing.T) {
	t.Setenv("BLS_API_KEY", "env_key")
	t.Setenv("BLS_BASE_URL", "")

	cfg := LoadConfig()

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %s, want %s", cfg.BaseURL, DefaultBaseURL)
	}
}
