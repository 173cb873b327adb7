package beaapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"econ_backend/internal/feature/rates/domain"
)

func TestNewBEATables(t *testing.T) {
	t.Parallel()

	cfg := Config{APIKey: "key", BaseURL: "http://example.com", Timeout: 5 * time.Second}
	client := &http.Client{}

	repo := NewBEATables(cfg, client)

	if repo == nil {
		t.Fatal("NewBEATables returned nil")
	}
	if repo.cfg != cfg {
		t.Errorf("cfg = %+v, want %+v", repo.cfg, cfg)
	}
	if repo.client != client {
		t.Error("client not set")
	}
}

func TestGetNIPATable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("UserID") != "test_key" {
			t.Errorf("UserID = %s, want test_key", q.Get("UserID"))
		}
		if q.Get("method") != "GetData" {
			t.Errorf("method = %s, want GetData", q.Get("method"))
		}
		if q.Get("datasetname") != "NIPA" {
			t.Errorf("datasetname = %s, want NIPA", q.Get("datasetname"))
		}
		if q.Get("TableName") != "T10101" {
			t.Errorf("TableName = %s, want T10101", q.Get("TableName"))
		}
		if q.Get("Frequency") != "Q" {
			t.Errorf("Frequency = %s, want Q", q.Get("Frequency"))
		}
		if q.Get("Year") != "2023" {
			t.Errorf("Year = %s, want 2023", q.Get("Year"))
		}
		if q.Get("ResultFormat") != "json" {
			t.Errorf("ResultFormat = %s, want json", q.Get("ResultFormat"))
		}

		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{
			"BEAAPI": {
				"Results": {
					"Data": [
						{"TimePeriod": "2023Q1", "DataValue": "26,813.6"},
						{"TimePeriod": "2023Q2", "DataValue": "27,063.0"},
						{"TimePeriod": "2023Q3", "DataValue": "(NA)"},
						{"TimePeriod": "garbage", "DataValue": "1.0"}
					]
				}
			}
		}`)); err != nil {
			t.Fatalf("write response: %v", err)
		}
	}))
	defer server.Close()

	repo := NewBEATables(Config{APIKey: "test_key", BaseURL: server.URL}, server.Client())

	obs, err := repo.GetNIPATable(context.Background(), "T10101", "Q", "2023")
	if err != nil {
		t.Fatalf("GetNIPATable returned error: %v", err)
	}

	// アダプタは行を落とさない。欠損の除去は正規化側の責務
	if len(obs) != 4 {
		t.Fatalf("len(obs) = %d, want 4", len(obs))
	}

	first := obs[0]
	if first.SeriesID != "T10101" {
		t.Errorf("SeriesID = %s, want T10101", first.SeriesID)
	}
	if want := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC); !first.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", first.Date, want)
	}
	// カンマ区切りが数値として解釈される
	if first.Value == nil || *first.Value != 26813.6 {
		t.Errorf("Value = %v, want 26813.6", first.Value)
	}

	if obs[2].Value != nil {
		t.Errorf("non-numeric value = %v, want nil", *obs[2].Value)
	}
	if !obs[3].Date.IsZero() {
		t.Errorf("unparseable period Date = %v, want zero", obs[3].Date)
	}
}

func TestGetNIPATable_MissingAPIKey(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	repo := NewBEATables(Config{APIKey: "", BaseURL: server.URL}, server.Client())

	_, err := repo.GetNIPATable(context.Background(), "T10101", "Q", "2023")

	if !errors.Is(err, domain.ErrMissingAPIKey) {
		t.Errorf("error = %v, want ErrMissingAPIKey", err)
	}
	if n := calls.Load(); n != 0 {
		t.Errorf("server received %d requests, want 0", n)
	}
}

func TestGetNIPATable_HTTPError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	repo := NewBEATables(Config{APIKey: "test_key", BaseURL: server.URL}, server.Client())

	_, err := repo.GetNIPATable(context.Background(), "T10101", "Q", "2023")

	if !errors.Is(err, domain.ErrRemoteService) {
		t.Errorf("error = %v, want ErrRemoteService", err)
	}
}

func TestGetNIPATable_APIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{
			"BEAAPI": {
				"Results": {
					"Error": {"APIErrorDescription": "Invalid API UserId"}
				}
			}
		}`)); err != nil {
			t.Fatalf("write response: %v", err)
		}
	}))
	defer server.Close()

	repo := NewBEATables(Config{APIKey: "bad_key", BaseURL: server.URL}, server.Client())

	_, err := repo.GetNIPATable(context.Background(), "T10101", "Q", "2023")

	if !errors.Is(err, domain.ErrRemoteService) {
		t.Errorf("error = %v, want ErrRemoteService", err)
	}
}

func TestGetNIPATable_InvalidJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("<html>maintenance</html>")); err != nil {
			t.Fatalf("write response: %v", err)
		}
	}))
	defer server.Close()

	repo := NewBEATables(Config{APIKey: "test_key", BaseURL: server.URL}, server.Client())

	_, err := repo.GetNIPATable(context.Background(), "T10101", "Q", "2023")

	if !errors.Is(err, domain.ErrRemoteService) {
		t.Errorf("error = %v, want ErrRemoteService", err)
	}
}

func TestParsePeriod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		period string
		want   time.Time
		ok     bool
	}{
		{"2023", time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), true},
		{"2023Q1", time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), true},
		{"2023Q3", time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC), true},
		{"2023Q4", time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC), true},
		{"2023M07", time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC), true},
		{"2023M12", time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), true},
		{"2023Q5", time.Time{}, false},
		{"2023M13", time.Time{}, false},
		{"2023X1", time.Time{}, false},
		{"23Q1", time.Time{}, false},
		{"abcd", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			t.Parallel()

			got, ok := parsePeriod(tt.period)
			if ok != tt.ok {
				t.Fatalf("parsePeriod(%q) ok = %v, want %v", tt.period, ok, tt.ok)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parsePeriod(%q) = %v, want %v", tt.period, got, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("BEA_API_KEY", "env_key")
	t.Setenv("BEA_BASE_URL", "")

	cfg := LoadConfig()

	if cfg.APIKey != "env_key" {
		t.Errorf("APIKey = %s, want env_key", cfg.APIKey)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %s, want %s", cfg.BaseURL, DefaultBaseURL)
	}
}
