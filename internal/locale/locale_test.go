package locale

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func geoServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDetector_Detect(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"mapped country", http.StatusOK, `{"country_code":"TR","country_name":"Turkey"}`, "tr"},
		{"mapped country lowercase", http.StatusOK, `{"country_code":"fr"}`, "fr"},
		{"spanish-speaking country", http.StatusOK, `{"country_code":"MX"}`, "es"},
		{"unmapped country falls back", http.StatusOK, `{"country_code":"DE"}`, "en"},
		{"missing code falls back", http.StatusOK, `{}`, "en"},
		{"server error falls back", http.StatusInternalServerError, `oops`, "en"},
		{"rate limited falls back", http.StatusTooManyRequests, `{"error":true}`, "en"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			srv := geoServer(t, tc.status, tc.body)
			d := NewDetector(srv.URL, "en")
			assert.Equal(t, tc.want, d.Detect(context.Background(), "203.0.113.7"))
		})
	}
}

func TestDetector_Detect_EmptyIP(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	d := NewDetector(srv.URL, "en")
	assert.Equal(t, "en", d.Detect(context.Background(), ""))
	assert.False(t, called, "no lookup without an IP")
}

func TestDetector_Detect_UnreachableEndpoint(t *testing.T) {
	d := NewDetector("http://127.0.0.1:1", "tr")
	assert.Equal(t, "tr", d.Detect(context.Background(), "203.0.113.7"))
}

func TestDetector_Default(t *testing.T) {
	assert.Equal(t, "es", NewDetector("http://example.invalid", "es").Default())
	assert.Equal(t, "en", NewDetector("http://example.invalid", "").Default(),
		"empty default resolves to English")
}
