package freegeoip

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ahhreggi/iss-spotter/internal/providers/fetch"
	"github.com/ahhreggi/iss-spotter/internal/types"
)

func TestClient_GetCoordinates(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		want        types.Coords
		wantErr     bool
		errContains string
	}{
		{
			name:   "returns coordinates",
			status: http.StatusOK,
			body: `{"ip":"162.245.144.188","country_code":"CA","country_name":"Canada","region_code":"BC",
				"region_name":"British Columbia","city":"Vancouver","zip_code":"V6B","time_zone":"America/Vancouver",
				"latitude":49.2643,"longitude":-123.0961,"metro_code":0}`,
			want: types.NewCoords(49.2643, -123.0961),
		},
		{
			name:   "zero coordinates are valid",
			status: http.StatusOK,
			body:   `{"latitude":0,"longitude":0}`,
			want:   types.NewCoords(0, 0),
		},
		{
			name:   "out of range values pass through",
			status: http.StatusOK,
			body:   `{"latitude":123.4,"longitude":-500}`,
			want:   types.NewCoords(123.4, -500),
		},
		{
			name:        "missing latitude",
			status:      http.StatusOK,
			body:        `{"longitude":-123.0961}`,
			wantErr:     true,
			errContains: `missing field "latitude"`,
		},
		{
			name:        "missing longitude",
			status:      http.StatusOK,
			body:        `{"latitude":49.2643}`,
			wantErr:     true,
			errContains: `missing field "longitude"`,
		},
		{
			name:        "not found",
			status:      http.StatusNotFound,
			body:        "404 page not found\n",
			wantErr:     true,
			errContains: "Status Code 404 when fetching coordinates by IP. Response: 404 page not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/json/162.245.144.188" {
					t.Errorf("path = %q, want /json/162.245.144.188", r.URL.Path)
				}
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			fetcher := fetch.NewClient(0, slog.New(slog.NewTextHandler(io.Discard, nil)))
			client := NewClient(fetcher, BaseURLOption(srv.URL+"/json/"))

			got, err := client.GetCoordinates(t.Context(), "162.245.144.188")
			if tt.wantErr {
				if err == nil {
					t.Fatal("GetCoordinates() expected error but got none")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("GetCoordinates() error = %v, want error containing %v", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetCoordinates() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("GetCoordinates() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClient_GetCoordinates_MissingFieldIsParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	fetcher := fetch.NewClient(0, slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := NewClient(fetcher, BaseURLOption(srv.URL)).GetCoordinates(t.Context(), "8.8.8.8")

	var parseErr *fetch.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *fetch.ParseError", err)
	}
}
