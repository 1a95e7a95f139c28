package fetch

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient() *Client {
	return NewClient(0, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_GetJSON(t *testing.T) {
	type payload struct {
		IP string `json:"ip"`
	}

	tests := []struct {
		name     string
		status   int
		body     string
		validate func(*testing.T, payload, error)
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body:   `{"ip":"203.0.113.7"}`,
			validate: func(t *testing.T, got payload, err error) {
				if err != nil {
					t.Fatalf("GetJSON() unexpected error = %v", err)
				}
				if got.IP != "203.0.113.7" {
					t.Errorf("IP = %q, want 203.0.113.7", got.IP)
				}
			},
		},
		{
			name:   "non-2xx status",
			status: http.StatusInternalServerError,
			body:   "  upstream exploded\n",
			validate: func(t *testing.T, _ payload, err error) {
				var reqErr *RequestError
				if !errors.As(err, &reqErr) {
					t.Fatalf("GetJSON() error = %v, want *RequestError", err)
				}
				if reqErr.StatusCode != 500 {
					t.Errorf("StatusCode = %d, want 500", reqErr.StatusCode)
				}
				want := "Status Code 500 when fetching IP. Response:   upstream exploded\n"
				if err.Error() != want {
					t.Errorf("Error() = %q, want %q", err.Error(), want)
				}
			},
		},
		{
			name:   "malformed body",
			status: http.StatusOK,
			body:   `{"ip":`,
			validate: func(t *testing.T, _ payload, err error) {
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("GetJSON() error = %v, want *ParseError", err)
				}
				if parseErr.Action != "fetching IP" {
					t.Errorf("Action = %q, want fetching IP", parseErr.Action)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("method = %s, want GET", r.Method)
				}
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			var got payload
			err := newTestClient().GetJSON(t.Context(), srv.URL, "fetching IP", &got)
			tt.validate(t, got, err)
		})
	}
}

func TestClient_GetJSON_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	var out map[string]any
	err := newTestClient().GetJSON(t.Context(), url, "fetching IP", &out)

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("GetJSON() error = %v, want *TransportError", err)
	}
	if transportErr.Unwrap() == nil {
		t.Error("TransportError has no cause")
	}
}

func TestTrimBody(t *testing.T) {
	reqErr := &RequestError{Action: "fetching flyover data by coordinates", StatusCode: 502, Body: "\n bad gateway \n"}

	err := TrimBody(reqErr)
	if err != reqErr {
		t.Fatalf("TrimBody() = %v, want the same error", err)
	}
	if reqErr.Body != "bad gateway" {
		t.Errorf("Body = %q, want %q", reqErr.Body, "bad gateway")
	}

	parseErr := MissingField("fetching IP", "ip")
	if got := TrimBody(parseErr); got != parseErr {
		t.Errorf("TrimBody() changed a non-request error: %v", got)
	}
}

func TestMissingField(t *testing.T) {
	err := MissingField("fetching IP", "ip")
	want := `Invalid response when fetching IP: missing field "ip"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
