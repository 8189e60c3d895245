package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetJSONSendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`{"price":"1.5"}`))
	}))
	defer srv.Close()

	var out struct {
		Price string `json:"price"`
	}
	c := New(Options{UserAgent: "tester/2"})
	if err := GetJSON(context.Background(), c, srv.URL, &out); err != nil {
		t.Fatal(err)
	}
	if out.Price != "1.5" {
		t.Errorf("price = %q", out.Price)
	}
	if gotUA != "tester/2" {
		t.Errorf("User-Agent = %q", gotUA)
	}
}

func TestGetJSONStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`maintenance`))
	}))
	defer srv.Close()

	var out map[string]any
	err := GetJSON(context.Background(), New(Options{}), srv.URL, &out)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if se.Status != http.StatusServiceUnavailable || se.Body != "maintenance" {
		t.Errorf("status error = %+v", se)
	}
}

func TestGetJSONDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	var out map[string]any
	err := GetJSON(context.Background(), New(Options{}), srv.URL, &out)
	if err == nil {
		t.Fatal("expected decode error")
	}
	var se *StatusError
	if errors.As(err, &se) {
		t.Fatalf("decode failure reported as status error: %v", err)
	}
}

func TestGetJSONTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	var out map[string]any
	start := time.Now()
	err := GetJSON(context.Background(), New(Options{Timeout: 50 * time.Millisecond}), srv.URL, &out)
	if err == nil {
		t.Fatal("expected timeout")
	}
	if time.Since(start) > time.Second {
		t.Errorf("timeout not honoured, took %v", time.Since(start))
	}
}
