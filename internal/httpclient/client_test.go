package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
)

func TestNextRequestIDIsUUIDv4(t *testing.T) {
	id := nextRequestID()

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("request_id must be a valid UUID, got %q: %v", id, err)
	}
	if parsed.Version() != 4 {
		t.Fatalf("request_id must be UUID v4, got version %d (%q)", parsed.Version(), id)
	}
	if parsed.Variant() != uuid.RFC4122 {
		t.Fatalf("request_id must use RFC4122 variant, got %v (%q)", parsed.Variant(), id)
	}
}

func TestPostFormSendsBodyAndContentType(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/x-www-form-urlencoded" {
			t.Errorf("unexpected content type: %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != "TRXTYPE=S" {
			t.Errorf("unexpected body: %q", body)
		}
		_, _ = w.Write([]byte("RESULT=0"))
	}))
	defer ts.Close()

	c := New(nil, nil, nil, false)
	resp, raw, err := c.PostForm(context.Background(), ts.URL, Payload{Body: "TRXTYPE=S", Redacted: "TRXTYPE=S"})
	if err != nil {
		t.Fatalf("post form: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	if string(raw) != "RESULT=0" {
		t.Fatalf("unexpected raw body: %q", raw)
	}
}

func TestPostFormDoesNotRetryServerErrors(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := New(nil, nil, nil, false)
	_, _, err := c.PostForm(context.Background(), ts.URL, Payload{Body: "A=1"})
	hs, ok := err.(*HTTPStatusError)
	if !ok {
		t.Fatalf("expected *HTTPStatusError, got %T (%v)", err, err)
	}
	if hs.StatusCode != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", hs.StatusCode)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("expected exactly one attempt, got %d", n)
	}
}

func TestPostFormRedirectStatusIsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMultipleChoices)
	}))
	defer ts.Close()

	c := New(nil, nil, nil, false)
	_, _, err := c.PostForm(context.Background(), ts.URL, Payload{Body: "A=1"})
	hs, ok := err.(*HTTPStatusError)
	if !ok || hs.StatusCode != http.StatusMultipleChoices {
		t.Fatalf("expected 300 status error, got %T (%v)", err, err)
	}
}

func TestPostFormDoesNotFollowRedirects(t *testing.T) {
	var followed int32
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/elsewhere", http.StatusFound)
	})
	mux.HandleFunc("/elsewhere", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&followed, 1)
		_, _ = w.Write([]byte("RESULT=0"))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	c := New(nil, nil, nil, false)
	_, _, err := c.PostForm(context.Background(), ts.URL+"/", Payload{Body: "A=1"})
	hs, ok := err.(*HTTPStatusError)
	if !ok || hs.StatusCode != http.StatusFound {
		t.Fatalf("expected 302 status error, got %T (%v)", err, err)
	}
	if n := atomic.LoadInt32(&followed); n != 0 {
		t.Fatalf("redirect must not be followed, got %d calls", n)
	}
}

func TestLogBody(t *testing.T) {
	if got := logBody([]byte("PWD=****"), false); got != "size=8 bytes" {
		t.Fatalf("unexpected summary: %q", got)
	}
	if got := logBody([]byte(" PWD=**** \n"), true); got != "PWD=****" {
		t.Fatalf("unexpected preview: %q", got)
	}
	if got := logBody(nil, true); got != "<empty>" {
		t.Fatalf("unexpected empty preview: %q", got)
	}
}
