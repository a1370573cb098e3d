package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatusRecorderWriteTracksAndTruncates(t *testing.T) {
	base := httptest.NewRecorder()
	recorder := &statusRecorder{
		ResponseWriter: base,
		statusCode:     http.StatusOK,
		maxLogBytes:    10,
	}

	payload := []byte("abcdefghijklmnopqrstuvwxyz")
	written, err := recorder.Write(payload)
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if written != len(payload) {
		t.Fatalf("written bytes = %d, want %d", written, len(payload))
	}
	if recorder.bytesWritten != len(payload) {
		t.Fatalf("bytesWritten = %d, want %d", recorder.bytesWritten, len(payload))
	}
	if recorder.logBody.Len() != 10 {
		t.Fatalf("log body length = %d, want 10", recorder.logBody.Len())
	}
	if !recorder.truncated {
		t.Fatalf("expected truncated flag to be true")
	}
}

func TestStatusRecorderWriteWithinLimit(t *testing.T) {
	base := httptest.NewRecorder()
	recorder := &statusRecorder{
		ResponseWriter: base,
		statusCode:     http.StatusOK,
		maxLogBytes:    64,
	}

	if _, err := recorder.Write([]byte("short body")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if recorder.truncated {
		t.Fatalf("body within limit must not be marked truncated")
	}
	if got := recorder.logBody.String(); got != "short body" {
		t.Fatalf("log body = %q", got)
	}
}

func TestStatusRecorderCapturesStatusCode(t *testing.T) {
	base := httptest.NewRecorder()
	recorder := &statusRecorder{
		ResponseWriter: base,
		statusCode:     http.StatusOK,
		maxLogBytes:    10,
	}

	recorder.WriteHeader(http.StatusGone)
	if recorder.statusCode != http.StatusGone {
		t.Fatalf("status = %d, want %d", recorder.statusCode, http.StatusGone)
	}
	if base.Code != http.StatusGone {
		t.Fatalf("underlying status = %d, want %d", base.Code, http.StatusGone)
	}
}
