package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() {
		os.Stdout = origStdout
	}()

	fn()

	_ = w.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("read log output: %v", err)
	}
	return buf.String()
}

func lastLogLine(t *testing.T, out string) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) == 0 || lines[0] == "" {
		t.Fatalf("expected log output")
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &payload); err != nil {
		t.Fatalf("decode log json: %v", err)
	}
	return payload
}

func TestLoggingIncludesRequiredFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID(), Logging())
	router.GET("/evaluations/:id", func(c *gin.Context) {
		c.Set(EvaluationIDKey, "eval-1")
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	out := captureStdout(t, func() {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/evaluations/eval-1", nil))
	})
	payload := lastLogLine(t, out)

	for _, key := range []string{"request_id", "method", "path", "route", "duration_ms", "status", "evaluation_id"} {
		if _, ok := payload[key]; !ok {
			t.Fatalf("missing log field: %s", key)
		}
	}
	if payload["msg"] != "request.complete" {
		t.Fatalf("unexpected msg: %v", payload["msg"])
	}
	if payload["route"] != "/evaluations/:id" {
		t.Fatalf("unexpected route: %v", payload["route"])
	}
	if payload["evaluation_id"] != "eval-1" {
		t.Fatalf("unexpected evaluation_id: %v", payload["evaluation_id"])
	}
}

func TestRequestIDKeepsValidHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, RequestIDFromContext(c))
	})

	const id = "0b5c6f0e-2f4e-4d43-9d0e-6a3f5b1c2d3e"
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-Id", id)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Body.String() != id || resp.Header().Get("X-Request-Id") != id {
		t.Fatalf("expected request id %s, got body %q header %q", id, resp.Body.String(), resp.Header().Get("X-Request-Id"))
	}

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-Id", "not a uuid\nwith newline")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Body.String() == "not a uuid\nwith newline" || resp.Body.String() == "" {
		t.Fatalf("expected generated request id, got %q", resp.Body.String())
	}
}

func TestRecoveryReturnsJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), Recovery())
	router.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	resp := httptest.NewRecorder()
	_ = captureStdout(t, func() {
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/boom", nil))
	})

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"code":"internal"`) {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}
