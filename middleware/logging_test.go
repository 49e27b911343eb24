package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/dearkafka/woot"
)

func testRequest() *woot.Request {
	return &woot.Request{
		Resource: "contacts",
		Action:   "list",
		Method:   "GET",
		URL:      "https://chat.example.com/api/v1/accounts/1/contacts?q=a%20b",
	}
}

func TestLogging_Success(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	interceptor := Logging(logger)

	next := func(ctx context.Context, req *woot.Request) (*woot.Response, error) {
		return &woot.Response{StatusCode: 200}, nil
	}

	res, err := interceptor(context.Background(), testRequest(), next)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if res.StatusCode != 200 {
		t.Errorf("expected status 200, got %d", res.StatusCode)
	}

	logOutput := buf.String()
	if !strings.Contains(logOutput, "request started") {
		t.Error("expected 'request started' in log output")
	}
	if !strings.Contains(logOutput, "request completed") {
		t.Error("expected 'request completed' in log output")
	}
	if !strings.Contains(logOutput, "contacts.list") {
		t.Error("expected endpoint in log output")
	}
	if !strings.Contains(logOutput, "q=a b") {
		t.Error("expected readable url in log output")
	}
}

func TestLogging_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	interceptor := Logging(logger)

	testErr := &woot.TransportError{Code: woot.CodeServerError, StatusCode: 503, Err: errors.New("unavailable")}
	next := func(ctx context.Context, req *woot.Request) (*woot.Response, error) {
		return nil, testErr
	}

	_, err := interceptor(context.Background(), testRequest(), next)
	if err != testErr {
		t.Errorf("expected the transport error, got %v", err)
	}

	logOutput := buf.String()
	if !strings.Contains(logOutput, "request failed") {
		t.Error("expected 'request failed' in log output")
	}
	if !strings.Contains(logOutput, `"code":"server_error"`) {
		t.Error("expected error code in log output")
	}
	if !strings.Contains(logOutput, `"status":503`) {
		t.Error("expected status in log output")
	}
}

func TestLogging_NilLogger(t *testing.T) {
	interceptor := Logging(nil)

	next := func(ctx context.Context, req *woot.Request) (*woot.Response, error) {
		return &woot.Response{StatusCode: 204}, nil
	}

	if _, err := interceptor(context.Background(), testRequest(), next); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
