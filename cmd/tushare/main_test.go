package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrewBradfordXYZ/tushare-go/export"
	"github.com/DrewBradfordXYZ/tushare-go/internal/config"
)

type capturedRequest struct {
	APIName string            `json:"api_name"`
	Token   string            `json:"token"`
	Params  map[string]string `json:"params"`
	Fields  string            `json:"fields"`
}

// fakeService answers every request with the handler's body and records
// what it received.
type fakeService struct {
	*httptest.Server
	calls atomic.Int32

	mu       sync.Mutex
	requests []capturedRequest
}

func (fs *fakeService) received() []capturedRequest {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]capturedRequest(nil), fs.requests...)
}

func newFakeService(t *testing.T, respond func(req capturedRequest) string) *fakeService {
	t.Helper()
	fs := &fakeService{}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fs.calls.Add(1)
		var req capturedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		fs.mu.Lock()
		fs.requests = append(fs.requests, req)
		fs.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, respond(req))
	}))
	t.Cleanup(fs.Close)
	return fs
}

func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, k := range []string{"TUSHARE_TOKEN", "TUSHARE_BASE_URL", "TUSHARE_TIMEOUT", "TUSHARE_LOG_LEVEL", "TUSHARE_RPM", "TUSHARE_THROTTLE", "TUSHARE_LOG_FILE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const stockBasicBody = `{"request_id":"r1","code":0,"msg":"","data":{"fields":["ts_code","list_status"],"items":[["000001.SZ","L"]],"has_more":false}}`

func TestQueryCSV(t *testing.T) {
	isolate(t)
	svc := newFakeService(t, func(capturedRequest) string { return stockBasicBody })

	out, err := run(t, "--token", "secret", "--base-url", svc.URL, "--log-level", "error",
		"query", "stock_basic", "-p", "list_status=L", "--fields", "ts_code,list_status", "--format", "csv")
	require.NoError(t, err)

	assert.Equal(t, "ts_code,list_status\n000001.SZ,L\n", out)

	require.Len(t, svc.received(), 1)
	req := svc.received()[0]
	assert.Equal(t, "stock_basic", req.APIName)
	assert.Equal(t, "secret", req.Token)
	assert.Equal(t, map[string]string{"list_status": "L"}, req.Params)
	assert.Equal(t, "ts_code,list_status", req.Fields)
}

func TestQueryNormalizesDates(t *testing.T) {
	isolate(t)
	svc := newFakeService(t, func(capturedRequest) string {
		return `{"code":0,"data":{"fields":["ts_code"],"items":[],"has_more":false}}`
	})

	_, err := run(t, "--token", "secret", "--base-url", svc.URL, "--log-level", "error",
		"query", "daily", "-p", "ts_code=000001.SZ", "-p", "start_date=2024-01-02")
	require.NoError(t, err)

	require.Len(t, svc.received(), 1)
	assert.Equal(t, "20240102", svc.received()[0].Params["start_date"])
}

func TestQueryRejectsUnknownParam(t *testing.T) {
	isolate(t)
	svc := newFakeService(t, func(capturedRequest) string { return stockBasicBody })

	_, err := run(t, "--token", "secret", "--base-url", svc.URL, "--log-level", "error",
		"query", "stock_basic", "-p", "tscode=000001.SZ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown parameter "tscode"`)
	assert.Equal(t, int32(0), svc.calls.Load())
}

func TestQueryRawSkipsSchema(t *testing.T) {
	isolate(t)
	svc := newFakeService(t, func(capturedRequest) string { return stockBasicBody })

	_, err := run(t, "--token", "secret", "--base-url", svc.URL, "--log-level", "error",
		"query", "stk_limit", "--raw", "-p", "trade_date=20240115")
	require.NoError(t, err)

	require.Len(t, svc.received(), 1)
	assert.Equal(t, "stk_limit", svc.received()[0].APIName)
}

func TestQueryAllRequiresPagedEndpoint(t *testing.T) {
	isolate(t)
	svc := newFakeService(t, func(capturedRequest) string { return stockBasicBody })

	_, err := run(t, "--token", "secret", "--base-url", svc.URL, "--log-level", "error",
		"query", "stock_basic", "--all")
	require.Error(t, err)
	assert.Equal(t, int32(0), svc.calls.Load())
}

func TestQueryAllPages(t *testing.T) {
	isolate(t)
	svc := newFakeService(t, func(req capturedRequest) string {
		if req.Params["offset"] == "0" {
			return `{"code":0,"data":{"fields":["ts_code","close"],"items":[["000001.SZ",10.1],["000001.SZ",10.2]],"has_more":true}}`
		}
		return `{"code":0,"data":{"fields":["ts_code","close"],"items":[["000001.SZ",10.3]],"has_more":false}}`
	})

	out, err := run(t, "--token", "secret", "--base-url", svc.URL, "--log-level", "error",
		"query", "daily", "-p", "ts_code=000001.SZ", "--all", "--page-size", "2", "--format", "json")
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	assert.Len(t, records, 3)

	require.Len(t, svc.received(), 2)
	assert.Equal(t, "2", svc.received()[0].Params["limit"])
	assert.Equal(t, "2", svc.received()[1].Params["offset"])
}

func TestQueryServiceError(t *testing.T) {
	isolate(t)
	svc := newFakeService(t, func(capturedRequest) string {
		return `{"request_id":"r2","code":2002,"msg":"invalid token","data":null}`
	})

	_, err := run(t, "--token", "bad", "--base-url", svc.URL, "--log-level", "error",
		"query", "stock_basic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}

func TestQueryRequiresToken(t *testing.T) {
	isolate(t)

	_, err := run(t, "--log-level", "error", "query", "stock_basic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TUSHARE_TOKEN")
}

func TestQueryWritesFile(t *testing.T) {
	isolate(t)
	svc := newFakeService(t, func(capturedRequest) string { return stockBasicBody })
	path := filepath.Join(t.TempDir(), "stocks.json")

	out, err := run(t, "--token", "secret", "--base-url", svc.URL, "--log-level", "error",
		"query", "stock_basic", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"ts_code":"000001.SZ"`)
}

func TestEndpoints(t *testing.T) {
	isolate(t)

	out, err := run(t, "--log-level", "error", "endpoints", "--format", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "name,params,dates,paged,doc", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "stock_basic,"))
}

func TestParseParams(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    map[string]string
		wantErr bool
	}{
		{"empty", nil, map[string]string{}, false},
		{"pairs", []string{"a=1", "b=2"}, map[string]string{"a": "1", "b": "2"}, false},
		{"last wins", []string{"a=1", "a=2"}, map[string]string{"a": "2"}, false},
		{"empty value", []string{"a="}, map[string]string{"a": ""}, false},
		{"value with equals", []string{"a=x=y"}, map[string]string{"a": "x=y"}, false},
		{"missing equals", []string{"a"}, nil, true},
		{"missing name", []string{"=1"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseParams(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name       string
		flag       string
		output     string
		configured string
		want       export.Format
	}{
		{"flag wins", "json", "out.csv", "table", export.FormatJSON},
		{"from extension", "", "out.parquet", "table", export.FormatParquet},
		{"config fallback", "", "", "csv", export.FormatCSV},
		{"unknown extension", "", "out.dat", "json", export.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveFormat(tt.flag, tt.output, tt.configured)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("console", func(t *testing.T) {
		logger := newLogger(config.LoggingConfig{Level: "warn"})
		require.NotNil(t, logger)
		logger.Warn().Msg("console logger ready")
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "tushare.log")
		logger := newLogger(config.LoggingConfig{Level: "info", File: path})
		require.NotNil(t, logger)
		logger.Info().Str("api_name", "daily").Msg("file logger ready")
	})
}
