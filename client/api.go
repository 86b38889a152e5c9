package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/google/uuid"

	"github.com/DrewBradfordXYZ/tushare-go/core"
)

// apiRequest is the JSON body tushare expects on every call.
type apiRequest struct {
	APIName string            `json:"api_name"`
	Token   string            `json:"token"`
	Params  map[string]string `json:"params"`
	Fields  string            `json:"fields"`
}

// apiResponse is the envelope of every tushare answer. A non-zero Code
// means the request was refused and Msg says why.
type apiResponse struct {
	RequestID string   `json:"request_id"`
	Code      int      `json:"code"`
	Msg       string   `json:"msg"`
	Data      *apiData `json:"data"`
}

// apiData is the tabular payload: column names plus row values.
type apiData struct {
	Fields  []string `json:"fields"`
	Items   [][]any  `json:"items"`
	HasMore bool     `json:"has_more"`
}

// page is one decoded response. data keeps the raw rows so pages can be
// merged before column types are inferred.
type page struct {
	table     dataframe.DataFrame
	data      *apiData
	hasMore   bool
	requestID string
}

// execute performs a single POST for the query and decodes the answer.
// It never retries.
func (c *Client) execute(ctx context.Context, apiName string, params map[string]string, fields []string) (*page, error) {
	traceID := uuid.NewString()

	waitStart := time.Now()
	if err := c.throttle.Acquire(ctx); err != nil {
		return nil, core.NewTransportError(apiName, traceID, err)
	}
	c.logger.Throttled(apiName, time.Since(waitStart))

	if params == nil {
		params = map[string]string{}
	}
	body, err := json.Marshal(apiRequest{
		APIName: apiName,
		Token:   c.token,
		Params:  params,
		Fields:  strings.Join(fields, ","),
	})
	if err != nil {
		return nil, core.NewTransportError(apiName, traceID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, core.NewTransportError(apiName, traceID, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Request(apiName, traceID, len(params))
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, core.NewTransportError(apiName, traceID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, core.ParseErrorResponse(resp, apiName, traceID)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, core.NewTransportError(apiName, traceID, err)
	}

	var out apiResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, core.NewParseError(apiName, traceID, "decoding response body", err)
	}

	requestID := out.RequestID
	if requestID == "" {
		requestID = traceID
	}

	if out.Code != 0 {
		return nil, core.NewServiceError(apiName, requestID, out.Code, out.Msg)
	}
	if out.Data == nil {
		return nil, core.NewParseError(apiName, requestID, "response carries no data", nil)
	}

	table, err := buildTable(apiName, requestID, out.Data)
	if err != nil {
		return nil, err
	}

	c.logger.Timing(apiName, traceID, table.Nrow(), time.Since(start))

	return &page{
		table:     table,
		data:      out.Data,
		hasMore:   out.Data.HasMore,
		requestID: requestID,
	}, nil
}
