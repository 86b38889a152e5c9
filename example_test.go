package tushare_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/oapi-codegen/runtime/types"

	"github.com/DrewBradfordXYZ/tushare-go"
)

// Create a basic client. The token is sent with every query.
func ExampleNew() {
	ts := tushare.New("your-token")

	// Use ts to make queries
	_ = ts
}

// Create a client with throttling, a custom timeout and debug logging.
func ExampleNew_withOptions() {
	ts := tushare.New("your-token",
		tushare.WithRequestsPerMinute(200), // basic account quota
		tushare.WithTimeout(10*time.Second),
		tushare.WithDebug(true),
	)
	_ = ts
}

// Query a declared endpoint through its typed builder.
func ExampleClient_StockBasic() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"request_id":"r1","code":0,"msg":"","data":{"fields":["ts_code","list_status"],"items":[["000001.SZ","L"]],"has_more":false}}`)
	}))
	defer srv.Close()

	ts := tushare.New("your-token", tushare.WithBaseURL(srv.URL))

	df, err := ts.StockBasic().
		TsCode("000001.SZ").
		ListStatus("L").
		Query(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(df.Names())
	fmt.Println(df.Col("ts_code").Elem(0).String(), df.Col("list_status").Elem(0).String())
	// Output:
	// [ts_code list_status]
	// 000001.SZ L
}

// Query an endpoint that has no typed builder.
func ExampleClient_QueryBuilder() {
	ts := tushare.New("your-token")

	df, err := ts.QueryBuilder("stk_limit").
		Params(map[string]string{"trade_date": "20240115"}).
		Query(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(df.Nrow())
}

// Date parameters also accept a types.Date.
func ExampleClient_Daily() {
	ts := tushare.New("your-token")

	start := types.Date{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	q := ts.Daily().TsCode("000001.SZ").StartDateOn(start).QueryBuilder()

	fmt.Println(q.ParamMap()["start_date"])
	// Output:
	// 20240101
}

// Fetch every page of a paged endpoint.
func ExampleClient_Daily_queryAll() {
	ts := tushare.New("your-token")

	df, err := ts.Daily().TradeDate("20240115").QueryAll(context.Background(), 0)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d bars\n", df.Nrow())
}

// Choose the endpoint at run time and check parameters against the schema.
func ExampleClient_Endpoint() {
	ts := tushare.New("your-token")

	_, err := ts.Endpoint("daily").Param("tscode", "000001.SZ").Query(context.Background())
	fmt.Println(err)
	// Output:
	// unknown parameter "tscode" for endpoint "daily" (did you mean "ts_code"?)
}

// Handle different error types.
func ExampleServiceError() {
	ts := tushare.New("your-token")

	_, err := ts.StockBasic().Query(context.Background())
	if err != nil {
		var svcErr *tushare.ServiceError
		var parseErr *tushare.ParseError
		var transportErr *tushare.TransportError

		switch {
		case errors.As(err, &svcErr) && svcErr.IsRateLimited():
			fmt.Println("Per-minute quota exhausted, slow down")
		case errors.As(err, &svcErr):
			fmt.Printf("Service rejected the query: %s (code %d)\n", svcErr.Message, svcErr.Code)
		case errors.As(err, &parseErr):
			fmt.Printf("Malformed response: %v\n", parseErr)
		case errors.As(err, &transportErr):
			fmt.Printf("Network failure: %v\n", transportErr.Unwrap())
		default:
			fmt.Printf("Error: %v\n", err)
		}
	}
}

// List the declared endpoints.
func ExampleEndpoints() {
	for _, ep := range tushare.Endpoints()[:3] {
		fmt.Println(ep.Name)
	}
	// Output:
	// stock_basic
	// trade_cal
	// daily
}
