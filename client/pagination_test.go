package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/DrewBradfordXYZ/tushare-go/core"
)

// pagedService serves total rows of daily bars, honouring limit/offset.
func pagedService(t *testing.T, total int) (*Client, *recorder) {
	t.Helper()
	return newService(t, func(req wireRequest) (int, string) {
		limit, _ := strconv.Atoi(req.Params["limit"])
		offset, _ := strconv.Atoi(req.Params["offset"])
		if limit == 0 {
			limit = total
		}

		var items []string
		for i := offset; i < total && i < offset+limit; i++ {
			items = append(items, fmt.Sprintf(`["000001.SZ","2024%04d",%d]`, i, i))
		}
		hasMore := offset+limit < total
		return http.StatusOK, fmt.Sprintf(
			`{"code":0,"data":{"fields":["ts_code","trade_date","close"],"items":[%s],"has_more":%t}}`,
			strings.Join(items, ","), hasMore)
	})
}

func TestPages(t *testing.T) {
	t.Run("iterates until has_more is false", func(t *testing.T) {
		c, rec := pagedService(t, 5)

		var sizes []int
		for page, err := range c.Daily().TsCode("000001.SZ").Pages(context.Background(), PaginationOptions{PageSize: 2}) {
			if err != nil {
				t.Fatalf("Pages() error = %v", err)
			}
			sizes = append(sizes, page.Nrow())
		}

		if fmt.Sprint(sizes) != "[2 2 1]" {
			t.Errorf("page sizes = %v, want [2 2 1]", sizes)
		}

		reqs := rec.all()
		if len(reqs) != 3 {
			t.Fatalf("requests = %d, want 3", len(reqs))
		}
		for i, want := range []string{"0", "2", "4"} {
			if reqs[i].Params["offset"] != want {
				t.Errorf("request %d offset = %q, want %s", i, reqs[i].Params["offset"], want)
			}
			if reqs[i].Params["limit"] != "2" {
				t.Errorf("request %d limit = %q, want 2", i, reqs[i].Params["limit"])
			}
			if reqs[i].Params["ts_code"] != "000001.SZ" {
				t.Errorf("request %d lost ts_code", i)
			}
		}
	})

	t.Run("stops early when the loop breaks", func(t *testing.T) {
		c, rec := pagedService(t, 10)

		for range c.Daily().Pages(context.Background(), PaginationOptions{PageSize: 2}) {
			break
		}
		if n := len(rec.all()); n != 1 {
			t.Errorf("requests = %d, want 1", n)
		}
	})

	t.Run("starts at the given offset", func(t *testing.T) {
		c, rec := pagedService(t, 10)

		df, err := c.Daily().QueryBuilder().Paginate(context.Background(), PaginationOptions{PageSize: 5, Offset: 7})
		if err != nil {
			t.Fatalf("Paginate() error = %v", err)
		}
		if df.Nrow() != 3 {
			t.Errorf("Nrow() = %d, want 3", df.Nrow())
		}
		if rec.all()[0].Params["offset"] != "7" {
			t.Errorf("first offset = %q, want 7", rec.all()[0].Params["offset"])
		}
	})

	t.Run("yields the error and stops", func(t *testing.T) {
		c, _ := newService(t, okBody(`{"code":40203,"msg":"too many requests"}`))

		var errs int
		for _, err := range c.Daily().Pages(context.Background(), PaginationOptions{}) {
			if err == nil {
				t.Fatal("Pages() yielded a page, want an error")
			}
			errs++
		}
		if errs != 1 {
			t.Errorf("errors yielded = %d, want 1", errs)
		}
	})

	t.Run("default page size", func(t *testing.T) {
		c, rec := pagedService(t, 3)

		if _, err := c.Daily().QueryAll(context.Background(), 0); err != nil {
			t.Fatalf("QueryAll() error = %v", err)
		}
		if got := rec.last(t).Params["limit"]; got != strconv.Itoa(DefaultPageSize) {
			t.Errorf("limit = %q, want %d", got, DefaultPageSize)
		}
	})
}

func TestQueryAll(t *testing.T) {
	c, _ := pagedService(t, 7)

	df, err := c.Daily().TsCode("000001.SZ").QueryAll(context.Background(), 3)
	if err != nil {
		t.Fatalf("QueryAll() error = %v", err)
	}
	if df.Nrow() != 7 {
		t.Fatalf("Nrow() = %d, want 7", df.Nrow())
	}
	for i := 0; i < 7; i++ {
		if got := df.Col("close").Elem(i).Float(); got != float64(i) {
			t.Errorf("close[%d] = %v, want %d", i, got, i)
		}
	}
}

func TestQueryN(t *testing.T) {
	c, rec := pagedService(t, 100)

	df, err := c.Daily().QueryBuilder().QueryN(context.Background(), 5, 2)
	if err != nil {
		t.Fatalf("QueryN() error = %v", err)
	}
	if df.Nrow() != 5 {
		t.Errorf("Nrow() = %d, want 5", df.Nrow())
	}
	reqs := rec.all()
	if len(reqs) != 3 {
		t.Fatalf("requests = %d, want 3", len(reqs))
	}
	for i, want := range []string{"2", "2", "1"} {
		if reqs[i].Params["limit"] != want {
			t.Errorf("request %d limit = %q, want %s", i, reqs[i].Params["limit"], want)
		}
	}
}

func TestPaginateEmpty(t *testing.T) {
	c, _ := pagedService(t, 0)

	df, err := c.Daily().QueryAll(context.Background(), 10)
	if err != nil {
		t.Fatalf("QueryAll() error = %v", err)
	}
	if df.Nrow() != 0 {
		t.Errorf("Nrow() = %d, want 0", df.Nrow())
	}
}

func TestPaginateError(t *testing.T) {
	var calls atomic.Int32
	c, _ := newService(t, func(req wireRequest) (int, string) {
		if calls.Add(1) == 1 {
			return http.StatusOK, `{"code":0,"data":{"fields":["a"],"items":[["x"]],"has_more":true}}`
		}
		return http.StatusOK, `{"code":0,"data":{"fields":["a"],"items":[["x","y"]],"has_more":false}}`
	})

	df, err := c.Daily().QueryAll(context.Background(), 1)
	if !core.IsParseError(err) {
		t.Fatalf("QueryAll() error = %v, want ParseError", err)
	}
	if df.Nrow() != 0 {
		t.Error("QueryAll() returned rows alongside an error")
	}
}

// twoPages serves first, then second, each as one page of a paged endpoint.
func twoPages(t *testing.T, fields, first, second string) *Client {
	t.Helper()
	var calls atomic.Int32
	c, _ := newService(t, func(req wireRequest) (int, string) {
		if calls.Add(1) == 1 {
			return http.StatusOK, fmt.Sprintf(`{"code":0,"data":{"fields":%s,"items":%s,"has_more":true}}`, fields, first)
		}
		return http.StatusOK, fmt.Sprintf(`{"code":0,"data":{"fields":%s,"items":%s,"has_more":false}}`, fields, second)
	})
	return c
}

func TestPaginateTypesColumnsAcrossPages(t *testing.T) {
	t.Run("null page then numbers", func(t *testing.T) {
		c := twoPages(t, `["ts_code","close"]`, `[["A",null]]`, `[["B",12.34]]`)

		df, err := c.Daily().QueryAll(context.Background(), 1)
		if err != nil {
			t.Fatalf("QueryAll() error = %v", err)
		}
		if got := string(df.Col("close").Type()); got != "float" {
			t.Fatalf("close type = %s, want float", got)
		}
		if !df.Col("close").Elem(0).IsNA() {
			t.Error("close[0] should be missing")
		}
		if got := df.Col("close").Elem(1).Float(); got != 12.34 {
			t.Errorf("close[1] = %v, want 12.34", got)
		}
	})

	t.Run("numbers then text", func(t *testing.T) {
		c := twoPages(t, `["v"]`, `[[1.5]]`, `[["N/A"]]`)

		df, err := c.Daily().QueryAll(context.Background(), 1)
		if err != nil {
			t.Fatalf("QueryAll() error = %v", err)
		}
		if got := string(df.Col("v").Type()); got != "string" {
			t.Fatalf("v type = %s, want string", got)
		}
		if got := df.Col("v").Records(); fmt.Sprint(got) != "[1.5 N/A]" {
			t.Errorf("v = %v, want [1.5 N/A]", got)
		}
	})

	t.Run("pages with different columns", func(t *testing.T) {
		var calls atomic.Int32
		c, _ := newService(t, func(req wireRequest) (int, string) {
			if calls.Add(1) == 1 {
				return http.StatusOK, `{"code":0,"data":{"fields":["a"],"items":[["x"]],"has_more":true}}`
			}
			return http.StatusOK, `{"code":0,"data":{"fields":["b"],"items":[["y"]],"has_more":false}}`
		})

		_, err := c.Daily().QueryAll(context.Background(), 1)
		if !core.IsParseError(err) {
			t.Errorf("QueryAll() error = %v, want ParseError", err)
		}
	})
}
