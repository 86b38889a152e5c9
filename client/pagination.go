// Pagination support for endpoints that honour limit/offset.
//
// tushare caps the number of rows a single call returns (6000 for daily
// bars, fewer for others). Endpoints declared as paged accept limit and
// offset parameters and report has_more when rows remain. Query never pages
// on its own; these helpers are opt-in and issue one Query per page.
//
// Example usage:
//
//	// Iterate over pages
//	for page, err := range client.Daily().TsCode("000001.SZ").Pages(ctx, client.PaginationOptions{}) {
//	    if err != nil { ... }
//	    // process page
//	}
//
//	// Fetch everything into one table
//	all, err := client.Daily().TradeDate("20240115").QueryAll(ctx, 0)
package client

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"strconv"

	"github.com/go-gota/gota/dataframe"

	"github.com/DrewBradfordXYZ/tushare-go/core"
)

// DefaultPageSize is the page size used when none is given.
const DefaultPageSize = 5000

// PaginationOptions controls automatic pagination behavior.
type PaginationOptions struct {
	// PageSize is the limit sent with each request. Zero means DefaultPageSize.
	PageSize int
	// Limit is the maximum number of rows to fetch across all pages.
	// Zero means no limit.
	Limit int
	// Offset is the starting row offset.
	Offset int
}

// Pages returns an iterator over result pages. Iteration stops after the
// first error, when the service reports no more rows, or when Limit rows
// have been yielded.
func (b QueryBuilder) Pages(ctx context.Context, opts PaginationOptions) iter.Seq2[dataframe.DataFrame, error] {
	return func(yield func(dataframe.DataFrame, error) bool) {
		for p, err := range b.pages(ctx, opts) {
			if err != nil {
				yield(dataframe.DataFrame{}, err)
				return
			}
			if !yield(p.table, nil) {
				return
			}
		}
	}
}

// pages walks limit/offset and yields decoded pages, trimmed to opts.Limit.
func (b QueryBuilder) pages(ctx context.Context, opts PaginationOptions) iter.Seq2[*page, error] {
	return func(yield func(*page, error) bool) {
		size := opts.PageSize
		if size <= 0 {
			size = DefaultPageSize
		}
		offset := opts.Offset
		fetched := 0

		for {
			limit := size
			if opts.Limit > 0 {
				limit = min(size, opts.Limit-fetched)
			}
			q := b.Params(map[string]string{
				"limit":  strconv.Itoa(limit),
				"offset": strconv.Itoa(offset),
			})
			p, err := q.fetch(ctx)
			if err != nil {
				yield(nil, err)
				return
			}

			rows := p.table.Nrow()

			// The service may ignore limit; never yield past opts.Limit
			if opts.Limit > 0 && fetched+rows > opts.Limit {
				keep := opts.Limit - fetched
				idx := make([]int, keep)
				for i := range idx {
					idx[i] = i
				}
				p.table = p.table.Subset(idx)
				p.data.Items = p.data.Items[:keep]
				rows = keep
			}

			b.client.logger.Debug("Fetched %s page at offset %d: %d rows", b.apiName, offset, rows)

			if !yield(p, nil) {
				return
			}

			fetched += rows
			if opts.Limit > 0 && fetched >= opts.Limit {
				return
			}
			if !p.hasMore || rows == 0 {
				return
			}
			offset += rows
		}
	}
}

// Paginate fetches pages according to opts and combines them into one table.
// Rows from all pages are gathered first and typed together, so a column
// that is null on one page and numeric on the next stays numeric. Pages that
// disagree on their columns are a *core.ParseError.
func (b QueryBuilder) Paginate(ctx context.Context, opts PaginationOptions) (dataframe.DataFrame, error) {
	var merged *apiData
	requestID := ""

	for p, err := range b.pages(ctx, opts) {
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		switch {
		case merged == nil:
			merged = &apiData{Fields: p.data.Fields}
			requestID = p.requestID
		case len(p.data.Items) == 0:
		case len(merged.Items) == 0:
			merged.Fields = p.data.Fields
		case !slices.Equal(merged.Fields, p.data.Fields):
			return dataframe.DataFrame{}, core.NewParseError(b.apiName, p.requestID,
				fmt.Sprintf("page columns %v differ from %v", p.data.Fields, merged.Fields), nil)
		}
		merged.Items = append(merged.Items, p.data.Items...)
	}

	if merged == nil {
		return dataframe.DataFrame{}, nil
	}
	return buildTable(b.apiName, requestID, merged)
}

// QueryAll fetches all pages and returns them as one table.
func (b QueryBuilder) QueryAll(ctx context.Context, pageSize int) (dataframe.DataFrame, error) {
	return b.Paginate(ctx, PaginationOptions{PageSize: pageSize})
}

// QueryN fetches up to n rows across pages.
func (b QueryBuilder) QueryN(ctx context.Context, n, pageSize int) (dataframe.DataFrame, error) {
	return b.Paginate(ctx, PaginationOptions{PageSize: pageSize, Limit: n})
}
