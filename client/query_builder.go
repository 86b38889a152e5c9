package client

import (
	"context"
	"maps"
	"slices"

	"github.com/go-gota/gota/dataframe"

	"github.com/DrewBradfordXYZ/tushare-go/core"
)

// QueryBuilder assembles an untyped query: an endpoint name plus a
// parameter mapping. It is a value: every configuration method returns an
// updated copy and leaves the receiver untouched, so a builder can be
// branched freely.
//
// Example:
//
//	base := client.QueryBuilder("daily").Param("ts_code", "000001.SZ")
//	jan, err := base.Params(map[string]string{
//	    "start_date": "20240101",
//	    "end_date":   "20240131",
//	}).Query(ctx)
type QueryBuilder struct {
	client  *Client
	apiName string
	params  map[string]string
	fields  []string
}

// Params merges the given mapping into a copy of the builder's parameters.
// Keys already present are overwritten.
func (b QueryBuilder) Params(params map[string]string) QueryBuilder {
	merged := make(map[string]string, len(b.params)+len(params))
	maps.Copy(merged, b.params)
	maps.Copy(merged, params)
	b.params = merged
	return b
}

// Param sets a single parameter.
func (b QueryBuilder) Param(name, value string) QueryBuilder {
	return b.Params(map[string]string{name: value})
}

// Fields restricts the returned columns. With no fields the service returns
// its default column set for the endpoint.
func (b QueryBuilder) Fields(names ...string) QueryBuilder {
	b.fields = slices.Clone(names)
	return b
}

// APIName returns the endpoint the query is scoped to.
func (b QueryBuilder) APIName() string {
	return b.apiName
}

// ParamMap returns a copy of the parameters that will be sent.
func (b QueryBuilder) ParamMap() map[string]string {
	return maps.Clone(b.params)
}

// FieldList returns a copy of the selected fields.
func (b QueryBuilder) FieldList() []string {
	return slices.Clone(b.fields)
}

// Query executes the request and returns the parsed table.
//
// Failures are reported as *core.TransportError, *core.ServiceError or
// *core.ParseError. No partial table is returned on error. The request is
// sent exactly once.
func (b QueryBuilder) Query(ctx context.Context) (dataframe.DataFrame, error) {
	p, err := b.fetch(ctx)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	return p.table, nil
}

func (b QueryBuilder) fetch(ctx context.Context) (*page, error) {
	p, err := b.client.execute(ctx, b.apiName, b.params, b.fields)
	if err != nil {
		b.client.logger.Failure(b.apiName, core.RequestIDOf(err), err)
		return nil, err
	}
	return p, nil
}
