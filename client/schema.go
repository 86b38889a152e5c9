package client

import (
	"context"
	_ "embed"
	"maps"
	"slices"

	"github.com/go-gota/gota/dataframe"

	"github.com/DrewBradfordXYZ/tushare-go/core"
)

// endpointsYAML is the endpoint schema the typed builders are generated from.
//
//go:embed endpoints.yaml
var endpointsYAML []byte

var builtinSchema = mustResolveSchema(endpointsYAML)

func mustResolveSchema(data []byte) *core.ResolvedSchema {
	s, err := core.ParseSchema(data)
	if err != nil {
		panic("client: embedded endpoint schema: " + err.Error())
	}
	return core.ResolveSchema(s)
}

// Schema returns the declared endpoint schema.
func Schema() *core.ResolvedSchema {
	return builtinSchema
}

// Endpoints returns the declared endpoints in schema order.
func (c *Client) Endpoints() []core.EndpointSchema {
	return builtinSchema.Original.Endpoints
}

// EndpointBuilder is the runtime counterpart of the generated typed
// builders. It accepts parameters by name and checks them against the
// endpoint's declared vocabulary when they are set, instead of at compile
// time. Use it when the endpoint is only known at run time; prefer the
// typed builders otherwise.
//
// Like the generated builders it is a value, and the first error sticks:
// later calls are no-ops and Query returns that error.
type EndpointBuilder struct {
	ep    core.EndpointSchema
	query QueryBuilder
	err   error
}

// Endpoint starts a schema-checked query for a declared endpoint.
//
// Example:
//
//	df, err := client.Endpoint("daily").
//	    Param("ts_code", "000001.SZ").
//	    Param("start_date", "2024-01-01"). // normalized to 20240101
//	    Query(ctx)
func (c *Client) Endpoint(apiName string) EndpointBuilder {
	b := EndpointBuilder{query: c.QueryBuilder(apiName)}

	ep, err := builtinSchema.Lookup(apiName)
	if err != nil {
		b.err = err
		return b
	}
	b.ep = ep
	return b
}

// Param sets one parameter. Names outside the endpoint's vocabulary record a
// *core.SchemaError. Date parameters accept YYYY-MM-DD and are normalized to
// YYYYMMDD.
func (b EndpointBuilder) Param(name, value string) EndpointBuilder {
	if b.err != nil {
		return b
	}
	if !b.ep.HasParam(name) {
		b.err = core.NewUnknownParamError(b.ep.Name, name, b.ep.Params)
		return b
	}
	if b.ep.IsDate(name) {
		value = core.NormalizeDate(value)
	}
	b.query = b.query.Param(name, value)
	return b
}

// Params sets several parameters, checking each one in name order.
func (b EndpointBuilder) Params(params map[string]string) EndpointBuilder {
	for _, name := range slices.Sorted(maps.Keys(params)) {
		b = b.Param(name, params[name])
	}
	return b
}

// Fields restricts the returned columns.
func (b EndpointBuilder) Fields(names ...string) EndpointBuilder {
	if b.err != nil {
		return b
	}
	b.query = b.query.Fields(names...)
	return b
}

// Schema returns the endpoint's schema entry.
func (b EndpointBuilder) Schema() core.EndpointSchema {
	return b.ep
}

// Err returns the first error recorded while building.
func (b EndpointBuilder) Err() error {
	return b.err
}

// QueryBuilder converts to an untyped QueryBuilder.
func (b EndpointBuilder) QueryBuilder() (QueryBuilder, error) {
	if b.err != nil {
		return QueryBuilder{}, b.err
	}
	return b.query, nil
}

// Query executes the request and returns the parsed table.
func (b EndpointBuilder) Query(ctx context.Context) (dataframe.DataFrame, error) {
	if b.err != nil {
		return dataframe.DataFrame{}, b.err
	}
	return b.query.Query(ctx)
}

// QueryAll pages through the endpoint with limit/offset and returns one
// combined table. Only endpoints declared as paged accept this.
func (b EndpointBuilder) QueryAll(ctx context.Context, pageSize int) (dataframe.DataFrame, error) {
	if b.err != nil {
		return dataframe.DataFrame{}, b.err
	}
	if !b.ep.Paged {
		return dataframe.DataFrame{}, &core.SchemaError{Message: "endpoint " + b.ep.Name + " does not support paging"}
	}
	return b.query.QueryAll(ctx, pageSize)
}
