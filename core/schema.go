// Endpoint schema types.
//
// The endpoint schema is the single source of truth for which endpoints the
// SDK knows about and which parameters each one accepts. The same file feeds
// the builder generator (compile-time checked builders) and the runtime
// EndpointBuilder (run-time checked builders).
//
// Example schema (YAML):
//
//	endpoints:
//	  - name: stock_basic
//	    doc: https://tushare.pro/document/2?doc_id=25
//	    params: [ts_code, name, market, list_status, exchange, is_hs]
//	  - name: daily
//	    doc: https://tushare.pro/document/2?doc_id=27
//	    params: [ts_code, trade_date, start_date, end_date]
//	    dates: [trade_date, start_date, end_date]
package core

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Schema lists the declared endpoints.
type Schema struct {
	Endpoints []EndpointSchema `yaml:"endpoints" json:"endpoints"`
}

// EndpointSchema declares one endpoint and its parameter vocabulary.
type EndpointSchema struct {
	Name        string   `yaml:"name" json:"name"`
	Doc         string   `yaml:"doc" json:"doc"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Params      []string `yaml:"params" json:"params"`
	Dates       []string `yaml:"dates,omitempty" json:"dates,omitempty"`
	Paged       bool     `yaml:"paged,omitempty" json:"paged,omitempty"`
}

// HasParam reports whether name is part of the endpoint's vocabulary.
func (e EndpointSchema) HasParam(name string) bool {
	return slices.Contains(e.Params, name)
}

// IsDate reports whether the parameter carries a YYYYMMDD date.
func (e EndpointSchema) IsDate(name string) bool {
	return slices.Contains(e.Dates, name)
}

// ResolvedSchema contains a precomputed lookup map for efficient resolution.
type ResolvedSchema struct {
	Original *Schema
	byName   map[string]EndpointSchema
}

// ParseSchema decodes and validates a YAML endpoint schema.
func ParseSchema(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding endpoint schema: %w", err)
	}
	if err := ValidateSchema(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ValidateSchema checks names are present and unique, and date parameters
// are declared parameters.
func ValidateSchema(s *Schema) error {
	seen := make(map[string]bool)
	for _, ep := range s.Endpoints {
		if ep.Name == "" {
			return &SchemaError{Message: "endpoint with empty name"}
		}
		if seen[ep.Name] {
			return &SchemaError{Message: fmt.Sprintf("duplicate endpoint %q", ep.Name)}
		}
		seen[ep.Name] = true

		params := make(map[string]bool)
		for _, p := range ep.Params {
			if p == "" {
				return &SchemaError{Message: fmt.Sprintf("endpoint %q has an empty parameter name", ep.Name)}
			}
			if params[p] {
				return &SchemaError{Message: fmt.Sprintf("endpoint %q declares %q twice", ep.Name, p)}
			}
			params[p] = true
		}
		for _, d := range ep.Dates {
			if !params[d] {
				return &SchemaError{Message: fmt.Sprintf("endpoint %q marks undeclared parameter %q as a date", ep.Name, d)}
			}
		}
	}
	return nil
}

// ResolveSchema builds lookup maps from a schema.
func ResolveSchema(s *Schema) *ResolvedSchema {
	if s == nil {
		return nil
	}
	r := &ResolvedSchema{
		Original: s,
		byName:   make(map[string]EndpointSchema, len(s.Endpoints)),
	}
	for _, ep := range s.Endpoints {
		r.byName[ep.Name] = ep
	}
	return r
}

// Lookup returns the declared endpoint with the given name.
func (r *ResolvedSchema) Lookup(apiName string) (EndpointSchema, error) {
	ep, ok := r.byName[apiName]
	if !ok {
		return EndpointSchema{}, NewUnknownEndpointError(apiName, r.Names())
	}
	return ep, nil
}

// Names returns the declared endpoint names, sorted.
func (r *ResolvedSchema) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// findSimilar finds the closest candidate to input, for "did you mean"
// suggestions. Returns "" when nothing is within three edits.
func findSimilar(input string, candidates []string) string {
	const maxDistance = 3
	inputLower := strings.ToLower(input)

	var bestMatch string
	bestDistance := maxDistance + 1

	for _, candidate := range candidates {
		distance := levenshteinDistance(inputLower, strings.ToLower(candidate))
		if distance < bestDistance {
			bestDistance = distance
			bestMatch = candidate
		}
	}

	if bestDistance <= maxDistance {
		return bestMatch
	}
	return ""
}

// levenshteinDistance calculates the Levenshtein distance between two strings.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Two rows are enough: the previous and the current
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		for j := 1; j <= len(a); j++ {
			if b[i-1] == a[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = min(
					prev[j-1]+1, // substitution
					curr[j-1]+1, // insertion
					prev[j]+1,   // deletion
				)
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(a)]
}
