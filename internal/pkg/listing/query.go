package listing

import (
	"fmt"
	"net/url"
	"slices"
	"sort"
	"strconv"
	"strings"

	"parceltrack/internal/pkg/errs"
)

const (
	DefaultPage  = 1
	DefaultLimit = 25

	// MaxLimit caps the page size a client can ask for.
	MaxLimit = 100
	// MaxPage keeps Offset within range for any accepted limit.
	MaxPage = 1 << 31

	paramSelect = "select"
	paramSort   = "sort"
	paramPage   = "page"
	paramLimit  = "limit"
	paramSearch = "search"
)

// Operator is the comparison a Condition applies.
type Operator string

const (
	OpEq       Operator = "eq"
	OpGt       Operator = "gt"
	OpGte      Operator = "gte"
	OpLt       Operator = "lt"
	OpLte      Operator = "lte"
	OpIn       Operator = "in"
	OpContains Operator = "contains"
)

var comparisonOperators = map[string]Operator{
	"gt":  OpGt,
	"gte": OpGte,
	"lt":  OpLt,
	"lte": OpLte,
	"in":  OpIn,
}

// Condition is one typed predicate on a whitelisted field.
// Values holds one element, or several for OpIn.
type Condition struct {
	Field  string
	Op     Operator
	Values []any
}

// Eq builds an equality condition.
func Eq(field string, value any) Condition {
	return Condition{Field: field, Op: OpEq, Values: []any{value}}
}

// In builds a membership condition.
func In(field string, values ...any) Condition {
	return Condition{Field: field, Op: OpIn, Values: values}
}

// Filter matches rows satisfying every condition of All and, when AnyOf is not empty,
// at least one condition of AnyOf.
type Filter struct {
	All   []Condition
	AnyOf []Condition
}

// SortKey orders by Field, descending when Desc is set.
type SortKey struct {
	Field string
	Desc  bool
}

// Query is a parsed list request.
type Query struct {
	Filter Filter
	Sort   []SortKey
	Page   Page
}

// Where returns a copy of q narrowed by the given conditions.
func (q Query) Where(conds ...Condition) Query {
	q.Filter.All = append(slices.Clone(q.Filter.All), conds...)
	return q
}

// NewQuery returns an unfiltered query for the first page using the schema's default sort.
func NewQuery(schema Schema) Query {
	return Query{Sort: slices.Clone(schema.DefaultSort), Page: NewPage(0, 0)}
}

// ParseQuery validates values against schema and builds a Query.
//
// Example:
//
//	q, err := listing.ParseQuery(url.Values{"weight[gte]": {"5"}, "sort": {"-createdAt"}, "limit": {"2"}}, schema)
func ParseQuery(values url.Values, schema Schema) (Query, error) {
	q := Query{Page: NewPage(atoi(values.Get(paramPage)), atoi(values.Get(paramLimit)))}

	sortKeys, err := parseSort(values.Get(paramSort), schema)
	if err != nil {
		return Query{}, err
	}
	q.Sort = sortKeys

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		switch key {
		case paramSelect, paramSort, paramPage, paramLimit:
			continue
		case paramSearch:
			if len(schema.Search) > 0 {
				q.Filter.AnyOf = searchConditions(values.Get(key), schema)
				continue
			}
		}

		for _, raw := range values[key] {
			cond, skip, err := parseCondition(key, raw, schema)
			if err != nil {
				return Query{}, err
			}
			if !skip {
				q.Filter.All = append(q.Filter.All, cond)
			}
		}
	}

	return q, nil
}

func parseCondition(key, raw string, schema Schema) (Condition, bool, error) {
	path, op, err := parseKey(key)
	if err != nil {
		return Condition{}, false, err
	}

	name, field, ok := schema.resolve(path)
	if !ok {
		return Condition{}, false, errs.NewValueIsInvalidErrorWithCause(path, fmt.Errorf("%q is not a filterable field", path))
	}
	if schema.Wildcard != "" && strings.EqualFold(strings.TrimSpace(raw), schema.Wildcard) {
		return Condition{}, true, nil
	}
	if op == OpEq && field.Contains {
		op = OpContains
	}
	if !field.supports(op) {
		return Condition{}, false, errs.NewValueIsInvalidErrorWithCause(path, fmt.Errorf("operator %s is not supported", op))
	}

	parts := []string{raw}
	if op == OpIn {
		parts = strings.Split(raw, ",")
	}

	cond := Condition{Field: name, Op: op, Values: make([]any, 0, len(parts))}
	for _, part := range parts {
		if op == OpContains {
			cond.Values = append(cond.Values, strings.TrimSpace(part))
			continue
		}
		v, err := field.parse(path, part)
		if err != nil {
			return Condition{}, false, err
		}
		cond.Values = append(cond.Values, v)
	}
	return cond, false, nil
}

func searchConditions(term string, schema Schema) []Condition {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	conds := make([]Condition, 0, len(schema.Search))
	for _, field := range schema.Search {
		conds = append(conds, Condition{Field: field, Op: OpContains, Values: []any{term}})
	}
	return conds
}

func parseSort(raw string, schema Schema) ([]SortKey, error) {
	if strings.TrimSpace(raw) == "" {
		return slices.Clone(schema.DefaultSort), nil
	}

	var keys []SortKey
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		desc := strings.HasPrefix(part, "-")
		name, _, ok := schema.resolve(strings.TrimPrefix(part, "-"))
		if !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause(paramSort, fmt.Errorf("%q is not a sortable field", part))
		}
		keys = append(keys, SortKey{Field: name, Desc: desc})
	}
	if len(keys) == 0 {
		return slices.Clone(schema.DefaultSort), nil
	}
	return keys, nil
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
