package domain

import (
	"fmt"
	"slices"
	"strings"

	"scrapbook/errors"

	"github.com/samber/lo"
)

type Operator string

const (
	OpEqual              Operator = "=="
	OpNotEqual           Operator = "!="
	OpLessThan           Operator = "<"
	OpLessThanOrEqual    Operator = "<="
	OpGreaterThan        Operator = ">"
	OpGreaterThanOrEqual Operator = ">="
)

func (o Operator) valid() bool {
	switch o {
	case OpEqual, OpNotEqual, OpLessThan, OpLessThanOrEqual, OpGreaterThan, OpGreaterThanOrEqual:
		return true
	}
	return false
}

// inequality operators restrict which field a query may be ordered on.
func (o Operator) inequality() bool {
	return o != OpEqual
}

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

type Filter struct {
	Field    string
	Operator Operator
	Value    any
}

type Ordering struct {
	Field     string
	Direction Direction
}

// Query is an immutable, backend-agnostic description of a collection read:
// conjunctive filters, at most one ordering and an optional limit.
// Every builder method returns a new value so a query can be shared and reused.
type Query struct {
	filters   []Filter
	orderings []Ordering
	limit     int
	hasLimit  bool
}

func NewQuery() Query { return Query{} }

func (q Query) Where(field string, op Operator, value any) Query {
	q.filters = append(slices.Clone(q.filters), Filter{Field: field, Operator: op, Value: value})
	return q
}

// OrderBy adds an ordering. Only one is supported; a second one makes
// the query invalid rather than silently replacing the first.
func (q Query) OrderBy(field string, direction Direction) Query {
	q.orderings = append(slices.Clone(q.orderings), Ordering{Field: field, Direction: direction})
	return q
}

func (q Query) Limit(n int) Query {
	q.limit = n
	q.hasLimit = true
	return q
}

func (q Query) Filters() []Filter { return slices.Clone(q.filters) }

func (q Query) Ordering() (Ordering, bool) {
	if len(q.orderings) == 0 {
		return Ordering{}, false
	}
	return q.orderings[0], true
}

func (q Query) MaxResults() (int, bool) { return q.limit, q.hasLimit }

// Validate reports combinations a document backend cannot serve.
func (q Query) Validate() error {
	inequalityFields := map[string]struct{}{}
	for _, f := range q.filters {
		if strings.TrimSpace(f.Field) == "" {
			return fmt.Errorf("%w: filter on empty field", errors.ErrQuery)
		}
		if !f.Operator.valid() {
			return fmt.Errorf("%w: unsupported operator %q on %q", errors.ErrQuery, f.Operator, f.Field)
		}
		if f.Operator.inequality() {
			inequalityFields[f.Field] = struct{}{}
		}
	}
	if len(inequalityFields) > 1 {
		return fmt.Errorf("%w: inequality filters on several fields %v", errors.ErrQuery, lo.Keys(inequalityFields))
	}
	if len(q.orderings) > 1 {
		return fmt.Errorf("%w: only one ordering is supported, got %d", errors.ErrQuery, len(q.orderings))
	}
	if o, ok := q.Ordering(); ok {
		if strings.TrimSpace(o.Field) == "" {
			return fmt.Errorf("%w: ordering on empty field", errors.ErrQuery)
		}
		if o.Direction != Ascending && o.Direction != Descending {
			return fmt.Errorf("%w: unsupported direction %q", errors.ErrQuery, o.Direction)
		}
		for field := range inequalityFields {
			if field != o.Field {
				return fmt.Errorf("%w: cannot order by %q with an inequality filter on %q", errors.ErrQuery, o.Field, field)
			}
		}
	}
	if q.hasLimit && q.limit <= 0 {
		return fmt.Errorf("%w: limit must be positive, got %d", errors.ErrQuery, q.limit)
	}
	return nil
}

// Matches evaluates the filters only. A document lacking a filtered field never matches.
func (q Query) Matches(doc Document) bool {
	for _, f := range q.filters {
		v, ok := doc.Value(f.Field)
		if !ok || !evaluate(v, f.Operator, f.Value) {
			return false
		}
	}
	return true
}

// Apply filters, orders and limits docs, in that order. Documents lacking
// the ordering field are excluded. Ties, and unordered queries, fall back
// to ascending id so the same state always yields the same sequence.
func (q Query) Apply(docs []Document) ([]Document, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	out := lo.Filter(docs, func(d Document, _ int) bool { return q.Matches(d) })

	ordering, ordered := q.Ordering()
	if ordered {
		out = lo.Filter(out, func(d Document, _ int) bool {
			_, ok := d.Value(ordering.Field)
			return ok
		})
	}
	slices.SortStableFunc(out, func(a, b Document) int {
		if ordered {
			av, _ := a.Value(ordering.Field)
			bv, _ := b.Value(ordering.Field)
			c := order(av, bv)
			if ordering.Direction == Descending {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return strings.Compare(a.ID, b.ID)
	})

	if q.hasLimit && len(out) > q.limit {
		out = out[:q.limit]
	}
	return out, nil
}

func (q Query) String() string {
	var b strings.Builder
	for i, f := range q.filters {
		if i > 0 {
			b.WriteString(" AND ")
		}
		fmt.Fprintf(&b, "%s %s %v", f.Field, f.Operator, f.Value)
	}
	for _, o := range q.orderings {
		fmt.Fprintf(&b, " ORDER BY %s %s", o.Field, o.Direction)
	}
	if q.hasLimit {
		fmt.Fprintf(&b, " LIMIT %d", q.limit)
	}
	return strings.TrimSpace(b.String())
}
