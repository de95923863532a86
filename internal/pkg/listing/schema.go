package listing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"parceltrack/internal/pkg/errs"
)

// Kind decides how a raw value is parsed and which operators apply.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindTime
	KindBool
	KindUUID
)

// Field describes one filterable and sortable field.
type Field struct {
	Kind Kind
	// Contains turns equality into a case-insensitive substring match.
	Contains bool
}

// Schema whitelists the fields of one resource.
type Schema struct {
	Fields map[string]Field
	// Aliases maps short names to fields, e.g. "weight" to "parcelDetails.weight".
	Aliases map[string]string
	// Search lists the string fields a search parameter matches against.
	Search []string
	// Wildcard, when set, is a value that disables the filter it is given to.
	Wildcard string
	// DefaultSort applies when the request carries no sort.
	DefaultSort []SortKey
}

func (s Schema) resolve(name string) (string, Field, bool) {
	if target, ok := s.Aliases[name]; ok {
		name = target
	}
	f, ok := s.Fields[name]
	return name, f, ok
}

func (f Field) supports(op Operator) bool {
	switch op {
	case OpEq, OpIn:
		return true
	case OpGt, OpGte, OpLt, OpLte:
		return f.Kind == KindNumber || f.Kind == KindTime
	case OpContains:
		return f.Kind == KindString
	default:
		return false
	}
}

func (f Field) parse(field, raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	switch f.Kind {
	case KindNumber:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(field, fmt.Errorf("%q is not a number", raw))
		}
		return v, nil
	case KindTime:
		for _, layout := range []string{time.RFC3339, time.DateOnly} {
			if v, err := time.Parse(layout, raw); err == nil {
				return v.UTC(), nil
			}
		}
		return nil, errs.NewValueIsInvalidErrorWithCause(field, fmt.Errorf("%q is not a date", raw))
	case KindBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(field, fmt.Errorf("%q is not a boolean", raw))
		}
		return v, nil
	case KindUUID:
		v, err := uuid.Parse(raw)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(field, fmt.Errorf("%q is not an identifier", raw))
		}
		return v, nil
	default:
		return raw, nil
	}
}
