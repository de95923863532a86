package listing

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedQuery is returned for keys such as "a[b" or "a[]". It is not a validation error.
var ErrMalformedQuery = errors.New("malformed query parameter")

// splitKey breaks "a[b][c]" and "a.b.c" into their segments.
func splitKey(key string) ([]string, error) {
	head, rest, hasBracket := strings.Cut(key, "[")
	if strings.Contains(head, "]") {
		return nil, fmt.Errorf("%w: %q", ErrMalformedQuery, key)
	}

	segments := strings.Split(head, ".")
	if hasBracket {
		rest = "[" + rest
		for rest != "" {
			if rest[0] != '[' {
				return nil, fmt.Errorf("%w: %q", ErrMalformedQuery, key)
			}
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: %q", ErrMalformedQuery, key)
			}
			inner := rest[1:end]
			if strings.ContainsAny(inner, "[") {
				return nil, fmt.Errorf("%w: %q", ErrMalformedQuery, key)
			}
			segments = append(segments, strings.Split(inner, ".")...)
			rest = rest[end+1:]
		}
	}

	for _, s := range segments {
		if s == "" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedQuery, key)
		}
	}
	return segments, nil
}

// parseKey returns the dotted field path and the operator a key addresses.
func parseKey(key string) (string, Operator, error) {
	segments, err := splitKey(key)
	if err != nil {
		return "", "", err
	}

	op := OpEq
	if len(segments) > 1 {
		if candidate, ok := comparisonOperators[segments[len(segments)-1]]; ok {
			op = candidate
			segments = segments[:len(segments)-1]
		}
	}
	return strings.Join(segments, "."), op, nil
}
