// Package listingsql renders listing queries onto GORM statements.
// Field names are resolved through a per-table Columns whitelist; values are always bound
// as parameters.
package listingsql

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"parceltrack/internal/pkg/listing"
)

// Columns maps listing field names to column names.
type Columns map[string]string

func (c Columns) column(field string) (string, error) {
	col, ok := c[field]
	if !ok {
		return "", fmt.Errorf("listing field %q has no column", field)
	}
	return col, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Where renders a single condition.
func Where(db *gorm.DB, c listing.Condition, cols Columns) (*gorm.DB, error) {
	expr, args, err := render(c, cols)
	if err != nil {
		return nil, err
	}
	return db.Where(expr, args...), nil
}

func render(c listing.Condition, cols Columns) (string, []any, error) {
	col, err := cols.column(c.Field)
	if err != nil {
		return "", nil, err
	}
	if len(c.Values) == 0 {
		return "", nil, fmt.Errorf("condition on %q has no value", c.Field)
	}

	switch c.Op {
	case listing.OpEq:
		return col + " = ?", []any{c.Values[0]}, nil
	case listing.OpGt:
		return col + " > ?", []any{c.Values[0]}, nil
	case listing.OpGte:
		return col + " >= ?", []any{c.Values[0]}, nil
	case listing.OpLt:
		return col + " < ?", []any{c.Values[0]}, nil
	case listing.OpLte:
		return col + " <= ?", []any{c.Values[0]}, nil
	case listing.OpIn:
		return col + " IN ?", []any{c.Values}, nil
	case listing.OpContains:
		pattern := "%" + likeEscaper.Replace(fmt.Sprint(c.Values[0])) + "%"
		return col + ` ILIKE ? ESCAPE '\'`, []any{pattern}, nil
	default:
		return "", nil, fmt.Errorf("operator %q is not supported", c.Op)
	}
}

// Filter narrows db to the rows matching f.
func Filter(db *gorm.DB, f listing.Filter, cols Columns) (*gorm.DB, error) {
	var err error
	for _, c := range f.All {
		if db, err = Where(db, c, cols); err != nil {
			return nil, err
		}
	}

	if len(f.AnyOf) == 0 {
		return db, nil
	}

	group := db.Session(&gorm.Session{NewDB: true})
	for i, c := range f.AnyOf {
		expr, args, err := render(c, cols)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			group = group.Where(expr, args...)
			continue
		}
		group = group.Or(expr, args...)
	}
	return db.Where(group), nil
}

// Order applies keys in sequence.
func Order(db *gorm.DB, keys []listing.SortKey, cols Columns) (*gorm.DB, error) {
	for _, k := range keys {
		col, err := cols.column(k.Field)
		if err != nil {
			return nil, err
		}
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: k.Desc})
	}
	return db, nil
}

// Find loads one page of T matching q and counts every match with the same filter.
// prepare, when not nil, adds preloads or joins to the page statement.
func Find[T any](
	ctx context.Context,
	db *gorm.DB,
	q listing.Query,
	cols Columns,
	prepare func(*gorm.DB) *gorm.DB,
) ([]T, int64, error) {
	q.Page = listing.NewPage(q.Page.Number, q.Page.Limit)

	filtered, err := Filter(db.WithContext(ctx).Model(new(T)), q.Filter, cols)
	if err != nil {
		return nil, 0, err
	}
	filtered = filtered.Session(&gorm.Session{})

	var total int64
	if err := filtered.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, err := Order(filtered, q.Sort, cols)
	if err != nil {
		return nil, 0, err
	}
	if prepare != nil {
		page = prepare(page)
	}

	rows := make([]T, 0, min(q.Page.Limit, listing.MaxLimit))
	if err := page.Offset(q.Page.Offset()).Limit(q.Page.Limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
