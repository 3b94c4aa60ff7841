package querybuilder

import (
	"fmt"
	"strings"
)

type InsertBuilder struct {
	table     string
	columns   []string
	rows      [][]any
	conflict  []string
	updates   []string
	doNothing bool
	returning []string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// OnConflictUpdate upserts: columns listed in update take the EXCLUDED value.
func (b *InsertBuilder) OnConflictUpdate(target []string, update ...string) *InsertBuilder {
	b.conflict = append([]string(nil), target...)
	b.updates = append([]string(nil), update...)
	return b
}

func (b *InsertBuilder) OnConflictDoNothing(target ...string) *InsertBuilder {
	b.conflict = append([]string(nil), target...)
	b.doNothing = true
	return b
}

func (b *InsertBuilder) Returning(columns ...string) *InsertBuilder {
	b.returning = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(b.table) == "":
		return "", nil, fmt.Errorf("insert table is required")
	case len(b.columns) == 0:
		return "", nil, fmt.Errorf("insert columns are required")
	case len(b.rows) == 0:
		return "", nil, fmt.Errorf("insert values are required")
	}

	w := &writer{}
	w.write("INSERT INTO ", b.table, " (")
	w.list(b.columns)
	w.write(") VALUES ")
	for i, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", i, len(row), len(b.columns))
		}
		if i > 0 {
			w.write(", ")
		}
		w.write("(")
		for j, v := range row {
			if j > 0 {
				w.write(", ")
			}
			w.bind(v)
		}
		w.write(")")
	}

	if len(b.conflict) > 0 {
		w.write(" ON CONFLICT (")
		w.list(b.conflict)
		w.write(")")
		if b.doNothing || len(b.updates) == 0 {
			w.write(" DO NOTHING")
		} else {
			sets := make([]string, 0, len(b.updates))
			for _, col := range b.updates {
				sets = append(sets, col+" = EXCLUDED."+col)
			}
			w.write(" DO UPDATE SET ")
			w.list(sets)
		}
	}
	if len(b.returning) > 0 {
		w.write(" RETURNING ")
		w.list(b.returning)
	}
	return w.result()
}
