package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// Model starts an insert whose columns and values come from the `db` tags
// of a struct (or pointer to struct). Fields tagged `db:"-"` or untagged
// are skipped.
func Model(table string, model any) (*InsertBuilder, error) {
	v := reflect.ValueOf(model)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, fmt.Errorf("model cannot be nil")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model must be a struct, got %s", v.Kind())
	}

	t := v.Type()
	var (
		cols []string
		vals []any
	)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		cols = append(cols, name)
		vals = append(vals, v.Field(i).Interface())
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("model %s has no db columns", t.Name())
	}

	return InsertInto(table).Columns(cols...).Values(vals...), nil
}
