package querybuilder

// Condition renders a boolean SQL fragment.
type Condition func(w *writer)

func Eq(column string, value any) Condition {
	return func(w *writer) {
		w.write(column, " = ")
		w.bind(value)
	}
}

func NotEq(column string, value any) Condition {
	return func(w *writer) {
		w.write(column, " <> ")
		w.bind(value)
	}
}

// In renders an always-false predicate for an empty value set.
func In[T any](column string, values []T) Condition {
	return func(w *writer) {
		if len(values) == 0 {
			w.write("1=0")
			return
		}
		w.write(column, " IN (")
		for i, v := range values {
			if i > 0 {
				w.write(", ")
			}
			w.bind(v)
		}
		w.write(")")
	}
}

func IsNull(column string) Condition {
	return func(w *writer) { w.write(column, " IS NULL") }
}

// Expr binds args to '?' markers in sql.
func Expr(sql string, args ...any) Condition {
	return func(w *writer) { w.expr(sql, args) }
}

func And(conds ...Condition) Condition {
	return join(" AND ", conds, false)
}

func Or(conds ...Condition) Condition {
	return join(" OR ", conds, true)
}

func join(sep string, conds []Condition, wrap bool) Condition {
	return func(w *writer) {
		if wrap && len(conds) > 1 {
			w.write("(")
			defer w.write(")")
		}
		for i, c := range conds {
			if i > 0 {
				w.write(sep)
			}
			c(w)
		}
	}
}
