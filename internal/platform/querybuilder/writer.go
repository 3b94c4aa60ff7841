package querybuilder

import (
	"strconv"
	"strings"
)

// writer accumulates SQL text and positional ($N) arguments.
type writer struct {
	sb   strings.Builder
	args []any
}

func (w *writer) write(parts ...string) {
	for _, p := range parts {
		w.sb.WriteString(p)
	}
}

func (w *writer) bind(v any) {
	w.args = append(w.args, v)
	w.sb.WriteString("$")
	w.sb.WriteString(strconv.Itoa(len(w.args)))
}

// expr writes raw SQL, binding one argument per '?' in order. Extra '?'
// without a matching argument are written verbatim.
func (w *writer) expr(sql string, args []any) {
	next := 0
	for i := 0; i < len(sql); i++ {
		if sql[i] == '?' && next < len(args) {
			w.bind(args[next])
			next++
			continue
		}
		w.sb.WriteByte(sql[i])
	}
}

func (w *writer) list(items []string) {
	w.write(strings.Join(items, ", "))
}

func (w *writer) where(conds []Condition) {
	if len(conds) == 0 {
		return
	}
	w.write(" WHERE ")
	And(conds...)(w)
}

func (w *writer) result() (string, []any, error) {
	return w.sb.String(), w.args, nil
}
