// Package querybuilder renders the small set of postgres statements the
// repositories need, numbering placeholders as $1..$n in clause order.
package querybuilder

import (
	"errors"
	"strconv"
	"strings"
)

// sqlWriter accumulates SQL text and its positional arguments.
type sqlWriter struct {
	buf  strings.Builder
	args []any
}

func (w *sqlWriter) text(parts ...string) {
	for _, p := range parts {
		w.buf.WriteString(p)
	}
}

func (w *sqlWriter) bind(value any) {
	w.args = append(w.args, value)
	w.buf.WriteString("$")
	w.buf.WriteString(strconv.Itoa(len(w.args)))
}

// expr writes expr, binding one argument for every '?' it contains.
// Surplus '?' are written verbatim.
func (w *sqlWriter) expr(expr string, args []any) {
	next := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] == '?' && next < len(args) {
			w.bind(args[next])
			next++
			continue
		}
		w.buf.WriteByte(expr[i])
	}
}

func (w *sqlWriter) where(conditions []Condition) {
	for i, c := range conditions {
		if i == 0 {
			w.text(" WHERE ")
		} else {
			w.text(" AND ")
		}
		c.write(w)
	}
}

func (w *sqlWriter) result() (string, []any, error) {
	return w.buf.String(), w.args, nil
}

type Condition interface {
	write(w *sqlWriter)
}

type conditionFunc func(w *sqlWriter)

func (f conditionFunc) write(w *sqlWriter) { f(w) }

func Eq(column string, value any) Condition {
	return conditionFunc(func(w *sqlWriter) {
		w.text(column, " = ")
		w.bind(value)
	})
}

// Between matches from <= column <= to.
func Between(column string, from, to any) Condition {
	return conditionFunc(func(w *sqlWriter) {
		w.text(column, " BETWEEN ")
		w.bind(from)
		w.text(" AND ")
		w.bind(to)
	})
}

func IsNull(column string) Condition {
	return conditionFunc(func(w *sqlWriter) { w.text(column, " IS NULL") })
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	switch {
	case len(b.columns) == 0:
		return "", nil, errors.New("select columns are required")
	case strings.TrimSpace(b.table) == "":
		return "", nil, errors.New("select table is required")
	}

	var w sqlWriter
	w.text("SELECT ", strings.Join(b.columns, ", "), " FROM ", b.table)
	w.where(b.where)
	if len(b.orderBy) > 0 {
		w.text(" ORDER BY ", strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		w.text(" LIMIT ", strconv.Itoa(b.limit))
	}
	return w.result()
}

// InsertBuilder renders a single-row INSERT with an optional RETURNING list.
type InsertBuilder struct {
	table     string
	columns   []string
	values    []any
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
	b.values = append([]any(nil), values...)
	return b
}

func (b *InsertBuilder) Returning(columns ...string) *InsertBuilder {
	b.returning = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(b.table) == "":
		return "", nil, errors.New("insert table is required")
	case len(b.columns) == 0:
		return "", nil, errors.New("insert columns are required")
	case len(b.values) != len(b.columns):
		return "", nil, errors.New("insert has " + strconv.Itoa(len(b.values)) + " values for " + strconv.Itoa(len(b.columns)) + " columns")
	}

	var w sqlWriter
	w.text("INSERT INTO ", b.table, " (", strings.Join(b.columns, ", "), ") VALUES (")
	for i, v := range b.values {
		if i > 0 {
			w.text(", ")
		}
		w.bind(v)
	}
	w.text(")")
	if len(b.returning) > 0 {
		w.text(" RETURNING ", strings.Join(b.returning, ", "))
	}
	return w.result()
}

type assignment struct {
	column string
	expr   string
	args   []any
}

type UpdateBuilder struct {
	table string
	sets  []assignment
	where []Condition
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	return b.SetExpr(column, "?", value)
}

// SetExpr assigns a raw expression; each '?' in expr binds the next arg.
func (b *UpdateBuilder) SetExpr(column, expr string, args ...any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, expr: expr, args: args})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(b.table) == "":
		return "", nil, errors.New("update table is required")
	case len(b.sets) == 0:
		return "", nil, errors.New("update sets are required")
	}

	var w sqlWriter
	w.text("UPDATE ", b.table, " SET ")
	for i, s := range b.sets {
		if i > 0 {
			w.text(", ")
		}
		w.text(s.column, " = ")
		w.expr(s.expr, s.args)
	}
	w.where(b.where)
	return w.result()
}
