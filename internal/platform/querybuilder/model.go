package querybuilder

import (
	"errors"
	"reflect"
	"strings"
	"sync"
)

type modelField struct {
	column string
	index  int
}

// modelFields caches the db-tagged fields of each table model type.
var modelFields sync.Map

func fieldsOf(typ reflect.Type) ([]modelField, error) {
	if cached, ok := modelFields.Load(typ); ok {
		return cached.([]modelField), nil
	}

	fields := make([]modelField, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		col, _, _ := strings.Cut(f.Tag.Get("db"), ",")
		col = strings.TrimSpace(col)
		if col == "" || col == "-" {
			continue
		}
		fields = append(fields, modelField{column: col, index: i})
	}
	if len(fields) == 0 {
		return nil, errors.New("model " + typ.Name() + " has no db columns")
	}

	modelFields.Store(typ, fields)
	return fields, nil
}

func structValue(model any) (reflect.Value, error) {
	v := reflect.ValueOf(model)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, errors.New("model cannot be nil")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, errors.New("model must be a struct")
	}
	return v, nil
}

// ColumnNames lists the db-tagged columns of model in field order.
func ColumnNames(model any) ([]string, error) {
	v, err := structValue(model)
	if err != nil {
		return nil, err
	}
	fields, err := fieldsOf(v.Type())
	if err != nil {
		return nil, err
	}
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.column
	}
	return cols, nil
}

// InsertModel inserts every db-tagged field of model into table.
func InsertModel(table string, model any, returning ...string) (string, []any, error) {
	v, err := structValue(model)
	if err != nil {
		return "", nil, err
	}
	fields, err := fieldsOf(v.Type())
	if err != nil {
		return "", nil, err
	}

	cols := make([]string, len(fields))
	vals := make([]any, len(fields))
	for i, f := range fields {
		cols[i] = f.column
		vals[i] = v.Field(f.index).Interface()
	}
	return InsertInto(table).Columns(cols...).Values(vals...).Returning(returning...).ToSQL()
}
