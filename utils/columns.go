package utils

import "reflect"

// ColumnList derives the list of column names from the `db` tags of a row
// struct, so select lists stay in sync with the struct definition.
func ColumnList[T any](prefix ...string) []string {
	var value T
	t := reflect.TypeOf(value)

	columns := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag, ok := t.Field(i).Tag.Lookup("db")
		if !ok || tag == "-" {
			continue
		}
		if len(prefix) > 0 {
			tag = prefix[0] + "." + tag
		}
		columns = append(columns, tag)
	}
	return columns
}
