package models

type ChangeOperation string

const (
	ChangeInsert ChangeOperation = "INSERT"
	ChangeUpdate ChangeOperation = "UPDATE"
	ChangeDelete ChangeOperation = "DELETE"
)

// ChangeEvent signals that a row of Table changed. It deliberately carries no
// row data: subscribers re-fetch the collection they care about.
type ChangeEvent struct {
	Table    string
	Op       ChangeOperation
	RecordId string
}
