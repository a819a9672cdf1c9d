package model

// Envelope is a named budget balance. Amounts are non-negative; the schema
// enforces that as a backstop for validation races.
type Envelope struct {
	ID     int64   `db:"id" json:"id"`
	Name   string  `db:"name" json:"name"`
	Amount float64 `db:"amount" json:"amount"`
}
