package models

import "time"

// PolicyGlobalTermID is the sentinel term id for institution-wide policies.
const PolicyGlobalTermID = "GLOBAL"

// Policy is a term-scoped configuration entry. Key is unique per TermID; the
// value is an opaque string that may encode a number, boolean or JSON blob.
type Policy struct {
	TermID      string    `db:"term_id" json:"term_id"`
	Key         string    `db:"key" json:"key"`
	Value       string    `db:"value" json:"value"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
