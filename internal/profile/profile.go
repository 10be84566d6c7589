/*
Package profile holds the user health profile model, its append-only CSV
record, and the disease catalog used to populate the intake form.
*/
package profile

import "strconv"

// Profile is a single submitted health record. Profiles are immutable once
// stored; the record grows append-only with no update or delete.
type Profile struct {
	Name     string   `form:"name" json:"name"`
	Age      int      `form:"age" json:"age"`
	Weight   float64  `form:"weight" json:"weight"` // kilograms
	Height   float64  `form:"height" json:"height"` // centimeters
	Sex      string   `form:"sex" json:"sex"`
	Race     string   `form:"race" json:"race"`
	Diseases []string `form:"disease" json:"diseases"`
}

// formatNumber trims trailing zeros so 70.0 is stored as "70".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
