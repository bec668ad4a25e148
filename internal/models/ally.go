// ABOUTME: Ally is a user-defined substance companion record
// ABOUTME: Carries qualitative notes plus a cached log of linked moments
package models

// Ally is a substance companion. The Log field is a cached projection of the
// moments that reference this ally; the substance journal on AppState remains
// the authoritative record. The two are kept in sync at write time only.
type Ally struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Face       string   `json:"face"`
	Invocation string   `json:"invocation"`
	Function   string   `json:"function"`
	Shadow     string   `json:"shadow"`
	Ritual     string   `json:"ritual"`
	Log        []Moment `json:"log"`
}
