package models

import "time"

// Resolution is the current state for one weekday and instant. Under the
// merged policy Routine is always nil.
type Resolution struct {
	Policy  string  `json:"policy"`
	Active  *Period `json:"active,omitempty"`
	Routine *Period `json:"routine,omitempty"`
}

func (r Resolution) IsEmpty() bool {
	return r.Active == nil && r.Routine == nil
}

// DisplayCell is one (location, class) cell of a grid row.
type DisplayCell struct {
	Location string `json:"location"`
	Text     string `json:"text"`
}

type DisplayRow struct {
	Class string        `json:"class"`
	Cells []DisplayCell `json:"cells,omitempty"`
	Span  string        `json:"span,omitempty"`
}

// Display is a render-ready view of one period. Spanning displays carry the
// same Span text on every row.
type Display struct {
	Time     string       `json:"time"`
	Kind     PeriodKind   `json:"kind"`
	Spanning bool         `json:"spanning"`
	Label    string       `json:"label,omitempty"`
	Rows     []DisplayRow `json:"rows"`
}

type AgendaEntry struct {
	Time    string `json:"time"`
	Class   string `json:"class"`
	Subject string `json:"subject"`
}

// PeriodChangedEvent is published when the active period of today changes.
type PeriodChangedEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Day        string    `json:"day"`
	Time       string    `json:"time"`
	Previous   string    `json:"previous"`
	Current    string    `json:"current"`
	OccurredAt time.Time `json:"occurredAt"`
}
