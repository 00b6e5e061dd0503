package blame

import (
	"encoding/json"
	"time"
)

// Line is the attribution of one physical line of a blamed file.
//
// Date is the zero time when the engine's date could not be parsed.
type Line struct {
	Revision string
	Author   string
	Date     time.Time
}

// HasDate reports whether the engine supplied a parseable date for the line.
func (l Line) HasDate() bool {
	return !l.Date.IsZero()
}

// wireLine is the JSON representation of a Line.
type wireLine struct {
	Revision string     `json:"revision"`
	Author   string     `json:"author"`
	Date     *time.Time `json:"date,omitempty"`
}

// MarshalJSON implements json.Marshaler.
// An absent date is omitted instead of being rendered as the zero time.
func (l Line) MarshalJSON() ([]byte, error) {
	w := wireLine{Revision: l.Revision, Author: l.Author}
	if l.HasDate() {
		date := l.Date
		w.Date = &date
	}

	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Line) UnmarshalJSON(data []byte) error {
	var w wireLine
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	l.Revision = w.Revision
	l.Author = w.Author
	l.Date = time.Time{}

	if w.Date != nil {
		l.Date = *w.Date
	}

	return nil
}
