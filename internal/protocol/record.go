package protocol

import (
	"regexp"
	"strings"
	"time"

	"github.com/wagiedev/tfsblame-go/internal/blame"
	"github.com/wagiedev/tfsblame-go/internal/errors"
)

// DateLayout is the month/day/year layout of annotation dates. Month and day
// may have one or two digits.
const DateLayout = "1/2/2006"

// noBlameMarkers prefix the lines the engine emits for lines without history.
var noBlameMarkers = []string{"local", "unknow"}

// linePattern matches the first three space-separated fields of a line.
var linePattern = regexp.MustCompile(`([^ ]+)[ ]+([^ ]+)[ ]+([^ ]+)`)

// IsNoBlameMarker reports whether line is the engine's marker for a line
// without history.
func IsNoBlameMarker(line string) bool {
	for _, marker := range noBlameMarkers {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}

	return false
}

// ParseDate parses value with layout in loc.
func ParseDate(value, layout string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return time.Time{}, &errors.DateParseError{Value: value, Layout: layout, Err: err}
	}

	return t, nil
}

// ParseLine decodes one annotation line.
//
// ok is false when the line does not have the revision, author and date
// shape. A non-nil error is a DateParseError: the returned line is still
// valid, without a date.
func ParseLine(line string, loc *time.Location) (parsed blame.Line, ok bool, err error) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return blame.Line{}, false, nil
	}

	parsed = blame.Line{
		Revision: strings.TrimSpace(m[1]),
		Author:   strings.TrimSpace(m[2]),
	}

	date, err := ParseDate(strings.TrimSpace(m[3]), DateLayout, loc)
	if err != nil {
		return parsed, true, err
	}

	parsed.Date = date

	return parsed, true, nil
}

// PadTrailingLine repeats the last record when lines is exactly one short of
// total. The engine does not annotate the empty line that follows a final
// newline, while the line count includes it.
func PadTrailingLine(lines []blame.Line, total int) []blame.Line {
	if len(lines) == 0 || len(lines) != total-1 {
		return lines
	}

	return append(lines, lines[len(lines)-1])
}
