package domain

import (
	"fmt"
	"time"
)

// Layouts accepted for PostedAt. The feed sends RFC 1123 with a zone
// abbreviation ("Mon, 02 Jan 2006 15:04:05 GMT"); some mirrors send a
// numeric offset or a single-digit day.
var postedLayouts = []string{
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
}

// ParseError reports PostedAt text that matches none of the known layouts.
type ParseError struct {
	Value  string
	Layout string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse posted date %q (layout %q): %v", e.Value, e.Layout, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParsePostedAt parses an RFC 1123 timestamp. The zone is kept as parsed.
func ParsePostedAt(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range postedLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, &ParseError{Value: s, Layout: postedLayouts[0], Err: firstErr}
}
