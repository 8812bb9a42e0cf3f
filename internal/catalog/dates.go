package catalog

import (
	"time"

	"jobcatalog/internal/domain"
)

// DateConverter turns feed timestamp text into display text.
type DateConverter func(string) (string, error)

type Parser func(string) (time.Time, error)

type Formatter func(time.Time) string

const (
	SiteDateLayout = "1 / 2 / 06"
	ISODateLayout  = time.DateOnly
)

func LayoutFormatter(layout string) Formatter {
	return func(t time.Time) string { return t.Format(layout) }
}

// Compose runs parse and then format.
func Compose(parse Parser, format Formatter) DateConverter {
	return func(s string) (string, error) {
		t, err := parse(s)
		if err != nil {
			return "", err
		}
		return format(t), nil
	}
}

// NewDateConverter parses feed timestamps and renders them with outLayout.
func NewDateConverter(outLayout string) DateConverter {
	return Compose(domain.ParsePostedAt, LayoutFormatter(outLayout))
}

var (
	// SiteDateConverter renders "9 / 14 / 16".
	SiteDateConverter = NewDateConverter(SiteDateLayout)
	// ISODateConverter renders "2016-09-14".
	ISODateConverter = NewDateConverter(ISODateLayout)
)
