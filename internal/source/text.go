package source

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CleanText collapses runs of whitespace (including nbsp) to single spaces.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}

// StripHTML flattens an HTML fragment such as a listing snippet to plain
// text. Entities are decoded and block breaks become spaces.
func StripHTML(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return CleanText(fragment)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return CleanText(fragment)
	}

	doc.Find("br, p, li, div").Each(func(_ int, s *goquery.Selection) {
		s.BeforeHtml(" ")
	})
	return CleanText(doc.Find("body").Text())
}
