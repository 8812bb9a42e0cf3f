package main

import (
	"cmp"
	"fmt"
	"io"
	"maps"
	"slices"

	"jobcatalog/internal/domain"
)

type printer struct {
	w io.Writer
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) lines(values []string) {
	for _, v := range values {
		p.line("%s", v)
	}
}

func (p *printer) jobs(jobs []domain.Job) {
	for _, j := range jobs {
		p.line("%s", j.Caption)
	}
}

type wordCount struct {
	word  string
	count int64
}

// topWords orders counts by count descending then word, keeping at most n.
// n <= 0 keeps everything.
func topWords(counts map[string]int64, n int) []wordCount {
	out := make([]wordCount, 0, len(counts))
	for _, w := range slices.Sorted(maps.Keys(counts)) {
		out = append(out, wordCount{word: w, count: counts[w]})
	}
	slices.SortStableFunc(out, func(a, b wordCount) int {
		return cmp.Compare(b.count, a.count)
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
