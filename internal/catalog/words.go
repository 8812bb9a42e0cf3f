package catalog

import (
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Anything that is not a letter, mark, digit or underscore separates tokens.
var nonWord = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_]+`)

// Tokens splits s into lowercased word tokens, dropping empty ones.
func Tokens(s string) []string {
	var out []string
	for _, w := range nonWord.Split(s, -1) {
		if w == "" {
			continue
		}
		out = append(out, strings.ToLower(w))
	}
	return out
}

func countWords(counts map[string]int64, s string) {
	for _, w := range Tokens(s) {
		counts[w]++
	}
}

// WordFrequencyParallel counts snippet words in up to shards goroutines and
// sums the per-shard counts. The result equals WordFrequencyInSnippets.
func (c *Catalog) WordFrequencyParallel(shards int) map[string]int64 {
	if shards <= 1 || len(c.jobs) < 2 {
		return c.WordFrequencyInSnippets()
	}
	if shards > len(c.jobs) {
		shards = len(c.jobs)
	}

	size := (len(c.jobs) + shards - 1) / shards
	partial := make([]map[string]int64, shards)

	var g errgroup.Group
	for i := 0; i < shards; i++ {
		lo := i * size
		hi := min(lo+size, len(c.jobs))
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			partial[i] = Loops{jobs: c.jobs[lo:hi]}.WordFrequencyInSnippets()
			return nil
		})
	}
	_ = g.Wait()

	return mergeCounts(partial...)
}

func mergeCounts(parts ...map[string]int64) map[string]int64 {
	out := make(map[string]int64)
	for _, p := range parts {
		for w, n := range p {
			out[w] += n
		}
	}
	return out
}
