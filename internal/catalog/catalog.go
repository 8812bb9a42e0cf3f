// Package catalog answers read-only queries over a fixed set of job
// records. Every query is available twice: *Catalog composes lazy pipeline
// operators, and Loops spells the same query out as explicit loops. Both
// satisfy Queries and must agree on every input.
package catalog

import (
	"iter"
	"slices"
	"strings"
	"unicode/utf8"

	"jobcatalog/internal/domain"
	"jobcatalog/internal/pipeline"
)

type Queries interface {
	FilterByLocation(state, city string) iter.Seq[domain.Job]
	FindFirstMatchingTitle(term string) (domain.Job, bool)
	FindFirst(p Predicate) (domain.Job, bool)
	FirstNMatching(p Predicate, n int) []domain.Job
	CaptionsMatching(p Predicate, n int) []string
	DistinctCompaniesSorted() []string
	CompanyNameWithMaxLength() (string, bool)
	WordFrequencyInSnippets() map[string]int64
	CompaniesWithPrefix(prefix string, observe func(string)) []string
	ConvertPostedDates(conv DateConverter, limit int) ([]string, error)
}

var (
	_ Queries = (*Catalog)(nil)
	_ Queries = Loops{}
)

// Catalog is immutable after New. A refreshed data set means a new Catalog.
type Catalog struct {
	jobs []domain.Job
}

func New(jobs []domain.Job) *Catalog {
	return &Catalog{jobs: slices.Clone(jobs)}
}

func (c *Catalog) Len() int { return len(c.jobs) }

// All yields the records in insertion order.
func (c *Catalog) All() iter.Seq[domain.Job] {
	return pipeline.FromSlice(c.jobs)
}

// Jobs returns a copy of the records.
func (c *Catalog) Jobs() []domain.Job {
	return slices.Clone(c.jobs)
}

// Loops returns the explicit-loop rendition over the same records.
func (c *Catalog) Loops() Loops {
	return Loops{jobs: c.jobs}
}

func (c *Catalog) FilterByLocation(state, city string) iter.Seq[domain.Job] {
	return pipeline.Filter(
		pipeline.Filter(c.All(), func(j domain.Job) bool { return j.State == state }),
		func(j domain.Job) bool { return j.City == city },
	)
}

func (c *Catalog) FindFirstMatchingTitle(term string) (domain.Job, bool) {
	return c.FindFirst(TitleContains(term))
}

func (c *Catalog) FindFirst(p Predicate) (domain.Job, bool) {
	return pipeline.First(pipeline.Filter(c.All(), p))
}

func (c *Catalog) FirstNMatching(p Predicate, n int) []domain.Job {
	return pipeline.Collect(pipeline.Limit(pipeline.Filter(c.All(), p), n))
}

func (c *Catalog) CaptionsMatching(p Predicate, n int) []string {
	return pipeline.Collect(
		pipeline.Limit(pipeline.Map(pipeline.Filter(c.All(), p), caption), n),
	)
}

func (c *Catalog) DistinctCompaniesSorted() []string {
	return pipeline.Collect(
		pipeline.Sorted(pipeline.Distinct(pipeline.Map(c.All(), company))),
	)
}

func (c *Catalog) CompanyNameWithMaxLength() (string, bool) {
	return pipeline.MaxBy(pipeline.Map(c.All(), company), utf8.RuneCountInString)
}

func (c *Catalog) WordFrequencyInSnippets() map[string]int64 {
	words := pipeline.FlatMap(pipeline.Map(c.All(), snippet), func(s string) iter.Seq[string] {
		return pipeline.FromSlice(Tokens(s))
	})
	return pipeline.CountBy(words, pipeline.Identity[string])
}

// CompaniesWithPrefix filters DistinctCompaniesSorted by prefix. observe,
// when set, sees every company before the filter runs.
func (c *Catalog) CompaniesWithPrefix(prefix string, observe func(string)) []string {
	seq := pipeline.FromSlice(c.DistinctCompaniesSorted())
	if observe != nil {
		seq = pipeline.Peek(seq, observe)
	}
	return pipeline.Collect(pipeline.Filter(seq, func(s string) bool {
		return strings.HasPrefix(s, prefix)
	}))
}

// ConvertPostedDates converts the PostedAt text of the first limit records.
// Records past limit are never parsed.
func (c *Catalog) ConvertPostedDates(conv DateConverter, limit int) ([]string, error) {
	var err error
	out := pipeline.Collect(pipeline.Limit(pipeline.MapErr(pipeline.Map(c.All(), postedAt), conv, &err), limit))
	if err != nil {
		return nil, err
	}
	return out, nil
}

func caption(j domain.Job) string  { return j.Caption }
func company(j domain.Job) string  { return j.Company }
func snippet(j domain.Job) string  { return j.Snippet }
func postedAt(j domain.Job) string { return j.PostedAt }
