package catalog

import (
	"iter"
	"sort"
	"strings"
	"unicode/utf8"

	"jobcatalog/internal/domain"
)

// Loops answers the same queries as Catalog with plain for loops.
type Loops struct {
	jobs []domain.Job
}

func (l Loops) FilterByLocation(state, city string) iter.Seq[domain.Job] {
	return func(yield func(domain.Job) bool) {
		for _, j := range l.jobs {
			if j.State == state && j.City == city {
				if !yield(j) {
					return
				}
			}
		}
	}
}

func (l Loops) FindFirstMatchingTitle(term string) (domain.Job, bool) {
	for _, j := range l.jobs {
		if strings.Contains(j.Title, term) {
			return j, true
		}
	}
	return domain.Job{}, false
}

func (l Loops) FindFirst(p Predicate) (domain.Job, bool) {
	for _, j := range l.jobs {
		if p(j) {
			return j, true
		}
	}
	return domain.Job{}, false
}

func (l Loops) FirstNMatching(p Predicate, n int) []domain.Job {
	out := []domain.Job{}
	if n <= 0 {
		return out
	}
	for _, j := range l.jobs {
		if p(j) {
			out = append(out, j)
			if len(out) >= n {
				break
			}
		}
	}
	return out
}

func (l Loops) CaptionsMatching(p Predicate, n int) []string {
	out := []string{}
	if n <= 0 {
		return out
	}
	for _, j := range l.jobs {
		if p(j) {
			out = append(out, j.Caption)
			if len(out) >= n {
				break
			}
		}
	}
	return out
}

func (l Loops) DistinctCompaniesSorted() []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, j := range l.jobs {
		if seen[j.Company] {
			continue
		}
		seen[j.Company] = true
		out = append(out, j.Company)
	}
	sort.Strings(out)
	return out
}

func (l Loops) CompanyNameWithMaxLength() (string, bool) {
	if len(l.jobs) == 0 {
		return "", false
	}
	longest := l.jobs[0].Company
	longestLen := utf8.RuneCountInString(longest)
	for _, j := range l.jobs[1:] {
		if n := utf8.RuneCountInString(j.Company); n > longestLen {
			longest, longestLen = j.Company, n
		}
	}
	return longest, true
}

func (l Loops) WordFrequencyInSnippets() map[string]int64 {
	counts := make(map[string]int64)
	for _, j := range l.jobs {
		countWords(counts, j.Snippet)
	}
	return counts
}

func (l Loops) CompaniesWithPrefix(prefix string, observe func(string)) []string {
	out := []string{}
	for _, c := range l.DistinctCompaniesSorted() {
		if observe != nil {
			observe(c)
		}
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

func (l Loops) ConvertPostedDates(conv DateConverter, limit int) ([]string, error) {
	out := []string{}
	for _, j := range l.jobs {
		if len(out) >= limit {
			break
		}
		s, err := conv(j.PostedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
