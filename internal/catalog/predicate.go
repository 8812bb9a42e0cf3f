package catalog

import (
	"errors"
	"fmt"
	"strings"

	"jobcatalog/internal/domain"
)

// ErrNoMatch is returned by lookups whose caller requires at least one record.
var ErrNoMatch = errors.New("no matching job")

type Predicate func(domain.Job) bool

// IsJuniorRole reports whether the lowercased title mentions "junior" or "jr".
func IsJuniorRole(j domain.Job) bool {
	title := strings.ToLower(j.Title)
	return strings.Contains(title, "junior") || strings.Contains(title, "jr")
}

func InState(state string) Predicate {
	return func(j domain.Job) bool { return j.State == state }
}

func InCity(city string) Predicate {
	return func(j domain.Job) bool { return j.City == city }
}

// TitleContains is a case-sensitive substring match.
func TitleContains(term string) Predicate {
	return func(j domain.Job) bool { return strings.Contains(j.Title, term) }
}

// And is true when every predicate holds; And() is always true.
func And(ps ...Predicate) Predicate {
	return func(j domain.Job) bool {
		for _, p := range ps {
			if !p(j) {
				return false
			}
		}
		return true
	}
}

// Or is true when any predicate holds; Or() is always false.
func Or(ps ...Predicate) Predicate {
	return func(j domain.Job) bool {
		for _, p := range ps {
			if p(j) {
				return true
			}
		}
		return false
	}
}

func Not(p Predicate) Predicate {
	return func(j domain.Job) bool { return !p(j) }
}

// NotifyIfMatches calls notify with job when p holds and reports whether it did.
func NotifyIfMatches(job domain.Job, p Predicate, notify func(domain.Job)) bool {
	if !p(job) {
		return false
	}
	if notify != nil {
		notify(job)
	}
	return true
}

// FirstJuniorInState finds the first record in state and reports whether it
// is also a junior role. A state without records is ErrNoMatch.
func FirstJuniorInState(q Queries, state string) (domain.Job, bool, error) {
	inState := InState(state)
	job, ok := q.FindFirst(inState)
	if !ok {
		return domain.Job{}, false, fmt.Errorf("first job in state %q: %w", state, ErrNoMatch)
	}
	return job, And(inState, IsJuniorRole)(job), nil
}
