package domain

import (
	"fmt"
	"strings"
)

// Job is one listing as handed to the catalog. Values are never modified
// after construction; the catalog copies the slice it is given.
type Job struct {
	Title    string `json:"title" yaml:"title"`
	Company  string `json:"company" yaml:"company"`
	City     string `json:"city" yaml:"city"`
	State    string `json:"state" yaml:"state"` // two-letter region code
	Snippet  string `json:"snippet" yaml:"snippet"`
	Caption  string `json:"caption" yaml:"caption"`
	PostedAt string `json:"date" yaml:"date"` // RFC 1123 in the listings feed, kept as text
	Key      string `json:"jobkey,omitempty" yaml:"jobkey,omitempty"`
	URL      string `json:"url,omitempty" yaml:"url,omitempty"`
}

// NewJob trims the text fields and fills Caption when the source had none.
func NewJob(title, company, city, state, snippet, caption, postedAt string) Job {
	j := Job{
		Title:    strings.TrimSpace(title),
		Company:  strings.TrimSpace(company),
		City:     strings.TrimSpace(city),
		State:    strings.TrimSpace(state),
		Snippet:  snippet,
		Caption:  strings.TrimSpace(caption),
		PostedAt: strings.TrimSpace(postedAt),
	}
	if j.Caption == "" {
		j.Caption = DefaultCaption(j)
	}
	return j
}

// DefaultCaption renders "<title> at <company> (<city>, <state>)".
func DefaultCaption(j Job) string {
	var loc string
	switch {
	case j.City != "" && j.State != "":
		loc = j.City + ", " + j.State
	case j.City != "":
		loc = j.City
	case j.State != "":
		loc = j.State
	}
	if loc == "" {
		return fmt.Sprintf("%s at %s", j.Title, j.Company)
	}
	return fmt.Sprintf("%s at %s (%s)", j.Title, j.Company, loc)
}

func (j Job) String() string {
	return fmt.Sprintf("Job{title=%q company=%q city=%q state=%q}", j.Title, j.Company, j.City, j.State)
}
