package store

import "github.com/jonathanmnovak/neo-capstone/model"

// Filter decides whether an approach belongs in a query result.
type Filter interface {
	Match(approach *model.CloseApproach) bool
}

// FilterFunc adapts a plain function to Filter.
type FilterFunc func(approach *model.CloseApproach) bool

// Match calls f.
func (f FilterFunc) Match(approach *model.CloseApproach) bool {
	return f(approach)
}

func matchAll(filters []Filter, approach *model.CloseApproach) bool {
	for _, f := range filters {
		if !f.Match(approach) {
			return false
		}
	}
	return true
}
