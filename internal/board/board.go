// Package board is the view model behind the two gift views: the per-person
// board and the flat list. Everything here is a pure computation over the
// current Person/Gift collections; nothing is persisted and nothing is
// authoritative over the server.
package board

import (
	"sort"
	"strings"

	"gifttrack/internal/gift"
)

// FilterConfig narrows the flat list. All three conditions are conjunctive;
// an empty term always passes.
type FilterConfig struct {
	Search   string
	PersonID string
	Status   gift.Status
}

func (f FilterConfig) Match(g gift.Gift) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		desc := ""
		if g.Description != nil {
			desc = *g.Description
		}
		if !strings.Contains(strings.ToLower(g.Name), q) &&
			!strings.Contains(strings.ToLower(desc), q) {
			return false
		}
	}
	if f.PersonID != "" && (g.PersonID == nil || *g.PersonID != f.PersonID) {
		return false
	}
	if f.Status != "" && g.Status != f.Status {
		return false
	}
	return true
}

func Filter(gifts []gift.Gift, f FilterConfig) []gift.Gift {
	out := make([]gift.Gift, 0, len(gifts))
	for _, g := range gifts {
		if f.Match(g) {
			out = append(out, g)
		}
	}
	return out
}

type SortKey string

const (
	SortName       SortKey = "name"
	SortPrice      SortKey = "price"
	SortStatus     SortKey = "status"
	SortCreatedAt  SortKey = "createdAt"
	SortPersonName SortKey = "personName"
)

type SortConfig struct {
	Key  SortKey
	Desc bool
}

// DefaultSort matches the server's list order.
var DefaultSort = SortConfig{Key: SortCreatedAt, Desc: true}

// Toggle flips direction when the same column is clicked again and resets
// to ascending on a new column.
func (c SortConfig) Toggle(key SortKey) SortConfig {
	if c.Key == key {
		return SortConfig{Key: key, Desc: !c.Desc}
	}
	return SortConfig{Key: key, Desc: false}
}

// Sort returns a sorted copy. The sort is stable: gifts that compare equal
// keep their relative order from the input.
func Sort(gifts []gift.Gift, c SortConfig) []gift.Gift {
	out := make([]gift.Gift, len(gifts))
	copy(out, gifts)

	less := lessFunc(c.Key)
	sort.SliceStable(out, func(i, j int) bool {
		if c.Desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func lessFunc(key SortKey) func(a, b gift.Gift) bool {
	switch key {
	case SortPrice:
		// A missing price sorts below any priced gift.
		return func(a, b gift.Gift) bool {
			if a.Price == nil {
				return b.Price != nil
			}
			if b.Price == nil {
				return false
			}
			return *a.Price < *b.Price
		}
	case SortStatus:
		return func(a, b gift.Gift) bool { return a.Status < b.Status }
	case SortCreatedAt:
		return func(a, b gift.Gift) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortPersonName:
		return func(a, b gift.Gift) bool { return a.PersonName() < b.PersonName() }
	default:
		return func(a, b gift.Gift) bool { return a.Name < b.Name }
	}
}

// PeopleWithStats recomputes the per-person derived numbers from the loaded
// gifts, so the board stays consistent with whatever gift list is on
// screen. The computation itself is shared with the server (gift package).
func PeopleWithStats(people []gift.Person, gifts []gift.Gift) []gift.PersonView {
	byPerson := gift.GiftsByPerson(gifts)
	out := make([]gift.PersonView, 0, len(people))
	for _, p := range people {
		out = append(out, gift.PersonView{
			Person:      p,
			PersonStats: gift.ComputeStats(byPerson[p.ID]),
		})
	}
	return out
}
