package gift

// PersonStats are the derived per-person numbers. They are never persisted;
// both the list endpoint and the board view model recompute them from the
// current Person/Gift collections.
type PersonStats struct {
	Spent      float64 `json:"spent"`
	Planned    float64 `json:"planned"`
	TotalSpent float64 `json:"totalSpent"`
	GiftCount  int     `json:"giftCount"`
}

// Totals are the global derived numbers across all gifts.
type Totals struct {
	TotalSpentReal float64 `json:"totalSpentReal"`
	TotalPlanned   float64 `json:"totalPlanned"`
	TotalGifts     int     `json:"totalGifts"`
}

// ComputeStats sums a person's gifts: priced non-IDEA gifts count as spent,
// priced IDEA gifts as planned.
func ComputeStats(gifts []Gift) PersonStats {
	var s PersonStats
	s.GiftCount = len(gifts)
	for _, g := range gifts {
		if g.Price == nil {
			continue
		}
		if g.Status == StatusIdea {
			s.Planned += *g.Price
		} else {
			s.Spent += *g.Price
		}
	}
	s.TotalSpent = s.Spent + s.Planned
	return s
}

// ComputeTotals aggregates over every gift, assigned or not.
func ComputeTotals(gifts []Gift) Totals {
	t := Totals{TotalGifts: len(gifts)}
	for _, g := range gifts {
		if g.Price == nil {
			continue
		}
		if g.Status == StatusIdea {
			t.TotalPlanned += *g.Price
		} else {
			t.TotalSpentReal += *g.Price
		}
	}
	return t
}

// GiftsByPerson groups gifts under their owning person id. Unassigned gifts
// are left out.
func GiftsByPerson(gifts []Gift) map[string][]Gift {
	out := make(map[string][]Gift)
	for _, g := range gifts {
		if g.PersonID == nil {
			continue
		}
		out[*g.PersonID] = append(out[*g.PersonID], g)
	}
	return out
}
