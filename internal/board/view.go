package board

import "gifttrack/internal/gift"

// Column is one person's lane on the board view: the person, the stats for
// the gifts currently on screen, and those gifts in display order.
type Column struct {
	gift.PersonView
	Gifts []gift.Gift
}

// Columns groups the loaded gifts under their people. Stats are recomputed
// from the displayed gifts with the same computation the server uses, so
// the lanes can never disagree with the list below them.
func (c *Controller) Columns() []Column {
	c.mu.Lock()
	defer c.mu.Unlock()

	byPerson := gift.GiftsByPerson(c.gifts)
	out := make([]Column, 0, len(c.people))
	for _, pv := range c.people {
		g := byPerson[pv.ID]
		out = append(out, Column{
			PersonView: gift.PersonView{Person: pv.Person, PersonStats: gift.ComputeStats(g)},
			Gifts:      g,
		})
	}
	return out
}

// Unassigned returns gifts without an owner; they appear in the list view
// only and cannot receive drops.
func (c *Controller) Unassigned() []gift.Gift {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []gift.Gift
	for _, g := range c.gifts {
		if g.PersonID == nil {
			out = append(out, g)
		}
	}
	return out
}

// Totals recomputes the header numbers across every loaded gift.
func (c *Controller) Totals() gift.Totals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return gift.ComputeTotals(c.gifts)
}
