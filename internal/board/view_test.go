package board

import (
	"context"
	"testing"

	"gifttrack/internal/gift"
)

func TestColumnsGroupAndRecompute(t *testing.T) {
	c, api := newBoard(t)
	a := "person-a"
	api.gifts = []gift.Gift{
		{ID: "g1", Name: "Svetr", PersonID: &a, Status: gift.StatusIdea, Price: fp(800)},
		{ID: "g2", Name: "Hrnek", PersonID: &a, Status: gift.StatusGiven, Price: fp(150)},
		{ID: "g3", Name: "Lego"},
	}
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	cols := c.Columns()
	if len(cols) != 2 {
		t.Fatalf("expected a lane per person, got %d", len(cols))
	}

	anna := cols[0]
	if anna.Name != "Anna" || len(anna.Gifts) != 2 {
		t.Fatalf("anna lane wrong: %s with %d gifts", anna.Name, len(anna.Gifts))
	}
	if anna.Planned != 800 || anna.Spent != 150 || anna.TotalSpent != 950 || anna.GiftCount != 2 {
		t.Errorf("anna lane stats wrong: %+v", anna.PersonStats)
	}

	petr := cols[1]
	if petr.GiftCount != 0 || len(petr.Gifts) != 0 {
		t.Errorf("petr lane should be empty: %+v", petr.PersonStats)
	}

	un := c.Unassigned()
	if len(un) != 1 || un[0].ID != "g3" {
		t.Errorf("unassigned = %v, want g3", un)
	}

	tot := c.Totals()
	if tot.TotalGifts != 3 || tot.TotalSpentReal != 150 || tot.TotalPlanned != 800 {
		t.Errorf("totals wrong: %+v", tot)
	}
}
