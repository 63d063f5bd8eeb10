package gift

import (
	"math"
	"testing"
)

func fp(v float64) *float64 { return &v }
func sp(s string) *string   { return &s }

func TestComputeStats(t *testing.T) {
	gifts := []Gift{
		{Name: "Kniha", Status: StatusIdea, Price: fp(250)},
		{Name: "Svetr", Status: StatusOrdered, Price: fp(800)},
		{Name: "Hrnek", Status: StatusGiven, Price: fp(150)},
		{Name: "Ponožky", Status: StatusWrapped}, // no price
		{Name: "Lego", Status: StatusIdea},       // no price
	}

	s := ComputeStats(gifts)

	if s.GiftCount != 5 {
		t.Errorf("GiftCount = %d, want 5", s.GiftCount)
	}
	if s.Planned != 250 {
		t.Errorf("Planned = %v, want 250 (only priced IDEA gifts)", s.Planned)
	}
	if s.Spent != 950 {
		t.Errorf("Spent = %v, want 950 (only priced non-IDEA gifts)", s.Spent)
	}
	if math.Abs(s.TotalSpent-(s.Spent+s.Planned)) > 1e-9 {
		t.Errorf("TotalSpent = %v, want Spent+Planned = %v", s.TotalSpent, s.Spent+s.Planned)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	s := ComputeStats(nil)
	if s.Spent != 0 || s.Planned != 0 || s.TotalSpent != 0 || s.GiftCount != 0 {
		t.Errorf("stats over no gifts should be all zero, got %+v", s)
	}
}

func TestComputeTotals(t *testing.T) {
	a, b := "a", "b"
	gifts := []Gift{
		{PersonID: &a, Status: StatusIdea, Price: fp(100)},
		{PersonID: &a, Status: StatusGiven, Price: fp(300)},
		{PersonID: &b, Status: StatusOrdered, Price: fp(50)},
		{PersonID: nil, Status: StatusIdea, Price: fp(20)}, // unassigned still counts
	}

	tot := ComputeTotals(gifts)
	if tot.TotalGifts != 4 {
		t.Errorf("TotalGifts = %d, want 4", tot.TotalGifts)
	}
	if tot.TotalSpentReal != 350 {
		t.Errorf("TotalSpentReal = %v, want 350", tot.TotalSpentReal)
	}
	if tot.TotalPlanned != 120 {
		t.Errorf("TotalPlanned = %v, want 120", tot.TotalPlanned)
	}
}

func TestGiftsByPerson(t *testing.T) {
	a, b := "a", "b"
	gifts := []Gift{
		{ID: "1", PersonID: &a},
		{ID: "2", PersonID: &b},
		{ID: "3", PersonID: &a},
		{ID: "4"}, // unassigned
	}

	byPerson := GiftsByPerson(gifts)
	if len(byPerson) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(byPerson))
	}
	if got := len(byPerson[a]); got != 2 {
		t.Errorf("person a has %d gifts, want 2", got)
	}
	if got := len(byPerson[b]); got != 1 {
		t.Errorf("person b has %d gifts, want 1", got)
	}
}
