package catalog

import (
	"reflect"
	"testing"
)

func TestParseTier(t *testing.T) {
	cases := []struct {
		in   string
		want Tier
	}{
		{"low", TierLow},
		{"mid", TierMid},
		{"high", TierHigh},
		{"", TierMid},
		{"hard", TierMid},
	}
	for _, tc := range cases {
		if got := ParseTier(tc.in); got != tc.want {
			t.Errorf("ParseTier(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestNew_DefaultsAndDedup(t *testing.T) {
	c := New([]Problem{
		{ID: "P1", Unit: "Sets"},
		{ID: "P1", Unit: "Shadowed"},
		{ID: "P2", Unit: "Ratios", Tier: TierHigh},
	})

	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (duplicate dropped)", c.Len())
	}
	p, ok := c.Lookup("P1")
	if !ok {
		t.Fatal("P1 not found")
	}
	if p.Unit != "Sets" {
		t.Errorf("duplicate ID should keep the first row, got unit %q", p.Unit)
	}
	if p.Tier != TierMid {
		t.Errorf("empty tier should default to mid, got %s", p.Tier)
	}
}

func TestLookup_Missing(t *testing.T) {
	c := New(nil)
	if _, ok := c.Lookup("nope"); ok {
		t.Error("Lookup on empty catalog should report not found")
	}
}

func TestByTier_PreservesLoadOrder(t *testing.T) {
	c := New([]Problem{
		{ID: "A", Tier: TierLow},
		{ID: "B", Tier: TierHigh},
		{ID: "C", Tier: TierLow},
	})
	got := c.ByTier(TierLow)
	if len(got) != 2 || got[0].ID != "A" || got[1].ID != "C" {
		t.Errorf("ByTier(low) = %v, want [A C]", got)
	}
}

func TestTopUnits(t *testing.T) {
	c := New([]Problem{
		{ID: "1", Unit: "Sets", Tier: TierLow},
		{ID: "2", Unit: "Ratios", Tier: TierLow},
		{ID: "3", Unit: "Ratios", Tier: TierLow},
		{ID: "4", Unit: "Speed", Tier: TierLow},
		{ID: "5", Unit: "Ratios", Tier: TierHigh}, // other tier, not counted
	})

	got := c.TopUnits(TierLow, 2)
	want := []string{"Ratios", "Sets"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopUnits = %v, want %v (count desc, first-seen on ties)", got, want)
	}
}

func TestUnsolvedAt(t *testing.T) {
	c := New([]Problem{
		{ID: "A", Tier: TierLow},
		{ID: "B", Tier: TierLow},
		{ID: "C", Tier: TierMid},
	})
	got := c.UnsolvedAt(TierLow, map[string]bool{"A": true, "C": true})
	if len(got) != 1 || got[0].ID != "B" {
		t.Errorf("UnsolvedAt = %v, want [B]", got)
	}
}
