package catalog_test

import (
	"testing"

	"hotel_concierge/internal/catalog"
	"hotel_concierge/internal/domain"
)

func mustDefault(t *testing.T) *catalog.Catalog {
	t.Helper()
	hs, errs, err := catalog.LoadFile("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(errs) > 0 {
		t.Fatalf("bundled catalog has bad rows: %v", errs)
	}
	return catalog.New(hs)
}

func ids(hs []domain.Hotel) []string {
	out := make([]string, 0, len(hs))
	for _, h := range hs {
		out = append(out, h.ID)
	}
	return out
}

func assertRanked(t *testing.T, hs []domain.Hotel) {
	t.Helper()
	for i := 1; i < len(hs); i++ {
		a, b := hs[i-1], hs[i]
		if a.Rating < b.Rating {
			t.Fatalf("rating increases at %d: %s(%.1f) -> %s(%.1f)", i, a.ID, a.Rating, b.ID, b.Rating)
		}
		if a.Rating == b.Rating && a.PricePerNight > b.PricePerNight {
			t.Fatalf("price decreases among equal ratings at %d: %s -> %s", i, a.ID, b.ID)
		}
	}
}

func TestTop_DefaultOrder(t *testing.T) {
	c := mustDefault(t)
	got := ids(c.Top(6))
	want := []string{"h2", "h1", "h6", "h3", "h11", "h7"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestSearch_BudgetCeiling(t *testing.T) {
	c := mustDefault(t)
	got := c.Search(catalog.Filter{MaxPrice: 3000, Limit: 6})
	if len(got) != 6 {
		t.Fatalf("expected 6 results, got %d", len(got))
	}
	for _, h := range got {
		if h.PricePerNight > 3000 {
			t.Fatalf("%s over budget: %d", h.ID, h.PricePerNight)
		}
	}
	if got[0].ID != "h11" || got[1].ID != "h20" {
		t.Fatalf("unexpected head: %v", ids(got))
	}
	assertRanked(t, got)
}

func TestSearch_FiltersCombine(t *testing.T) {
	c := mustDefault(t)

	cases := []struct {
		name string
		f    catalog.Filter
		ok   func(domain.Hotel) bool
	}{
		{"location", catalog.Filter{Location: "SITABULDI"}, func(h domain.Hotel) bool { return h.Area == "Sitabuldi" }},
		{"rating", catalog.Filter{MinRating: 4.2}, func(h domain.Hotel) bool { return h.Rating >= 4.2 }},
		{"amenity", catalog.Filter{Amenities: []string{"pool"}}, func(h domain.Hotel) bool { return h.ID == "h1" || h.ID == "h2" }},
		{"all amenities", catalog.Filter{Amenities: []string{"wifi", "BAR"}}, func(h domain.Hotel) bool { return h.ID == "h1" || h.ID == "h4" }},
		{"price+area", catalog.Filter{MaxPrice: 2000, Location: "sadar"}, func(h domain.Hotel) bool {
			return h.PricePerNight <= 2000 && h.Area == "Sadar"
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Search(tc.f)
			if len(got) == 0 {
				t.Fatalf("expected matches")
			}
			for _, h := range got {
				if !tc.ok(h) {
					t.Fatalf("unexpected hotel %s (%s)", h.ID, h.Area)
				}
			}
			assertRanked(t, got)
		})
	}
}

func TestSearch_NoMatchIsEmptyNotNil(t *testing.T) {
	c := mustDefault(t)
	got := c.Search(catalog.Filter{MaxPrice: 600})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
}

func TestSearch_StableTieBreak(t *testing.T) {
	c := catalog.New([]domain.Hotel{
		{ID: "a", Name: "A", PricePerNight: 1000, Rating: 4},
		{ID: "b", Name: "B", PricePerNight: 1000, Rating: 4},
		{ID: "c", Name: "C", PricePerNight: 900, Rating: 4},
		{ID: "d", Name: "D", PricePerNight: 5000, Rating: 4.5},
	})
	got := ids(c.Search(catalog.Filter{}))
	want := []string{"d", "c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestByIDAndAreas(t *testing.T) {
	c := mustDefault(t)
	h, ok := c.ByID("H1")
	if !ok || h.Name != "Radisson Blu Hotel Nagpur" || h.PricePerNight != 5200 {
		t.Fatalf("unexpected h1: %+v ok=%v", h, ok)
	}
	if _, ok := c.ByID("h99"); ok {
		t.Fatalf("h99 should not exist")
	}
	areas := c.Areas()
	if len(areas) == 0 || areas[0] != "wardha road" {
		t.Fatalf("unexpected areas: %v", areas)
	}
}
