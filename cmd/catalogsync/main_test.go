package main

import (
	"context"
	"testing"

	"hotel_concierge/internal/app"
	"hotel_concierge/internal/catalog"
	"hotel_concierge/internal/domain"
	"hotel_concierge/internal/storage/memory"
)

func TestRunSyncsBundledCatalog(t *testing.T) {
	hotels, errs, err := catalog.LoadFile("")
	if err != nil || len(errs) != 0 {
		t.Fatalf("load: %v %v", err, errs)
	}
	repo := memory.New()

	ok, failed := run(context.Background(), app.NewCatalogSyncService(repo), hotels, 4)
	if ok != len(hotels) || failed != 0 {
		t.Fatalf("ok=%d failed=%d", ok, failed)
	}
	stored, _ := repo.ListHotels(context.Background())
	if len(stored) != len(hotels) {
		t.Fatalf("stored %d of %d", len(stored), len(hotels))
	}
}

func TestRunCountsInvalidRows(t *testing.T) {
	hotels := []domain.Hotel{
		{ID: "h1", Name: "Good", PricePerNight: 1000, Rating: 4},
		{ID: "h2", Name: "", PricePerNight: 1000},
		{ID: "h3", Name: "Bad rating", PricePerNight: 1000, Rating: 7},
	}
	ok, failed := run(context.Background(), app.NewCatalogSyncService(memory.New()), hotels, 1)
	if ok != 1 || failed != 2 {
		t.Fatalf("ok=%d failed=%d", ok, failed)
	}
}
