package store

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestTotalWeightEmpty(t *testing.T) {
	s := newTestStore(t)

	total, err := s.TotalWeight(context.Background())
	if err != nil {
		t.Fatalf("TotalWeight: %v", err)
	}
	if !total.IsZero() {
		t.Errorf("expected 0, got %s", total)
	}
}

func TestAggregates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Insert(ctx, fields("Tent", "Shelter", 1, "2.3"))
	s.Insert(ctx, fields("Socks", "Clothing", 3, "0.1"))
	s.Insert(ctx, fields("Socks", "Clothing", 2, "0.1"))

	total, err := s.TotalWeight(ctx)
	if err != nil {
		t.Fatalf("TotalWeight: %v", err)
	}
	if !total.Equal(decimal.RequireFromString("2.8")) {
		t.Errorf("expected total 2.8, got %s", total)
	}

	byCategory, err := s.AggregateByCategory(ctx)
	if err != nil {
		t.Fatalf("AggregateByCategory: %v", err)
	}
	if len(byCategory) != 2 {
		t.Fatalf("expected 2 categories, got %v", byCategory)
	}
	if !byCategory["Shelter"].Equal(decimal.RequireFromString("2.3")) {
		t.Errorf("Shelter: expected 2.3, got %s", byCategory["Shelter"])
	}
	if !byCategory["Clothing"].Equal(decimal.RequireFromString("0.5")) {
		t.Errorf("Clothing: expected 0.5, got %s", byCategory["Clothing"])
	}

	byName, err := s.AggregateByName(ctx)
	if err != nil {
		t.Fatalf("AggregateByName: %v", err)
	}
	if diff := cmp.Diff(map[string]int{"Tent": 1, "Socks": 5}, byName); diff != "" {
		t.Errorf("AggregateByName mismatch (-want +got):\n%s", diff)
	}
}

func TestListedWeightsSumToTotal(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Insert(ctx, fields("Quilt", "Sleep", 1, "0.62"))
	s.Insert(ctx, fields("Pad", "Sleep", 1, "0.41"))
	s.Insert(ctx, fields("Bars", "Food", 7, "0.07"))

	items, _ := s.ListAll(ctx, 0)
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.TotalWeight())
	}

	total, _ := s.TotalWeight(ctx)
	if !sum.Equal(total) {
		t.Errorf("listed sum %s != TotalWeight %s", sum, total)
	}
}
