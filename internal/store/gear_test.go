package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/Bankableflunky5/HikingApp/internal/db"
	"github.com/Bankableflunky5/HikingApp/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(db.NewTestDB(t))
}

func fields(name, category string, qty int, weight string) model.GearFields {
	return model.GearFields{
		Name:     name,
		Category: category,
		Quantity: qty,
		Weight:   decimal.RequireFromString(weight),
	}
}

func ids(items []model.GearItem) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestInsertAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Insert(ctx, fields("Tent", "Shelter", 1, "2.3"))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	item, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if item.Name != "Tent" || item.Category != "Shelter" || item.Quantity != 1 {
		t.Errorf("unexpected item %+v", item)
	}
	if !item.Weight.Equal(decimal.RequireFromString("2.3")) {
		t.Errorf("expected weight 2.3, got %s", item.Weight)
	}
	if item.Checked {
		t.Error("expected new item to be unchecked")
	}
}

func TestGetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), 42)
	var nf *model.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.ID != 42 {
		t.Errorf("expected id 42 in error, got %d", nf.ID)
	}
}

func TestUpdateKeepsChecked(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, _ := s.Insert(ctx, fields("Tent", "Shelter", 1, "2.3"))
	s.SetChecked(ctx, "Tent", true)

	if err := s.Update(ctx, id, fields("Tarp", "Shelter", 2, "0.5")); err != nil {
		t.Fatalf("Update: %v", err)
	}

	item, _ := s.Get(ctx, id)
	if item.Name != "Tarp" || item.Quantity != 2 {
		t.Errorf("update not applied: %+v", item)
	}
	if !item.Checked {
		t.Error("expected checked flag to survive update")
	}
}

func TestUpdateMissing(t *testing.T) {
	s := newTestStore(t)

	err := s.Update(context.Background(), 7, fields("X", "Y", 1, "1"))
	var nf *model.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDeleteIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, _ := s.Insert(ctx, fields("Stove", "Kitchen", 1, "0.4"))
	if err := s.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, id); err != nil {
		t.Fatalf("second Delete: %v", err)
	}

	items, _ := s.ListAll(ctx, model.Unsorted)
	if len(items) != 0 {
		t.Errorf("expected empty store, got %d items", len(items))
	}
}

func TestListAllOrdering(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tent, _ := s.Insert(ctx, fields("Tent", "Shelter", 1, "2.3"))
	socks, _ := s.Insert(ctx, fields("Socks", "Clothing", 3, "0.1"))
	pot, _ := s.Insert(ctx, fields("Pot", "Kitchen", 1, "0.25"))

	tests := []struct {
		mode model.SortMode
		want []int64
	}{
		{model.Unsorted, []int64{socks, pot, tent}},
		{model.WeightAsc, []int64{socks, pot, tent}},
		{model.WeightDesc, []int64{tent, pot, socks}},
	}
	for _, tt := range tests {
		items, err := s.ListAll(ctx, tt.mode)
		if err != nil {
			t.Fatalf("ListAll(%v): %v", tt.mode, err)
		}
		if diff := cmp.Diff(tt.want, ids(items)); diff != "" {
			t.Errorf("ListAll(%v) order mismatch (-want +got):\n%s", tt.mode, diff)
		}
	}

	byID, _ := s.ListByID(ctx)
	if diff := cmp.Diff([]int64{tent, socks, pot}, ids(byID)); diff != "" {
		t.Errorf("ListByID order mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tent, _ := s.Insert(ctx, fields("Tent", "Shelter", 1, "2.3"))
	socks, _ := s.Insert(ctx, fields("Socks", "Clothing", 3, "0.1"))
	pegs, _ := s.Insert(ctx, fields("Pegs", "Shelter", 12, "0.01"))
	_, _ = s.Insert(ctx, fields("100% wool hat", "Clothing", 1, "0.05"))

	tests := []struct {
		term string
		want []int64
	}{
		{"shelter", []int64{tent, pegs}},
		{"SOCK", []int64{socks}},
		{"3", []int64{socks}},
		{"1", []int64{tent, pegs, 4}},
		{"%", []int64{4}},
		{"_", nil},
		{"nothing", nil},
	}
	for _, tt := range tests {
		var got []int64
		for item, err := range s.Search(ctx, tt.term) {
			if err != nil {
				t.Fatalf("Search(%q): %v", tt.term, err)
			}
			got = append(got, item.ID)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Search(%q) mismatch (-want +got):\n%s", tt.term, diff)
		}
	}
}

func TestSearchFoldsNonASCIICase(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	pants, _ := s.Insert(ctx, fields("Überhose", "Clothing", 1, "0.4"))
	_, _ = s.Insert(ctx, fields("Tent", "Shelter", 1, "2.3"))
	cup, _ := s.Insert(ctx, fields("Cup", "Küche", 1, "0.1"))

	tests := []struct {
		term string
		want []int64
	}{
		{"überhose", []int64{pants}},
		{"ÜBER", []int64{pants}},
		{"KÜCHE", []int64{cup}},
	}
	for _, tt := range tests {
		var got []int64
		for item, err := range s.Search(ctx, tt.term) {
			if err != nil {
				t.Fatalf("Search(%q): %v", tt.term, err)
			}
			got = append(got, item.ID)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Search(%q) mismatch (-want +got):\n%s", tt.term, diff)
		}
	}
}

func TestSearchReplays(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Insert(ctx, fields("Tent", "Shelter", 1, "2.3"))
	seq := s.Search(ctx, "tent")

	count := func() int {
		n := 0
		for _, err := range seq {
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			n++
		}
		return n
	}
	if count() != 1 {
		t.Fatal("expected one match on first pass")
	}

	s.Insert(ctx, fields("Tent footprint", "Shelter", 1, "0.2"))
	if n := count(); n != 2 {
		t.Errorf("expected fresh query on second pass to see 2 matches, got %d", n)
	}
}

func TestSearchEarlyBreak(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Insert(ctx, fields("A", "X", 1, "1"))
	s.Insert(ctx, fields("B", "X", 1, "1"))

	for range s.Search(ctx, "x") {
		break
	}

	// The connection must be released after the loop stops early.
	if _, err := s.ListAll(ctx, model.Unsorted); err != nil {
		t.Fatalf("ListAll after early break: %v", err)
	}
}
