package store

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Bankableflunky5/HikingApp/internal/db"
	"github.com/Bankableflunky5/HikingApp/internal/model"
)

func TestSetCheckedByName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Insert(ctx, fields("Socks", "Clothing", 1, "0.1"))
	s.Insert(ctx, fields("Tent", "Shelter", 1, "2.3"))
	s.Insert(ctx, fields("Socks", "Spare", 2, "0.1"))

	if err := s.SetChecked(ctx, "Socks", true); err != nil {
		t.Fatalf("SetChecked: %v", err)
	}

	got, err := s.Checklist(ctx)
	if err != nil {
		t.Fatalf("Checklist: %v", err)
	}
	want := []model.ChecklistEntry{
		{Name: "Socks", Checked: true},
		{Name: "Tent", Checked: false},
		{Name: "Socks", Checked: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Checklist mismatch (-want +got):\n%s", diff)
	}
}

func TestSetCheckedAll(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Insert(ctx, fields("Tent", "Shelter", 1, "2.3"))
	s.Insert(ctx, fields("Stove", "Kitchen", 1, "0.4"))

	err := s.SetCheckedAll(ctx, []model.ChecklistEntry{
		{Name: "Tent", Checked: true},
		{Name: "Stove", Checked: false},
		{Name: "Missing", Checked: true},
	})
	if err != nil {
		t.Fatalf("SetCheckedAll: %v", err)
	}

	got, _ := s.Checklist(ctx)
	want := []model.ChecklistEntry{{Name: "Tent", Checked: true}, {Name: "Stove", Checked: false}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Checklist mismatch (-want +got):\n%s", diff)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := db.NewTestFile(t)
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	id, _ := s.Insert(ctx, fields("Tent", "Shelter", 1, "2.3"))
	s.SetChecked(ctx, "Tent", true)
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	if s.Path() != path {
		t.Errorf("expected path %q, got %q", path, s.Path())
	}
	item, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if !item.Checked {
		t.Error("expected checked flag to persist")
	}
}
