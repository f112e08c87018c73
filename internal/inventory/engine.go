// Package inventory layers the gear rules over a Store: input validation,
// sorted and searched views, weight totals, the bodyweight limit, and the
// packing checklist.
package inventory

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Bankableflunky5/HikingApp/internal/model"
	"github.com/Bankableflunky5/HikingApp/internal/store"
)

// DefaultMaxLoadFraction is the share of bodyweight a pack should not exceed.
const DefaultMaxLoadFraction = 0.25

// Engine is the read/write surface presentation code talks to. It is not
// safe for concurrent use.
type Engine struct {
	store           *store.Store
	maxLoadFraction decimal.Decimal
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxLoadFraction overrides DefaultMaxLoadFraction.
func WithMaxLoadFraction(f float64) Option {
	return func(e *Engine) {
		e.maxLoadFraction = decimal.NewFromFloat(f)
	}
}

// New returns an engine over s.
func New(s *store.Store, opts ...Option) *Engine {
	e := &Engine{
		store:           s,
		maxLoadFraction: decimal.NewFromFloat(DefaultMaxLoadFraction),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Use switches the engine to s and returns the store it replaced, which the
// caller is responsible for closing.
func (e *Engine) Use(s *store.Store) *store.Store {
	prev := e.store
	e.store = s
	slog.Info("switched gear database", "path", s.Path())
	return prev
}

// Store returns the active store.
func (e *Engine) Store() *store.Store {
	return e.store
}

// RawItem holds item fields as typed by the user.
type RawItem struct {
	Name     string
	Category string
	Quantity string
	Weight   string
}

// AddItem validates raw and stores it as a new, unchecked item.
func (e *Engine) AddItem(ctx context.Context, raw RawItem) (model.GearItem, error) {
	f, err := Validate(raw)
	if err != nil {
		return model.GearItem{}, err
	}

	id, err := e.store.Insert(ctx, f)
	if err != nil {
		return model.GearItem{}, err
	}
	slog.Debug("added gear item", "id", id, "name", f.Name)
	return e.store.Get(ctx, id)
}

// EditItem validates raw and overwrites the item's fields. The id and checked
// flag are kept.
func (e *Engine) EditItem(ctx context.Context, id int64, raw RawItem) (model.GearItem, error) {
	f, err := Validate(raw)
	if err != nil {
		return model.GearItem{}, err
	}

	if err := e.store.Update(ctx, id, f); err != nil {
		return model.GearItem{}, err
	}
	return e.store.Get(ctx, id)
}

// RemoveItem deletes the item. Removing an unknown id succeeds.
func (e *Engine) RemoveItem(ctx context.Context, id int64) error {
	return e.store.Delete(ctx, id)
}

// ListAll returns every item in the default (category) order.
func (e *Engine) ListAll(ctx context.Context) ([]model.GearItem, error) {
	return e.store.ListAll(ctx, model.Unsorted)
}

// ListByID returns every item in the order it was added.
func (e *Engine) ListByID(ctx context.Context) ([]model.GearItem, error) {
	return e.store.ListByID(ctx)
}

// SortedView returns every item in the order mode selects. Callers cycling
// through modes keep their own state and advance it with SortMode.Next.
func (e *Engine) SortedView(ctx context.Context, mode model.SortMode) ([]model.GearItem, error) {
	return e.store.ListAll(ctx, mode)
}

// View is a listing together with the total weight of the listed items.
type View struct {
	Items []model.GearItem
	Total decimal.Decimal
}

// SearchView returns the items matching term and their combined weight. The
// total covers the matches only. An empty term lists everything.
func (e *Engine) SearchView(ctx context.Context, term string) (View, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		items, err := e.SortedView(ctx, model.Unsorted)
		if err != nil {
			return View{}, err
		}
		total, err := e.TotalWeight(ctx)
		if err != nil {
			return View{}, err
		}
		return View{Items: items, Total: total}, nil
	}

	v := View{Total: decimal.Zero}
	for item, err := range e.store.Search(ctx, term) {
		if err != nil {
			return View{}, err
		}
		v.Items = append(v.Items, item)
		v.Total = v.Total.Add(item.TotalWeight())
	}
	return v, nil
}

// TotalWeight returns the combined weight of all items.
func (e *Engine) TotalWeight(ctx context.Context) (decimal.Decimal, error) {
	return e.store.TotalWeight(ctx)
}

// AggregateByCategory returns the combined weight per category.
func (e *Engine) AggregateByCategory(ctx context.Context) (map[string]decimal.Decimal, error) {
	return e.store.AggregateByCategory(ctx)
}

// AggregateByName returns the combined quantity per item name.
func (e *Engine) AggregateByName(ctx context.Context) (map[string]int, error) {
	return e.store.AggregateByName(ctx)
}

// MaxLoadFraction returns the share of bodyweight used for the limit.
func (e *Engine) MaxLoadFraction() decimal.Decimal {
	return e.maxLoadFraction
}

// MaxRecommendedWeight returns the heaviest pack recommended for someone of
// the given bodyweight in kilograms.
func (e *Engine) MaxRecommendedWeight(bodyweightKg float64) (decimal.Decimal, error) {
	if !(bodyweightKg > 0) || math.IsInf(bodyweightKg, 1) {
		return decimal.Zero, &model.ValidationError{Field: "bodyweight", Reason: "must be greater than zero"}
	}
	return decimal.NewFromFloat(bodyweightKg).Mul(e.maxLoadFraction), nil
}

// WeightStatus compares the pack total against the bodyweight limit.
type WeightStatus struct {
	Total decimal.Decimal
	Limit decimal.Decimal
}

// Over reports whether the total exceeds the limit.
func (s WeightStatus) Over() bool {
	return s.Total.GreaterThan(s.Limit)
}

// Remaining returns how much weight may still be added, negative when over.
func (s WeightStatus) Remaining() decimal.Decimal {
	return s.Limit.Sub(s.Total)
}

// WeightStatus returns the pack total and the limit for bodyweightKg.
func (e *Engine) WeightStatus(ctx context.Context, bodyweightKg float64) (WeightStatus, error) {
	limit, err := e.MaxRecommendedWeight(bodyweightKg)
	if err != nil {
		return WeightStatus{}, err
	}
	total, err := e.TotalWeight(ctx)
	if err != nil {
		return WeightStatus{}, err
	}
	return WeightStatus{Total: total, Limit: limit}, nil
}
