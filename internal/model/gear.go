package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// GearItem is one piece of equipment. Weight is per unit, in kilograms.
type GearItem struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Quantity int             `json:"quantity"`
	Weight   decimal.Decimal `json:"weight"`
	Checked  bool            `json:"checked"`
}

// TotalWeight returns the item's contribution to aggregate weight.
func (g GearItem) TotalWeight() decimal.Decimal {
	return g.Weight.Mul(decimal.NewFromInt(int64(g.Quantity)))
}

// GearFields are the user-editable fields of an item, already validated.
type GearFields struct {
	Name     string
	Category string
	Quantity int
	Weight   decimal.Decimal
}

// SortMode selects the order of an inventory listing.
type SortMode int

// Sort modes, in the order a weight column header cycles through them.
const (
	Unsorted SortMode = iota
	WeightAsc
	WeightDesc
)

// Next returns the mode after m in the Unsorted → WeightAsc → WeightDesc cycle.
func (m SortMode) Next() SortMode {
	return (m + 1) % 3
}

func (m SortMode) String() string {
	switch m {
	case Unsorted:
		return "unsorted"
	case WeightAsc:
		return "asc"
	case WeightDesc:
		return "desc"
	default:
		return fmt.Sprintf("SortMode(%d)", int(m))
	}
}

// ParseSortMode parses the names returned by SortMode.String.
func ParseSortMode(s string) (SortMode, error) {
	switch s {
	case "", "unsorted":
		return Unsorted, nil
	case "asc":
		return WeightAsc, nil
	case "desc":
		return WeightDesc, nil
	default:
		return Unsorted, fmt.Errorf("unknown sort mode %q", s)
	}
}

// ChecklistEntry is the packed state of every item sharing Name.
type ChecklistEntry struct {
	Name    string `json:"name"`
	Checked bool   `json:"checked"`
}
