package inventory

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Bankableflunky5/HikingApp/internal/model"
)

// Validate trims raw and converts it into storable fields. Every field is
// required; the first failing one is reported.
func Validate(raw RawItem) (model.GearFields, error) {
	name := strings.TrimSpace(raw.Name)
	category := strings.TrimSpace(raw.Category)
	quantity := strings.TrimSpace(raw.Quantity)
	weight := strings.TrimSpace(raw.Weight)

	for _, f := range []struct{ field, value string }{
		{"name", name},
		{"category", category},
		{"quantity", quantity},
		{"weight", weight},
	} {
		if f.value == "" {
			return model.GearFields{}, &model.ValidationError{Field: f.field, Reason: "required"}
		}
	}

	qty, err := strconv.Atoi(quantity)
	if err != nil {
		return model.GearFields{}, &model.ValidationError{Field: "quantity", Reason: "must be a whole number"}
	}
	if qty < 1 {
		return model.GearFields{}, &model.ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}

	w, err := decimal.NewFromString(weight)
	if err != nil {
		return model.GearFields{}, &model.ValidationError{Field: "weight", Reason: "must be a number"}
	}
	if math.IsInf(w.InexactFloat64(), 0) {
		return model.GearFields{}, &model.ValidationError{Field: "weight", Reason: "is too large"}
	}
	if w.IsNegative() {
		return model.GearFields{}, &model.ValidationError{Field: "weight", Reason: "must not be negative"}
	}

	return model.GearFields{
		Name:     name,
		Category: category,
		Quantity: qty,
		Weight:   w,
	}, nil
}
