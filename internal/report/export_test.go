package report

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bankableflunky5/HikingApp/internal/db"
	"github.com/Bankableflunky5/HikingApp/internal/inventory"
	"github.com/Bankableflunky5/HikingApp/internal/model"
	"github.com/Bankableflunky5/HikingApp/internal/store"
)

func newExampleEngine(t *testing.T, extra ...inventory.RawItem) *inventory.Engine {
	t.Helper()
	e := inventory.New(store.New(db.NewTestDB(t)))
	ctx := context.Background()

	items := append([]inventory.RawItem{
		{Name: "Tent", Category: "Shelter", Quantity: "1", Weight: "2.3"},
		{Name: "Socks", Category: "Clothing", Quantity: "3", Weight: "0.1"},
	}, extra...)
	for _, raw := range items {
		_, err := e.AddItem(ctx, raw)
		require.NoError(t, err)
	}
	return e
}

func TestExportRows(t *testing.T) {
	e := newExampleEngine(t)

	rows, err := Export(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"1", "Tent", "Shelter", "1", "2.30"},
		{"2", "Socks", "Clothing", "3", "0.10"},
		{"Total Weight", "", "", "", "2.60"},
	}, rows)
}

func TestExportEmpty(t *testing.T) {
	e := inventory.New(store.New(db.NewTestDB(t)))

	rows, err := Export(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Total Weight", "", "", "", "0.00"}}, rows)
}

func TestWriteCSVGolden(t *testing.T) {
	e := newExampleEngine(t, inventory.RawItem{Name: "Pot, titanium", Category: "Kitchen", Quantity: "1", Weight: "0.12"})

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(context.Background(), &buf, e))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "example", buf.Bytes())
}

func TestExportFile(t *testing.T) {
	e := newExampleEngine(t)
	path := filepath.Join(t.TempDir(), "gear.csv")

	require.NoError(t, ExportFile(context.Background(), path, e))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ID,Name,Category,Quantity,Weight (kg)\n"+
		"1,Tent,Shelter,1,2.30\n"+
		"2,Socks,Clothing,3,0.10\n"+
		"Total Weight,,,,2.60\n", string(data))
}

type failingSource struct{ err error }

func (f failingSource) ListByID(context.Context) ([]model.GearItem, error) { return nil, f.err }
func (f failingSource) TotalWeight(context.Context) (decimal.Decimal, error) {
	return decimal.Zero, f.err
}

func TestExportSurfacesStorageError(t *testing.T) {
	cause := &model.StorageError{Op: "listing gear", Err: errors.New("disk I/O error")}

	_, err := Export(context.Background(), failingSource{err: cause})
	var se *model.StorageError
	require.True(t, errors.As(err, &se))
	assert.Same(t, cause, se)
}
