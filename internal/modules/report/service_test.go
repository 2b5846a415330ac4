package report

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaletesis/stoktakip-backend/internal/apperr"
)

type fakeMovement struct {
	date    time.Time
	product string
	qty     float64
	unit    string
	price   float64
}

// fakeRepository derives both projections from one movement list, the way
// the SQL queries derive them from one table.
type fakeRepository struct {
	movements []fakeMovement
}

func (f *fakeRepository) MovementsInWindow(ctx context.Context, start, end time.Time) ([]*DetailedRow, error) {
	var rows []*DetailedRow
	for _, m := range f.movements {
		if m.date.Before(start) || m.date.After(end) {
			continue
		}
		rows = append(rows, &DetailedRow{
			MovementDate: m.date,
			ProductName:  m.product,
			Quantity:     m.qty,
			Unit:         m.unit,
			TotalPrice:   m.price,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].MovementDate.After(rows[j].MovementDate) })
	return rows, nil
}

func (f *fakeRepository) SummaryInWindow(ctx context.Context, start, end time.Time) ([]*SummaryRow, error) {
	type key struct{ product, unit string }
	sums := make(map[key]*SummaryRow)
	for _, m := range f.movements {
		if m.date.Before(start) || m.date.After(end) {
			continue
		}
		k := key{m.product, m.unit}
		if _, ok := sums[k]; !ok {
			sums[k] = &SummaryRow{ProductName: m.product, Unit: m.unit}
		}
		sums[k].TotalQuantity += m.qty
		sums[k].TotalPrice += m.price
	}
	var rows []*SummaryRow
	for _, r := range sums {
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ProductName < rows[j].ProductName })
	return rows, nil
}

var (
	windowStart = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)
)

func day(d int) time.Time {
	return time.Date(2026, 1, d, 10, 0, 0, 0, time.UTC)
}

func TestDetailedReport(t *testing.T) {
	svc := NewService(&fakeRepository{movements: []fakeMovement{
		{day(5), "Domates", 10, "kg", 150},
		{day(6), "Domates", 5, "kg", 80},
		{time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC), "Domates", 99, "kg", 990},
	}})

	rows, err := svc.DetailedReport(context.Background(), windowStart, windowEnd)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Newest first, unit price rounded to 2 decimals.
	assert.Equal(t, 5.0, rows[0].Quantity)
	require.NotNil(t, rows[0].UnitPrice)
	assert.Equal(t, 16.0, *rows[0].UnitPrice)
	assert.Equal(t, 10.0, rows[1].Quantity)
	require.NotNil(t, rows[1].UnitPrice)
	assert.Equal(t, 15.0, *rows[1].UnitPrice)
	assert.NotEmpty(t, rows[0].LocalDate)
}

func TestDetailedReportRounding(t *testing.T) {
	svc := NewService(&fakeRepository{movements: []fakeMovement{
		{day(5), "Peynir", 3, "kg", 100},
	}})

	rows, err := svc.DetailedReport(context.Background(), windowStart, windowEnd)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].UnitPrice)
	assert.Equal(t, 33.33, *rows[0].UnitPrice)
}

func TestDetailedReportZeroQuantity(t *testing.T) {
	svc := NewService(&fakeRepository{movements: []fakeMovement{
		{day(5), "Domates", 0, "kg", 50},
	}})

	// A zero-quantity movement must not fail the report; the unit price
	// is simply undefined.
	rows, err := svc.DetailedReport(context.Background(), windowStart, windowEnd)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].UnitPrice)
}

func TestSummaryReport(t *testing.T) {
	svc := NewService(&fakeRepository{movements: []fakeMovement{
		{day(5), "Domates", 10, "kg", 150},
		{day(6), "Domates", 5, "kg", 80},
	}})

	rows, err := svc.SummaryReport(context.Background(), windowStart, windowEnd)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Domates", rows[0].ProductName)
	assert.Equal(t, 15.0, rows[0].TotalQuantity)
	assert.Equal(t, "kg", rows[0].Unit)
	assert.Equal(t, 230.0, rows[0].TotalPrice)
	assert.Equal(t, 230.0, SummaryTotal(rows))
}

func TestSummaryGroupsByProductAndUnit(t *testing.T) {
	svc := NewService(&fakeRepository{movements: []fakeMovement{
		{day(5), "Domates", 10, "kg", 150},
		{day(6), "Domates", 3, "adet", 15},
		{day(7), "Viski", 2, "litre", 500},
	}})
	ctx := context.Background()

	summary, err := svc.SummaryReport(ctx, windowStart, windowEnd)
	require.NoError(t, err)
	// A product tracked in two units yields two rows.
	assert.Len(t, summary, 3)

	// Summed quantities match the detailed rows grouped on the same key.
	detailed, err := svc.DetailedReport(ctx, windowStart, windowEnd)
	require.NoError(t, err)

	type key struct{ product, unit string }
	sums := make(map[key]float64)
	for _, r := range detailed {
		sums[key{r.ProductName, r.Unit}] += r.Quantity
	}
	for _, r := range summary {
		assert.InDelta(t, sums[key{r.ProductName, r.Unit}], r.TotalQuantity, 1e-9)
	}
}

func TestReportWindowValidation(t *testing.T) {
	svc := NewService(&fakeRepository{})
	ctx := context.Background()

	_, err := svc.DetailedReport(ctx, windowEnd, windowStart)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	_, err = svc.SummaryReport(ctx, time.Time{}, windowEnd)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestReportIdempotent(t *testing.T) {
	svc := NewService(&fakeRepository{movements: []fakeMovement{
		{day(5), "Domates", 10, "kg", 150},
	}})
	ctx := context.Background()

	first, err := svc.SummaryReport(ctx, windowStart, windowEnd)
	require.NoError(t, err)
	second, err := svc.SummaryReport(ctx, windowStart, windowEnd)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTables(t *testing.T) {
	price := 15.0
	detailed := DetailedTable([]*DetailedRow{{
		LocalDate:   "05.01.2026 10:00",
		ProductName: "Domates",
		Quantity:    10,
		Unit:        "kg",
		UnitPrice:   &price,
		TotalPrice:  150,
	}})
	assert.Equal(t, []string{"TARİH", "ÜRÜN ADI", "MİKTAR", "BİRİM", "BİRİM FİYAT", "TOPLAM FİYAT"}, detailed.Columns)
	require.Len(t, detailed.Rows, 1)
	assert.Equal(t, "Domates", detailed.Rows[0][1])

	summary := SummaryTable([]*SummaryRow{{ProductName: "Domates", TotalQuantity: 15, Unit: "kg", TotalPrice: 230}})
	assert.Equal(t, []string{"ÜRÜN ADI", "TOPLAM MİKTAR", "BİRİM", "TOPLAM FİYAT"}, summary.Columns)
	require.Len(t, summary.Rows, 1)
	assert.Equal(t, 230.0, summary.Rows[0][3])
}
