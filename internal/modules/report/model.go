package report

import (
	"time"
)

// DetailedRow is one ledger movement inside the report window. UnitPrice is
// nil when the quantity is zero; the report renders an empty cell instead
// of failing.
type DetailedRow struct {
	MovementDate time.Time `db:"movement_date" json:"movement_date"`
	LocalDate    string    `db:"-" json:"local_date"`
	ProductName  string    `db:"product_name" json:"product_name"`
	Quantity     float64   `db:"quantity" json:"quantity"`
	Unit         string    `db:"unit" json:"unit"`
	UnitPrice    *float64  `db:"-" json:"unit_price"`
	TotalPrice   float64   `db:"total_price" json:"total_price"`
}

// SummaryRow aggregates the window's movements for one (product, unit)
// pair. Products without movements in the window do not appear.
type SummaryRow struct {
	ProductName   string  `db:"product_name" json:"product_name"`
	TotalQuantity float64 `db:"total_quantity" json:"total_quantity"`
	Unit          string  `db:"unit" json:"unit"`
	TotalPrice    float64 `db:"total_price" json:"total_price"`
}

// Table is the tabular form handed to the export collaborator: ordered
// columns with literal header labels in the reporting locale.
type Table struct {
	Title   string          `json:"title"`
	Columns []string        `json:"columns"`
	Rows    [][]interface{} `json:"rows"`
}

var detailedColumns = []string{"TARİH", "ÜRÜN ADI", "MİKTAR", "BİRİM", "BİRİM FİYAT", "TOPLAM FİYAT"}

var summaryColumns = []string{"ÜRÜN ADI", "TOPLAM MİKTAR", "BİRİM", "TOPLAM FİYAT"}

// DetailedTable renders detailed rows into tabular form.
func DetailedTable(rows []*DetailedRow) *Table {
	t := &Table{Title: "Detaylı Hareket Raporu", Columns: detailedColumns}
	for _, r := range rows {
		var unitPrice interface{}
		if r.UnitPrice != nil {
			unitPrice = *r.UnitPrice
		}
		t.Rows = append(t.Rows, []interface{}{
			r.LocalDate, r.ProductName, r.Quantity, r.Unit, unitPrice, r.TotalPrice,
		})
	}
	return t
}

// SummaryTable renders summary rows into tabular form.
func SummaryTable(rows []*SummaryRow) *Table {
	t := &Table{Title: "Özet Rapor", Columns: summaryColumns}
	for _, r := range rows {
		t.Rows = append(t.Rows, []interface{}{
			r.ProductName, r.TotalQuantity, r.Unit, r.TotalPrice,
		})
	}
	return t
}

// SummaryTotal is the summed stock value over the summary rows.
func SummaryTotal(rows []*SummaryRow) float64 {
	var total float64
	for _, r := range rows {
		total += r.TotalPrice
	}
	return total
}
