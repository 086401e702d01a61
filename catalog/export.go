package catalog

import (
	"io"
	"strings"

	"github.com/tealeg/xlsx"
)

// ExportXLSX writes the whole catalog as an Excel workbook, one product per
// row.
func (s *Store) ExportXLSX(w io.Writer) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return err
	}

	headers := []string{
		"ID", "Name", "Description", "Price", "OriginalPrice", "Category",
		"Weight", "Stock", "Rating", "Reviews", "Organic", "Ingredients",
		"CreatedAt",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, p := range s.products {
		row := sheet.AddRow()

		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.Description)
		row.AddCell().SetValue(p.Price)
		row.AddCell().SetValue(p.OriginalPrice)
		row.AddCell().SetValue(p.Category)
		row.AddCell().SetValue(p.Weight)
		row.AddCell().SetValue(p.Stock)
		row.AddCell().SetValue(p.Rating)
		row.AddCell().SetValue(len(p.Reviews))
		row.AddCell().SetValue(p.IsOrganic)
		row.AddCell().SetValue(strings.Join(p.Ingredients, ","))
		row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	return file.Write(w)
}
