package repository

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"bakery-storefront/internal/domains/catalog/model"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const MenuSheetName = "Menu"

// Column order shared by import and export.
var menuHeaders = []string{"ID", "Name", "Description", "Price", "Rating", "Image", "Alt"}

// LoadFromSpreadsheet reads a menu exported by WriteSpreadsheet (or edited by hand).
func LoadFromSpreadsheet(path string) ([]model.Product, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return readMenu(f)
}

// ReadSpreadsheet is LoadFromSpreadsheet for an already opened stream.
func ReadSpreadsheet(r io.Reader) ([]model.Product, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidSpreadsheet, err)
	}
	defer f.Close()

	return readMenu(f)
}

func readMenu(f *excelize.File) ([]model.Product, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: no sheets", model.ErrInvalidSpreadsheet)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidSpreadsheet, err)
	}
	if len(rows) < 2 {
		return nil, model.ErrEmptyCatalog
	}

	products := make([]model.Product, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNum := i + 2
		if isBlank(row) {
			continue
		}

		p, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", model.ErrInvalidSpreadsheet, rowNum, err)
		}
		products = append(products, p)
	}

	return products, nil
}

func parseRow(row []string) (model.Product, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	id, err := strconv.Atoi(cell(0))
	if err != nil {
		return model.Product{}, fmt.Errorf("id %q: %w", cell(0), err)
	}
	price, err := decimal.NewFromString(strings.ReplaceAll(cell(3), ",", "."))
	if err != nil {
		return model.Product{}, fmt.Errorf("price %q: %w", cell(3), err)
	}
	rating, err := strconv.Atoi(cell(4))
	if err != nil {
		return model.Product{}, fmt.Errorf("rating %q: %w", cell(4), err)
	}

	return model.Product{
		ID:          id,
		Name:        cell(1),
		Description: cell(2),
		Price:       price,
		Rating:      rating,
		Image:       cell(5),
		Alt:         cell(6),
	}, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// WriteSpreadsheet builds a workbook with one bold header row and one row per product.
func WriteSpreadsheet(products []model.Product) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", MenuSheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	for col, header := range menuHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(MenuSheetName, cell, header); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		lastCol, _ := excelize.CoordinatesToCellName(len(menuHeaders), 1)
		_ = f.SetCellStyle(MenuSheetName, "A1", lastCol, headerStyle)
	}

	for i, p := range products {
		values := []interface{}{p.ID, p.Name, p.Description, p.Price.StringFixed(2), p.Rating, p.Image, p.Alt}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(MenuSheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
