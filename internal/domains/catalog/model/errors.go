package model

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrDuplicateProductID = errors.New("duplicate product id")
	ErrEmptyCatalog       = errors.New("catalog has no products")
	ErrInvalidSpreadsheet = errors.New("invalid catalog spreadsheet")
)
