package service

import (
	"fmt"
	"io"
	"sort"

	"bakery-storefront/internal/domains/catalog/model"
	"bakery-storefront/internal/domains/catalog/repository"

	"github.com/shopspring/decimal"
)

// ServiceInterface is what other domains need from the menu.
type ServiceInterface interface {
	List() []model.Product
	Get(id int) (model.Product, error)
	Price(id int) (decimal.Decimal, bool)
	ExportMenu(w io.Writer) error
}

// Catalog is an immutable, id-indexed menu.
type Catalog struct {
	products []model.Product
	byID     map[int]model.Product
}

// NewCatalog validates every product and rejects duplicate ids.
func NewCatalog(products []model.Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, model.ErrEmptyCatalog
	}

	byID := make(map[int]model.Product, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("product %d: %w", p.ID, err)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: %d", model.ErrDuplicateProductID, p.ID)
		}
		byID[p.ID] = p
	}

	sorted := make([]model.Product, len(products))
	copy(sorted, products)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	return &Catalog{products: sorted, byID: byID}, nil
}

// Load builds the catalog from the spreadsheet at path, or the built-in menu when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return NewCatalog(repository.DefaultMenu())
	}

	products, err := repository.LoadFromSpreadsheet(path)
	if err != nil {
		return nil, err
	}
	return NewCatalog(products)
}

// List returns the menu ordered by id.
func (c *Catalog) List() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Get(id int) (model.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return model.Product{}, fmt.Errorf("%w: %d", model.ErrProductNotFound, id)
	}
	return p, nil
}

func (c *Catalog) Price(id int) (decimal.Decimal, bool) {
	p, ok := c.byID[id]
	return p.Price, ok
}

func (c *Catalog) ExportMenu(w io.Writer) error {
	f, err := repository.WriteSpreadsheet(c.products)
	if err != nil {
		return fmt.Errorf("failed to build menu spreadsheet: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write menu spreadsheet: %w", err)
	}
	return nil
}
