// Package products defines the catalog product record and its collection kind.
package products

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-admin-console/components/collection"
)

// CollectionName is the collection code used by routes and exports.
const CollectionName = "products"

// Validation messages shown to the operator.
const (
	MessageIncomplete = "Please fill in all fields correctly."
	MessageRange      = "Price must be greater than 0 and stock must be non-negative."
)

// Draft field names.
const (
	FieldName        = "name"
	FieldCategory    = "category"
	FieldPrice       = "price"
	FieldStock       = "stock"
	FieldDescription = "description"
	FieldImage       = "image"
)

// Product is a catalog entry.
type Product struct {
	ID          int     `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Category    string  `json:"category" yaml:"category"`
	Price       float64 `json:"price" yaml:"price"`
	Stock       int     `json:"stock" yaml:"stock"`
	Description string  `json:"description" yaml:"description"`
	Image       string  `json:"image" yaml:"image"`
}

// Kind implements collection.Kind for products. Ids are assigned by the store.
type Kind struct{}

var _ collection.Kind[Product] = Kind{}

func (Kind) Name() string { return CollectionName }

func (Kind) Identity(p Product) int { return p.ID }

func (Kind) WithIdentity(p Product, id int) Product {
	p.ID = id
	return p
}

func (Kind) AssignsIdentity() bool { return true }

func (Kind) Fields() []string {
	return []string{FieldName, FieldCategory, FieldPrice, FieldStock, FieldDescription, FieldImage}
}

func (k Kind) Blank() collection.Draft {
	draft := collection.Draft{}
	for _, field := range k.Fields() {
		draft[field] = ""
	}
	return draft
}

func (Kind) DraftOf(p Product) collection.Draft {
	return collection.Draft{
		"id":             strconv.Itoa(p.ID),
		FieldName:        p.Name,
		FieldCategory:    p.Category,
		FieldPrice:       strconv.FormatFloat(p.Price, 'f', -1, 64),
		FieldStock:       strconv.Itoa(p.Stock),
		FieldDescription: p.Description,
		FieldImage:       p.Image,
	}
}

// Build requires every text field and numeric price/stock, then a positive
// price and non-negative stock.
func (Kind) Build(d collection.Draft) (Product, error) {
	name := d.Value(FieldName)
	category := d.Value(FieldCategory)
	description := d.Value(FieldDescription)
	image := d.Value(FieldImage)
	price, priceErr := parseDecimal(d.Value(FieldPrice))
	stock, stockErr := strconv.Atoi(d.Value(FieldStock))
	if name == "" || category == "" || description == "" || image == "" || priceErr != nil || stockErr != nil {
		return Product{}, collection.Invalid(MessageIncomplete)
	}
	if price <= 0 || stock < 0 {
		return Product{}, collection.Invalid(MessageRange)
	}
	return Product{
		Name:        name,
		Category:    category,
		Price:       price,
		Stock:       stock,
		Description: description,
		Image:       image,
	}, nil
}

// SetField rejects every field: products have no single-field transitions.
func (Kind) SetField(p Product, field, _ string) (Product, error) {
	return p, fmt.Errorf("%w: %s", collection.ErrUnknownField, field)
}

func (Kind) SearchText(p Product) []string {
	return []string{p.Name, p.Description}
}

func (Kind) Category(p Product) string { return p.Category }

func (Kind) Row(p Product) collection.Row {
	return collection.Row{
		{Name: "id", Value: strconv.Itoa(p.ID)},
		{Name: FieldName, Value: p.Name},
		{Name: FieldCategory, Value: p.Category},
		{Name: FieldPrice, Value: strconv.FormatFloat(p.Price, 'f', 2, 64)},
		{Name: FieldStock, Value: strconv.Itoa(p.Stock)},
		{Name: FieldDescription, Value: p.Description},
		{Name: FieldImage, Value: p.Image},
	}
}

func parseDecimal(value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrSyntax
	}
	return f, nil
}
