package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"bookstore-api/internal/domain"
	productrepo "bookstore-api/internal/repository/product"
	productsvc "bookstore-api/internal/service/product"
)

// CSVImporter reads bookshop CSV exports and appends the rows to the
// product catalog. Imported rows get ids continuing the stored sequence.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo productrepo.Repository
	importedBy  string
	now         func() time.Time
}

func NewCSVImporter(r io.Reader, repo productrepo.Repository, importedBy string) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
		importedBy:  importedBy,
		now:         time.Now,
	}
}

type csvRow struct {
	Title         string
	Author        string
	ISBN          string
	Category      string
	Price         float64
	DiscountPrice *float64
	Stock         int
	Description   string
	ImageURL      string
}

// Run parses the CSV and appends every valid row as an active product.
// It returns the number of products written.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	products, err := i.productRepo.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("load catalog: %w", err)
	}

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read row: %w", err)
		}

		row, err := parseRow(record, index)
		if err != nil {
			return 0, err
		}
		if row == nil {
			continue
		}

		products = append(products, i.toProduct(row, nextID(products)))
		imported++
	}

	if imported == 0 {
		return 0, nil
	}
	if err := i.productRepo.ReplaceAll(ctx, products); err != nil {
		return 0, fmt.Errorf("save catalog: %w", err)
	}
	return imported, nil
}

func (i *CSVImporter) toProduct(row *csvRow, id int) domain.Product {
	now := i.now()
	p := domain.Product{
		ID:            id,
		Title:         row.Title,
		Author:        row.Author,
		ISBN:          row.ISBN,
		Category:      row.Category,
		Price:         row.Price,
		DiscountPrice: row.DiscountPrice,
		Description:   row.Description,
		ImageURL:      row.ImageURL,
		Stock:         row.Stock,
		IsActive:      true,
		Tags:          []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
		CreatedBy:     i.importedBy,
	}
	if p.Category == "" {
		p.Category = productsvc.DefaultCategory
	}
	if p.ImageURL == "" {
		p.ImageURL = productsvc.DefaultImageURL
	}
	p.Specifications.Language = productsvc.DefaultLanguage
	p.Specifications.Format = productsvc.DefaultFormat
	return p
}

// nextID continues the sequence from the last stored product.
func nextID(products []domain.Product) int {
	if len(products) == 0 {
		return 1
	}
	return products[len(products)-1].ID + 1
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (*csvRow, error) {
	title := pick(record, index, "title")
	author := pick(record, index, "author")
	priceStr := pick(record, index, "price")
	stockStr := pick(record, index, "stock")

	if title == "" && author == "" {
		return nil, nil
	}
	if title == "" || author == "" || priceStr == "" || stockStr == "" {
		return nil, fmt.Errorf("invalid row (missing required fields) for title %q", title)
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price < 0 {
		return nil, fmt.Errorf("invalid price for title %q: %s", title, priceStr)
	}
	stock, err := strconv.Atoi(stockStr)
	if err != nil || stock < 0 {
		return nil, fmt.Errorf("invalid stock for title %q: %s", title, stockStr)
	}

	row := &csvRow{
		Title:       title,
		Author:      author,
		ISBN:        pick(record, index, "isbn"),
		Category:    pick(record, index, "category"),
		Price:       price,
		Stock:       stock,
		Description: pick(record, index, "description"),
		ImageURL:    pick(record, index, "image_url"),
	}

	if discountStr := pick(record, index, "discount_price"); discountStr != "" {
		discount, err := strconv.ParseFloat(discountStr, 64)
		if err != nil || discount < 0 || discount > price {
			return nil, fmt.Errorf("invalid discount price for title %q: %s", title, discountStr)
		}
		row.DiscountPrice = &discount
	}

	return row, nil
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
