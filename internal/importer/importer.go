package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"eshop-fixtures/internal/domain"
	"github.com/shopspring/decimal"
)

type ItemWriter interface {
	SaveItem(ctx context.Context, item *domain.CatalogItem) error
}

// CSVImporter reads catalog item rows and upserts them by id.
//
// Expected header (any order, extra columns ignored; description and picture
// may be omitted):
//
//	id,name,description,price,picture,brand_id,type_id
type CSVImporter struct {
	reader *csv.Reader
	items  ItemWriter
}

func NewCSVImporter(r io.Reader, items ItemWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true
	return &CSVImporter{reader: csvr, items: items}
}

var requiredColumns = []string{"id", "name", "price", "brand_id", "type_id"}

// Run imports every row and returns how many were written. It stops at the
// first malformed row.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return 0, fmt.Errorf("missing column %q", col)
		}
	}

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}
		if blank(record) {
			continue
		}

		line, _ := i.reader.FieldPos(0)
		item, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("line %d: %w", line, err)
		}
		if err := i.items.SaveItem(ctx, item); err != nil {
			return imported, fmt.Errorf("save catalog item %d: %w", item.ID(), err)
		}
		imported++
	}
	return imported, nil
}

func parseRow(record []string, index map[string]int) (*domain.CatalogItem, error) {
	get := func(col string) string {
		idx, ok := index[col]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	id, err := strconv.Atoi(get("id"))
	if err != nil {
		return nil, fmt.Errorf("invalid id %q", get("id"))
	}
	name := get("name")
	if name == "" {
		return nil, fmt.Errorf("item %d: name required", id)
	}
	price, err := decimal.NewFromString(get("price"))
	if err != nil {
		return nil, fmt.Errorf("item %d: invalid price %q", id, get("price"))
	}
	brandID, err := referenceID(get("brand_id"))
	if err != nil {
		return nil, fmt.Errorf("item %d: brand_id: %w", id, err)
	}
	typeID, err := referenceID(get("type_id"))
	if err != nil {
		return nil, fmt.Errorf("item %d: type_id: %w", id, err)
	}

	return domain.NewCatalogItem(id, typeID, brandID, get("description"), name, price, get("picture")), nil
}

// referenceID parses a brand or type id. Both reference existing rows, so a
// blank or non-positive value is rejected.
func referenceID(s string) (int, error) {
	if s == "" {
		return 0, errors.New("required")
	}
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
