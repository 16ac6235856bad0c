package search

import "github.com/jdhollis/grimoire/internal/model"

// Catalog bundles a record collection with the index built from it. The two
// are constructed together and only ever replaced together, which is what
// keeps the index's positional entries valid: there is no way to query an
// index against a collection it was not built from.
type Catalog struct {
	records []model.Record
	index   *Index
}

// NewCatalog builds the index for records and returns the owning pair.
// A nil progress function skips progress reporting.
func NewCatalog(records []model.Record, progress ProgressFunc) *Catalog {
	return &Catalog{
		records: records,
		index:   BuildProgress(records, progress),
	}
}

// Search evaluates query and returns matching record positions ascending.
func (c *Catalog) Search(query string) []int {
	return Evaluate(c.index, c.records, query)
}

// Record returns the record at position i.
func (c *Catalog) Record(i int) model.Record {
	return c.records[i]
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}
