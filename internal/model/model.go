package model

// Record is one row of product data, keyed by the column names from the
// file's header row. Values are kept as raw strings; interpretation (for
// example parsing the rating) is left to the consumer.
type Record map[string]string

// Column names the aggregation depends on. Input files must carry at least
// these three; anything else (price, category, ...) is carried along untouched.
const (
	FieldName   = "name"
	FieldBrand  = "brand"
	FieldRating = "rating"
)

// BrandAverage is one ranked entry of the average-rating report: a brand and
// the arithmetic mean of its successfully parsed ratings.
type BrandAverage struct {
	Brand   string
	Average float64
}
