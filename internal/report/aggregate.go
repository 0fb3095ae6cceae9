package report

import (
	"context"
	"sort"
	"strconv"

	"github.com/avolkov/brandreport/internal/ctxlog"
	"github.com/avolkov/brandreport/internal/model"
)

// accumulator carries the running rating sum and contributing record count
// for one brand.
type accumulator struct {
	brand string
	sum   float64
	count int
}

// AverageRating computes the arithmetic mean rating per brand and returns the
// brands sorted by average, highest first. Brands are exact, case-sensitive
// strings. A record whose rating does not parse as a number is logged and
// skipped entirely; it counts toward neither the sum nor the divisor, so a
// brand with no parsable ratings at all never appears in the result.
func AverageRating(ctx context.Context, records []model.Record) []model.BrandAverage {
	logger := ctxlog.FromContext(ctx)

	// The slice keeps first-encounter brand order so that the stable sort
	// below leaves ties in a deterministic order.
	var accumulators []accumulator
	index := make(map[string]int)

	for _, record := range records {
		brand := record[model.FieldBrand]
		rating, err := strconv.ParseFloat(record[model.FieldRating], 64)
		if err != nil {
			logger.Warn("Skipping record with invalid rating.",
				"rating", record[model.FieldRating],
				"product", record[model.FieldName],
				"brand", brand)
			continue
		}

		i, seen := index[brand]
		if !seen {
			i = len(accumulators)
			index[brand] = i
			accumulators = append(accumulators, accumulator{brand: brand})
		}
		accumulators[i].sum += rating
		accumulators[i].count++
	}

	averages := make([]model.BrandAverage, len(accumulators))
	for i, acc := range accumulators {
		averages[i] = model.BrandAverage{
			Brand:   acc.brand,
			Average: acc.sum / float64(acc.count),
		}
	}

	sort.SliceStable(averages, func(i, j int) bool {
		return averages[i].Average > averages[j].Average
	})
	return averages
}
