package csvload

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/avolkov/brandreport/internal/ctxlog"
	"github.com/avolkov/brandreport/internal/model"
)

// requiredColumns must be present in every input file's header for the
// aggregation downstream to be meaningful. Matching is exact, like the data.
var requiredColumns = []string{model.FieldName, model.FieldBrand, model.FieldRating}

// ReadFiles reads the given CSV files in order and returns the concatenation
// of their records, preserving path order and in-file row order. The first
// file that is missing or structurally broken aborts the whole set; files
// after it are never opened.
func ReadFiles(ctx context.Context, paths []string) ([]model.Record, error) {
	var all []model.Record
	for _, path := range paths {
		records, err := readFile(ctx, path)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}
	return all, nil
}

// readFile parses a single CSV file into header-keyed records. The file
// handle is scoped to this call and released on every exit path.
func readFile(ctx context.Context, path string) ([]model.Record, error) {
	logger := ctxlog.FromContext(ctx)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("input file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		logger.Debug("Input file is empty, contributing no records.", "path", path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV file %s: %w", path, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if err := validateHeader(header); err != nil {
		return nil, fmt.Errorf("failed to parse CSV file %s: %w", path, err)
	}

	var records []model.Record
	for {
		// The reader pins the field count to the header's, so ragged data
		// rows surface here as a csv.ParseError and abort the run.
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV file %s: %w", path, err)
		}

		record := make(model.Record, len(header))
		for i, column := range header {
			record[column] = row[i]
		}
		records = append(records, record)
	}

	logger.Debug("Input file loaded.", "path", path, "records", len(records))
	return records, nil
}

func validateHeader(header []string) error {
	present := make(map[string]bool, len(header))
	for _, column := range header {
		present[column] = true
	}
	for _, required := range requiredColumns {
		if !present[required] {
			return fmt.Errorf("missing required column %q in header", required)
		}
	}
	return nil
}
