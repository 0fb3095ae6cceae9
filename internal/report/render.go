package report

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/avolkov/brandreport/internal/model"
)

// TypeAverageRating is the only report type currently recognized.
const TypeAverageRating = "average-rating"

// ErrUnsupportedReport is the sentinel wrapped by Render when asked for a
// report type it does not know. Callers can tell it apart from I/O or parse
// failures with errors.Is.
var ErrUnsupportedReport = errors.New("unsupported report type")

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Render produces the bordered report grid for the given report type. The
// table is returned as a string rather than written directly so that nothing
// reaches stdout when the type is rejected. An empty row set is valid and
// yields a header-only grid.
func Render(reportType string, rows []model.BrandAverage) (string, error) {
	if reportType != TypeAverageRating {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedReport, reportType)
	}

	grid := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Headers("Brand", "Rating")

	for _, row := range rows {
		grid.Row(row.Brand, strconv.FormatFloat(row.Average, 'f', 1, 64))
	}
	return grid.Render(), nil
}
