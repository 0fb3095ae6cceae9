// Package report turns loaded records into the ranked brand-rating report:
// AverageRating aggregates per-brand means, Render draws the bordered grid.
// Report-type validation lives in Render, not in aggregation, so a run always
// finishes its numeric work before the requested type is judged.
package report
