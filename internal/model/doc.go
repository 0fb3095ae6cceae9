// Package model defines the domain types shared across the pipeline: the raw
// Record read from an input file and the BrandAverage entries produced by
// aggregation. Keeping these in one place lets the loader, aggregator and
// renderer depend on a common vocabulary without depending on each other.
package model
