// Package csvload reads the product CSV files into memory. It is the only
// package that touches the filesystem, and it is deliberately fail-fast: a
// missing or structurally broken file aborts the run before any report work
// happens, while per-value data quality problems are left for the aggregation
// stage to judge.
package csvload
