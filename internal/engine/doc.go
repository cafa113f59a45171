// Package engine orchestrates scans: it selects candidate files (explicit
// path lists or a working-tree walk), gates them through the scanner, and
// aggregates findings in a stable order.
package engine
