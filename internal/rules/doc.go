// Package rules holds the ordered secret-detection rule registry. Rules are
// compiled once at process start and evaluated in registration order;
// tie-breaking among overlapping rules is therefore deterministic.
package rules
