// Package config loads optional YAML configuration for the CLI layer.
// The detection core never reads configuration; the registry is fixed at
// build time and the CLI resolves precedence CLI > local > global.
package config
