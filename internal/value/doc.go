// Package value decodes config values: list items ('#'), random ranges ('~'),
// value references ('@') and quoted blocks, plus the typed resolvers with
// their per-value decode cache.
package value
