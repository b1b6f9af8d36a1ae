// Package printer renders config store content as text, JSON, INI, YAML or
// TOML. It reads a snapshot of the store and never resolves inheritance:
// references are printed as written.
package printer
