// Package cfgtext reads and writes the config text format.
//
// Reading is split in two layers: Scanner turns a byte stream into lines
// through a fixed-size buffer, and ParseLine turns each line into an ast node.
// A plain value ending with a list separator goes on over the next lines;
// Scanner joins them into one assignment. Emitter is the inverse and writes
// headers and entries.
package cfgtext
