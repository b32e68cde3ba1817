// Package core wires the substitution pipeline together: it builds the
// variable store from the declared sources, walks the selected template
// source into units, and for each unit extracts tokens, resolves them
// and emits the substituted text to its sink.
package core
