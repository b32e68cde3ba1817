// Package types defines the core types and interfaces used throughout tsubst.
// This includes the FS filesystem interface, the Token and Resolution types
// produced by extraction and resolution, and the TemplateUnit that pairs a
// piece of input text with its output destination.
package types
