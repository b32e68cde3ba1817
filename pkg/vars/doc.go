// Package vars implements the variable store: the merged,
// precedence-ordered mapping from name to value used for token
// resolution. Sources (inline assignments, variable files, the process
// environment) are applied strictly in declaration order, so later
// sources override earlier ones for the same name.
package vars
