// Package loader imports and exports form schema documents.
//
// Import accepts JSON or YAML, merges structural defaults for missing
// top-level keys, repairs recoverable inconsistencies (reported, never
// silent) and rejects anything that would break the schema invariants.
// Export writes the schema back verbatim.
package loader
