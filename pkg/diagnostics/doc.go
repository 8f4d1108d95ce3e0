// Package diagnostics inspects a finished node tree for layout and
// rendering defects.
//
// [Scan] walks the tree without mutating it and returns a [Report] whose
// entries name each offending node by its dotted path. A tree with no
// warnings or errors gets a single OK entry.
//
// [Snapshot] serializes a tree for external inspection.
package diagnostics
