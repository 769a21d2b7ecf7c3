// Package layout reconstructs human-readable structure from the flat,
// ordered token stream produced by the recognition engine: confidence
// filtering, positional line clustering, and the two paragraph assembly
// strategies (the simple joiner and the document heuristic).
//
// The line assembler assumes its input is already in raster order
// (left-to-right within a line, top-to-bottom across lines), the order the
// engine emits it. This is a documented precondition of the interface, not
// something the assembler verifies: clustering is greedy and
// non-backtracking, so out-of-order input produces fragmented lines.
package layout
