// Package merge reassembles per-worker partial results into one distance
// matrix and persists partial and unified artifacts.
//
// Merging is a pure concatenation in ascending partition order: no
// recomputation, no deduplication. Disjointness of the ranges is guaranteed
// by the partition and is not re-checked; only the shape of the result
// (row i holds N-1-i values) is.
//
// Artifact format, shared by partial and unified files: one line per row,
// distances to every higher index in ascending order separated by tabs,
// each line terminated by '\n'. The last series yields an empty line.
//
// File names:
//
//	partial:  <prefix><begin>_<end>output.txt
//	unified:  <prefix><dataset><norm><metric>_<w>_unifiedOutput.txt
//	manifest: <prefix>manifest.yaml
//
// Writes are atomic (temporary file + rename): a failed write never leaves a
// truncated artifact under its final name.
package merge
