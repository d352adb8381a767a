// Package games owns the engagement-side record store.
//
// It defines the GameRecord model (backed by the games table), the bulk-load
// path from the cleaned games CSV, and read access for the merge engine and
// the report generators.
//
// Records are created by bulk load and immutable afterwards within one
// analysis run. The store is replaced wholesale on each load; there is no
// incremental update contract.
package games
