// Package merge implements the join engine that derives the merged table
// from the games and sales stores.
//
// # Join semantics
//
// The join is an inner join on normalized title equality (see JoinKey):
// trim, collapse internal whitespace, lowercase. Titles present on only
// one side are dropped; only titles with both engagement and sales data
// are comparable in the downstream reports. Duplicate keys produce the
// full cross product of matching pairs, so aggregations over the merged
// table must handle platform duplicates deliberately.
//
// # Determinism
//
// Join is a pure function: identical inputs yield an identical record
// sequence, ordered by games traversal order then sales input order.
// Rebuild replaces the merged table wholesale in one transaction, so
// re-running it on unchanged inputs is idempotent.
package merge
