// Package export serializes the merged store to CSV, either to a local
// writer for file exports or as a timestamped object upload.
package export
