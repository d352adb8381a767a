// Package sales owns the sales-side record store.
//
// It defines the SalesRecord model (backed by the sales table), the bulk-load
// path from the sales CSV, and read access for the merge engine and the
// top-sellers report.
//
// A title appears once per platform, so aggregations over this table must
// sum across platform rows deliberately. GlobalSales is reported by the
// source and never derived from the regional columns.
package sales
