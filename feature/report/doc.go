// Package report implements the ranked aggregate queries over the record
// stores.
//
// Four canonical reports cover the analysis questions: top global sellers
// (sales store), top genres by sales, average rating by genre, and
// publisher performance (merged store). The dashboard extras ride along:
// platform sales with mean ratings, the yearly sales trend, the KPI
// overview and the top-wishlisted titles.
//
// All reports are pure reads with an explicit limit. A non-positive or
// non-integer limit fails with ErrInvalidLimit; a limit larger than the
// result returns every row. Ties rank by first-seen input order, which
// keeps repeated runs over the same stores byte-identical.
package report
