package models

// SellerRow is one row of the top-global-sellers report.
type SellerRow struct {
	Title       string  `json:"title"`
	GlobalSales float64 `json:"global_sales"`
}

// GenreSalesRow is one row of the top-genres-by-sales report.
type GenreSalesRow struct {
	Genres           string  `json:"genres"`
	TotalGlobalSales float64 `json:"total_global_sales"`
}

// GenreRatingRow is one row of the average-rating-by-genre report.
// AvgRating is rounded half-up to 2 decimal places.
type GenreRatingRow struct {
	Genres    string  `json:"genres"`
	AvgRating float64 `json:"avg_rating"`
}

// PublisherRow is one row of the publisher-performance report.
// Titles is the count of distinct titles, not merged rows.
type PublisherRow struct {
	Publisher  string  `json:"publisher"`
	TotalSales float64 `json:"total_sales"`
	Titles     int     `json:"titles"`
}

// PlatformRow is one row of the platform-sales report. AvgRating is the
// mean of non-null ratings on the platform, 0 when nothing is rated.
type PlatformRow struct {
	Platform         string  `json:"platform"`
	TotalGlobalSales float64 `json:"total_global_sales"`
	AvgRating        float64 `json:"avg_rating"`
}

// YearlyRow is one row of the yearly sales trend, ordered by year.
type YearlyRow struct {
	Year             int     `json:"year"`
	TotalGlobalSales float64 `json:"total_global_sales"`
}

// WishlistRow is one row of the top-wishlisted report.
type WishlistRow struct {
	Title    string  `json:"title"`
	Wishlist float64 `json:"wishlist"`
}

// Overview is the dashboard KPI row computed over the merged store.
type Overview struct {
	TotalGlobalSales float64 `json:"total_global_sales"`
	AvgRating        float64 `json:"avg_rating"`
	UniqueTitles     int     `json:"unique_titles"`
	AvgWishlist      float64 `json:"avg_wishlist"`
}
