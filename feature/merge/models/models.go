package models

import "time"

// MergedRecord is the inner join of one engagement record and one sales
// record on normalized title equality. It is fully derived: the merged
// table is rebuilt wholesale and has no identity beyond the join key,
// aside from the surrogate key assigned for storage.
//
// Field provenance: engagement fields come from games (minus backlogs),
// sales fields from sales (minus name, genre and year). Both platform
// columns survive since the datasets disagree on platform vocabulary;
// the genre conflict resolves to the engagement-side Genres taxonomy.
type MergedRecord struct {
	// ID is the autoincrementing surrogate key (merged_id).
	ID int64 `gorm:"column:merged_id;primaryKey;autoIncrement" json:"merged_id"`
	// GameID references the source engagement record (no FK constraint).
	GameID int64 `gorm:"column:game_id" json:"game_id"`
	// SaleID references the source sales record (no FK constraint).
	SaleID int64 `gorm:"column:sale_id" json:"sale_id"`

	// Title is the engagement-side title of the joined pair.
	Title string `gorm:"column:title;index" json:"title"`
	// Rating is the community rating. Nullable.
	Rating *float64 `gorm:"column:rating" json:"rating"`
	// Genres is the engagement-side delimited genre list.
	Genres string `gorm:"column:genres" json:"genres"`
	// Plays is the play count.
	Plays float64 `gorm:"column:plays" json:"plays"`
	// Wishlist is the wishlist count.
	Wishlist float64 `gorm:"column:wishlist" json:"wishlist"`
	// ReleaseDate is the engagement-side release date. Nullable.
	ReleaseDate *time.Time `gorm:"column:release_date" json:"release_date"`
	// ReleaseYear is derived from ReleaseDate.
	ReleaseYear int `gorm:"column:release_year" json:"release_year"`
	// Platform is the engagement-side platform.
	Platform string `gorm:"column:platform" json:"platform"`
	// Team is the developer or studio.
	Team string `gorm:"column:team" json:"team"`

	// SalesPlatform is the sales-side platform of the joined pair.
	SalesPlatform string `gorm:"column:sales_platform" json:"sales_platform"`
	// Publisher is the publishing company.
	Publisher string `gorm:"column:publisher" json:"publisher"`
	// NASales is North America sales.
	NASales float64 `gorm:"column:na_sales" json:"na_sales"`
	// EUSales is Europe sales.
	EUSales float64 `gorm:"column:eu_sales" json:"eu_sales"`
	// JPSales is Japan sales.
	JPSales float64 `gorm:"column:jp_sales" json:"jp_sales"`
	// OtherSales is rest-of-world sales.
	OtherSales float64 `gorm:"column:other_sales" json:"other_sales"`
	// GlobalSales is worldwide sales as reported.
	GlobalSales float64 `gorm:"column:global_sales" json:"global_sales"`
}

// TableName maps the model to the merged table.
func (MergedRecord) TableName() string {
	return "merged"
}
