package models

// SalesRecord is a per-title-per-platform regional sales record.
// Sales figures are in millions of copies and are treated as reported:
// GlobalSales is never recomputed from the regional columns even though
// the two usually agree approximately.
type SalesRecord struct {
	// ID is the autoincrementing surrogate key (sale_id).
	ID int64 `gorm:"column:sale_id;primaryKey;autoIncrement" json:"sale_id"`
	// Name is the game title. It joins to games.title.
	Name string `gorm:"column:name;index" json:"name"`
	// Platform is the platform this sales row covers.
	Platform string `gorm:"column:platform" json:"platform"`
	// Year is the release year in the sales dataset.
	Year int `gorm:"column:year" json:"year"`
	// Genre is a single genre from the sales dataset's taxonomy,
	// which is distinct from the engagement dataset's genre list.
	Genre string `gorm:"column:genre" json:"genre"`
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
	// GlobalSales is worldwide sales as reported by the source.
	GlobalSales float64 `gorm:"column:global_sales" json:"global_sales"`
}

// TableName maps the model to the sales table.
func (SalesRecord) TableName() string {
	return "sales"
}
