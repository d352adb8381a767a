package models

import "time"

// GameRecord is a per-title engagement record from the games dataset.
// Records are immutable after bulk load.
type GameRecord struct {
	// ID is the autoincrementing surrogate key (game_id).
	ID int64 `gorm:"column:game_id;primaryKey;autoIncrement" json:"game_id"`
	// Title is the game title. It is the join key towards the sales
	// dataset and is not unique (re-releases share a title).
	Title string `gorm:"column:title;index" json:"title"`
	// Rating is the community rating. Nullable; the source scale is
	// 0-5 but is treated as reported, not validated.
	Rating *float64 `gorm:"column:rating" json:"rating"`
	// Genres encodes one or more genres as a delimited list,
	// e.g. "['Adventure', 'RPG']". The vocabulary differs from the
	// sales dataset's single-genre taxonomy.
	Genres string `gorm:"column:genres" json:"genres"`
	// Plays is the number of users who played the title.
	Plays float64 `gorm:"column:plays" json:"plays"`
	// Backlogs is the number of users with the title in their backlog.
	Backlogs float64 `gorm:"column:backlogs" json:"backlogs"`
	// Wishlist is the number of users who wishlisted the title.
	Wishlist float64 `gorm:"column:wishlist" json:"wishlist"`
	// ReleaseDate is the release date. Nullable (unreleased/unknown).
	ReleaseDate *time.Time `gorm:"column:release_date" json:"release_date"`
	// ReleaseYear is derived from ReleaseDate at ingestion time.
	ReleaseYear int `gorm:"column:release_year" json:"release_year"`
	// Platform is the platform the engagement data was collected for.
	Platform string `gorm:"column:platform" json:"platform"`
	// Team is the developer or studio.
	Team string `gorm:"column:team" json:"team"`
}

// TableName maps the model to the games table.
func (GameRecord) TableName() string {
	return "games"
}
