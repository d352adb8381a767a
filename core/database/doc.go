// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) configured
// for the analytics dataset. SQLite is the primary driver (the cleaned dataset
// ships as video_games_cleaned.db); MySQL is supported for shared deployments.
//
// # Connect
//
// The generic Connect function establishes a connection to the database. The
// driver is selected by configuration and the rest of the application is
// dialect-agnostic.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema. The merge engine
// uses VerifyTables to confirm that the games and sales tables are present
// before attempting a rebuild of the merged table.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.VerifyTables(db, "games", "sales")
package database
