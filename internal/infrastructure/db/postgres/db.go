package postgres

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to Postgres when a DSN is configured, and falls back to a
// local SQLite file otherwise so the service runs without external services.
func Open(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}

	if dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), cfg)
		if err != nil {
			return nil, err
		}
		log.Println("Connected to Postgres")
		return db, nil
	}

	db, err := gorm.Open(sqlite.Open("oceans.db"), cfg)
	if err != nil {
		return nil, err
	}
	log.Println("DATABASE_URL not set, using local SQLite database")
	return db, nil
}

// Migrate keeps the schema in sync with the models at boot.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&UserModel{}, &SiteModel{})
}
