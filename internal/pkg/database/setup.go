package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/featherpress/featherpress/app/models"
	"github.com/featherpress/featherpress/internal/pkg/env"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

var DB *gorm.DB

// SetupDatabase connects to the configured database and migrates the schema.
// SQLite (single file, DB_PATH) is the default; DB_DRIVER=mysql switches to
// a MySQL server using the DB_* variables.
func SetupDatabase() {
	var err error

	for i := 0; i < maxRetries; i++ {
		DB, err = openConnection()
		if err == nil {
			DB.AutoMigrate(
				&models.User{},
				&models.Blog{},
				&models.Article{},
				&models.Comment{},
				&models.Like{},
			)

			return
		}

		log.Printf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			log.Printf("Retrying in %v...", retryDelay)
			time.Sleep(retryDelay)
		}
	}

	if err != nil {
		panic(err)
	}
}

func openConnection() (*gorm.DB, error) {
	if env.GetEnv("DB_DRIVER", "sqlite") == "mysql" {
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			env.GetEnv("DB_USER", ""),
			env.GetEnv("DB_PASSWORD", ""),
			env.GetEnv("DB_HOST", "127.0.0.1"),
			env.GetEnv("DB_PORT", "3306"),
			env.GetEnv("DB_NAME", "featherpress"),
		)
		return gorm.Open(mysql.New(mysql.Config{
			DSN:                      dsn,
			DefaultStringSize:        256,
			DisableDatetimePrecision: true,
		}), &gorm.Config{TranslateError: true})
	}

	path := env.GetEnv("DB_PATH", "./featherpress.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	// SQLite only enforces referential integrity when asked to
	db.Exec("PRAGMA foreign_keys=ON")
	return db, nil
}

// GetDB returns the shared database handle.
func GetDB() *gorm.DB {
	return DB
}
