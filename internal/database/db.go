// Package database opens the optional MySQL archive. The archive is a
// write-behind copy of the booking collection fed by the queue consumer;
// the primary store stays in the KV layer.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection before returning it.
// The archive sees one insert per booking, so the pool is kept small.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true maps DATETIME to time.Time; loc=UTC keeps archive rows comparable
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// OpenFromEnv opens the archive database from DB_* environment variables.
// The archive is optional: with DB_HOST unset it returns (nil, nil) and the
// service runs without it.
func OpenFromEnv() (*sql.DB, error) {
	host := os.Getenv("DB_HOST")
	if host == "" {
		return nil, nil
	}
	user := os.Getenv("DB_USER")
	if user == "" {
		user = "root"
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "3306"
	}
	name := os.Getenv("DB_NAME")
	if name == "" {
		name = "ggwellplayed"
	}
	return Open(user, os.Getenv("DB_PASS"), host, port, name)
}
