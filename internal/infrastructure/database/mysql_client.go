package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLConfig points at the marketplace database that owns users, leads and
// products. The negotiation service only reads from it.
type MySQLConfig struct {
	User     string
	Password string
	Host     string
	Database string
}

// DSN renders the go-sql-driver/mysql data source name. Host keeps the
// driver's protocol form, e.g. tcp(127.0.0.1:3306).
func (c MySQLConfig) DSN() string {
	return fmt.Sprintf("%s:%s@%s/%s?parseTime=true&loc=UTC", c.User, c.Password, c.Host, c.Database)
}

// ConnectMySQL opens the pool and pings it. A failed ping is returned with
// the open pool so callers may keep running with degraded lookups.
func ConnectMySQL(ctx context.Context, c MySQLConfig) (*sql.DB, error) {
	db, err := sql.Open("mysql", c.DSN())
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pctx); err != nil {
		slog.Warn("[storage][mysql] ping failed", "host", c.Host, "database", c.Database, "err", err)
		return db, err
	}
	slog.Info("[storage][mysql] connected", "host", c.Host, "database", c.Database)
	return db, nil
}
