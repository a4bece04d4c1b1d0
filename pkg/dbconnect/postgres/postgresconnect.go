package postgres

import (
	"database/sql"
	"sync"
	"time"

	_ "github.com/lib/pq"

	"gomarket_sync/config"
	"gomarket_sync/pkg/logger"
)

const maxRetries = 3
const dbMaxOpenConns = 5
const retryDelay = 2 * time.Second

type PostgresDatabase struct {
	config.PostgresConfig
	log logger.Logger
	db  *sql.DB
	mu  sync.Mutex // Для защиты доступа к db
}

func NewPgConnector(dbConfig config.PostgresConfig, log logger.Logger) *PostgresDatabase {
	return &PostgresDatabase{PostgresConfig: dbConfig, log: log}
}

func (pg *PostgresDatabase) Connect() (*sql.DB, error) {
	pg.mu.Lock()
	defer pg.mu.Unlock()

	if pg.db != nil {
		return pg.db, nil
	}

	var err error
	conStr := pg.GetConnectionString()

	for i := 0; i < maxRetries; i++ {
		var db *sql.DB
		db, err = sql.Open("postgres", conStr)
		if err != nil {
			pg.log.Warn("Failed to connect to Postgres (attempt %d/%d): %v", i+1, maxRetries, err)
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(dbMaxOpenConns)

		if err = db.Ping(); err != nil {
			pg.log.Warn("Failed to ping Postgres db (attempt %d/%d): %v", i+1, maxRetries, err)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		pg.log.Log("Successfully connected to Postgres: %s:%s/%s", pg.Host, pg.Port, pg.DBName)
		pg.db = db
		return pg.db, nil
	}
	return nil, err
}

func (pg *PostgresDatabase) Close() error {
	pg.mu.Lock()
	defer pg.mu.Unlock()

	if pg.db == nil {
		return nil
	}
	err := pg.db.Close()
	pg.db = nil
	return err
}
