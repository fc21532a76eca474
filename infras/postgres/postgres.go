package postgres

//nolint:revive
import (
	"errors"
	"net"
	"net/url"
	"time"

	"tableside/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	maxIdleConns    = 10
	maxOpenConns    = 10
	connMaxLifetime = 30 * time.Minute
)

// Connection splits reads and writes. The assignment transaction always runs on Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	SSLMode  string
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	read := endpoint{
		Host: pg.Read.Host, Port: pg.Read.Port, Username: pg.Read.Username,
		Password: pg.Read.Password, Name: pg.Read.Name, SSLMode: pg.Read.SSLMode,
	}
	write := endpoint{
		Host: pg.Write.Host, Port: pg.Write.Port, Username: pg.Write.Username,
		Password: pg.Write.Password, Name: pg.Write.Name, SSLMode: pg.Write.SSLMode,
	}

	return &Connection{
		Read:  connect("read", dsnFor(read, pg.Prefix), pg.MaxRetry, pg.RetryWaitTime),
		Write: connect("write", dsnFor(write, pg.Prefix), pg.MaxRetry, pg.RetryWaitTime),
	}
}

// Close releases both pools.
func (c *Connection) Close() error {
	var errs []error

	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func dsnFor(ep endpoint, prefix string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(ep.Username, ep.Password),
		Host:     net.JoinHostPort(ep.Host, ep.Port),
		Path:     prefix + ep.Name,
		RawQuery: url.Values{"sslmode": {ep.SSLMode}}.Encode(),
	}

	return u.String()
}

// connect retries sqlx.Connect up to maxRetry times and exits the process when every attempt fails.
func connect(role, dsn string, maxRetry, waitSeconds int) *sqlx.DB {
	maxRetry = max(maxRetry, 1)

	for attempt := 1; attempt <= maxRetry; attempt++ {
		db, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			db.SetMaxIdleConns(maxIdleConns)
			db.SetMaxOpenConns(maxOpenConns)
			db.SetConnMaxLifetime(connMaxLifetime)

			log.Info().Str("role", role).Msg("connected to postgres")

			return db
		}

		log.Error().Err(err).Str("role", role).Int("attempt", attempt).Msg("postgres not reachable, retrying")

		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	log.Fatal().Str("role", role).Int("attempts", maxRetry).Msg("giving up on postgres")

	return nil
}
