// Package sqldb implements the database adapters: the load-side query
// executor and the store-side export writer, both on database/sql.
package sqldb

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	"go.trai.ch/dbfetch/internal/core/domain"
	"go.trai.ch/zerr"
)

// mysqlDSN builds a go-sql-driver DSN for the connection. ParseTime is
// enabled so timestamp columns scan as time.Time.
func mysqlDSN(conn domain.Connection, charset string) string {
	if charset == "" {
		charset = "utf8"
	}

	cfg := mysql.NewConfig()
	cfg.User = conn.Username
	cfg.Passwd = conn.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(conn.Host, strconv.Itoa(conn.Port))
	cfg.DBName = conn.Database
	cfg.ParseTime = true
	cfg.Params = map[string]string{"charset": charset}

	return cfg.FormatDSN()
}

// postgresDSN builds a lib/pq keyword DSN for the connection.
func postgresDSN(conn domain.Connection) string {
	pairs := []string{
		"host=" + pqValue(conn.Host),
		"port=" + strconv.Itoa(conn.Port),
		"user=" + pqValue(conn.Username),
		"dbname=" + pqValue(conn.Database),
		"sslmode=prefer",
	}
	if conn.Password != "" {
		pairs = append(pairs, "password="+pqValue(conn.Password))
	}
	return strings.Join(pairs, " ")
}

// pqValue quotes a keyword/value connection string value.
func pqValue(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}

// storeDSN resolves the driver name and DSN for the export store.
func storeDSN(store domain.Store) (string, string, error) {
	switch store.Driver {
	case domain.DriverMySQL:
		return "mysql", mysqlDSN(store.Connection, store.Encoding), nil
	case domain.DriverPostgres:
		return "postgres", postgresDSN(store.Connection), nil
	default:
		return "", "", zerr.With(zerr.New("unsupported store driver"),
			"driver", fmt.Sprintf("%v", store.Driver))
	}
}
