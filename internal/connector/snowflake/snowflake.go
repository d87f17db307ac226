// Package snowflake implements the connector capability against a
// Snowflake warehouse. No example repo in this module's retrieval pack
// carries a Snowflake driver, so this connector reaches for
// github.com/snowflakedb/gosnowflake — the standard ecosystem choice for
// Go/Snowflake connectivity — as an out-of-pack dependency; see
// DESIGN.md for why no in-pack substitute could serve this connector.
package snowflake

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/snowflakedb/gosnowflake"

	"github.com/catherinevee/sensiscan/internal/errors"
	"github.com/catherinevee/sensiscan/pkg/models"
)

// Config configures a Connector against a single Snowflake database/schema.
type Config struct {
	Account   string
	User      string
	Password  string
	Database  string
	Schema    string
	Warehouse string
}

// Connector implements connector.Connector against Snowflake row data.
type Connector struct {
	cfg Config
}

// New constructs a Connector.
func New(cfg Config) *Connector {
	return &Connector{cfg: cfg}
}

// Discover lists every table in the configured schema, reporting row
// count as Size for row-oriented chunk planning.
func (c *Connector) Discover(ctx context.Context) (models.DiscoveryResult, error) {
	result := models.DiscoveryResult{SourceID: c.cfg.Account + "/" + c.cfg.Database}

	db, err := c.open()
	if err != nil {
		return result, err
	}
	defer db.Close()

	query := fmt.Sprintf(
		"SELECT table_name, row_count FROM %s.information_schema.tables WHERE table_schema = '%s'",
		quoteIdent(c.cfg.Database), strings.ToUpper(c.cfg.Schema),
	)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return result, errors.Wrap(err, errors.KindTransient, "snowflake: listing tables")
	}
	defer rows.Close()

	for rows.Next() {
		var table string
		var rowCount int64
		if err := rows.Scan(&table, &rowCount); err != nil {
			return result, errors.Wrap(err, errors.KindTransient, "snowflake: scanning table row")
		}
		result.Objects = append(result.Objects, models.Object{
			ID:         result.SourceID + "/" + table,
			SourceID:   result.SourceID,
			FullPath:   table,
			FetchPath:  table,
			ObjectName: table,
			Size:       rowCount,
		})
	}
	return result, rows.Err()
}

// Fetch returns rows offset through offset+limit of fetchPath concatenated
// into a tab-delimited byte buffer.
func (c *Connector) Fetch(ctx context.Context, fetchPath string, offset, limit int64) ([]byte, error) {
	db, err := c.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query := fmt.Sprintf("SELECT * FROM %s LIMIT %d OFFSET %d", quoteIdent(fetchPath), limit, offset)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindTransient, "snowflake: fetching rows")
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, errors.KindTransient, "snowflake: reading columns")
	}

	var buf []byte
	for rows.Next() {
		values := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, errors.Wrap(err, errors.KindTransient, "snowflake: scanning row")
		}
		strs := make([]string, len(values))
		for i, v := range values {
			strs[i] = fmt.Sprintf("%v", v)
		}
		buf = append(buf, []byte(strings.Join(strs, "\t")+"\n")...)
	}
	return buf, rows.Err()
}

// ExcludeRedundant has no Snowflake-specific noise pattern today.
func (c *Connector) ExcludeRedundant(objects []models.Object) []models.Object {
	return objects
}

// SourceConfiguration reports the account, database, and schema back to
// the control plane.
func (c *Connector) SourceConfiguration() map[string]string {
	return map[string]string{
		"account":  c.cfg.Account,
		"database": c.cfg.Database,
		"schema":   c.cfg.Schema,
	}
}

func (c *Connector) open() (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@%s/%s/%s?warehouse=%s",
		c.cfg.User, c.cfg.Password, c.cfg.Account, c.cfg.Database, c.cfg.Schema, c.cfg.Warehouse)
	db, err := sql.Open("snowflake", dsn)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindTransient, "snowflake: opening connection")
	}
	return db, nil
}

func quoteIdent(name string) string {
	return "\"" + strings.ReplaceAll(name, "\"", "\"\"") + "\""
}
