// Package redshift implements the connector capability against an Amazon
// Redshift cluster. Redshift speaks the Postgres wire protocol, so this
// connector reuses jackc/pgx/v5 the same way internal/connector/rds does
// for its Postgres-family branch, querying Redshift's own svv_tables system
// view (rather than information_schema.tables) for table-level discovery.
package redshift

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/catherinevee/sensiscan/internal/errors"
	"github.com/catherinevee/sensiscan/pkg/models"
)

// Config configures a Connector against a single Redshift cluster database.
type Config struct {
	ClusterIdentifier string
	Host               string
	Port               int
	Database           string
	User               string
	Password           string
}

// Connector implements connector.Connector against Redshift row data.
type Connector struct {
	cfg Config
}

// New constructs a Connector; Redshift connections are opened lazily per
// query rather than held open across the connector's lifetime, matching
// the short-lived-connection style the reference service uses for all of
// its row-oriented sources.
func New(cfg Config) *Connector {
	return &Connector{cfg: cfg}
}

// Discover lists every user table visible in svv_tables, reporting a rough
// row count estimate (Redshift has no cheap exact row count outside of a
// full scan) as Size for row-oriented chunk planning.
func (c *Connector) Discover(ctx context.Context) (models.DiscoveryResult, error) {
	result := models.DiscoveryResult{SourceID: c.cfg.ClusterIdentifier}

	conn, err := c.connect(ctx)
	if err != nil {
		return result, err
	}
	defer conn.Close(ctx)

	rows, err := conn.Query(ctx, `
		SELECT t.table_name, COALESCE(i.tbl_rows, 0)
		FROM svv_tables t
		LEFT JOIN svv_table_info i ON i.table = t.table_name
		WHERE t.table_schema = 'public'`)
	if err != nil {
		return result, errors.Wrap(err, errors.KindTransient, "redshift: listing tables")
	}
	defer rows.Close()

	for rows.Next() {
		var table string
		var rowCount int64
		if err := rows.Scan(&table, &rowCount); err != nil {
			return result, errors.Wrap(err, errors.KindTransient, "redshift: scanning table row")
		}
		result.Objects = append(result.Objects, models.Object{
			ID:         c.cfg.ClusterIdentifier + "/" + table,
			SourceID:   c.cfg.ClusterIdentifier,
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
	conn, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	query := fmt.Sprintf("SELECT * FROM %s LIMIT %d OFFSET %d", quoteIdent(fetchPath), limit, offset)
	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindTransient, "redshift: fetching rows")
	}
	defer rows.Close()

	var buf []byte
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, errors.Wrap(err, errors.KindTransient, "redshift: reading row")
		}
		strs := make([]string, len(values))
		for i, v := range values {
			strs[i] = fmt.Sprintf("%v", v)
		}
		buf = append(buf, []byte(strings.Join(strs, "\t")+"\n")...)
	}
	return buf, rows.Err()
}

// ExcludeRedundant has no Redshift-specific noise pattern; every discovered
// table is a candidate for scanning.
func (c *Connector) ExcludeRedundant(objects []models.Object) []models.Object {
	return objects
}

// SourceConfiguration reports the cluster identifier and database back to
// the control plane.
func (c *Connector) SourceConfiguration() map[string]string {
	return map[string]string{
		"cluster":  c.cfg.ClusterIdentifier,
		"database": c.cfg.Database,
	}
}

func (c *Connector) connect(ctx context.Context) (*pgx.Conn, error) {
	connString := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=require",
		c.cfg.Host, c.cfg.Port, c.cfg.User, c.cfg.Password, c.cfg.Database)
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindTransient, "redshift: opening connection")
	}
	return conn, nil
}

func quoteIdent(name string) string {
	return "\"" + strings.ReplaceAll(name, "\"", "\"\"") + "\""
}
