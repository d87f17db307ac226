// Package rds implements the connector capability against an RDS
// instance's row data, grounded on the teacher's
// internal/providers/aws.getRDSInstance for cluster metadata discovery,
// extended with an actual data-plane connection: go-sql-driver/mysql for
// MySQL-family engines and jackc/pgx/v5 for Postgres-family engines
// (including Redshift, which speaks the Postgres wire protocol), selected
// by the instance's reported engine family the way the reference service's
// connection-string builder branches on engine name.
package rds

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"

	"github.com/catherinevee/sensiscan/internal/errors"
	"github.com/catherinevee/sensiscan/pkg/models"
)

// EngineFamily distinguishes the wire protocol a DB instance speaks.
type EngineFamily string

const (
	FamilyMySQL    EngineFamily = "mysql"
	FamilyPostgres EngineFamily = "postgres"
)

// globalBundleURL is the RDS/Aurora combined CA bundle every engine family
// validates server certificates against when TLS is required.
const globalBundleURL = "https://truststore.pds.rds.amazonaws.com/global/global-bundle.pem"

// Config configures a Connector against a single DB instance.
type Config struct {
	InstanceIdentifier string
	Region             string
	Host               string
	Port               int
	Database           string
	User               string
	Password           string
	Engine             EngineFamily
	RequireTLS         bool
}

// Connector implements connector.Connector against RDS row data, chunked
// TableChunkRows rows at a time.
type Connector struct {
	cfg       Config
	rdsClient *rds.Client
	caBundle  *x509.CertPool
}

// New constructs a Connector and, if cfg.RequireTLS is set, downloads and
// caches the RDS global CA bundle for server-certificate validation —
// mirroring the reference service's auto-download of global-bundle.pem on
// first connect.
func New(ctx context.Context, cfg Config) (*Connector, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, errors.Wrap(err, errors.KindPermanent, "rds: loading AWS config")
	}
	c := &Connector{cfg: cfg, rdsClient: rds.NewFromConfig(awsCfg)}

	if cfg.RequireTLS {
		pool, err := fetchGlobalBundle(ctx)
		if err != nil {
			return nil, errors.Wrap(err, errors.KindTransient, "rds: downloading global-bundle.pem")
		}
		c.caBundle = pool
	}
	return c, nil
}

func fetchGlobalBundle(ctx context.Context) (*x509.CertPool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, globalBundleURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rds: unexpected status %d fetching global-bundle.pem", resp.StatusCode)
	}
	pool := x509.NewCertPool()
	buf := make([]byte, 0, 64*1024)
	tmp := make([]byte, 32*1024)
	for {
		n, readErr := resp.Body.Read(tmp)
		if n > 0 {
			buf = append(buf, tmp[:n]...)
		}
		if readErr != nil {
			break
		}
	}
	if !pool.AppendCertsFromPEM(buf) {
		return nil, fmt.Errorf("rds: no certificates found in global-bundle.pem")
	}
	return pool, nil
}

// Discover describes the configured instance's tables as Objects. The
// reference service discovers tables via `information_schema`; this
// connector issues the same query over the appropriate driver for the
// instance's engine family and reports each table's row count as Size for
// row-oriented chunk planning.
func (c *Connector) Discover(ctx context.Context) (models.DiscoveryResult, error) {
	result := models.DiscoveryResult{SourceID: c.cfg.InstanceIdentifier}

	rows, err := c.query(ctx, tableListQuery(c.cfg.Engine, c.cfg.Database))
	if err != nil {
		return result, err
	}
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		table := row[0]
		var rowCount int64
		fmt.Sscanf(row[1], "%d", &rowCount)

		result.Objects = append(result.Objects, models.Object{
			ID:         c.cfg.InstanceIdentifier + "/" + table,
			SourceID:   c.cfg.InstanceIdentifier,
			FullPath:   table,
			FetchPath:  table,
			ObjectName: table,
			Size:       rowCount,
		})
	}
	return result, nil
}

// Fetch returns rows `offset` through `offset+limit` of fetchPath (a table
// name) concatenated into a single delimited byte buffer for the
// classifier's textual scan.
func (c *Connector) Fetch(ctx context.Context, fetchPath string, offset, limit int64) ([]byte, error) {
	query := fmt.Sprintf("SELECT * FROM %s LIMIT %d OFFSET %d", quoteIdent(fetchPath), limit, offset)
	rows, err := c.query(ctx, query)
	if err != nil {
		return nil, err
	}
	var buf []byte
	for _, row := range rows {
		buf = append(buf, []byte(strings.Join(row, "\t")+"\n")...)
	}
	return buf, nil
}

// ExcludeRedundant has no RDS-specific noise pattern today; every
// discovered table is a candidate for scanning.
func (c *Connector) ExcludeRedundant(objects []models.Object) []models.Object {
	return objects
}

// SourceConfiguration reports the instance identifier, engine, and
// database back to the control plane.
func (c *Connector) SourceConfiguration() map[string]string {
	return map[string]string{
		"instance": c.cfg.InstanceIdentifier,
		"engine":   string(c.cfg.Engine),
		"database": c.cfg.Database,
	}
}

// query dispatches to the engine-appropriate driver and returns every row
// as a slice of stringified column values.
func (c *Connector) query(ctx context.Context, sqlText string) ([][]string, error) {
	switch c.cfg.Engine {
	case FamilyMySQL:
		return c.queryMySQL(ctx, sqlText)
	case FamilyPostgres:
		return c.queryPostgres(ctx, sqlText)
	default:
		return nil, errors.NewPermanent(fmt.Sprintf("rds: unsupported engine family %q", c.cfg.Engine))
	}
}

func (c *Connector) queryMySQL(ctx context.Context, sqlText string) ([][]string, error) {
	mysqlCfg := mysqldriver.NewConfig()
	mysqlCfg.User = c.cfg.User
	mysqlCfg.Passwd = c.cfg.Password
	mysqlCfg.Net = "tcp"
	mysqlCfg.Addr = fmt.Sprintf("%s:%d", c.cfg.Host, c.cfg.Port)
	mysqlCfg.DBName = c.cfg.Database
	mysqlCfg.Timeout = 10 * time.Second
	if c.caBundle != nil {
		_ = mysqldriver.RegisterTLSConfig("rds", &tls.Config{RootCAs: c.caBundle})
		mysqlCfg.TLSConfig = "rds"
	}

	db, err := sql.Open("mysql", mysqlCfg.FormatDSN())
	if err != nil {
		return nil, errors.Wrap(err, errors.KindTransient, "rds: opening mysql connection")
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindTransient, "rds: executing mysql query")
	}
	defer rows.Close()
	return scanStringRows(rows)
}

func (c *Connector) queryPostgres(ctx context.Context, sqlText string) ([][]string, error) {
	connString := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
		c.cfg.Host, c.cfg.Port, c.cfg.User, c.cfg.Password, c.cfg.Database)
	if c.caBundle != nil {
		connString += " sslmode=verify-full"
	}

	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindTransient, "rds: opening postgres connection")
	}
	defer conn.Close(ctx)

	pgxRows, err := conn.Query(ctx, sqlText)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindTransient, "rds: executing postgres query")
	}
	defer pgxRows.Close()

	var out [][]string
	for pgxRows.Next() {
		values, err := pgxRows.Values()
		if err != nil {
			return nil, errors.Wrap(err, errors.KindTransient, "rds: reading postgres row")
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = fmt.Sprintf("%v", v)
		}
		out = append(out, row)
	}
	return out, pgxRows.Err()
}

func scanStringRows(rows *sql.Rows) ([][]string, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	var out [][]string
	for rows.Next() {
		values := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make([]string, len(cols))
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				row[i] = string(b)
			} else {
				row[i] = fmt.Sprintf("%v", v)
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func tableListQuery(engine EngineFamily, database string) string {
	switch engine {
	case FamilyMySQL:
		return fmt.Sprintf(
			"SELECT table_name, table_rows FROM information_schema.tables WHERE table_schema = '%s'",
			database,
		)
	default:
		return "SELECT table_name, 0 FROM information_schema.tables WHERE table_schema = 'public'"
	}
}

func quoteIdent(name string) string {
	return "\"" + strings.ReplaceAll(name, "\"", "\"\"") + "\""
}
