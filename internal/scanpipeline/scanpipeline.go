// Package scanpipeline implements the per-chunk scan pipeline (spec.md
// §4.4): lease, fetch, guard, PHI probe, classify, report, finalize. It
// depends only on interfaces (LeaseStore, ReportStore, the connector
// package's Connector, and the classifier package's Analyzer) so it can
// be exercised without a live control-plane or network connection.
package scanpipeline

import (
	"context"
	"strings"
	"time"

	"github.com/catherinevee/sensiscan/internal/classifier"
	"github.com/catherinevee/sensiscan/internal/connector"
	"github.com/catherinevee/sensiscan/pkg/models"
)

// LeaseStore is the control-plane-facing capability the pipeline needs to
// acquire exclusive ownership of a chunk before scanning it. Lease must
// perform a compare-and-swap from WAIT_FOR_SCAN to IN_PROGRESS keyed on
// the chunk's current status, per invariant 5 (only one agent holds
// IN_PROGRESS on a chunk at a time).
type LeaseStore interface {
	Lease(ctx context.Context, chunkID string) (acquired bool, err error)
}

// ReportStore is the control-plane-facing capability the pipeline reports
// findings and final chunk status through.
type ReportStore interface {
	ReportFindings(ctx context.Context, findings []models.Finding) error
	Finalize(ctx context.Context, chunkID string, status models.Status, dataType, instanceID string) error
}

// TabularContent is a chunk's decoded content when it came from a
// row/column source (a table or a parsed CSV); ScanTabularChunk iterates
// its columns rather than scanning one concatenated blob, attaching the
// column name to every finding produced from that column.
type TabularContent struct {
	Columns map[string]string
}

// Pipeline runs the per-chunk scan steps for a single connector/analyzer
// pairing.
type Pipeline struct {
	lease     LeaseStore
	report    ReportStore
	conn      connector.Connector
	analyzer  *classifier.Analyzer
	instance  string
	rescan    bool
	dataType  string
}

// Config configures a Pipeline instance.
type Config struct {
	Lease      LeaseStore
	Report     ReportStore
	Connector  connector.Connector
	Analyzer   *classifier.Analyzer
	InstanceID string
	// Rescan marks this pipeline as running in rescan mode (triggered by
	// the scheduler's rescan_by_data_type job, spec.md §4.5), which
	// disables the NER engine for the duration of the scan.
	Rescan bool
	// DataType is the catalog data-type version this pipeline scans
	// against, recorded on every chunk it finalizes to SCANNED.
	DataType string
}

// New constructs a Pipeline from cfg.
func New(cfg Config) *Pipeline {
	return &Pipeline{
		lease:    cfg.Lease,
		report:   cfg.Report,
		conn:     cfg.Connector,
		analyzer: cfg.Analyzer,
		instance: cfg.InstanceID,
		rescan:   cfg.Rescan,
		dataType: cfg.DataType,
	}
}

// ScanChunk runs the full lease→fetch→guard→PHI-probe→classify→report→
// finalize pipeline for one chunk. It returns nil both when the chunk was
// scanned and when another agent already held the lease (a lost CAS is a
// no-op per spec.md §5, not an error).
func (p *Pipeline) ScanChunk(ctx context.Context, chunk models.Chunk) error {
	// Step 1: lease.
	acquired, err := p.lease.Lease(ctx, chunk.ID)
	if err != nil {
		return err
	}
	if !acquired {
		return nil
	}

	// Step 2: fetch, applying the overlap rule for non-zero offsets.
	fetchRange := connector.FetchRange(chunk.Offset, chunk.Limit)
	data, err := p.conn.Fetch(ctx, chunk.FetchPath, fetchRange.Offset, fetchRange.Limit)
	if err != nil {
		// A connector content error (corrupt archive, undecodable CSV,
		// missing object) fails only this chunk; siblings continue.
		return p.finalize(ctx, chunk, models.StatusFailed, nil)
	}

	// Step 3: empty/invalid guard.
	if isEmptyOrInvalid(data) {
		return p.report.Finalize(ctx, chunk.ID, models.StatusScanned, p.dataType, p.instance)
	}

	text := string(data)

	// Step 4: PHI probe.
	isPHI := classifier.IsPHI(chunk.FullPath, text)

	// Step 5: classify.
	analyzer := p.analyzer
	if p.rescan {
		analyzer = analyzer.WithoutNER()
	}
	findings := analyzer.Analyze(chunk, text)
	if isPHI {
		for i := range findings {
			findings[i].Column = withPHILabel(findings[i].Column)
		}
	}

	for _, batch := range classifier.Batch(findings) {
		if err := p.report.ReportFindings(ctx, batch); err != nil {
			return err
		}
	}

	// Step 6: finalize.
	return p.finalize(ctx, chunk, models.StatusScanned, &p.dataType)
}

// ScanTabularChunk runs the per-column variant of step 5 for table/CSV
// content: each column is classified independently (concatenated with a
// space the way a single text blob would be), and findings carry the
// originating column name.
func (p *Pipeline) ScanTabularChunk(ctx context.Context, chunk models.Chunk, content TabularContent) error {
	acquired, err := p.lease.Lease(ctx, chunk.ID)
	if err != nil {
		return err
	}
	if !acquired {
		return nil
	}

	analyzer := p.analyzer
	if p.rescan {
		analyzer = analyzer.WithoutNER()
	}

	var allFindings []models.Finding
	for column, value := range content.Columns {
		findings := analyzer.Analyze(chunk, value)
		col := column
		for i := range findings {
			findings[i].Column = &col
		}
		allFindings = append(allFindings, findings...)
	}

	for _, batch := range classifier.Batch(allFindings) {
		if err := p.report.ReportFindings(ctx, batch); err != nil {
			return err
		}
	}

	return p.finalize(ctx, chunk, models.StatusScanned, &p.dataType)
}

func (p *Pipeline) finalize(ctx context.Context, chunk models.Chunk, status models.Status, dataType *string) error {
	dt := ""
	if dataType != nil {
		dt = *dataType
	}
	return p.report.Finalize(ctx, chunk.ID, status, dt, p.instance)
}

func isEmptyOrInvalid(data []byte) bool {
	if len(data) == 0 {
		return true
	}
	return strings.TrimSpace(string(data)) == ""
}

func withPHILabel(existing *string) *string {
	label := "phi"
	if existing != nil && *existing != "" {
		label = *existing + ",phi"
	}
	return &label
}

// scanDeadline bounds how long a single chunk's fetch+classify step may
// run before the pipeline gives up and marks it FAILED, matching the
// connector retry budget (50s connect / 70s read) spec.md §7 describes
// for connector-level transient errors.
const scanDeadline = 70 * time.Second

// WithTimeout wraps ctx with the pipeline's standard per-chunk deadline.
func WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, scanDeadline)
}
