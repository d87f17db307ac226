package scanpipeline

import (
	"context"
	"regexp"
	"testing"

	"github.com/catherinevee/sensiscan/internal/classifier"
	"github.com/catherinevee/sensiscan/pkg/models"
)

type fakeLease struct {
	acquire map[string]bool
}

func (f *fakeLease) Lease(ctx context.Context, chunkID string) (bool, error) {
	if f.acquire == nil {
		return true, nil
	}
	return f.acquire[chunkID], nil
}

type fakeReport struct {
	findings []models.Finding
	status   models.Status
	dataType string
}

func (f *fakeReport) ReportFindings(ctx context.Context, findings []models.Finding) error {
	f.findings = append(f.findings, findings...)
	return nil
}

func (f *fakeReport) Finalize(ctx context.Context, chunkID string, status models.Status, dataType, instanceID string) error {
	f.status = status
	f.dataType = dataType
	return nil
}

type fakeConnector struct {
	data []byte
	err  error
}

func (f *fakeConnector) Discover(ctx context.Context) (models.DiscoveryResult, error) {
	return models.DiscoveryResult{}, nil
}

func (f *fakeConnector) Fetch(ctx context.Context, fetchPath string, offset, limit int64) ([]byte, error) {
	return f.data, f.err
}

func (f *fakeConnector) ExcludeRedundant(objects []models.Object) []models.Object { return objects }

func (f *fakeConnector) SourceConfiguration() map[string]string { return nil }

func newTestAnalyzer() *classifier.Analyzer {
	hyper := classifier.NewHyperscanEngine([]classifier.HyperscanRecognizer{
		{ID: 1, Name: "US_SSN", Pattern: regexp.MustCompile(classifier.DefaultPatterns["US_SSN"])},
	})
	return classifier.NewAnalyzer(nil, hyper, nil, nil)
}

func TestScanChunk_LostLeaseIsNoOp(t *testing.T) {
	lease := &fakeLease{acquire: map[string]bool{}}
	report := &fakeReport{}
	p := New(Config{Lease: lease, Report: report, Connector: &fakeConnector{}, Analyzer: newTestAnalyzer()})

	err := p.ScanChunk(context.Background(), models.Chunk{ID: "c1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.status != "" {
		t.Errorf("expected no finalize call when the lease was lost, got status %q", report.status)
	}
}

func TestScanChunk_EmptyContentScansClean(t *testing.T) {
	lease := &fakeLease{}
	report := &fakeReport{}
	p := New(Config{Lease: lease, Report: report, Connector: &fakeConnector{data: nil}, Analyzer: newTestAnalyzer()})

	if err := p.ScanChunk(context.Background(), models.Chunk{ID: "c1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.status != models.StatusScanned {
		t.Errorf("expected SCANNED for empty content, got %s", report.status)
	}
	if len(report.findings) != 0 {
		t.Errorf("expected no findings for empty content, got %d", len(report.findings))
	}
}

func TestScanChunk_FetchErrorMarksFailed(t *testing.T) {
	lease := &fakeLease{}
	report := &fakeReport{}
	p := New(Config{Lease: lease, Report: report, Connector: &fakeConnector{err: assertErr{}}, Analyzer: newTestAnalyzer()})

	if err := p.ScanChunk(context.Background(), models.Chunk{ID: "c1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.status != models.StatusFailed {
		t.Errorf("expected FAILED on fetch error, got %s", report.status)
	}
}

func TestScanChunk_ClassifiesAndReportsFindings(t *testing.T) {
	lease := &fakeLease{}
	report := &fakeReport{}
	conn := &fakeConnector{data: []byte("ssn on file: 123-45-6789")}
	p := New(Config{Lease: lease, Report: report, Connector: conn, Analyzer: newTestAnalyzer(), DataType: "v1"})

	chunk := models.Chunk{ID: "c1", MetadataID: "obj-1"}
	if err := p.ScanChunk(context.Background(), chunk); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.status != models.StatusScanned {
		t.Errorf("expected SCANNED, got %s", report.status)
	}
	if len(report.findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(report.findings))
	}
	if report.dataType != "v1" {
		t.Errorf("expected data type v1 recorded on finalize, got %q", report.dataType)
	}
}

func TestScanTabularChunk_AttachesColumnName(t *testing.T) {
	lease := &fakeLease{}
	report := &fakeReport{}
	p := New(Config{Lease: lease, Report: report, Connector: &fakeConnector{}, Analyzer: newTestAnalyzer()})

	content := TabularContent{Columns: map[string]string{
		"ssn":  "123-45-6789",
		"name": "no match here",
	}}
	if err := p.ScanTabularChunk(context.Background(), models.Chunk{ID: "c1"}, content); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(report.findings))
	}
	if report.findings[0].Column == nil || *report.findings[0].Column != "ssn" {
		t.Errorf("expected finding attributed to the ssn column, got %+v", report.findings[0])
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "fetch failed" }
