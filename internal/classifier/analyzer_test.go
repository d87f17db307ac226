package classifier

import (
	"regexp"
	"testing"

	"github.com/catherinevee/sensiscan/pkg/models"
)

func TestAnalyzer_Analyze_ProducesMaskedFindingsWithRegion(t *testing.T) {
	hyper := NewHyperscanEngine([]HyperscanRecognizer{
		{ID: 1, Name: "US_SSN", Pattern: regexp.MustCompile(DefaultPatterns["US_SSN"])},
	})
	analyzer := NewAnalyzer(nil, hyper, nil, nil)

	chunk := models.Chunk{ID: "chunk-1", MetadataID: "object-1"}
	findings := analyzer.Analyze(chunk, "ssn on file: 123-45-6789")

	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	f := findings[0]
	if f.ChunkID != "chunk-1" || f.MetadataID != "object-1" {
		t.Errorf("finding not bound to chunk: %+v", f)
	}
	if f.Region != "USA" {
		t.Errorf("expected region USA, got %q", f.Region)
	}
	if f.MaskedValue == "123-45-6789" {
		t.Error("masked value should not equal the raw match")
	}
	if f.ContentHash != HashData("123-45-6789") {
		t.Error("content hash should match HashData of the raw value")
	}
}

func TestAnalyzer_IsCustomRegex(t *testing.T) {
	analyzer := NewAnalyzer(nil, nil, nil, nil)
	if analyzer.IsCustomRegex("US_SSN") {
		t.Error("US_SSN is a built-in classifier, not custom")
	}
	if !analyzer.IsCustomRegex("CUSTOMER_RULE_42") {
		t.Error("unknown classifier name should be reported as custom")
	}
}

func TestHashData_IsDeterministicSHA384(t *testing.T) {
	if HashData("value") != HashData("value") {
		t.Error("HashData should be deterministic")
	}
	if len(HashData("value")) != 96 { // 48 bytes hex-encoded
		t.Errorf("expected a 96-character hex digest, got %d chars", len(HashData("value")))
	}
}

func TestBatch_SplitsAtChunkBatchSize(t *testing.T) {
	findings := make([]models.Finding, ChunkBatchSize+1)
	batches := Batch(findings)
	if len(batches) != 2 {
		t.Fatalf("expected 2 batches, got %d", len(batches))
	}
	if len(batches[0]) != ChunkBatchSize {
		t.Errorf("expected first batch to be exactly %d, got %d", ChunkBatchSize, len(batches[0]))
	}
	if len(batches[1]) != 1 {
		t.Errorf("expected second batch to have 1 leftover finding, got %d", len(batches[1]))
	}
}

func TestBatch_EmptyInputReturnsNil(t *testing.T) {
	if batches := Batch(nil); batches != nil {
		t.Errorf("expected nil for empty input, got %+v", batches)
	}
}
