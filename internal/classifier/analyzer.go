package classifier

import (
	"crypto/sha512"
	"encoding/hex"

	"github.com/catherinevee/sensiscan/pkg/models"
)

// ChunkBatchSize is the maximum number of findings gathered per chunk
// before the caller should flush them to the control plane, matching the
// reference service's SENSITIVE_DATA_CHUNK batching constant.
const ChunkBatchSize = 100_000

// Analyzer runs every classification engine over a chunk of text in the
// order the reference service's _analyze generator does: NER first (so a
// PERSON match takes priority at an offset over any Hyperscan/RE2/RE hit at
// the same start), then Hyperscan, then RE2, then the backtracking RE
// engine for standalone-credential patterns.
type Analyzer struct {
	ner   *NEREngine
	hyper *HyperscanEngine
	re2   *RE2Engine
	re    *REEngine

	systemNames map[string]struct{}
}

// NewAnalyzer composes the four engines into a single pipeline. Any engine
// may be nil, in which case its stage is skipped (useful for tests that
// only want to exercise a subset).
func NewAnalyzer(ner *NEREngine, hyper *HyperscanEngine, re2 *RE2Engine, re *REEngine) *Analyzer {
	return &Analyzer{
		ner:         ner,
		hyper:       hyper,
		re2:         re2,
		re:          re,
		systemNames: SystemClassifierNames(),
	}
}

// WithoutNER returns a copy of the analyzer with the NER engine disabled,
// used by the scheduler's rescan_by_data_type job (spec.md §4.5), which
// reruns the regex engines against a new catalog version without paying
// for NER extraction a second time.
func (a *Analyzer) WithoutNER() *Analyzer {
	clone := *a
	clone.ner = nil
	return &clone
}

// Analyze runs every configured engine over text and converts the combined
// match set into Findings bound to chunk, hashing each matched value with
// HashData and masking it with MaskValue.
func (a *Analyzer) Analyze(chunk models.Chunk, text string) []models.Finding {
	var matches []Match
	if a.ner != nil {
		matches = append(matches, a.ner.Extract(text)...)
	}
	if a.hyper != nil {
		matches = append(matches, a.hyper.Extract(text)...)
	}
	if a.re2 != nil {
		matches = append(matches, a.re2.Extract(text)...)
	}
	if a.re != nil {
		matches = append(matches, a.re.Extract(text)...)
	}

	findings := make([]models.Finding, 0, len(matches))
	for _, m := range matches {
		findings = append(findings, models.Finding{
			MetadataID:     chunk.MetadataID,
			ChunkID:        chunk.ID,
			ClassifierName: m.Name,
			Region:         Region(m.Name),
			Score:          1.0,
			MaskedValue:    MaskValue(m.Name, m.Value),
			ContentHash:    HashData(m.Value),
		})
	}
	return findings
}

// IsCustomRegex reports whether name is a customer-defined recognizer
// rather than one of the built-in patterns.
func (a *Analyzer) IsCustomRegex(name string) bool {
	_, ok := a.systemNames[name]
	return !ok
}

// Batch splits findings into groups no larger than ChunkBatchSize, the unit
// the scan pipeline reports to the control plane at a time.
func Batch(findings []models.Finding) [][]models.Finding {
	if len(findings) == 0 {
		return nil
	}
	var batches [][]models.Finding
	for len(findings) > ChunkBatchSize {
		batches = append(batches, findings[:ChunkBatchSize])
		findings = findings[ChunkBatchSize:]
	}
	batches = append(batches, findings)
	return batches
}

// HashData returns the SHA-384 digest of value, hex-encoded, used both for
// chunk content-change detection and finding content hashes.
func HashData(value string) string {
	sum := sha512.Sum384([]byte(value))
	return hex.EncodeToString(sum[:])
}
