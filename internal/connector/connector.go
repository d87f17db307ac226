// Package connector defines the small per-source capability every concrete
// data-source implementation (S3, RDS, DynamoDB, DocumentDB, GitHub, GitLab,
// Bitbucket, Snowflake, Redshift) satisfies: discover objects, fetch a
// chunk's bytes or rows, and strip connector-specific noise objects before
// they ever reach the chunk state machine.
package connector

import (
	"context"
	"math"
	"path/filepath"
	"strings"

	"github.com/catherinevee/sensiscan/pkg/models"
)

// BlobChunkBytes is the fixed chunk size for byte-oriented (blob/file)
// objects.
const BlobChunkBytes = 1 << 20 // 1 MB

// OverlapBytes is how far a chunk fetch expands on the low side when its
// offset is non-zero, so an entity straddling a chunk boundary is still
// detected by the neighbouring chunk.
const OverlapBytes = 255

// TableChunkRows is the fixed chunk size for row-oriented (table) objects.
const TableChunkRows = 100_000

// DocumentChunkDocs is the fixed chunk size for document (NoSQL) objects.
const DocumentChunkDocs = 1_000

// UnsupportedExtensions lists file extensions the pipeline never chunks or
// scans; an object with one of these is marked SCANNED immediately with no
// chunk plan.
var UnsupportedExtensions = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".bmp": {}, ".svg": {},
	".tif": {}, ".tiff": {}, ".ico": {}, ".mbox": {}, ".webm": {},
}

// IsUnsupportedExtension reports whether name's extension should skip
// chunking entirely.
func IsUnsupportedExtension(name string) bool {
	_, ok := UnsupportedExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// ObjectKind distinguishes the three chunking shapes a connector's objects
// can take.
type ObjectKind string

const (
	KindBlob     ObjectKind = "BLOB"
	KindTable    ObjectKind = "TABLE"
	KindDocument ObjectKind = "DOCUMENT"
)

// ChunkCount returns the number of chunks an object of the given kind and
// size (bytes for blob, row count for table, document count for document)
// decomposes into.
func ChunkCount(kind ObjectKind, size int64) int64 {
	if size <= 0 {
		return 0
	}
	switch kind {
	case KindTable:
		return ceilDiv(size, TableChunkRows)
	case KindDocument:
		return ceilDiv(size, DocumentChunkDocs)
	default:
		return ceilDiv(size, BlobChunkBytes)
	}
}

func ceilDiv(n, d int64) int64 {
	return int64(math.Ceil(float64(n) / float64(d)))
}

// ChunkOffsets returns the offset of every chunk for an object of the given
// kind and size, in the unit appropriate to that kind (bytes, row index, or
// document index).
func ChunkOffsets(kind ObjectKind, size int64) []int64 {
	count := ChunkCount(kind, size)
	if count == 0 {
		return nil
	}
	step := int64(BlobChunkBytes)
	switch kind {
	case KindTable:
		step = TableChunkRows
	case KindDocument:
		step = DocumentChunkDocs
	}
	offsets := make([]int64, 0, count)
	for i := int64(0); i < count; i++ {
		offsets = append(offsets, i*step)
	}
	return offsets
}

// FetchRange computes the byte range a connector should actually read for a
// blob chunk at the given offset/limit, expanding the low side by
// OverlapBytes when offset is non-zero so neighbouring entities are caught
// by both chunks.
func FetchRange(offset, limit int64) models.FetchRange {
	if offset <= 0 {
		return models.FetchRange{Offset: 0, Limit: limit, Overlap: 0}
	}
	overlap := int64(OverlapBytes)
	if overlap > offset {
		overlap = offset
	}
	return models.FetchRange{Offset: offset - overlap, Limit: limit + overlap, Overlap: overlap}
}

// Connector is the capability every concrete data source implements.
type Connector interface {
	// Discover lists every Object currently visible at the source,
	// including enough metadata (size, etag, ownership, timestamps, ACL
	// where meaningful) for the chunk state machine to plan chunks and
	// detect changes.
	Discover(ctx context.Context) (models.DiscoveryResult, error)

	// Fetch reads a chunk's content: fetchPath identifies the object (or
	// extracted archive member) on this connector's terms, and the byte
	// range or row range is given by offset/limit in the unit appropriate
	// to the object's kind.
	Fetch(ctx context.Context, fetchPath string, offset, limit int64) ([]byte, error)

	// ExcludeRedundant strips connector-specific noise objects a customer
	// never wants scanned (S3's own access-log and CloudTrail objects,
	// for example) before the chunk state machine ever sees them.
	ExcludeRedundant(objects []models.Object) []models.Object

	// SourceConfiguration returns the connector's own view of its
	// connection parameters, reported back to the control plane so a
	// Source record stays in sync with what the agent is actually
	// configured to read.
	SourceConfiguration() map[string]string
}
