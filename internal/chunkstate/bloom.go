package chunkstate

import (
	"github.com/bits-and-blooms/bloom/v3"
)

// SeenHashes is a per-source bloom filter of (full_path, offset, hash)
// tuples from the previous content-change diff round, an optimization
// layered in front of ReconcileChunks: a negative Test result proves the
// tuple was not seen last round and the chunk must be re-hashed, while a
// positive result is only probabilistic and still requires the exact
// SHA-384/MD5 compare ReconcileChunks performs before any chunk is
// actually skipped.
type SeenHashes struct {
	filter *bloom.BloomFilter
}

// NewSeenHashes builds a bloom filter sized for roughly n tuples at a 1%
// false-positive rate.
func NewSeenHashes(n uint) *SeenHashes {
	return &SeenHashes{filter: bloom.NewWithEstimates(n, 0.01)}
}

// Observe records a tuple as seen after a diff round confirms its hash is
// current.
func (s *SeenHashes) Observe(fullPath string, offset int64, hash string) {
	s.filter.Add(tupleKey(fullPath, offset, hash))
}

// MaybeUnchanged reports whether (fullPath, offset, hash) might already be
// known. false is certain: the chunk was never observed with this hash and
// must go through the exact diff. true is only a hint; callers must still
// fetch and hash-compare before treating the chunk as unchanged, since a
// bloom filter never produces false negatives but does produce false
// positives.
func (s *SeenHashes) MaybeUnchanged(fullPath string, offset int64, hash string) bool {
	return s.filter.Test(tupleKey(fullPath, offset, hash))
}

func tupleKey(fullPath string, offset int64, hash string) []byte {
	buf := make([]byte, 0, len(fullPath)+len(hash)+21)
	buf = append(buf, fullPath...)
	buf = append(buf, '#')
	buf = append(buf, itoa64(offset)...)
	buf = append(buf, '#')
	buf = append(buf, hash...)
	return buf
}

func itoa64(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var b [20]byte
	i := len(b)
	for v > 0 {
		i--
		b[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		b[i] = '-'
	}
	return string(b[i:])
}
