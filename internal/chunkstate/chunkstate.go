// Package chunkstate implements the chunk state machine and source diff:
// reconciling a freshly discovered object/chunk set against what the
// control plane already knows, producing the create/update/delete
// operations spec.md's lifecycle describes, independent of how either side
// is actually fetched or persisted.
package chunkstate

import (
	"github.com/catherinevee/sensiscan/internal/connector"
	"github.com/catherinevee/sensiscan/pkg/models"
)

// ExistingObject is a control-plane-known object together with its chunk
// set, the "S" side of the discovered-vs-known diff.
type ExistingObject struct {
	Object models.Object
	Chunks []models.Chunk
}

// SourcePlan is the result of reconciling a source's full discovered
// object set ("D") against its existing control-plane record set ("S").
type SourcePlan struct {
	// ObjectsToDelete are existing objects absent from the discovery
	// round (tombstone sweep, step 1): deleting them cascades their
	// chunks and findings at the control plane.
	ObjectsToDelete []models.Object
	// ObjectsToUpdate are existing objects whose size changed (step 3).
	ObjectsToUpdate []models.Object
	// ObjectsToCreate are newly discovered objects with no existing
	// record, survivors of filename inclusion and not newly ignored.
	ObjectsToCreate []models.Object
	// ObjectsNewlyIgnored are objects (new or existing) whose full_path
	// now matches a FILENAME/INCLUDE classifier; their existing record
	// (if any) transitions to IGNORED rather than being scanned.
	ObjectsNewlyIgnored []models.Object
	// ObjectsUnignored are existing IGNORED objects whose full_path no
	// longer matches any filename-exclusion classifier; they are deleted
	// so they re-enter discovery as ordinary objects (step 5).
	ObjectsUnignored []models.Object
	// Matched pairs an existing object with its discovered counterpart
	// (same full_path, present in both S and D), the working set for
	// per-object chunk reconciliation.
	Matched []MatchedObject
}

// MatchedObject pairs a discovered object with its existing control-plane
// record, both present in this diff round.
type MatchedObject struct {
	Existing   models.Object
	Discovered models.Object
}

// FilenameClassifier is a compiled FILENAME/INCLUDE classifier pattern
// used for step 6's inclusion filter, expressed as a predicate so
// chunkstate does not need to depend on the classifier engine package.
type FilenameClassifier struct {
	Name      string
	MatchFunc func(fullPath string) bool
}

// ReconcileSource performs steps 1, 3, 5, 6, 7, and 8 of the chunk state
// machine: the object-level tombstone sweep, size reconciliation,
// ignore/un-ignore transitions, filename inclusion, the classification-
// scoped data_objects filter, and already-scanned pruning. Step 2 (chunk
// tombstone sweep) and step 4 (content-change diff) are performed per
// matched object by ReconcileChunks.
//
// excludeClassifiers are EXCLUDE/FILENAME patterns: a match newly-ignores
// the object (or un-ignores a previously-ignored one once it stops
// matching). includeClassifiers are INCLUDE/FILENAME patterns (spec.md §4.3
// step 6): when at least one is configured, only matching objects proceed
// past discovery at all. The two sets are independent — an object can be
// absent from both, match only one, or match both.
//
// allowedObjectNames is the classification's data_objects list (step 7):
// when non-empty, discovery is restricted to objects whose ObjectName
// appears in it before any other step runs, so a named-out object is
// treated exactly as if it had never been discovered this round (and, if
// it has an existing record, falls into the step-1 tombstone sweep like
// any other vanished object).
func ReconcileSource(discovered []models.Object, existing []ExistingObject, excludeClassifiers, includeClassifiers []FilenameClassifier, allowedObjectNames []string) SourcePlan {
	if len(allowedObjectNames) > 0 {
		discovered = filterByObjectName(discovered, allowedObjectNames)
	}

	existingByPath := make(map[string]ExistingObject, len(existing))
	for _, e := range existing {
		existingByPath[e.Object.FullPath] = e
	}
	discoveredByPath := make(map[string]models.Object, len(discovered))
	for _, d := range discovered {
		discoveredByPath[d.FullPath] = d
	}

	var plan SourcePlan

	// Step 1: tombstone sweep — existing objects absent from discovery.
	for path, e := range existingByPath {
		if _, ok := discoveredByPath[path]; !ok {
			plan.ObjectsToDelete = append(plan.ObjectsToDelete, e.Object)
		}
	}

	for path, d := range discoveredByPath {
		matchedName, isIgnored := matchesAnyFilename(d.FullPath, excludeClassifiers)
		e, existed := existingByPath[path]

		switch {
		case isIgnored:
			ignoredObject := d
			ignoredObject.Labels = append(ignoredObject.Labels, matchedName)
			ignoredObject.Ignored = true
			plan.ObjectsNewlyIgnored = append(plan.ObjectsNewlyIgnored, ignoredObject)
			continue
		case existed && e.Object.Ignored:
			// Existing record was IGNORED but no longer matches any
			// filename classifier: un-ignore by deleting so it
			// re-enters discovery as an ordinary object (step 5).
			plan.ObjectsUnignored = append(plan.ObjectsUnignored, e.Object)
			continue
		}

		// Step 6: filename inclusion — if any INCLUDE/FILENAME
		// classifier is configured, only matching objects proceed.
		if hasIncludeClassifiers(includeClassifiers) && !includeMatches(d.FullPath, includeClassifiers) {
			continue
		}

		if !existed {
			plan.ObjectsToCreate = append(plan.ObjectsToCreate, d)
			continue
		}

		// Step 8: already-scanned pruning — unchanged (full_path, etag)
		// means the object reappeared exactly as last seen (invariant 1)
		// and needs no further per-object diff work this round.
		if e.Object.ETag != "" && e.Object.ETag == d.ETag {
			continue
		}

		// Step 3: size reconciliation.
		if e.Object.Size != d.Size {
			updated := e.Object
			updated.Size = d.Size
			plan.ObjectsToUpdate = append(plan.ObjectsToUpdate, updated)
		}

		plan.Matched = append(plan.Matched, MatchedObject{Existing: e.Object, Discovered: d})
	}

	return plan
}

func filterByObjectName(discovered []models.Object, allowedNames []string) []models.Object {
	allowed := make(map[string]struct{}, len(allowedNames))
	for _, name := range allowedNames {
		allowed[name] = struct{}{}
	}
	out := make([]models.Object, 0, len(discovered))
	for _, d := range discovered {
		if _, ok := allowed[d.ObjectName]; ok {
			out = append(out, d)
		}
	}
	return out
}

func matchesAnyFilename(fullPath string, classifiers []FilenameClassifier) (string, bool) {
	for _, c := range classifiers {
		if c.MatchFunc != nil && c.MatchFunc(fullPath) {
			return c.Name, true
		}
	}
	return "", false
}

func hasIncludeClassifiers(classifiers []FilenameClassifier) bool {
	return len(classifiers) > 0
}

func includeMatches(fullPath string, classifiers []FilenameClassifier) bool {
	_, ok := matchesAnyFilename(fullPath, classifiers)
	return ok
}

// ChunkPlan is the result of reconciling a single matched object's existing
// chunk set against its current size, performing chunk tombstone sweep
// (step 2) and content-change diff (step 4).
type ChunkPlan struct {
	// ChunksToDelete are existing chunks whose offset no longer exists
	// in the object's current chunk layout (step 2).
	ChunksToDelete []models.Chunk
	// ChunksToCreate are offsets present in the current layout with no
	// existing chunk record, inserted WAIT_FOR_SCAN (step 4, Create).
	// Always emitted after ChunksToUpdate (offset renumbering from
	// truncation/extension must be visible first).
	ChunksToCreate []models.Chunk
	// ChunksToUpdate are existing chunks whose content hash changed,
	// reset to WAIT_FOR_SCAN with hash/scanned_at/labels/instance_id
	// cleared (step 4, Update).
	ChunksToUpdate []models.Chunk
}

// ReconcileChunks computes the chunk-level plan for one matched object.
// newHashes supplies the freshly computed content hash for every offset
// the caller has fetched and hashed; offsets absent from newHashes are
// assumed unfetched (e.g. within the tombstone-swept range) and are
// skipped for the update/create decision — callers should hash every
// offset returned by ChunkOffsets before calling this.
func ReconcileChunks(metadataID, fullPath, fetchPath string, kind connector.ObjectKind, size int64, existingChunks []models.Chunk, newHashes map[int64]string) ChunkPlan {
	offsets := connector.ChunkOffsets(kind, size)
	currentOffsets := make(map[int64]struct{}, len(offsets))
	for _, off := range offsets {
		currentOffsets[off] = struct{}{}
	}

	existingByOffset := make(map[int64]models.Chunk, len(existingChunks))
	for _, c := range existingChunks {
		existingByOffset[c.Offset] = c
	}

	var plan ChunkPlan

	// Step 2: chunk tombstone sweep.
	for offset, c := range existingByOffset {
		if _, ok := currentOffsets[offset]; !ok {
			plan.ChunksToDelete = append(plan.ChunksToDelete, c)
		}
	}

	limit := chunkLimit(kind)
	for offset := range currentOffsets {
		existing, ok := existingByOffset[offset]
		newHash, hashed := newHashes[offset]

		switch {
		case !ok:
			plan.ChunksToCreate = append(plan.ChunksToCreate, models.Chunk{
				ID:         models.NewID(),
				MetadataID: metadataID,
				FullPath:   fullPath,
				FetchPath:  fetchPath,
				Offset:     offset,
				Limit:      limit,
				Status:     models.StatusWaitForScan,
			})
		case hashed && existing.Hash != nil && *existing.Hash != newHash:
			reset := existing
			reset.Hash = nil
			reset.ScannedAt = nil
			reset.InstanceID = nil
			reset.LatestDataType = nil
			reset.Status = models.StatusWaitForScan
			plan.ChunksToUpdate = append(plan.ChunksToUpdate, reset)
		}
	}

	return plan
}

func chunkLimit(kind connector.ObjectKind) int64 {
	switch kind {
	case connector.KindTable:
		return connector.TableChunkRows
	case connector.KindDocument:
		return connector.DocumentChunkDocs
	default:
		return connector.BlobChunkBytes
	}
}
