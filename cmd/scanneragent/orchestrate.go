package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/catherinevee/sensiscan/internal/chunkstate"
	"github.com/catherinevee/sensiscan/internal/classifier"
	"github.com/catherinevee/sensiscan/internal/connector"
	"github.com/catherinevee/sensiscan/internal/connector/archive"
	"github.com/catherinevee/sensiscan/internal/connector/container"
	"github.com/catherinevee/sensiscan/internal/logger"
	"github.com/catherinevee/sensiscan/internal/scanpipeline"
	"github.com/catherinevee/sensiscan/pkg/models"
)

// scanClassification runs one full detect_new_tasks sweep for a single
// classification: resolve its sources and catalog, reconcile every
// source's object/chunk state against the control plane's record of it,
// and submit the resulting WAIT_FOR_SCAN work to the worker pool.
func (a *app) scanClassification(ctx context.Context, classificationID string) error {
	return a.runClassification(ctx, classificationID, false)
}

// rescanClassification is the rescan_by_data_type variant (spec.md §4.5):
// it pulls chunks already SCANNED under a stale catalog data-type version
// and reruns them against the current catalog with the NER stage disabled.
func (a *app) rescanClassification(ctx context.Context, classificationID string) error {
	return a.runClassification(ctx, classificationID, true)
}

func (a *app) runClassification(ctx context.Context, classificationID string, rescan bool) error {
	classifiers, err := a.cp.Classifiers(ctx, classificationID)
	if err != nil {
		return err
	}
	analyzer := classifier.BuildAnalyzer(classifiers, !rescan)

	dataType := ""
	var allowedObjectNames []string
	if dcs, err := a.cp.DataClassifications(ctx, []string{classificationID}); err == nil && len(dcs) > 0 {
		dataType = dcs[0].CatalogVersion
		allowedObjectNames = dcs[0].DataObjects
	}

	sources, err := a.resolveSources(ctx, classificationID)
	if err != nil {
		return err
	}

	excludeClassifiers, includeClassifiers := filenameClassifiers(classifiers)

	for _, src := range sources {
		if err := a.scanSource(ctx, src, analyzer, dataType, rescan, excludeClassifiers, includeClassifiers, allowedObjectNames); err != nil {
			a.log.Error("scanning source failed", logger.String("source_id", src.ID), logger.Error(err))
		}
	}
	return nil
}

// resolveSources prefers a live control-plane source list; in Test/Develop
// mode with no assigned sources it falls back to the HCL-defined local
// sources (internal/connector/sourceconfig), letting a fixture run proceed
// with no control plane behind it at all.
func (a *app) resolveSources(ctx context.Context, classificationID string) ([]models.Source, error) {
	sources, err := a.cp.DataClassificationSources(ctx, classificationID)
	if err != nil {
		return nil, err
	}
	if len(sources) > 0 {
		return sources, nil
	}

	defs, err := a.localSources(classificationID)
	if err != nil {
		return nil, err
	}
	out := make([]models.Source, 0, len(defs))
	for _, d := range defs {
		out = append(out, d.ToSource())
	}
	return out, nil
}

func filenameClassifiers(classifiers []models.Classifier) (exclude, include []chunkstate.FilenameClassifier) {
	for _, c := range classifiers {
		if c.Kind != models.KindFilename || len(c.Patterns) == 0 {
			continue
		}
		fc := compileFilenameClassifier(c)
		if fc == nil {
			continue
		}
		if c.Category == models.CategoryInclude {
			include = append(include, *fc)
		} else {
			exclude = append(exclude, *fc)
		}
	}
	return exclude, include
}

func compileFilenameClassifier(c models.Classifier) *chunkstate.FilenameClassifier {
	re, err := regexp.Compile(c.Patterns[0])
	if err != nil {
		return nil
	}
	return &chunkstate.FilenameClassifier{
		Name:      c.Name,
		MatchFunc: func(fullPath string) bool { return re.MatchString(fullPath) },
	}
}

// scanSource reconciles one source's discovered objects against the
// control plane's record of it (spec.md §4.3), pushes the resulting
// object/chunk mutations, and submits every WAIT_FOR_SCAN chunk to the
// worker pool for classification (spec.md §4.4).
//
// The control-plane surface spec.md §6 defines has no "fetch all chunks
// for one object" endpoint, only a per-source WAIT_FOR_SCAN filter and a
// per-source rescan filter. A brand-new object's full chunk layout can
// still be planned directly (ReconcileChunks with no existing chunks
// always creates every offset); an existing object whose size changed
// (plan.Matched) has no way to fetch its prior per-offset chunk records
// here and is left for the next rescan_by_data_type pass to pick up under
// catalog-version skew rather than guessed at — see DESIGN.md.
func (a *app) scanSource(
	ctx context.Context,
	src models.Source,
	analyzer *classifier.Analyzer,
	dataType string,
	rescan bool,
	excludeClassifiers, includeClassifiers []chunkstate.FilenameClassifier,
	allowedObjectNames []string,
) error {
	rawConn, err := buildConnector(ctx, a.cp, src)
	if err != nil {
		return err
	}

	archiveCacheDir, err := os.MkdirTemp("", "sensiscan-archive-"+src.ID+"-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(archiveCacheDir)
	conn := &archiveExpandedConnector{Connector: rawConn, cacheDir: archiveCacheDir}

	kind := objectKindForConnector(src.ConnectorType)

	pipeline := scanpipeline.New(scanpipeline.Config{
		Lease:      a.cp,
		Report:     a.cp,
		Connector:  conn,
		Analyzer:   analyzer,
		InstanceID: a.settings.ScannerID,
		Rescan:     rescan,
		DataType:   dataType,
	})

	if rescan {
		chunks, err := a.cp.RescanChunks(ctx, src.ID, dataType)
		if err != nil {
			return err
		}
		a.submitChunks(ctx, chunks, pipeline)
		return nil
	}

	discovery, err := conn.Discover(ctx)
	if err != nil {
		return err
	}
	discovered := conn.ExcludeRedundant(discovery.Objects)

	existingObjects, err := a.cp.FileMetadata(ctx, src.ID)
	if err != nil {
		return err
	}
	existing := make([]chunkstate.ExistingObject, 0, len(existingObjects))
	for _, obj := range existingObjects {
		existing = append(existing, chunkstate.ExistingObject{Object: obj})
	}

	plan := chunkstate.ReconcileSource(discovered, existing, excludeClassifiers, includeClassifiers, allowedObjectNames)

	if err := a.cp.DeleteFileMetadata(ctx, objectIDs(plan.ObjectsToDelete)); err != nil {
		return err
	}
	if err := a.cp.DeleteFileMetadata(ctx, objectIDs(plan.ObjectsUnignored)); err != nil {
		return err
	}
	if err := a.cp.BatchUpsertFileMetadata(ctx, plan.ObjectsToUpdate); err != nil {
		return err
	}
	if err := a.cp.BatchUpsertFileMetadata(ctx, plan.ObjectsToCreate); err != nil {
		return err
	}
	if err := a.cp.BatchUpsertFileMetadata(ctx, plan.ObjectsNewlyIgnored); err != nil {
		return err
	}

	for _, obj := range plan.ObjectsToCreate {
		if connector.IsUnsupportedExtension(obj.ObjectName) {
			continue
		}
		if archive.IsArchiveExtension(obj.ObjectName) {
			if err := a.planArchiveChunks(ctx, conn, archiveCacheDir, obj); err != nil {
				a.log.Error("expanding archive failed", logger.String("object_id", obj.ID), logger.Error(err))
			}
			continue
		}
		chunkSize, err := a.sizeForChunking(ctx, conn, obj)
		if err != nil {
			a.log.Error("sizing object for chunking failed", logger.String("object_id", obj.ID), logger.Error(err))
			continue
		}
		chunkPlan := chunkstate.ReconcileChunks(obj.ID, obj.FullPath, obj.FetchPath, kind, chunkSize, nil, nil)
		if err := a.cp.BatchCreateChunks(ctx, chunkPlan.ChunksToCreate); err != nil {
			a.log.Error("creating chunks failed", logger.String("object_id", obj.ID), logger.Error(err))
		}
	}

	chunks, err := a.cp.WaitForScanChunks(ctx, src.ID, a.settings.MaxPythonProcesses*4)
	if err != nil {
		return err
	}
	a.submitChunks(ctx, chunks, pipeline)
	return nil
}

// sizeForChunking returns the size the chunk state machine should plan
// offsets against: the connector-reported on-disk size for ordinary blobs,
// or the extracted-text-representation size for container formats (§4.2),
// which requires fetching the whole object up front since extraction
// cannot be done incrementally per chunk.
func (a *app) sizeForChunking(ctx context.Context, conn connector.Connector, obj models.Object) (int64, error) {
	if !container.IsContainerExtension(obj.ObjectName) {
		return obj.Size, nil
	}
	data, err := conn.Fetch(ctx, obj.FetchPath, 0, obj.Size)
	if err != nil {
		return 0, err
	}
	return container.ExtractedTextSize(obj.ObjectName, data)
}

// planArchiveChunks expands an archive object (the "Archive handling"
// requirement, spec.md §4.2) into destDir and submits one WAIT_FOR_SCAN
// chunk per leaf member directly, bypassing ReconcileChunks since an
// archive's members have no independent object records of their own — the
// archive's single Object row covers all of them. Insufficient free disk
// skips the object entirely rather than expanding it partially.
func (a *app) planArchiveChunks(ctx context.Context, conn connector.Connector, cacheDir string, obj models.Object) error {
	data, err := conn.Fetch(ctx, obj.FetchPath, 0, obj.Size)
	if err != nil {
		return err
	}

	archiveKind := archive.DetectKind(obj.ObjectName, archiveHead(data))
	uncompressed, err := archive.UncompressedSize(archiveKind, data)
	if err != nil {
		return err
	}
	fits, err := archive.FitsOnDisk(cacheDir, uncompressed)
	if err != nil {
		return err
	}
	if !fits {
		a.log.Warn("skipping archive: insufficient free disk to expand",
			logger.String("object_id", obj.ID))
		return nil
	}

	destDir := filepath.Join(cacheDir, obj.ID)
	members, err := archive.ExpandTo(archiveKind, data, destDir)
	if err != nil {
		return err
	}

	chunks := make([]models.Chunk, 0, len(members))
	for _, m := range members {
		size := m.Size
		if container.IsContainerExtension(m.RelativePath) {
			if raw, err := os.ReadFile(m.DiskPath); err == nil {
				if extracted, err := container.ExtractedTextSize(m.RelativePath, raw); err == nil {
					size = extracted
				}
			}
		}
		chunks = append(chunks, models.Chunk{
			ID:         models.NewID(),
			MetadataID: obj.ID,
			FullPath:   obj.FullPath + "/" + m.RelativePath,
			FetchPath:  m.DiskPath,
			Offset:     0,
			Limit:      size,
			Status:     models.StatusWaitForScan,
		})
	}
	return a.cp.BatchCreateChunks(ctx, chunks)
}

func archiveHead(data []byte) []byte {
	if len(data) > 4 {
		return data[:4]
	}
	return data
}

// archiveExpandedConnector wraps a source's Connector so chunks whose
// FetchPath points into cacheDir (an archive member written to local disk
// by planArchiveChunks) are read directly from disk instead of being
// handed back to the underlying connector, which only understands its own
// fetch-path scheme (an S3 key, a table name, and so on).
type archiveExpandedConnector struct {
	connector.Connector
	cacheDir string
}

func (c *archiveExpandedConnector) Fetch(ctx context.Context, fetchPath string, offset, limit int64) ([]byte, error) {
	if strings.HasPrefix(fetchPath, c.cacheDir) {
		return readLocalRange(fetchPath, offset, limit)
	}
	return c.Connector.Fetch(ctx, fetchPath, offset, limit)
}

func readLocalRange(path string, offset, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return nil, err
	}
	buf := make([]byte, limit)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	return buf[:n], nil
}

func (a *app) submitChunks(ctx context.Context, chunks []models.Chunk, pipeline *scanpipeline.Pipeline) {
	for _, chunk := range chunks {
		chunk := chunk
		a.pool.Submit(ctx, func(ctx context.Context) error {
			scanCtx, cancel := scanpipeline.WithTimeout(ctx)
			defer cancel()
			return pipeline.ScanChunk(scanCtx, chunk)
		})
	}
}

func objectIDs(objects []models.Object) []string {
	ids := make([]string, 0, len(objects))
	for _, o := range objects {
		ids = append(ids, o.ID)
	}
	return ids
}
