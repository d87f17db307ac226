// Package scheduler implements the two periodic drivers described in
// spec.md §4.5: a foreground scheduler that discovers and runs one
// recurring job per classification, and a background scheduler that
// publishes a liveness heartbeat. Both are pure timing/orchestration
// layers over the typed control-plane client and a caller-supplied scan
// callback; they hold no connector or classifier logic of their own.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/catherinevee/sensiscan/internal/controlplane"
	"github.com/catherinevee/sensiscan/internal/logger"
)

// defaultScanningPeriod is the fallback cadence for a classification job
// whose scanning_period_minutes the control plane reports as zero/unset
// (spec.md §6).
const defaultScanningPeriod = 15 * time.Minute

// detectInterval and rescanInterval are both fixed at 15 minutes.
// rescan_by_data_type runs on this same fixed cadence regardless of any
// individual classification's scanning_period_minutes — see DESIGN.md's
// open-question decision (b).
const (
	detectInterval = 15 * time.Minute
	rescanInterval = 15 * time.Minute
)

// ScanFunc runs one pass of work for a single classification id. The
// foreground scheduler only calls it — it never sees chunks, connectors,
// or the worker pool directly; those are wired by the caller (typically
// cmd/scanneragent), which closes over a chunkstate/scanpipeline/pool
// pipeline keyed by classification id.
type ScanFunc func(ctx context.Context, classificationID string) error

// ClassificationGroupSource is the subset of *controlplane.Client the
// foreground scheduler needs to discover and schedule jobs.
type ClassificationGroupSource interface {
	DataClassificationGroups(ctx context.Context) ([]controlplane.ClassificationGroup, error)
	DataClassifications(ctx context.Context, ids []string) ([]controlplane.DataClassification, error)
	SetLastScanned(ctx context.Context, classificationID string, when time.Time) error
}

// ForegroundConfig configures a ForegroundScheduler.
type ForegroundConfig struct {
	ControlPlane ClassificationGroupSource
	InstanceID   string // this agent's scanner instance id
	AccountID    string // this agent's owning AWS account id, for AWS-scoped classifications
	Scan         ScanFunc
	Rescan       ScanFunc
}

type classificationJob struct {
	id       string
	interval time.Duration
}

// ForegroundScheduler runs detect_new_tasks and rescan_by_data_type, and
// owns one recurring per-classification job for every classification
// assigned to this agent.
type ForegroundScheduler struct {
	cp         ClassificationGroupSource
	instanceID string
	accountID  string
	scan       ScanFunc
	rescan     ScanFunc

	log logger.Logger

	mu     sync.Mutex
	jobs   map[string]*classificationJob
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// NewForeground constructs a ForegroundScheduler from cfg.
func NewForeground(cfg ForegroundConfig) *ForegroundScheduler {
	return &ForegroundScheduler{
		cp:         cfg.ControlPlane,
		instanceID: cfg.InstanceID,
		accountID:  cfg.AccountID,
		scan:       cfg.Scan,
		rescan:     cfg.Rescan,
		log:        logger.New("scheduler"),
		jobs:       make(map[string]*classificationJob),
	}
}

// Start launches the detect_new_tasks and rescan_by_data_type loops.
// Both run once immediately, then every 15 minutes. Start returns
// immediately; call Stop to shut down gracefully.
func (s *ForegroundScheduler) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.ctx = ctx
	s.cancel = cancel
	s.mu.Unlock()

	s.wg.Add(2)
	go s.tick(ctx, detectInterval, s.runDetectNewTasks, "detect_new_tasks")
	go s.tick(ctx, rescanInterval, s.runRescanByDataType, "rescan_by_data_type")
}

// Stop cancels every running loop — the top-level tickers and every
// per-classification job — and blocks until they have all returned. A
// job's current ScanFunc invocation is never interrupted mid-flight; its
// context is only cancelled once it next checks ctx.Done() between
// chunks, so an in-flight chunk scan always completes.
func (s *ForegroundScheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

func (s *ForegroundScheduler) tick(ctx context.Context, interval time.Duration, fn func(context.Context) error, name string) {
	defer s.wg.Done()

	run := func() {
		if err := fn(ctx); err != nil {
			s.log.Error("scheduler loop failed", logger.String("loop", name), logger.Error(err))
		}
	}

	run()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			run()
		}
	}
}

// runDetectNewTasks is detect_new_tasks (spec.md §4.5): it reads every
// classification group, keeps the ones assigned to this agent, and
// registers a recurring per-classification job for each — job identifier
// is the classification id, so re-running detect_new_tasks against an
// already-registered classification is a no-op.
func (s *ForegroundScheduler) runDetectNewTasks(ctx context.Context) error {
	groups, err := s.cp.DataClassificationGroups(ctx)
	if err != nil {
		return err
	}

	var assigned []string
	for _, g := range groups {
		if s.isAssigned(g) {
			assigned = append(assigned, g.ClassificationID)
		}
	}
	if len(assigned) == 0 {
		return nil
	}

	classifications, err := s.cp.DataClassifications(ctx, assigned)
	if err != nil {
		return err
	}

	for _, dc := range classifications {
		interval := time.Duration(dc.ScanningPeriodMinutes) * time.Minute
		if interval <= 0 {
			interval = defaultScanningPeriod
		}
		s.registerJob(dc.ID, interval)
	}
	return nil
}

// isAssigned reports whether a classification group belongs to this
// agent: either its scanner_id names this instance directly, or it is
// AWS-scoped and this agent owns the account (spec.md §4.5).
func (s *ForegroundScheduler) isAssigned(g controlplane.ClassificationGroup) bool {
	if g.ScannerID != "" && g.ScannerID == s.instanceID {
		return true
	}
	if g.AWSScoped && g.AccountID != "" && g.AccountID == s.accountID {
		return true
	}
	return false
}

// registerJob starts a new recurring job for classificationID unless one
// is already registered; job identifier = classification id, so this is
// the dedup point spec.md §4.5 describes. The job's context is derived
// directly from the scheduler's own root context, so Stop's cancellation
// reaches every job without any extra plumbing.
func (s *ForegroundScheduler) registerJob(classificationID string, interval time.Duration) {
	s.mu.Lock()
	if _, exists := s.jobs[classificationID]; exists || s.ctx == nil {
		s.mu.Unlock()
		return
	}
	ctx := s.ctx
	job := &classificationJob{id: classificationID, interval: interval}
	s.jobs[classificationID] = job
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runJob(ctx, job)
	}()
}

func (s *ForegroundScheduler) runJob(ctx context.Context, job *classificationJob) {
	ticker := time.NewTicker(job.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.scan == nil {
				continue
			}
			if err := s.scan(ctx, job.id); err != nil {
				s.log.Error("classification scan failed", logger.String("classification_id", job.id), logger.Error(err))
				continue
			}
			if err := s.cp.SetLastScanned(ctx, job.id, time.Now().UTC()); err != nil {
				s.log.Error("failed recording last-scanned time", logger.String("classification_id", job.id), logger.Error(err))
			}
		}
	}
}

// runRescanByDataType re-scans every already-registered classification's
// chunks at the fixed 15-minute cadence (DESIGN.md decision (b)), rather
// than at that classification's own scanning_period_minutes.
func (s *ForegroundScheduler) runRescanByDataType(ctx context.Context) error {
	if s.rescan == nil {
		return nil
	}
	s.mu.Lock()
	ids := make([]string, 0, len(s.jobs))
	for id := range s.jobs {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	for _, id := range ids {
		if err := s.rescan(ctx, id); err != nil {
			s.log.Error("rescan failed", logger.String("classification_id", id), logger.Error(err))
		}
	}
	return nil
}
