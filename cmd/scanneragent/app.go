// Command scanneragent is the distributed sensitive-data scanner's runtime
// entrypoint: it registers this agent's instance with the control plane,
// runs the foreground/background schedulers, and fans discovered chunks
// out to a bounded worker pool for classification. Grounded on the
// teacher's cmd/driftmgr cobra wiring, generalized from a one-shot
// Terraform-import CLI to a long-running scanner daemon.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/catherinevee/sensiscan/internal/config"
	"github.com/catherinevee/sensiscan/internal/connector/sourceconfig"
	"github.com/catherinevee/sensiscan/internal/controlplane"
	"github.com/catherinevee/sensiscan/internal/logger"
	"github.com/catherinevee/sensiscan/internal/pool"
	"github.com/catherinevee/sensiscan/internal/scheduler"
)

// app holds every long-lived dependency the scan/once commands share.
type app struct {
	settings   *config.Settings
	cp         *controlplane.Client
	pool       *pool.WorkerPool
	foreground *scheduler.ForegroundScheduler
	background *scheduler.BackgroundScheduler
	log        logger.Logger
}

// newApp loads Settings, parses SHARED_SECRET, and builds the
// control-plane client and worker pool. It does not start anything.
func newApp() (*app, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("scanneragent: loading configuration: %w", err)
	}

	tenant, stack, secret, err := config.ParseSharedSecret(settings.SharedSecret)
	if err != nil {
		return nil, fmt.Errorf("scanneragent: parsing SHARED_SECRET: %w", err)
	}

	cp := controlplane.New(controlplane.Config{
		BaseURL:       controlplane.BaseURL(stack, settings.ServerDomain),
		TokenEndpoint: controlplane.TokenEndpoint(stack, settings.ServerDomain, tenant),
		ClientID:      settings.CustomerAccountID,
		ClientSecret:  secret,
	})

	sequential := settings.ExecutionMode == config.ModeTest
	workerPool := pool.New(settings.MaxPythonProcesses, sequential)

	a := &app{
		settings: settings,
		cp:       cp,
		pool:     workerPool,
		log:      logger.New("scanneragent"),
	}

	a.foreground = scheduler.NewForeground(scheduler.ForegroundConfig{
		ControlPlane: cp,
		InstanceID:   settings.ScannerID,
		AccountID:    settings.CustomerAccountID,
		Scan:         a.scanClassification,
		Rescan:       a.rescanClassification,
	})
	a.background = scheduler.NewBackground(cp, settings.ScannerID)

	return a, nil
}

// register creates (or refreshes) this agent's scanner record with the
// control plane before either scheduler starts, the way spec.md §4.5
// expects an instance to announce itself before it is assigned work.
func (a *app) register(ctx context.Context) error {
	_, err := a.cp.RegisterScanner(ctx, controlplane.ScannerInstance{
		InstanceID: a.settings.ScannerID,
		AccountID:  a.settings.CustomerAccountID,
	})
	return err
}

// assignedClassificationIDs returns requested verbatim if non-empty,
// otherwise every classification group assigned to this agent — the same
// scanner_id/AWS-scoped account match the foreground scheduler's
// detect_new_tasks loop uses (spec.md §4.5), reimplemented here since the
// once command runs without that scheduler.
func (a *app) assignedClassificationIDs(ctx context.Context, requested []string) ([]string, error) {
	if len(requested) > 0 {
		return requested, nil
	}

	groups, err := a.cp.DataClassificationGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("scanneragent: listing classification groups: %w", err)
	}

	var ids []string
	for _, g := range groups {
		ownedByInstance := g.ScannerID != "" && g.ScannerID == a.settings.ScannerID
		ownedByAccount := g.AWSScoped && g.AccountID != "" && g.AccountID == a.settings.CustomerAccountID
		if ownedByInstance || ownedByAccount {
			ids = append(ids, g.ClassificationID)
		}
	}
	return ids, nil
}

// localSources returns the HCL-defined sources configured for Test/Develop
// mode via SCANNER_SOURCE_CONFIG, an additional env var this agent reads
// alongside the rest of internal/config.Settings specifically to support
// running against a local fixture tree with no live control plane behind
// it (internal/connector/sourceconfig).
func (a *app) localSources(classificationID string) ([]sourceconfig.Definition, error) {
	path := os.Getenv("SCANNER_SOURCE_CONFIG")
	if path == "" {
		return nil, nil
	}
	defs, err := sourceconfig.ParseFile(path)
	if err != nil {
		return nil, err
	}
	out := defs[:0]
	for _, d := range defs {
		if d.ClassificationID == classificationID {
			out = append(out, d)
		}
	}
	return out, nil
}
