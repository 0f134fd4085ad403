// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

// Package provision drives the pipeline that turns unused disks into a
// mounted, redundant volume: inventory, planning, formatting, array build,
// and mount persistence, strictly in that order.
package provision

import (
	"context"
	"errors"
	"strings"

	"github.com/mediaease/raidsetup/pkg/config"
	"github.com/mediaease/raidsetup/pkg/fstab"
	"github.com/mediaease/raidsetup/pkg/i18n"
	"github.com/mediaease/raidsetup/pkg/inventory"
	"github.com/mediaease/raidsetup/pkg/os"
	"github.com/mediaease/raidsetup/pkg/out"
	"github.com/mediaease/raidsetup/pkg/plan"
	"github.com/mediaease/raidsetup/pkg/raid"
	"github.com/spf13/afero"
)

// ErrUserAborted reports that the operator declined the destructive
// confirmation. Nothing has been touched when it is returned.
var ErrUserAborted = errors.New("aborted by operator")

// Request carries the CLI's positional arguments, already defaulted.
type Request struct {
	Level      string
	MountPoint string
	Filesystem string
	Device     string
}

// Context accumulates each stage's output as the pipeline advances. It is
// threaded explicitly through the stages; no stage keeps ambient state.
type Context struct {
	Candidates inventory.CandidateSet
	Plan       plan.Plan
	Array      raid.ArraySpec
	UUID       string
	Subvolume  string
	Entry      fstab.Entry
}

// Provisioner wires the pipeline's collaborators together.
type Provisioner struct {
	fs       afero.Fs
	proc     os.Proc
	prompter out.Prompter
	cfg      *config.Config
}

func New(fs afero.Fs, proc os.Proc, prompter out.Prompter, cfg *config.Config) *Provisioner {
	return &Provisioner{fs: fs, proc: proc, prompter: prompter, cfg: cfg}
}

// Run executes the full pipeline. Validation failures, an infeasible disk
// count and an operator abort all stop it before any destructive command;
// once formatting starts, the first failure aborts the remaining stages. A
// pre-existing identical mount entry is reported and treated as success.
func (p *Provisioner) Run(ctx context.Context, req Request) (*Context, error) {
	pctx := &Context{}

	set, err := inventory.New(p.proc).Detect(ctx)
	if err != nil {
		return pctx, err
	}
	pctx.Candidates = set
	out.Info(i18n.T("inventory.detected", set.Count()))

	pctx.Plan, err = plan.New(req.Level, req.Filesystem, set.Count(), p.prompter)
	if err != nil {
		return pctx, err
	}
	out.Info(i18n.T("plan.level_selected", pctx.Plan.Level, set.Count()))

	confirmed, err := p.prompter.Confirm(false,
		i18n.T("format.confirm", strings.Join(set.Paths(), ", ")))
	if err != nil {
		return pctx, err
	}
	if !confirmed {
		out.Warn(i18n.T("format.aborted"))
		return pctx, ErrUserAborted
	}

	formatter := raid.NewFormatter(p.proc, p.cfg.SettleDelay)
	members, err := formatter.Format(ctx, set, pctx.Plan.Filesystem)
	if err != nil {
		return pctx, err
	}
	pctx.Array = raid.ArraySpec{
		Device:  normalizeDevice(req.Device),
		Level:   pctx.Plan.Level,
		Members: members,
	}

	builder := raid.NewBuilder(p.fs, p.proc,
		raid.Label(p.cfg.Label),
		raid.ScratchDir(p.cfg.ScratchDir),
		raid.SettleDelay(p.cfg.SettleDelay),
	)
	pctx.UUID, pctx.Subvolume, err = builder.Build(ctx, pctx.Array, pctx.Plan.Filesystem, req.MountPoint)
	if err != nil {
		return pctx, err
	}

	pctx.Entry = fstab.NewEntry(pctx.UUID, req.MountPoint, pctx.Plan.Filesystem, pctx.Subvolume)
	persister := fstab.NewPersister(p.fs, p.proc, p.cfg.FstabPath)
	if err := persister.Persist(ctx, pctx.Entry); err != nil {
		// An identical entry from a previous run is informational, not a
		// failure.
		if !errors.Is(err, fstab.ErrDuplicateEntry) {
			return pctx, err
		}
	}

	out.Info(i18n.T("provision.done", pctx.Array.Device, req.MountPoint))
	return pctx, nil
}

// normalizeDevice accepts both "md0" and "/dev/md0".
func normalizeDevice(device string) string {
	if device == "" {
		return device
	}
	if !strings.HasPrefix(device, "/") {
		return "/dev/" + device
	}
	return device
}
