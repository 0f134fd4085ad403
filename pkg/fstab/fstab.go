// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

// Package fstab registers the array's filesystem in the persistent mount
// table and mounts it.
package fstab

import (
	"context"
	"errors"
	"fmt"
	stdos "os"
	"strings"

	"github.com/mediaease/raidsetup/pkg/i18n"
	"github.com/mediaease/raidsetup/pkg/internal/shelltool"
	"github.com/mediaease/raidsetup/pkg/os"
	"github.com/mediaease/raidsetup/pkg/plan"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const DefaultPath = "/etc/fstab"

var (
	// ErrDuplicateEntry reports that an identical entry already exists. It is
	// informational: the caller treats it as a successful no-op.
	ErrDuplicateEntry = errors.New("entry already present")
	// ErrMount marks a mount failure after the table was already updated.
	// The written entry is not rolled back.
	ErrMount = errors.New("mount failure")
)

// Entry is one line of the persistent mount table, keyed by filesystem UUID
// so device renames across reboots cannot break the mount.
type Entry struct {
	UUID       string
	MountPoint string
	Filesystem plan.Filesystem
	Options    string
	Dump       int
	Pass       int
}

// NewEntry composes the entry for a freshly built array. The fsck pass field
// is only set for the home mount; everything else is never checked at boot.
func NewEntry(uuid, mountPoint string, fsType plan.Filesystem, subvol string) Entry {
	pass := 0
	if mountPoint == "/home" {
		pass = 2
	}
	return Entry{
		UUID:       uuid,
		MountPoint: mountPoint,
		Filesystem: fsType,
		Options:    fsType.MountOptions(subvol),
		Dump:       0,
		Pass:       pass,
	}
}

func (e Entry) String() string {
	return fmt.Sprintf("UUID=%s %s %s %s %d %d",
		e.UUID, e.MountPoint, e.Filesystem, e.Options, e.Dump, e.Pass)
}

// Persister appends entries to the mount table and mounts them.
type Persister struct {
	fs   afero.Fs
	proc os.Proc
	path string
}

func NewPersister(fs afero.Fs, proc os.Proc, path string) *Persister {
	if path == "" {
		path = DefaultPath
	}
	return &Persister{fs: fs, proc: proc, path: path}
}

// Persist appends the entry to the mount table unless an identical one is
// already present, reloads the systemd mount generators, creates the mount
// point and mounts all pending entries. A duplicate returns
// ErrDuplicateEntry with no write at all; a failure to mount after a
// successful write returns ErrMount without undoing the write.
func (p *Persister) Persist(ctx context.Context, e Entry) error {
	existing, err := afero.ReadFile(p.fs, p.path)
	if err != nil && !stdos.IsNotExist(err) {
		return err
	}
	if containsEntry(string(existing), e) {
		zap.L().Sugar().Infof(i18n.T("mount.already_mounted", e.UUID, e.MountPoint))
		return ErrDuplicateEntry
	}

	block := fmt.Sprintf("\n# [raidsetup] %s array mounted at %s\n%s\n",
		e.Filesystem, e.MountPoint, e)
	if err := p.append(block); err != nil {
		return err
	}
	zap.L().Sugar().Infof(i18n.T("mount.persisted", e.UUID, e.MountPoint, p.path))

	reload, err := shelltool.SystemCTL().DaemonReload().Build(ctx)
	if err != nil {
		return err
	}
	if _, err := p.proc.RunLogged(reload); err != nil {
		return fmt.Errorf("%w: %v", ErrMount, err)
	}

	if err := p.fs.MkdirAll(e.MountPoint, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrMount, err)
	}

	mountAll, err := shelltool.MountAll().Build(ctx)
	if err != nil {
		return err
	}
	if _, err := p.proc.RunLogged(mountAll); err != nil {
		zap.L().Sugar().Warnf(i18n.T("mount.mount_failed", err))
		return fmt.Errorf("%w: %v", ErrMount, err)
	}
	zap.L().Sugar().Infof(i18n.T("mount.mounted", e.MountPoint))
	return nil
}

func (p *Persister) append(block string) error {
	f, err := p.fs.OpenFile(p.path, stdos.O_CREATE|stdos.O_APPEND|stdos.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(block)
	return err
}

// containsEntry reports whether the table already holds a line with the same
// UUID, mount point, type and options. Comments and malformed lines are
// skipped.
func containsEntry(table string, e Entry) bool {
	for _, line := range strings.Split(table, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		if fields[0] == "UUID="+e.UUID &&
			fields[1] == e.MountPoint &&
			fields[2] == e.Filesystem.String() &&
			fields[3] == e.Options {
			return true
		}
	}
	return false
}
