// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

package raid

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"time"

	guuid "github.com/google/uuid"
	"github.com/mediaease/raidsetup/pkg/i18n"
	"github.com/mediaease/raidsetup/pkg/internal/shelltool"
	"github.com/mediaease/raidsetup/pkg/os"
	"github.com/mediaease/raidsetup/pkg/plan"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Builder assembles the md array from the formatted partitions and creates
// the target filesystem on it.
type Builder struct {
	fs    afero.Fs
	proc  os.Proc
	opts  buildOpts
	sleep func(time.Duration)
}

func NewBuilder(fs afero.Fs, proc os.Proc, opts ...BuildOpt) *Builder {
	o := buildOpts{
		label:      "mediaease",
		scratchDir: "/mnt/raidsetup-scratch",
		settle:     5 * time.Second,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Builder{fs: fs, proc: proc, opts: o, sleep: time.Sleep}
}

// Build runs mdadm across the spec's members and formats the resulting
// device. For btrfs, a subvolume named for the final mount point is created
// through a scratch mount; the array is only mounted at its real destination
// by the mount stage, through that subvolume. Returns the filesystem UUID and
// the subvolume name (empty for ext4/xfs). Nothing is rolled back on failure.
func (b *Builder) Build(ctx context.Context, spec ArraySpec, fsType plan.Filesystem, mountPoint string) (uuid, subvol string, err error) {
	zap.L().Sugar().Infof(i18n.T("build.assemble", spec.Level, spec.Device, spec.MemberCount()))
	if err := b.assemble(ctx, spec); err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrBuild, err)
	}

	zap.L().Sugar().Infof(i18n.T("build.mkfs", fsType, spec.Device))
	switch fsType {
	case plan.Btrfs:
		subvol = SubvolumeName(mountPoint)
		err = b.makeBtrfs(ctx, spec, subvol)
	case plan.XFS:
		err = b.runBuilt(ctx, shelltool.MakeXFS(spec.Device).Force().Label(b.opts.label))
	default:
		err = b.runBuilt(ctx, shelltool.MakeExt4(spec.Device).Force().Label(b.opts.label))
	}
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrBuild, err)
	}

	uuid, err = b.readUUID(ctx, spec.Device)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrBuild, err)
	}
	return uuid, subvol, nil
}

type builder interface {
	Build(ctx context.Context) (*exec.Cmd, error)
}

func (b *Builder) assemble(ctx context.Context, spec ArraySpec) error {
	create, err := shelltool.MdadmCreate(spec.Device).
		Verbose().
		Force().
		Run().
		Level(spec.Level.String()).
		DeviceNumber(spec.MemberCount()).
		Devices(spec.Members...).
		Build(ctx)
	if err != nil {
		return err
	}
	if _, err := b.proc.RunLogged(create); err != nil {
		return err
	}

	settle, err := shelltool.UdevadmSettle().Build(ctx)
	if err != nil {
		return err
	}
	if _, err := b.proc.RunLogged(settle); err != nil {
		return err
	}
	b.sleep(b.opts.settle)
	return nil
}

// makeBtrfs formats the array with the level's data/metadata profile pair,
// then creates the mount-point subvolume through a scratch mount.
func (b *Builder) makeBtrfs(ctx context.Context, spec ArraySpec, subvol string) error {
	profiles := spec.Level.BtrfsProfiles()
	err := b.runBuilt(ctx, shelltool.MakeBtrfs(spec.Device).
		Force().
		Label(b.opts.label).
		DataProfile(profiles.Data).
		MetadataProfile(profiles.Metadata))
	if err != nil {
		return err
	}

	if err := b.fs.MkdirAll(b.opts.scratchDir, 0o755); err != nil {
		return err
	}
	if err := b.runBuilt(ctx, shelltool.Mount(spec.Device, b.opts.scratchDir)); err != nil {
		return err
	}
	if err := b.runBuilt(ctx, shelltool.BtrfsSubvolumeCreate(filepath.Join(b.opts.scratchDir, subvol))); err != nil {
		return err
	}
	if err := b.runBuilt(ctx, shelltool.Umount(b.opts.scratchDir)); err != nil {
		return err
	}
	zap.L().Sugar().Infof(i18n.T("build.subvolume", subvol, spec.Device))
	return nil
}

// readUUID reads back the filesystem UUID, the durable key for the mount
// entry.
func (b *Builder) readUUID(ctx context.Context, device string) (string, error) {
	id, err := shelltool.BlockID(device).MatchTag("UUID").OutputFormat("value").Build(ctx)
	if err != nil {
		return "", err
	}
	lines, err := b.proc.RunLogged(id)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 || lines[0] == "" {
		return "", fmt.Errorf("no UUID reported for %s", device)
	}
	raw := lines[0]
	if _, err := guuid.Parse(raw); err != nil {
		return "", fmt.Errorf("malformed UUID %q for %s: %v", raw, device, err)
	}
	return raw, nil
}

func (b *Builder) runBuilt(ctx context.Context, tool builder) error {
	cmd, err := tool.Build(ctx)
	if err != nil {
		return err
	}
	_, err = b.proc.RunLogged(cmd)
	return err
}
