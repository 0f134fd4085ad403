// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

package raid

import (
	"context"
	"errors"
	"testing"

	"github.com/mediaease/raidsetup/pkg/os"
	"github.com/mediaease/raidsetup/pkg/plan"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUUID = "9c0f3bd2-4d1f-4f9a-a2cf-5a3d7e2b8a11"

func fourDiskSpec() ArraySpec {
	return ArraySpec{
		Device:  "/dev/md0",
		Level:   plan.Level10,
		Members: []string{"/dev/sdb1", "/dev/sdc1", "/dev/sdd1", "/dev/sde1"},
	}
}

func TestBuildExt4(t *testing.T) {
	proc := &os.FakeProc{Responses: []os.FakeResponse{
		{Match: "blkid", Lines: []string{testUUID}},
	}}
	b := NewBuilder(afero.NewMemMapFs(), proc, SettleDelay(0))

	uuid, subvol, err := b.Build(context.Background(), fourDiskSpec(), plan.Ext4, "/home")
	require.NoError(t, err)

	assert.Equal(t, testUUID, uuid)
	assert.Empty(t, subvol)
	assert.Equal(t, []string{
		"/usr/sbin/mdadm --create /dev/md0 --verbose --force --run --level 10 --raid-devices 4 /dev/sdb1 /dev/sdc1 /dev/sdd1 /dev/sde1",
		"/usr/bin/udevadm settle",
		"/usr/sbin/mkfs.ext4 -F -L mediaease /dev/md0",
		"/usr/sbin/blkid --match-tag UUID --output value /dev/md0",
	}, proc.Commands)
}

func TestBuildBtrfsCreatesSubvolume(t *testing.T) {
	proc := &os.FakeProc{Responses: []os.FakeResponse{
		{Match: "blkid", Lines: []string{testUUID}},
	}}
	fs := afero.NewMemMapFs()
	b := NewBuilder(fs, proc, SettleDelay(0), ScratchDir("/mnt/scratch"))

	spec := ArraySpec{
		Device:  "/dev/md0",
		Level:   plan.Level6,
		Members: []string{"/dev/sdb1", "/dev/sdc1", "/dev/sdd1", "/dev/sde1"},
	}
	uuid, subvol, err := b.Build(context.Background(), spec, plan.Btrfs, "/")
	require.NoError(t, err)

	assert.Equal(t, testUUID, uuid)
	assert.Equal(t, "root", subvol)
	assert.True(t, proc.Ran("mkfs.btrfs --force --label mediaease --data raid6 --metadata raid1c3 /dev/md0"))
	assert.True(t, proc.Ran("mount /dev/md0 /mnt/scratch"))
	assert.True(t, proc.Ran("btrfs subvolume create /mnt/scratch/root"))
	assert.True(t, proc.Ran("umount /mnt/scratch"))

	scratch, err := afero.DirExists(fs, "/mnt/scratch")
	require.NoError(t, err)
	assert.True(t, scratch)
}

func TestBuildFailsOnAssemblyError(t *testing.T) {
	proc := &os.FakeProc{Responses: []os.FakeResponse{
		{Match: "mdadm", Err: errors.New("not enough devices")},
	}}
	b := NewBuilder(afero.NewMemMapFs(), proc, SettleDelay(0))

	_, _, err := b.Build(context.Background(), fourDiskSpec(), plan.Ext4, "/home")

	assert.ErrorIs(t, err, ErrBuild)
	assert.False(t, proc.Ran("mkfs"), "no filesystem is created on a failed array")
}

func TestBuildRejectsMalformedUUID(t *testing.T) {
	proc := &os.FakeProc{Responses: []os.FakeResponse{
		{Match: "blkid", Lines: []string{"not-a-uuid"}},
	}}
	b := NewBuilder(afero.NewMemMapFs(), proc, SettleDelay(0))

	_, _, err := b.Build(context.Background(), fourDiskSpec(), plan.XFS, "/home")

	assert.ErrorIs(t, err, ErrBuild)
}
