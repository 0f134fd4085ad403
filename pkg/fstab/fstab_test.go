// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

package fstab

import (
	"context"
	"testing"

	"github.com/mediaease/raidsetup/pkg/os"
	"github.com/mediaease/raidsetup/pkg/plan"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUUID = "9c0f3bd2-4d1f-4f9a-a2cf-5a3d7e2b8a11"

func TestNewEntryPassFieldOnlyForHome(t *testing.T) {
	home := NewEntry(testUUID, "/home", plan.Ext4, "")
	assert.Equal(t, 2, home.Pass)
	assert.Equal(t, 0, home.Dump)

	data := NewEntry(testUUID, "/srv/data", plan.Ext4, "")
	assert.Equal(t, 0, data.Pass)
}

func TestEntryString(t *testing.T) {
	e := NewEntry(testUUID, "/home", plan.XFS, "")
	assert.Equal(t,
		"UUID="+testUUID+" /home xfs defaults,noatime,discard,allocsize=64m 0 2",
		e.String())

	e = NewEntry(testUUID, "/srv/media", plan.Btrfs, "media")
	assert.Equal(t,
		"UUID="+testUUID+" /srv/media btrfs defaults,noatime,compress=zstd,autodefrag,subvol=media 0 0",
		e.String())
}

func TestPersistAppendsAndMounts(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/fstab",
		[]byte("UUID=0000 / ext4 defaults 0 1\n"), 0o644))
	proc := &os.FakeProc{}
	p := NewPersister(fs, proc, "/etc/fstab")

	e := NewEntry(testUUID, "/home", plan.Ext4, "")
	require.NoError(t, p.Persist(context.Background(), e))

	written, err := afero.ReadFile(fs, "/etc/fstab")
	require.NoError(t, err)
	assert.Contains(t, string(written), "UUID=0000 / ext4 defaults 0 1")
	assert.Contains(t, string(written), "# [raidsetup] ext4 array mounted at /home")
	assert.Contains(t, string(written), e.String())

	assert.Equal(t, []string{
		"/usr/bin/systemctl daemon-reload",
		"/usr/bin/mount --all",
	}, proc.Commands)

	dir, err := afero.DirExists(fs, "/home")
	require.NoError(t, err)
	assert.True(t, dir)
}

func TestPersistToleratesMissingTable(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := NewPersister(fs, &os.FakeProc{}, "/etc/fstab")

	err := p.Persist(context.Background(), NewEntry(testUUID, "/home", plan.Ext4, ""))
	require.NoError(t, err)

	written, err := afero.ReadFile(fs, "/etc/fstab")
	require.NoError(t, err)
	assert.Contains(t, string(written), "UUID="+testUUID)
}

func TestPersistSkipsDuplicate(t *testing.T) {
	fs := afero.NewMemMapFs()
	proc := &os.FakeProc{}
	p := NewPersister(fs, proc, "/etc/fstab")
	e := NewEntry(testUUID, "/home", plan.Ext4, "")

	require.NoError(t, afero.WriteFile(fs, "/etc/fstab",
		[]byte(e.String()+"\n"), 0o644))

	err := p.Persist(context.Background(), e)
	assert.ErrorIs(t, err, ErrDuplicateEntry)
	assert.Empty(t, proc.Commands, "a duplicate must not trigger a remount")

	written, readErr := afero.ReadFile(fs, "/etc/fstab")
	require.NoError(t, readErr)
	assert.Equal(t, e.String()+"\n", string(written), "the table is left untouched")
}

func TestPersistDuplicateRequiresFullMatch(t *testing.T) {
	fs := afero.NewMemMapFs()
	// Same UUID and mount point but different options: not a duplicate.
	require.NoError(t, afero.WriteFile(fs, "/etc/fstab",
		[]byte("UUID="+testUUID+" /home ext4 defaults 0 2\n"), 0o644))
	p := NewPersister(fs, &os.FakeProc{}, "/etc/fstab")

	err := p.Persist(context.Background(), NewEntry(testUUID, "/home", plan.Ext4, ""))
	require.NoError(t, err)
}

func TestPersistMountFailureKeepsEntry(t *testing.T) {
	fs := afero.NewMemMapFs()
	proc := &os.FakeProc{Responses: []os.FakeResponse{
		{Match: "mount --all", Err: assert.AnError},
	}}
	p := NewPersister(fs, proc, "/etc/fstab")
	e := NewEntry(testUUID, "/home", plan.Ext4, "")

	err := p.Persist(context.Background(), e)
	assert.ErrorIs(t, err, ErrMount)

	written, readErr := afero.ReadFile(fs, "/etc/fstab")
	require.NoError(t, readErr)
	assert.Contains(t, string(written), e.String(), "the entry survives a failed mount")
}
