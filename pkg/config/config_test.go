// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

package config

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), "")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesFromFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/raidsetup/custom.yaml", []byte(`
mount_point: /srv/media
filesystem: btrfs
label: tank
settle_delay: 2s
locale: fr
`), 0o644))

	cfg, err := Load(fs, "/etc/raidsetup/custom.yaml")
	require.NoError(t, err)

	assert.Equal(t, "/srv/media", cfg.MountPoint)
	assert.Equal(t, "btrfs", cfg.Filesystem)
	assert.Equal(t, "tank", cfg.Label)
	assert.Equal(t, 2*time.Second, cfg.SettleDelay)
	assert.Equal(t, "fr", cfg.Locale)
	// Untouched keys keep their defaults.
	assert.Equal(t, "/dev/md0", cfg.ArrayDevice)
	assert.Equal(t, "/etc/fstab", cfg.FstabPath)
}

func TestLoadExplicitFileMustExist(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/nonexistent.yaml")
	assert.Error(t, err)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bad.yaml", []byte("mount_point: [unterminated"), 0o644))

	_, err := Load(fs, "/bad.yaml")
	assert.Error(t, err)
}
