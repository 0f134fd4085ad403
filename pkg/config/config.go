// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

// Package config loads raidsetup's defaults, optionally overridden by a
// configuration file and RAIDSETUP_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const DefaultPath = "/etc/raidsetup/raidsetup.yaml"

type Config struct {
	// MountPoint is where the array lands when the CLI omits the argument.
	MountPoint string `mapstructure:"mount_point"`
	// ArrayDevice is the md node created when the CLI omits the argument.
	ArrayDevice string `mapstructure:"array_device"`
	// Filesystem is the default filesystem type.
	Filesystem string `mapstructure:"filesystem"`
	// Label is stamped on every filesystem the pipeline creates.
	Label string `mapstructure:"label"`
	// FstabPath is the persistent mount table location.
	FstabPath string `mapstructure:"fstab_path"`
	// ScratchDir is the temporary mount point for btrfs post-processing.
	ScratchDir string `mapstructure:"scratch_dir"`
	// SettleDelay is the pause after each destructive device operation.
	SettleDelay time.Duration `mapstructure:"settle_delay"`
	// Locale selects the message catalog.
	Locale string `mapstructure:"locale"`
}

func Default() *Config {
	return &Config{
		MountPoint:  "/home",
		ArrayDevice: "/dev/md0",
		Filesystem:  "ext4",
		Label:       "mediaease",
		FstabPath:   "/etc/fstab",
		ScratchDir:  "/mnt/raidsetup-scratch",
		SettleDelay: 5 * time.Second,
		Locale:      "en",
	}
}

// Load reads the configuration. A missing file at the default location is
// fine; an explicitly requested file must exist.
func Load(fs afero.Fs, path string) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigType("yaml")

	d := Default()
	v.SetDefault("mount_point", d.MountPoint)
	v.SetDefault("array_device", d.ArrayDevice)
	v.SetDefault("filesystem", d.Filesystem)
	v.SetDefault("label", d.Label)
	v.SetDefault("fstab_path", d.FstabPath)
	v.SetDefault("scratch_dir", d.ScratchDir)
	v.SetDefault("settle_delay", d.SettleDelay)
	v.SetDefault("locale", d.Locale)

	v.SetEnvPrefix("RAIDSETUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		// The default location is optional; only an explicitly requested
		// file is required to exist and parse.
		if explicit {
			return nil, fmt.Errorf("unable to read config %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config %q: %w", path, err)
	}
	return &cfg, nil
}
