// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

package cmd

import (
	"github.com/mediaease/raidsetup/pkg/config"
	"github.com/mediaease/raidsetup/pkg/i18n"
	"github.com/mediaease/raidsetup/pkg/os"
	"github.com/mediaease/raidsetup/pkg/out"
	"github.com/mediaease/raidsetup/pkg/provision"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func NewProvisionCommand(fs afero.Fs, cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "provision <level> [mountPoint] [fsType] [device]",
		Short: "Create and mount a RAID array from all unused disks",
		Long: `Create and mount a RAID array from all unused disks.

The level is one of 0, 5, 6, 10. The mount point defaults to /home, the
filesystem to ext4 (ext4, btrfs and xfs are supported) and the array device
to /dev/md0; the defaults can be changed in the configuration file.

The pipeline is destructive: every disk not hosting the root filesystem is
wiped after one confirmation prompt. When fewer disks are available than the
level needs, a feasible alternative can be picked interactively.

Runs are not serialized against each other; do not start two at once.`,
		Args: cobra.RangeArgs(1, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(fs, *cfgFile)
			if err != nil {
				return err
			}
			if err := i18n.SetLocale(cfg.Locale); err != nil {
				return err
			}

			req := provision.Request{
				Level:      args[0],
				MountPoint: cfg.MountPoint,
				Filesystem: cfg.Filesystem,
				Device:     cfg.ArrayDevice,
			}
			if len(args) > 1 {
				req.MountPoint = args[1]
			}
			if len(args) > 2 {
				req.Filesystem = args[2]
			}
			if len(args) > 3 {
				req.Device = args[3]
			}

			p := provision.New(fs, os.NewProc(), out.NewPrompter(), cfg)
			_, err = p.Run(cmd.Context(), req)
			return err
		},
	}
}
