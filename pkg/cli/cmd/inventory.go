// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

package cmd

import (
	stdos "os"

	"github.com/dustin/go-humanize"
	"github.com/mediaease/raidsetup/pkg/cli/ui"
	"github.com/mediaease/raidsetup/pkg/config"
	"github.com/mediaease/raidsetup/pkg/i18n"
	"github.com/mediaease/raidsetup/pkg/inventory"
	"github.com/mediaease/raidsetup/pkg/os"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func NewInventoryCommand(fs afero.Fs, cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "inventory",
		Short: "List disks and whether they are eligible for a new array",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(fs, *cfgFile)
			if err != nil {
				return err
			}
			if err := i18n.SetLocale(cfg.Locale); err != nil {
				return err
			}

			disks, err := inventory.New(os.NewProc()).List(cmd.Context())
			if err != nil {
				return err
			}

			table := ui.NewTable(stdos.Stdout)
			table.SetHeader([]string{"Device", "Size", "Model", "Transport", "Role"})
			for _, d := range disks {
				role := "candidate"
				if d.SystemDisk {
					role = "system"
				}
				table.Append([]string{
					d.Path,
					humanize.IBytes(d.Size),
					d.Model,
					d.Transport,
					role,
				})
			}
			table.Render()
			return nil
		},
	}
}
