// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

// Package cmd assembles the raidsetup command tree.
package cmd

import (
	stdos "os"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

func Execute() {
	var (
		verbose bool
		cfgFile string
	)
	fs := afero.NewOsFs()

	if !term.IsTerminal(int(stdos.Stdout.Fd())) {
		color.NoColor = true
	}

	cobra.OnInitialize(func() {
		level := zapcore.InfoLevel
		if verbose {
			level = zapcore.DebugLevel
		}
		logCfg := zap.NewDevelopmentConfig()
		logCfg.Level = zap.NewAtomicLevelAt(level)
		logCfg.OutputPaths = []string{"stderr"}
		logger, err := logCfg.Build()
		if err == nil {
			zap.ReplaceGlobals(logger)
		}
	})

	root := &cobra.Command{
		Use:   "raidsetup",
		Short: "raidsetup turns unused disks into a mounted RAID volume",
		Long: `raidsetup provisions software RAID storage for MediaEase servers:
it enumerates unused disks, assembles an mdadm array at the requested level,
creates the target filesystem and registers it in /etc/fstab.`,
	}
	root.SilenceUsage = true
	root.PersistentFlags().BoolVarP(&verbose, "verbose",
		"v", false, "enable verbose logging (default false)")
	root.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is "+defaultConfigHint+")")

	root.AddCommand(NewProvisionCommand(fs, &cfgFile))
	root.AddCommand(NewInventoryCommand(fs, &cfgFile))
	root.AddCommand(NewVersionCommand())

	if err := root.Execute(); err != nil {
		stdos.Exit(1)
	}
}

const defaultConfigHint = "/etc/raidsetup/raidsetup.yaml"
