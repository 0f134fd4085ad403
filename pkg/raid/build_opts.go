// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

package raid

import "time"

// BuildOpt implements functional options for [NewBuilder] as described in
// https://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis
type BuildOpt func(*buildOpts)

type buildOpts struct {
	label      string
	scratchDir string
	settle     time.Duration
}

// Label sets the volume label stamped on the created filesystem. Defaults to
// "mediaease".
func Label(l string) BuildOpt {
	return func(o *buildOpts) {
		o.label = l
	}
}

// ScratchDir sets the temporary mount point used for btrfs post-processing.
// Defaults to /mnt/raidsetup-scratch.
func ScratchDir(dir string) BuildOpt {
	return func(o *buildOpts) {
		o.scratchDir = dir
	}
}

// SettleDelay sets the pause after array assembly, giving the kernel and udev
// time to publish the new device. Defaults to 5s.
func SettleDelay(d time.Duration) BuildOpt {
	return func(o *buildOpts) {
		o.settle = d
	}
}
