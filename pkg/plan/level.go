// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

// Package plan validates a provisioning request and finalizes the RAID level
// and filesystem, replanning interactively when the disk count falls short.
package plan

import (
	"fmt"
	"strconv"

	"github.com/mediaease/raidsetup/pkg/i18n"
)

// Level is a software RAID level supported by the pipeline.
type Level int

const (
	Level0  Level = 0
	Level5  Level = 5
	Level6  Level = 6
	Level10 Level = 10
)

// Levels lists the supported levels, most redundant first. This is also the
// order alternatives are offered in.
var Levels = []Level{Level10, Level6, Level5, Level0}

func (l Level) String() string {
	return strconv.Itoa(int(l))
}

// MinDisks is the smallest member count mdadm accepts for the level.
func (l Level) MinDisks() int {
	switch l {
	case Level0:
		return 2
	case Level5:
		return 3
	case Level6, Level10:
		return 4
	}
	return 0
}

func (l Level) valid() bool {
	switch l {
	case Level0, Level5, Level6, Level10:
		return true
	}
	return false
}

// BtrfsProfiles are the data/metadata profile pair passed to mkfs.btrfs for
// the level. Metadata is kept redundant wherever the level allows it.
type BtrfsProfiles struct {
	Data     string
	Metadata string
}

func (l Level) BtrfsProfiles() BtrfsProfiles {
	switch l {
	case Level5:
		return BtrfsProfiles{Data: "raid5", Metadata: "raid1"}
	case Level6:
		return BtrfsProfiles{Data: "raid6", Metadata: "raid1c3"}
	case Level10:
		return BtrfsProfiles{Data: "raid10", Metadata: "raid1"}
	}
	return BtrfsProfiles{Data: "raid0", Metadata: "dup"}
}

// ParseLevel parses the CLI's positional level argument.
func ParseLevel(s string) (Level, error) {
	n, err := strconv.Atoi(s)
	if err != nil || !Level(n).valid() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidRaidLevel, i18n.T("plan.invalid_level", s))
	}
	return Level(n), nil
}

// Filesystem is the target filesystem created on top of the array.
type Filesystem string

const (
	Ext4  Filesystem = "ext4"
	Btrfs Filesystem = "btrfs"
	XFS   Filesystem = "xfs"
)

// Filesystems lists the supported filesystem types.
var Filesystems = []Filesystem{Ext4, Btrfs, XFS}

func (f Filesystem) String() string {
	return string(f)
}

func (f Filesystem) valid() bool {
	switch f {
	case Ext4, Btrfs, XFS:
		return true
	}
	return false
}

// PartitionType is the filesystem tag stamped on the primary partition by
// parted.
func (f Filesystem) PartitionType() string {
	return string(f)
}

// MountOptions renders the fstab options string for the filesystem. subvol is
// only meaningful for btrfs and names the subvolume mounted at the final
// destination.
func (f Filesystem) MountOptions(subvol string) string {
	switch f {
	case Btrfs:
		return "defaults,noatime,compress=zstd,autodefrag,subvol=" + subvol
	case XFS:
		return "defaults,noatime,discard,allocsize=64m"
	}
	return "defaults,noatime,nobarrier,data=writeback"
}

// ParseFilesystem parses the CLI's positional filesystem argument.
func ParseFilesystem(s string) (Filesystem, error) {
	f := Filesystem(s)
	if !f.valid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidFilesystemType, i18n.T("plan.invalid_filesystem", s))
	}
	return f, nil
}
