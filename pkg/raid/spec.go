// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

// Package raid destructively formats member disks, assembles the md array and
// creates the target filesystem on top of it.
package raid

import (
	"errors"
	"strings"

	"github.com/mediaease/raidsetup/pkg/plan"
)

var (
	// ErrFormat marks a failure while wiping or partitioning a member disk.
	ErrFormat = errors.New("format failure")
	// ErrBuild marks a failure while assembling the array or creating the
	// filesystem.
	ErrBuild = errors.New("build failure")
)

// ArraySpec describes the array to assemble: the md device node, the final
// level, and the ordered member partitions produced by the formatter.
type ArraySpec struct {
	Device  string
	Level   plan.Level
	Members []string
}

func (s ArraySpec) MemberCount() int {
	return len(s.Members)
}

// PartitionPath returns the device node of the first partition on a disk.
// Disks whose kernel name ends in a digit (nvme0n1, mmcblk0) get a "p"
// separator.
func PartitionPath(disk string) string {
	if disk == "" {
		return ""
	}
	last := disk[len(disk)-1]
	if last >= '0' && last <= '9' {
		return disk + "p1"
	}
	return disk + "1"
}

// SubvolumeName derives the btrfs subvolume name from the final mount point:
// "root" for /, the last path element otherwise, "data" when the mount point
// yields no usable name.
func SubvolumeName(mountPoint string) string {
	cleaned := strings.TrimRight(mountPoint, "/")
	if cleaned == "" {
		return "root"
	}
	base := cleaned[strings.LastIndex(cleaned, "/")+1:]
	if base == "" || base == "." {
		return "data"
	}
	return base
}
