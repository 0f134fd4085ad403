// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

package raid

import (
	"context"
	"fmt"
	"time"

	"github.com/mediaease/raidsetup/pkg/i18n"
	"github.com/mediaease/raidsetup/pkg/internal/shelltool"
	"github.com/mediaease/raidsetup/pkg/inventory"
	"github.com/mediaease/raidsetup/pkg/os"
	"github.com/mediaease/raidsetup/pkg/plan"
	"go.uber.org/zap"
)

// Formatter wipes and partitions candidate disks. Confirmation with the
// operator happens before a Formatter is ever invoked; everything here is
// destructive.
type Formatter struct {
	proc   os.Proc
	settle time.Duration
	sleep  func(time.Duration)
}

func NewFormatter(proc os.Proc, settle time.Duration) *Formatter {
	return &Formatter{proc: proc, settle: settle, sleep: time.Sleep}
}

// Format processes every candidate disk in enumeration order: signatures are
// erased, then a single msdos partition table with one primary partition
// spanning the whole disk is written, tagged with the target filesystem. A
// settling pause follows each disk so the kernel re-reads the partition table
// before the next one is touched. The first failing disk aborts the stage.
//
// Returns the member partition paths for the array, in disk order.
func (f *Formatter) Format(ctx context.Context, set inventory.CandidateSet, fsType plan.Filesystem) ([]string, error) {
	partitions := make([]string, 0, set.Count())
	for _, disk := range set.Disks {
		zap.L().Sugar().Infof(i18n.T("format.disk", disk.Path))
		if err := f.formatDisk(ctx, disk.Path, fsType); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrFormat, disk.Path, err)
		}
		partitions = append(partitions, PartitionPath(disk.Path))
	}
	return partitions, nil
}

func (f *Formatter) formatDisk(ctx context.Context, device string, fsType plan.Filesystem) error {
	wipe, err := shelltool.WipeFS(device).All().Force().Build(ctx)
	if err != nil {
		return err
	}
	if _, err := f.proc.RunLogged(wipe); err != nil {
		return err
	}

	part, err := shelltool.Parted(device).
		MakeLabel("msdos").
		MakePartition("primary", fsType.PartitionType(), "0%", "100%").
		Build(ctx)
	if err != nil {
		return err
	}
	if _, err := f.proc.RunLogged(part); err != nil {
		return err
	}

	return f.settleDown(ctx)
}

// settleDown waits for udev to process the partition table change, then
// pauses for the configured settling delay.
func (f *Formatter) settleDown(ctx context.Context) error {
	settle, err := shelltool.UdevadmSettle().Build(ctx)
	if err != nil {
		return err
	}
	if _, err := f.proc.RunLogged(settle); err != nil {
		return err
	}
	f.sleep(f.settle)
	return nil
}
