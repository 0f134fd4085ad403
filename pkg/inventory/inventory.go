// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

// Package inventory enumerates block devices and computes the set of unused
// disks eligible for a new array.
package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mediaease/raidsetup/pkg/i18n"
	"github.com/mediaease/raidsetup/pkg/internal/shelltool"
	"github.com/mediaease/raidsetup/pkg/os"
	"go.uber.org/zap"
)

const lsblkColumns = "NAME,KNAME,PATH,TYPE,SIZE,MODEL,TRAN,MOUNTPOINT"

// BlockDevice is one physical disk as reported by the block device listing.
type BlockDevice struct {
	Name       string
	Path       string
	Model      string
	Transport  string
	Size       uint64
	SystemDisk bool
}

// CandidateSet is the ordered list of disks eligible for formatting. It is
// computed once and treated as read-only by every later stage.
type CandidateSet struct {
	Disks []BlockDevice
}

func (c CandidateSet) Count() int {
	return len(c.Disks)
}

func (c CandidateSet) Paths() []string {
	paths := make([]string, 0, len(c.Disks))
	for _, d := range c.Disks {
		paths = append(paths, d.Path)
	}
	return paths
}

func (c CandidateSet) Names() []string {
	names := make([]string, 0, len(c.Disks))
	for _, d := range c.Disks {
		names = append(names, d.Name)
	}
	return names
}

// Inventory detects block devices through lsblk.
type Inventory struct {
	proc os.Proc
}

func New(proc os.Proc) *Inventory {
	return &Inventory{proc: proc}
}

// lsblkDevice mirrors one node of lsblk's JSON device tree.
type lsblkDevice struct {
	Name       string        `json:"name"`
	Kname      string        `json:"kname"`
	Path       string        `json:"path"`
	Type       string        `json:"type"`
	Size       byteSize      `json:"size"`
	Model      string        `json:"model"`
	Tran       string        `json:"tran"`
	MountPoint string        `json:"mountpoint"`
	Children   []lsblkDevice `json:"children,omitempty"`
}

type lsblkOutput struct {
	Blockdevices []lsblkDevice `json:"blockdevices"`
}

// byteSize tolerates both the numeric size emitted by recent util-linux and
// the quoted size of older releases.
type byteSize uint64

func (b *byteSize) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*b = 0
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	*b = byteSize(n)
	return nil
}

// Detect returns the candidate set: every device of type "disk" that does not
// host, directly or through a software RAID chain, the root filesystem.
// Enumeration order is lsblk's reporting order. An empty set is not an error
// at this stage.
func (i *Inventory) Detect(ctx context.Context) (CandidateSet, error) {
	disks, err := i.List(ctx)
	if err != nil {
		return CandidateSet{}, err
	}
	var candidates []BlockDevice
	for _, d := range disks {
		if !d.SystemDisk {
			candidates = append(candidates, d)
		}
	}
	return CandidateSet{Disks: candidates}, nil
}

// List returns every disk on the system with its system-disk flag resolved.
// A disk is a system disk if the root filesystem is mounted anywhere in its
// device subtree; when root sits on an md array, the array node appears
// beneath each member partition, so every member disk is flagged.
func (i *Inventory) List(ctx context.Context) ([]BlockDevice, error) {
	cmd, err := shelltool.Lsblk().JSON().Bytes().Output(lsblkColumns).Build(ctx)
	if err != nil {
		return nil, err
	}
	lines, err := i.proc.RunLogged(cmd)
	if err != nil {
		return nil, fmt.Errorf("unable to enumerate block devices: %w", err)
	}

	var output lsblkOutput
	if err := json.Unmarshal([]byte(strings.Join(lines, "\n")), &output); err != nil {
		return nil, fmt.Errorf("unable to parse lsblk output: %w", err)
	}

	var disks []BlockDevice
	for _, dev := range output.Blockdevices {
		if dev.Type != "disk" {
			continue
		}
		path := dev.Path
		if path == "" {
			path = "/dev/" + dev.Name
		}
		system := hasRootMount(dev)
		if system {
			zap.L().Sugar().Debugf(i18n.T("inventory.system_disk", path))
		}
		disks = append(disks, BlockDevice{
			Name:       dev.Name,
			Path:       path,
			Model:      strings.TrimSpace(dev.Model),
			Transport:  dev.Tran,
			Size:       uint64(dev.Size),
			SystemDisk: system,
		})
	}
	return disks, nil
}

func hasRootMount(dev lsblkDevice) bool {
	if dev.MountPoint == "/" {
		return true
	}
	for _, child := range dev.Children {
		if hasRootMount(child) {
			return true
		}
	}
	return false
}
