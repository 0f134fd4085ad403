// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

package shelltool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeExt4(t *testing.T) {
	cmd, err := MakeExt4("/dev/md0").Force().Label("mediaease").Build(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "/usr/sbin/mkfs.ext4 -F -L mediaease /dev/md0", cmd.String())
}

func TestMakeXFS(t *testing.T) {
	cmd, err := MakeXFS("/dev/md0").Force().Label("mediaease").Build(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "/usr/sbin/mkfs.xfs -f -L mediaease /dev/md0", cmd.String())
}

func TestMakeBtrfs(t *testing.T) {
	cmd, err := MakeBtrfs("/dev/md0").
		Force().
		Label("mediaease").
		DataProfile("raid6").
		MetadataProfile("raid1c3").
		Build(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "/usr/sbin/mkfs.btrfs --force --label mediaease --data raid6 --metadata raid1c3 /dev/md0", cmd.String())
}

func TestBtrfsSubvolumeCreate(t *testing.T) {
	cmd, err := BtrfsSubvolumeCreate("/mnt/scratch/home").Build(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "/usr/sbin/btrfs subvolume create /mnt/scratch/home", cmd.String())
}
