// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

package raid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionPath(t *testing.T) {
	assert.Equal(t, "/dev/sdb1", PartitionPath("/dev/sdb"))
	assert.Equal(t, "/dev/nvme0n1p1", PartitionPath("/dev/nvme0n1"))
	assert.Equal(t, "/dev/mmcblk0p1", PartitionPath("/dev/mmcblk0"))
	assert.Equal(t, "", PartitionPath(""))
}

func TestSubvolumeName(t *testing.T) {
	assert.Equal(t, "home", SubvolumeName("/home"))
	assert.Equal(t, "root", SubvolumeName("/"))
	assert.Equal(t, "media", SubvolumeName("/mnt/media"))
	assert.Equal(t, "srv", SubvolumeName("/srv/"))
	assert.Equal(t, "root", SubvolumeName(""))
}
