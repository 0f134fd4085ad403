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

func TestParted(t *testing.T) {
	cmd, err := Parted("/dev/sdb").
		MakeLabel("msdos").
		MakePartition("primary", "ext4", "0%", "100%").
		Build(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "/usr/sbin/parted --script /dev/sdb mklabel msdos mkpart primary ext4 0% 100%", cmd.String())
}

func TestWipeFS(t *testing.T) {
	cmd, err := WipeFS("/dev/sdb").All().Force().Build(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "/usr/sbin/wipefs --all --force /dev/sdb", cmd.String())
}
