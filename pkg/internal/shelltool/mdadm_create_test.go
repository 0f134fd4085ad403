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

func TestMdadmCreate(t *testing.T) {
	cmd, err := MdadmCreate("/dev/md0").
		Verbose().
		Force().
		Run().
		Level("10").
		DeviceNumber(4).
		Devices("/dev/sdb1", "/dev/sdc1", "/dev/sdd1", "/dev/sde1").
		Build(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "/usr/sbin/mdadm --create /dev/md0 --verbose --force --run --level 10 --raid-devices 4 /dev/sdb1 /dev/sdc1 /dev/sdd1 /dev/sde1", cmd.String())
}
