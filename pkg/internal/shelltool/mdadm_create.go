// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

package shelltool

import (
	"fmt"
)

type mdadmCreate struct {
	shelltool
}

// MdadmCreate assembles and creates Linux md devices (aka RAID arrays).
func MdadmCreate(device string) *mdadmCreate {
	m := new(mdadmCreate)
	m.command = "/usr/sbin/mdadm"
	m.options = append(m.options, "--create", device)

	return m
}

// Verbose increases output logging.
func (m *mdadmCreate) Verbose() *mdadmCreate {
	m.options = append(m.options, "--verbose")
	return m
}

// Force honours devices as given through [Devices].
func (m *mdadmCreate) Force() *mdadmCreate {
	m.options = append(m.options, "--force")
	return m
}

// Run insists on running the array even if not all devices are present or
// some look odd, suppressing mdadm's own "are you sure" prompt.
func (m *mdadmCreate) Run() *mdadmCreate {
	m.options = append(m.options, "--run")
	return m
}

// Level is the RAID level: 0,1,4,5,6,10,linear,multipath and synonyms.
func (m *mdadmCreate) Level(l string) *mdadmCreate {
	m.options = append(m.options, "--level", l)
	return m
}

// DeviceNumber is the number of active devices in array.
func (m *mdadmCreate) DeviceNumber(n int) *mdadmCreate {
	m.options = append(m.options, "--raid-devices", fmt.Sprintf("%d", n))
	return m
}

func (m *mdadmCreate) Devices(d ...string) *mdadmCreate {
	m.arguments = append(m.arguments, d...)
	return m
}
