// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

package shelltool

type udevadmSettle struct {
	shelltool
}

// UdevadmSettle waits for the udev event queue to drain, so freshly written
// partition tables are visible before the next device is touched.
func UdevadmSettle() *udevadmSettle {
	u := new(udevadmSettle)

	u.command = "/usr/bin/udevadm"
	u.arguments = append(u.arguments, "settle")

	return u
}
