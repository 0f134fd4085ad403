// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

package shelltool

type wipeFS struct {
	shelltool
}

// WipeFS removes filesystem and RAID signatures from a disk device.
func WipeFS(device string) *wipeFS {
	w := new(wipeFS)
	w.command = "/usr/sbin/wipefs"
	w.arguments = append(w.arguments, device)

	return w
}

// All deletes ALL filesystem signatures found.
func (w *wipeFS) All() *wipeFS {
	w.options = append(w.options, "--all")
	return w
}

// Force wipes even when the device appears in use.
func (w *wipeFS) Force() *wipeFS {
	w.options = append(w.options, "--force")
	return w
}
