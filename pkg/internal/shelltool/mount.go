// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

package shelltool

type mount struct {
	shelltool
}

// Mount mounts a device at target.
func Mount(device, target string) *mount {
	m := new(mount)
	m.command = "/usr/bin/mount"
	m.arguments = append(m.arguments, device, target)

	return m
}

// MountAll mounts every not-yet-mounted filesystem listed in fstab.
func MountAll() *mount {
	m := new(mount)
	m.command = "/usr/bin/mount"
	m.options = append(m.options, "--all")

	return m
}

type umount struct {
	shelltool
}

// Umount unmounts the filesystem mounted at target.
func Umount(target string) *umount {
	u := new(umount)
	u.command = "/usr/bin/umount"
	u.arguments = append(u.arguments, target)

	return u
}
