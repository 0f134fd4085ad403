// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

package shelltool

type makeExt4 struct {
	shelltool
}

// MakeExt4 formats a device with ext4.
func MakeExt4(device string) *makeExt4 {
	m := new(makeExt4)
	m.command = "/usr/sbin/mkfs.ext4"
	m.arguments = append(m.arguments, device)

	return m
}

// Force overwrites an existing filesystem without prompting.
func (m *makeExt4) Force() *makeExt4 {
	m.options = append(m.options, "-F")
	return m
}

// Label sets the volume label.
func (m *makeExt4) Label(l string) *makeExt4 {
	m.options = append(m.options, "-L", l)
	return m
}

type makeXFS struct {
	shelltool
}

// MakeXFS formats a device with XFS.
func MakeXFS(device string) *makeXFS {
	m := new(makeXFS)
	m.command = "/usr/sbin/mkfs.xfs"
	m.arguments = append(m.arguments, device)

	return m
}

// Force overwrites an existing filesystem without prompting.
func (m *makeXFS) Force() *makeXFS {
	m.options = append(m.options, "-f")
	return m
}

// Label sets the volume label.
func (m *makeXFS) Label(l string) *makeXFS {
	m.options = append(m.options, "-L", l)
	return m
}

type makeBtrfs struct {
	shelltool
}

// MakeBtrfs formats a device with btrfs.
func MakeBtrfs(device string) *makeBtrfs {
	m := new(makeBtrfs)
	m.command = "/usr/sbin/mkfs.btrfs"
	m.arguments = append(m.arguments, device)

	return m
}

// Force overwrites an existing filesystem without prompting.
func (m *makeBtrfs) Force() *makeBtrfs {
	m.options = append(m.options, "--force")
	return m
}

// Label sets the volume label.
func (m *makeBtrfs) Label(l string) *makeBtrfs {
	m.options = append(m.options, "--label", l)
	return m
}

// DataProfile sets the profile for data block groups.
func (m *makeBtrfs) DataProfile(p string) *makeBtrfs {
	m.options = append(m.options, "--data", p)
	return m
}

// MetadataProfile sets the profile for metadata block groups.
func (m *makeBtrfs) MetadataProfile(p string) *makeBtrfs {
	m.options = append(m.options, "--metadata", p)
	return m
}
