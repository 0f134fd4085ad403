// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

package shelltool

type btrfsSubvolumeCreate struct {
	shelltool
}

// BtrfsSubvolumeCreate creates a subvolume at path inside a mounted btrfs
// filesystem.
func BtrfsSubvolumeCreate(path string) *btrfsSubvolumeCreate {
	b := new(btrfsSubvolumeCreate)
	b.command = "/usr/sbin/btrfs"
	b.options = append(b.options, "subvolume", "create")
	b.arguments = append(b.arguments, path)

	return b
}
