// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

package shelltool

type parted struct {
	shelltool
}

// Parted manipulates disk partition tables.
func Parted(device string) *parted {
	p := new(parted)
	p.command = "/usr/sbin/parted"
	// never prompt; parted must not block an unattended pipeline
	p.options = append(p.options, "--script")
	p.arguments = append(p.arguments, device)

	return p
}

// MakeLabel creates a new partition table of the given type, destroying the
// existing one.
func (p *parted) MakeLabel(label string) *parted {
	p.arguments = append(p.arguments, "mklabel", label)
	return p
}

// MakePartition creates a partition of the given type, tagged with the target
// filesystem, spanning from start to end (parted location syntax, e.g. "0%").
func (p *parted) MakePartition(partType, fsType, start, end string) *parted {
	p.arguments = append(p.arguments, "mkpart", partType, fsType, start, end)
	return p
}
