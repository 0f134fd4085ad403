// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

package shelltool

type blkid struct {
	shelltool
}

// BlockID reads block device attributes such as the filesystem UUID.
func BlockID(device string) *blkid {
	b := new(blkid)
	b.command = "/usr/sbin/blkid"
	b.arguments = append(b.arguments, device)

	return b
}

func (b *blkid) MatchTag(tag string) *blkid {
	b.options = append(b.options, "--match-tag", tag)
	return b
}

func (b *blkid) OutputFormat(format string) *blkid {
	b.options = append(b.options, "--output", format)
	return b
}
