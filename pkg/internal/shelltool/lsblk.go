// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

package shelltool

type lsblk struct {
	shelltool
}

// Lsblk enumerates block devices.
func Lsblk() *lsblk {
	l := new(lsblk)
	l.command = "/usr/bin/lsblk"

	return l
}

// JSON selects JSON output.
func (l *lsblk) JSON() *lsblk {
	l.options = append(l.options, "--json")
	return l
}

// Bytes prints sizes in bytes rather than human readable form.
func (l *lsblk) Bytes() *lsblk {
	l.options = append(l.options, "--bytes")
	return l
}

// Output restricts the columns printed.
func (l *lsblk) Output(columns string) *lsblk {
	l.options = append(l.options, "--output", columns)
	return l
}
