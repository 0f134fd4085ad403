// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

package shelltool

type systemctl struct {
	shelltool
	isSubCommandSet bool
}

func SystemCTL() *systemctl {
	s := new(systemctl)
	s.command = "/usr/bin/systemctl"

	return s
}

// DaemonReload reloads systemd manager configuration. This will rerun all
// generators (see systemd.generator(7)), which regenerates the mount units
// derived from fstab.
func (s *systemctl) DaemonReload() *systemctl {
	if s.isSubCommandSet {
		return s
	}
	s.isSubCommandSet = true
	s.arguments = append(s.arguments, "daemon-reload")
	return s
}
