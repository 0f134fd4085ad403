// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

package os

import (
	"os/exec"
	"strings"
)

// FakeProc is a Proc for tests. It records every command line it receives and
// serves scripted responses, matched by substring in registration order.
type FakeProc struct {
	Commands  []string
	Responses []FakeResponse
}

type FakeResponse struct {
	Match string
	Lines []string
	Err   error
}

func (f *FakeProc) RunLogged(cmd *exec.Cmd) ([]string, error) {
	s := cmd.String()
	f.Commands = append(f.Commands, s)
	for _, r := range f.Responses {
		if strings.Contains(s, r.Match) {
			return r.Lines, r.Err
		}
	}
	return nil, nil
}

// Ran reports whether any recorded command line contains the substring.
func (f *FakeProc) Ran(substring string) bool {
	for _, c := range f.Commands {
		if strings.Contains(c, substring) {
			return true
		}
	}
	return false
}
