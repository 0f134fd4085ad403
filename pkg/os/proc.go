// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

// Package os runs external provisioning tools and captures their output.
package os

import (
	"bytes"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// Proc executes a prepared command, returning the captured stdout split into
// lines. Implementations log the full command line and its outcome so every
// destructive step of the pipeline leaves a trace.
type Proc interface {
	RunLogged(cmd *exec.Cmd) ([]string, error)
}

func NewProc() Proc {
	return &proc{}
}

type proc struct{}

func (*proc) RunLogged(cmd *exec.Cmd) ([]string, error) {
	zap.L().Sugar().Debugf("running %q", cmd.String())

	// Commands built by shelltool set Pdeathsig on the spawned process,
	// which requires the caller to stay on one OS thread.
	// See https://github.com/golang/go/issues/27505.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	var out bytes.Buffer
	var errout bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errout
	if err := cmd.Run(); err != nil {
		zap.L().Sugar().Debugf("%q failed: %v: %s", cmd.String(), err, errout.String())
		return nil, fmt.Errorf("%q: %v: %s", cmd.String(), err, strings.TrimSpace(errout.String()))
	}
	zap.L().Sugar().Debugf("%q succeeded", cmd.String())
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n"), nil
}
