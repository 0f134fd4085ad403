// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

//go:build linux

package shelltool

import "golang.org/x/sys/unix"

// In case there are commands spawning subcommands, we need to signal them
// to gracefully terminate when the parent command is terminated or killed.
var defaultSysProcAttr = &unix.SysProcAttr{
	// SIGTERM children if parent thread is dead. Requires locking
	// goroutine execution to the underlying OS thread using
	// [runtime.LockOSThread].
	Pdeathsig: unix.SIGTERM,
	// set process group ID
	Setpgid: true,
}
