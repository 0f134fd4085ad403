// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

// list taken from https://github.com/golang/go/blob/91ef076562dfcf783074dbd84ad7c6db60fdd481/src/go/build/syslist.go#L38-L51
//go:build aix || darwin || dragonfly || freebsd || hurd || illumos || ios || netbsd || openbsd || solaris

package shelltool

import "golang.org/x/sys/unix"

var defaultSysProcAttr = &unix.SysProcAttr{}
