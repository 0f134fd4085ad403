// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

package main

import (
	"github.com/mediaease/raidsetup/pkg/cli/cmd"
)

func main() {
	cmd.Execute()
}
