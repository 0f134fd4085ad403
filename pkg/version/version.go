// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

// Package version holds build metadata injected at link time.
package version

var (
	version   = "dev"
	gitCommit = ""
	buildDate = ""
)

func Version() string {
	return version
}

func GitCommit() string {
	return gitCommit
}

func BuildDate() string {
	return buildDate
}
