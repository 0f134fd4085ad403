// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

// Package out contains helpers to write to stdout / stderr, to prompt the
// operator, and to exit the process.
package out

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
)

// Prompter is the interactive surface of the provisioning pipeline. The
// pipeline never blocks on a terminal directly; tests substitute a scripted
// implementation.
type Prompter interface {
	// Pick prompts the user to pick one of many options, returning the
	// selected option or an error.
	Pick(options []string, msg string, args ...interface{}) (string, error)
	// Confirm asks a yes/no question with the given default answer.
	Confirm(def bool, msg string, args ...interface{}) (bool, error)
}

// NewPrompter returns a Prompter backed by terminal prompts.
func NewPrompter() Prompter {
	return &terminalPrompter{}
}

type terminalPrompter struct{}

func (*terminalPrompter) Pick(options []string, msg string, args ...interface{}) (string, error) {
	var selected int
	err := survey.AskOne(&survey.Select{
		Message: fmt.Sprintf(msg, args...),
		Options: options,
	}, &selected)
	if err != nil {
		return "", err
	}
	return options[selected], nil
}

func (*terminalPrompter) Confirm(def bool, msg string, args ...interface{}) (bool, error) {
	answer := def
	err := survey.AskOne(&survey.Confirm{
		Message: fmt.Sprintf(msg, args...),
		Default: def,
	}, &answer)
	if err != nil {
		return false, err
	}
	return answer, nil
}

// Die formats the message with a suffixed newline to stderr and exits the
// process with 1.
func Die(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
	os.Exit(1)
}

// MaybeDie calls Die if err is non-nil.
func MaybeDie(err error, msg string, args ...interface{}) {
	if err != nil {
		Die(msg, args...)
	}
}

// MaybeDieErr calls Die if err is non-nil, with just the err as the message.
func MaybeDieErr(err error) {
	if err != nil {
		Die("%v", err)
	}
}

// Info, Warn and Error print leveled, colored operator messages. Coloring is
// disabled globally when stdout is not a terminal (see the root command).
func Info(msg string, args ...interface{}) {
	fmt.Printf(msg+"\n", args...)
}

func Warn(msg string, args ...interface{}) {
	fmt.Printf("%s: %s\n", color.YellowString("WARNING"), fmt.Sprintf(msg, args...))
}

func Error(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", color.RedString("ERROR"), fmt.Sprintf(msg, args...))
}
