// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

package out

import "fmt"

// FakePrompter is a Prompter for tests: Pick returns the option at
// PickIndex, Confirm returns Answer. Every prompt shown is recorded.
type FakePrompter struct {
	PickIndex int
	Answer    bool

	Picks    [][]string
	Confirms []string
}

func (f *FakePrompter) Pick(options []string, msg string, args ...interface{}) (string, error) {
	f.Picks = append(f.Picks, options)
	if f.PickIndex < 0 || f.PickIndex >= len(options) {
		return "", fmt.Errorf("scripted pick index %d out of range (%d options)", f.PickIndex, len(options))
	}
	return options[f.PickIndex], nil
}

func (f *FakePrompter) Confirm(def bool, msg string, args ...interface{}) (bool, error) {
	f.Confirms = append(f.Confirms, fmt.Sprintf(msg, args...))
	return f.Answer, nil
}
