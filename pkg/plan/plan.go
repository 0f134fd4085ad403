// Copyright 2024 MediaEase
//
// Use of this software is governed by the MIT License
// included in the file LICENSE

package plan

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/mediaease/raidsetup/pkg/i18n"
	"github.com/mediaease/raidsetup/pkg/out"
)

var (
	ErrInvalidRaidLevel      = errors.New("invalid raid level")
	ErrInvalidFilesystemType = errors.New("invalid filesystem type")
	ErrInsufficientDisks     = errors.New("insufficient disks")
)

// Plan is the finalized provisioning decision: either the requested level, or
// the alternative the operator picked when the disk count fell short.
type Plan struct {
	Level      Level
	Filesystem Filesystem
}

// New validates the requested level and filesystem and resolves the final
// plan against the candidate disk count. Both inputs are validated regardless
// of the disk situation; their failures are reported together. When the count
// cannot satisfy the requested level, the operator picks one of the feasible
// alternatives; an empty feasible set is fatal. No prompt is shown when the
// request is satisfiable as-is.
func New(levelArg, fsArg string, candidates int, prompter out.Prompter) (Plan, error) {
	var errs *multierror.Error
	level, err := ParseLevel(levelArg)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	fs, err := ParseFilesystem(fsArg)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return Plan{}, err
	}

	if candidates >= level.MinDisks() {
		return Plan{Level: level, Filesystem: fs}, nil
	}

	alts := Alternatives(candidates)
	if len(alts) == 0 {
		return Plan{}, fmt.Errorf("%w: %s", ErrInsufficientDisks,
			i18n.T("plan.insufficient_disks", candidates, level, level.MinDisks()))
	}

	options := make([]string, 0, len(alts))
	byOption := make(map[string]Level, len(alts))
	for _, alt := range alts {
		opt := fmt.Sprintf("RAID %s (%d+ disks)", alt, alt.MinDisks())
		options = append(options, opt)
		byOption[opt] = alt
	}
	picked, err := prompter.Pick(options,
		i18n.T("plan.pick_alternative", level, level.MinDisks(), candidates))
	if err != nil {
		return Plan{}, err
	}
	return Plan{Level: byOption[picked], Filesystem: fs}, nil
}

// Alternatives computes the RAID levels feasible with the given disk count.
// The rules are evaluated independently; a count can satisfy several levels.
// RAID 10 additionally requires an even member count.
func Alternatives(candidates int) []Level {
	var feasible []Level
	for _, l := range Levels {
		switch l {
		case Level10:
			if candidates >= 4 && candidates%2 == 0 {
				feasible = append(feasible, l)
			}
		default:
			if candidates >= l.MinDisks() {
				feasible = append(feasible, l)
			}
		}
	}
	return feasible
}
