// Copyright (C) 2025 MapleRisk Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package wizard implements the multi-step profile assembly state machine.
// Transitions are strictly linear, every forward transition is
// validate-then-merge, persistence is the caller's job.
package wizard

import (
	"errors"
	"fmt"

	"github.com/maplerisk/maplerisk/dtos"
	"github.com/maplerisk/maplerisk/utils"
)

type Step string

const (
	StepBusinessProfile Step = "business_profile"
	StepAITools         Step = "ai_tools"
	StepDataTypes       Step = "data_types"
	StepUsagePatterns   Step = "usage_patterns"
	StepSafeguards      Step = "safeguards"
	StepSubmitted       Step = "submitted"
)

var stepOrder = []Step{
	StepBusinessProfile,
	StepAITools,
	StepDataTypes,
	StepUsagePatterns,
	StepSafeguards,
	StepSubmitted,
}

var (
	ErrAlreadySubmitted = errors.New("session is already submitted")
	ErrAtFirstStep      = errors.New("cannot go back from the first step")
	ErrUnknownStep      = errors.New("unknown wizard step")
	ErrNotAtFinalStep   = errors.New("submit is only allowed from the safeguards step")
	ErrIncompleteAnswer = errors.New("step answer incomplete")
)

func First() Step {
	return stepOrder[0]
}

func Valid(step Step) bool {
	return utils.Contains(stepOrder, step)
}

func next(step Step) (Step, error) {
	for i, s := range stepOrder {
		if s != step {
			continue
		}
		if s == StepSubmitted {
			return step, ErrAlreadySubmitted
		}
		return stepOrder[i+1], nil
	}
	return step, ErrUnknownStep
}

func prev(step Step) (Step, error) {
	for i, s := range stepOrder {
		if s != step {
			continue
		}
		if i == 0 {
			return step, ErrAtFirstStep
		}
		if s == StepSubmitted {
			return step, ErrAlreadySubmitted
		}
		return stepOrder[i-1], nil
	}
	return step, ErrUnknownStep
}

// Advance merges the step's answer into the stored partial profile, validates
// the merged result for the current step and returns the next step. No
// skipping: only the current step can be answered.
func Advance(current Step, stored dtos.PartialProfile, answer dtos.PartialProfile) (Step, dtos.PartialProfile, error) {
	merged := stored.Merge(answer)
	if err := validateStep(current, merged); err != nil {
		return current, stored, err
	}
	nextStep, err := next(current)
	if err != nil {
		return current, stored, err
	}
	return nextStep, merged, nil
}

// Back preserves the accumulated profile, only the position changes. Partial
// answers for the step being left are merged so a later refresh rehydrates
// them.
func Back(current Step, stored dtos.PartialProfile, answer dtos.PartialProfile) (Step, dtos.PartialProfile, error) {
	prevStep, err := prev(current)
	if err != nil {
		return current, stored, err
	}
	return prevStep, stored.Merge(answer), nil
}

// Submit assembles the complete profile from the terminal step.
func Submit(current Step, stored dtos.PartialProfile, answer dtos.PartialProfile) (dtos.BusinessProfile, error) {
	if current == StepSubmitted {
		return dtos.BusinessProfile{}, ErrAlreadySubmitted
	}
	if current != StepSafeguards {
		return dtos.BusinessProfile{}, ErrNotAtFinalStep
	}
	merged := stored.Merge(answer)
	if missing := merged.MissingFields(); len(missing) > 0 {
		return dtos.BusinessProfile{}, fmt.Errorf("%w, missing: %v", ErrIncompleteAnswer, missing)
	}
	return merged.Assemble(), nil
}

// validateStep checks only what the given step is responsible for. Later
// steps tolerate empty answers, an empty selection is a valid answer.
func validateStep(step Step, profile dtos.PartialProfile) error {
	switch step {
	case StepBusinessProfile:
		if utils.SafeDereference(profile.BusinessName) == "" {
			return fmt.Errorf("%w: business_name is required", ErrIncompleteAnswer)
		}
		if utils.SafeDereference(profile.IndustryID) == "" {
			return fmt.Errorf("%w: industry_id is required", ErrIncompleteAnswer)
		}
		if utils.SafeDereference(profile.ProvinceCode) == "" {
			return fmt.Errorf("%w: province_code is required", ErrIncompleteAnswer)
		}
		return nil
	case StepAITools, StepDataTypes, StepUsagePatterns, StepSafeguards:
		return nil
	case StepSubmitted:
		return ErrAlreadySubmitted
	default:
		return ErrUnknownStep
	}
}
