// Package roadmap owns the fixed job-order lifecycle: the ordered stage list,
// the transition table and the timestamp inference used to render a complete
// timeline for legacy records. Consumers call into this package instead of
// re-deriving stage order from status strings.
package roadmap

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/status"
)

// Stage names, fixed and ordered. Completed and Cancelled are terminal.
const (
	StageNewRequest       = "New Request"
	StageInspection       = "Inspection"
	StageServiceOperation = "Service Operation"
	StageQualityCheck     = "Quality Check"
	StageReady            = "Ready"
	StageCompleted        = "Completed"
	StageCancelled        = "Cancelled"
)

var (
	ErrUnknownStage      = errors.New("unknown roadmap stage")
	ErrInvalidTransition = errors.New("invalid stage transition")
)

// ordered is the canonical non-terminal progression.
var ordered = []string{
	StageNewRequest,
	StageInspection,
	StageServiceOperation,
	StageQualityCheck,
	StageReady,
}

// transitions is the single enum-keyed table every consumer goes through.
// Cancellation from any non-terminal stage is the one allowed shortcut.
var transitions = map[string][]string{
	StageNewRequest:       {StageInspection, StageCancelled},
	StageInspection:       {StageServiceOperation, StageCancelled},
	StageServiceOperation: {StageQualityCheck, StageCancelled},
	StageQualityCheck:     {StageReady, StageServiceOperation, StageCancelled},
	StageReady:            {StageCompleted, StageCancelled},
	StageCompleted:        {},
	StageCancelled:        {},
}

// Stages returns the canonical non-terminal stage order.
func Stages() []string {
	out := make([]string, len(ordered))
	copy(out, ordered)
	return out
}

// Index returns the position of a non-terminal stage, or -1.
func Index(stage string) int {
	for i, s := range ordered {
		if strings.EqualFold(s, stage) {
			return i
		}
	}
	return -1
}

// IsTerminal reports whether a stage ends the lifecycle.
func IsTerminal(stage string) bool {
	return strings.EqualFold(stage, StageCompleted) || strings.EqualFold(stage, StageCancelled)
}

// CanTransition consults the transition table.
func CanTransition(from, to string) bool {
	for _, t := range transitions[canonical(from)] {
		if strings.EqualFold(t, to) {
			return true
		}
	}
	return false
}

func canonical(stage string) string {
	for s := range transitions {
		if strings.EqualFold(s, stage) {
			return s
		}
	}
	return ""
}

// StageForWorkStatus maps a display work status to the stage that is active
// when the order is in that status.
func StageForWorkStatus(workStatus string) string {
	switch strings.ToLower(strings.TrimSpace(workStatus)) {
	case strings.ToLower(status.WorkNewRequest), strings.ToLower(status.WorkDraft):
		return StageNewRequest
	case strings.ToLower(status.WorkInprogress):
		return StageServiceOperation
	case strings.ToLower(status.WorkReady):
		return StageReady
	case strings.ToLower(status.WorkCompleted):
		return StageCompleted
	case strings.ToLower(status.WorkCancelled):
		return StageCancelled
	default:
		return StageServiceOperation
	}
}

// WorkStatusForStage is the inverse: the display work status an order carries
// while the given stage is active.
func WorkStatusForStage(stage string) string {
	switch canonical(stage) {
	case StageNewRequest:
		return status.WorkNewRequest
	case StageInspection, StageServiceOperation, StageQualityCheck:
		return status.WorkInprogress
	case StageReady:
		return status.WorkReady
	case StageCompleted:
		return status.WorkCompleted
	case StageCancelled:
		return status.WorkCancelled
	default:
		return status.WorkInprogress
	}
}

// EnsureSteps returns the step list with every canonical stage present in
// order, preserving any existing timing/actor data. Terminal steps already
// recorded are kept at the tail.
func EnsureSteps(steps []entities.RoadmapStep) []entities.RoadmapStep {
	byStage := make(map[string]entities.RoadmapStep, len(steps))
	for _, s := range steps {
		if c := canonical(s.Stage); c != "" {
			if _, ok := byStage[c]; !ok {
				s.Stage = c
				byStage[c] = s
			}
		}
	}

	out := make([]entities.RoadmapStep, 0, len(ordered)+1)
	for _, stage := range ordered {
		if s, ok := byStage[stage]; ok {
			out = append(out, s)
		} else {
			out = append(out, entities.RoadmapStep{Stage: stage, Status: entities.StepStatusUpcoming})
		}
	}
	for _, terminal := range []string{StageCompleted, StageCancelled} {
		if s, ok := byStage[terminal]; ok {
			out = append(out, s)
		}
	}
	return out
}

// TerminalStage returns the terminal stage already recorded in the step
// list, or "" while the lifecycle is still open. A recorded terminal step
// freezes the order: no transition, not even a repeat cancellation, is
// accepted afterwards.
func TerminalStage(steps []entities.RoadmapStep) string {
	for _, s := range steps {
		if IsTerminal(s.Stage) {
			return canonical(s.Stage)
		}
	}
	return ""
}

// ActiveStage returns the stage currently marked active, or "".
func ActiveStage(steps []entities.RoadmapStep) string {
	for _, s := range steps {
		if s.Status == entities.StepStatusActive {
			return s.Stage
		}
	}
	return ""
}

// Advance validates and applies a transition: it closes the current active
// step (end timestamp, actor) and activates the target. Entering a terminal
// stage marks all remaining upcoming steps cancelled. The caller is
// responsible for pre-transition contracts (e.g. service execution checks all
// lines are terminal before moving to Quality Check); Advance only enforces
// stage ordering. Once a terminal step is recorded every further transition
// is rejected.
func Advance(steps []entities.RoadmapStep, to, actor string, now time.Time) ([]entities.RoadmapStep, error) {
	target := canonical(to)
	if target == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStage, to)
	}

	steps = EnsureSteps(steps)
	if recorded := TerminalStage(steps); recorded != "" {
		return nil, fmt.Errorf("%w: order is already %q", ErrInvalidTransition, recorded)
	}
	from := ActiveStage(steps)
	if from == "" {
		// Nothing active yet: only the first stage or cancellation may open.
		if target != StageNewRequest && target != StageCancelled {
			return nil, fmt.Errorf("%w: no active stage, cannot enter %q", ErrInvalidTransition, target)
		}
	} else if !CanTransition(from, target) {
		return nil, fmt.Errorf("%w: %q -> %q", ErrInvalidTransition, from, target)
	}

	actor = strings.TrimSpace(actor)
	out := make([]entities.RoadmapStep, len(steps))
	copy(out, steps)

	for i := range out {
		if out[i].Status == entities.StepStatusActive {
			out[i].Status = entities.StepStatusCompleted
			if out[i].EndedAt == nil {
				t := now
				out[i].EndedAt = &t
			}
			if actor != "" {
				out[i].ResponsibleActor = actor
			}
		}
	}

	if target == StageCancelled {
		for i := range out {
			if out[i].Status == entities.StepStatusUpcoming {
				out[i].Status = entities.StepStatusCancelled
			}
		}
		t := now
		out = append(out, entities.RoadmapStep{
			Stage:            StageCancelled,
			Status:           entities.StepStatusCompleted,
			StartedAt:        &t,
			EndedAt:          &t,
			ResponsibleActor: actor,
		})
		return out, nil
	}

	if target == StageCompleted {
		t := now
		out = append(out, entities.RoadmapStep{
			Stage:            StageCompleted,
			Status:           entities.StepStatusCompleted,
			StartedAt:        &t,
			EndedAt:          &t,
			ResponsibleActor: actor,
		})
		return out, nil
	}

	for i := range out {
		if strings.EqualFold(out[i].Stage, target) {
			out[i].Status = entities.StepStatusActive
			if out[i].StartedAt == nil {
				t := now
				out[i].StartedAt = &t
			}
			// Re-entry (quality reject) reopens the step: drop the stale end.
			out[i].EndedAt = nil
			if actor != "" {
				out[i].ResponsibleActor = actor
			}
		}
	}
	return out, nil
}

// ApplyQualityDecision closes the Quality Check step and routes the order:
// approve moves it to Ready, reject sends it back to Service Operation.
// It returns the updated steps plus the display work status the order should
// now carry.
func ApplyQualityDecision(steps []entities.RoadmapStep, approve bool, actor string, now time.Time) ([]entities.RoadmapStep, string, error) {
	steps = EnsureSteps(steps)
	if active := ActiveStage(steps); !strings.EqualFold(active, StageQualityCheck) {
		return nil, "", fmt.Errorf("%w: quality decision requires active %q, have %q", ErrInvalidTransition, StageQualityCheck, active)
	}

	target := StageReady
	if !approve {
		target = StageServiceOperation
	}
	out, err := Advance(steps, target, actor, now)
	if err != nil {
		return nil, "", err
	}
	return out, WorkStatusForStage(target), nil
}

// InferStartTimes fills missing start timestamps for steps the order has
// already advanced past, best effort and display only. Priority per step:
// explicit value, prior step's end, first later step's start, the order's
// last-updated time. The first stage falls back to the order's creation time.
// Values already set are never overwritten.
func InferStartTimes(steps []entities.RoadmapStep, createdAt, updatedAt time.Time) []entities.RoadmapStep {
	out := make([]entities.RoadmapStep, len(steps))
	copy(out, steps)

	for i := range out {
		if out[i].StartedAt != nil {
			continue
		}
		if out[i].Status != entities.StepStatusActive && out[i].Status != entities.StepStatusCompleted {
			continue
		}

		var inferred *time.Time
		if i > 0 && out[i-1].EndedAt != nil {
			inferred = out[i-1].EndedAt
		} else if i == 0 && !createdAt.IsZero() {
			t := createdAt
			inferred = &t
		}
		if inferred == nil {
			for j := i + 1; j < len(out); j++ {
				if out[j].StartedAt != nil {
					inferred = out[j].StartedAt
					break
				}
			}
		}
		if inferred == nil && !updatedAt.IsZero() {
			t := updatedAt
			inferred = &t
		}
		if inferred != nil {
			t := *inferred
			out[i].StartedAt = &t
		}
	}
	return out
}
