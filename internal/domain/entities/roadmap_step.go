package entities

import "time"

// StepStatus is the state of one roadmap stage.

type StepStatus string

const (
	StepStatusUpcoming  StepStatus = "upcoming"
	StepStatusActive    StepStatus = "active"
	StepStatusCompleted StepStatus = "completed"
	StepStatusCancelled StepStatus = "cancelled"
)

// RoadmapStep is one stage of the fixed lifecycle with timing and actor
// attribution. Stages occur in a fixed canonical order; a step's start time,
// once set, is never retroactively overwritten (missing starts are inferred
// for display by the roadmap package).
type RoadmapStep struct {
	Stage            string     `json:"stage"`
	Status           StepStatus `json:"status"`
	StartedAt        *time.Time `json:"started_at,omitempty"`
	EndedAt          *time.Time `json:"ended_at,omitempty"`
	ResponsibleActor string     `json:"responsible_actor,omitempty"`
}
