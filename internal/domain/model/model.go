// Package model contains domain models passed between layers.
package model

// Role tags an engineer as a candidate or an interviewer.
type Role string

// Recognized roles.
const (
	RoleCandidate   Role = "candidate"
	RoleInterviewer Role = "interviewer"
)

// Engineer is an immutable participant in the simulation. TrueSkill is the
// hidden ground truth; Bias and ErrorRate shape the noise this engineer adds
// when assessing others. The core never mutates Engineers after creation.
type Engineer struct {
	ID        string  // unique id, assigned at population time
	Role      Role    // candidate or interviewer
	TrueSkill float64 // hidden ability in [1,100]
	Bias      float64 // additive perceptual offset when assessing others
	ErrorRate float64 // non-negative noise magnitude

	// SelfPerceived is the engineer's own noisy read of their skill,
	// computed once at creation with the self-assessment duration.
	SelfPerceived float64
}

// Estimate is one assessor's perceived-skill reading of a candidate during
// one interview step. Values are not clamped to [1,100].
type Estimate struct {
	AssessorID string
	Step       int
	Value      float64
}

// StepResult holds the estimates collected during one executed step and the
// per-step score (mean of the estimates).
type StepResult struct {
	Step      int
	Duration  float64
	Estimates []Estimate
	Score     float64
}

// PipelineResult is the outcome of running one candidate through a pipeline.
// Steps holds one entry per step actually executed, which may be shorter than
// the pipeline when the immediate strategy stops early.
type PipelineResult struct {
	CandidateID string
	Pass        bool
	Steps       []StepResult
	FinalScore  float64
	TotalTime   float64 // sum of executed step durations, in hours
}

// CompensationOffer is the monetary offer derived from a final skill estimate.
type CompensationOffer struct {
	SkillEstimate float64 // input estimate after clamping into [1,100]
	Base          float64 // curve value before adjustments
	Final         float64 // after adjustment terms, floored at zero
}

// ScreeningRecord is the per-candidate record emitted to the result sink:
// one per candidate processed, with an offer attached when the candidate
// passed the pipeline.
type ScreeningRecord struct {
	CandidateID string
	TrueSkill   float64
	Result      PipelineResult
	Offer       *CompensationOffer
}

// Trial identifies one independent simulation run. Seed is the trial's own
// random-source seed; trials never share a random source.
type Trial struct {
	Index int
	Seed  int64
}

// TrialResult summarizes one completed trial.
type TrialResult struct {
	Trial      Trial
	Hired      bool
	Screened   int     // candidates drawn from the pool
	FinalScore float64 // hired candidate's final estimate, 0 when no hire
	TrueSkill  float64 // hired candidate's hidden skill, 0 when no hire
	TotalTime  float64 // interview hours spent on the hired candidate
	Offer      float64 // final offer value, 0 when no hire
}
