package pipeline

// Stage is a candidate's progress through one position's hiring process.
type Stage string

const (
	StageNew       Stage = "new"
	StageScreening Stage = "screening"
	StageTechnical Stage = "technical"
	StageOffer     Stage = "offer"
	StageHired     Stage = "hired"
	StageRejected  Stage = "rejected"
)

// transitions is the single source of truth for stage progression: forward-only,
// rejectable from any non-terminal stage, terminal stages have no exits.
var transitions = map[Stage][]Stage{
	StageNew:       {StageScreening, StageRejected},
	StageScreening: {StageTechnical, StageRejected},
	StageTechnical: {StageOffer, StageRejected},
	StageOffer:     {StageHired, StageRejected},
	StageHired:     {},
	StageRejected:  {},
}

// AllowedNext returns the stages reachable from current in one transition.
// Unknown stages map to the empty set; value validation is the caller's job.
func AllowedNext(current Stage) []Stage {
	next := transitions[current]
	out := make([]Stage, len(next))
	copy(out, next)
	return out
}

// CanTransition reports whether requested is reachable from current.
func CanTransition(current, requested Stage) bool {
	for _, s := range transitions[current] {
		if s == requested {
			return true
		}
	}
	return false
}

func IsTerminal(s Stage) bool {
	return s == StageHired || s == StageRejected
}

// ParseStage validates a raw stage value against the known set.
func ParseStage(raw string) (Stage, bool) {
	switch Stage(raw) {
	case StageNew, StageScreening, StageTechnical, StageOffer, StageHired, StageRejected:
		return Stage(raw), true
	default:
		return "", false
	}
}

// Stages lists all known stages in pipeline order.
func Stages() []Stage {
	return []Stage{StageNew, StageScreening, StageTechnical, StageOffer, StageHired, StageRejected}
}
