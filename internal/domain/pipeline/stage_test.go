package pipeline

import "testing"

func TestAllowedNext(t *testing.T) {
	cases := []struct {
		stage Stage
		want  []Stage
	}{
		{StageNew, []Stage{StageScreening, StageRejected}},
		{StageScreening, []Stage{StageTechnical, StageRejected}},
		{StageTechnical, []Stage{StageOffer, StageRejected}},
		{StageOffer, []Stage{StageHired, StageRejected}},
		{StageHired, []Stage{}},
		{StageRejected, []Stage{}},
	}
	for _, tc := range cases {
		got := AllowedNext(tc.stage)
		if len(got) != len(tc.want) {
			t.Fatalf("AllowedNext(%s) = %v, want %v", tc.stage, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("AllowedNext(%s) = %v, want %v", tc.stage, got, tc.want)
			}
		}
	}
}

func TestAllowedNextUnknownStage(t *testing.T) {
	if got := AllowedNext(Stage("interviewing")); len(got) != 0 {
		t.Fatalf("expected empty set for unknown stage, got %v", got)
	}
}

func TestRejectReachableFromEveryNonTerminalStage(t *testing.T) {
	for _, s := range Stages() {
		if IsTerminal(s) {
			continue
		}
		if !CanTransition(s, StageRejected) {
			t.Fatalf("expected %s -> rejected to be allowed", s)
		}
	}
}

func TestTerminalStagesHaveNoExits(t *testing.T) {
	for _, from := range []Stage{StageHired, StageRejected} {
		for _, to := range Stages() {
			if CanTransition(from, to) {
				t.Fatalf("expected no transition out of terminal stage %s, got %s", from, to)
			}
		}
	}
}

func TestNoSelfOrBackwardTransitions(t *testing.T) {
	order := []Stage{StageNew, StageScreening, StageTechnical, StageOffer}
	for i, from := range order {
		if CanTransition(from, from) {
			t.Fatalf("self-transition %s -> %s must not be allowed", from, from)
		}
		for j := 0; j <= i; j++ {
			if CanTransition(from, order[j]) {
				t.Fatalf("backward transition %s -> %s must not be allowed", from, order[j])
			}
		}
	}
}

func TestCanTransitionSkipsForbidden(t *testing.T) {
	forbidden := [][2]Stage{
		{StageNew, StageTechnical},
		{StageNew, StageOffer},
		{StageNew, StageHired},
		{StageScreening, StageOffer},
		{StageScreening, StageHired},
		{StageTechnical, StageHired},
	}
	for _, pair := range forbidden {
		if CanTransition(pair[0], pair[1]) {
			t.Fatalf("skip transition %s -> %s must not be allowed", pair[0], pair[1])
		}
	}
}

func TestParseStage(t *testing.T) {
	for _, s := range Stages() {
		parsed, ok := ParseStage(string(s))
		if !ok || parsed != s {
			t.Fatalf("ParseStage(%q) = %q, %v", s, parsed, ok)
		}
	}
	for _, raw := range []string{"", "New", "SCREENING", "interview", "done"} {
		if _, ok := ParseStage(raw); ok {
			t.Fatalf("ParseStage(%q) should fail", raw)
		}
	}
}
