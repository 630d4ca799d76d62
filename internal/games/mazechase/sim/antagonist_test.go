package sim

import "testing"

func TestTransition(t *testing.T) {
	tests := []struct {
		mode Mode
		ev   Event
		want Mode
		ok   bool
	}{
		{ModeDormant, EventRelease, ModeActive, true},
		{ModeActive, EventRelease, ModeActive, false},
		{ModeActive, EventHuntStart, ModeFrightened, true},
		{ModeDormant, EventHuntStart, ModeDormant, false},
		{ModeReturning, EventHuntStart, ModeReturning, false},
		{ModeWarning, EventHuntStart, ModeFrightened, true},
		{ModeFrightened, EventHuntWarning, ModeWarning, true},
		{ModeActive, EventHuntWarning, ModeActive, false},
		{ModeWarning, EventHuntEnd, ModeActive, true},
		{ModeFrightened, EventHuntEnd, ModeActive, true},
		{ModeReturning, EventHuntEnd, ModeReturning, false},
		{ModeFrightened, EventEaten, ModeReturning, true},
		{ModeWarning, EventEaten, ModeReturning, true},
		{ModeActive, EventEaten, ModeActive, false},
		{ModeReturning, EventReachedBase, ModeActive, true},
		{ModeActive, EventReachedBase, ModeActive, false},
		{ModeReturning, EventReset, ModeDormant, true},
		{ModeFrightened, EventReset, ModeDormant, true},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String()+"/"+tt.ev.String(), func(t *testing.T) {
			got, ok := Transition(tt.mode, tt.ev)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Transition(%v, %v) = %v, %v; expected %v, %v", tt.mode, tt.ev, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestApplyReportsChange(t *testing.T) {
	a := Antagonist{Mode: ModeActive}
	if !a.Apply(EventHuntStart) {
		t.Error("Apply(hunt-start) on active should change mode")
	}
	if a.Apply(EventHuntStart) {
		t.Error("Apply(hunt-start) on frightened should not change mode")
	}
	if a.Mode != ModeFrightened {
		t.Errorf("Mode = %v, expected frightened", a.Mode)
	}
}

func TestTargets(t *testing.T) {
	var player Actor
	player.Place(P(5, 5), DirNorth)
	player.MoveTo(P(6, 5)) // facing east

	rules := TargetRules{Base: P(4, 3), AlternatePeriod: 64, ProximityRange: 6}
	corner := P(1, 1)

	tests := []struct {
		name string
		id   Identity
		mode Mode
		pos  Pos
		tick int
		want Pos
	}{
		{"direct", IdentityDirect, ModeActive, P(1, 3), 0, P(6, 5)},
		{"ambush", IdentityAmbush, ModeActive, P(1, 3), 0, P(7, 5)},
		{"alternating bit set", IdentityAlternating, ModeActive, P(1, 3), 64, P(6, 5)},
		{"alternating bit clear", IdentityAlternating, ModeActive, P(1, 3), 63, corner},
		{"alternating wraps", IdentityAlternating, ModeActive, P(1, 3), 128, corner},
		{"proximity near", IdentityProximity, ModeActive, P(2, 3), 0, P(6, 5)},
		{"proximity far", IdentityProximity, ModeActive, P(1, 1), 0, corner},
		{"returning", IdentityAmbush, ModeReturning, P(1, 3), 0, P(4, 3)},
		{"frightened", IdentityAlternating, ModeFrightened, P(1, 3), 0, P(6, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Antagonist{Identity: tt.id, Mode: tt.mode, Corner: corner}
			a.Place(tt.pos, DirNorth)
			if got := a.Target(player, tt.tick, rules); got != tt.want {
				t.Errorf("Target = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestNextStepByMode(t *testing.T) {
	b := mustBuild(t, "     ")
	a := Antagonist{Mode: ModeActive}
	a.Place(P(2, 0), DirNorth)

	if got := a.NextStep(b, P(4, 0)); got != P(3, 0) {
		t.Errorf("active NextStep = %v, expected (3,0)", got)
	}
	a.Mode = ModeFrightened
	if got := a.NextStep(b, P(4, 0)); got != P(1, 0) {
		t.Errorf("frightened NextStep = %v, expected (1,0)", got)
	}
	a.Mode = ModeDormant
	if got := a.NextStep(b, P(4, 0)); got != P(2, 0) {
		t.Errorf("dormant NextStep = %v, expected to stay", got)
	}
}

func TestMoveCounter(t *testing.T) {
	a := Antagonist{Mode: ModeActive}
	var moves []int
	for i := 1; i <= 9; i++ {
		if a.due(3) {
			moves = append(moves, i)
		}
	}
	if len(moves) != 3 || moves[0] != 3 || moves[1] != 6 || moves[2] != 9 {
		t.Errorf("moves on ticks %v, expected [3 6 9]", moves)
	}

	a.Mode = ModeReturning
	for i := 0; i < 3; i++ {
		if !a.due(3) {
			t.Error("returning antagonist should move every tick")
		}
	}
}

func TestIntervalForLevel(t *testing.T) {
	r := DefaultRules()
	tests := []struct {
		level int
		want  int
	}{
		{0, 16},
		{1, 16},
		{2, 15},
		{16, 1},
		{40, 1},
	}
	for _, tt := range tests {
		if got := r.IntervalForLevel(tt.level); got != tt.want {
			t.Errorf("IntervalForLevel(%d) = %d, expected %d", tt.level, got, tt.want)
		}
	}
}
