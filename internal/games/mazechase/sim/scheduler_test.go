package sim

import (
	"reflect"
	"testing"
)

func TestNewStartsInAttract(t *testing.T) {
	s, err := New(LevelSet{testMaze()}, quietRules())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if s.State() != StateAttract || !s.Demo() {
		t.Fatalf("State() = %v, Demo() = %v; expected attract demo", s.State(), s.Demo())
	}

	start := s.Player().Pos
	run(s, Centered(), 10)
	if s.Player().Pos == start {
		t.Error("autopilot did not move the player")
	}

	if st := s.Tick(Press(ButtonStart)); st != StatePlaying {
		t.Fatalf("state after start = %v, expected playing", st)
	}
	if s.Demo() || s.Session().Score != 0 || s.Player().Pos != testMaze().PlayerStart {
		t.Errorf("start did not begin a fresh scored game: demo=%v score=%d pos=%v",
			s.Demo(), s.Session().Score, s.Player().Pos)
	}
}

func TestNewRejectsBadLevels(t *testing.T) {
	bad := testMaze()
	bad.PlayerStart = P(0, 0) // wall
	if _, err := New(LevelSet{bad}, DefaultRules()); err == nil {
		t.Error("New should reject a player start on a wall")
	}
	if _, err := New(nil, DefaultRules()); err == nil {
		t.Error("New should reject an empty level set")
	}
	rules := DefaultRules()
	rules.BonusPoints = rules.BonusPoints[:1]
	if _, err := New(LevelSet{testMaze()}, rules); err == nil {
		t.Error("New should reject mismatched bonus tables")
	}
}

func TestPlayerCorridor(t *testing.T) {
	s := newPlaying(t, stripLevel([]string{"....."}, P(2, 0), P(0, 0)), quietRules())
	east := Hold(DirEast)

	s.Tick(east)
	s.Tick(east)
	if got := s.Player().Pos; got != P(4, 0) {
		t.Errorf("after tick 2 player = %v, expected (4,0)", got)
	}
	s.Tick(east)
	if got := s.Player().Pos; got != P(4, 0) {
		t.Errorf("after tick 3 player = %v, expected (4,0)", got)
	}
	if got := s.Session().Score; got != 20 {
		t.Errorf("Score = %d, expected 20", got)
	}
}

func TestLevelTransitionOnLastPickup(t *testing.T) {
	s := newPlaying(t, stripLevel([]string{" ..."}, P(0, 0), P(0, 0)), quietRules())
	east := Hold(DirEast)

	if st := run(s, east, 2); st != StatePlaying {
		t.Fatalf("state after 2 pickups = %v, expected playing", st)
	}
	if st := s.Tick(east); st != StateLevelTransition {
		t.Fatalf("state after last pickup = %v, expected level-clear", st)
	}
	if !s.Session().LevelClearInProgress {
		t.Error("LevelClearInProgress should be set")
	}

	// Walls flash and nothing moves until stage_clear_ticks elapse.
	if st := run(s, east, 9); st != StateLevelTransition {
		t.Fatalf("state = %v, expected level-clear", st)
	}
	if st := s.Tick(east); st != StateLifeTransition {
		t.Fatalf("state = %v, expected ready", st)
	}
	sess := s.Session()
	if sess.Level != 2 || sess.LevelClearInProgress {
		t.Errorf("Level = %d, clearing = %v; expected 2, false", sess.Level, sess.LevelClearInProgress)
	}
	if s.Board().Remaining() != 3 || s.Player().Pos != P(0, 0) {
		t.Errorf("level not rebuilt: remaining=%d player=%v", s.Board().Remaining(), s.Player().Pos)
	}
	if sess.Score != 30 {
		t.Errorf("Score = %d, expected 30 carried into level 2", sess.Score)
	}
}

func TestDormantRelease(t *testing.T) {
	rules := quietRules()
	rules.ReleaseTicks[IdentityDirect] = 20
	s := newPlaying(t, testMaze(), rules)
	home := testMaze().Homes[IdentityDirect]

	for i := 1; i <= 19; i++ {
		s.Tick(Centered())
		a := s.Antagonist(IdentityDirect)
		if a.Mode != ModeDormant || a.Pos != home {
			t.Fatalf("tick %d: mode=%v pos=%v, expected dormant at %v", i, a.Mode, a.Pos, home)
		}
	}
	s.Tick(Centered())
	a := s.Antagonist(IdentityDirect)
	if a.Mode != ModeActive {
		t.Fatalf("tick 20: mode = %v, expected active", a.Mode)
	}
	if a.Pos != testMaze().Base {
		t.Errorf("tick 20: pos = %v, expected base %v", a.Pos, testMaze().Base)
	}
}

func TestAntagonistPursues(t *testing.T) {
	rules := quietRules()
	rules.ReleaseTicks[IdentityDirect] = 0
	rules.MoveInterval = 1
	s := newPlaying(t, testMaze(), rules)

	// Released at the base (4,3); the player idles at (4,5).
	s.Tick(Centered())
	if got := s.Antagonist(IdentityDirect).Pos; got != P(4, 4) {
		t.Fatalf("after tick 1 antagonist = %v, expected (4,4)", got)
	}
	if st := s.Tick(Centered()); st != StateLifeTransition {
		t.Fatalf("state = %v, expected ready after being caught", st)
	}
	if s.Session().Lives != 2 {
		t.Errorf("Lives = %d, expected 2", s.Session().Lives)
	}
}

// powerStrip has a power item next to the player, the base at the far end
// and a few unreachable items so eating the power does not clear the level.
func powerStrip(row string) Level {
	return stripLevel([]string{row, "######", "...   "}, P(0, 0), P(5, 0))
}

func huntRules() Rules {
	r := quietRules()
	r.ReleaseTicks[IdentityDirect] = 0
	r.MoveInterval = 1000
	return r
}

func TestHuntPhaseTiming(t *testing.T) {
	s := newPlaying(t, powerStrip(" o    "), huntRules())

	s.Tick(Hold(DirEast)) // tick 1: power eaten, session starts
	h := s.Hunt()
	if !h.Active || h.PhaseStart != 1 {
		t.Fatalf("hunt = %+v, expected active from tick 1", h)
	}

	for tick := 2; tick <= 61; tick++ {
		s.Tick(Centered())
		mode := s.Antagonist(IdentityDirect).Mode
		var want Mode
		switch {
		case tick < 31:
			want = ModeFrightened
		case tick < 61:
			want = ModeWarning
		default:
			want = ModeActive
		}
		if mode != want {
			t.Fatalf("tick %d: mode = %v, expected %v", tick, mode, want)
		}
	}
	if s.Hunt().Active {
		t.Error("hunt should be over after two phases")
	}
}

func TestKillScoring(t *testing.T) {
	rules := huntRules()
	rules.ReleaseTicks = [NumAntagonists]int{0, 0, 0, 0}
	rec := newRecordingDisplay()
	s := newPlaying(t, powerStrip(" o    "), rules, WithDisplay(rec))

	east := Hold(DirEast)
	run(s, east, 4)
	if s.Session().Score != 50 {
		t.Fatalf("Score = %d, expected 50 before the kills", s.Session().Score)
	}

	// All four wait frightened on the base; stepping onto it eats them in order.
	s.Tick(east)
	if got := s.Session().Score; got != 50+200+400+800+1600 {
		t.Errorf("Score = %d, expected %d", got, 50+200+400+800+1600)
	}
	for i := 0; i < NumAntagonists; i++ {
		a := s.Antagonist(Identity(i))
		if a.Mode != ModeReturning {
			t.Errorf("antagonist %d mode = %v, expected returning", i, a.Mode)
		}
		if img := rec.images[AntagonistSprite(i)]; img != KillImage(i) {
			t.Errorf("antagonist %d image = %v, expected kill image %d", i, img, i)
		}
	}
	if s.Hunt().Active {
		t.Error("hunt should end once every antagonist is eaten")
	}
}

func TestRePowerPolicy(t *testing.T) {
	tests := []struct {
		policy    RePower
		wantStart int
	}{
		{RePowerIgnore, 1},
		{RePowerRestart, 2},
	}
	for _, tt := range tests {
		rules := huntRules()
		rules.RePower = tt.policy
		s := newPlaying(t, powerStrip(" oo   "), rules)
		run(s, Hold(DirEast), 2)

		h := s.Hunt()
		if h.PhaseStart != tt.wantStart {
			t.Errorf("policy %d: PhaseStart = %d, expected %d", tt.policy, h.PhaseStart, tt.wantStart)
		}
		if s.Session().Score != 100 {
			t.Errorf("policy %d: Score = %d, expected 100", tt.policy, s.Session().Score)
		}
	}
}

func TestReleaseJoinsRunningHunt(t *testing.T) {
	tests := []struct {
		name    string
		release int
		want    Mode
	}{
		{"frightened phase", 5, ModeFrightened},
		{"warning phase", 40, ModeWarning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := huntRules()
			rules.ReleaseTicks[IdentityAmbush] = tt.release
			s := newPlaying(t, powerStrip(" o    "), rules)

			s.Tick(Hold(DirEast)) // tick 1: power eaten
			run(s, Centered(), tt.release-2)
			if got := s.Antagonist(IdentityAmbush).Mode; got != ModeDormant {
				t.Fatalf("before release mode = %v, expected dormant", got)
			}

			s.Tick(Centered())
			if got := s.Antagonist(IdentityAmbush).Mode; got != tt.want {
				t.Fatalf("released mode = %v, expected %v", got, tt.want)
			}

			// Touching it is a kill, not a lost life.
			s.antagonists[IdentityAmbush].Pos = s.player.Pos
			s.collide()
			if s.lifeLost {
				t.Fatal("released antagonist cost a life during a hunt")
			}
			if got := s.Antagonist(IdentityAmbush).Mode; got != ModeReturning {
				t.Errorf("mode after contact = %v, expected returning", got)
			}
			if got := s.Session().Score; got != 50+200 {
				t.Errorf("Score = %d, expected %d", got, 50+200)
			}
			if !s.Hunt().Active {
				t.Fatal("hunt should go on while the direct antagonist is vulnerable")
			}

			s.antagonists[IdentityDirect].Pos = s.player.Pos
			s.collide()
			if s.Hunt().Active {
				t.Error("hunt should end once both vulnerable antagonists are eaten")
			}
		})
	}
}

func TestRePowerRestartWithDormant(t *testing.T) {
	rules := huntRules()
	rules.RePower = RePowerRestart
	rules.ReleaseTicks[IdentityAmbush] = 3
	s := newPlaying(t, powerStrip(" oo   "), rules)

	run(s, Hold(DirEast), 2) // powers at ticks 1 and 2
	if got := s.Hunt().PhaseStart; got != 2 {
		t.Fatalf("PhaseStart = %d, expected the restart at tick 2", got)
	}
	if got := s.Antagonist(IdentityAmbush).Mode; got != ModeDormant {
		t.Fatalf("ambush mode = %v, expected dormant until tick 3", got)
	}

	s.Tick(Centered())
	if got := s.Antagonist(IdentityAmbush).Mode; got != ModeFrightened {
		t.Fatalf("ambush mode after release = %v, expected frightened", got)
	}

	// Both follow the restarted clock into the warning phase at tick 32.
	run(s, Centered(), 28)
	for _, id := range []Identity{IdentityDirect, IdentityAmbush} {
		if got := s.Antagonist(id).Mode; got != ModeFrightened {
			t.Errorf("tick 31: %v mode = %v, expected frightened", id, got)
		}
	}
	s.Tick(Centered())
	for _, id := range []Identity{IdentityDirect, IdentityAmbush} {
		if got := s.Antagonist(id).Mode; got != ModeWarning {
			t.Errorf("tick 32: %v mode = %v, expected warning", id, got)
		}
	}
}

func TestKillFreeze(t *testing.T) {
	rec := newRecordingDisplay()
	s := newPlaying(t, powerStrip(" o    "), huntRules(), WithDisplay(rec))
	east := Hold(DirEast)

	s.Tick(east) // tick 1: power eaten
	s.antagonists[IdentityDirect].Pos = P(2, 0)
	s.Tick(east) // tick 2: kill
	if got := s.Session().Score; got != 250 {
		t.Fatalf("Score = %d, expected 250 after the kill", got)
	}

	sprite := AntagonistSprite(int(IdentityDirect))
	for tick := 3; tick <= 7; tick++ {
		s.Tick(east)
		if got := s.Player().Pos; got != P(2, 0) {
			t.Errorf("tick %d: player = %v, expected frozen at (2,0)", tick, got)
		}
		if got := s.LifeTick(); got != 2 {
			t.Errorf("tick %d: LifeTick() = %d, expected 2", tick, got)
		}
		if img := rec.images[sprite]; img != KillImage(0) {
			t.Errorf("tick %d: image = %v, expected the kill score", tick, img)
		}
		if rec.enabled[SpritePlayer] {
			t.Errorf("tick %d: player sprite should be hidden", tick)
		}
	}
	if got := s.Snapshot(false).Frozen; got != 0 {
		t.Errorf("Frozen = %d after the pause, expected 0", got)
	}

	s.Tick(east)
	if got := s.Player().Pos; got != P(3, 0) {
		t.Errorf("player = %v, expected play to resume at (3,0)", got)
	}
	if img := rec.images[sprite]; img != ImageEyes {
		t.Errorf("image = %v, expected eyes after the pause", img)
	}
	if !rec.enabled[SpritePlayer] {
		t.Error("player sprite should be back after the pause")
	}
}

func TestKillFreezeDisabled(t *testing.T) {
	rules := huntRules()
	rules.KillFreezeTicks = 0
	s := newPlaying(t, powerStrip(" o    "), rules)

	s.Tick(Hold(DirEast))
	s.antagonists[IdentityDirect].Pos = P(2, 0)
	run(s, Hold(DirEast), 2)
	if got := s.Player().Pos; got != P(3, 0) {
		t.Errorf("player = %v, expected (3,0) without a pause", got)
	}
}

func TestCollisionPolicy(t *testing.T) {
	tests := []struct {
		name     string
		mode     Mode
		collides bool
		lost     bool
	}{
		{"active", ModeActive, false, true},
		{"dormant", ModeDormant, false, true},
		{"returning ignored", ModeReturning, false, false},
		{"returning collides", ModeReturning, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := quietRules()
			rules.ReturningCollides = tt.collides
			s := newPlaying(t, testMaze(), rules)
			s.antagonists[0].Mode = tt.mode
			s.antagonists[0].Pos = s.player.Pos

			s.collide()
			if s.lifeLost != tt.lost {
				t.Errorf("lifeLost = %v, expected %v", s.lifeLost, tt.lost)
			}
		})
	}
}

// catchStrip releases the direct antagonist onto the player's path.
func catchStrip(t *testing.T, lives int) *Scheduler {
	t.Helper()
	rules := huntRules()
	rules.Lives = lives
	rules.HighScore = 0
	return newPlaying(t, stripLevel([]string{" .  ..", "######"}, P(0, 0), P(2, 0)), rules)
}

func TestLifeLoss(t *testing.T) {
	s := catchStrip(t, 3)
	east := Hold(DirEast)

	s.Tick(east) // eats (1,0)
	if st := s.Tick(east); st != StateLifeTransition {
		t.Fatalf("state = %v, expected ready", st)
	}
	sess := s.Session()
	if sess.Lives != 2 || sess.Score != 10 || sess.PlayerAlive {
		t.Errorf("session = lives %d score %d alive %v", sess.Lives, sess.Score, sess.PlayerAlive)
	}
	if s.Player().Pos != P(0, 0) {
		t.Errorf("player = %v, expected reset to (0,0)", s.Player().Pos)
	}
	a := s.Antagonist(IdentityDirect)
	if a.Mode != ModeDormant || a.Pos != a.Home {
		t.Errorf("antagonist = %v at %v, expected dormant at home", a.Mode, a.Pos)
	}
	if s.LifeTick() != 0 {
		t.Errorf("LifeTick() = %d, expected release timers re-armed", s.LifeTick())
	}

	// READY holds until start is pressed.
	if st := run(s, Centered(), 5); st != StateLifeTransition {
		t.Fatalf("state = %v, expected ready", st)
	}
	if st := s.Tick(Press(ButtonStart)); st != StatePlaying {
		t.Fatalf("state = %v, expected playing", st)
	}
	if !s.Session().PlayerAlive {
		t.Error("PlayerAlive should be restored")
	}
}

func TestReadyTimesOut(t *testing.T) {
	s := catchStrip(t, 3)
	run(s, Hold(DirEast), 2)

	ready := s.Rules().ReadyTicks
	if st := run(s, Centered(), ready-1); st != StateLifeTransition {
		t.Fatalf("state = %v, expected ready", st)
	}
	if st := s.Tick(Centered()); st != StatePlaying {
		t.Fatalf("state = %v, expected playing after %d ticks", st, ready)
	}
}

func TestGameOver(t *testing.T) {
	s := catchStrip(t, 1)
	east := Hold(DirEast)

	s.Tick(east)
	if st := s.Tick(east); st != StateGameOver {
		t.Fatalf("state = %v, expected game-over", st)
	}
	sess := s.Session()
	if sess.FinalScore != 10 || sess.FinalLevel != 1 {
		t.Errorf("final = %d on level %d, expected 10 on level 1", sess.FinalScore, sess.FinalLevel)
	}
	if sess.Score != 0 || sess.Lives != 1 || sess.Level != 1 {
		t.Errorf("session not reset: %+v", sess)
	}
	if sess.HighScore != 10 {
		t.Errorf("HighScore = %d, expected 10", sess.HighScore)
	}

	if st := run(s, Centered(), s.Rules().GameOverTicks); st != StateAttract {
		t.Fatalf("state = %v, expected attract after the banner", st)
	}
	if s.Session().HighScore != 10 {
		t.Errorf("HighScore = %d lost on attract", s.Session().HighScore)
	}
}

func TestGameOverStartButton(t *testing.T) {
	s := catchStrip(t, 1)
	run(s, Hold(DirEast), 2)
	if st := s.Tick(Press(ButtonStart)); st != StatePlaying {
		t.Fatalf("state = %v, expected playing", st)
	}
	if s.Demo() {
		t.Error("start should begin a scored game")
	}
}

func TestBonusItem(t *testing.T) {
	rules := quietRules()
	rules.BonusTicks = []int{3}
	rules.BonusPoints = []int{300}
	s := newPlaying(t, stripLevel([]string{"  . ."}, P(0, 0), P(1, 0)), rules)

	run(s, Centered(), 3)
	if s.Board().Item(P(1, 0)) != ConsumableBonus {
		t.Fatalf("Item(1,0) = %v, expected bonus at life tick 3", s.Board().Item(P(1, 0)))
	}
	remaining := s.Board().Remaining()

	s.Tick(Hold(DirEast))
	if got := s.Session().Score; got != 300 {
		t.Errorf("Score = %d, expected 300", got)
	}
	if s.Board().Remaining() != remaining {
		t.Errorf("Remaining() = %d, bonus must not count", s.Board().Remaining())
	}
}

func TestExtraLifeInGame(t *testing.T) {
	rules := quietRules()
	rules.ExtraLifeScore = 20
	s := newPlaying(t, stripLevel([]string{" ....."}, P(0, 0), P(0, 0)), rules)

	run(s, Hold(DirEast), 3)
	if got := s.Session().Lives; got != 4 {
		t.Errorf("Lives = %d, expected 4", got)
	}
}

func TestDemoKeepsHighScore(t *testing.T) {
	rules := DefaultRules()
	rules.HighScore = 0
	s, err := New(LevelSet{testMaze()}, rules)
	if err != nil {
		t.Fatal(err)
	}
	run(s, Centered(), 300)
	if s.Session().HighScore != 0 {
		t.Errorf("attract raised HighScore to %d", s.Session().HighScore)
	}

	s.SeedHighScore(5000)
	s.SeedHighScore(10)
	if s.Session().HighScore != 5000 {
		t.Errorf("HighScore = %d, expected 5000", s.Session().HighScore)
	}
}

func TestDeterminism(t *testing.T) {
	rules := DefaultRules()
	rules.MoveInterval = 3
	levels := LevelSet{testMaze()}

	s1, err := New(levels, rules)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := New(levels, rules)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3000; i++ {
		s1.Tick(Centered())
		s2.Tick(Centered())
		if i%100 != 0 {
			continue
		}
		snap1 := s1.Snapshot(true)
		snap2 := s2.Snapshot(true)
		if !reflect.DeepEqual(snap1, snap2) {
			t.Fatalf("tick %d: snapshots diverge:\n%+v\n%+v", i, snap1, snap2)
		}
	}
}

func TestDisplayDeltas(t *testing.T) {
	rec := newRecordingDisplay()
	s := newPlaying(t, stripLevel([]string{"....."}, P(2, 0), P(0, 0)), quietRules(), WithDisplay(rec))
	w, h := s.Board().W, s.Board().H

	s.Tick(Centered())
	if rec.tileCalls != w*h {
		t.Errorf("first tick set %d tiles, expected %d", rec.tileCalls, w*h)
	}
	if rec.posCalls != int(NumSprites) {
		t.Errorf("first tick placed %d sprites, expected %d", rec.posCalls, NumSprites)
	}
	if rec.tiles[P(0, 1)] != TileWall || rec.tiles[P(0, 0)] != TileSmall {
		t.Error("initial tiles mismatch")
	}

	rec.reset()
	s.Tick(Centered())
	if rec.tileCalls != 0 || rec.posCalls != 0 {
		t.Errorf("idle tick emitted %d tiles and %d moves", rec.tileCalls, rec.posCalls)
	}

	rec.reset()
	s.Tick(Hold(DirEast))
	if rec.tiles[P(3, 0)] != TileBlank {
		t.Errorf("eaten cell tile = %v, expected blank", rec.tiles[P(3, 0)])
	}
	if rec.positions[SpritePlayer] != P(3, 0) || rec.posCalls != 1 {
		t.Errorf("player sprite = %v after %d moves", rec.positions[SpritePlayer], rec.posCalls)
	}
	if !rec.enabled[SpritePlayer] || rec.colors[SpritePlayer] != ColorYellow {
		t.Error("player sprite should be visible and yellow")
	}
}

func TestBoardRows(t *testing.T) {
	s := newPlaying(t, stripLevel([]string{".o. "}, P(3, 0), P(3, 0)), quietRules())
	rows := s.BoardRows()
	if rows[0] != ".o.C" {
		t.Errorf("row 0 = %q, expected %q", rows[0], ".o.C")
	}
	if rows[2] != "M###" {
		t.Errorf("row 2 = %q, expected %q", rows[2], "M###")
	}
}
