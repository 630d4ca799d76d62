package sim

import "testing"

func TestKillPointsDouble(t *testing.T) {
	var h HuntSession
	h.Start(0)
	want := []int{200, 400, 800, 1600}
	for i, w := range want {
		points, idx := h.KillPoints(200)
		if points != w || idx != i {
			t.Errorf("kill %d = %d (index %d), expected %d", i+1, points, idx, w)
		}
	}
}

func TestHuntAdvance(t *testing.T) {
	var h HuntSession
	h.Start(100)

	if _, ok := h.Advance(129, 30); ok {
		t.Error("event before start+30")
	}
	if e, ok := h.Advance(130, 30); !ok || e != EventHuntWarning {
		t.Errorf("Advance(130) = %v, %v; expected hunt-warning", e, ok)
	}
	if h.Phase != PhaseWarning || h.PhaseStart != 130 {
		t.Errorf("phase = %v from %d, expected warning from 130", h.Phase, h.PhaseStart)
	}
	if _, ok := h.Advance(159, 30); ok {
		t.Error("event before start+60")
	}
	if e, ok := h.Advance(160, 30); !ok || e != EventHuntEnd {
		t.Errorf("Advance(160) = %v, %v; expected hunt-end", e, ok)
	}
	if h.Active {
		t.Error("session should be torn down")
	}
	if _, ok := h.Advance(500, 30); ok {
		t.Error("inactive session produced an event")
	}
}

func TestHuntRestartKeepsKills(t *testing.T) {
	var h HuntSession
	h.Start(10)
	h.KillPoints(200)
	h.Start(20)
	if h.Kills != 1 || h.PhaseStart != 20 || h.Phase != PhaseFrightened {
		t.Errorf("restart = %+v", h)
	}
	h.End()
	h.Start(30)
	if h.Kills != 0 {
		t.Errorf("new session Kills = %d, expected 0", h.Kills)
	}
}

func TestExtraLifeOnce(t *testing.T) {
	g := NewGameSession(3, 1, 0)

	g.Score = 9990
	g.BeginTick()
	g.AddPoints(10)
	if !g.CheckExtraLife(10000) {
		t.Fatal("crossing 10000 should award a life")
	}
	if g.Lives != 4 {
		t.Errorf("Lives = %d, expected 4", g.Lives)
	}

	// Later ticks above the threshold award nothing.
	g.BeginTick()
	g.AddPoints(10)
	if g.CheckExtraLife(10000) {
		t.Error("second award while above threshold")
	}

	// A dip and a fresh crossing still award nothing.
	g.Score = 5000
	g.BeginTick()
	g.AddPoints(6000)
	if g.CheckExtraLife(10000) {
		t.Error("second award after a dip")
	}
	if g.Lives != 4 {
		t.Errorf("Lives = %d, expected 4", g.Lives)
	}
}

func TestExtraLifeNeedsCrossingWithinTick(t *testing.T) {
	g := NewGameSession(3, 1, 0)
	g.Score = 12000
	g.BeginTick()
	if g.CheckExtraLife(10000) {
		t.Error("score already above threshold should not award")
	}
}

func TestHighScore(t *testing.T) {
	g := NewGameSession(3, 1, 100)
	g.AddPoints(150)
	if g.HighScore != 150 {
		t.Errorf("HighScore = %d, expected 150", g.HighScore)
	}

	g.recordHighScore = false
	g.AddPoints(1000)
	if g.HighScore != 150 {
		t.Errorf("demo raised HighScore to %d", g.HighScore)
	}
}

func TestGameSessionReset(t *testing.T) {
	g := NewGameSession(3, 1, 0)
	g.AddPoints(500)
	g.Level = 4
	g.FinalScore = 500
	g.FinalLevel = 4
	g.LoseLife()

	g.Reset(3, 1)
	if g.Score != 0 || g.Lives != 3 || g.Level != 1 || !g.PlayerAlive {
		t.Errorf("Reset = %+v", g)
	}
	if g.HighScore != 500 || g.FinalScore != 500 || g.FinalLevel != 4 {
		t.Errorf("Reset lost final results: %d/%d/%d", g.HighScore, g.FinalScore, g.FinalLevel)
	}
}
