package sim

// collide resolves antagonists sharing the player's cell. Vulnerable ones
// are eaten; active and dormant ones cost a life; returning ones only when
// the rules say so.
func (s *Scheduler) collide() {
	killed := false
	for i := range s.antagonists {
		a := &s.antagonists[i]
		if a.Pos != s.player.Pos {
			continue
		}
		switch {
		case a.Mode.Vulnerable():
			points, k := s.hunt.KillPoints(s.rules.AntagonistPoints)
			s.apply(i, EventEaten)
			s.session.AddPoints(points)
			s.kills[i] = k + 1
			killed = true
			s.logger.Debug("kill", "identity", a.Identity, "points", points, "tick", s.tick)
		case a.Mode == ModeReturning && !s.rules.ReturningCollides:
		default:
			s.lifeLost = true
			return
		}
	}
	if killed && !s.anyVulnerable() {
		s.endHunt()
	}
}

// pickup consumes the item under the player.
func (s *Scheduler) pickup() {
	switch s.board.Consume(s.player.Pos) {
	case ConsumableNone:
		return
	case ConsumableSmall:
		s.session.AddPoints(s.rules.SmallPoints)
	case ConsumablePower:
		s.session.AddPoints(s.rules.PowerPoints)
		s.startHunt()
	case ConsumableBonus:
		if s.bonusKind >= 0 {
			s.session.AddPoints(s.rules.BonusPoints[s.bonusKind])
		}
		s.bonusKind = -1
	}
	s.session.ConsumablesRemaining = s.board.Remaining()
	s.view.mark(s.player.Pos)
}

func (s *Scheduler) startHunt() {
	if s.hunt.Active && s.rules.RePower == RePowerIgnore {
		return
	}
	s.hunt.Start(s.tick)
	s.logger.Debug("hunt start", "tick", s.tick)
	for i := range s.antagonists {
		s.apply(i, EventHuntStart)
	}
}

// advanceHunt moves the hunt clock and fans any phase change out to
// the antagonists.
func (s *Scheduler) advanceHunt() {
	e, ok := s.hunt.Advance(s.tick, s.rules.HuntTicks)
	if !ok {
		return
	}
	s.logger.Debug("hunt phase", "event", e, "tick", s.tick)
	for i := range s.antagonists {
		s.apply(i, e)
	}
}

func (s *Scheduler) endHunt() {
	s.hunt.End()
	for i := range s.antagonists {
		s.apply(i, EventHuntEnd)
	}
}

// joinHunt brings antagonist i, just released, into a running hunt in
// the current phase.
func (s *Scheduler) joinHunt(i int) {
	if !s.hunt.Active {
		return
	}
	s.apply(i, EventHuntStart)
	if s.hunt.Phase == PhaseWarning {
		s.apply(i, EventHuntWarning)
	}
}

// killed reports whether an antagonist was eaten this tick.
func (s *Scheduler) killed() bool {
	return s.kills != [NumAntagonists]int{}
}

func (s *Scheduler) anyVulnerable() bool {
	for i := range s.antagonists {
		if s.antagonists[i].Mode.Vulnerable() {
			return true
		}
	}
	return false
}
