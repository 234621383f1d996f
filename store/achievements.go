package store

// Achievement rules are independent and idempotent: an already-earned
// achievement is never unlocked twice, and checking with no new progress
// returns nothing.

type achievementRule struct {
	id  string
	met func(s *Store) bool
}

var achievementRules = []achievementRule{
	{
		id:  achievementFirstWorkout,
		met: func(s *Store) bool { return len(s.doc.Workouts) > 0 },
	},
	{
		id: achievementCalorieCrush,
		met: func(s *Store) bool {
			for _, w := range s.doc.Workouts {
				if w.CaloriesBurned >= calorieCrusherThreshold {
					return true
				}
			}
			return false
		},
	},
	{
		id:  achievementWeekStreak,
		met: func(s *Store) bool { return s.workoutStreakLocked() >= weekStreakThresholdDays },
	},
}

// CheckAndUnlockAchievements evaluates every rule against the current
// document and returns the achievements newly unlocked by this call.
func (s *Store) CheckAndUnlockAchievements() ([]Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlocked := []Achievement{}
	for _, rule := range achievementRules {
		for i := range s.doc.Achievements {
			a := &s.doc.Achievements[i]
			if a.ID != rule.id || a.Earned {
				continue
			}
			if !rule.met(s) {
				continue
			}
			now := s.now()
			a.Earned = true
			a.EarnedAt = &now
			unlocked = append(unlocked, *a)
		}
	}
	if len(unlocked) == 0 {
		return unlocked, nil
	}
	return unlocked, s.save()
}

func (s *Store) Achievements() []Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Achievement, len(s.doc.Achievements))
	copy(out, s.doc.Achievements)
	return out
}
