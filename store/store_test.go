package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *MemoryStorage) {
	t.Helper()
	storage := NewMemoryStorage()
	s, err := Open(storage)
	require.NoError(t, err)
	return s, storage
}

func TestOpenSeedsOnFirstAccess(t *testing.T) {
	s, storage := newTestStore(t)

	require.Len(t, s.Workouts(), 3)
	require.Len(t, s.Goals(), 3)
	require.Len(t, s.Achievements(), 3)
	require.NotEmpty(t, s.Profile().Name)

	_, ok := storage.GetItem(documentKey)
	require.True(t, ok, "seeding must persist the document")
}

func TestOpenDoesNotReseedExistingDocument(t *testing.T) {
	s, storage := newTestStore(t)

	w, err := s.AddWorkout(Workout{Title: "Swim", Type: Cardio, Duration: 40})
	require.NoError(t, err)

	reopened, err := Open(storage)
	require.NoError(t, err)
	workouts := reopened.Workouts()
	require.Len(t, workouts, 4)
	require.Equal(t, w.ID, workouts[0].ID, "newest-first ordering survives reload")
}

func TestOpenReseedsCorruptDocument(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.SetItem(documentKey, "{not json"))

	s, err := Open(storage)
	require.NoError(t, err)
	require.Len(t, s.Workouts(), 3, "corrupt document is treated as first access")
}

func TestOpenReseedsUnknownSchemaVersion(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.SetItem(documentKey, `{"schema_version": 999}`))

	s, err := Open(storage)
	require.NoError(t, err)
	require.Len(t, s.Goals(), 3)
}

func TestAddWorkoutAssignsDistinctIDs(t *testing.T) {
	s, _ := newTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		w, err := s.AddWorkout(Workout{Title: "Run", Type: Cardio})
		require.NoError(t, err)
		require.NotEmpty(t, w.ID)
		require.False(t, seen[w.ID], "id %s assigned twice", w.ID)
		seen[w.ID] = true
	}
}

func TestAddWorkoutDefaultsDateToNow(t *testing.T) {
	s, _ := newTestStore(t)
	fixed := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)
	s.now = func() time.Time { return fixed }

	w, err := s.AddWorkout(Workout{Title: "Row", Type: Cardio})
	require.NoError(t, err)
	require.Equal(t, fixed, w.Date)
}

func TestUpdateWorkoutMergesPatch(t *testing.T) {
	s, _ := newTestStore(t)
	w, err := s.AddWorkout(Workout{Title: "Leg Day", Type: Strength, Duration: 45, CaloriesBurned: 300})
	require.NoError(t, err)

	newTitle := "Leg Day (heavy)"
	newCalories := 410.0
	updated, err := s.UpdateWorkout(w.ID, WorkoutPatch{Title: &newTitle, CaloriesBurned: &newCalories})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, "Leg Day (heavy)", updated.Title)
	require.Equal(t, 410.0, updated.CaloriesBurned)
	require.Equal(t, 45, updated.Duration, "unpatched fields unchanged")
	require.Equal(t, Strength, updated.Type)
}

func TestUpdateWorkoutUnknownIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)

	title := "ghost"
	updated, err := s.UpdateWorkout("no-such-id", WorkoutPatch{Title: &title})
	require.NoError(t, err)
	require.Nil(t, updated)
}

func TestDeleteWorkout(t *testing.T) {
	s, _ := newTestStore(t)
	w, err := s.AddWorkout(Workout{Title: "Spin", Type: Cardio})
	require.NoError(t, err)
	before := len(s.Workouts())

	require.NoError(t, s.DeleteWorkout(w.ID))
	require.Len(t, s.Workouts(), before-1)

	// deleting a missing id is silent
	require.NoError(t, s.DeleteWorkout(w.ID))
	require.Len(t, s.Workouts(), before-1)
}

func TestUpdateProfileRoundTrip(t *testing.T) {
	s, storage := newTestStore(t)
	original := s.Profile()

	name := "Jordan Lee"
	weight := 70.2
	_, err := s.UpdateProfile(ProfilePatch{Name: &name, Weight: &weight})
	require.NoError(t, err)

	reopened, err := Open(storage)
	require.NoError(t, err)
	p := reopened.Profile()
	require.Equal(t, "Jordan Lee", p.Name)
	require.Equal(t, 70.2, p.Weight)
	require.Equal(t, original.Email, p.Email, "unpatched fields survive the round trip")
	require.Equal(t, original.Height, p.Height)
}

func TestGoalProgressDerivation(t *testing.T) {
	loss := Goal{Type: WeightLoss, StartValue: 80, TargetValue: 70, CurrentValue: 75}
	require.Equal(t, 50.0, GoalProgress(loss))

	// below target clamps at 100
	loss.CurrentValue = 65
	require.Equal(t, 100.0, GoalProgress(loss))

	// regression above the start clamps at 0
	loss.CurrentValue = 82
	require.Equal(t, 0.0, GoalProgress(loss))

	perf := Goal{Type: Performance, TargetValue: 10, CurrentValue: 4}
	require.Equal(t, 40.0, GoalProgress(perf))

	perf.CurrentValue = 15
	require.Equal(t, 100.0, GoalProgress(perf))

	require.Equal(t, 0.0, GoalProgress(Goal{Type: Custom, TargetValue: 0, CurrentValue: 3}))
}

func TestUpdateGoalRefreshesProgress(t *testing.T) {
	s, _ := newTestStore(t)
	g, err := s.AddGoal(Goal{Title: "Pull ups", Type: Performance, TargetValue: 20, CurrentValue: 5})
	require.NoError(t, err)
	require.Equal(t, 25.0, g.Progress)

	current := 10.0
	updated, err := s.UpdateGoal(g.ID, GoalPatch{CurrentValue: &current})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, 50.0, updated.Progress)
}

func TestStaleStoredProgressIsRederivedOnLoad(t *testing.T) {
	s, storage := newTestStore(t)
	g, err := s.AddGoal(Goal{Title: "Squat 100kg", Type: Performance, TargetValue: 100, CurrentValue: 80})
	require.NoError(t, err)

	// sabotage the persisted copy the way the legacy app sometimes did
	raw, ok := storage.GetItem(documentKey)
	require.True(t, ok)
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	for i := range doc.Goals {
		if doc.Goals[i].ID == g.ID {
			doc.Goals[i].Progress = 1
		}
	}
	b, err := json.Marshal(&doc)
	require.NoError(t, err)
	require.NoError(t, storage.SetItem(documentKey, string(b)))

	reopened, err := Open(storage)
	require.NoError(t, err)
	for _, goal := range reopened.Goals() {
		if goal.ID == g.ID {
			require.Equal(t, 80.0, goal.Progress, "stored progress is never trusted")
		}
	}
}

func TestAddHealthMetricReplacesSameDay(t *testing.T) {
	s, _ := newTestStore(t)
	fixed := time.Date(2026, 5, 2, 8, 0, 0, 0, time.Local)
	s.now = func() time.Time { return fixed }

	first, err := s.AddHealthMetric(HealthMetric{Steps: 1000})
	require.NoError(t, err)
	second, err := s.AddHealthMetric(HealthMetric{Steps: 9000})
	require.NoError(t, err)

	require.Equal(t, first.ID, second.ID, "same-day snapshot keeps its identity")
	require.Equal(t, 9000, s.TodaysMetrics().Steps)
}
