package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store owns the fitness document. Every command runs read-modify-write
// under a single mutex and persists the whole document before returning, so
// the next caller always observes the previous caller's effects.
type Store struct {
	mu      sync.Mutex
	storage Storage
	doc     *Document
	now     func() time.Time
}

// Open loads the persisted document, or seeds the demonstration dataset on
// first access. A document that is missing, unparseable or written by an
// unknown schema version is treated the same way: discarded and reseeded.
func Open(storage Storage) (*Store, error) {
	s := &Store{storage: storage, now: time.Now}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// persistedDocument mirrors Document but defers nutrition decoding so both
// historical record shapes can be normalized (see normalize.go).
type persistedDocument struct {
	SchemaVersion int               `json:"schema_version"`
	Profile       Profile           `json:"profile"`
	Workouts      []Workout         `json:"workouts"`
	Nutrition     []json.RawMessage `json:"nutrition"`
	Metrics       []HealthMetric    `json:"metrics"`
	Goals         []Goal            `json:"goals"`
	Achievements  []Achievement     `json:"achievements"`
	Streaks       Streaks           `json:"streaks"`
}

func (s *Store) load() error {
	raw, ok := s.storage.GetItem(documentKey)
	if !ok {
		return s.reseed()
	}

	var pd persistedDocument
	if err := json.Unmarshal([]byte(raw), &pd); err != nil {
		return s.reseed()
	}
	if pd.SchemaVersion != SchemaVersion {
		return s.reseed()
	}
	nutrition, err := normalizeNutrition(pd.Nutrition)
	if err != nil {
		return s.reseed()
	}

	doc := &Document{
		SchemaVersion: pd.SchemaVersion,
		Profile:       pd.Profile,
		Workouts:      pd.Workouts,
		Nutrition:     nutrition,
		Metrics:       pd.Metrics,
		Goals:         pd.Goals,
		Achievements:  pd.Achievements,
		Streaks:       pd.Streaks,
	}
	// stored progress is never trusted; rederive on the way in
	for i := range doc.Goals {
		doc.Goals[i].Progress = GoalProgress(doc.Goals[i])
	}
	s.doc = doc
	return nil
}

func (s *Store) reseed() error {
	s.doc = seedDocument(s.now())
	return s.save()
}

func (s *Store) save() error {
	b, err := json.Marshal(s.doc)
	if err != nil {
		return fmt.Errorf("encode fitness document: %w", err)
	}
	if err := s.storage.SetItem(documentKey, string(b)); err != nil {
		return fmt.Errorf("persist fitness document: %w", err)
	}
	return nil
}

// ---------- profile ----------

type ProfilePatch struct {
	Name               *string        `json:"name"`
	Age                *int           `json:"age"`
	Gender             *string        `json:"gender"`
	Height             *float64       `json:"height"`
	Weight             *float64       `json:"weight"`
	TargetWeight       *float64       `json:"target_weight"`
	ActivityLevel      *ActivityLevel `json:"activity_level"`
	FitnessGoals       []string       `json:"fitness_goals"`
	DailyCalorieTarget *float64       `json:"daily_calorie_target"`
	DailyWaterTarget   *float64       `json:"daily_water_target"`
	Preferences        *Preferences   `json:"preferences"`
}

func (s *Store) Profile() Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Profile
}

// UpdateProfile merges the patch onto the profile; unset fields are left
// untouched.
func (s *Store) UpdateProfile(patch ProfilePatch) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &s.doc.Profile
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Age != nil {
		p.Age = *patch.Age
	}
	if patch.Gender != nil {
		p.Gender = *patch.Gender
	}
	if patch.Height != nil {
		p.Height = *patch.Height
	}
	if patch.Weight != nil {
		p.Weight = *patch.Weight
	}
	if patch.TargetWeight != nil {
		p.TargetWeight = *patch.TargetWeight
	}
	if patch.ActivityLevel != nil {
		p.ActivityLevel = *patch.ActivityLevel
	}
	if patch.FitnessGoals != nil {
		p.FitnessGoals = patch.FitnessGoals
	}
	if patch.DailyCalorieTarget != nil {
		p.DailyCalorieTarget = *patch.DailyCalorieTarget
	}
	if patch.DailyWaterTarget != nil {
		p.DailyWaterTarget = *patch.DailyWaterTarget
	}
	if patch.Preferences != nil {
		p.Preferences = *patch.Preferences
	}
	return *p, s.save()
}

// ---------- workouts ----------

// AddWorkout assigns a fresh id (and today's date when none is given) and
// prepends the workout, keeping the collection newest-first by convention.
func (s *Store) AddWorkout(w Workout) (Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w.ID = uuid.NewString()
	if w.Date.IsZero() {
		w.Date = s.now()
	}
	s.doc.Workouts = append([]Workout{w}, s.doc.Workouts...)
	return w, s.save()
}

type WorkoutPatch struct {
	Title          *string      `json:"title"`
	Description    *string      `json:"description"`
	Type           *WorkoutType `json:"type"`
	Date           *time.Time   `json:"date"`
	Duration       *int         `json:"duration"`
	Exercises      []Exercise   `json:"exercises"`
	CaloriesBurned *float64     `json:"calories_burned"`
	Notes          *string      `json:"notes"`
}

// UpdateWorkout shallow-merges the patch onto the matching workout. An
// unknown id is a no-op returning nil, not an error.
func (s *Store) UpdateWorkout(id string, patch WorkoutPatch) (*Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Workouts {
		if s.doc.Workouts[i].ID != id {
			continue
		}
		w := &s.doc.Workouts[i]
		if patch.Title != nil {
			w.Title = *patch.Title
		}
		if patch.Description != nil {
			w.Description = *patch.Description
		}
		if patch.Type != nil {
			w.Type = *patch.Type
		}
		if patch.Date != nil {
			w.Date = *patch.Date
		}
		if patch.Duration != nil {
			w.Duration = *patch.Duration
		}
		if patch.Exercises != nil {
			w.Exercises = patch.Exercises
		}
		if patch.CaloriesBurned != nil {
			w.CaloriesBurned = *patch.CaloriesBurned
		}
		if patch.Notes != nil {
			w.Notes = *patch.Notes
		}
		out := *w
		return &out, s.save()
	}
	return nil, nil
}

func (s *Store) DeleteWorkout(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Workouts {
		if s.doc.Workouts[i].ID == id {
			s.doc.Workouts = append(s.doc.Workouts[:i], s.doc.Workouts[i+1:]...)
			return s.save()
		}
	}
	return nil
}

func (s *Store) Workouts() []Workout {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Workout, len(s.doc.Workouts))
	copy(out, s.doc.Workouts)
	return out
}

// ---------- nutrition ----------

// AddNutritionEntry logs one meal. Deleting nutrition entries is routed
// through the server in the online flows; the local store only adds and
// updates.
func (s *Store) AddNutritionEntry(e NutritionEntry) (NutritionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = uuid.NewString()
	if e.Date.IsZero() {
		e.Date = s.now()
	}
	if e.MealType == "" {
		e.MealType = Snack
	}
	s.doc.Nutrition = append([]NutritionEntry{e}, s.doc.Nutrition...)
	return e, s.save()
}

type NutritionPatch struct {
	MealType *MealType  `json:"meal_type"`
	Items    []FoodItem `json:"food_items"`
	Water    *float64   `json:"water"`
}

func (s *Store) UpdateNutritionEntry(id string, patch NutritionPatch) (*NutritionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Nutrition {
		if s.doc.Nutrition[i].ID != id {
			continue
		}
		e := &s.doc.Nutrition[i]
		if patch.MealType != nil {
			e.MealType = *patch.MealType
		}
		if patch.Items != nil {
			e.Items = patch.Items
		}
		if patch.Water != nil {
			e.Water = *patch.Water
		}
		out := *e
		return &out, s.save()
	}
	return nil, nil
}

// ---------- health metrics ----------

// AddHealthMetric stores a snapshot keyed by its date; a second snapshot on
// the same date replaces the first so the "today" lookup stays a singleton.
func (s *Store) AddHealthMetric(m HealthMetric) (HealthMetric, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = uuid.NewString()
	if m.Date.IsZero() {
		m.Date = s.now()
	}
	key := dateKey(m.Date)
	for i := range s.doc.Metrics {
		if dateKey(s.doc.Metrics[i].Date) == key {
			m.ID = s.doc.Metrics[i].ID
			s.doc.Metrics[i] = m
			return m, s.save()
		}
	}
	s.doc.Metrics = append(s.doc.Metrics, m)
	return m, s.save()
}

// ---------- goals ----------

func (s *Store) AddGoal(g Goal) (Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g.ID = uuid.NewString()
	if g.Status == "" {
		g.Status = GoalActive
	}
	g.Progress = GoalProgress(g)
	s.doc.Goals = append(s.doc.Goals, g)
	return g, s.save()
}

type GoalPatch struct {
	Title        *string     `json:"title"`
	TargetValue  *float64    `json:"target_value"`
	CurrentValue *float64    `json:"current_value"`
	Deadline     *time.Time  `json:"deadline"`
	Status       *GoalStatus `json:"status"`
}

func (s *Store) UpdateGoal(id string, patch GoalPatch) (*Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Goals {
		if s.doc.Goals[i].ID != id {
			continue
		}
		g := &s.doc.Goals[i]
		if patch.Title != nil {
			g.Title = *patch.Title
		}
		if patch.TargetValue != nil {
			g.TargetValue = *patch.TargetValue
		}
		if patch.CurrentValue != nil {
			g.CurrentValue = *patch.CurrentValue
		}
		if patch.Deadline != nil {
			g.Deadline = *patch.Deadline
		}
		if patch.Status != nil {
			g.Status = *patch.Status
		}
		g.Progress = GoalProgress(*g)
		out := *g
		return &out, s.save()
	}
	return nil, nil
}

func (s *Store) DeleteGoal(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Goals {
		if s.doc.Goals[i].ID == id {
			s.doc.Goals = append(s.doc.Goals[:i], s.doc.Goals[i+1:]...)
			return s.save()
		}
	}
	return nil
}

func (s *Store) Goals() []Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Goal, len(s.doc.Goals))
	copy(out, s.doc.Goals)
	return out
}
