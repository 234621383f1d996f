package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"nutrifit/session"
	"nutrifit/store"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: nutrifit <command> [flags]

commands:
  register      create an account on the server
  login         sign in and cache the session
  logout        clear the cached session
  whoami        show the current session state
  dashboard     print the local dashboard summary
  add-workout   log a workout to the local store
  stats         workout stats over a trailing window
  progress      (date, value) series for weight/steps/workouts
  achievements  evaluate and list achievements`)
	os.Exit(2)
}

func dataDir() string {
	if dir := os.Getenv("NUTRIFIT_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".nutrifit"
	}
	return filepath.Join(home, ".nutrifit")
}

func apiBase() string {
	if base := os.Getenv("NUTRIFIT_API"); base != "" {
		return base
	}
	return "http://localhost:8080"
}

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage()
	}

	storage, err := store.NewFileStorage(dataDir())
	if err != nil {
		log.Fatalf("open data dir: %v", err)
	}

	ctx := context.Background()
	machine := session.New(session.NewClient(apiBase()), storage, session.LogNotifier{})

	switch os.Args[1] {
	case "register":
		fs := flag.NewFlagSet("register", flag.ExitOnError)
		name := fs.String("name", "", "display name")
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		fs.Parse(os.Args[2:])
		if err := machine.Register(ctx, session.RegisterInput{Name: *name, Email: *email, Password: *password}); err != nil {
			os.Exit(1)
		}

	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		fs.Parse(os.Args[2:])
		if err := machine.Login(ctx, *email, *password); err != nil {
			os.Exit(1)
		}

	case "logout":
		machine.Logout()
		log.Println("logged out")

	case "whoami":
		machine.Initialize(ctx)
		switch s := machine.State().(type) {
		case session.Authenticated:
			log.Printf("signed in as %s <%s>", s.User.Name, s.User.Email)
		default:
			log.Println("not signed in")
		}

	case "dashboard":
		st := openStore(storage)
		d := st.Dashboard()
		log.Printf("this week: %d workouts, %d min, %.0f kcal",
			d.WeeklyStats.Count, d.WeeklyStats.TotalDuration, d.WeeklyStats.TotalCalories)
		log.Printf("today: %.0f kcal eaten, %.0f glasses of water", d.Nutrition.Totals.Calories, d.Nutrition.Water)
		log.Printf("streak: %d day(s); weight %.1f → %.1f kg",
			d.Streaks.Workout.Current, d.Summary.CurrentWeight, d.Summary.TargetWeight)
		for _, g := range d.ActiveGoals {
			log.Printf("goal: %s — %.0f%%", g.Title, g.Progress)
		}

	case "add-workout":
		fs := flag.NewFlagSet("add-workout", flag.ExitOnError)
		title := fs.String("title", "", "workout title")
		typ := fs.String("type", "mixed", "strength|cardio|flexibility|sports|mixed")
		duration := fs.Int("duration", 30, "duration in minutes")
		calories := fs.Float64("calories", 0, "calories burned")
		notes := fs.String("notes", "", "notes")
		fs.Parse(os.Args[2:])

		st := openStore(storage)
		w, err := st.AddWorkout(store.Workout{
			Title:          *title,
			Type:           store.WorkoutType(*typ),
			Duration:       *duration,
			CaloriesBurned: *calories,
			Notes:          *notes,
		})
		if err != nil {
			log.Fatalf("add workout: %v", err)
		}
		log.Printf("logged %q (%s)", w.Title, w.ID)

		if unlocked, err := st.CheckAndUnlockAchievements(); err == nil {
			for _, a := range unlocked {
				log.Printf("achievement unlocked: %s %s", a.Icon, a.Title)
			}
		}

	case "stats":
		fs := flag.NewFlagSet("stats", flag.ExitOnError)
		days := fs.Int("days", 7, "trailing window in days")
		fs.Parse(os.Args[2:])

		st := openStore(storage)
		stats := st.WorkoutStats(*days)
		log.Printf("%d workouts in the last %d day(s)", stats.Count, *days)
		log.Printf("total: %d min, %.0f kcal; average: %.1f min, %.1f kcal",
			stats.TotalDuration, stats.TotalCalories, stats.AverageDuration, stats.AverageCalories)
		for typ, n := range stats.CountByType {
			log.Printf("  %s: %d", typ, n)
		}

	case "progress":
		fs := flag.NewFlagSet("progress", flag.ExitOnError)
		metric := fs.String("metric", "weight", "weight|steps|workouts")
		days := fs.Int("days", 30, "trailing window in days")
		fs.Parse(os.Args[2:])

		st := openStore(storage)
		for _, p := range st.ProgressData(*metric, *days) {
			log.Printf("%s  %.1f", p.Date, p.Value)
		}

	case "achievements":
		st := openStore(storage)
		if _, err := st.CheckAndUnlockAchievements(); err != nil {
			log.Fatalf("evaluate achievements: %v", err)
		}
		for _, a := range st.Achievements() {
			mark := " "
			if a.Earned {
				mark = "x"
			}
			log.Printf("[%s] %s %s — %s", mark, a.Icon, a.Title, a.Description)
		}

	default:
		usage()
	}
}

func openStore(storage store.Storage) *store.Store {
	st, err := store.Open(storage)
	if err != nil {
		log.Fatalf("open fitness store: %v", err)
	}
	return st
}
