package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoachReplyClassification(t *testing.T) {
	svc := NewCoachService()

	cases := []struct {
		message string
		want    string
	}{
		{"what should I eat after training?", "nutrition"},
		{"how much PROTEIN do I need", "nutrition"},
		{"best workout split for beginners", "workout"},
		{"should I go to the gym today", "workout"},
		{"I'm so tired lately", "sleep"},
		{"how much water per day", "hydration"},
		{"I feel stuck and want to give up", "motivation"},
		{"hello there", "general"},
	}
	for _, tc := range cases {
		category, reply := svc.Reply(tc.message)
		require.Equal(t, tc.want, category, "message: %q", tc.message)
		require.NotEmpty(t, reply)
	}
}

func TestCoachReplyComesFromMatchedPool(t *testing.T) {
	svc := NewCoachService()

	pool := map[string]bool{}
	for _, cat := range coachCategories {
		if cat.name == "sleep" {
			for _, r := range cat.replies {
				pool[r] = true
			}
		}
	}

	for i := 0; i < 20; i++ {
		_, reply := svc.Reply("my recovery feels off")
		require.True(t, pool[reply], "reply %q not from the sleep pool", reply)
	}
}

func TestCoachFallbackPool(t *testing.T) {
	svc := NewCoachService()

	pool := map[string]bool{}
	for _, r := range coachFallbacks {
		pool[r] = true
	}
	for i := 0; i < 10; i++ {
		category, reply := svc.Reply("xyzzy")
		require.Equal(t, "general", category)
		require.True(t, pool[reply])
	}
}
