package results

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/testplus/internal/history"
	"github.com/abhisek/testplus/internal/rewards"
	"github.com/abhisek/testplus/internal/router"
	"github.com/abhisek/testplus/internal/screen"
	"github.com/abhisek/testplus/internal/screen/screentest"
	"github.com/abhisek/testplus/internal/screens/flashcards"
	"github.com/abhisek/testplus/internal/stats"
)

func testResult(weak ...string) history.SessionResult {
	return history.SessionResult{
		ID:               "r1",
		Topic:            "Biology",
		Score:            3,
		TotalQuestions:   5,
		Accuracy:         60,
		TimeSpentSeconds: 95,
		WeakTags:         weak,
		CoinsEarned:      30,
	}
}

func newTestResults(t *testing.T, result history.SessionResult, outcome stats.Outcome, retry RetryFunc) *ResultsScreen {
	t.Helper()
	svc := screentest.Services(t, &screentest.Generator{})
	return New(svc, screentest.Content("Biology", 5), result, outcome, retry)
}

func TestResultsScreen_View(t *testing.T) {
	first, _ := rewards.Lookup(rewards.FirstSteps)
	outcome := stats.Outcome{
		SessionXP:       50,
		LevelBefore:     rewards.LevelInfoFor(0),
		LevelAfter:      rewards.LevelInfoFor(250),
		NewAchievements: []rewards.Achievement{first},
	}
	r := newTestResults(t, testResult("cells", "osmosis"), outcome, nil)

	view := r.View(100, 60)
	for _, want := range []string{"Score 3/5", "Accuracy 60%", "Time 1:35", "+50 XP", "Level up!", "cells · osmosis", first.Name, "Study plan"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestResultsScreen_NoWeakTags(t *testing.T) {
	r := newTestResults(t, testResult(), stats.Outcome{}, nil)
	if !strings.Contains(r.View(100, 60), "No weak areas detected") {
		t.Error("expected perfect message")
	}
}

func TestResultsScreen_Retry(t *testing.T) {
	var calls int
	target := flashcards.New("x", nil)
	r := newTestResults(t, testResult(), stats.Outcome{}, func() (screen.Screen, error) {
		calls++
		return target, nil
	})

	_, cmd := r.Update(screentest.Key("enter"))
	msgs := screentest.Drain(cmd)
	if calls != 1 || len(msgs) != 1 {
		t.Fatalf("calls = %d, msgs = %d", calls, len(msgs))
	}
	if msg, ok := msgs[0].(router.ReplaceScreenMsg); !ok || msg.Screen != target {
		t.Fatalf("expected replace with retry screen, got %#v", msgs[0])
	}
}

func TestResultsScreen_RetryError(t *testing.T) {
	r := newTestResults(t, testResult(), stats.Outcome{}, func() (screen.Screen, error) {
		return nil, errors.New("boom")
	})
	_, cmd := r.Update(screentest.Key("enter"))
	if cmd != nil {
		t.Fatal("expected no navigation on retry failure")
	}
	if !strings.Contains(r.View(100, 60), "boom") {
		t.Error("expected retry error in view")
	}
}

func TestResultsScreen_FlashcardsAndHome(t *testing.T) {
	r := newTestResults(t, testResult(), stats.Outcome{}, nil)

	// Retry is disabled without a retry func, so the cursor starts on flashcards.
	_, cmd := r.Update(screentest.Key("enter"))
	msgs := screentest.Drain(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	push, ok := msgs[0].(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msgs[0])
	}
	if _, ok := push.Screen.(*flashcards.FlashcardsScreen); !ok {
		t.Fatalf("expected flashcards screen, got %T", push.Screen)
	}

	r.Update(screentest.Key("down"))
	_, cmd = r.Update(screentest.Key("enter"))
	msgs = screentest.Drain(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	if _, ok := msgs[0].(router.PopToRootMsg); !ok {
		t.Fatalf("expected PopToRootMsg, got %T", msgs[0])
	}
}
