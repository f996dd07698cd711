package achievements

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/testplus/internal/history"
	"github.com/abhisek/testplus/internal/screen/screentest"
)

func TestAchievementsScreen(t *testing.T) {
	svc := screentest.Services(t, &screentest.Generator{})
	if !strings.Contains(New(svc.Stats).View(100, 60), "0 of 7 unlocked") {
		t.Fatal("fresh profile should have nothing unlocked")
	}

	r := history.SessionResult{ID: "r1", Topic: "Biology", Date: time.Now(), Score: 5, TotalQuestions: 5, Accuracy: 100}
	if _, err := svc.Stats.RecordSession(context.Background(), r); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}

	view := New(svc.Stats).View(100, 60)
	if !strings.Contains(view, "2 of 7 unlocked") {
		t.Errorf("expected first steps and sniper unlocked:\n%s", view)
	}
}
