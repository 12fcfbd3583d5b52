package services

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/models"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/store"
)

func newTestGenerator(cfg ActivityGeneratorConfig, opts ...ActivityGeneratorOption) (*ActivityGenerator, *store.Store, *recordingBroadcaster) {
	st := store.New()
	rec := &recordingBroadcaster{}
	return NewActivityGenerator(cfg, st, rec, zerolog.New(io.Discard), opts...), st, rec
}

// sequence returns the given choices in order, repeating the last one
func sequence(values ...int) func(int) int {
	i := 0
	return func(n int) int {
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v % n
	}
}

func TestActivityGenerator_LiveStatsFloorOfOne(t *testing.T) {
	// 0 maps to a delta of -1
	g, st, rec := newTestGenerator(ActivityGeneratorConfig{}, WithRandom(sequence(0)))

	g.pulseLiveStats()
	g.pulseLiveStats()

	if got := st.LiveStats().OnlineUsers; got != 1 {
		t.Errorf("onlineUsers = %d, want 1", got)
	}
	events := rec.Events()
	if len(events) != 2 || events[1].Name != models.EventLiveStatsUpdate {
		t.Fatalf("events = %v", rec.Names())
	}
	if events[1].Data.(models.LiveStats).OnlineUsers != 1 {
		t.Error("broadcast stats do not match the store")
	}
}

func TestActivityGenerator_LiveStatsDelta(t *testing.T) {
	g, st, _ := newTestGenerator(ActivityGeneratorConfig{}, WithRandom(sequence(2, 2, 1, 0)))

	for i := 0; i < 4; i++ {
		g.pulseLiveStats()
	}
	// 0 +1 +1 0 -1
	if got := st.LiveStats().OnlineUsers; got != 1 {
		t.Errorf("onlineUsers = %d, want 1", got)
	}

	g.pulseLiveStats()
	if got := st.LiveStats().OnlineUsers; got != 1 {
		t.Errorf("onlineUsers = %d, want floor 1", got)
	}
}

func TestActivityGenerator_MessagesLeaveStateAlone(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	g, st, rec := newTestGenerator(ActivityGeneratorConfig{},
		WithRandom(sequence(1)),
		WithGeneratorClock(func() time.Time { return now }),
	)
	before := st.Snapshot()

	g.emitActivity()
	g.emitMentorshipUpdate()

	events := rec.Events()
	if len(events) != 2 {
		t.Fatalf("events = %v", rec.Names())
	}

	activity := events[0].Data.(models.ActivityMessage)
	if events[0].Name != models.EventLiveActivity || activity.Message != organizationActivity[1].message {
		t.Errorf("unexpected activity %+v", events[0])
	}
	if activity.ID == "" || !activity.Timestamp.Equal(now) || activity.Icon == "" {
		t.Errorf("activity missing fields: %+v", activity)
	}

	update := events[1].Data.(models.ActivityMessage)
	if events[1].Name != models.EventMentorshipNews || update.Message != mentorshipActivity[1].message {
		t.Errorf("unexpected mentorship update %+v", events[1])
	}
	if update.ID == activity.ID {
		t.Error("ids should be unique per message")
	}

	after := st.Snapshot()
	if after.Analytics != before.Analytics || after.LiveStats != before.LiveStats {
		t.Error("activity messages must not touch counters")
	}
}

func TestActivityGenerator_StartStop(t *testing.T) {
	g, _, rec := newTestGenerator(ActivityGeneratorConfig{
		LiveStatsInterval:  5 * time.Millisecond,
		ActivityInterval:   5 * time.Millisecond,
		MentorshipInterval: 5 * time.Millisecond,
	})

	g.Start(context.Background())
	g.Start(context.Background())

	deadline := time.Now().Add(2 * time.Second)
	for {
		seen := map[string]bool{}
		for _, name := range rec.Names() {
			seen[name] = true
		}
		if seen[models.EventLiveStatsUpdate] && seen[models.EventLiveActivity] && seen[models.EventMentorshipNews] {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("generators did not all fire: %v", rec.Names())
		}
		time.Sleep(5 * time.Millisecond)
	}

	g.Stop()
	count := len(rec.Events())
	time.Sleep(30 * time.Millisecond)
	if got := len(rec.Events()); got != count {
		t.Errorf("events kept arriving after Stop: %d -> %d", count, got)
	}
	g.Stop()
}

func TestActivityGenerator_ContextCancel(t *testing.T) {
	g, _, _ := newTestGenerator(ActivityGeneratorConfig{
		LiveStatsInterval:  time.Millisecond,
		ActivityInterval:   time.Millisecond,
		MentorshipInterval: time.Millisecond,
	})
	ctx, cancel := context.WithCancel(context.Background())
	g.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("goroutines still running after cancel")
	}
}
