package seed

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/models"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/services"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/store"
)

type discardBroadcaster struct{ events int }

func (d *discardBroadcaster) Commit(fn func() []models.BroadcastEvent) {
	d.events += len(fn())
}

func TestCreateDefaultData(t *testing.T) {
	st := store.New()
	b := &discardBroadcaster{}
	portal := services.NewPortalService(st, b)

	if err := CreateDefaultData(context.Background(), portal, zerolog.New(io.Discard)); err != nil {
		t.Fatalf("CreateDefaultData: %v", err)
	}

	snap := st.Snapshot()
	if snap.Analytics.TotalStudents != len(snap.Students) || len(snap.Students) == 0 {
		t.Errorf("students = %d, counter = %d", len(snap.Students), snap.Analytics.TotalStudents)
	}
	if snap.Analytics.TotalAlumni != len(snap.Alumni) || len(snap.Alumni) == 0 {
		t.Errorf("alumni = %d, counter = %d", len(snap.Alumni), snap.Analytics.TotalAlumni)
	}
	if snap.Analytics.TotalEvents != len(snap.Events) || snap.Analytics.ActiveMentorships != len(snap.MentorshipSessions) {
		t.Errorf("counters out of step: %+v", snap.Analytics)
	}
	if snap.Analytics.TotalNotifications != len(snap.Notifications) {
		t.Errorf("notifications = %d", len(snap.Notifications))
	}
	if snap.Students[2].Branch != models.DefaultNotSpecified {
		t.Errorf("defaults not applied: %+v", snap.Students[2])
	}
}
