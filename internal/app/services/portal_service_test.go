package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/models"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/models/dto"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/store"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/pkg/apperrors"
)

func newTestPortal() (PortalService, *store.Store, *recordingBroadcaster) {
	st := store.New()
	rec := &recordingBroadcaster{}
	return NewPortalService(st, rec), st, rec
}

func TestPortalService_CreateStudent(t *testing.T) {
	svc, st, rec := newTestPortal()

	student, err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		FirstName: "Anjali",
		LastName:  "Murmu",
		Email:     "anjali@example.com",
		College:   "Jadavpur University",
	})
	if err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}

	if student.ID == 0 {
		t.Error("expected an assigned id")
	}
	if student.Branch != models.DefaultNotSpecified || student.Year != models.DefaultNotSpecified {
		t.Errorf("defaults not applied: branch=%q year=%q", student.Branch, student.Year)
	}
	if !student.IsOnline || student.UserType != models.UserTypeStudent {
		t.Errorf("unexpected student %+v", student)
	}

	if got := st.Analytics().TotalStudents; got != 1 {
		t.Errorf("totalStudents = %d, want 1", got)
	}
	if got := st.LiveStats().TodayRegistrations; got != 1 {
		t.Errorf("todayRegistrations = %d, want 1", got)
	}

	want := []string{models.EventNewStudent, models.EventAnalyticsUpdate}
	if names := rec.Names(); !reflect.DeepEqual(names, want) {
		t.Fatalf("broadcasts = %v, want %v", names, want)
	}
	events := rec.Events()
	if events[0].Data.(models.Student).ID != student.ID {
		t.Error("new_student payload does not carry the created record")
	}
	if events[1].Data.(models.Analytics).TotalStudents != 1 {
		t.Error("analytics_update payload is stale")
	}
}

func TestPortalService_EveryCreateBroadcastsRecordThenAnalytics(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name   string
		kind   string
		create func(PortalService) (int64, error)
		// payloadID extracts the id from the record broadcast
		payloadID func(interface{}) int64
		counter   func(models.Analytics) int
		length    func(*store.Store) int
	}{
		{
			name: "student",
			kind: models.EventNewStudent,
			create: func(svc PortalService) (int64, error) {
				rec, err := svc.CreateStudent(ctx, &dto.CreateStudentRequest{FirstName: "A", LastName: "B", Email: "a@b.com", College: "X"})
				if err != nil {
					return 0, err
				}
				return rec.ID, nil
			},
			payloadID: func(d interface{}) int64 { return d.(models.Student).ID },
			counter:   func(a models.Analytics) int { return a.TotalStudents },
			length:    func(st *store.Store) int { return len(st.Students()) },
		},
		{
			name: "alumni",
			kind: models.EventNewAlumni,
			create: func(svc PortalService) (int64, error) {
				rec, err := svc.CreateAlumni(ctx, &dto.CreateAlumniRequest{FirstName: "A", LastName: "B", Email: "a@b.com", College: "X"})
				if err != nil {
					return 0, err
				}
				return rec.ID, nil
			},
			payloadID: func(d interface{}) int64 { return d.(models.Alumni).ID },
			counter:   func(a models.Analytics) int { return a.TotalAlumni },
			length:    func(st *store.Store) int { return len(st.Alumni()) },
		},
		{
			name: "event",
			kind: models.EventNewEvent,
			create: func(svc PortalService) (int64, error) {
				rec, err := svc.CreateEvent(ctx, &dto.CreateEventRequest{Title: "T", Description: "D", Date: "2024-12-20"})
				if err != nil {
					return 0, err
				}
				return rec.ID, nil
			},
			payloadID: func(d interface{}) int64 { return d.(models.Event).ID },
			counter:   func(a models.Analytics) int { return a.TotalEvents },
			length:    func(st *store.Store) int { return len(st.Events()) },
		},
		{
			name: "mentorship",
			kind: models.EventNewMentorship,
			create: func(svc PortalService) (int64, error) {
				rec, err := svc.CreateMentorship(ctx, &dto.CreateMentorshipRequest{StudentName: "A", MentorName: "B", Topic: "C"})
				if err != nil {
					return 0, err
				}
				return rec.ID, nil
			},
			payloadID: func(d interface{}) int64 { return d.(models.MentorshipSession).ID },
			counter:   func(a models.Analytics) int { return a.ActiveMentorships },
			length:    func(st *store.Store) int { return len(st.Mentorships()) },
		},
		{
			name: "notification",
			kind: models.EventNewNotification,
			create: func(svc PortalService) (int64, error) {
				rec, err := svc.CreateNotification(ctx, &dto.CreateNotificationRequest{Title: "T", Message: "M"})
				if err != nil {
					return 0, err
				}
				return rec.ID, nil
			},
			payloadID: func(d interface{}) int64 { return d.(models.Notification).ID },
			counter:   func(a models.Analytics) int { return a.TotalNotifications },
			length:    func(st *store.Store) int { return len(st.Notifications()) },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, st, rec := newTestPortal()

			for i := 1; i <= 2; i++ {
				before := len(rec.Events())
				id, err := tc.create(svc)
				if err != nil {
					t.Fatalf("create: %v", err)
				}

				events := rec.Events()[before:]
				if len(events) != 2 || events[0].Name != tc.kind || events[1].Name != models.EventAnalyticsUpdate {
					t.Fatalf("broadcasts = %v, want [%s %s]", rec.Names()[before:], tc.kind, models.EventAnalyticsUpdate)
				}
				if got := tc.payloadID(events[0].Data); got != id {
					t.Errorf("payload id = %d, want %d", got, id)
				}
				analytics := events[1].Data.(models.Analytics)
				if tc.counter(analytics) != i || tc.length(st) != i {
					t.Errorf("counter = %d, collection = %d, want %d", tc.counter(analytics), tc.length(st), i)
				}
			}
		})
	}
}

func TestPortalService_ValidationLeavesStateUntouched(t *testing.T) {
	svc, st, rec := newTestPortal()
	ctx := context.Background()

	cases := []struct {
		name    string
		call    func() error
		message string
	}{
		{"student", func() error {
			_, err := svc.CreateStudent(ctx, &dto.CreateStudentRequest{FirstName: "A", LastName: "B", Email: "a@b.com"})
			return err
		}, "First name, last name, email, and college are required"},
		{"alumni", func() error {
			_, err := svc.CreateAlumni(ctx, &dto.CreateAlumniRequest{FirstName: "A", LastName: "B", College: "X"})
			return err
		}, "First name, last name, email, and college are required"},
		{"event", func() error {
			_, err := svc.CreateEvent(ctx, &dto.CreateEventRequest{Title: "Meet", Description: "Annual"})
			return err
		}, "Title, description, and date are required"},
		{"mentorship", func() error {
			_, err := svc.CreateMentorship(ctx, &dto.CreateMentorshipRequest{StudentName: "A", MentorName: "B"})
			return err
		}, "Student name, mentor name, and topic are required"},
		{"notification", func() error {
			_, err := svc.CreateNotification(ctx, &dto.CreateNotificationRequest{Title: "Hi"})
			return err
		}, "Title and message are required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			if !apperrors.IsValidationError(err) {
				t.Fatalf("err = %v, want validation error", err)
			}
			if err.Error() != tc.message {
				t.Errorf("message = %q, want %q", err.Error(), tc.message)
			}
		})
	}

	if len(rec.Events()) != 0 {
		t.Errorf("rejected submissions broadcast %v", rec.Names())
	}
	if snap := st.Snapshot(); snap.Analytics != (models.Analytics{ServerStartTime: snap.Analytics.ServerStartTime}) {
		t.Errorf("counters changed: %+v", snap.Analytics)
	}
}

func TestPortalService_EventDefaults(t *testing.T) {
	svc, st, _ := newTestPortal()

	event, err := svc.CreateEvent(context.Background(), &dto.CreateEventRequest{
		Title:       "Annual Meet",
		Description: "Yearly gathering",
		Date:        "2024-12-20",
	})
	if err != nil {
		t.Fatal(err)
	}

	if event.Time != "18:00" || event.Location != "Online" || event.Category != "general" {
		t.Errorf("defaults not applied: %+v", event)
	}
	if event.Registrations != 0 {
		t.Errorf("registrations = %d, want 0", event.Registrations)
	}
	if st.Analytics().TotalEvents != 1 || st.LiveStats().TodayEvents != 1 {
		t.Error("event counters not incremented")
	}
}

func TestPortalService_MentorshipDuration(t *testing.T) {
	svc, st, _ := newTestPortal()
	ctx := context.Background()
	base := dto.CreateMentorshipRequest{StudentName: "A", MentorName: "B", Topic: "Careers"}

	session, err := svc.CreateMentorship(ctx, &base)
	if err != nil {
		t.Fatal(err)
	}
	if session.Duration != 60 || session.Status != "scheduled" {
		t.Errorf("defaults not applied: %+v", session)
	}

	withDuration := base
	withDuration.Duration = 90
	session, err = svc.CreateMentorship(ctx, &withDuration)
	if err != nil {
		t.Fatal(err)
	}
	if session.Duration != 90 {
		t.Errorf("duration = %d, want 90", session.Duration)
	}

	if st.Analytics().ActiveMentorships != 2 || st.LiveStats().ActiveMentoringSessions != 2 {
		t.Error("mentorship counters out of step")
	}
}

func TestPortalService_AlumniAcceptsNumericYear(t *testing.T) {
	svc, _, rec := newTestPortal()

	alumni, err := svc.CreateAlumni(context.Background(), &dto.CreateAlumniRequest{
		FirstName:      "Sagen",
		LastName:       "Hansda",
		Email:          "sagen@example.com",
		College:        "IIT Kharagpur",
		GraduationYear: "2019",
	})
	if err != nil {
		t.Fatal(err)
	}
	if alumni.GraduationYear != "2019" || alumni.CurrentCompany != models.DefaultNotSpecified {
		t.Errorf("unexpected alumni %+v", alumni)
	}
	if names := rec.Names(); names[0] != models.EventNewAlumni {
		t.Errorf("first broadcast = %s", names[0])
	}
}

func TestPortalService_NotificationDefaults(t *testing.T) {
	svc, st, _ := newTestPortal()

	n, err := svc.CreateNotification(context.Background(), &dto.CreateNotificationRequest{Title: "Hi", Message: "Welcome"})
	if err != nil {
		t.Fatal(err)
	}
	if n.Type != "info" || n.TargetAudience != "all" || n.IsRead {
		t.Errorf("defaults not applied: %+v", n)
	}
	if st.Analytics().TotalNotifications != 1 {
		t.Error("totalNotifications not incremented")
	}
}

func TestPortalService_CancelledContext(t *testing.T) {
	svc, _, rec := newTestPortal()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.CreateNotification(ctx, &dto.CreateNotificationRequest{Title: "Hi", Message: "There"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if len(rec.Events()) != 0 {
		t.Error("cancelled request should not broadcast")
	}
}

func TestPortalService_Reads(t *testing.T) {
	svc, _, _ := newTestPortal()
	ctx := context.Background()

	if _, err := svc.CreateStudent(ctx, &dto.CreateStudentRequest{FirstName: "A", LastName: "B", Email: "a@b.com", College: "X"}); err != nil {
		t.Fatal(err)
	}

	if got := len(svc.GetStudents(ctx)); got != 1 {
		t.Errorf("students = %d, want 1", got)
	}
	if got := len(svc.GetAlumni(ctx)); got != 0 {
		t.Errorf("alumni = %d, want 0", got)
	}
	dash := svc.GetDashboard(ctx)
	if dash.Analytics.TotalStudents != 1 || len(dash.Students) != 1 {
		t.Errorf("dashboard out of step: %+v", dash.Analytics)
	}
	analytics, live := svc.GetAnalytics(ctx)
	if analytics.TotalStudents != 1 || live.TodayRegistrations != 1 {
		t.Errorf("analytics = %+v, live = %+v", analytics, live)
	}
}
