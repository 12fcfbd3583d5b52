package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/models/dto"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/services"
)

// CreateDefaultData fills an empty portal with demo records. It goes through
// the portal service so defaults and counters match live submissions.
// Individual failures are logged and joined; the rest still gets created.
func CreateDefaultData(ctx context.Context, portal services.PortalService, lgr zerolog.Logger) error {
	lgr.Info().Msg("Creating demo data...")
	var finalErr error

	collect := func(kind string, err error) {
		if err != nil {
			lgr.Error().Err(err).Str("kind", kind).Msg("Error creating demo record")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// --- Students --- //
	for _, req := range []dto.CreateStudentRequest{
		{FirstName: "Anjali", LastName: "Murmu", Email: "anjali.murmu@example.com", College: "Jadavpur University", Branch: "Computer Science", Year: "3rd Year"},
		{FirstName: "Rohit", LastName: "Soren", Email: "rohit.soren@example.com", College: "IIEST Shibpur", Branch: "Civil Engineering", Year: "2nd Year"},
		{FirstName: "Puja", LastName: "Tudu", Email: "puja.tudu@example.com", College: "NIT Durgapur"},
	} {
		_, err := portal.CreateStudent(ctx, &req)
		collect("student", err)
	}

	// --- Alumni --- //
	for _, req := range []dto.CreateAlumniRequest{
		{FirstName: "Sagen", LastName: "Hansda", Email: "sagen.hansda@example.com", College: "IIT Kharagpur", GraduationYear: "2019", CurrentCompany: "Infosys"},
		{FirstName: "Mamata", LastName: "Besra", Email: "mamata.besra@example.com", College: "Jadavpur University", GraduationYear: "2016", CurrentCompany: "TCS"},
	} {
		_, err := portal.CreateAlumni(ctx, &req)
		collect("alumni", err)
	}

	// --- Events --- //
	for _, req := range []dto.CreateEventRequest{
		{Title: "Annual Alumni Meet", Description: "Yearly gathering of students and alumni", Date: "2024-12-20", Location: "Kolkata", Category: "networking"},
		{Title: "Career Guidance Webinar", Description: "Placement preparation with alumni mentors", Date: "2024-11-10"},
	} {
		_, err := portal.CreateEvent(ctx, &req)
		collect("event", err)
	}

	// --- Mentorship --- //
	_, err := portal.CreateMentorship(ctx, &dto.CreateMentorshipRequest{
		StudentName: "Anjali Murmu",
		MentorName:  "Sagen Hansda",
		Topic:       "Software engineering interviews",
	})
	collect("mentorship", err)

	// --- Notifications --- //
	_, err = portal.CreateNotification(ctx, &dto.CreateNotificationRequest{
		Title:   "Welcome to SESWA",
		Message: "The portal is live. Register and join the community.",
	})
	collect("notification", err)

	if finalErr == nil {
		lgr.Info().Msg("Demo data created")
	}
	return finalErr
}
