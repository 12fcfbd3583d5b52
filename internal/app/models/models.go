package models

// UserType distinguishes the two kinds of registered portal members
type UserType string

const (
	UserTypeStudent UserType = "student"
	UserTypeAlumni  UserType = "alumni"
)

// Defaults applied to optional fields that were omitted from a submission
const (
	DefaultNotSpecified       = "Not specified"
	DefaultEventTime          = "18:00"
	DefaultEventLocation      = "Online"
	DefaultEventCategory      = "general"
	DefaultMentorshipDuration = 60
	DefaultNotificationType   = "info"
	DefaultTargetAudience     = "all"
	MentorshipStatusScheduled = "scheduled"
)
