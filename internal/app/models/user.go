package models

import (
	"time"
)

// Student is a registered current student of the association
type Student struct {
	ID        int64     `json:"id" example:"1"`
	FirstName string    `json:"firstName" example:"Anjali"`
	LastName  string    `json:"lastName" example:"Murmu"`
	Email     string    `json:"email" example:"anjali@example.com"`
	College   string    `json:"college" example:"Jadavpur University"`
	Branch    string    `json:"branch" example:"Computer Science"` // "Not specified" when omitted
	Year      string    `json:"year" example:"3rd Year"`           // "Not specified" when omitted
	UserType  UserType  `json:"userType" example:"student"`
	JoinedAt  time.Time `json:"joinedAt" example:"2024-01-01T10:00:00Z"`
	IsOnline  bool      `json:"isOnline" example:"true"`
}

// Alumni is a registered former student of the association
type Alumni struct {
	ID             int64     `json:"id" example:"2"`
	FirstName      string    `json:"firstName" example:"Sagen"`
	LastName       string    `json:"lastName" example:"Hansda"`
	Email          string    `json:"email" example:"sagen@example.com"`
	College        string    `json:"college" example:"IIT Kharagpur"`
	GraduationYear string    `json:"graduationYear" example:"2019"`
	CurrentCompany string    `json:"currentCompany" example:"Infosys"`
	UserType       UserType  `json:"userType" example:"alumni"`
	JoinedAt       time.Time `json:"joinedAt"`
	IsOnline       bool      `json:"isOnline"`
}
