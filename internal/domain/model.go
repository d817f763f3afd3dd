package domain

import "time"

// Core domain models shared by services and adapters. HTTP payloads live in
// the http adapter; keep these decoupled from transport.

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// StatusFrom parses a stored or user supplied status.
func StatusFrom(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), true
	default:
		return "", false
	}
}

// Terminal reports whether no lifecycle transition may leave the status.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderOther   Gender = "other"
	GenderUnknown Gender = "unknown"
)

type Case struct {
	ID                    string
	FullName              string
	FullNameKana          *string
	Gender                Gender
	BirthDate             *time.Time
	PhoneLast4            *string
	OccurrenceDate        *time.Time
	NarrativeText         string
	EvidencePaths         []string
	Status                Status
	RiskScore             int
	DecidedBy             *string
	DecidedAt             *time.Time
	RejectionReason       *string
	RegisteredCompanyID   string
	// RegisteredCompanyName is joined on read and never written.
	RegisteredCompanyName string
	RegisteredByUserID    string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// CaseDetails are the descriptive fields a submitter may set or edit.
type CaseDetails struct {
	FullName       string
	FullNameKana   *string
	Gender         Gender
	BirthDate      *time.Time
	PhoneLast4     *string
	OccurrenceDate *time.Time
	NarrativeText  string
	EvidencePaths  []string
}

// CaseFilter narrows case listings. Zero values mean "any".
type CaseFilter struct {
	Status    *Status
	BirthDate *time.Time
	CompanyID string
	Limit     int
}

type Company struct {
	ID        string
	Name      string
	IsMain    bool
	CreatedAt time.Time
}

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
)

type User struct {
	ID          string
	DisplayName string
	CompanyID   *string
	CompanyName *string
	Role        Role
	IsApproved  bool
	CreatedAt   time.Time
}

// Actor is the authenticated identity performing a request. It is resolved
// once per request and passed explicitly to every operation.
type Actor struct {
	UserID    string
	CompanyID string
	Admin     bool
	Approved  bool
}

// Overview holds the admin dashboard counters.
type Overview struct {
	PendingCases int
	PendingUsers int
	Companies    int
}
