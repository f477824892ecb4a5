package models

import "time"

// Placement represents a placement offer attached to one of the user's three
// placement slots.
type Placement struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	Company   string    `json:"company" db:"company"`
	Role      string    `json:"role" db:"role"`
	DocRef    DocRef    `json:"doc" db:"doc_ref"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Internship represents an internship record in the database
type Internship struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	Company   string    `json:"company" db:"company"`
	Role      string    `json:"role" db:"role"`
	StartDate time.Time `json:"startDate" db:"start_date"`
	EndDate   time.Time `json:"endDate" db:"end_date"`
	DocRef    DocRef    `json:"doc" db:"doc_ref"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// HigherEducation represents a higher education record in the database
type HigherEducation struct {
	ID           int64     `json:"id" db:"id"`
	StudentID    int64     `json:"studentId" db:"student_id"`
	Institution  string    `json:"institution" db:"institution"`
	Degree       string    `json:"degree" db:"degree"`
	FieldOfStudy string    `json:"fieldOfStudy" db:"field_of_study"`
	StartDate    time.Time `json:"startDate" db:"start_date"`
	EndDate      time.Time `json:"endDate" db:"end_date"`
	DocRef       DocRef    `json:"doc" db:"doc_ref"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// Project represents a project record in the database
type Project struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	DocRef      DocRef    `json:"doc" db:"doc_ref"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// Award represents an award record in the database
type Award struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	DocRef      DocRef    `json:"doc" db:"doc_ref"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// Exam represents a competitive exam record in the database
type Exam struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	Name      string    `json:"name" db:"name"`
	Score     string    `json:"score" db:"score"`
	DocRef    DocRef    `json:"doc" db:"doc_ref"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
