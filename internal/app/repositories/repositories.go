package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories combines all application repositories
type Repositories struct {
	UserRepository            *UserRepository
	PlacementRepository       *PlacementRepository
	InternshipRepository      *InternshipRepository
	HigherEducationRepository *HigherEducationRepository
	ProjectRepository         *ProjectRepository
	AwardRepository           *AwardRepository
	ExamRepository            *ExamRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:            NewUserRepository(db),
		PlacementRepository:       NewPlacementRepository(db),
		InternshipRepository:      NewInternshipRepository(db),
		HigherEducationRepository: NewHigherEducationRepository(db),
		ProjectRepository:         NewProjectRepository(db),
		AwardRepository:           NewAwardRepository(db),
		ExamRepository:            NewExamRepository(db),
	}
}
