package repository

import (
	"context"

	"github.com/campuskit/acadsched-api/internal/models"
)

// ReportSource aggregates the master data repositories behind the single
// lookup surface report snapshots are built from.
type ReportSource struct {
	subjects   *SubjectRepository
	sections   *SectionRepository
	rooms      *RoomRepository
	faculty    *FacultyRepository
	timeBlocks *TimeBlockRepository
}

// NewReportSource constructs a report source over the given repositories.
func NewReportSource(subjects *SubjectRepository, sections *SectionRepository, rooms *RoomRepository, faculty *FacultyRepository, timeBlocks *TimeBlockRepository) *ReportSource {
	return &ReportSource{
		subjects:   subjects,
		sections:   sections,
		rooms:      rooms,
		faculty:    faculty,
		timeBlocks: timeBlocks,
	}
}

func (s *ReportSource) ListAllSubjects(ctx context.Context) ([]models.Subject, error) {
	return s.subjects.ListAll(ctx)
}

func (s *ReportSource) ListSectionsByTerm(ctx context.Context, termID string) ([]models.Section, error) {
	return s.sections.ListByTerm(ctx, termID)
}

func (s *ReportSource) ListAllRooms(ctx context.Context) ([]models.Room, error) {
	return s.rooms.ListAll(ctx)
}

func (s *ReportSource) ListAllFaculty(ctx context.Context) ([]models.FacultyUser, error) {
	return s.faculty.ListAll(ctx)
}

func (s *ReportSource) ListAllFacultyProfiles(ctx context.Context) ([]models.FacultyProfile, error) {
	return s.faculty.ListAllProfiles(ctx)
}

func (s *ReportSource) ListTimeBlocksByTerm(ctx context.Context, termID string) ([]models.TimeBlock, error) {
	return s.timeBlocks.ListByTerm(ctx, termID)
}
