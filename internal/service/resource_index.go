package service

import "github.com/campuskit/acadsched-api/internal/models"

// ReportSnapshot is the immutable slice of master data a report run works on.
// Every report function is a pure function of one snapshot; callers fetch the
// lists once and hand them over, so recomputation is idempotent.
type ReportSnapshot struct {
	Offerings  []models.ClassOffering
	Meetings   []models.ClassMeeting
	Subjects   []models.Subject
	Sections   []models.Section
	Rooms      []models.Room
	Faculty    []models.FacultyUser
	Profiles   []models.FacultyProfile
	TimeBlocks []models.TimeBlock
}

// resourceIndex provides O(1) label resolution over a snapshot. Lookups for
// unknown ids report ok=false; consumers substitute display fallbacks instead
// of failing. Duplicate ids resolve last-write-wins.
type resourceIndex struct {
	subjects  map[string]models.Subject
	sections  map[string]models.Section
	rooms     map[string]models.Room
	faculty   map[string]models.FacultyUser
	profiles  map[string]models.FacultyProfile
	offerings map[string]models.ClassOffering
}

func newResourceIndex(snap ReportSnapshot) *resourceIndex {
	idx := &resourceIndex{
		subjects:  make(map[string]models.Subject, len(snap.Subjects)),
		sections:  make(map[string]models.Section, len(snap.Sections)),
		rooms:     make(map[string]models.Room, len(snap.Rooms)),
		faculty:   make(map[string]models.FacultyUser, len(snap.Faculty)),
		profiles:  make(map[string]models.FacultyProfile, len(snap.Profiles)),
		offerings: make(map[string]models.ClassOffering, len(snap.Offerings)),
	}
	for _, s := range snap.Subjects {
		idx.subjects[s.ID] = s
	}
	for _, s := range snap.Sections {
		idx.sections[s.ID] = s
	}
	for _, r := range snap.Rooms {
		idx.rooms[r.ID] = r
	}
	for _, f := range snap.Faculty {
		idx.faculty[f.UserID] = f
	}
	for _, p := range snap.Profiles {
		idx.profiles[p.UserID] = p
	}
	for _, o := range snap.Offerings {
		idx.offerings[o.ID] = o
	}
	return idx
}

func (idx *resourceIndex) subjectCode(id string) string {
	if s, ok := idx.subjects[id]; ok {
		return s.Code
	}
	return "SUBJ"
}

func (idx *resourceIndex) sectionName(id string) string {
	if s, ok := idx.sections[id]; ok {
		return s.Name
	}
	return "SEC"
}

func (idx *resourceIndex) facultyName(userID string) string {
	if f, ok := idx.faculty[userID]; ok {
		return f.Name
	}
	return "TBA"
}

func (idx *resourceIndex) roomCode(id string) string {
	if r, ok := idx.rooms[id]; ok {
		return r.Code
	}
	return "-"
}

// classLabel renders "{subjectCode} • {sectionName} • {facultyName}" for an
// offering, falling back to placeholder tokens for unresolved pieces.
func (idx *resourceIndex) classLabel(classID string) string {
	offering, ok := idx.offerings[classID]
	if !ok {
		return "SUBJ • SEC • TBA"
	}
	return idx.subjectCode(offering.SubjectID) + " • " +
		idx.sectionName(offering.SectionID) + " • " +
		idx.facultyName(offering.FacultyUserID)
}
