package service

import (
	"sort"

	"github.com/campuskit/acadsched-api/internal/dto"
	"github.com/campuskit/acadsched-api/pkg/timeutil"
)

// BuildScheduleRows flattens meetings into display-ready rows by joining each
// meeting to its offering and resolving subject, section, faculty and room
// labels. Meetings whose offering cannot be resolved are dropped, since no
// meaningful labels exist for them.
func BuildScheduleRows(snap ReportSnapshot) []dto.ScheduleRow {
	idx := newResourceIndex(snap)

	rows := make([]dto.ScheduleRow, 0, len(snap.Meetings))
	for _, m := range snap.Meetings {
		offering, ok := idx.offerings[m.ClassID]
		if !ok {
			continue
		}
		rows = append(rows, dto.ScheduleRow{
			SectionName:  idx.sectionName(offering.SectionID),
			SubjectCode:  idx.subjectCode(offering.SubjectID),
			SubjectTitle: subjectTitle(idx, offering.SubjectID),
			FacultyName:  idx.facultyName(offering.FacultyUserID),
			DayOfWeek:    m.DayOfWeek,
			StartTime:    m.StartTime,
			EndTime:      m.EndTime,
			RoomCode:     idx.roomCode(m.RoomID),
			MeetingType:  string(m.MeetingType),
			ClassID:      m.ClassID,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.SectionName != b.SectionName {
			return a.SectionName < b.SectionName
		}
		if a.DayOfWeek != b.DayOfWeek {
			return a.DayOfWeek < b.DayOfWeek
		}
		if sa, sb := timeutil.ParseClock(a.StartTime), timeutil.ParseClock(b.StartTime); sa != sb {
			return sa < sb
		}
		return a.SubjectCode < b.SubjectCode
	})
	return rows
}

func subjectTitle(idx *resourceIndex, subjectID string) string {
	if s, ok := idx.subjects[subjectID]; ok {
		return s.Title
	}
	return "Unknown"
}
