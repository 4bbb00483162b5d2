package service

import (
	"sort"

	"github.com/campuskit/acadsched-api/internal/dto"
	"github.com/campuskit/acadsched-api/pkg/timeutil"
)

const unknownFacultyName = "Unknown Faculty"

type facultyLoadAcc struct {
	classes int
	units   int
	minutes int
}

// ComputeFacultyLoad aggregates assigned units and scheduled minutes per
// faculty member. Every roster member appears in the result, including those
// without any offering; faculty ids referenced by offerings but missing from
// the roster yield synthetic rows. It never fails on dirty data.
func ComputeFacultyLoad(snap ReportSnapshot) []dto.FacultyLoadRow {
	idx := newResourceIndex(snap)

	meetingMinutes := make(map[string]int, len(snap.Offerings))
	for _, m := range snap.Meetings {
		meetingMinutes[m.ClassID] += timeutil.Duration(m.StartTime, m.EndTime)
	}

	loads := make(map[string]*facultyLoadAcc)
	for _, offering := range snap.Offerings {
		if offering.FacultyUserID == "" {
			continue
		}
		load := loads[offering.FacultyUserID]
		if load == nil {
			load = &facultyLoadAcc{}
			loads[offering.FacultyUserID] = load
		}
		load.classes++
		if subject, ok := idx.subjects[offering.SubjectID]; ok {
			load.units += subject.Units
		}
		load.minutes += meetingMinutes[offering.ID]
	}

	rows := make([]dto.FacultyLoadRow, 0, len(snap.Faculty))
	seen := make(map[string]bool, len(snap.Faculty))
	for _, member := range snap.Faculty {
		seen[member.UserID] = true
		rows = append(rows, buildLoadRow(member.UserID, member.Name, loads[member.UserID], idx))
	}
	// Offerings can reference faculty ids absent from the roster; surface them
	// instead of dropping their load silently.
	orphans := make([]string, 0)
	for userID := range loads {
		if !seen[userID] {
			orphans = append(orphans, userID)
		}
	}
	sort.Strings(orphans)
	for _, userID := range orphans {
		rows = append(rows, buildLoadRow(userID, unknownFacultyName, loads[userID], idx))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].FacultyName != rows[j].FacultyName {
			return rows[i].FacultyName < rows[j].FacultyName
		}
		return rows[i].FacultyUserID < rows[j].FacultyUserID
	})
	return rows
}

func buildLoadRow(userID, name string, load *facultyLoadAcc, idx *resourceIndex) dto.FacultyLoadRow {
	if load == nil {
		load = &facultyLoadAcc{}
	}
	row := dto.FacultyLoadRow{
		FacultyUserID: userID,
		FacultyName:   name,
		ClassesCount:  load.classes,
		TotalUnits:    load.units,
		TotalMinutes:  load.minutes,
		TotalHours:    float64(load.minutes) / 60,
	}
	if profile, ok := idx.profiles[userID]; ok {
		row.MaxUnits = profile.MaxUnits
		row.MaxHours = profile.MaxHours
	}
	row.Status = classifyLoad(row)
	return row
}

func classifyLoad(row dto.FacultyLoadRow) string {
	overUnits := row.MaxUnits > 0 && row.TotalUnits > row.MaxUnits
	overHours := row.MaxHours > 0 && row.TotalHours > row.MaxHours
	switch {
	case overUnits || overHours:
		return dto.LoadStatusOverload
	case row.ClassesCount == 0:
		return dto.LoadStatusNoLoad
	default:
		return dto.LoadStatusOK
	}
}
