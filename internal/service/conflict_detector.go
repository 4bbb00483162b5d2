package service

import (
	"sort"

	"github.com/campuskit/acadsched-api/internal/dto"
	"github.com/campuskit/acadsched-api/internal/models"
	"github.com/campuskit/acadsched-api/pkg/timeutil"
)

// DetectConflicts finds all pairs of meetings whose intervals overlap on the
// same day while sharing a room, a faculty member, or a section. The three
// dimensions are scanned independently; a pair can therefore surface up to
// three times, once per dimension. Meetings of the same offering are excluded
// for the faculty and section dimensions (a lecture and its lab legitimately
// share both) but NOT for the room dimension.
//
// Within a group the scan sorts by start time and compares each meeting
// against every earlier meeting whose interval is still open, so overlaps
// between non-adjacent meetings are caught as well.
func DetectConflicts(snap ReportSnapshot) []dto.ConflictItem {
	idx := newResourceIndex(snap)

	var items []dto.ConflictItem
	items = append(items, scanDimension(snap.Meetings, idx, dto.ConflictRoom)...)
	items = append(items, scanDimension(snap.Meetings, idx, dto.ConflictFaculty)...)
	items = append(items, scanDimension(snap.Meetings, idx, dto.ConflictSection)...)

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Type != b.Type {
			return conflictTypeRank(a.Type) < conflictTypeRank(b.Type)
		}
		if a.DayOfWeek != b.DayOfWeek {
			return a.DayOfWeek < b.DayOfWeek
		}
		if sa, sb := timeutil.ParseClock(a.StartTime), timeutil.ParseClock(b.StartTime); sa != sb {
			return sa < sb
		}
		if a.Resource != b.Resource {
			return a.Resource < b.Resource
		}
		if a.ClassA != b.ClassA {
			return a.ClassA < b.ClassA
		}
		return a.ClassB < b.ClassB
	})
	return items
}

func scanDimension(meetings []models.ClassMeeting, idx *resourceIndex, conflictType string) []dto.ConflictItem {
	groups := make(map[string][]models.ClassMeeting)
	for _, m := range meetings {
		key, ok := groupKey(m, idx, conflictType)
		if !ok {
			continue
		}
		groups[key] = append(groups[key], m)
	}

	var items []dto.ConflictItem
	for _, group := range groups {
		items = append(items, sweepGroup(group, idx, conflictType)...)
	}
	return items
}

// groupKey returns the (day, resource) bucket for a meeting, or ok=false when
// the meeting cannot participate in this dimension.
func groupKey(m models.ClassMeeting, idx *resourceIndex, conflictType string) (string, bool) {
	if m.DayOfWeek == "" {
		return "", false
	}
	switch conflictType {
	case dto.ConflictRoom:
		if m.RoomID == "" {
			return "", false
		}
		return m.DayOfWeek + "\x00" + m.RoomID, true
	case dto.ConflictFaculty:
		offering, ok := idx.offerings[m.ClassID]
		if !ok || offering.FacultyUserID == "" {
			return "", false
		}
		return m.DayOfWeek + "\x00" + offering.FacultyUserID, true
	case dto.ConflictSection:
		offering, ok := idx.offerings[m.ClassID]
		if !ok {
			return "", false
		}
		return m.DayOfWeek + "\x00" + offering.SectionID, true
	default:
		return "", false
	}
}

// sweepGroup emits one conflict per overlapping pair. Sorting by start time
// lets each meeting close out earlier intervals that have already ended; the
// remainder are compared individually so a long meeting spanning several
// later ones is flagged against each of them.
func sweepGroup(group []models.ClassMeeting, idx *resourceIndex, conflictType string) []dto.ConflictItem {
	if len(group) < 2 {
		return nil
	}
	sorted := make([]models.ClassMeeting, len(group))
	copy(sorted, group)
	sort.SliceStable(sorted, func(i, j int) bool {
		si, sj := timeutil.ParseClock(sorted[i].StartTime), timeutil.ParseClock(sorted[j].StartTime)
		if si != sj {
			return si < sj
		}
		return sorted[i].ID < sorted[j].ID
	})

	var items []dto.ConflictItem
	open := make([]models.ClassMeeting, 0, len(sorted))
	for _, current := range sorted {
		start := timeutil.ParseClock(current.StartTime)
		live := open[:0]
		for _, earlier := range open {
			if timeutil.ParseClock(earlier.EndTime) <= start {
				continue
			}
			live = append(live, earlier)
			if sameOffering(earlier, current) && conflictType != dto.ConflictRoom {
				continue
			}
			if !timeutil.Overlaps(
				timeutil.ParseClock(earlier.StartTime), timeutil.ParseClock(earlier.EndTime),
				start, timeutil.ParseClock(current.EndTime),
			) {
				continue
			}
			items = append(items, conflictItem(earlier, current, idx, conflictType))
		}
		open = append(live, current)
	}
	return items
}

func sameOffering(a, b models.ClassMeeting) bool {
	return a.ClassID != "" && a.ClassID == b.ClassID
}

func conflictItem(first, second models.ClassMeeting, idx *resourceIndex, conflictType string) dto.ConflictItem {
	return dto.ConflictItem{
		Type:      conflictType,
		DayOfWeek: first.DayOfWeek,
		StartTime: first.StartTime,
		EndTime:   first.EndTime,
		Resource:  resourceLabel(first, idx, conflictType),
		ClassA:    idx.classLabel(first.ClassID),
		ClassB:    idx.classLabel(second.ClassID),
	}
}

func resourceLabel(m models.ClassMeeting, idx *resourceIndex, conflictType string) string {
	switch conflictType {
	case dto.ConflictRoom:
		return idx.roomCode(m.RoomID)
	case dto.ConflictFaculty:
		if offering, ok := idx.offerings[m.ClassID]; ok {
			return idx.facultyName(offering.FacultyUserID)
		}
		return "TBA"
	case dto.ConflictSection:
		if offering, ok := idx.offerings[m.ClassID]; ok {
			return idx.sectionName(offering.SectionID)
		}
		return "SEC"
	default:
		return "-"
	}
}

func conflictTypeRank(t string) int {
	switch t {
	case dto.ConflictRoom:
		return 0
	case dto.ConflictFaculty:
		return 1
	case dto.ConflictSection:
		return 2
	default:
		return 3
	}
}
