package service

import (
	"sort"

	"github.com/campuskit/acadsched-api/internal/dto"
	"github.com/campuskit/acadsched-api/pkg/timeutil"
)

const unknownRoomName = "Unknown Room"

// ComputeRoomUtilization reports each room's used minutes against the term's
// total weekly open-hours capacity. The capacity is a single scalar shared by
// all rooms, derived from the term's active time blocks. Percentages are
// clamped to [0,100]; rooms without meetings report zero.
func ComputeRoomUtilization(snap ReportSnapshot) []dto.RoomUtilRow {
	available := 0
	for _, block := range snap.TimeBlocks {
		if !block.IsActive {
			continue
		}
		available += timeutil.Duration(block.StartTime, block.EndTime)
	}

	used := make(map[string]int)
	for _, m := range snap.Meetings {
		if m.RoomID == "" {
			continue
		}
		used[m.RoomID] += timeutil.Duration(m.StartTime, m.EndTime)
	}

	rows := make([]dto.RoomUtilRow, 0, len(snap.Rooms))
	known := make(map[string]bool, len(snap.Rooms))
	for _, room := range snap.Rooms {
		known[room.ID] = true
		rows = append(rows, buildUtilRow(room.ID, room.Code, room.Name, used[room.ID], available))
	}
	// Meetings can point at rooms that were deleted or never registered.
	orphans := make([]string, 0)
	for roomID := range used {
		if !known[roomID] {
			orphans = append(orphans, roomID)
		}
	}
	sort.Strings(orphans)
	for _, roomID := range orphans {
		rows = append(rows, buildUtilRow(roomID, roomID, unknownRoomName, used[roomID], available))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].UtilizationPct != rows[j].UtilizationPct {
			return rows[i].UtilizationPct > rows[j].UtilizationPct
		}
		return rows[i].RoomCode < rows[j].RoomCode
	})
	return rows
}

func buildUtilRow(id, code, name string, usedMinutes, availableMinutes int) dto.RoomUtilRow {
	pct := 0.0
	if availableMinutes > 0 {
		pct = float64(usedMinutes) / float64(availableMinutes) * 100
		if pct > 100 {
			pct = 100
		}
	}
	return dto.RoomUtilRow{
		RoomID:           id,
		RoomCode:         code,
		RoomName:         name,
		UsedMinutes:      usedMinutes,
		AvailableMinutes: availableMinutes,
		UtilizationPct:   pct,
	}
}
