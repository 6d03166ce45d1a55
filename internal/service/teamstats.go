package service

import (
	"fmt"
	"time"

	"guard-roster-backend/internal/database/models"
)

// RosterTeamStats computes the fairness baselines from roster state: the
// average night-shift and replacement counts per active employee in a
// calendar month. It satisfies TeamStatsProvider with two queries instead
// of per-user lookups.
type RosterTeamStats struct {
	shifts ShiftStore
	users  UserStore
}

// NewRosterTeamStats creates a new roster-backed team stats provider
func NewRosterTeamStats(shifts ShiftStore, users UserStore) *RosterTeamStats {
	return &RosterTeamStats{shifts: shifts, users: users}
}

// TeamAverages computes the averages for the calendar month containing ref
func (s *RosterTeamStats) TeamAverages(ref time.Time) (TeamAverages, error) {
	monthStart, monthEnd := monthBounds(ref)

	shifts, err := s.shifts.GetInRange(monthStart, monthEnd, nil)
	if err != nil {
		return TeamAverages{}, fmt.Errorf("load month shifts: %w", err)
	}

	employees, err := s.users.GetActiveEmployees()
	if err != nil {
		return TeamAverages{}, fmt.Errorf("load employees: %w", err)
	}
	if len(employees) == 0 {
		return TeamAverages{}, nil
	}

	var nights, replacements int
	for i := range shifts {
		shift := &shifts[i]
		isNight := shift.Type() == models.ShiftTypeNight
		for _, a := range shift.ActiveAssignments() {
			if isNight {
				nights++
			}
			if a.Origin == models.AssignmentOriginReplacement {
				replacements++
			}
		}
	}

	count := float64(len(employees))
	return TeamAverages{
		NightShifts:  float64(nights) / count,
		Replacements: float64(replacements) / count,
	}, nil
}
