package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"guard-roster-backend/internal/database/models"
	apperrors "guard-roster-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// defaultTargetMonthlyHours is assumed for users without a configured target
	defaultTargetMonthlyHours = 160.0

	// maxConsecutiveDaysSoft is the streak length beyond which the
	// compliance sub-score starts penalizing
	maxConsecutiveDaysSoft = 6

	// Penalty points subtracted from the compliance sub-score per finding
	restViolationPenalty   = 40.0
	weeklyHoursPenalty     = 35.0
	consecutiveDaysPenalty = 25.0
)

// ScoringService computes the composite suitability score for one
// (candidate, shift) pair. It only reads roster state and has no side
// effects; the same inputs always produce the same score.
type ScoringService struct {
	shifts          ShiftStore
	assignments     AssignmentStore
	users           UserStore
	teamStats       TeamStatsProvider
	weights         ScoringWeights
	restPeriodHours float64
}

// NewScoringService creates a new scoring service
func NewScoringService(shifts ShiftStore, assignments AssignmentStore, users UserStore, teamStats TeamStatsProvider, weights ScoringWeights, restPeriodHours float64) *ScoringService {
	return &ScoringService{
		shifts:          shifts,
		assignments:     assignments,
		users:           users,
		teamStats:       teamStats,
		weights:         weights.Normalized(),
		restPeriodHours: restPeriodHours,
	}
}

// Score computes the candidate score for a user on a shift
func (s *ScoringService) Score(userID uuid.UUID, shift *models.Shift) (*CandidateScore, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	score := &CandidateScore{Warnings: []StaffingWarning{}}

	workload, err := s.scoreWorkload(user, shift, score)
	if err != nil {
		return nil, err
	}
	compliance, err := s.scoreCompliance(user, shift, score)
	if err != nil {
		return nil, err
	}
	fairness, err := s.scoreFairness(user, shift, score)
	if err != nil {
		return nil, err
	}
	preference := s.scorePreference(user, shift, score)

	score.WorkloadScore = workload
	score.ComplianceScore = compliance
	score.FairnessScore = fairness
	score.PreferenceScore = preference

	score.TotalScore = clampScore(
		workload*s.weights.Workload +
			compliance*s.weights.Compliance +
			fairness*s.weights.Fairness +
			preference*s.weights.Preference)
	score.Recommendation, score.Color = BucketScore(score.TotalScore)

	score.Metrics.RequiredRestHours = s.restPeriodHours
	score.Metrics.MaxWeeklyHours = maxWeeklyHoursFor(user)

	return score, nil
}

// FallbackScore builds the zero-score entry substituted when scoring a
// candidate fails. The ranker uses it so one failing lookup cannot abort
// a whole ranking batch.
func FallbackScore(cause error) CandidateScore {
	rec, color := BucketScore(0)
	return CandidateScore{
		TotalScore:     0,
		Recommendation: rec,
		Color:          color,
		Warnings: []StaffingWarning{{
			Type:     WarningScoringFailed,
			Severity: WarningSeverityError,
			Message:  fmt.Sprintf("score could not be computed: %v", cause),
		}},
	}
}

// scoreWorkload rates how well the shift fits the candidate's monthly
// utilization. Both under- and over-utilization reduce the score, with
// over-utilization penalized more steeply. The ideal band is 85-100% of
// the monthly target after taking the shift.
func (s *ScoringService) scoreWorkload(user *models.User, shift *models.Shift, out *CandidateScore) (float64, error) {
	monthStart, monthEnd := monthBounds(shift.StartTime)

	monthAssignments, err := s.assignments.GetActiveByUserInRange(user.ID, monthStart, monthEnd)
	if err != nil {
		return 0, fmt.Errorf("load month assignments: %w", err)
	}

	var currentHours float64
	for _, a := range monthAssignments {
		currentHours += a.Shift.DurationHours()
	}

	target := user.TargetMonthlyHours
	if target <= 0 {
		target = defaultTargetMonthlyHours
	}

	utilization := currentHours / target
	utilizationAfter := (currentHours + shift.DurationHours()) / target

	out.Metrics.CurrentMonthHours = currentHours
	out.Metrics.TargetMonthHours = target
	out.Metrics.UtilizationPercent = math.Round(utilization * 100)
	out.Metrics.UtilizationAfterPercent = math.Round(utilizationAfter * 100)

	if utilizationAfter > 1.15 {
		out.Warnings = append(out.Warnings, StaffingWarning{
			Type:     WarningHighUtilization,
			Severity: WarningSeverityInfo,
			Message:  fmt.Sprintf("utilization would reach %.0f%% of the monthly target", utilizationAfter*100),
		})
	}

	// Quadratic fall-off on both sides of the ideal band. Over-utilization
	// drops twice as fast as under-utilization.
	var deviation, factor float64
	switch {
	case utilizationAfter < 0.85:
		deviation = 0.85 - utilizationAfter
		factor = 500
	case utilizationAfter > 1.0:
		deviation = utilizationAfter - 1.0
		factor = 1000
	}
	return clampScore(100 - factor*deviation*deviation), nil
}

// scoreCompliance rates working-time compliance: rest periods around the
// shift, projected weekly hours against the user's cap, and consecutive
// days worked. Findings lower the sub-score and emit warnings; none of
// them hard-reject the candidate.
func (s *ScoringService) scoreCompliance(user *models.User, shift *models.Shift, out *CandidateScore) (float64, error) {
	lookbackStart := shift.StartTime.AddDate(0, 0, -14)
	before, err := s.shifts.GetByUserInRange(user.ID, lookbackStart, shift.StartTime)
	if err != nil {
		return 0, fmt.Errorf("load preceding shifts: %w", err)
	}
	after, err := s.shifts.GetByUserInRange(user.ID, shift.EndTime, shift.EndTime.AddDate(0, 0, 7))
	if err != nil {
		return 0, fmt.Errorf("load following shifts: %w", err)
	}

	score := 100.0

	// Rest periods on both sides of the shift
	var lastEnd, nextStart *time.Time
	for i := range before {
		if !before[i].EndTime.After(shift.StartTime) {
			if lastEnd == nil || before[i].EndTime.After(*lastEnd) {
				end := before[i].EndTime
				lastEnd = &end
			}
		}
	}
	for i := range after {
		if !after[i].StartTime.Before(shift.EndTime) {
			if nextStart == nil || after[i].StartTime.Before(*nextStart) {
				start := after[i].StartTime
				nextStart = &start
			}
		}
	}

	restOK := true
	actualRest := s.restPeriodHours
	if lastEnd != nil {
		gap := shift.StartTime.Sub(*lastEnd).Hours()
		actualRest = gap
		if gap < s.restPeriodHours {
			restOK = false
		}
	}
	if nextStart != nil {
		gap := nextStart.Sub(shift.EndTime).Hours()
		if gap < actualRest {
			actualRest = gap
		}
		if gap < s.restPeriodHours {
			restOK = false
		}
	}
	if !restOK {
		score -= restViolationPenalty
		out.Warnings = append(out.Warnings, StaffingWarning{
			Type:     WarningRestPeriod,
			Severity: WarningSeverityWarning,
			Message:  fmt.Sprintf("rest period of %.1fh is below the required %.0fh", actualRest, s.restPeriodHours),
		})
	}

	out.Metrics.LastShiftEnd = lastEnd
	out.Metrics.NextShiftStart = nextStart
	out.Metrics.ActualRestHours = math.Round(actualRest*10) / 10
	out.Metrics.RestOK = restOK

	// Projected weekly hours against the per-user cap
	weekStart, weekEnd := isoWeekBounds(shift.StartTime)
	weekShifts, err := s.shifts.GetByUserInRange(user.ID, weekStart, weekEnd)
	if err != nil {
		return 0, fmt.Errorf("load week shifts: %w", err)
	}
	var weekHours float64
	for i := range weekShifts {
		weekHours += weekShifts[i].DurationHours()
	}
	projected := weekHours + shift.DurationHours()
	weeklyCap := maxWeeklyHoursFor(user)
	out.Metrics.ProjectedWeeklyHours = math.Round(projected*10) / 10
	if projected > weeklyCap {
		score -= weeklyHoursPenalty
		out.Warnings = append(out.Warnings, StaffingWarning{
			Type:     WarningWeeklyHours,
			Severity: WarningSeverityWarning,
			Message:  fmt.Sprintf("projected %.1fh this week exceeds the %.0fh cap", projected, weeklyCap),
		})
	}

	// Consecutive days worked, counting the candidate shift itself
	workedDays := map[string]bool{}
	for i := range before {
		workedDays[dayKey(before[i].StartTime)] = true
	}
	streak := 1
	for d := 1; d <= 14; d++ {
		if !workedDays[dayKey(shift.StartTime.AddDate(0, 0, -d))] {
			break
		}
		streak++
	}
	out.Metrics.ConsecutiveDays = streak
	out.Metrics.RestDaysLast14 = 14 - len(workedDays)
	if streak > maxConsecutiveDaysSoft {
		score -= consecutiveDaysPenalty
		out.Warnings = append(out.Warnings, StaffingWarning{
			Type:     WarningConsecutiveDays,
			Severity: WarningSeverityWarning,
			Message:  fmt.Sprintf("would be the %dth consecutive working day", streak),
		})
	}

	return clampScore(score), nil
}

// scoreFairness compares the candidate's undesirable-shift load (nights
// and ad-hoc replacements this month) against the team average, to spread
// such shifts evenly across the workforce.
func (s *ScoringService) scoreFairness(user *models.User, shift *models.Shift, out *CandidateScore) (float64, error) {
	monthStart, monthEnd := monthBounds(shift.StartTime)
	monthAssignments, err := s.assignments.GetActiveByUserInRange(user.ID, monthStart, monthEnd)
	if err != nil {
		return 0, fmt.Errorf("load month assignments: %w", err)
	}

	nights := 0
	replacements := 0
	for i := range monthAssignments {
		if monthAssignments[i].Shift.Type() == models.ShiftTypeNight {
			nights++
		}
		if monthAssignments[i].Origin == models.AssignmentOriginReplacement {
			replacements++
		}
	}

	avg, err := s.teamStats.TeamAverages(shift.StartTime)
	if err != nil {
		return 0, fmt.Errorf("load team averages: %w", err)
	}

	out.Metrics.NightShiftsThisMonth = nights
	out.Metrics.TeamAvgNightShifts = avg.NightShifts
	out.Metrics.ReplacementsThisMonth = replacements
	out.Metrics.TeamAvgReplacements = avg.Replacements

	score := 100.0
	if excess := float64(nights) - avg.NightShifts; excess > 0 {
		score -= 15 * excess
	}
	if excess := float64(replacements) - avg.Replacements; excess > 0 {
		score -= 10 * excess
	}
	return clampScore(score), nil
}

// scorePreference matches the candidate's declared preferences against the
// shift's attributes. Undeclared preferences stay neutral and count as a
// match in the breakdown.
func (s *ScoringService) scorePreference(user *models.User, shift *models.Shift, out *CandidateScore) float64 {
	score := 50.0
	breakdown := PreferenceBreakdown{
		ShiftType:     PreferenceMatch,
		ShiftDuration: PreferenceMatch,
		WorkloadLevel: PreferenceMatch,
	}

	if user.PreferredShiftType != "" {
		if user.PreferredShiftType == shift.Type() {
			score += 20
		} else {
			score -= 20
			breakdown.ShiftType = PreferenceMismatch
		}
	}

	if user.PreferredDuration > 0 {
		if math.Abs(shift.DurationHours()-user.PreferredDuration) <= 1 {
			score += 15
		} else {
			score -= 15
			breakdown.ShiftDuration = PreferenceMismatch
		}
	}

	if user.PreferredWorkload != "" {
		target := user.TargetMonthlyHours
		if target <= 0 {
			target = defaultTargetMonthlyHours
		}
		utilizationAfter := (out.Metrics.CurrentMonthHours + shift.DurationHours()) / target
		if user.PreferredWorkload == workloadLevelFor(utilizationAfter) {
			score += 15
		} else {
			score -= 15
			breakdown.WorkloadLevel = PreferenceMismatch
		}
	}

	out.Metrics.Preferences = breakdown
	return clampScore(score)
}

// workloadLevelFor buckets a projected utilization into a workload level
func workloadLevelFor(utilization float64) models.WorkloadLevel {
	switch {
	case utilization < 0.8:
		return models.WorkloadLevelLight
	case utilization <= 1.05:
		return models.WorkloadLevelNormal
	default:
		return models.WorkloadLevelHeavy
	}
}

func maxWeeklyHoursFor(user *models.User) float64 {
	if user.MaxWeeklyHours > 0 {
		return user.MaxWeeklyHours
	}
	return 48
}

// monthBounds returns the calendar month containing t as [start, end)
func monthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}

// isoWeekBounds returns the ISO week containing t as [Monday 00:00, next Monday)
func isoWeekBounds(t time.Time) (time.Time, time.Time) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the ISO week that started the previous Monday
	}
	start := day.AddDate(0, 0, 1-weekday)
	return start, start.AddDate(0, 0, 7)
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return math.Round(v*10) / 10
}
