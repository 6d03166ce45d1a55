package service

import (
	"time"

	"guard-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

// Recommendation buckets a composite score into a planner-facing verdict
type Recommendation string

const (
	RecommendationOptimal        Recommendation = "OPTIMAL"
	RecommendationGood           Recommendation = "GOOD"
	RecommendationAcceptable     Recommendation = "ACCEPTABLE"
	RecommendationNotRecommended Recommendation = "NOT_RECOMMENDED"
)

// ScoreColor is the UI color paired 1:1 with a recommendation bucket
type ScoreColor string

const (
	ScoreColorGreen  ScoreColor = "green"
	ScoreColorYellow ScoreColor = "yellow"
	ScoreColorOrange ScoreColor = "orange"
	ScoreColorRed    ScoreColor = "red"
)

// BucketScore maps a total score to its recommendation and color.
// The thresholds are fixed policy: >=90 optimal, 70-89 good,
// 50-69 acceptable, below 50 not recommended.
func BucketScore(total float64) (Recommendation, ScoreColor) {
	switch {
	case total >= 90:
		return RecommendationOptimal, ScoreColorGreen
	case total >= 70:
		return RecommendationGood, ScoreColorYellow
	case total >= 50:
		return RecommendationAcceptable, ScoreColorOrange
	default:
		return RecommendationNotRecommended, ScoreColorRed
	}
}

// WarningSeverity grades a staffing warning
type WarningSeverity string

const (
	WarningSeverityInfo    WarningSeverity = "info"
	WarningSeverityWarning WarningSeverity = "warning"
	WarningSeverityError   WarningSeverity = "error"
)

// WarningType is the closed set of staffing warning kinds. New kinds are
// added here, never as ad hoc strings.
type WarningType string

const (
	WarningRestPeriod            WarningType = "REST_PERIOD"
	WarningWeeklyHours           WarningType = "WEEKLY_HOURS"
	WarningConsecutiveDays       WarningType = "CONSECUTIVE_DAYS"
	WarningHighUtilization       WarningType = "HIGH_UTILIZATION"
	WarningPendingAbsenceRequest WarningType = "PENDING_ABSENCE_REQUEST"
	WarningMissingClearance      WarningType = "MISSING_CLEARANCE"
	WarningScoringFailed         WarningType = "SCORING_FAILED"
)

// StaffingWarning is a typed, graded note attached to a candidate score
type StaffingWarning struct {
	Type     WarningType     `json:"type"`
	Severity WarningSeverity `json:"severity"`
	Message  string          `json:"message"`
}

// PreferenceMatchResult marks a single preference comparison
type PreferenceMatchResult string

const (
	PreferenceMatch    PreferenceMatchResult = "MATCH"
	PreferenceMismatch PreferenceMatchResult = "MISMATCH"
)

// PreferenceBreakdown compares a candidate's declared preferences against
// the shift's actual attributes
type PreferenceBreakdown struct {
	ShiftType     PreferenceMatchResult `json:"shift_type"`
	ShiftDuration PreferenceMatchResult `json:"shift_duration"`
	WorkloadLevel PreferenceMatchResult `json:"workload_level"`
}

// ScoreMetrics is the structured evidence behind a candidate score. All
// fields are populated on every successful scoring call.
type ScoreMetrics struct {
	CurrentMonthHours       float64             `json:"current_month_hours"`
	TargetMonthHours        float64             `json:"target_month_hours"`
	UtilizationPercent      float64             `json:"utilization_percent"`
	UtilizationAfterPercent float64             `json:"utilization_after_percent"`
	MaxWeeklyHours          float64             `json:"max_weekly_hours"`
	ProjectedWeeklyHours    float64             `json:"projected_weekly_hours"`
	LastShiftEnd            *time.Time          `json:"last_shift_end,omitempty"`
	NextShiftStart          *time.Time          `json:"next_shift_start,omitempty"`
	ActualRestHours         float64             `json:"actual_rest_hours"`
	RequiredRestHours       float64             `json:"required_rest_hours"`
	RestOK                  bool                `json:"rest_ok"`
	ConsecutiveDays         int                 `json:"consecutive_days"`
	RestDaysLast14          int                 `json:"rest_days_last_14"`
	NightShiftsThisMonth    int                 `json:"night_shifts_this_month"`
	TeamAvgNightShifts      float64             `json:"team_avg_night_shifts"`
	ReplacementsThisMonth   int                 `json:"replacements_this_month"`
	TeamAvgReplacements     float64             `json:"team_avg_replacements"`
	Preferences             PreferenceBreakdown `json:"preferences"`
}

// CandidateScore is the composite scoring result for one (candidate, shift)
// pair. TotalScore is always the weighted combination of the sub-scores and
// Recommendation/Color are derived from it, never set independently.
type CandidateScore struct {
	TotalScore      float64           `json:"total_score"`
	Recommendation  Recommendation    `json:"recommendation"`
	Color           ScoreColor        `json:"color"`
	WorkloadScore   float64           `json:"workload_score"`
	ComplianceScore float64           `json:"compliance_score"`
	FairnessScore   float64           `json:"fairness_score"`
	PreferenceScore float64           `json:"preference_score"`
	Metrics         ScoreMetrics      `json:"metrics"`
	Warnings        []StaffingWarning `json:"warnings"`
}

// SiteAccessStatus classifies a candidate's clearance for a shift's site
type SiteAccessStatus string

const (
	SiteAccessCleared    SiteAccessStatus = "CLEARED"
	SiteAccessNotCleared SiteAccessStatus = "NOT_CLEARED"
	SiteAccessExpired    SiteAccessStatus = "EXPIRED"
)

// ReplacementCandidate is one ranked entry returned by the candidate ranker
type ReplacementCandidate struct {
	User                  models.UserRef    `json:"user"`
	Score                 CandidateScore    `json:"score"`
	SiteAccess            SiteAccessStatus  `json:"site_access"`
	MissingQualifications []string          `json:"missing_qualifications"`
	Warnings              []StaffingWarning `json:"warnings"`
}

// ConflictType is the closed set of roster conflict categories
type ConflictType string

const (
	ConflictUnassigned              ConflictType = "UNASSIGNED"
	ConflictUnderstaffed            ConflictType = "UNDERSTAFFED"
	ConflictOverstaffed             ConflictType = "OVERSTAFFED"
	ConflictMissingQualifications   ConflictType = "MISSING_QUALIFICATIONS"
	ConflictNoClearance             ConflictType = "NO_CLEARANCE"
	ConflictDoubleBooking           ConflictType = "DOUBLE_BOOKING"
	ConflictRestTimeViolation       ConflictType = "REST_TIME_VIOLATION"
	ConflictWeeklyHoursExceeded     ConflictType = "WEEKLY_HOURS_EXCEEDED"
	ConflictConsecutiveDaysExceeded ConflictType = "CONSECUTIVE_DAYS_EXCEEDED"
)

// ConflictSeverity grades a roster conflict
type ConflictSeverity string

const (
	ConflictSeverityLow      ConflictSeverity = "low"
	ConflictSeverityMedium   ConflictSeverity = "medium"
	ConflictSeverityHigh     ConflictSeverity = "high"
	ConflictSeverityCritical ConflictSeverity = "critical"
)

// ShiftConflict is one detected staffing or compliance problem
type ShiftConflict struct {
	Type        ConflictType           `json:"type"`
	Severity    ConflictSeverity       `json:"severity"`
	ShiftID     uuid.UUID              `json:"shift_id"`
	SiteID      uuid.UUID              `json:"site_id"`
	User        *models.UserRef        `json:"user,omitempty"`
	Description string                 `json:"description"`
	Details     map[string]interface{} `json:"details,omitempty"`
}

// AutoFillStatus is the per-shift outcome of an auto-fill run
type AutoFillStatus string

const (
	AutoFillFilled        AutoFillStatus = "FILLED"
	AutoFillPartial       AutoFillStatus = "PARTIAL"
	AutoFillUnfilled      AutoFillStatus = "UNFILLED"
	AutoFillAlreadyFilled AutoFillStatus = "ALREADY_FILLED"
)

// AutoFillOptions controls the auto-fill admission policy
type AutoFillOptions struct {
	AutoAssign            bool    `json:"auto_assign"`
	MinScore              float64 `json:"min_score"`
	MaxCandidatesPerShift int     `json:"max_candidates_per_shift"`
}

// AutoFillResult is the outcome for one shift in an auto-fill run
type AutoFillResult struct {
	ShiftID         uuid.UUID        `json:"shift_id"`
	Status          AutoFillStatus   `json:"status"`
	Required        int              `json:"required"`
	AlreadyAssigned int              `json:"already_assigned"`
	AssignedUsers   []models.UserRef `json:"assigned_users"`
	Reason          string           `json:"reason,omitempty"`
}
