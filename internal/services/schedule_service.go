package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/api"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/models"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/repositories"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/pkg/utils"
)

// --- Custom Service Errors ---
var (
	ErrRatingOutOfRange = errors.New("rating must be between 0 and 5")
	ErrNotAuthenticated = errors.New("no authenticated session")
)

// StatusCompletedVN is the status string written when a worker marks a shift
// complete, spelled the way the backend expects it.
const StatusCompletedVN = "Hoàn thành"

// dateKeyLayout is the bucket key format. Calendar dates only, no time zone.
const dateKeyLayout = "2006-01-02"

// scheduleDateLayouts are the date encodings observed from the backend, in
// the order they are tried.
var scheduleDateLayouts = []string{
	dateKeyLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseScheduleDate parses a backend date string. Malformed dates return an
// error rather than panicking, so callers can branch instead of losing the
// record.
func ParseScheduleDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range scheduleDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}

// DateKey normalizes a backend date string to its YYYY-MM-DD bucket key.
// ok is false for missing or malformed dates.
func DateKey(raw string) (key string, ok bool) {
	t, err := ParseScheduleDate(raw)
	if err != nil {
		return "", false
	}
	return t.Format(dateKeyLayout), true
}

// GroupAscending buckets records by calendar date, earliest date first.
// Used by the upcoming-schedule views.
func GroupAscending(records []models.ScheduleRecord) []models.DateBucket {
	return groupByDate(records, true)
}

// GroupDescending buckets records by calendar date, most recent date first.
// Used by the history views.
func GroupDescending(records []models.ScheduleRecord) []models.DateBucket {
	return groupByDate(records, false)
}

// groupByDate implements the grouping invariant: every record lands in
// exactly one bucket. Records with missing or malformed dates go to the
// explicit UnscheduledBucket (always ordered last) instead of being dropped,
// so callers can surface a data-quality warning.
func groupByDate(records []models.ScheduleRecord, ascending bool) []models.DateBucket {
	buckets := make(map[string][]models.ScheduleRecord)
	var invalid []models.ScheduleRecord

	for _, rec := range records {
		key, ok := DateKey(rec.Date)
		if !ok {
			utils.LogWarn("schedule record has unparseable date", map[string]interface{}{
				"schedule_detail_id": rec.ID,
				"date":               rec.Date,
			})
			invalid = append(invalid, rec)
			continue
		}
		buckets[key] = append(buckets[key], rec)
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	// YYYY-MM-DD keys order lexicographically as dates do.
	sort.Strings(keys)
	if !ascending {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}

	out := make([]models.DateBucket, 0, len(keys)+1)
	for _, key := range keys {
		recs := buckets[key]
		SortWithinBucket(recs)
		out = append(out, models.DateBucket{Date: key, Records: recs})
	}
	if len(invalid) > 0 {
		SortWithinBucket(invalid)
		out = append(out, models.DateBucket{Date: models.UnscheduledBucket, Records: invalid})
	}
	return out
}

// startTimeLayouts are the time-of-day encodings observed from the backend.
var startTimeLayouts = []string{"15:04:05", "15:04"}

// parseTimeOfDay parses a bare HH:mm[:ss] string into minutes-plus-seconds
// since midnight. ok is false when unparseable.
func parseTimeOfDay(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Hour()*3600 + t.Minute()*60 + t.Second(), true
		}
	}
	return 0, false
}

// SortWithinBucket orders records by ascending start time. Start times are
// bare times of day; the comparison never consults the date. Records with
// unparseable start times sort to the end, keeping their relative order.
func SortWithinBucket(records []models.ScheduleRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		ti, iok := parseTimeOfDay(records[i].StartTime)
		tj, jok := parseTimeOfDay(records[j].StartTime)
		if iok && jok {
			return ti < tj
		}
		return iok && !jok
	})
}

// FilterUpcoming keeps records dated today or later whose status reads as
// upcoming. Both production spellings of the status pass the same filter.
func FilterUpcoming(records []models.ScheduleRecord, today time.Time) []models.ScheduleRecord {
	todayKey := today.Format(dateKeyLayout)
	out := make([]models.ScheduleRecord, 0, len(records))
	for _, rec := range records {
		key, ok := DateKey(rec.Date)
		if !ok || key < todayKey {
			continue
		}
		if ClassifyStatus(rec.Status) != StatusUpcoming {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// PeriodAll disables a month/year axis in FilterByPeriod.
const PeriodAll = "all"

// FilterByPeriod keeps records matching the given calendar month (1-12) and
// year. Either axis may be PeriodAll or empty, meaning no constraint. When a
// constraint is active, records whose date cannot be parsed are excluded,
// since they have no month or year to match.
func FilterByPeriod(records []models.ScheduleRecord, month, year string) []models.ScheduleRecord {
	monthAll := month == "" || month == PeriodAll
	yearAll := year == "" || year == PeriodAll
	if monthAll && yearAll {
		return records
	}

	out := make([]models.ScheduleRecord, 0, len(records))
	for _, rec := range records {
		t, err := ParseScheduleDate(rec.Date)
		if err != nil {
			continue
		}
		if !monthAll && fmt.Sprintf("%d", int(t.Month())) != strings.TrimLeft(month, "0") {
			continue
		}
		if !yearAll && fmt.Sprintf("%d", t.Year()) != year {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// FilterByStatusCategory keeps records whose status classifies into the given
// category. One deliberate oddity is preserved from the production client:
// when filtering for completed records, an empty status string counts as
// completed.
func FilterByStatusCategory(records []models.ScheduleRecord, category StatusCategory) []models.ScheduleRecord {
	out := make([]models.ScheduleRecord, 0, len(records))
	for _, rec := range records {
		folded := utils.Fold(rec.Status)
		if category == StatusCompleted && folded == "" {
			out = append(out, rec)
			continue
		}
		if ClassifyStatus(rec.Status) == category {
			out = append(out, rec)
		}
	}
	return out
}

// ScopeToRole narrows records to what the session's role is entitled to see:
// workers their own shifts, supervisors their team's, managers and leaders
// everything.
func ScopeToRole(records []models.ScheduleRecord, sess Session) []models.ScheduleRecord {
	switch sess.Role {
	case models.RoleWorker:
		out := make([]models.ScheduleRecord, 0, len(records))
		for _, rec := range records {
			if rec.OwnerID == sess.UserID {
				out = append(out, rec)
			}
		}
		return out
	case models.RoleSupervisor:
		out := make([]models.ScheduleRecord, 0, len(records))
		for _, rec := range records {
			if rec.SupervisorID == sess.UserID || rec.OwnerID == sess.UserID {
				out = append(out, rec)
			}
		}
		return out
	default:
		return records
	}
}

// ComputeRatingValue normalizes a rating that may arrive as a number, a
// numeric string (possibly padded), nil, or a FlexFloat into a plain float.
// Unparsable and non-positive values normalize to 0, meaning "no rating yet".
func ComputeRatingValue(raw interface{}) float64 {
	var v float64
	switch val := raw.(type) {
	case nil:
		return 0
	case float64:
		v = val
	case float32:
		v = float64(val)
	case int:
		v = float64(val)
	case int64:
		v = float64(val)
	case models.FlexFloat:
		v = float64(val)
	case string:
		parsed, ok := utils.ParseLooseFloat(val)
		if !ok {
			return 0
		}
		v = parsed
	default:
		return 0
	}
	if v <= 0 {
		return 0
	}
	return v
}

// HasRating reports whether a raw rating value counts as an actual rating
// for display purposes.
func HasRating(raw interface{}) bool {
	return ComputeRatingValue(raw) > 0
}

// --- ScheduleService ---

// ScheduleService composes the repository with the aggregation pipeline used
// by the schedule screens.
type ScheduleService interface {
	// UpcomingSchedule returns the session's upcoming shifts grouped by
	// date, earliest first.
	UpcomingSchedule(ctx context.Context, sess Session, today time.Time) ([]models.DateBucket, error)
	// ScheduleHistory returns the session's past shifts grouped by date,
	// most recent first, optionally narrowed by month/year and status
	// category (empty category means no status constraint).
	ScheduleHistory(ctx context.Context, sess Session, month, year string, category StatusCategory) ([]models.DateBucket, error)
	// MarkComplete transitions a shift to completed and returns the
	// re-fetched upcoming view. There is no optimistic local patch.
	MarkComplete(ctx context.Context, sess Session, scheduleDetailID string, today time.Time) ([]models.DateBucket, error)
	// SubmitRating validates and submits a rating, then re-fetches.
	SubmitRating(ctx context.Context, sess Session, scheduleDetailID string, rating float64, comment string) error
}

type scheduleService struct {
	scheduleRepo repositories.ScheduleRepository
}

// NewScheduleService creates a new instance of ScheduleService.
func NewScheduleService(scheduleRepo repositories.ScheduleRepository) ScheduleService {
	return &scheduleService{scheduleRepo: scheduleRepo}
}

func (s *scheduleService) fetchScoped(ctx context.Context, sess Session) ([]models.ScheduleRecord, error) {
	if !sess.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	records, err := s.scheduleRepo.FindByUser(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("fetching schedule details: %w", err)
	}
	return ScopeToRole(records, sess), nil
}

func (s *scheduleService) UpcomingSchedule(ctx context.Context, sess Session, today time.Time) ([]models.DateBucket, error) {
	records, err := s.fetchScoped(ctx, sess)
	if err != nil {
		return nil, err
	}
	return GroupAscending(FilterUpcoming(records, today)), nil
}

func (s *scheduleService) ScheduleHistory(ctx context.Context, sess Session, month, year string, category StatusCategory) ([]models.DateBucket, error) {
	records, err := s.fetchScoped(ctx, sess)
	if err != nil {
		return nil, err
	}
	records = FilterByPeriod(records, month, year)
	if category != "" {
		records = FilterByStatusCategory(records, category)
	}
	return GroupDescending(records), nil
}

func (s *scheduleService) MarkComplete(ctx context.Context, sess Session, scheduleDetailID string, today time.Time) ([]models.DateBucket, error) {
	if !sess.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	if err := s.scheduleRepo.UpdateStatus(ctx, scheduleDetailID, StatusCompletedVN); err != nil {
		return nil, fmt.Errorf("marking schedule detail complete: %w", err)
	}
	return s.UpcomingSchedule(ctx, sess, today)
}

func (s *scheduleService) SubmitRating(ctx context.Context, sess Session, scheduleDetailID string, rating float64, comment string) error {
	if !sess.Authenticated() {
		return ErrNotAuthenticated
	}
	// Validated before any network call.
	if rating <= 0 || rating > 5 {
		return ErrRatingOutOfRange
	}
	if err := s.scheduleRepo.SubmitRating(ctx, scheduleDetailID, rating, comment); err != nil {
		apiErr := api.AsError(err)
		return fmt.Errorf("submitting rating: %s: %w", apiErr.LocalizedMessage(), err)
	}
	return nil
}
