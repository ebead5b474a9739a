// Package mockdata holds the seeded in-memory state served by the local mock
// backend. It exists for development and integration tests; the production
// backend is a remote service outside this repository.
package mockdata

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/models"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/pkg/utils"
)

// seedPassword is the password every seeded account accepts.
const seedPassword = "mswt123456"

type seededUser struct {
	user         models.User
	passwordHash []byte
	locked       bool
}

// Store is the mutex-guarded in-memory dataset behind the mock backend.
type Store struct {
	mu        sync.RWMutex
	users     map[string]*seededUser // keyed by userName
	usersByID map[string]*seededUser
	schedules map[string]*models.ScheduleRecord
	restrooms []models.Restroom
	trashBins []models.TrashBin
	sensors   []models.Sensor
	reports   map[string][]models.IncidentReport
}

// NewSeeded builds a Store pre-populated with one account per role and a
// spread of schedule details across dates and statuses, including some of the
// data-quality problems production exhibits (unaccented statuses, string
// ratings, a malformed date).
func NewSeeded() *Store {
	s := &Store{
		users:     make(map[string]*seededUser),
		usersByID: make(map[string]*seededUser),
		schedules: make(map[string]*models.ScheduleRecord),
		reports:   make(map[string][]models.IncidentReport),
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on an invalid cost, which would be a programming
		// error in this file.
		panic(fmt.Sprintf("mockdata: seeding password hash: %v", err))
	}

	seedUsers := []models.User{
		{UserID: "U001", UserName: "anle", FullName: "Lê Văn An", RoleID: models.RoleIDWorker, Role: models.RoleWorker},
		{UserID: "U002", UserName: "binhtran", FullName: "Trần Thanh Bình", RoleID: models.RoleIDSupervisor, Role: models.RoleSupervisor},
		{UserID: "U003", UserName: "chipham", FullName: "Phạm Ngọc Chi", RoleID: models.RoleIDManager, Role: models.RoleManager},
		{UserID: "U004", UserName: "dungvo", FullName: "Võ Tiến Dũng", RoleID: models.RoleIDLeader, Role: models.RoleLeader},
	}
	for i := range seedUsers {
		u := seedUsers[i]
		u.Position = u.Role.Position()
		u.Status = "Hoạt động"
		entry := &seededUser{user: u, passwordHash: hash}
		s.users[u.UserName] = entry
		s.usersByID[u.UserID] = entry
	}
	// One locked account for the 403 path.
	locked := models.User{UserID: "U005", UserName: "khoa", FullName: "Ngô Đăng Khoa", RoleID: models.RoleIDWorker, Role: models.RoleWorker}
	locked.Position = locked.Role.Position()
	locked.Status = "Đã khóa"
	s.users[locked.UserName] = &seededUser{user: locked, passwordHash: hash, locked: true}
	s.usersByID[locked.UserID] = s.users[locked.UserName]

	today := time.Now()
	day := func(offset int) string { return today.AddDate(0, 0, offset).Format("2006-01-02") }
	endAt := func(t string) *string { return &t }

	seedSchedules := []models.ScheduleRecord{
		{ID: "SD001", ScheduleID: "SC01", Date: day(-7), StartTime: "08:00:00", EndTime: endAt("11:00:00"), Status: "Hoàn thành", OwnerID: "U001", SupervisorID: "U002", Rating: 4.5, ScheduleType: "Dọn vệ sinh", AreaName: "Khu A"},
		{ID: "SD002", ScheduleID: "SC01", Date: day(-7), StartTime: "13:00:00", EndTime: endAt("16:00:00"), Status: "hoan thanh", OwnerID: "U001", SupervisorID: "U002", ScheduleType: "Thu gom rác", AreaName: "Khu A"},
		{ID: "SD003", ScheduleID: "SC02", Date: day(-1), StartTime: "07:30:00", Status: "Bỏ lỡ", OwnerID: "U001", SupervisorID: "U002", ScheduleType: "Dọn vệ sinh", AreaName: "Khu B"},
		{ID: "SD004", ScheduleID: "SC02", Date: day(0), StartTime: "09:00:00", EndTime: endAt("12:00:00"), Status: "Sắp tới", OwnerID: "U001", SupervisorID: "U002", ScheduleType: "Dọn vệ sinh", AreaName: "Khu B"},
		{ID: "SD005", ScheduleID: "SC02", Date: day(0), StartTime: "06:30:00", Status: "sap toi", OwnerID: "U001", SupervisorID: "U002", ScheduleType: "Kiểm tra", AreaName: "Khu C"},
		{ID: "SD006", ScheduleID: "SC03", Date: day(1), StartTime: "08:00:00", Status: "Sắp tới", OwnerID: "U006", SupervisorID: "U002", ScheduleType: "Bảo trì", AreaName: "Khu C"},
		{ID: "SD007", ScheduleID: "SC03", Date: "not-a-date", StartTime: "10:00:00", Status: "Sắp tới", OwnerID: "U001", SupervisorID: "U002", ScheduleType: "Dọn vệ sinh", AreaName: "Khu D"},
	}
	for i := range seedSchedules {
		rec := seedSchedules[i]
		s.schedules[rec.ID] = &rec
	}

	s.restrooms = []models.Restroom{
		{RestroomID: "RR01", RestroomNumber: "101", AreaName: "Khu A", Status: "Hoạt động"},
		{RestroomID: "RR02", RestroomNumber: "202", AreaName: "Khu B", Status: "Bảo trì"},
	}
	s.trashBins = []models.TrashBin{
		{TrashBinID: "TB01", Location: "Sảnh chính", AreaName: "Khu A", Status: "Hoạt động"},
		{TrashBinID: "TB02", Location: "Hành lang tầng 2", AreaName: "Khu B", Status: "Đầy"},
	}
	s.sensors = []models.Sensor{
		{SensorID: "SS01", SensorName: "Cảm biến mức rác TB01", Type: "fill-level", Status: "Hoạt động"},
		{SensorID: "SS02", SensorName: "Cảm biến mùi RR01", Type: "air-quality", Status: "Mất kết nối"},
	}
	s.reports["U001"] = []models.IncidentReport{
		{ReportID: "RP01", ReportName: "Vòi nước bị rò rỉ", Priority: "Cao", Status: "Đang xử lý", Date: day(-2), UserID: "U001"},
	}

	utils.LogInfo("Mock data seeded", map[string]interface{}{
		"users":     len(s.users),
		"schedules": len(s.schedules),
	})
	return s
}

// Authenticate verifies credentials. locked is true when the account exists
// with a correct password but is blocked.
func (s *Store) Authenticate(userName, password string) (user *models.User, locked bool, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, exists := s.users[userName]
	if !exists {
		return nil, false, false
	}
	if bcrypt.CompareHashAndPassword(entry.passwordHash, []byte(password)) != nil {
		return nil, false, false
	}
	if entry.locked {
		return nil, true, false
	}
	clone := entry.user
	return &clone, false, true
}

// FindUser returns the profile for an id.
func (s *Store) FindUser(userID string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.usersByID[userID]
	if !ok {
		return nil, false
	}
	clone := entry.user
	return &clone, true
}

// SchedulesForUser returns every schedule detail the user owns or supervises.
func (s *Store) SchedulesForUser(userID string) []models.ScheduleRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ScheduleRecord, 0)
	for _, rec := range s.schedules {
		if rec.OwnerID == userID || rec.SupervisorID == userID {
			out = append(out, *rec)
		}
	}
	return out
}

// UpdateScheduleStatus transitions a schedule detail's status.
func (s *Store) UpdateScheduleStatus(scheduleDetailID, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.schedules[scheduleDetailID]
	if !ok {
		return false
	}
	rec.Status = status
	return true
}

// SetRating stores a rating and comment on a schedule detail.
func (s *Store) SetRating(scheduleDetailID string, rating float64, comment string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.schedules[scheduleDetailID]
	if !ok {
		return false
	}
	rec.Rating = models.FlexFloat(rating)
	rec.Comment = utils.NewNullString(comment)
	return true
}

// Restrooms lists the seeded restrooms.
func (s *Store) Restrooms() []models.Restroom {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Restroom, len(s.restrooms))
	copy(out, s.restrooms)
	return out
}

// TrashBins lists the seeded trash bins.
func (s *Store) TrashBins() []models.TrashBin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TrashBin, len(s.trashBins))
	copy(out, s.trashBins)
	return out
}

// Sensors lists the seeded sensors.
func (s *Store) Sensors() []models.Sensor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Sensor, len(s.sensors))
	copy(out, s.sensors)
	return out
}

// ReportsForUser lists the incident reports filed by a user.
func (s *Store) ReportsForUser(userID string) []models.IncidentReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.IncidentReport, len(s.reports[userID]))
	copy(out, s.reports[userID])
	return out
}

// AddReport files a new incident report, assigning it an id and date.
func (s *Store) AddReport(report models.IncidentReport) models.IncidentReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	report.ReportID = "RP-" + uuid.NewString()[:8]
	if report.Date == "" {
		report.Date = time.Now().Format("2006-01-02")
	}
	if report.Status == "" {
		report.Status = "Chờ xử lý"
	}
	s.reports[report.UserID] = append(s.reports[report.UserID], report)
	return report
}
