// Command mswt is a terminal front end for the MSWT facility-operations
// backend: login, schedule views, completion and rating flows, incident
// reports and the facility inventory.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/api"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/models"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/repositories"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/services"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/store"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/pkg/utils"
)

const usage = `Usage: mswt <command> [flags]

Commands:
  login      -u <userName> -p <password>
  whoami     show the current session and role capabilities
  schedules  -view upcoming|history [-month M] [-year Y] [-status completed|incomplete]
  complete   <scheduleDetailId>
  rate       <scheduleDetailId> -rating <0-5> [-comment text]
  incidents  list my incident reports
  report     -name <title> [-desc text] [-priority Cao|Trung bình|Thấp]
  assets     list restrooms, trash bins and sensors
  logout
`

// app bundles the wired services behind the CLI commands.
type app struct {
	sessions     *services.SessionCell
	auth         services.AuthService
	schedules    services.ScheduleService
	incidentRepo repositories.IncidentRepository
	assetRepo    repositories.AssetRepository
	stateStore   store.SessionStore
	closeStore   func()
}

func main() {
	utils.InitLogger()
	utils.LoadDotenv()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	a, err := buildApp()
	if err != nil {
		utils.LogError(err, "startup failed")
		os.Exit(1)
	}
	defer a.closeStore()

	ctx := context.Background()
	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildApp() (*app, error) {
	baseURL := utils.Getenv("MSWT_API_URL", "http://localhost:8080")

	statePath := utils.Getenv("MSWT_STATE_DB", "")
	if statePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home dir: %w", err)
		}
		dir := filepath.Join(home, ".mswt")
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating state dir: %w", err)
		}
		statePath = filepath.Join(dir, "session.db")
	}

	st, err := store.OpenSQLite(statePath)
	if err != nil {
		return nil, err
	}

	client := api.NewClient(baseURL, st)
	sessions := services.NewSessionCell()

	return &app{
		sessions:     sessions,
		auth:         services.NewAuthService(repositories.NewAuthRepository(client), repositories.NewUserRepository(client), st, sessions),
		schedules:    services.NewScheduleService(repositories.NewScheduleRepository(client)),
		incidentRepo: repositories.NewIncidentRepository(client),
		assetRepo:    repositories.NewAssetRepository(client),
		stateStore:   st,
		closeStore:   func() { st.Close() },
	}, nil
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.cmdLogin(ctx, args)
	case "whoami":
		return a.cmdWhoami(ctx)
	case "schedules":
		return a.cmdSchedules(ctx, args)
	case "complete":
		return a.cmdComplete(ctx, args)
	case "rate":
		return a.cmdRate(ctx, args)
	case "incidents":
		return a.cmdIncidents(ctx)
	case "report":
		return a.cmdReport(ctx, args)
	case "assets":
		return a.cmdAssets(ctx)
	case "logout":
		a.auth.Logout(ctx)
		fmt.Println("Đã đăng xuất.")
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

// requireSession restores the persisted session; commands other than login
// refuse to run unauthenticated.
func (a *app) requireSession(ctx context.Context) (services.Session, error) {
	if sess, ok := a.auth.RestoreSession(ctx); ok {
		return sess, nil
	}
	return services.Session{}, fmt.Errorf("chưa đăng nhập, hãy chạy: mswt login -u <userName> -p <password>")
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	userName := fs.String("u", "", "user name")
	password := fs.String("p", "", "password")
	fs.Parse(args)

	// Form-level validation: nothing reaches the network.
	if utils.IsEmpty(*userName) || utils.IsEmpty(*password) {
		return fmt.Errorf("tên đăng nhập và mật khẩu không được để trống")
	}

	result := a.auth.Login(ctx, *userName, *password)
	if !result.Success {
		return fmt.Errorf("đăng nhập thất bại: %s", result.Error)
	}
	fmt.Printf("Xin chào %s (%s)\n", result.Data.FullName, result.Data.Position)
	return nil
}

func (a *app) cmdWhoami(ctx context.Context) error {
	sess, err := a.requireSession(ctx)
	if err != nil {
		return err
	}
	caps := services.Capabilities(sess)
	fmt.Printf("Người dùng:  %s (%s)\n", sess.FullName, sess.UserID)
	fmt.Printf("Vai trò:     %s (%s)\n", caps.Role, caps.Position)
	fmt.Printf("Quyền hạn:   leader=%v manager=%v supervisor=%v worker=%v\n",
		caps.IsLeader, caps.IsManager, caps.IsSupervisor, caps.IsWorker)
	return nil
}

func (a *app) cmdSchedules(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("schedules", flag.ExitOnError)
	view := fs.String("view", "upcoming", "upcoming or history")
	month := fs.String("month", services.PeriodAll, "calendar month 1-12, or all")
	year := fs.String("year", services.PeriodAll, "calendar year, or all")
	status := fs.String("status", "", "completed or incomplete")
	fs.Parse(args)

	sess, err := a.requireSession(ctx)
	if err != nil {
		return err
	}

	var buckets []models.DateBucket
	switch *view {
	case "history":
		buckets, err = a.schedules.ScheduleHistory(ctx, sess, *month, *year, services.StatusCategory(*status))
	default:
		buckets, err = a.schedules.UpcomingSchedule(ctx, sess, time.Now())
	}
	if err != nil {
		return fmt.Errorf("không tải được lịch làm việc: %s", api.AsError(err).LocalizedMessage())
	}

	printBuckets(buckets)
	return nil
}

func printBuckets(buckets []models.DateBucket) {
	if len(buckets) == 0 {
		fmt.Println("Không có lịch làm việc.")
		return
	}
	for _, bucket := range buckets {
		if bucket.Date == models.UnscheduledBucket {
			fmt.Println("\n⚠ Lịch thiếu ngày hợp lệ (lỗi dữ liệu):")
		} else {
			fmt.Printf("\n%s\n", bucket.Date)
		}
		for _, rec := range bucket.Records {
			end := "--:--"
			if rec.EndTime != nil {
				end = *rec.EndTime
			}
			line := fmt.Sprintf("  [%s] %s–%s  %s (%s, %s)",
				rec.ID, rec.StartTime, end, rec.ScheduleType, rec.AreaName, rec.Status)
			if services.HasRating(rec.Rating) {
				line += fmt.Sprintf("  ★%.1f", services.ComputeRatingValue(rec.Rating))
			}
			fmt.Printf("%s  [%s/%s]\n", line,
				services.StatusColor(rec.Status), services.ScheduleTypeIcon(rec.ScheduleType))
		}
	}
}

func (a *app) cmdComplete(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: mswt complete <scheduleDetailId>")
	}
	sess, err := a.requireSession(ctx)
	if err != nil {
		return err
	}
	buckets, err := a.schedules.MarkComplete(ctx, sess, args[0], time.Now())
	if err != nil {
		return fmt.Errorf("không cập nhật được trạng thái: %s", api.AsError(err).LocalizedMessage())
	}
	fmt.Println("Đã đánh dấu hoàn thành.")
	printBuckets(buckets)
	return nil
}

func (a *app) cmdRate(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: mswt rate <scheduleDetailId> -rating <0-5> [-comment text]")
	}
	id := args[0]
	fs := flag.NewFlagSet("rate", flag.ExitOnError)
	rating := fs.Float64("rating", 0, "rating 0-5")
	comment := fs.String("comment", "", "comment")
	fs.Parse(args[1:])

	sess, err := a.requireSession(ctx)
	if err != nil {
		return err
	}
	if err := a.schedules.SubmitRating(ctx, sess, id, *rating, *comment); err != nil {
		return fmt.Errorf("không gửi được đánh giá: %v", err)
	}
	fmt.Println("Đã gửi đánh giá.")
	return nil
}

func (a *app) cmdIncidents(ctx context.Context) error {
	sess, err := a.requireSession(ctx)
	if err != nil {
		return err
	}
	reports, err := a.incidentRepo.FindByUser(ctx, sess.UserID)
	if err != nil {
		return fmt.Errorf("không tải được báo cáo sự cố: %s", api.AsError(err).LocalizedMessage())
	}
	if len(reports) == 0 {
		fmt.Println("Chưa có báo cáo sự cố.")
		return nil
	}
	for _, r := range reports {
		fmt.Printf("[%s] %s  %s (%s)  ưu tiên=%s [%s]\n",
			r.ReportID, r.Date, r.ReportName, r.Status, r.Priority, services.PriorityColor(r.Priority))
	}
	return nil
}

func (a *app) cmdReport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	name := fs.String("name", "", "incident title")
	desc := fs.String("desc", "", "description")
	priority := fs.String("priority", "Trung bình", "Cao, Trung bình or Thấp")
	fs.Parse(args)

	if utils.IsEmpty(*name) {
		return fmt.Errorf("tên sự cố không được để trống")
	}
	sess, err := a.requireSession(ctx)
	if err != nil {
		return err
	}
	report := models.IncidentReport{
		ReportName:  *name,
		Description: *desc,
		Priority:    *priority,
		UserID:      sess.UserID,
	}
	if err := a.incidentRepo.Create(ctx, report); err != nil {
		return fmt.Errorf("không gửi được báo cáo: %s", api.AsError(err).LocalizedMessage())
	}
	fmt.Println("Đã gửi báo cáo sự cố.")
	return nil
}

func (a *app) cmdAssets(ctx context.Context) error {
	if _, err := a.requireSession(ctx); err != nil {
		return err
	}
	restrooms, err := a.assetRepo.FindRestrooms(ctx)
	if err != nil {
		return fmt.Errorf("không tải được danh sách nhà vệ sinh: %s", api.AsError(err).LocalizedMessage())
	}
	bins, err := a.assetRepo.FindTrashBins(ctx)
	if err != nil {
		return fmt.Errorf("không tải được danh sách thùng rác: %s", api.AsError(err).LocalizedMessage())
	}
	sensors, err := a.assetRepo.FindSensors(ctx)
	if err != nil {
		return fmt.Errorf("không tải được danh sách cảm biến: %s", api.AsError(err).LocalizedMessage())
	}

	fmt.Println("Nhà vệ sinh:")
	for _, r := range restrooms {
		fmt.Printf("  [%s] Phòng %s, %s (%s)\n", r.RestroomID, r.RestroomNumber, r.AreaName, r.Status)
	}
	fmt.Println("Thùng rác:")
	for _, b := range bins {
		fmt.Printf("  [%s] %s, %s (%s)\n", b.TrashBinID, b.Location, b.AreaName, b.Status)
	}
	fmt.Println("Cảm biến:")
	for _, s := range sensors {
		fmt.Printf("  [%s] %s, %s (%s)\n", s.SensorID, s.SensorName, s.Type, s.Status)
	}
	return nil
}
