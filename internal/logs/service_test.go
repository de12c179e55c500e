package logs

import (
	"testing"
	"time"
)

func TestLog_WithMetadata(t *testing.T) {
	svc := newTestService(t)

	userID := uint64(42)
	err := svc.Log(SystemLog{
		Level:   "info",
		Service: "auth",
		UserID:  &userID,
		Action:  "login",
		Message: "user logged in",
	}, map[string]interface{}{"phone": "13800000001"})
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	var stored SystemLog
	if err := svc.DB.First(&stored).Error; err != nil {
		t.Fatalf("failed to read stored log: %v", err)
	}
	if stored.ID == 0 {
		t.Fatal("expected a generated log id")
	}
	if stored.Metadata == nil || *stored.Metadata != `{"phone":"13800000001"}` {
		t.Fatalf("expected metadata JSON, got %v", stored.Metadata)
	}
	if stored.UserID == nil || *stored.UserID != 42 {
		t.Fatalf("expected user id 42, got %v", stored.UserID)
	}
}

func TestLog_NilMetadata(t *testing.T) {
	svc := newTestService(t)

	mustLog(t, svc, "info", "dictionary", "delete_type", "dict type removed")

	var stored SystemLog
	if err := svc.DB.First(&stored).Error; err != nil {
		t.Fatalf("failed to read stored log: %v", err)
	}
	if stored.Metadata != nil {
		t.Fatalf("expected nil metadata, got %v", *stored.Metadata)
	}
}

func TestGetLogs_Filters(t *testing.T) {
	svc := newTestService(t)
	mustLog(t, svc, "info", "auth", "login", "user logged in")
	mustLog(t, svc, "warn", "account", "delete", "account removed")
	mustLog(t, svc, "info", "auth", "refresh", "token refreshed")

	service := "auth"
	rows, total, _, err := svc.GetLogs(LogFilterInput{Service: &service})
	if err != nil {
		t.Fatalf("GetLogs failed: %v", err)
	}
	if total != 2 || len(rows) != 2 {
		t.Fatalf("expected 2 auth logs, got total=%d len=%d", total, len(rows))
	}

	level := "warn"
	rows, total, _, err = svc.GetLogs(LogFilterInput{Level: &level})
	if err != nil {
		t.Fatalf("GetLogs failed: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("expected 1 warn log, got total=%d len=%d", total, len(rows))
	}
}

func TestGetLogs_Search(t *testing.T) {
	svc := newTestService(t)
	mustLog(t, svc, "info", "auth", "login", "user 13800000001 logged in")
	mustLog(t, svc, "info", "account", "create", "account created")

	search := "13800000001"
	rows, total, _, err := svc.GetLogs(LogFilterInput{Search: &search})
	if err != nil {
		t.Fatalf("GetLogs failed: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("expected 1 search match, got total=%d len=%d", total, len(rows))
	}
}

func TestGetLogs_DefaultWindowExcludesOldRows(t *testing.T) {
	svc := newTestService(t)
	mustLog(t, svc, "info", "auth", "login", "recent")
	mustLog(t, svc, "info", "auth", "login", "ancient")

	twoMonthsAgo := time.Now().AddDate(0, -2, 0)
	if err := svc.DB.Model(&SystemLog{}).
		Where("message = ?", "ancient").
		Update("created_at", twoMonthsAgo).Error; err != nil {
		t.Fatalf("failed to backdate log: %v", err)
	}

	rows, total, _, err := svc.GetLogs(LogFilterInput{})
	if err != nil {
		t.Fatalf("GetLogs failed: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("expected only the recent log, got total=%d len=%d", total, len(rows))
	}
}

func TestGetLogs_DateRange(t *testing.T) {
	svc := newTestService(t)
	mustLog(t, svc, "info", "auth", "login", "recent")

	start := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	end := time.Now().Format("2006-01-02")
	rows, total, totalPages, err := svc.GetLogs(LogFilterInput{StartDate: &start, EndDate: &end})
	if err != nil {
		t.Fatalf("GetLogs failed: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("expected 1 log in range, got total=%d len=%d", total, len(rows))
	}
	if totalPages != 1 {
		t.Fatalf("expected 1 page, got %d", totalPages)
	}
}

func TestGetLogs_Pagination(t *testing.T) {
	svc := newTestService(t)
	for i := 0; i < 5; i++ {
		mustLog(t, svc, "info", "auth", "login", "entry")
	}

	rows, total, totalPages, err := svc.GetLogs(LogFilterInput{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("GetLogs failed: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5, got %d", total)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows on page, got %d", len(rows))
	}
	if totalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", totalPages)
	}
}
