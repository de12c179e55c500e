package waybill

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"aircargo-admin-api/internal/snowflake"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const testSecret = "waybill-test-secret"

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", testSecret)
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&Waybill{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newTestService(t *testing.T) *WaybillService {
	t.Helper()
	gen, err := snowflake.New(1, 1)
	if err != nil {
		t.Fatalf("failed to create id generator: %v", err)
	}
	return &WaybillService{DB: newTestDB(t), IDGen: gen}
}

func formData(t *testing.T, fields map[string]interface{}) datatypes.JSON {
	t.Helper()
	raw, err := json.Marshal(fields)
	if err != nil {
		t.Fatalf("failed to marshal form data: %v", err)
	}
	return datatypes.JSON(raw)
}

func mustCreateWaybill(t *testing.T, svc *WaybillService, number string, fields map[string]interface{}) *Waybill {
	t.Helper()
	input := CreateWaybillInput{FormData: formData(t, fields)}
	if number != "" {
		input.WaybillNumber = &number
	}
	waybill, err := svc.CreateWaybill(input)
	if err != nil {
		t.Fatalf("failed to create waybill: %v", err)
	}
	return waybill
}

func setupWaybillRouter(t *testing.T) (*gin.Engine, *WaybillService) {
	t.Helper()
	svc := newTestService(t)
	r := gin.New()
	RegisterRoutes(r, svc)
	return r, svc
}

func testToken(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":     "1",
		"phone":       "13800000000",
		"permissions": []string{"waybill"},
		"token_type":  "access",
		"exp":         time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}
