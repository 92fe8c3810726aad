package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wisma-backend/controllers"
	"wisma-backend/models"
	"wisma-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// buildTestRouter wires the full API onto an isolated in-memory database.
func buildTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Building{},
		&models.Institution{},
		&models.Room{},
		&models.Reservation{},
		&models.Transaction{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	router := SetupRouter(
		controllers.NewAvailabilityController(services.NewAvailabilityService(db)),
		controllers.NewReservationController(services.NewReservationService(db)),
		controllers.NewRoomController(services.NewRoomService(db)),
		controllers.NewBuildingController(services.NewBuildingService(db)),
		controllers.NewInstitutionController(services.NewInstitutionService(db)),
		controllers.NewTransactionController(services.NewTransactionService(db)),
	)
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func errorCode(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", resp.Body.String(), err)
	}
	return body.Error.Code
}

func TestAvailabilityProbe(t *testing.T) {
	router, db := buildTestRouter(t)

	building := models.Building{Name: "Gedung A"}
	if err := db.Create(&building).Error; err != nil {
		t.Fatalf("seed building: %v", err)
	}
	rooms := []models.Room{
		{BuildingID: building.ID, RoomNumber: "101", Capacity: 2, Status: models.RoomStatusAvailable},
		{BuildingID: building.ID, RoomNumber: "102", Capacity: 2, Status: models.RoomStatusAvailable},
	}
	if err := db.Create(&rooms).Error; err != nil {
		t.Fatalf("seed rooms: %v", err)
	}

	resp := doJSON(t, router, http.MethodGet, "/api/availability?check_in=2024-06-05&check_out=2024-06-07", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", resp.Code, resp.Body.String())
	}
	var body struct {
		AvailableCount int64 `json:"available_count"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.AvailableCount != 2 {
		t.Errorf("available_count = %d, want 2", body.AvailableCount)
	}
}

func TestAvailabilityProbeRejectsBadRanges(t *testing.T) {
	router, _ := buildTestRouter(t)

	// inverted range
	resp := doJSON(t, router, http.MethodGet, "/api/availability?check_in=2024-06-07&check_out=2024-06-05", nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("inverted: status = %d, want 400", resp.Code)
	}
	if code := errorCode(t, resp); code != "invalid_date_range" {
		t.Errorf("inverted: code = %s, want invalid_date_range", code)
	}

	// malformed date
	resp = doJSON(t, router, http.MethodGet, "/api/availability?check_in=junk&check_out=2024-06-05", nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("malformed: status = %d, want 400", resp.Code)
	}
	if code := errorCode(t, resp); code != "invalid_date_range" {
		t.Errorf("malformed: code = %s, want invalid_date_range", code)
	}
}

func TestCreateRoomDuplicateConflict(t *testing.T) {
	router, db := buildTestRouter(t)

	building := models.Building{Name: "Gedung A"}
	if err := db.Create(&building).Error; err != nil {
		t.Fatalf("seed building: %v", err)
	}

	payload := map[string]interface{}{
		"buildingId": building.ID,
		"roomNumber": "101",
		"capacity":   2,
	}

	resp := doJSON(t, router, http.MethodPost, "/api/rooms", payload)
	if resp.Code != http.StatusCreated {
		t.Fatalf("first create: status = %d (%s)", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, router, http.MethodPost, "/api/rooms", payload)
	if resp.Code != http.StatusConflict {
		t.Fatalf("duplicate: status = %d, want 409", resp.Code)
	}
	if code := errorCode(t, resp); code != "duplicate_room_number" {
		t.Errorf("duplicate: code = %s, want duplicate_room_number", code)
	}
}

func TestCreateRoomRejectsBadStatus(t *testing.T) {
	router, db := buildTestRouter(t)

	building := models.Building{Name: "Gedung A"}
	if err := db.Create(&building).Error; err != nil {
		t.Fatalf("seed building: %v", err)
	}

	resp := doJSON(t, router, http.MethodPost, "/api/rooms", map[string]interface{}{
		"buildingId": building.ID,
		"roomNumber": "101",
		"capacity":   2,
		"status":     "closed",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (%s)", resp.Code, resp.Body.String())
	}
}

func TestBookingFlowOverHTTP(t *testing.T) {
	router, db := buildTestRouter(t)

	building := models.Building{Name: "Gedung A"}
	if err := db.Create(&building).Error; err != nil {
		t.Fatalf("seed building: %v", err)
	}
	room := models.Room{BuildingID: building.ID, RoomNumber: "101", Capacity: 2, Status: models.RoomStatusAvailable}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("seed room: %v", err)
	}
	inst := models.Institution{Name: "Umum", RatePerPerson: 50000}
	if err := db.Create(&inst).Error; err != nil {
		t.Fatalf("seed institution: %v", err)
	}

	book := map[string]interface{}{
		"guest_name":     "Budi Santoso",
		"institution_id": inst.ID,
		"check_in":       "2024-06-05",
		"check_out":      "2024-06-07",
		"headcount":      2,
	}

	resp := doJSON(t, router, http.MethodPost, "/api/reservations", book)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create: status = %d (%s)", resp.Code, resp.Body.String())
	}
	var created struct {
		Data models.Reservation `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Data.Status != models.ReservationPending {
		t.Errorf("status = %s, want pending", created.Data.Status)
	}

	// the same range is now taken
	resp = doJSON(t, router, http.MethodPost, "/api/reservations", book)
	if resp.Code != http.StatusConflict {
		t.Fatalf("second booking: status = %d, want 409", resp.Code)
	}
	if code := errorCode(t, resp); code != "no_availability" {
		t.Errorf("second booking: code = %s, want no_availability", code)
	}

	// checkout before checkin is a conflict
	resp = doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/reservations/%d/checkout", created.Data.ID), nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("premature checkout: status = %d, want 409", resp.Code)
	}
	if code := errorCode(t, resp); code != "invalid_state" {
		t.Errorf("premature checkout: code = %s, want invalid_state", code)
	}

	resp = doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/reservations/%d/checkin", created.Data.ID), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("checkin: status = %d (%s)", resp.Code, resp.Body.String())
	}
	resp = doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/reservations/%d/checkout", created.Data.ID), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("checkout: status = %d (%s)", resp.Code, resp.Body.String())
	}
}
