package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"clinichr/constants"
	"clinichr/controllers"
	"clinichr/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLeaveTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Center{},
		&models.Employee{},
		&models.EmployeeLeave{},
	))
	return db
}

func seedLeaveEmployee(t *testing.T, db *gorm.DB) models.Employee {
	t.Helper()
	center := models.Center{Name: "Trung tâm Q3"}
	require.NoError(t, db.Create(&center).Error)
	employee := models.Employee{
		CenterID:     center.ID,
		Name:         "Trần Thị Bình",
		Email:        "binh.tran@clinic.vn",
		Phone:        "0907654321",
		Position:     "Điều dưỡng",
		Salary:       800,
		ProfileImage: "https://example.com/binh.jpg",
	}
	require.NoError(t, db.Create(&employee).Error)
	return employee
}

func setupLeaveRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	lc := controllers.NewLeaveController(db, nil, nil)
	router := gin.New()
	router.POST("/leaves", lc.AddLeave)
	router.GET("/leaves/:centerId", lc.AllLeave)
	router.PATCH("/leaveStatus/:id", lc.UpdateLeaveStatus)
	router.GET("/employeeLeaves/:employeeId", lc.GetLeaveByEmployee)
	return router
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAddLeaveStartsPending(t *testing.T) {
	db := newLeaveTestDB(t)
	employee := seedLeaveEmployee(t, db)
	router := setupLeaveRouter(db)

	w := doJSON(router, http.MethodPost, "/leaves", gin.H{
		"employeeId": employee.ID,
		"centerId":   employee.CenterID,
		"leaveType":  constants.LeaveTypeSick,
		"startDate":  "2025-03-10",
		"endDate":    "2025-03-12",
		"reason":     "Bị cảm, cần nghỉ ngơi",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var leave models.EmployeeLeave
	require.NoError(t, db.First(&leave).Error)
	assert.Equal(t, constants.LeaveStatusPending, leave.Status)
	assert.Equal(t, employee.ID, leave.EmployeeID)
}

func TestAddLeaveRejectsInvalidType(t *testing.T) {
	db := newLeaveTestDB(t)
	employee := seedLeaveEmployee(t, db)
	router := setupLeaveRouter(db)

	w := doJSON(router, http.MethodPost, "/leaves", gin.H{
		"employeeId": employee.ID,
		"centerId":   employee.CenterID,
		"leaveType":  "Vacation",
		"startDate":  "2025-03-10",
		"endDate":    "2025-03-12",
		"reason":     "Đi du lịch",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddLeaveRejectsEndBeforeStart(t *testing.T) {
	db := newLeaveTestDB(t)
	employee := seedLeaveEmployee(t, db)
	router := setupLeaveRouter(db)

	w := doJSON(router, http.MethodPost, "/leaves", gin.H{
		"employeeId": employee.ID,
		"centerId":   employee.CenterID,
		"leaveType":  constants.LeaveTypeCasual,
		"startDate":  "2025-03-12",
		"endDate":    "2025-03-10",
		"reason":     "Việc gia đình",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateLeaveStatusApprove(t *testing.T) {
	db := newLeaveTestDB(t)
	employee := seedLeaveEmployee(t, db)
	router := setupLeaveRouter(db)

	leave := models.EmployeeLeave{
		EmployeeID: employee.ID,
		CenterID:   employee.CenterID,
		LeaveType:  constants.LeaveTypeAnnual,
		Reason:     "Nghỉ phép năm",
		StartDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Status:     constants.LeaveStatusPending,
	}
	require.NoError(t, db.Create(&leave).Error)

	w := doJSON(router, http.MethodPatch, "/leaveStatus/"+strconv.Itoa(int(leave.ID)), gin.H{
		"status": constants.LeaveStatusApproved,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.EmployeeLeave
	require.NoError(t, db.First(&updated, leave.ID).Error)
	assert.Equal(t, constants.LeaveStatusApproved, updated.Status)
}

func TestUpdateLeaveStatusOnlyFromPending(t *testing.T) {
	db := newLeaveTestDB(t)
	employee := seedLeaveEmployee(t, db)
	router := setupLeaveRouter(db)

	leave := models.EmployeeLeave{
		EmployeeID: employee.ID,
		CenterID:   employee.CenterID,
		LeaveType:  constants.LeaveTypeSick,
		Reason:     "Khám bệnh",
		StartDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		Status:     constants.LeaveStatusApproved,
	}
	require.NoError(t, db.Create(&leave).Error)

	// Đơn đã duyệt rồi thì không đổi trạng thái được nữa
	w := doJSON(router, http.MethodPatch, "/leaveStatus/"+strconv.Itoa(int(leave.ID)), gin.H{
		"status": constants.LeaveStatusRejected,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	var unchanged models.EmployeeLeave
	require.NoError(t, db.First(&unchanged, leave.ID).Error)
	assert.Equal(t, constants.LeaveStatusApproved, unchanged.Status)
}

func TestUpdateLeaveStatusRejectsInvalidStatus(t *testing.T) {
	db := newLeaveTestDB(t)
	employee := seedLeaveEmployee(t, db)
	router := setupLeaveRouter(db)

	leave := models.EmployeeLeave{
		EmployeeID: employee.ID,
		CenterID:   employee.CenterID,
		LeaveType:  constants.LeaveTypeSick,
		Reason:     "Khám bệnh",
		StartDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		Status:     constants.LeaveStatusPending,
	}
	require.NoError(t, db.Create(&leave).Error)

	w := doJSON(router, http.MethodPatch, "/leaveStatus/"+strconv.Itoa(int(leave.ID)), gin.H{
		"status": "Cancelled",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateLeaveStatusNotFound(t *testing.T) {
	db := newLeaveTestDB(t)
	router := setupLeaveRouter(db)

	w := doJSON(router, http.MethodPatch, "/leaveStatus/999", gin.H{
		"status": constants.LeaveStatusApproved,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetLeaveByEmployeeIncludesDays(t *testing.T) {
	db := newLeaveTestDB(t)
	employee := seedLeaveEmployee(t, db)
	router := setupLeaveRouter(db)

	leave := models.EmployeeLeave{
		EmployeeID: employee.ID,
		CenterID:   employee.CenterID,
		LeaveType:  constants.LeaveTypeAnnual,
		Reason:     "Nghỉ phép năm",
		StartDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Status:     constants.LeaveStatusPending,
	}
	require.NoError(t, db.Create(&leave).Error)

	w := doJSON(router, http.MethodGet, "/employeeLeaves/"+strconv.Itoa(int(employee.ID)), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			ID   uint `json:"id"`
			Days int  `json:"days"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 4, resp.Data[0].Days)
}
