package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"guard-roster-backend/internal/api/handlers"
	"guard-roster-backend/internal/database/models"
	apperrors "guard-roster-backend/internal/errors"
	"guard-roster-backend/internal/mocks"
	"guard-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ShiftHandlerTestSuite defines the test suite for ShiftHandler
type ShiftHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockShiftSvc *mocks.MockShiftServiceInterface
	handler      *handlers.ShiftHandler
	router       *gin.Engine
}

func (suite *ShiftHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockShiftSvc = mocks.NewMockShiftServiceInterface(suite.ctrl)
	suite.handler = handlers.NewShiftHandler(suite.mockShiftSvc)

	suite.router = gin.New()
	suite.router.POST("/shifts", suite.handler.CreateShift)
	suite.router.GET("/shifts/:id", suite.handler.GetShift)
	suite.router.PUT("/shifts/:id", suite.handler.UpdateShift)
	suite.router.DELETE("/shifts/:id", suite.handler.DeleteShift)
	suite.router.GET("/sites/:id/shifts", suite.handler.GetShiftsBySite)
}

func (suite *ShiftHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ShiftHandlerTestSuite) TestCreateShift_Success() {
	siteID := uuid.New()
	start := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)

	resp := &service.ShiftResponse{
		ID:                     uuid.New(),
		SiteID:                 siteID,
		StartTime:              start,
		EndTime:                end,
		RequiredEmployees:      2,
		RequiredQualifications: []string{"firearms"},
		Status:                 models.ShiftStatusPlanned,
		ShiftType:              models.ShiftTypeDay,
	}
	suite.mockShiftSvc.EXPECT().Create(gomock.Any()).DoAndReturn(
		func(req *service.CreateShiftRequest) (*service.ShiftResponse, error) {
			assert.Equal(suite.T(), siteID, req.SiteID)
			assert.Equal(suite.T(), 2, req.RequiredEmployees)
			return resp, nil
		})

	body, _ := json.Marshal(service.CreateShiftRequest{
		SiteID:                 siteID,
		StartTime:              start,
		EndTime:                end,
		RequiredEmployees:      2,
		RequiredQualifications: []string{"firearms"},
	})
	req := httptest.NewRequest(http.MethodPost, "/shifts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.ShiftResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), resp.ID, got.ID)
	assert.Equal(suite.T(), models.ShiftStatusPlanned, got.Status)
	assert.Equal(suite.T(), models.ShiftTypeDay, got.ShiftType)
}

func (suite *ShiftHandlerTestSuite) TestCreateShift_InvalidTimeRange() {
	suite.mockShiftSvc.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrInvalidTimeRange)

	start := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	body, _ := json.Marshal(service.CreateShiftRequest{
		SiteID:            uuid.New(),
		StartTime:         start,
		EndTime:           start,
		RequiredEmployees: 1,
	})
	req := httptest.NewRequest(http.MethodPost, "/shifts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid time range")
}

func (suite *ShiftHandlerTestSuite) TestCreateShift_SiteNotFound() {
	suite.mockShiftSvc.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrSiteNotFound)

	start := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	body, _ := json.Marshal(service.CreateShiftRequest{
		SiteID:            uuid.New(),
		StartTime:         start,
		EndTime:           start.Add(8 * time.Hour),
		RequiredEmployees: 1,
	})
	req := httptest.NewRequest(http.MethodPost, "/shifts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ShiftHandlerTestSuite) TestGetShift_Success() {
	shiftID := uuid.New()
	resp := &service.ShiftResponse{
		ID:                     shiftID,
		SiteID:                 uuid.New(),
		RequiredEmployees:      2,
		RequiredQualifications: []string{},
		Status:                 models.ShiftStatusPublished,
		ShiftType:              models.ShiftTypeNight,
		AssignedCount:          1,
	}
	suite.mockShiftSvc.EXPECT().GetByID(shiftID).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/shifts/"+shiftID.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ShiftResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), shiftID, got.ID)
	assert.Equal(suite.T(), 1, got.AssignedCount)
}

func (suite *ShiftHandlerTestSuite) TestGetShift_InvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/shifts/not-a-uuid", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid shift id")
}

func (suite *ShiftHandlerTestSuite) TestGetShift_NotFound() {
	shiftID := uuid.New()
	suite.mockShiftSvc.EXPECT().GetByID(shiftID).Return(nil, apperrors.ErrShiftNotFound)

	req := httptest.NewRequest(http.MethodGet, "/shifts/"+shiftID.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ShiftHandlerTestSuite) TestGetShiftsBySite_Pagination() {
	siteID := uuid.New()
	resp := &service.ShiftListResponse{
		Shifts:   []service.ShiftResponse{},
		Total:    0,
		Page:     3,
		PageSize: 10,
	}
	suite.mockShiftSvc.EXPECT().GetBySite(siteID, 3, 10).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/sites/"+siteID.String()+"/shifts?page=3&page_size=10", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ShiftListResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, got.Page)
	assert.Equal(suite.T(), 10, got.PageSize)
}

func (suite *ShiftHandlerTestSuite) TestUpdateShift_Success() {
	shiftID := uuid.New()
	newRequired := 3
	resp := &service.ShiftResponse{
		ID:                shiftID,
		RequiredEmployees: newRequired,
		Status:            models.ShiftStatusPublished,
	}
	suite.mockShiftSvc.EXPECT().Update(shiftID, gomock.Any()).DoAndReturn(
		func(id uuid.UUID, req *service.UpdateShiftRequest) (*service.ShiftResponse, error) {
			assert.NotNil(suite.T(), req.RequiredEmployees)
			assert.Equal(suite.T(), newRequired, *req.RequiredEmployees)
			return resp, nil
		})

	body, _ := json.Marshal(service.UpdateShiftRequest{RequiredEmployees: &newRequired})
	req := httptest.NewRequest(http.MethodPut, "/shifts/"+shiftID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ShiftHandlerTestSuite) TestDeleteShift_Success() {
	shiftID := uuid.New()
	suite.mockShiftSvc.EXPECT().Delete(shiftID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/shifts/"+shiftID.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *ShiftHandlerTestSuite) TestDeleteShift_ServiceError() {
	shiftID := uuid.New()
	suite.mockShiftSvc.EXPECT().Delete(shiftID).Return(errors.New("db failure"))

	req := httptest.NewRequest(http.MethodDelete, "/shifts/"+shiftID.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Failed to delete shift")
	assert.Contains(suite.T(), w.Body.String(), "db failure")
}

func TestShiftHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftHandlerTestSuite))
}
