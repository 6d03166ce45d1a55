package service_test

import (
	"errors"
	"testing"
	"time"

	"guard-roster-backend/internal/database/models"
	apperrors "guard-roster-backend/internal/errors"
	"guard-roster-backend/internal/mocks"
	"guard-roster-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AssignmentServiceTestSuite defines the test suite for AssignmentService
type AssignmentServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockAssignmentRepo *mocks.MockAssignmentRepositoryInterface
	mockShiftRepo      *mocks.MockShiftRepositoryInterface
	mockUserRepo       *mocks.MockUserRepositoryInterface
	assignmentService  *service.AssignmentService
	validator          *validator.Validate
}

func (suite *AssignmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAssignmentRepo = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.mockShiftRepo = mocks.NewMockShiftRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.assignmentService = service.NewAssignmentService(
		suite.mockAssignmentRepo,
		suite.mockShiftRepo,
		suite.mockUserRepo,
		suite.validator,
	)
}

func (suite *AssignmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssignmentServiceTestSuite) activeUser(id uuid.UUID) *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: id},
		FirstName: "Dana",
		LastName:  "Weiss",
		Email:     "dana.weiss@example.com",
		Role:      models.UserRoleEmployee,
		IsActive:  true,
	}
}

func (suite *AssignmentServiceTestSuite) plannedShift(id uuid.UUID) *models.Shift {
	start := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	return &models.Shift{
		BaseModel:         models.BaseModel{ID: id},
		SiteID:            uuid.New(),
		StartTime:         start,
		EndTime:           start.Add(8 * time.Hour),
		RequiredEmployees: 1,
		Status:            models.ShiftStatusPlanned,
	}
}

func (suite *AssignmentServiceTestSuite) TestCreate_Success() {
	userID := uuid.New()
	shiftID := uuid.New()

	suite.mockUserRepo.EXPECT().GetByID(userID).Return(suite.activeUser(userID), nil)
	suite.mockShiftRepo.EXPECT().GetByID(shiftID).Return(suite.plannedShift(shiftID), nil)
	suite.mockAssignmentRepo.EXPECT().Create(gomock.Any()).DoAndReturn(
		func(a *models.Assignment) error {
			a.ID = uuid.New()
			return nil
		})

	resp, err := suite.assignmentService.Create(&service.CreateAssignmentRequest{
		UserID:  userID,
		ShiftID: shiftID,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), userID, resp.UserID)
	assert.Equal(suite.T(), shiftID, resp.ShiftID)
	assert.Equal(suite.T(), models.AssignmentStatusAssigned, resp.Status)
	assert.Equal(suite.T(), models.AssignmentOriginPlanned, resp.Origin)
}

func (suite *AssignmentServiceTestSuite) TestCreate_UserNotFound() {
	userID := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(userID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.assignmentService.Create(&service.CreateAssignmentRequest{
		UserID:  userID,
		ShiftID: uuid.New(),
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *AssignmentServiceTestSuite) TestCreate_InactiveUser() {
	userID := uuid.New()
	user := suite.activeUser(userID)
	user.IsActive = false
	suite.mockUserRepo.EXPECT().GetByID(userID).Return(user, nil)

	resp, err := suite.assignmentService.Create(&service.CreateAssignmentRequest{
		UserID:  userID,
		ShiftID: uuid.New(),
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserInactive)
}

func (suite *AssignmentServiceTestSuite) TestCreate_CancelledShift() {
	userID := uuid.New()
	shiftID := uuid.New()
	shift := suite.plannedShift(shiftID)
	shift.Status = models.ShiftStatusCancelled

	suite.mockUserRepo.EXPECT().GetByID(userID).Return(suite.activeUser(userID), nil)
	suite.mockShiftRepo.EXPECT().GetByID(shiftID).Return(shift, nil)

	resp, err := suite.assignmentService.Create(&service.CreateAssignmentRequest{
		UserID:  userID,
		ShiftID: shiftID,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrShiftInactive)
}

func (suite *AssignmentServiceTestSuite) TestCreate_AlreadyAssigned() {
	userID := uuid.New()
	shiftID := uuid.New()

	suite.mockUserRepo.EXPECT().GetByID(userID).Return(suite.activeUser(userID), nil)
	suite.mockShiftRepo.EXPECT().GetByID(shiftID).Return(suite.plannedShift(shiftID), nil)
	suite.mockAssignmentRepo.EXPECT().Create(gomock.Any()).Return(apperrors.ErrAssignmentExists)

	resp, err := suite.assignmentService.Create(&service.CreateAssignmentRequest{
		UserID:  userID,
		ShiftID: shiftID,
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

func (suite *AssignmentServiceTestSuite) TestCreate_ValidationError() {
	resp, err := suite.assignmentService.Create(&service.CreateAssignmentRequest{})

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *AssignmentServiceTestSuite) TestGetByShift_Success() {
	shiftID := uuid.New()
	suite.mockShiftRepo.EXPECT().GetByID(shiftID).Return(suite.plannedShift(shiftID), nil)
	suite.mockAssignmentRepo.EXPECT().GetByShiftID(shiftID).Return([]models.Assignment{
		{
			BaseModel: models.BaseModel{ID: uuid.New()},
			UserID:    uuid.New(),
			ShiftID:   shiftID,
			Status:    models.AssignmentStatusConfirmed,
			Origin:    models.AssignmentOriginReplacement,
		},
	}, nil)

	responses, err := suite.assignmentService.GetByShift(shiftID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 1)
	assert.Equal(suite.T(), models.AssignmentStatusConfirmed, responses[0].Status)
	assert.Equal(suite.T(), models.AssignmentOriginReplacement, responses[0].Origin)
}

func (suite *AssignmentServiceTestSuite) TestGetByShift_ShiftNotFound() {
	shiftID := uuid.New()
	suite.mockShiftRepo.EXPECT().GetByID(shiftID).Return(nil, gorm.ErrRecordNotFound)

	responses, err := suite.assignmentService.GetByShift(shiftID)

	assert.Nil(suite.T(), responses)
	assert.ErrorIs(suite.T(), err, apperrors.ErrShiftNotFound)
}

func (suite *AssignmentServiceTestSuite) TestConfirm_Success() {
	id := uuid.New()
	assignment := &models.Assignment{
		BaseModel: models.BaseModel{ID: id},
		UserID:    uuid.New(),
		ShiftID:   uuid.New(),
		Status:    models.AssignmentStatusAssigned,
		Origin:    models.AssignmentOriginPlanned,
	}
	suite.mockAssignmentRepo.EXPECT().GetByID(id).Return(assignment, nil)
	suite.mockAssignmentRepo.EXPECT().Update(assignment).Return(nil)

	resp, err := suite.assignmentService.Confirm(id)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.AssignmentStatusConfirmed, resp.Status)
}

func (suite *AssignmentServiceTestSuite) TestConfirm_WrongStatus() {
	id := uuid.New()
	assignment := &models.Assignment{
		BaseModel: models.BaseModel{ID: id},
		Status:    models.AssignmentStatusCancelled,
	}
	suite.mockAssignmentRepo.EXPECT().GetByID(id).Return(assignment, nil)

	resp, err := suite.assignmentService.Confirm(id)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
}

func (suite *AssignmentServiceTestSuite) TestCancel_ConfirmedAssignment() {
	id := uuid.New()
	assignment := &models.Assignment{
		BaseModel: models.BaseModel{ID: id},
		Status:    models.AssignmentStatusConfirmed,
	}
	suite.mockAssignmentRepo.EXPECT().GetByID(id).Return(assignment, nil)
	suite.mockAssignmentRepo.EXPECT().Update(assignment).Return(nil)

	resp, err := suite.assignmentService.Cancel(id)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.AssignmentStatusCancelled, resp.Status)
}

func (suite *AssignmentServiceTestSuite) TestCancel_StartedAssignment() {
	id := uuid.New()
	assignment := &models.Assignment{
		BaseModel: models.BaseModel{ID: id},
		Status:    models.AssignmentStatusStarted,
	}
	suite.mockAssignmentRepo.EXPECT().GetByID(id).Return(assignment, nil)

	resp, err := suite.assignmentService.Cancel(id)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
}

func (suite *AssignmentServiceTestSuite) TestCancel_NotFound() {
	id := uuid.New()
	suite.mockAssignmentRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.assignmentService.Cancel(id)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAssignmentNotFound)
}

func (suite *AssignmentServiceTestSuite) TestRepositoryError() {
	id := uuid.New()
	suite.mockAssignmentRepo.EXPECT().GetByID(id).Return(nil, errors.New("db failed"))

	resp, err := suite.assignmentService.Confirm(id)

	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "failed to get assignment")
}

func TestAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentServiceTestSuite))
}
