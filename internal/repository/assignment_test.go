//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"guard-roster-backend/internal/database/models"
	apperrors "guard-roster-backend/internal/errors"
	"guard-roster-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// AssignmentRepositoryTestSuite tests the AssignmentRepository
type AssignmentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AssignmentRepository

	sites       *testutils.SiteFactory
	users       *testutils.UserFactory
	shifts      *testutils.ShiftFactory
	assignments *testutils.AssignmentFactory
}

func (suite *AssignmentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAssignmentRepository(suite.baseTestSuite.DB)
	suite.sites = testutils.NewSiteFactory()
	suite.users = testutils.NewUserFactory()
	suite.shifts = testutils.NewShiftFactory()
	suite.assignments = testutils.NewAssignmentFactory()
}

func (suite *AssignmentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *AssignmentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *AssignmentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AssignmentRepositoryTestSuite) createFixture() (*models.User, *models.Shift) {
	site := suite.sites.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(site).Error)

	user := suite.users.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)

	shift := suite.shifts.Create(site.ID, time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC), 8)
	suite.NoError(suite.baseTestSuite.DB.Create(shift).Error)

	return user, shift
}

func (suite *AssignmentRepositoryTestSuite) TestCreate() {
	user, shift := suite.createFixture()

	assignment := suite.assignments.Create(user.ID, shift.ID)
	suite.NoError(suite.repo.Create(assignment))

	retrieved, err := suite.repo.GetByID(assignment.ID)
	suite.NoError(err)
	suite.Equal(user.ID, retrieved.UserID)
	suite.Equal(shift.ID, retrieved.ShiftID)
	suite.Equal(models.AssignmentStatusAssigned, retrieved.Status)
	suite.Equal(models.AssignmentOriginPlanned, retrieved.Origin)
}

// The (user_id, shift_id) unique constraint is the concurrency guard for
// auto-fill: a second insert for the same pair must surface as
// ErrAssignmentExists, not a raw driver error.
func (suite *AssignmentRepositoryTestSuite) TestCreateDuplicate() {
	user, shift := suite.createFixture()

	first := suite.assignments.Create(user.ID, shift.ID)
	suite.NoError(suite.repo.Create(first))

	second := suite.assignments.Create(user.ID, shift.ID)
	err := suite.repo.Create(second)

	suite.Error(err)
	suite.True(apperrors.IsAlreadyExists(err))
	suite.ErrorIs(err, apperrors.ErrAssignmentExists)
}

func (suite *AssignmentRepositoryTestSuite) TestGetActiveByShiftID() {
	user, shift := suite.createFixture()
	other := suite.users.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(other).Error)

	active := suite.assignments.Create(user.ID, shift.ID)
	suite.NoError(suite.repo.Create(active))

	cancelled := suite.assignments.Create(other.ID, shift.ID)
	cancelled.Status = models.AssignmentStatusCancelled
	suite.NoError(suite.repo.Create(cancelled))

	assignments, err := suite.repo.GetActiveByShiftID(shift.ID)

	suite.NoError(err)
	suite.Len(assignments, 1)
	suite.Equal(user.ID, assignments[0].UserID)
	suite.Equal(user.ID, assignments[0].User.ID)
}

func (suite *AssignmentRepositoryTestSuite) TestGetActiveByUserInRange() {
	user, shift := suite.createFixture()

	assignment := suite.assignments.Create(user.ID, shift.ID)
	suite.NoError(suite.repo.Create(assignment))

	// Window intersecting the shift
	found, err := suite.repo.GetActiveByUserInRange(user.ID,
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC))
	suite.NoError(err)
	suite.Len(found, 1)
	suite.Equal(shift.ID, found[0].Shift.ID)

	// Window after the shift
	found, err = suite.repo.GetActiveByUserInRange(user.ID,
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC))
	suite.NoError(err)
	suite.Empty(found)
}

func (suite *AssignmentRepositoryTestSuite) TestUpdateStatus() {
	user, shift := suite.createFixture()

	assignment := suite.assignments.Create(user.ID, shift.ID)
	suite.NoError(suite.repo.Create(assignment))

	assignment.Status = models.AssignmentStatusConfirmed
	suite.NoError(suite.repo.Update(assignment))

	retrieved, err := suite.repo.GetByID(assignment.ID)
	suite.NoError(err)
	suite.Equal(models.AssignmentStatusConfirmed, retrieved.Status)
}

func (suite *AssignmentRepositoryTestSuite) TestDeletedShiftCascades() {
	user, shift := suite.createFixture()

	assignment := suite.assignments.Create(user.ID, shift.ID)
	suite.NoError(suite.repo.Create(assignment))

	suite.NoError(suite.baseTestSuite.DB.Delete(&models.Shift{}, "id = ?", shift.ID).Error)

	assignments, err := suite.repo.GetByShiftID(shift.ID)
	suite.NoError(err)
	suite.Empty(assignments)
}

// Run the test suite
func TestAssignmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentRepositoryTestSuite))
}
