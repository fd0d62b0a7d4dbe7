package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/rovema/comercial-backend/internal/apperrors"
	"github.com/rovema/comercial-backend/internal/core/domain"
	portssvc "github.com/rovema/comercial-backend/internal/core/ports/services"
	"github.com/rovema/comercial-backend/internal/core/services"
	"github.com/rovema/comercial-backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock VisitRepository ---

type MockVisitRepository struct {
	mock.Mock
}

func (m *MockVisitRepository) FindVisitByID(ctx context.Context, visitID string) (*domain.Visit, error) {
	args := m.Called(ctx, visitID)
	var visit *domain.Visit
	if args.Get(0) != nil {
		visit = args.Get(0).(*domain.Visit)
	}
	return visit, args.Error(1)
}

func (m *MockVisitRepository) FindVisitsByCollaborator(ctx context.Context, email string, rng domain.TimeRange, limit int) ([]domain.Visit, error) {
	args := m.Called(ctx, email, rng, limit)
	var visits []domain.Visit
	if args.Get(0) != nil {
		visits = args.Get(0).([]domain.Visit)
	}
	return visits, args.Error(1)
}

func (m *MockVisitRepository) FindDistinctClientNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	var names []string
	if args.Get(0) != nil {
		names = args.Get(0).([]string)
	}
	return names, args.Error(1)
}

func (m *MockVisitRepository) FindUpcomingFollowUps(ctx context.Context, email string, asOf time.Time) ([]domain.Visit, error) {
	args := m.Called(ctx, email, asOf)
	var visits []domain.Visit
	if args.Get(0) != nil {
		visits = args.Get(0).([]domain.Visit)
	}
	return visits, args.Error(1)
}

func (m *MockVisitRepository) SaveVisit(ctx context.Context, visit domain.Visit) error {
	args := m.Called(ctx, visit)
	return args.Error(0)
}

func (m *MockVisitRepository) DeleteVisit(ctx context.Context, visitID string) error {
	args := m.Called(ctx, visitID)
	return args.Error(0)
}

// stubGeocoder always answers with a fixed address.
type stubGeocoder struct {
	address string
	calls   int
}

func (g *stubGeocoder) ReverseGeocode(ctx context.Context, lat, lon float64) string {
	g.calls++
	return g.address
}

// --- Test Suite ---

type VisitServiceTestSuite struct {
	suite.Suite
	mockVisitRepo *MockVisitRepository
	geocoder      *stubGeocoder
	service       portssvc.VisitSvcFacade
	now           time.Time
}

func (suite *VisitServiceTestSuite) SetupTest() {
	suite.mockVisitRepo = new(MockVisitRepository)
	suite.geocoder = &stubGeocoder{address: "Av. Sete de Setembro, Porto Velho"}
	suite.now = time.Date(2024, time.March, 15, 14, 30, 0, 0, time.Local)
	suite.service = services.NewVisitService(
		suite.mockVisitRepo,
		suite.geocoder,
		services.WithAccuracyLimit(150),
		services.WithClock(func() time.Time { return suite.now }),
	)
}

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func validCreateRequest() dto.CreateVisitRequest {
	return dto.CreateVisitRequest{
		ClientName:     "Mercado Central",
		Status:         "SALE",
		Notes:          "Closed a supply contract",
		Latitude:       floatPtr(-8.76194),
		Longitude:      floatPtr(-63.90389),
		AccuracyMeters: 80,
	}
}

// --- RecordVisit Tests ---

func (suite *VisitServiceTestSuite) TestRecordVisit_Success() {
	ctx := context.Background()
	auth := collaboratorAuth()
	req := validCreateRequest()

	suite.mockVisitRepo.On("SaveVisit", ctx, mock.MatchedBy(func(v domain.Visit) bool {
		return v.CollaboratorEmail == auth.Email &&
			v.CollaboratorName == auth.Name &&
			v.ClientName == req.ClientName &&
			v.Status == domain.StatusSale &&
			v.FollowUpDate == nil &&
			v.Address == suite.geocoder.address &&
			v.CreatedAt.Equal(suite.now)
	})).Return(nil).Once()

	visit, err := suite.service.RecordVisit(ctx, auth, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(visit)
	suite.NotEmpty(visit.VisitID)
	suite.Equal(1, suite.geocoder.calls)
	suite.mockVisitRepo.AssertExpectations(suite.T())
}

func (suite *VisitServiceTestSuite) TestRecordVisit_ImpreciseFixRejected() {
	ctx := context.Background()
	req := validCreateRequest()
	req.AccuracyMeters = 200

	visit, err := suite.service.RecordVisit(ctx, collaboratorAuth(), req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Require().ErrorIs(err, domain.ErrFixImprecise)
	suite.Nil(visit)
	suite.mockVisitRepo.AssertNotCalled(suite.T(), "SaveVisit", mock.Anything, mock.Anything)
}

func (suite *VisitServiceTestSuite) TestRecordVisit_BoundaryAccuracyAccepted() {
	ctx := context.Background()
	req := validCreateRequest()
	req.AccuracyMeters = 150 // exactly at the limit

	suite.mockVisitRepo.On("SaveVisit", ctx, mock.AnythingOfType("domain.Visit")).Return(nil).Once()

	visit, err := suite.service.RecordVisit(ctx, collaboratorAuth(), req)

	suite.Require().NoError(err)
	suite.NotNil(visit)
}

func (suite *VisitServiceTestSuite) TestRecordVisit_MissingCoordinatesRejected() {
	ctx := context.Background()
	req := validCreateRequest()
	req.Latitude = nil
	req.Longitude = nil

	visit, err := suite.service.RecordVisit(ctx, collaboratorAuth(), req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Require().ErrorIs(err, domain.ErrFixMissing)
	suite.Nil(visit)
	suite.mockVisitRepo.AssertNotCalled(suite.T(), "SaveVisit", mock.Anything, mock.Anything)
}

func (suite *VisitServiceTestSuite) TestRecordVisit_EmptyClientNameRejected() {
	ctx := context.Background()
	req := validCreateRequest()
	req.ClientName = "   "

	visit, err := suite.service.RecordVisit(ctx, collaboratorAuth(), req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(visit)
	suite.Zero(suite.geocoder.calls)
}

func (suite *VisitServiceTestSuite) TestRecordVisit_UnknownStatusRejected() {
	ctx := context.Background()
	req := validCreateRequest()
	req.Status = "NOT_INFORMED" // legacy read-side value, never writable

	visit, err := suite.service.RecordVisit(ctx, collaboratorAuth(), req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(visit)
}

func (suite *VisitServiceTestSuite) TestRecordVisit_FollowUpRequiredWhenScheduled() {
	ctx := context.Background()
	req := validCreateRequest()
	req.Status = "FOLLOW_UP_SCHEDULED"
	req.FollowUpDate = nil

	visit, err := suite.service.RecordVisit(ctx, collaboratorAuth(), req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(visit)
}

func (suite *VisitServiceTestSuite) TestRecordVisit_FollowUpStoredWhenScheduled() {
	ctx := context.Background()
	req := validCreateRequest()
	req.Status = "FOLLOW_UP_SCHEDULED"
	req.FollowUpDate = strPtr("2024-03-22")

	suite.mockVisitRepo.On("SaveVisit", ctx, mock.MatchedBy(func(v domain.Visit) bool {
		return v.FollowUpDate != nil && v.FollowUpDate.Format("2006-01-02") == "2024-03-22"
	})).Return(nil).Once()

	visit, err := suite.service.RecordVisit(ctx, collaboratorAuth(), req)

	suite.Require().NoError(err)
	suite.Require().NotNil(visit.FollowUpDate)
	suite.mockVisitRepo.AssertExpectations(suite.T())
}

func (suite *VisitServiceTestSuite) TestRecordVisit_FollowUpDiscardedForOtherStatuses() {
	ctx := context.Background()
	req := validCreateRequest()
	req.Status = "SALE"
	req.FollowUpDate = strPtr("2024-03-22")

	suite.mockVisitRepo.On("SaveVisit", ctx, mock.MatchedBy(func(v domain.Visit) bool {
		return v.FollowUpDate == nil
	})).Return(nil).Once()

	visit, err := suite.service.RecordVisit(ctx, collaboratorAuth(), req)

	suite.Require().NoError(err)
	suite.Nil(visit.FollowUpDate)
	suite.mockVisitRepo.AssertExpectations(suite.T())
}

// --- DeleteVisit Tests ---

func (suite *VisitServiceTestSuite) TestDeleteVisit_Owner() {
	ctx := context.Background()
	auth := collaboratorAuth()
	stored := &domain.Visit{VisitID: "visit-1", CollaboratorEmail: auth.Email}

	suite.mockVisitRepo.On("FindVisitByID", ctx, "visit-1").Return(stored, nil).Once()
	suite.mockVisitRepo.On("DeleteVisit", ctx, "visit-1").Return(nil).Once()

	err := suite.service.DeleteVisit(ctx, auth, "visit-1")

	suite.Require().NoError(err)
	suite.mockVisitRepo.AssertExpectations(suite.T())
}

func (suite *VisitServiceTestSuite) TestDeleteVisit_NotOwner() {
	ctx := context.Background()
	stored := &domain.Visit{VisitID: "visit-1", CollaboratorEmail: "someone-else@example.com"}

	suite.mockVisitRepo.On("FindVisitByID", ctx, "visit-1").Return(stored, nil).Once()

	err := suite.service.DeleteVisit(ctx, collaboratorAuth(), "visit-1")

	suite.Require().ErrorIs(err, apperrors.ErrNotOwner)
	suite.mockVisitRepo.AssertNotCalled(suite.T(), "DeleteVisit", mock.Anything, mock.Anything)
}

func (suite *VisitServiceTestSuite) TestDeleteVisit_NotFound() {
	ctx := context.Background()

	suite.mockVisitRepo.On("FindVisitByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteVisit(ctx, collaboratorAuth(), "missing")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

// --- ListMyVisits Tests ---

func (suite *VisitServiceTestSuite) TestListMyVisits_ResolvesWindow() {
	ctx := context.Background()
	auth := collaboratorAuth()
	expected := []domain.Visit{{VisitID: "visit-1"}}

	suite.mockVisitRepo.On("FindVisitsByCollaborator", ctx, auth.Email, mock.MatchedBy(func(rng domain.TimeRange) bool {
		// "today" resolves to local midnight of the frozen clock.
		return rng.Start != nil && rng.Start.Equal(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local))
	}), 15).Return(expected, nil).Once()

	visits, err := suite.service.ListMyVisits(ctx, auth, domain.WindowToday, 15)

	suite.Require().NoError(err)
	suite.Equal(expected, visits)
	suite.mockVisitRepo.AssertExpectations(suite.T())
}

func TestVisitServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VisitServiceTestSuite))
}
