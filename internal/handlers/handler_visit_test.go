package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/rovema/comercial-backend/internal/apperrors"
	"github.com/rovema/comercial-backend/internal/core/domain"
	portssvc "github.com/rovema/comercial-backend/internal/core/ports/services"
	"github.com/rovema/comercial-backend/internal/dto"
	"github.com/rovema/comercial-backend/internal/handlers"
	"github.com/rovema/comercial-backend/internal/middleware"
	"github.com/rovema/comercial-backend/internal/utils"
)

// --- Mock VisitService ---

type MockVisitService struct {
	mock.Mock
}

func (m *MockVisitService) RecordVisit(ctx context.Context, auth domain.AuthContext, req dto.CreateVisitRequest) (*domain.Visit, error) {
	args := m.Called(ctx, auth, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Visit), args.Error(1)
}

func (m *MockVisitService) ListMyVisits(ctx context.Context, auth domain.AuthContext, window domain.TimeWindow, limit int) ([]domain.Visit, error) {
	args := m.Called(ctx, auth, window, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Visit), args.Error(1)
}

func (m *MockVisitService) ListClientNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockVisitService) DeleteVisit(ctx context.Context, auth domain.AuthContext, visitID string) error {
	args := m.Called(ctx, auth, visitID)
	return args.Error(0)
}

func (m *MockVisitService) ListUpcomingFollowUps(ctx context.Context, auth domain.AuthContext, asOf time.Time) ([]domain.Visit, error) {
	args := m.Called(ctx, auth, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Visit), args.Error(1)
}

var _ portssvc.VisitSvcFacade = (*MockVisitService)(nil)

// --- Mock ReportingService ---

type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) QueryVisits(ctx context.Context, statusIn []domain.VisitStatus, collaboratorName string, window domain.TimeWindow) ([]domain.Visit, error) {
	args := m.Called(ctx, statusIn, collaboratorName, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Visit), args.Error(1)
}

func (m *MockReportingService) Summary(ctx context.Context, window domain.TimeWindow, topN int) (*domain.ActivitySummary, error) {
	args := m.Called(ctx, window, topN)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActivitySummary), args.Error(1)
}

func (m *MockReportingService) QuotaProgress(ctx context.Context, email string) (domain.QuotaProgress, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.QuotaProgress), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Test Suite ---

type VisitHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockVisitService     *MockVisitService
	mockReportingService *MockReportingService
	jwtSecret            string
}

func (suite *VisitHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterCustomValidators()
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockVisitService = new(MockVisitService)
	suite.mockReportingService = new(MockReportingService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterVisitRoutes(v1, suite.mockVisitService, suite.mockReportingService)
}

// generateTestToken creates a signed JWT for a test collaborator.
func (suite *VisitHandlerTestSuite) generateTestToken(email, name string) string {
	user := &domain.User{
		UserID: uuid.NewString(),
		Email:  email,
		Name:   name,
		Role:   domain.RoleCollaborator,
	}
	token, err := utils.GenerateJWT(user, suite.jwtSecret, time.Hour, "test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

// --- Test Cases ---

func (suite *VisitHandlerTestSuite) TestCreateVisit_Success() {
	email := "joao@example.com"
	lat, lon := -8.76194, -63.90389
	created := &domain.Visit{
		VisitID:           uuid.NewString(),
		CollaboratorEmail: email,
		CollaboratorName:  "Joao",
		ClientName:        "Mercado Central",
		Status:            domain.StatusSale,
		Notes:             "Closed a deal",
		Latitude:          lat,
		Longitude:         lon,
		Address:           "Av. Sete de Setembro",
		CreatedAt:         time.Now(),
	}

	suite.mockVisitService.On("RecordVisit",
		mock.AnythingOfType("*context.valueCtx"),
		mock.MatchedBy(func(auth domain.AuthContext) bool { return auth.Email == email }),
		mock.MatchedBy(func(req dto.CreateVisitRequest) bool {
			return req.ClientName == "Mercado Central" && req.AccuracyMeters == 80
		}),
	).Return(created, nil).Once()

	body, _ := json.Marshal(gin.H{
		"clientName":     "Mercado Central",
		"status":         "SALE",
		"notes":          "Closed a deal",
		"latitude":       lat,
		"longitude":      lon,
		"accuracyMeters": 80,
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/visits", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(email, "Joao"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.VisitResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.VisitID, resp.VisitID)
	suite.Equal("SALE", resp.Status)
	suite.mockVisitService.AssertExpectations(suite.T())
}

func (suite *VisitHandlerTestSuite) TestCreateVisit_ValidationErrorIs400() {
	email := "joao@example.com"

	suite.mockVisitService.On("RecordVisit",
		mock.AnythingOfType("*context.valueCtx"),
		mock.AnythingOfType("domain.AuthContext"),
		mock.AnythingOfType("dto.CreateVisitRequest"),
	).Return(nil, apperrors.ErrValidation).Once()

	body, _ := json.Marshal(gin.H{
		"clientName":     "Mercado Central",
		"status":         "SALE",
		"notes":          "Closed a deal",
		"latitude":       -8.76194,
		"longitude":      -63.90389,
		"accuracyMeters": 999,
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/visits", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(email, "Joao"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *VisitHandlerTestSuite) TestCreateVisit_NoToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/visits", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockVisitService.AssertNotCalled(suite.T(), "RecordVisit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VisitHandlerTestSuite) TestListMyVisits_WindowAndLimit() {
	email := "joao@example.com"
	visits := []domain.Visit{{VisitID: uuid.NewString(), CollaboratorEmail: email, CreatedAt: time.Now()}}

	suite.mockVisitService.On("ListMyVisits",
		mock.AnythingOfType("*context.valueCtx"),
		mock.MatchedBy(func(auth domain.AuthContext) bool { return auth.Email == email }),
		domain.WindowThisWeek,
		10,
	).Return(visits, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/visits?window=week&limit=10", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(email, "Joao"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListVisitsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Visits, 1)
	suite.mockVisitService.AssertExpectations(suite.T())
}

func (suite *VisitHandlerTestSuite) TestListMyVisits_DefaultsTo15Rows() {
	email := "joao@example.com"

	suite.mockVisitService.On("ListMyVisits",
		mock.AnythingOfType("*context.valueCtx"),
		mock.AnythingOfType("domain.AuthContext"),
		domain.WindowAll,
		15,
	).Return([]domain.Visit{}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/visits", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(email, "Joao"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockVisitService.AssertExpectations(suite.T())
}

func (suite *VisitHandlerTestSuite) TestListMyVisits_UnknownWindowIs400() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/visits?window=quarter", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("joao@example.com", "Joao"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockVisitService.AssertNotCalled(suite.T(), "ListMyVisits", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VisitHandlerTestSuite) TestDeleteVisit_NotOwnerIs403() {
	email := "joao@example.com"
	visitID := uuid.NewString()

	suite.mockVisitService.On("DeleteVisit",
		mock.AnythingOfType("*context.valueCtx"),
		mock.MatchedBy(func(auth domain.AuthContext) bool { return auth.Email == email }),
		visitID,
	).Return(apperrors.ErrNotOwner).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/visits/"+visitID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(email, "Joao"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockVisitService.AssertExpectations(suite.T())
}

func (suite *VisitHandlerTestSuite) TestDeleteVisit_Success() {
	email := "joao@example.com"
	visitID := uuid.NewString()

	suite.mockVisitService.On("DeleteVisit",
		mock.AnythingOfType("*context.valueCtx"),
		mock.AnythingOfType("domain.AuthContext"),
		visitID,
	).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/visits/"+visitID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(email, "Joao"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *VisitHandlerTestSuite) TestMyQuotaProgress() {
	email := "joao@example.com"

	suite.mockReportingService.On("QuotaProgress",
		mock.AnythingOfType("*context.valueCtx"),
		email,
	).Return(domain.QuotaProgress{Completed: 5, Target: 20, Fraction: 0.25}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/me/quota", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(email, "Joao"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.QuotaProgressResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(5, resp.Completed)
	suite.Equal(20, resp.Target)
	suite.InDelta(0.25, resp.Fraction, 1e-9)
}

func TestVisitHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(VisitHandlerTestSuite))
}
