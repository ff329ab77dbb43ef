package server_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"github.com/hoplog/hoplog/mocks"
	"github.com/hoplog/hoplog/pkg/auth"
	"github.com/hoplog/hoplog/pkg/model"
	"github.com/hoplog/hoplog/pkg/moderation"
	"github.com/hoplog/hoplog/pkg/repository"
	"github.com/hoplog/hoplog/pkg/server"
)

type ModerationTestSuite struct {
	suite.Suite
	repo         *mocks.ModerationRepository
	signaler     *mocks.Signaler
	service      *server.ModerationServer
	observedLogs *observer.ObservedLogs
	echo         *echo.Echo
	admin        *model.User
}

func TestModerationTestSuite(t *testing.T) {
	suite.Run(t, new(ModerationTestSuite))
}

func (suite *ModerationTestSuite) SetupTest() {
	suite.repo = mocks.NewModerationRepository(suite.T())
	suite.signaler = mocks.NewSignaler(suite.T())

	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs

	suite.service = server.NewModerationServer(suite.repo, suite.signaler, zap.New(observedZapCore))
	suite.echo = echo.New()
	suite.echo.Validator = server.NewValidator()
	suite.admin = &model.User{Model: gorm.Model{ID: 2}, Username: "admin", Role: moderation.RoleAdmin}
}

func (suite *ModerationTestSuite) newContext(method string, body string, paramNames []string, paramValues []string) (echo.Context, *httptest.ResponseRecorder) {
	request := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	recorder := httptest.NewRecorder()
	c := suite.echo.NewContext(request, recorder)
	c.SetParamNames(paramNames...)
	c.SetParamValues(paramValues...)
	auth.SetCurrentUser(c, suite.admin)

	return c, recorder
}

func (suite *ModerationTestSuite) TestApproveBeer_PassesEditsToStore() {
	c, recorder := suite.newContext(http.MethodPost, `{"name":"Hazy Marvel","abv":6.5}`, []string{"id"}, []string{"5"})

	suite.repo.EXPECT().SetBeerStatus(mock.Anything, uint(5), moderation.StatusApproved, mock.MatchedBy(func(edits *repository.BeerEdits) bool {
		return edits != nil && edits.Name != nil && *edits.Name == "Hazy Marvel" && edits.ABV != nil
	}), *suite.admin).Return(&model.Beer{Model: gorm.Model{ID: 5}, Name: "Hazy Marvel", Status: moderation.StatusApproved}, nil)
	suite.signaler.EXPECT().Revalidate(mock.Anything, "/beers", "/admin/moderation", "/admin/dashboard").Return(nil)

	suite.Require().NoError(suite.service.ApproveBeer(c))
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), `"success":true`)
}

func (suite *ModerationTestSuite) TestApproveBeer_InvalidIDRejected() {
	c, recorder := suite.newContext(http.MethodPost, "", []string{"id"}, []string{"not-a-number"})

	suite.Require().NoError(suite.service.ApproveBeer(c))
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *ModerationTestSuite) TestRejectBeer_SurfacesGateFailure() {
	c, recorder := suite.newContext(http.MethodPost, "", []string{"id"}, []string{"5"})

	suite.repo.EXPECT().SetBeerStatus(mock.Anything, uint(5), moderation.StatusRejected, (*repository.BeerEdits)(nil), *suite.admin).
		Return(nil, moderation.ErrAdminRequired)

	suite.Require().NoError(suite.service.RejectBeer(c))
	suite.Equal(http.StatusForbidden, recorder.Code)
	suite.Contains(recorder.Body.String(), `"success":false`)
}

func (suite *ModerationTestSuite) TestSetBeerStatus_RefusesUnknownStatus() {
	c, recorder := suite.newContext(http.MethodPut, `{"status":"published"}`, []string{"id"}, []string{"5"})

	suite.Require().NoError(suite.service.SetBeerStatus(c))
	suite.Equal(http.StatusUnprocessableEntity, recorder.Code)
	suite.Contains(recorder.Body.String(), "unknown status")
}

func (suite *ModerationTestSuite) TestApproveStyleRequest_PromotesRequest() {
	c, recorder := suite.newContext(http.MethodPost, "", []string{"id"}, []string{"4"})

	suite.repo.EXPECT().PromoteStyleRequest(mock.Anything, uint(4), *suite.admin).
		Return(&model.BeerStyle{Model: gorm.Model{ID: 8}, Name: "Cold IPA", Status: moderation.StatusApproved}, nil)
	suite.signaler.EXPECT().Revalidate(mock.Anything, "/styles", "/admin/moderation", "/admin/dashboard").Return(nil)

	suite.Require().NoError(suite.service.ApproveStyleRequest(c))
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "Cold IPA")
}

func (suite *ModerationTestSuite) TestApproveStyleRequest_SecondClickReports422() {
	c, recorder := suite.newContext(http.MethodPost, "", []string{"id"}, []string{"4"})

	suite.repo.EXPECT().PromoteStyleRequest(mock.Anything, uint(4), *suite.admin).
		Return(nil, moderation.ErrIllegalTransition)

	suite.Require().NoError(suite.service.ApproveStyleRequest(c))
	suite.Equal(http.StatusUnprocessableEntity, recorder.Code)
}

func (suite *ModerationTestSuite) TestGetContact_ReadsDetail() {
	c, recorder := suite.newContext(http.MethodGet, "", []string{"id"}, []string{"1"})

	suite.repo.EXPECT().GetContactByID(mock.Anything, uint(1)).
		Return(&model.Contact{Model: gorm.Model{ID: 1}, Subject: "Wrong brewery on Hazy Wonder", Status: model.ContactPending}, nil)

	suite.Require().NoError(suite.service.GetContact(c))
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "Wrong brewery on Hazy Wonder")
}

func (suite *ModerationTestSuite) TestGetContact_UnknownIDReports404() {
	c, recorder := suite.newContext(http.MethodGet, "", []string{"id"}, []string{"99"})

	suite.repo.EXPECT().GetContactByID(mock.Anything, uint(99)).
		Return(nil, repository.ErrNotFound)

	suite.Require().NoError(suite.service.GetContact(c))
	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *ModerationTestSuite) TestSetContactStatus_AdvancesInbox() {
	c, recorder := suite.newContext(http.MethodPut, `{"status":"replied","adminNote":"answered"}`, []string{"id"}, []string{"1"})

	suite.repo.EXPECT().SetContactStatus(mock.Anything, uint(1), model.ContactReplied, "answered").
		Return(&model.Contact{Model: gorm.Model{ID: 1}, Status: model.ContactReplied}, nil)
	suite.signaler.EXPECT().Revalidate(mock.Anything, "/admin/contacts", "/admin/dashboard").Return(nil)

	suite.Require().NoError(suite.service.SetContactStatus(c))
	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *ModerationTestSuite) TestSetContactStatus_RefusesUnknownStatus() {
	c, recorder := suite.newContext(http.MethodPut, `{"status":"archived"}`, []string{"id"}, []string{"1"})

	suite.Require().NoError(suite.service.SetContactStatus(c))
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *ModerationTestSuite) TestListStyleRequests_FiltersByStatus() {
	request := httptest.NewRequest(http.MethodGet, "/?status=pending", nil)
	recorder := httptest.NewRecorder()
	c := suite.echo.NewContext(request, recorder)
	auth.SetCurrentUser(c, suite.admin)

	pending := moderation.StatusPending
	suite.repo.EXPECT().FindStyleRequests(mock.Anything, &repository.ListFilter{Status: &pending}).
		Return([]*model.BeerStyleRequest{{Model: gorm.Model{ID: 4}, Name: "Cold IPA"}}, nil)

	suite.Require().NoError(suite.service.ListStyleRequests(c))
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "Cold IPA")
}

func (suite *ModerationTestSuite) TestGetQueueCounts_ReportsBadges() {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	c := suite.echo.NewContext(request, recorder)

	suite.repo.EXPECT().GetQueueCounts(mock.Anything).
		Return(&repository.QueueCounts{PendingBeers: 3, PendingStyleRequests: 1, PendingContacts: 2}, nil)

	suite.Require().NoError(suite.service.GetQueueCounts(c))
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), `"PendingBeers":3`)
}

func (suite *ModerationTestSuite) TestGetHistory_RejectsUnknownEntity() {
	c, recorder := suite.newContext(http.MethodGet, "", []string{"entity", "id"}, []string{"widget", "5"})

	suite.Require().NoError(suite.service.GetHistory(c))
	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Contains(recorder.Body.String(), "unknown entity type")
}

func (suite *ModerationTestSuite) TestGetHistory_ReadsAuditTrail() {
	c, recorder := suite.newContext(http.MethodGet, "", []string{"entity", "id"}, []string{"beer", "5"})

	suite.repo.EXPECT().ListTransitions(mock.Anything, model.EntityBeer, uint(5)).
		Return([]*model.StatusTransition{{Model: gorm.Model{ID: 1}, EntityType: model.EntityBeer, EntityID: 5, FromStatus: moderation.StatusPending, ToStatus: moderation.StatusApproved, ActorID: 2}}, nil)

	suite.Require().NoError(suite.service.GetHistory(c))
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), `"success":true`)
}
