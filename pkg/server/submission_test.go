package server_test

import (
	"errors"
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

type SubmissionTestSuite struct {
	suite.Suite
	repo         *mocks.SubmissionRepository
	signaler     *mocks.Signaler
	service      *server.SubmissionServer
	observedLogs *observer.ObservedLogs
	echo         *echo.Echo
}

func TestSubmissionTestSuite(t *testing.T) {
	suite.Run(t, new(SubmissionTestSuite))
}

func (suite *SubmissionTestSuite) SetupTest() {
	suite.repo = mocks.NewSubmissionRepository(suite.T())
	suite.signaler = mocks.NewSignaler(suite.T())

	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs

	suite.service = server.NewSubmissionServer(suite.repo, suite.signaler, zap.New(observedZapCore))
	suite.echo = echo.New()
	suite.echo.Validator = server.NewValidator()
}

func (suite *SubmissionTestSuite) newContext(body string, user *model.User) (echo.Context, *httptest.ResponseRecorder) {
	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	recorder := httptest.NewRecorder()
	c := suite.echo.NewContext(request, recorder)

	if user != nil {
		auth.SetCurrentUser(c, user)
	}

	return c, recorder
}

func (suite *SubmissionTestSuite) TestSubmitBeer_EntersQueuePendingWithSubmitter() {
	user := &model.User{Model: gorm.Model{ID: 7}, Username: "maia", Role: moderation.RoleUser}
	c, recorder := suite.newContext(`{"name":"Hazy Wonder","breweryId":10,"abv":6.8}`, user)

	suite.repo.EXPECT().GetBreweryByID(mock.Anything, uint(10)).Return(&model.Brewery{Model: gorm.Model{ID: 10}}, nil)
	suite.repo.EXPECT().CreateBeer(mock.Anything, mock.MatchedBy(func(beer model.Beer) bool {
		return beer.Status == moderation.StatusPending &&
			beer.SubmittedByID != nil && *beer.SubmittedByID == 7 &&
			beer.Name == "Hazy Wonder"
	})).Return(&model.Beer{Model: gorm.Model{ID: 1}, Name: "Hazy Wonder", Status: moderation.StatusPending}, nil)
	suite.signaler.EXPECT().Revalidate(mock.Anything, "/beers", "/admin/moderation", "/admin/dashboard").Return(nil)

	suite.Require().NoError(suite.service.SubmitBeer(c))
	suite.Equal(http.StatusCreated, recorder.Code)
	suite.Contains(recorder.Body.String(), `"success":true`)
}

func (suite *SubmissionTestSuite) TestSubmitBeer_UnknownBreweryRejected() {
	user := &model.User{Model: gorm.Model{ID: 7}}
	c, recorder := suite.newContext(`{"name":"Hazy Wonder","breweryId":99}`, user)

	suite.repo.EXPECT().GetBreweryByID(mock.Anything, uint(99)).Return(nil, repository.ErrNotFound)

	suite.Require().NoError(suite.service.SubmitBeer(c))
	suite.Equal(http.StatusNotFound, recorder.Code)
	suite.Contains(recorder.Body.String(), `"success":false`)
}

func (suite *SubmissionTestSuite) TestSubmitBeer_DuplicateNameSurfacesConflict() {
	user := &model.User{Model: gorm.Model{ID: 7}}
	c, recorder := suite.newContext(`{"name":"Hazy Wonder","breweryId":10}`, user)

	suite.repo.EXPECT().GetBreweryByID(mock.Anything, uint(10)).Return(&model.Brewery{Model: gorm.Model{ID: 10}}, nil)
	suite.repo.EXPECT().CreateBeer(mock.Anything, mock.Anything).Return(nil, repository.ErrDuplicateName)

	suite.Require().NoError(suite.service.SubmitBeer(c))
	suite.Equal(http.StatusConflict, recorder.Code)
	suite.Contains(recorder.Body.String(), "name already exists")
}

func (suite *SubmissionTestSuite) TestSubmitBeer_MissingNameFailsValidation() {
	user := &model.User{Model: gorm.Model{ID: 7}}
	c, recorder := suite.newContext(`{"breweryId":10}`, user)

	suite.Require().NoError(suite.service.SubmitBeer(c))
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *SubmissionTestSuite) TestSubmitBeer_RevalidationFailureDoesNotFailAction() {
	user := &model.User{Model: gorm.Model{ID: 7}}
	c, recorder := suite.newContext(`{"name":"Hazy Wonder","breweryId":10}`, user)

	suite.repo.EXPECT().GetBreweryByID(mock.Anything, uint(10)).Return(&model.Brewery{Model: gorm.Model{ID: 10}}, nil)
	suite.repo.EXPECT().CreateBeer(mock.Anything, mock.Anything).Return(&model.Beer{Model: gorm.Model{ID: 1}}, nil)
	suite.signaler.EXPECT().Revalidate(mock.Anything, "/beers", "/admin/moderation", "/admin/dashboard").
		Return(errors.New("redis unavailable"))

	suite.Require().NoError(suite.service.SubmitBeer(c))
	suite.Equal(http.StatusCreated, recorder.Code)
	suite.Equal(1, suite.observedLogs.Len())
}

func (suite *SubmissionTestSuite) TestSubmitStyleRequest_EntersQueuePending() {
	user := &model.User{Model: gorm.Model{ID: 7}}
	c, recorder := suite.newContext(`{"name":"Cold IPA","description":"Crisp lager-hybrid IPA"}`, user)

	suite.repo.EXPECT().CreateStyleRequest(mock.Anything, mock.MatchedBy(func(request model.BeerStyleRequest) bool {
		return request.Status == moderation.StatusPending && request.SubmittedByID != nil && *request.SubmittedByID == 7
	})).Return(&model.BeerStyleRequest{Model: gorm.Model{ID: 4}, Name: "Cold IPA"}, nil)
	suite.signaler.EXPECT().Revalidate(mock.Anything, "/admin/moderation", "/admin/dashboard").Return(nil)

	suite.Require().NoError(suite.service.SubmitStyleRequest(c))
	suite.Equal(http.StatusCreated, recorder.Code)
}

func (suite *SubmissionTestSuite) TestSubmitContact_AnonymousAllowed() {
	c, recorder := suite.newContext(`{"name":"Aya","email":"aya@example.com","subject":"Hi","message":"Love the site"}`, nil)

	suite.repo.EXPECT().CreateContact(mock.Anything, mock.MatchedBy(func(contact model.Contact) bool {
		return contact.Status == model.ContactPending && contact.SubmittedByID == nil
	})).Return(&model.Contact{Model: gorm.Model{ID: 1}}, nil)
	suite.signaler.EXPECT().Revalidate(mock.Anything, "/admin/contacts", "/admin/dashboard").Return(nil)

	suite.Require().NoError(suite.service.SubmitContact(c))
	suite.Equal(http.StatusCreated, recorder.Code)
}

func (suite *SubmissionTestSuite) TestSubmitContact_InvalidEmailRejected() {
	c, recorder := suite.newContext(`{"name":"Aya","email":"not-an-email","subject":"Hi","message":"Hello"}`, nil)

	suite.Require().NoError(suite.service.SubmitContact(c))
	suite.Equal(http.StatusBadRequest, recorder.Code)
}
