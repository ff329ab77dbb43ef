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

	"github.com/hoplog/hoplog/configs"
	"github.com/hoplog/hoplog/mocks"
	"github.com/hoplog/hoplog/pkg/model"
	"github.com/hoplog/hoplog/pkg/moderation"
	"github.com/hoplog/hoplog/pkg/repository"
	"github.com/hoplog/hoplog/pkg/server"
)

type CatalogTestSuite struct {
	suite.Suite
	repo         *mocks.CatalogRepository
	signaler     *mocks.Signaler
	presigner    *mocks.Presigner
	service      *server.CatalogServer
	observedLogs *observer.ObservedLogs
	echo         *echo.Echo
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (suite *CatalogTestSuite) SetupTest() {
	suite.repo = mocks.NewCatalogRepository(suite.T())
	suite.signaler = mocks.NewSignaler(suite.T())
	suite.presigner = mocks.NewPresigner(suite.T())

	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs

	conf := &configs.Config{}
	suite.service = server.NewCatalogServer(suite.repo, suite.signaler, suite.presigner, conf, zap.New(observedZapCore))
	suite.echo = echo.New()
	suite.echo.Validator = server.NewValidator()
}

func (suite *CatalogTestSuite) newContext(method string, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	recorder := httptest.NewRecorder()
	c := suite.echo.NewContext(request, recorder)

	return c, recorder
}

func (suite *CatalogTestSuite) TestCreateBeer_AdminDirectEntersApproved() {
	c, recorder := suite.newContext(http.MethodPost, "/", `{"name":"Hazy Wonder","breweryId":10}`)

	suite.repo.EXPECT().CreateBeer(mock.Anything, mock.MatchedBy(func(beer model.Beer) bool {
		return beer.Status == moderation.StatusApproved && beer.SubmittedByID == nil
	})).Return(&model.Beer{Model: gorm.Model{ID: 1}, Name: "Hazy Wonder", Status: moderation.StatusApproved}, nil)
	suite.signaler.EXPECT().Revalidate(mock.Anything, "/beers").Return(nil)

	suite.Require().NoError(suite.service.CreateBeer(c))
	suite.Equal(http.StatusCreated, recorder.Code)
}

func (suite *CatalogTestSuite) TestListApprovedBeers_PinsApprovedStatus() {
	c, recorder := suite.newContext(http.MethodGet, "/?status=pending", "")

	approved := moderation.StatusApproved
	suite.repo.EXPECT().FindBeers(mock.Anything, &repository.BeerFilter{Status: &approved}).
		Return([]*model.Beer{{Model: gorm.Model{ID: 1}, Name: "Hazy Wonder"}}, nil)

	suite.Require().NoError(suite.service.ListApprovedBeers(c))
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "Hazy Wonder")
}

func (suite *CatalogTestSuite) TestGetBeer_HidesPendingRows() {
	c, recorder := suite.newContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("5")

	suite.repo.EXPECT().GetBeerByID(mock.Anything, uint(5)).
		Return(&model.Beer{Model: gorm.Model{ID: 5}, Name: "Basement Batch", Status: moderation.StatusPending}, nil)

	suite.Require().NoError(suite.service.GetBeer(c))
	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *CatalogTestSuite) TestListApprovedBreweries_IgnoresStatusParam() {
	c, recorder := suite.newContext(http.MethodGet, "/?status=rejected", "")

	approved := moderation.StatusApproved
	suite.repo.EXPECT().FindBreweries(mock.Anything, &repository.ListFilter{Status: &approved}).
		Return([]*model.Brewery{{Model: gorm.Model{ID: 3}, Name: "Yo-Ho Brewing"}}, nil)

	suite.Require().NoError(suite.service.ListApprovedBreweries(c))
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "Yo-Ho Brewing")
}

func (suite *CatalogTestSuite) TestListApprovedStyles_IgnoresStatusParam() {
	c, recorder := suite.newContext(http.MethodGet, "/?status=pending", "")

	approved := moderation.StatusApproved
	suite.repo.EXPECT().FindStyles(mock.Anything, &repository.ListFilter{Status: &approved}).
		Return([]*model.BeerStyle{{Model: gorm.Model{ID: 7}, Name: "Weizen"}}, nil)

	suite.Require().NoError(suite.service.ListApprovedStyles(c))
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "Weizen")
}

func (suite *CatalogTestSuite) TestGetStyleBySlug_HidesPendingRows() {
	c, recorder := suite.newContext(http.MethodGet, "/", "")
	c.SetParamNames("slug")
	c.SetParamValues("cold-ipa")

	suite.repo.EXPECT().GetStyleBySlug(mock.Anything, "cold-ipa").
		Return(&model.BeerStyle{Model: gorm.Model{ID: 8}, Name: "Cold IPA", Status: moderation.StatusPending}, nil)

	suite.Require().NoError(suite.service.GetStyleBySlug(c))
	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *CatalogTestSuite) TestDeleteBrewery_ReferencedRowsReportConflict() {
	c, recorder := suite.newContext(http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("3")

	suite.repo.EXPECT().DeleteBrewery(mock.Anything, uint(3)).Return(repository.ErrStillReferenced)

	suite.Require().NoError(suite.service.DeleteBrewery(c))
	suite.Equal(http.StatusConflict, recorder.Code)
	suite.Contains(recorder.Body.String(), "may still be referenced by beers")
}

func (suite *CatalogTestSuite) TestDeleteStyle_ReferencedRowsReportConflict() {
	c, recorder := suite.newContext(http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	suite.repo.EXPECT().DeleteStyle(mock.Anything, uint(7)).Return(repository.ErrStillReferenced)

	suite.Require().NoError(suite.service.DeleteStyle(c))
	suite.Equal(http.StatusConflict, recorder.Code)
}

func (suite *CatalogTestSuite) TestUpdateStyle_PassesOtherNamesWholesale() {
	c, recorder := suite.newContext(http.MethodPut, "/", `{"name":"Weizen","otherNames":["Hefeweizen","Weissbier"]}`)
	c.SetParamNames("id")
	c.SetParamValues("7")

	existing := &model.BeerStyle{Model: gorm.Model{ID: 7}, Name: "Weizen", Status: moderation.StatusApproved}
	suite.repo.EXPECT().GetStyleByID(mock.Anything, uint(7)).Return(existing, nil)
	suite.repo.EXPECT().UpdateStyle(mock.Anything, existing, []string{"Hefeweizen", "Weissbier"}).
		Return(existing, nil)
	suite.signaler.EXPECT().Revalidate(mock.Anything, "/styles").Return(nil)

	suite.Require().NoError(suite.service.UpdateStyle(c))
	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *CatalogTestSuite) TestPresignUpload_IssuesURLAndKey() {
	c, recorder := suite.newContext(http.MethodPost, "/", `{"kind":"beer","filename":"label.png"}`)

	suite.presigner.EXPECT().PresignUpload(mock.Anything, "beer", "label.png").
		Return("https://objects.local/signed", "beer/abc.png", nil)

	suite.Require().NoError(suite.service.PresignUpload(c))
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "beer/abc.png")
}

func (suite *CatalogTestSuite) TestPresignUpload_RejectsUnknownKind() {
	c, recorder := suite.newContext(http.MethodPost, "/", `{"kind":"avatar","filename":"me.png"}`)

	suite.Require().NoError(suite.service.PresignUpload(c))
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *CatalogTestSuite) TestLookupBeers_RequiresQuery() {
	c, recorder := suite.newContext(http.MethodGet, "/", "")

	suite.Require().NoError(suite.service.LookupBeers(c))
	suite.Equal(http.StatusBadRequest, recorder.Code)
}
