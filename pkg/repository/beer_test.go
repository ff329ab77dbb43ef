package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"gorm.io/gorm"

	"github.com/hoplog/hoplog/pkg/model"
	"github.com/hoplog/hoplog/pkg/moderation"
	"github.com/hoplog/hoplog/pkg/repository"
)

type BeerTestSuite struct {
	RepositorySuite
}

func TestBeerTestSuite(t *testing.T) {
	suite.Run(t, new(BeerTestSuite))
}

func (suite *BeerTestSuite) TestCreateBeer_InsertsBeer() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "beers" WHERE normalized_name = $1 AND "beers"."deleted_at" IS NULL`)).
		WithArgs("hazy wonder").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	suite.mock.ExpectQuery(`INSERT INTO "beers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(1)))
	suite.mock.ExpectCommit()

	beer := model.Beer{
		Name:        "Hazy Wonder",
		Description: "Juicy west coast IPA",
		BreweryID:   10,
		StyleID:     pointy.Uint(2),
		ABV:         pointy.Float64(6.8),
		Status:      moderation.StatusPending,
	}
	result, err := suite.repository.CreateBeer(context.Background(), beer)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Equal(uint(1), result.ID)
	suite.Equal("hazy wonder", result.NormalizedName)
}

func (suite *BeerTestSuite) TestCreateBeer_RejectsDuplicateNormalizedName() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "beers" WHERE normalized_name = $1 AND "beers"."deleted_at" IS NULL`)).
		WithArgs("hazy ipa").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	suite.mock.ExpectRollback()

	beer := model.Beer{
		Name:      "Ｈａｚｙ  IPA",
		BreweryID: 10,
		Status:    moderation.StatusPending,
	}
	result, err := suite.repository.CreateBeer(context.Background(), beer)
	suite.Require().ErrorIs(err, repository.ErrDuplicateName)
	suite.Nil(result)
}

func (suite *BeerTestSuite) TestGetBeerByID_TranslatesNotFound() {
	suite.mock.ExpectQuery("^SELECT (.+)").WillReturnError(gorm.ErrRecordNotFound)

	beer, err := suite.repository.GetBeerByID(context.Background(), 99)
	suite.Require().ErrorIs(err, repository.ErrNotFound)
	suite.Nil(beer)
}

func (suite *BeerTestSuite) TestSetBeerStatus_ApproveWritesAuditRow() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "beers" WHERE "beers"."id" \= \$1`).
		WithArgs(uint(5), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "normalized_name", "brewery_id", "status"}).
			AddRow(uint(5), "Hazy Wonder", "hazy wonder", uint(10), "pending"))
	suite.mock.ExpectExec(`UPDATE "beers" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectQuery(`INSERT INTO "status_transitions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(1)))
	suite.mock.ExpectCommit()

	admin := model.User{Model: gorm.Model{ID: 2}, Role: moderation.RoleAdmin}
	beer, err := suite.repository.SetBeerStatus(context.Background(), 5, moderation.StatusApproved, nil, admin)
	suite.Require().NoError(err)
	suite.NotNil(beer)
	suite.Equal(moderation.StatusApproved, beer.Status)
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *BeerTestSuite) TestSetBeerStatus_NoOpSkipsAudit() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "beers" WHERE "beers"."id" \= \$1`).
		WithArgs(uint(5), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "normalized_name", "brewery_id", "status"}).
			AddRow(uint(5), "Hazy Wonder", "hazy wonder", uint(10), "approved"))
	suite.mock.ExpectExec(`UPDATE "beers" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	admin := model.User{Model: gorm.Model{ID: 2}, Role: moderation.RoleAdmin}
	beer, err := suite.repository.SetBeerStatus(context.Background(), 5, moderation.StatusApproved, nil, admin)
	suite.Require().NoError(err)
	suite.Equal(moderation.StatusApproved, beer.Status)
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *BeerTestSuite) TestSetBeerStatus_UserCannotApprove() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "beers" WHERE "beers"."id" \= \$1`).
		WithArgs(uint(5), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "normalized_name", "brewery_id", "status"}).
			AddRow(uint(5), "Hazy Wonder", "hazy wonder", uint(10), "pending"))
	suite.mock.ExpectRollback()

	user := model.User{Model: gorm.Model{ID: 3}, Role: moderation.RoleUser}
	beer, err := suite.repository.SetBeerStatus(context.Background(), 5, moderation.StatusApproved, nil, user)
	suite.Require().ErrorIs(err, moderation.ErrAdminRequired)
	suite.Nil(beer)
}

func (suite *BeerTestSuite) TestSetBeerStatus_RenameEditReRunsGuard() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "beers" WHERE "beers"."id" \= \$1`).
		WithArgs(uint(5), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "normalized_name", "brewery_id", "status"}).
			AddRow(uint(5), "Hazy Wonder", "hazy wonder", uint(10), "pending"))
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "beers" WHERE normalized_name = $1 AND id <> $2 AND "beers"."deleted_at" IS NULL`)).
		WithArgs("hazy marvel", uint(5)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	suite.mock.ExpectRollback()

	admin := model.User{Model: gorm.Model{ID: 2}, Role: moderation.RoleAdmin}
	edits := &repository.BeerEdits{Name: pointy.String("Hazy Marvel")}
	beer, err := suite.repository.SetBeerStatus(context.Background(), 5, moderation.StatusApproved, edits, admin)
	suite.Require().ErrorIs(err, repository.ErrDuplicateName)
	suite.Nil(beer)
}

func (suite *BeerTestSuite) TestDeleteBeer_Deletes() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`UPDATE "beers" SET "deleted_at"`).
		WithArgs(sqlmock.AnyArg(), uint(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	err := suite.repository.DeleteBeer(context.Background(), 5)
	suite.Require().NoError(err)
}
