package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/hoplog/hoplog/pkg/model"
	"github.com/hoplog/hoplog/pkg/moderation"
	"github.com/hoplog/hoplog/pkg/repository"
)

type UserTestSuite struct {
	RepositorySuite
}

func TestUserTestSuite(t *testing.T) {
	suite.Run(t, new(UserTestSuite))
}

func (suite *UserTestSuite) TestGetUserFromEmail_FindsUser() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "users" WHERE email \= \$1`).
		WithArgs("maia@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "role"}).
			AddRow(uint(1), "maia", "maia@example.com", "admin"))

	user, err := suite.repository.GetUserFromEmail(context.Background(), "maia@example.com")
	suite.Require().NoError(err)
	suite.Equal("maia", user.Username)
	suite.True(user.IsAdmin())
}

func (suite *UserTestSuite) TestGetUserFromEmail_TranslatesNotFound() {
	suite.mock.ExpectQuery("^SELECT (.+)").WillReturnError(gorm.ErrRecordNotFound)

	user, err := suite.repository.GetUserFromEmail(context.Background(), "nobody@example.com")
	suite.Require().ErrorIs(err, repository.ErrNotFound)
	suite.Nil(user)
}

func (suite *UserTestSuite) TestEnsureUser_ReturnsExistingUser() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "users" WHERE email \= \$1`).
		WithArgs("maia@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "role"}).
			AddRow(uint(1), "maia", "maia@example.com", "user"))

	user, err := suite.repository.EnsureUser(context.Background(), "maia", "maia@example.com")
	suite.Require().NoError(err)
	suite.Equal(uint(1), user.ID)
}

func (suite *UserTestSuite) TestEnsureUser_ProvisionsOnFirstRequest() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "users" WHERE email \= \$1`).
		WithArgs("new@example.com", 1).
		WillReturnError(gorm.ErrRecordNotFound)
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(2)))
	suite.mock.ExpectCommit()

	user, err := suite.repository.EnsureUser(context.Background(), "newcomer", "new@example.com")
	suite.Require().NoError(err)
	suite.Equal(uint(2), user.ID)
	suite.Equal(moderation.RoleUser, user.Role)
	suite.NotEqual("00000000-0000-0000-0000-000000000000", user.UUID.String())
}

func (suite *UserTestSuite) TestListTransitions_ReadsHistoryInOrder() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "status_transitions" WHERE entity_type \= \$1 AND entity_id \= \$2`).
		WithArgs("beer", uint(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "entity_type", "entity_id", "from_status", "to_status", "actor_id"}).
			AddRow(uint(1), "beer", uint(5), "pending", "approved", uint(2)).
			AddRow(uint(2), "beer", uint(5), "approved", "rejected", uint(2)))

	transitions, err := suite.repository.ListTransitions(context.Background(), model.EntityBeer, 5)
	suite.Require().NoError(err)
	suite.Len(transitions, 2)
	suite.Equal(moderation.StatusApproved, transitions[0].ToStatus)
	suite.Equal(moderation.StatusRejected, transitions[1].ToStatus)
}
