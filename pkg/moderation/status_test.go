package moderation_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hoplog/hoplog/pkg/moderation"
)

type StatusTestSuite struct {
	suite.Suite
}

func TestStatusTestSuite(t *testing.T) {
	suite.Run(t, new(StatusTestSuite))
}

func (suite *StatusTestSuite) TestParseStatus_AcceptsEnumValues() {
	for _, value := range []string{"pending", "approved", "rejected"} {
		status, err := moderation.ParseStatus(value)
		suite.Require().NoError(err)
		suite.Equal(value, status.String())
	}
}

func (suite *StatusTestSuite) TestParseStatus_RejectsUnknownValues() {
	for _, value := range []string{"", "Pending", "deleted", "approved "} {
		status, err := moderation.ParseStatus(value)
		suite.Require().ErrorIs(err, moderation.ErrUnknownStatus)
		suite.Empty(status)
	}
}

func (suite *StatusTestSuite) TestCanTransition_AdminMayTakeEveryEdge() {
	states := []moderation.Status{moderation.StatusPending, moderation.StatusApproved, moderation.StatusRejected}

	for _, from := range states {
		for _, to := range states {
			suite.True(moderation.CanTransition(from, to, moderation.RoleAdmin), "%s -> %s", from, to)
		}
	}
}

func (suite *StatusTestSuite) TestCanTransition_UserMayNotModerate() {
	suite.False(moderation.CanTransition(moderation.StatusPending, moderation.StatusApproved, moderation.RoleUser))
	suite.False(moderation.CanTransition(moderation.StatusPending, moderation.StatusRejected, moderation.RoleUser))
	suite.False(moderation.CanTransition(moderation.StatusApproved, moderation.StatusPending, moderation.RoleUser))
}

func (suite *StatusTestSuite) TestCanTransition_NoOpIsAlwaysAllowed() {
	suite.True(moderation.CanTransition(moderation.StatusApproved, moderation.StatusApproved, moderation.RoleUser))
}

func (suite *StatusTestSuite) TestCheckTransition_ErrorTaxonomy() {
	err := moderation.CheckTransition(moderation.StatusPending, moderation.StatusApproved, moderation.RoleUser)
	suite.Require().ErrorIs(err, moderation.ErrAdminRequired)

	err = moderation.CheckTransition(moderation.StatusPending, "archived", moderation.RoleAdmin)
	suite.Require().ErrorIs(err, moderation.ErrIllegalTransition)

	suite.NoError(moderation.CheckTransition(moderation.StatusPending, moderation.StatusApproved, moderation.RoleAdmin))
}

func (suite *StatusTestSuite) TestInitialStatus() {
	suite.Equal(moderation.StatusPending, moderation.InitialStatus(moderation.RoleUser))
	suite.Equal(moderation.StatusApproved, moderation.InitialStatus(moderation.RoleAdmin))
}
