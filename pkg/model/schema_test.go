package model_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm/schema"

	"github.com/hoplog/hoplog/pkg/model"
)

type SchemaTestSuite struct {
	suite.Suite
}

func TestSchemaTestSuite(t *testing.T) {
	suite.Run(t, new(SchemaTestSuite))
}

// TestModelsParse runs GORM's schema parser over every migrated model; a
// relation with a missing or misnamed foreign key fails here instead of on
// the first query against the entity.
func (suite *SchemaTestSuite) TestModelsParse() {
	models := []interface{}{
		&model.Prefecture{},
		&model.Brewery{},
		&model.BeerStyle{},
		&model.BeerStyleOtherName{},
		&model.BeerStyleRelation{},
		&model.BeerStyleRequest{},
		&model.Beer{},
		&model.User{},
		&model.Contact{},
		&model.Review{},
		&model.Favorite{},
		&model.StatusTransition{},
	}

	for _, m := range models {
		_, err := schema.Parse(m, &sync.Map{}, schema.NamingStrategy{})
		suite.Require().NoError(err, "%T", m)
	}
}

// The alias and relation children both key on StyleID rather than the
// conventional BeerStyleID.
func (suite *SchemaTestSuite) TestStyleChildrenKeyOnStyleID() {
	parsed, err := schema.Parse(&model.BeerStyle{}, &sync.Map{}, schema.NamingStrategy{})
	suite.Require().NoError(err)

	for _, name := range []string{"OtherNames", "Relations"} {
		relation, found := parsed.Relationships.Relations[name]
		suite.Require().True(found, name)
		suite.Require().Len(relation.References, 1, name)
		suite.Equal("StyleID", relation.References[0].ForeignKey.Name, name)
	}
}
