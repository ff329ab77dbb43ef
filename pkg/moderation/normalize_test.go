package moderation_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hoplog/hoplog/pkg/moderation"
)

type NormalizeTestSuite struct {
	suite.Suite
}

func TestNormalizeTestSuite(t *testing.T) {
	suite.Run(t, new(NormalizeTestSuite))
}

func (suite *NormalizeTestSuite) TestNormalizeName_FoldsCaseAndWhitespace() {
	suite.Equal("ipa", moderation.NormalizeName("IPA"))
	suite.Equal("ipa", moderation.NormalizeName("  ipa "))
	suite.Equal("hazy ipa", moderation.NormalizeName("Hazy   IPA"))
}

func (suite *NormalizeTestSuite) TestNormalizeName_FoldsFullWidth() {
	suite.Equal("ipa", moderation.NormalizeName("ＩＰＡ"))
	suite.Equal("ヴァイツェン", moderation.NormalizeName("ｳﾞｧｲﾂｪﾝ"))
}

func (suite *NormalizeTestSuite) TestSlugify() {
	suite.Equal("hazy-ipa", moderation.Slugify("Hazy IPA"))
	suite.Equal("lambic-kriek", moderation.Slugify("Lambic - Kriek"))
	suite.Equal("80-shilling", moderation.Slugify("80/- Shilling"))
	suite.Equal("saison", moderation.Slugify("  Saison  "))
}
