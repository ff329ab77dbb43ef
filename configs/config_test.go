package configs_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"github.com/hoplog/hoplog/configs"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestGetConfig_GetsNamedFile() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal("audience", config.Auth.Audience)
	suite.Equal("domain", config.Auth.Domain)
	suite.Equal("secret", config.Auth.SecretKey)
	suite.Equal("cache.local:6380", config.Redis.Address)
	suite.Equal("redispass", config.Redis.Password)
	suite.Equal(2, config.Redis.Database)
	suite.Equal("objects.local:9000", config.Storage.Endpoint)
	suite.Equal("minioadmin", config.Storage.AccessKey)
	suite.Equal("miniosecret", config.Storage.SecretKey)
	suite.Equal("hoplog-test", config.Storage.Bucket)
	suite.True(config.Storage.UseSSL)
	suite.Equal([]string{"untappd_web"}, config.Integrations.Beer)
}

func (suite *ConfigTestSuite) TestGetConfig_GetsEnv() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("HOPLOG_DB_HOST", "test.local")
	suite.T().Setenv("HOPLOG_DB_PORT", "1234")
	suite.T().Setenv("HOPLOG_DB_USER", "testuser")
	suite.T().Setenv("HOPLOG_DB_PASSWORD", "test123")
	suite.T().Setenv("HOPLOG_DB_DATABASE", "testdb")
	suite.T().Setenv("HOPLOG_DB_MAXIDLECONNECTIONS", "5")
	suite.T().Setenv("HOPLOG_DB_MAXOPENCONNECTIONS", "7")
	suite.T().Setenv("HOPLOG_SERVER_PORT", "666")
	suite.T().Setenv("HOPLOG_AUTH_AUDIENCE", "audience")
	suite.T().Setenv("HOPLOG_AUTH_DOMAIN", "domain")
	suite.T().Setenv("HOPLOG_AUTH_SECRETKEY", "secret")
	suite.T().Setenv("HOPLOG_REDIS_ADDRESS", "cache.local:6380")
	suite.T().Setenv("HOPLOG_STORAGE_BUCKET", "hoplog-test")
	suite.T().Setenv("HOPLOG_INTEGRATIONS_BEER", "untappd_web")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal("audience", config.Auth.Audience)
	suite.Equal("domain", config.Auth.Domain)
	suite.Equal("secret", config.Auth.SecretKey)
	suite.Equal("cache.local:6380", config.Redis.Address)
	suite.Equal("hoplog-test", config.Storage.Bucket)
	suite.Equal([]string{"untappd_web"}, config.Integrations.Beer)
}

func (suite *ConfigTestSuite) TestGetConfig_EnvOverridesFile() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("HOPLOG_DB_HOST", "env.local")
	suite.T().Setenv("HOPLOG_DB_USER", "envuser")
	suite.T().Setenv("HOPLOG_DB_PASSWORD", "env123")
	suite.T().Setenv("HOPLOG_AUTH_SECRETKEY", "envsecret")
	suite.T().Setenv("HOPLOG_REDIS_ADDRESS", "env.local:6379")

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("env.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("envuser", config.DB.User)
	suite.Equal("env123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal("envsecret", config.Auth.SecretKey)
	suite.Equal("env.local:6379", config.Redis.Address)
	suite.Equal([]string{"untappd_web"}, config.Integrations.Beer)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingValues() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("", logger)

	suite.Nil(config)
	suite.EqualError(err, "DB.Host: required validation failed, DB.Password: required validation failed")
}
