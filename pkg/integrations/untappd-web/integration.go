package untappdweb

import "go.uber.org/zap"

const IntegrationName = "untappd_web"

const userAgent = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:15.0) Gecko/20100101 Firefox/15.0.1"

type Integration struct {
	logger *zap.Logger
}

func NewIntegration(logger *zap.Logger) *Integration {
	return &Integration{logger: logger}
}
