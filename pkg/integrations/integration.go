// Package integrations looks up beer and brewery data in external catalogs
// to prefill the admin console's create forms. Results are suggestions
// only; nothing here writes to the store.
package integrations

import (
	"go.uber.org/zap"

	untappdweb "github.com/hoplog/hoplog/pkg/integrations/untappd-web"
	"github.com/hoplog/hoplog/pkg/model"
)

type Integration interface {
	FindBeer(name string) ([]model.BeerLookup, error)
	FindBrewery(name string) ([]model.BreweryLookup, error)
}

func GetIntegration(name string, logger *zap.Logger) Integration {
	if name == untappdweb.IntegrationName {
		return untappdweb.NewIntegration(logger)
	}

	return nil
}
