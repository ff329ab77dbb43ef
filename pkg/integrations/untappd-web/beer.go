package untappdweb

import (
	"encoding/json"
	"strconv"
	"strings"
	"sync"

	"github.com/gocolly/colly/v2"
	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/hoplog/hoplog/pkg/model"
)

type BeerJSON struct {
	Description string `json:"description"`
	Brand       struct {
		Name string `json:"name"`
	} `json:"brand"`
	Image struct {
		ContentURL string `json:"contentUrl"`
	} `json:"image"`
	Sku             uint64 `json:"sku"`
	AggregateRating struct {
		RatingValue float64 `json:"ratingValue"`
		BestRating  string  `json:"bestRating"`
		ReviewCount int     `json:"reviewCount"`
	} `json:"aggregateRating"`
}

type BeerScraped struct {
	IDLink  string `attr:"href"          selector:"a.label"`
	Name    string `selector:".name > a"`
	Brewery string `selector:".brewery > a"`
	Style   string `selector:".style"`
	ABV     string `selector:".abv"`
	IBU     string `selector:".ibu"`
}

type BeerContent struct {
	Description string `selector:".beer-descrption-read-more"`
	ImageURL    string `attr:"src"                            selector:"a.label > img"`
	Rating      string `selector:".details .num"`
}

type scrapeResults struct {
	beers []model.BeerLookup
	err   error
}

func (u *Integration) FindBeer(name string) ([]model.BeerLookup, error) {
	collector := colly.NewCollector(
		colly.AllowedDomains("untappd.com"),
		colly.UserAgent(userAgent),
	)

	var (
		errs         error
		results      []model.BeerLookup
		scrapedPages []BeerScraped
	)

	collector.OnHTML(".beer-item", func(element *colly.HTMLElement) {
		scraped := BeerScraped{}

		err := element.Unmarshal(&scraped)
		if multierr.AppendInto(&errs, err) {
			u.logger.Error("failed to unmarshal scraped beer", zap.Error(err))

			return
		}

		idString := scraped.IDLink[strings.LastIndex(scraped.IDLink, "/")+1:]

		u.logger.Info("scraped item from results", zap.String("id", idString), zap.String("name", scraped.Name))

		scrapedPages = append(scrapedPages, scraped)
	})

	collector.OnError(func(response *colly.Response, err error) {
		u.logger.Error("error while scraping beer search results", zap.String("url", response.Request.URL.String()), zap.Error(err))
	})

	u.logger.Info("scraping query results", zap.String("query", name))
	multierr.AppendInto(&errs, collector.Visit("https://untappd.com/search?q=/"+name))

	var beerWG sync.WaitGroup

	beerChan := make(chan scrapeResults, len(scrapedPages))

	appendResult := func() {
		scraped := <-beerChan
		results = append(results, scraped.beers...)
		multierr.AppendInto(&errs, scraped.err)
		beerWG.Done()
	}

	for _, scraped := range scrapedPages {
		beerWG.Add(1)

		go u.getBeerData(collector.Clone(), scraped, beerChan)
		go appendResult()
	}

	beerWG.Wait()

	u.logger.Info("finished scraping query results", zap.Int("results", len(results)), zap.Error(errs))

	return results, errs
}

func (u *Integration) getBeerData(detailCollector *colly.Collector, scraped BeerScraped, beerChan chan scrapeResults) {
	beer := model.BeerLookup{
		Name:    scraped.Name,
		Brewery: scraped.Brewery,
		Style:   scraped.Style,
		Source:  IntegrationName,
		ABV:     extractABV(scraped),
		IBU:     extractIBU(scraped),
	}

	detailCollector.OnHTML("head script[type='application/ld+json']", func(element *colly.HTMLElement) {
		var beerJSON BeerJSON
		_ = json.Unmarshal([]byte(element.Text), &beerJSON)

		u.logger.Info("scraped beer from JSON data", zap.Uint64("id", beerJSON.Sku))

		beer.Description = beerJSON.Description
		beer.ImageURL = beerJSON.Image.ContentURL
		beer.ExternalID = pointy.Uint64(beerJSON.Sku)
		beer.Rating = pointy.Float64(beerJSON.AggregateRating.RatingValue)
	})

	detailCollector.OnHTML(".content", func(element *colly.HTMLElement) {
		beerContent := BeerContent{}

		err := element.Unmarshal(&beerContent)
		if err != nil {
			return
		}

		if len(beer.Description) == 0 {
			beer.Description = beerContent.Description
		}

		if len(beer.ImageURL) == 0 {
			beer.ImageURL = beerContent.ImageURL
		}

		if beer.Rating == nil {
			rating, err := strconv.ParseFloat(beerContent.Rating, 64)
			if err == nil {
				beer.Rating = pointy.Float64(rating)
			}
		}
	})

	idString := scraped.IDLink[strings.LastIndex(scraped.IDLink, "/")+1:]
	u.logger.Info("scraping beer page", zap.String("id", idString))

	err := detailCollector.Visit("https://untappd.com/beer/" + idString)
	if err == nil && beer.ExternalID == nil {
		externalID, err := strconv.ParseUint(idString, 10, 64)
		if err == nil {
			beer.ExternalID = pointy.Uint64(externalID)
		}
	}

	beerChan <- scrapeResults{beers: []model.BeerLookup{beer}, err: err}
}

func extractABV(details BeerScraped) *float64 {
	if strings.Contains(details.ABV, "%") {
		abv, _ := strconv.ParseFloat(details.ABV[:strings.Index(details.ABV, "%")], 64) //nolint: gocritic // We know we won't get -1

		return &abv
	}

	return nil
}

func extractIBU(details BeerScraped) *uint64 {
	if !strings.HasPrefix(details.IBU, "N/A") {
		ibu, _ := strconv.ParseUint(strings.Split(details.IBU, " ")[0], 0, 64)

		return pointy.Uint64(ibu)
	}

	return nil
}
