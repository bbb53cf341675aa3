package property

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	scrapedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "deal_factory",
		Name:      "listings_scraped_total",
		Help:      "Number of listings inserted into the store.",
	})
	analyzedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "deal_factory",
		Name:      "properties_analyzed_total",
		Help:      "Number of property scorings persisted.",
	})
	hotDealsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "deal_factory",
		Name:      "hot_deals",
		Help:      "Hot deals found by the latest analysis run.",
	})
)
