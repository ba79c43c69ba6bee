package kakao

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var GeocoderRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "geocoder_request_duration_seconds",
		Help:    "Duration of geocoder requests",
		Buckets: []float64{.025, .05, .1, .25, .5, 1, 2, 4, 8},
	},
	[]string{"provider", "outcome"},
)
