package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assetgate_registrations_total",
		Help: "Asset registrations by outcome.",
	}, []string{"outcome", "shape"})

	retrievalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assetgate_retrievals_total",
		Help: "Asset retrievals by outcome.",
	}, []string{"outcome", "source"})

	variantFallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assetgate_variant_fallbacks_total",
		Help: "Retrievals served by a variant other than the one targeted.",
	}, []string{"target", "served"})

	uploadBytesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "assetgate_upload_bytes_total",
		Help: "Bytes written to the internal object store through uploads.",
	})
)
