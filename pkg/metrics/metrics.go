package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	VideoOpens = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gallery",
		Name:      "video_opens_total",
		Help:      "Videos opened in the modal, by result.",
	}, []string{"result"})

	Uploads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gallery",
		Name:      "uploads_total",
		Help:      "Upload attempts, by result.",
	}, []string{"result"})

	ViewChanges = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gallery",
		Name:      "view_changes_total",
		Help:      "Filter, sort and search changes.",
	}, []string{"operation"})

	VisibleEntries = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "gallery",
		Name:      "visible_entries",
		Help:      "Entries in the current view.",
	})
)

func init() {
	prometheus.MustRegister(VideoOpens, Uploads, ViewChanges, VisibleEntries)
}
