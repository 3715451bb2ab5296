package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "hoteldesk",
		Name:      "bookings_created_total",
		Help:      "Bookings created at the front desk.",
	})

	checkIns = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "hoteldesk",
		Name:      "check_ins_total",
		Help:      "Guests checked in.",
	})

	checkOuts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "hoteldesk",
		Name:      "check_outs_total",
		Help:      "Guests checked out.",
	})

	revenue = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "hoteldesk",
		Name:      "revenue_total",
		Help:      "Amount collected at check-out, in catalog currency units.",
	})
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingsCreated, checkIns, checkOuts, revenue)
	})
}

// IncBookingCreated counts one new booking.
func IncBookingCreated() { bookingsCreated.Inc() }

// IncCheckIn counts one guest check-in.
func IncCheckIn() { checkIns.Inc() }

// IncCheckOut counts one guest check-out and the amount collected.
func IncCheckOut(amount float64) {
	checkOuts.Inc()
	revenue.Add(amount)
}
