package metrics

import "github.com/prometheus/client_golang/prometheus"

// AuthMetrics exposes counters for the OTP login flow.
type AuthMetrics struct {
	otpSends    *prometheus.CounterVec
	otpVerifies *prometheus.CounterVec
}

func NewAuthMetrics(reg prometheus.Registerer) *AuthMetrics {
	m := &AuthMetrics{
		otpSends: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bodyinsight",
			Subsystem: "auth",
			Name:      "otp_send_total",
			Help:      "Total OTP emails requested",
		}, []string{"status"}),
		otpVerifies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bodyinsight",
			Subsystem: "auth",
			Name:      "otp_verify_total",
			Help:      "Total OTP verification attempts",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.otpSends, m.otpVerifies)
	return m
}

func (m *AuthMetrics) ObserveOTPSend(status string) {
	if m == nil {
		return
	}
	m.otpSends.WithLabelValues(status).Inc()
}

func (m *AuthMetrics) ObserveOTPVerify(status string) {
	if m == nil {
		return
	}
	m.otpVerifies.WithLabelValues(status).Inc()
}

// BookingMetrics exposes counters/histograms for the booking flow.
type BookingMetrics struct {
	bookingsTotal *prometheus.CounterVec
	couponApplies *prometheus.CounterVec
	cancellations prometheus.Counter
	slotLatency   prometheus.Histogram
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bodyinsight",
			Subsystem: "booking",
			Name:      "bookings_total",
			Help:      "Total booking attempts",
		}, []string{"status"}),
		couponApplies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bodyinsight",
			Subsystem: "booking",
			Name:      "coupon_apply_total",
			Help:      "Total coupon applications",
		}, []string{"result"}),
		cancellations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bodyinsight",
			Subsystem: "booking",
			Name:      "cancellations_total",
			Help:      "Total appointment cancellations",
		}),
		slotLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "bodyinsight",
			Subsystem: "booking",
			Name:      "slot_generation_seconds",
			Help:      "Latency of appointment slot generation",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingsTotal, m.couponApplies, m.cancellations, m.slotLatency)
	return m
}

func (m *BookingMetrics) ObserveBooking(status string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(status).Inc()
}

func (m *BookingMetrics) ObserveCouponApply(result string) {
	if m == nil {
		return
	}
	m.couponApplies.WithLabelValues(result).Inc()
}

func (m *BookingMetrics) ObserveCancellation() {
	if m == nil {
		return
	}
	m.cancellations.Inc()
}

func (m *BookingMetrics) ObserveSlotLatency(seconds float64) {
	if m == nil {
		return
	}
	m.slotLatency.Observe(seconds)
}

// ReportMetrics exposes counters for the report viewer.
type ReportMetrics struct {
	reportLoads *prometheus.CounterVec
}

func NewReportMetrics(reg prometheus.Registerer) *ReportMetrics {
	m := &ReportMetrics{
		reportLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bodyinsight",
			Subsystem: "report",
			Name:      "loads_total",
			Help:      "Total scan report loads",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.reportLoads)
	return m
}

func (m *ReportMetrics) ObserveLoad(status string) {
	if m == nil {
		return
	}
	m.reportLoads.WithLabelValues(status).Inc()
}
