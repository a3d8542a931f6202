package metrics

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	SuccessfulRequests *prometheus.CounterVec
	BadRequests        *prometheus.CounterVec
	Signups            *prometheus.CounterVec
	MessagesSent       *prometheus.CounterVec
	FollowRequests     *prometheus.CounterVec
	UnfollowRequests   *prometheus.CounterVec
}

func InitMetrics() *Metrics {
	m := &Metrics{
		SuccessfulRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_request",
				Help: "Total number of successful (2xx) HTTP requests",
			},
			[]string{"path"},
		),
		BadRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "unsuccessful_request",
				Help: "Total number of unsuccessful (4xx) HTTP requests",
			},
			[]string{"path"},
		),
		Signups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_signup",
				Help: "Total number of accounts created",
			},
			[]string{"path"},
		),
		MessagesSent: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_message",
				Help: "Total number of successfully posted messages",
			},
			[]string{"path"},
		),
		FollowRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_follows",
				Help: "Total number of successful follow requests",
			},
			[]string{"path"},
		),
		UnfollowRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_unfollows",
				Help: "Total number of successful unfollow requests",
			},
			[]string{"path"},
		),
	}

	prometheus.MustRegister(m.SuccessfulRequests)
	prometheus.MustRegister(m.BadRequests)
	prometheus.MustRegister(m.Signups)
	prometheus.MustRegister(m.MessagesSent)
	prometheus.MustRegister(m.FollowRequests)
	prometheus.MustRegister(m.UnfollowRequests)

	return m
}

// Middleware counts 2xx and 4xx responses per route path
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			switch {
			case status >= 200 && status < 300:
				m.SuccessfulRequests.WithLabelValues(c.Path()).Inc()
			case status >= 400 && status < 500:
				m.BadRequests.WithLabelValues(c.Path()).Inc()
			}
			return err
		}
	}
}
