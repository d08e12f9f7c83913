// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder はメトリクス収集のインターフェース。
// ハンドラー層から利用する。nil実装を許すため各呼び出し側でnilチェックを行う。
type Recorder interface {
	RecordRegistration()
	RecordRegistrationFailure(reason string)
	RecordSearch()
	RecordSearchNoResults()
	RecordHTTPStatus(statusCode int)
	RecordRequestLatency(duration time.Duration)
}

// 登録失敗の理由ラベル
const (
	ReasonValidation = "validation"
	ReasonConflict   = "conflict"
	ReasonServer     = "server"
)

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	registrations    prometheus.Counter
	registrationFail *prometheus.CounterVec
	searches         prometheus.Counter
	searchNoResults  prometheus.Counter
	httpStatus       *prometheus.CounterVec
	requestLatency   prometheus.Histogram
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fitlab_registrations_total",
			Help: "登録成功の合計数",
		}),
		registrationFail: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fitlab_registration_failures_total",
			Help: "登録失敗の理由別合計数",
		}, []string{"reason"}),
		searches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fitlab_searches_total",
			Help: "ワークアウト検索リクエストの合計数",
		}),
		searchNoResults: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fitlab_search_no_results_total",
			Help: "結果0件となった検索の合計数",
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fitlab_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
		requestLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fitlab_request_latency_seconds",
			Help:    "HTTPリクエスト処理のレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.registrations,
		c.registrationFail,
		c.searches,
		c.searchNoResults,
		c.httpStatus,
		c.requestLatency,
	)

	return c
}

// RecordRegistration は登録成功を記録する。
func (c *Collector) RecordRegistration() {
	c.registrations.Inc()
}

// RecordRegistrationFailure は登録失敗を理由付きで記録する。
func (c *Collector) RecordRegistrationFailure(reason string) {
	c.registrationFail.WithLabelValues(reason).Inc()
}

// RecordSearch は検索リクエストを記録する。
func (c *Collector) RecordSearch() {
	c.searches.Inc()
}

// RecordSearchNoResults は結果0件の検索を記録する。
func (c *Collector) RecordSearchNoResults() {
	c.searchNoResults.Inc()
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRequestLatency はリクエスト処理のレイテンシを記録する。
func (c *Collector) RecordRequestLatency(duration time.Duration) {
	c.requestLatency.Observe(duration.Seconds())
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// compile-time interface check
var _ Recorder = (*Collector)(nil)
