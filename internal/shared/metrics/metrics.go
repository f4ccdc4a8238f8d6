// Package metrics exposes hand-rolled counters and histograms in Prometheus
// text format, with no client-library dependency.
package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	previewsBuiltTotal atomic.Uint64
	pdfRendersTotal    atomic.Uint64
	pdfTruncatedTotal  atomic.Uint64
	importsTotal       atomic.Uint64
	polishesTotal      atomic.Uint64

	pdfRenderDuration = newHistogram([]float64{1, 5, 10, 25, 50, 100, 250, 500, 1000})
)

// IncPreviewBuilt increments the preview-build counter.
func IncPreviewBuilt() {
	previewsBuiltTotal.Add(1)
}

// IncPDFRender increments the PDF render counter.
func IncPDFRender() {
	pdfRendersTotal.Add(1)
}

// IncPDFTruncated counts renders that dropped sections at the page limit.
func IncPDFTruncated() {
	pdfTruncatedTotal.Add(1)
}

// IncImport increments the resume import counter.
func IncImport() {
	importsTotal.Add(1)
}

// IncPolish increments the text polish counter.
func IncPolish() {
	polishesTotal.Add(1)
}

// ObservePDFRenderDurationMs records one PDF render duration in milliseconds.
func ObservePDFRenderDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	pdfRenderDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "previews_built_total", "Total HTML previews built", previewsBuiltTotal.Load())
	writeCounter(&buf, "pdf_renders_total", "Total PDF downloads rendered", pdfRendersTotal.Load())
	writeCounter(&buf, "pdf_truncated_total", "Total PDF renders truncated at the page limit", pdfTruncatedTotal.Load())
	writeCounter(&buf, "imports_total", "Total resume imports", importsTotal.Load())
	writeCounter(&buf, "polishes_total", "Total polish requests", polishesTotal.Load())
	writeHistogram(&buf, "pdf_render_duration_ms", "PDF render duration in milliseconds", pdfRenderDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns the current time in milliseconds for duration math.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
