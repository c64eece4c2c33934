// ABOUTME: Tests for the Prometheus gateway and name-check metrics.
// ABOUTME: Reads counters back through testutil and the HTTP handler.
package observability

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserveGatewayOp_CountsOutcomes(t *testing.T) {
	okBefore := testutil.ToFloat64(gatewayOps.WithLabelValues("save", "widget", OutcomeOK))
	errBefore := testutil.ToFloat64(gatewayOps.WithLabelValues("save", "widget", OutcomeError))

	ObserveGatewayOp("save", "widget", time.Now(), nil)
	ObserveGatewayOp("save", "widget", time.Now(), errors.New("boom"))
	ObserveGatewayOp("save", "widget", time.Now(), nil)

	require.Equal(t, okBefore+2, testutil.ToFloat64(gatewayOps.WithLabelValues("save", "widget", OutcomeOK)))
	require.Equal(t, errBefore+1, testutil.ToFloat64(gatewayOps.WithLabelValues("save", "widget", OutcomeError)))
}

func TestRecordNameCheckFailure(t *testing.T) {
	before := testutil.ToFloat64(nameCheckFailures)
	RecordNameCheckFailure()
	require.Equal(t, before+1, testutil.ToFloat64(nameCheckFailures))
}

func TestHandler_ServesGatewayMetrics(t *testing.T) {
	ObserveGatewayOp("delete", "widget", time.Now(), nil)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "fitness_gateway_operations_total"))
}
