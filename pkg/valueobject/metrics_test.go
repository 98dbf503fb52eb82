package valueobject_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/shandysiswandi/govo/pkg/valueobject"
)

func sumByAttr(t *testing.T, rm metricdata.ResourceMetrics, name, key string) map[string]int64 {
	t.Helper()

	out := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is %T", name, m.Data)
			for _, dp := range sum.DataPoints {
				v, _ := dp.Attributes.Value(attribute.Key(key))
				out[v.Emit()] += dp.Value
			}
		}
	}
	return out
}

func TestWithMeter(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	withMeter := valueobject.WithMeter(provider.Meter("test"))

	_, err := signupSchema.New(validSignupParams(), withMeter)
	require.NoError(t, err)
	_, err = signupSchema.New(map[string]any{}, withMeter)
	require.Error(t, err)
	_, err = messageSchema.New(map[string]any{"message": ""}, withMeter)
	require.Error(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	assert.Equal(t, map[string]int64{"valid": 1, "invalid": 2},
		sumByAttr(t, rm, "valueobject.constructions", "result"))
	assert.Equal(t, map[string]int64{"signup": 4, "message": 1},
		sumByAttr(t, rm, "valueobject.violations", "record"))
}
