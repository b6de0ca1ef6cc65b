package prometheus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hupe1980/jarowinkler"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	require.NoError(t, err)

	c.RecordCompare(time.Microsecond, 0.9, nil)
	c.RecordCompare(time.Microsecond, 1.0, nil)
	c.RecordCompare(time.Microsecond, 0, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(c.compares.WithLabelValues(statusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.compares.WithLabelValues(statusError)))
	assert.Equal(t, 2, testutil.CollectAndCount(c.latency))
	assert.Equal(t, 1, testutil.CollectAndCount(c.scores))
}

func TestCollectorDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)

	_, err = New(reg, func(o *Options) { o.Namespace = "other" })
	assert.NoError(t, err)
}

func TestCollectorWithComparer(t *testing.T) {
	reg := prometheus.NewRegistry()
	mc, err := New(reg, func(o *Options) {
		o.ConstLabels = prometheus.Labels{"service": "dedup"}
	})
	require.NoError(t, err)

	cmp := jarowinkler.New(jarowinkler.DefaultOptions(), jarowinkler.WithMetricsCollector(mc))
	ctx := context.Background()

	_, err = cmp.CompareString(ctx, "MARTHA", "MARHTA")
	require.NoError(t, err)
	_, err = cmp.Compare(ctx, []byte{0xE6}, []byte("x"))
	require.ErrorIs(t, err, jarowinkler.ErrInvalidEncoding)

	assert.Equal(t, 1.0, testutil.ToFloat64(mc.compares.WithLabelValues(statusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(mc.compares.WithLabelValues(statusError)))

	count, err := testutil.GatherAndCount(reg, "jarowinkler_compares_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
