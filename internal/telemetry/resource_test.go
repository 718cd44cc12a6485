package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"

	"github.com/hopebridge/contentsync/internal/versions"
)

func TestNewResource(t *testing.T) {
	t.Parallel()

	res, err := newResource(context.Background(), &Config{
		Environment:        "staging",
		ResourceAttributes: map[string]string{"app.channel": "beta"},
	})
	require.NoError(t, err)

	set := res.Set()
	value := func(key string) string {
		v, ok := set.Value(attribute.Key(key))
		require.True(t, ok, "missing %s", key)
		return v.AsString()
	}

	assert.Equal(t, DefaultServiceName, value("service.name"))
	assert.Equal(t, versions.Version, value("service.version"))
	assert.Equal(t, "staging", value("deployment.environment"))
	assert.Equal(t, "beta", value("app.channel"))
}

func TestNewResource_NoEnvironment(t *testing.T) {
	t.Parallel()

	res, err := newResource(context.Background(), &Config{ServiceName: "kiosk"})
	require.NoError(t, err)

	_, ok := res.Set().Value(attribute.Key("deployment.environment"))
	assert.False(t, ok)
	v, _ := res.Set().Value(attribute.Key("service.name"))
	assert.Equal(t, "kiosk", v.AsString())
}
