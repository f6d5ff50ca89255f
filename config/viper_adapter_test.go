/*
Copyright © 2024 tmslee.

Released under MIT license.
*/

package config

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testCacheConfigYAML = `
cache:
  maxEntries: 1000
  metrics:
    enabled: true
    namespace: myservice
  warmupKeys:
    - user:1
    - user:2
  warmupTimeout: 15s
`

const testCacheConfigJSON = `
{
	"cache": {
		"maxEntries": 1000,
		"metrics": {
			"enabled": true,
			"namespace": "myservice"
		},
		"warmupKeys": ["user:1", "user:2"],
		"warmupTimeout": "15s"
	}
}`

func TestViperAdapter_SetFromReader(t *testing.T) {
	tests := []struct {
		dataType DataType
		cfgData  string
	}{
		{DataTypeYAML, testCacheConfigYAML},
		{DataTypeJSON, testCacheConfigJSON},
	}
	for _, tt := range tests {
		t.Run(string(tt.dataType), func(t *testing.T) {
			va := NewViperAdapter()
			require.NoError(t, va.SetFromReader(bytes.NewBufferString(tt.cfgData), tt.dataType))

			maxEntries, err := va.GetInt("cache.maxEntries")
			require.NoError(t, err)
			require.Equal(t, 1000, maxEntries)

			enabled, err := va.GetBool("cache.metrics.enabled")
			require.NoError(t, err)
			require.True(t, enabled)

			namespace, err := va.GetString("cache.metrics.namespace")
			require.NoError(t, err)
			require.Equal(t, "myservice", namespace)

			warmupKeys, err := va.GetStringSlice("cache.warmupKeys")
			require.NoError(t, err)
			require.Equal(t, []string{"user:1", "user:2"}, warmupKeys)

			warmupTimeout, err := va.GetDuration("cache.warmupTimeout")
			require.NoError(t, err)
			require.Equal(t, 15*time.Second, warmupTimeout)
		})
	}
}

func TestViperAdapter_UseEnvVars(t *testing.T) {
	t.Setenv("LRU_CACHE_MAXENTRIES", "77")

	va := NewViperAdapter()
	va.UseEnvVars("LRU")
	require.NoError(t, va.SetFromReader(bytes.NewBufferString(testCacheConfigYAML), DataTypeYAML))

	// The environment variable wins over the value from the config data.
	maxEntries, err := va.GetInt("cache.maxEntries")
	require.NoError(t, err)
	require.Equal(t, 77, maxEntries)

	// Keys without a matching environment variable keep the loaded values.
	namespace, err := va.GetString("cache.metrics.namespace")
	require.NoError(t, err)
	require.Equal(t, "myservice", namespace)
}

func TestViperAdapter_GetErrorsContainKey(t *testing.T) {
	va := NewViperAdapter()
	require.NoError(t, va.SetFromReader(bytes.NewBufferString(`{"cache":{"maxEntries":"many"}}`), DataTypeJSON))

	_, err := va.GetInt("cache.maxEntries")
	require.Error(t, err)
	require.Contains(t, err.Error(), "cache.maxEntries")
}

func TestViperAdapter_Defaults(t *testing.T) {
	va := NewViperAdapter()
	va.SetDefault("cache.maxEntries", 500)

	require.True(t, va.IsSet("cache.maxEntries"))
	maxEntries, err := va.GetInt("cache.maxEntries")
	require.NoError(t, err)
	require.Equal(t, 500, maxEntries)

	// An explicitly set value wins over the default.
	va.Set("cache.maxEntries", 7)
	maxEntries, err = va.GetInt("cache.maxEntries")
	require.NoError(t, err)
	require.Equal(t, 7, maxEntries)
}

func TestKeyPrefixedDataProvider(t *testing.T) {
	va := NewViperAdapter()
	require.NoError(t, va.SetFromReader(bytes.NewBufferString(testCacheConfigYAML), DataTypeYAML))

	dp := NewKeyPrefixedDataProvider(va, "cache.metrics")

	enabled, err := dp.GetBool("enabled")
	require.NoError(t, err)
	require.True(t, enabled)

	namespace, err := dp.GetString("namespace")
	require.NoError(t, err)
	require.Equal(t, "myservice", namespace)

	err = dp.WrapKeyErr("namespace", errTest)
	require.ErrorIs(t, err, errTest)
	require.Contains(t, err.Error(), "cache.metrics.namespace")
}

var errTest = errors.New("test error")
