/*
Copyright © 2024 tmslee.

Released under MIT license.
*/

package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

type testAppConfig struct {
	Cache struct {
		MaxEntries int
	}
}

func (c *testAppConfig) SetProviderDefaults(dp DataProvider) {
	dp.SetDefault("cache.maxEntries", 100)
}

func (c *testAppConfig) Set(dp DataProvider) error {
	var err error
	c.Cache.MaxEntries, err = dp.GetInt("cache.maxEntries")
	return err
}

type testMetricsConfig struct {
	Enabled   bool
	Namespace string
}

func (c *testMetricsConfig) KeyPrefix() string {
	return "metrics"
}

func (c *testMetricsConfig) SetProviderDefaults(dp DataProvider) {
	dp.SetDefault("namespace", "myservice")
}

func (c *testMetricsConfig) Set(dp DataProvider) error {
	var err error
	if c.Enabled, err = dp.GetBool("enabled"); err != nil {
		return err
	}
	c.Namespace, err = dp.GetString("namespace")
	return err
}

func TestLoader_LoadFromReader(t *testing.T) {
	cfgLoader := NewLoader(NewViperAdapter())

	t.Run("load config, use defaults", func(t *testing.T) {
		appCfg := &testAppConfig{}
		err := cfgLoader.LoadFromReader(bytes.NewBufferString(`{}`), DataTypeJSON, appCfg)
		require.NoError(t, err)
		require.Equal(t, 100, appCfg.Cache.MaxEntries)
	})

	t.Run("load config", func(t *testing.T) {
		appCfg := &testAppConfig{}
		err := cfgLoader.LoadFromReader(bytes.NewBufferString(`{"cache":{"maxEntries":7}}`), DataTypeJSON, appCfg)
		require.NoError(t, err)
		require.Equal(t, 7, appCfg.Cache.MaxEntries)
	})

	t.Run("load config, use key prefix", func(t *testing.T) {
		metricsCfg := &testMetricsConfig{}
		err := cfgLoader.LoadFromReader(bytes.NewBufferString(`{"metrics":{"enabled":true}}`), DataTypeJSON, metricsCfg)
		require.NoError(t, err)
		require.True(t, metricsCfg.Enabled)
		require.Equal(t, "myservice", metricsCfg.Namespace)
	})

	t.Run("load multiple configs at once", func(t *testing.T) {
		appCfg := &testAppConfig{}
		metricsCfg := &testMetricsConfig{}
		cfgData := `{"cache":{"maxEntries":7},"metrics":{"enabled":true,"namespace":"lru"}}`
		err := cfgLoader.LoadFromReader(bytes.NewBufferString(cfgData), DataTypeJSON, appCfg, metricsCfg)
		require.NoError(t, err)
		require.Equal(t, 7, appCfg.Cache.MaxEntries)
		require.True(t, metricsCfg.Enabled)
		require.Equal(t, "lru", metricsCfg.Namespace)
	})
}
