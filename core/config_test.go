package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("ENV", "")

		conf, err := NewConfig()
		require.NoError(t, err)
		assert.Equal(t, "DEV", conf.Env)
		assert.True(t, conf.Debug)
		assert.False(t, conf.TestMode)
		assert.Equal(t, "Attendo", conf.AppName)
		assert.Equal(t, ":8000", conf.Server.Address)
		assert.Equal(t, 5*time.Second, conf.Server.ShutdownTimeout)
		assert.Equal(t, time.Duration(0), conf.Server.Latency)
		assert.Equal(t, FixturesConfig{}, conf.Fixtures)
	})

	t.Run("prefixed env vars", func(t *testing.T) {
		t.Setenv("ENV", "test")
		t.Setenv("TEST_DEBUG", "false")
		t.Setenv("TEST_SERVERADDRESS", ":9000")
		t.Setenv("TEST_SERVERLATENCY", "150ms")
		t.Setenv("TEST_INSIGHTSSEED", "42")
		t.Setenv("TEST_FIXTURESSTUDENTSPATH", "/tmp/students.json")
		t.Setenv("DEV_SERVERADDRESS", ":7000") // other ENV: ignored

		conf, err := NewConfig()
		require.NoError(t, err)
		assert.Equal(t, "TEST", conf.Env)
		assert.False(t, conf.Debug)
		assert.True(t, conf.TestMode)
		assert.Equal(t, ":9000", conf.Server.Address)
		assert.Equal(t, 150*time.Millisecond, conf.Server.Latency)
		assert.Equal(t, int64(42), conf.InsightsSeed)
		assert.Equal(t, "/tmp/students.json", conf.Fixtures.StudentsPath)
		assert.Equal(t, "", conf.Fixtures.AttendancePath)
	})
}
