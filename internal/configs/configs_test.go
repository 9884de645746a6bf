package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_HOST", "")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("PROJECT_TASK_LIMIT", "")

	cfg := Load()

	assert.Equal(t, "127.0.0.1:8080", cfg.AppURL)
	assert.Equal(t, 20, cfg.ProjectTaskLimit)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoad_Redis(t *testing.T) {
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")

	cfg := Load()

	assert.Equal(t, "cache:6380", cfg.RedisAddr)
}

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, "tracker.db?_foreign_keys=on", withForeignKeys("tracker.db"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on", withForeignKeys("file:x?mode=memory"))
	assert.Equal(t, "a.db?_fk=1", withForeignKeys("a.db?_fk=1"))
}

func TestOpen_Migrates(t *testing.T) {
	db, err := Open("file:configs_open?mode=memory&cache=shared")
	require.NoError(t, err)

	for _, table := range []string{"users", "projects", "tasks", "comments", "task_histories", "task_audit_logs"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestLoad_InvalidValueIsFatal(t *testing.T) {
	hook := logtest.NewGlobal()
	logger := logrus.StandardLogger()
	exitCode := 0
	logger.ExitFunc = func(code int) { exitCode = code }
	t.Cleanup(func() {
		logger.ExitFunc = nil
		hook.Reset()
	})

	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")
	Load()

	assert.Equal(t, 1, exitCode)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.FatalLevel, hook.LastEntry().Level)
	assert.Equal(t, "RATE_LIMIT_PER_MINUTE must be greater than 0", hook.LastEntry().Message)
}

func TestNewRedisClient_UnreachableIsFatal(t *testing.T) {
	hook := logtest.NewGlobal()
	logger := logrus.StandardLogger()
	exitCode := 0
	logger.ExitFunc = func(code int) { exitCode = code }
	t.Cleanup(func() {
		logger.ExitFunc = nil
		hook.Reset()
	})

	client := NewRedisClient("127.0.0.1:1")
	if client != nil {
		client.Close()
	}

	assert.Equal(t, 1, exitCode)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "failed to create redis client", hook.LastEntry().Message)
	assert.Equal(t, "127.0.0.1:1", hook.LastEntry().Data["addr"])
}
