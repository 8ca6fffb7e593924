package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestIsDevField(t *testing.T) {
	assert.True(t, isDevField("correlation_id"))
	assert.True(t, isDevField("dataset_sales"))
	assert.True(t, isDevField("job_name"))
	assert.True(t, isDevField("source"))
	assert.False(t, isDevField("user_agent"))
	assert.False(t, isDevField("dataset"))
}

func TestSetup(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	Setup("warn")
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	Setup("nao-existe")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	SetupTestLogger()
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}
