package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cmskit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	assert.Equal(t, "error", logger.Error(err).Key)
	assert.Equal(t, err, logger.Error(err).Value.Any())
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	assert.True(t, logger.Document("project.yaml").Equal(slog.String("document", "project.yaml")))
	assert.True(t, logger.Path("a/b").Equal(slog.String("path", "a/b")))
	assert.True(t, logger.Queue("default").Equal(slog.String("queue", "default")))
	assert.True(t, logger.Transport("file").Equal(slog.String("transport", "file")))
	assert.True(t, logger.Component("mailer").Equal(slog.String("component", "mailer")))
	assert.Equal(t, "job_id", logger.JobID("42").Key)
	assert.True(t, logger.JobID(nil).Equal(slog.Attr{}))
	assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Any())
}
