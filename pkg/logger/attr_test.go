package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uboraplatform/ubora/pkg/logger"
)

func TestError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))

	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Errors(nil, nil))

	attr := logger.Errors(errors.New("one"), nil, errors.New("two"))
	assert.Equal(t, "errors", attr.Key)
	assert.Len(t, attr.Value.Group(), 2)
}

func TestDomainAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "user_id", logger.UserID("u1").Key)
	assert.Equal(t, "session_id", logger.SessionID("s1").Key)
	assert.Equal(t, "tier", logger.Tier("standard").Key)
	assert.Equal(t, "amount", logger.Amount(35000).Key)
	assert.Equal(t, int64(35000), logger.Amount(35000).Value.Int64())
	assert.Equal(t, "tokens", logger.Tokens(60000).Key)
}

func TestGroup(t *testing.T) {
	t.Parallel()

	attr := logger.Group("usage", slog.Int64("tokens_used", 10), slog.Int64("forms_created", 2))
	assert.Equal(t, "usage", attr.Key)
	assert.Len(t, attr.Value.Group(), 2)
}
