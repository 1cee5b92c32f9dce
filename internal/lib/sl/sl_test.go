package sl_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/session-authority/internal/lib/sl"
)

func TestErr(t *testing.T) {
	err := errors.New("something went wrong")
	attr := sl.Err(err)

	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, slog.KindString, attr.Value.Kind())
	assert.Equal(t, "something went wrong", attr.Value.String())
}

func TestDiscard(t *testing.T) {
	log := sl.Discard()
	assert.NotNil(t, log)
	// не должно паниковать и ничего не выводит
	log.Info("ignored", sl.Err(errors.New("ignored")))
}
