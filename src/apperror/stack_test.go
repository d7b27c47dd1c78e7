package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackOf(t *testing.T) {
	assert.Equal(t, "", StackOf(errors.New("plain")))
	assert.Equal(t, "", StackOf(nil))

	app := New(400, "bad")
	assert.Equal(t, app.Stack, StackOf(fmt.Errorf("wrapped: %w", app)))
}

func TestRecovered(t *testing.T) {
	t.Run("string value", func(t *testing.T) {
		p := Recovered("nil map write")
		assert.Equal(t, "nil map write", p.Error())
		assert.Nil(t, p.Unwrap())
		assert.NotEmpty(t, StackOf(p))
	})

	t.Run("error value keeps the chain", func(t *testing.T) {
		p := Recovered(NotFound("gone"))
		c := Classify(p)
		assert.Equal(t, KindApplication, c.Kind)
		assert.Equal(t, "gone", c.App.Message)
	})
}
