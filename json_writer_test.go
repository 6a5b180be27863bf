package paydown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, "{}", string(got))
	})

	t.Run("ordered fields", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("b", "hello").Append("a", 1)
		got, err := w.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"b":"hello","a":1}`, string(got))
	})

	t.Run("optional fields", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", 0) // a zero value is still added.
		w.Optional("b", "")
		w.Optional("c", 0)
		w.Optional("d", "hello")
		got, err := w.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"a":0,"d":"hello"}`, string(got))
	})

	t.Run("decimal numbers", func(t *testing.T) {
		var w jsonObjectWriter
		w.Number("a", D(12.5))
		w.OptionalNumber("b", D(10).Sub(D(10)))
		w.OptionalNumber("c", D(-3))
		got, err := w.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"a":12.5,"c":-3}`, string(got))
	})

	t.Run("error is sticky", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", make(chan int)).Append("b", 1)
		_, err := w.MarshalJSON()
		assert.Error(t, err)
	})
}
