package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONMap_Value(t *testing.T) {
	t.Run("Success Map serialized", func(t *testing.T) {
		m := JSONMap{"id": float64(10), "short": "eu-west"}
		v, err := m.Value()
		require.NoError(t, err)
		b, ok := v.([]byte)
		require.True(t, ok)
		assert.JSONEq(t, `{"id":10,"short":"eu-west"}`, string(b))
	})

	t.Run("Success Nil map stores NULL", func(t *testing.T) {
		var m JSONMap
		v, err := m.Value()
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}

func TestJSONMap_Scan(t *testing.T) {
	t.Run("Success Bytes decoded", func(t *testing.T) {
		var m JSONMap
		require.NoError(t, m.Scan([]byte(`{"id":10,"short":"eu-west"}`)))
		assert.Equal(t, JSONMap{"id": float64(10), "short": "eu-west"}, m)
	})

	t.Run("Success String decoded", func(t *testing.T) {
		var m JSONMap
		require.NoError(t, m.Scan(`{"port":27015}`))
		assert.Equal(t, float64(27015), m["port"])
	})

	t.Run("Success NULL clears the map", func(t *testing.T) {
		m := JSONMap{"id": float64(10)}
		require.NoError(t, m.Scan(nil))
		assert.Nil(t, m)
	})

	t.Run("Failure Unsupported source type", func(t *testing.T) {
		var m JSONMap
		assert.Error(t, m.Scan(10))
	})
}

func TestJSONMap_GormDataType(t *testing.T) {
	assert.Equal(t, "jsonb", JSONMap{}.GormDataType())
}
