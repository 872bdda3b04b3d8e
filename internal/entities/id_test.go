package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_ZeroValueIsUnpersisted(t *testing.T) {
	var id ID

	v, ok := id.Get()
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Equal(t, UnsetID, id.Int64())
	assert.Equal(t, "unpersisted", id.String())
}

func TestPersistedID(t *testing.T) {
	id := PersistedID(42)

	v, ok := id.Get()
	assert.True(t, ok)
	assert.Equal(t, int64(42), v)
	assert.Equal(t, int64(42), id.Int64())
	assert.Equal(t, "42", id.String())
}

func TestPersistedID_NonPositiveIsUnpersisted(t *testing.T) {
	assert.False(t, PersistedID(0).IsPersisted())
	assert.False(t, PersistedID(-1).IsPersisted())
}

func TestID_JSON(t *testing.T) {
	t.Run("unpersisted encodes as null", func(t *testing.T) {
		data, err := json.Marshal(NewAuthor("Orwell", 1903))
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":null,"name":"Orwell","birth_year":1903}`, string(data))
	})

	t.Run("persisted encodes as number", func(t *testing.T) {
		a := Author{ID: PersistedID(7), Name: "Orwell", BirthYear: 1903}
		data, err := json.Marshal(a)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":7,"name":"Orwell","birth_year":1903}`, string(data))
	})

	t.Run("decodes number and null", func(t *testing.T) {
		var a Author
		require.NoError(t, json.Unmarshal([]byte(`{"id":3,"name":"Huxley"}`), &a))
		assert.Equal(t, PersistedID(3), a.ID)

		require.NoError(t, json.Unmarshal([]byte(`{"id":null}`), &a))
		assert.False(t, a.ID.IsPersisted())
	})
}
