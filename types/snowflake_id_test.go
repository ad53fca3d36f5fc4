package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowflakeIDMarshalJSON(t *testing.T) {
	id := SnowflakeID(1903412871927828480)

	data, err := json.Marshal(id)
	require.NoError(t, err)

	// Angka polos, bukan string
	assert.Equal(t, "1903412871927828480", string(data))
}

func TestSnowflakeIDUnmarshalJSON(t *testing.T) {
	var fromNumber SnowflakeID
	require.NoError(t, json.Unmarshal([]byte("1903412871927828480"), &fromNumber))
	assert.EqualValues(t, 1903412871927828480, fromNumber)

	var fromString SnowflakeID
	require.NoError(t, json.Unmarshal([]byte(`"1903412871927828480"`), &fromString))
	assert.EqualValues(t, 1903412871927828480, fromString)

	var invalid SnowflakeID
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &invalid))
}

func TestSnowflakeIDScan(t *testing.T) {
	var id SnowflakeID
	require.NoError(t, id.Scan(int64(42)))
	assert.EqualValues(t, 42, id)

	require.NoError(t, id.Scan([]byte("123")))
	assert.EqualValues(t, 123, id)

	assert.Error(t, id.Scan(3.14))
}
