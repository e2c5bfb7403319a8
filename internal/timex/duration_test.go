package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	t.Run("string form", func(t *testing.T) {
		var d Duration
		require.NoError(t, json.Unmarshal([]byte(`"2h30m"`), &d))
		assert.Equal(t, 2*time.Hour+30*time.Minute, d.Duration)
	})

	t.Run("integer nanoseconds", func(t *testing.T) {
		var d Duration
		require.NoError(t, json.Unmarshal([]byte(`60000000000`), &d))
		assert.Equal(t, time.Minute, d.Duration)
	})

	t.Run("bad string", func(t *testing.T) {
		var d Duration
		assert.Error(t, json.Unmarshal([]byte(`"two hours"`), &d))
	})

	t.Run("unsupported type", func(t *testing.T) {
		var d Duration
		assert.Error(t, json.Unmarshal([]byte(`{"h":2}`), &d))
	})
}

func TestDuration_MarshalJSON(t *testing.T) {
	d := Duration{Duration: 90 * time.Second}
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}

func TestDuration_RoundTripInStruct(t *testing.T) {
	type cfg struct {
		TTL Duration `json:"ttl"`
	}

	in := cfg{TTL: Duration{Duration: 2 * time.Hour}}
	b, err := json.Marshal(in)
	require.NoError(t, err)

	var out cfg
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in.TTL.Duration, out.TTL.Duration)
}
