package codec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardinius/sqlvalue/internal/codec"
	"github.com/leonardinius/sqlvalue/internal/sqlerrors"
	"github.com/leonardinius/sqlvalue/internal/value"
)

func TestMarshal(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		input    value.Value
		expected []byte
	}{
		{"int small", value.GetInt(5), []byte{0x82, 0x02, 0x05}},
		{"int negative", value.GetInt(-1), []byte{0x82, 0x02, 0x20}},
		{"long negative", value.GetLong(-1), []byte{0x82, 0x03, 0x20}},
		{"int max", value.GetInt(math.MaxInt32), []byte{0x82, 0x02, 0x1a, 0x7f, 0xff, 0xff, 0xff}},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			data, err := codec.Marshal(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, data)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []value.Value{
		value.GetInt(0),
		value.GetInt(999),
		value.GetInt(1000),
		value.GetInt(math.MinInt32),
		value.GetLong(7),
		value.GetLong(math.MaxInt64),
		value.GetLong(math.MinInt64),
	}

	for _, in := range inputs {
		data, err := codec.Marshal(in)
		require.NoError(t, err)

		out, err := codec.Unmarshal(data)
		require.NoError(t, err)
		assert.Equal(t, in.Kind(), out.Kind())
		assert.True(t, in.Equal(out), "%#v != %#v", in, out)
	}
}

func TestUnmarshalInterns(t *testing.T) {
	t.Parallel()

	out, err := codec.Unmarshal([]byte{0x82, 0x02, 0x05})
	require.NoError(t, err)
	assert.Same(t, value.GetInt(5), out)

	out, err = codec.Unmarshal([]byte{0x82, 0x03, 0x05})
	require.NoError(t, err)
	assert.Same(t, value.GetLong(5), out)
}

func TestUnmarshalErrors(t *testing.T) {
	t.Parallel()

	_, err := codec.Unmarshal([]byte{0x82, 0x02, 0x1a, 0x80, 0x00, 0x00, 0x00})
	assert.ErrorIs(t, err, sqlerrors.ErrArithmeticOverflow)

	_, err = codec.Unmarshal([]byte{0x82, 0x06, 0x01})
	assert.ErrorIs(t, err, codec.ErrUnsupportedKind)

	_, err = codec.Unmarshal([]byte{0xff})
	assert.Error(t, err)
}
