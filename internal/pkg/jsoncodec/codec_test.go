package jsoncodec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"

	"github.com/KirkDiggler/rpg-sheets/internal/pkg/jsoncodec"
)

type message struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

func TestCodecIsRegistered(t *testing.T) {
	codec := encoding.GetCodec(jsoncodec.Name)
	require.NotNil(t, codec)
	assert.Equal(t, "json", codec.Name())
}

func TestCodecEncodesJSON(t *testing.T) {
	codec := jsoncodec.Codec{}

	data, err := codec.Marshal(&message{Name: "Fireball", Level: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Fireball","level":3}`, string(data))

	var out message
	require.NoError(t, codec.Unmarshal(data, &out))
	assert.Equal(t, message{Name: "Fireball", Level: 3}, out)
}

func TestCodecEmptyPayload(t *testing.T) {
	out := message{Name: "kept"}
	require.NoError(t, jsoncodec.Codec{}.Unmarshal(nil, &out))
	assert.Equal(t, "kept", out.Name)
}

func TestCodecRejectsGarbage(t *testing.T) {
	var out message
	assert.Error(t, jsoncodec.Codec{}.Unmarshal([]byte("{not json"), &out))
	_, err := jsoncodec.Codec{}.Marshal(make(chan int))
	assert.Error(t, err)
}
