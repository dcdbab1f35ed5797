package client

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateResponseID(t *testing.T) {
	cases := map[string]string{
		`{"id":"zone1"}`:   "zone1",
		`{"id":42}`:        "42",
		`{"id":null}`:      "",
		`{}`:               "",
		`{"id":"AAcBAAA"}`: "AAcBAAA",
	}

	for body, want := range cases {
		resp := CreateResponse{}
		require.NoError(t, json.Unmarshal([]byte(body), &resp), body)
		assert.Equal(t, want, resp.ID.String(), body)
	}

	resp := CreateResponse{}
	require.NoError(t, json.Unmarshal([]byte(`{"id":7}`), &resp))
	n, err := resp.ID.Int()
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	assert.Error(t, json.Unmarshal([]byte(`{"id":{}}`), &resp))
}
