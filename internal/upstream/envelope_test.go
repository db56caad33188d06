package upstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeItemsNormalizesBothShapes(t *testing.T) {
	bare, err := decodeItems[Ticket]([]byte(`[{"ticketId":1,"status":"Active"}]`))
	require.NoError(t, err)

	wrapped, err := decodeItems[Ticket]([]byte(`{"success":true,"data":[{"ticketId":1,"status":"Active"}]}`))
	require.NoError(t, err)

	assert.Equal(t, bare, wrapped)
}

func TestDecodeItemsEmptyBody(t *testing.T) {
	items, err := decodeItems[Ticket](nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDecodeItemsEnvelopeError(t *testing.T) {
	_, err := decodeItems[Ticket]([]byte(`{"success":false,"error":"forbidden"}`))
	require.Error(t, err)
	assert.Equal(t, "forbidden", ServerMessage(err))
}

func TestDecodeItemHandlesBareAndWrapped(t *testing.T) {
	bare, err := decodeItem[Venue]([]byte(`{"venueId":3,"venueName":"Hall"}`))
	require.NoError(t, err)
	assert.Equal(t, 3, bare.VenueID)

	wrapped, err := decodeItem[Venue]([]byte(`{"success":true,"data":{"venueId":3,"venueName":"Hall"}}`))
	require.NoError(t, err)
	assert.Equal(t, bare, wrapped)
}

func TestEnvelopeMessagePrefersError(t *testing.T) {
	assert.Equal(t, "bad", envelopeMessage([]byte(`{"error":"bad","message":"other"}`)))
	assert.Equal(t, "other", envelopeMessage([]byte(`{"message":"other"}`)))
	assert.Empty(t, envelopeMessage([]byte(`not json`)))
}
