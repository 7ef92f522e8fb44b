package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variohq/reno_backend/internal/utils/pagination"
)

func TestMultiFieldTokenRoundTrip(t *testing.T) {
	token := pagination.EncodeMultiFieldToken("2026-03-10", "exp_42")

	fields, err := pagination.DecodeMultiFieldToken(token)
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, "2026-03-10", fields[0])
	assert.Equal(t, "exp_42", fields[1])
}

func TestDecodeMultiFieldToken_InvalidBase64(t *testing.T) {
	_, err := pagination.DecodeMultiFieldToken("not-base64!!!")
	assert.Error(t, err)
}

func TestMultiFieldToken_EmptyDateField(t *testing.T) {
	// Expenses without a date still paginate; the empty field survives the
	// round trip.
	token := pagination.EncodeMultiFieldToken("", "exp_7")

	fields, err := pagination.DecodeMultiFieldToken(token)
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Empty(t, fields[0])
	assert.Equal(t, "exp_7", fields[1])
}
