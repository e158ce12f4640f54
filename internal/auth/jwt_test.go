package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	m := NewManager("secret")

	token, err := m.Issue(42)
	require.NoError(t, err)

	userID, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)

	// The Authorization header value works as-is.
	userID, err = m.Verify("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestVerifyRejectsBadInput(t *testing.T) {
	m := NewManager("secret")

	_, err := m.Verify("")
	assert.Error(t, err)

	_, err = m.Verify("Bearer ")
	assert.Error(t, err)

	_, err = m.Verify("not-a-token")
	assert.Error(t, err)

	// A token signed with a different secret fails.
	other := NewManager("other-secret")
	token, err := other.Issue(42)
	require.NoError(t, err)
	_, err = m.Verify(token)
	assert.Error(t, err)
}
