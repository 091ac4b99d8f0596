package resolver

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestIsResolvedID_GeneratedUUIDsMatch(t *testing.T) {
	for i := 0; i < 20; i++ {
		require.True(t, IsResolvedID(uuid.New().String()))
	}
}

func TestIsResolvedID_HumanNamesDoNotMatch(t *testing.T) {
	require.False(t, IsResolvedID("Groceries"))
	require.False(t, IsResolvedID("Meeting notes"))
	require.False(t, IsResolvedID(""))
}

func TestIsResolvedID_RejectsTruncatedUUID(t *testing.T) {
	id := uuid.New()
	require.False(t, IsResolvedID(id.String()[:len(id.String())-1]))
}
