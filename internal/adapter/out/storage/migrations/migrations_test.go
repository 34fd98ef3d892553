package migrations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAll_Ordered(t *testing.T) {
	t.Parallel()

	got, err := All()
	require.NoError(t, err)
	require.Len(t, got, 4)

	require.Equal(t, "0001_users.sql", got[0].Name)
	require.Equal(t, "0002_posts.sql", got[1].Name)
	require.Equal(t, "0003_comments.sql", got[2].Name)
	require.Equal(t, "0004_comments_post_id_idx.sql", got[3].Name)

	for _, m := range got {
		require.Contains(t, m.SQL, "IF NOT EXISTS")
		require.NotContains(t, m.SQL, "REFERENCES")
		require.Equal(t, 1, strings.Count(m.SQL, ";"), "%s must hold a single statement", m.Name)
	}
}
