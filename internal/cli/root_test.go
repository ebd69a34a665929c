package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandTree(t *testing.T) {
	root := NewRootCommand()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate", "seed"}, names)

	migrate, _, err := root.Find([]string{"migrate"})
	require.NoError(t, err)
	flag := migrate.Flags().Lookup("version")
	require.NotNil(t, flag)
	assert.Equal(t, "1", flag.DefValue)

	seed, _, err := root.Find([]string{"seed"})
	require.NoError(t, err)
	assert.NotNil(t, seed.Flags().ShorthandLookup("f"))
}
