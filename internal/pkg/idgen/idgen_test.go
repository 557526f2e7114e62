package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-skilltrees/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	id := idgen.NewUUID("save").Generate()
	require.True(t, strings.HasPrefix(id, "save_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "save_"))
	assert.NoError(t, err)

	bare := idgen.NewUUID("").Generate()
	_, err = uuid.Parse(bare)
	assert.NoError(t, err)
	assert.NotEqual(t, bare, idgen.NewUUID("").Generate())
}

func TestSequentialGenerator(t *testing.T) {
	g := idgen.NewSequential("save")
	assert.Equal(t, "save_1", g.Generate())
	assert.Equal(t, "save_2", g.Generate())
	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}
