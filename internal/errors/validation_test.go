package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-skilltrees/internal/errors"
)

func TestValidationBuilder(t *testing.T) {
	t.Run("no errors builds nil", func(t *testing.T) {
		vb := errors.NewValidationBuilder()
		errors.ValidateRequired("key", "guard", vb)
		errors.ValidatePositive("price", 1, 1, vb)
		assert.NoError(t, vb.Build())
	})

	t.Run("collects fields in sorted order", func(t *testing.T) {
		vb := errors.NewValidationBuilder()
		errors.ValidatePositive("price", 0, 1, vb)
		errors.ValidateRequired("key", " ", vb)
		errors.ValidateEnum("kind", "shield", []string{"item", "weapon", "armor"}, vb)

		err := vb.Build()
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Equal(t,
			"INVALID_ARGUMENT: validation failed: key: is required; kind: must be one of: item, weapon, armor; price: must be at least 1, got 0",
			err.Error())
	})

	t.Run("merge keeps nested fields", func(t *testing.T) {
		inner := errors.NewValidationBuilder()
		inner.RequiredField("ability")

		outer := errors.NewValidationBuilder()
		outer.Merge("nodes[0]", inner.Build())
		outer.Merge("trees[1]", errors.NotFound("node missing"))
		outer.Merge("ignored", nil)

		err := outer.Build()
		require.Error(t, err)
		fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
		assert.Equal(t, []string{"is required"}, fields["nodes[0].ability"])
		assert.Equal(t, []string{"node missing"}, fields["trees[1]"])
		assert.Len(t, fields, 2)
	})
}
