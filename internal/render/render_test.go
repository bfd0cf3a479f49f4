package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-chef/backend/internal/types"
)

func lentilStew() types.Recipe {
	return types.Recipe{
		Title:        "Lentil Stew",
		Description:  "A hearty vegetarian stew.",
		PrepTime:     "10 minutes",
		CookTime:     "30 minutes",
		Servings:     "4",
		Ingredients:  []types.Ingredient{{Name: "Lentils", Quantity: "1 cup"}, {Name: "Salt"}},
		Instructions: []string{"Rinse lentils.", "Simmer 30 minutes."},
	}
}

func TestRecipe(t *testing.T) {
	want := `Lentil Stew
===========

A hearty vegetarian stew.

Prep: 10 minutes | Cook: 30 minutes | Serves: 4

Ingredients
  - Lentils: 1 cup
  - Salt

Instructions
  1. Rinse lentils.
  2. Simmer 30 minutes.
`
	r := lentilStew()
	assert.Equal(t, want, Recipe(&r))
}

func TestRecipe_ChefNotes(t *testing.T) {
	r := lentilStew()

	r.ChefNotes = "   "
	assert.NotContains(t, Recipe(&r), "Chef's Notes")

	r.ChefNotes = "Finish with lemon."
	assert.Contains(t, Recipe(&r), "\nChef's Notes\n  Finish with lemon.\n")
}

func TestResult(t *testing.T) {
	t.Run("recipe", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Result(&buf, types.NewRecipeResult(lentilStew())))
		assert.Contains(t, buf.String(), "Lentil Stew")
	})

	t.Run("clarification", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Result(&buf, types.NewClarificationResult("Please specify a cuisine.")))
		assert.Equal(t, "I need a bit more detail: Please specify a cuisine.\nPlease refine your request and try again.\n", buf.String())
	})

	t.Run("invalid", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, Result(&buf, nil))
		assert.Error(t, Result(&buf, &types.RecipeResult{Kind: "other"}))
	})
}
