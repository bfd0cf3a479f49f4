// Package render formats generation results for terminal output.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/pageza/recipe-chef/backend/internal/types"
)

// Result writes r as plain text.
func Result(w io.Writer, r *types.RecipeResult) error {
	switch {
	case r == nil:
		return fmt.Errorf("nil result")
	case r.NeedsClarification() && r.Clarification != nil:
		_, err := fmt.Fprintf(w, "I need a bit more detail: %s\nPlease refine your request and try again.\n",
			r.Clarification.ClarificationMessage)
		return err
	case r.Kind == types.ResultRecipe && r.Recipe != nil:
		_, err := io.WriteString(w, Recipe(r.Recipe))
		return err
	default:
		return fmt.Errorf("unknown result kind %q", r.Kind)
	}
}

// Recipe formats a recipe the way the web front-end lays it out.
func Recipe(r *types.Recipe) string {
	var b strings.Builder

	b.WriteString(r.Title + "\n")
	b.WriteString(strings.Repeat("=", len([]rune(r.Title))) + "\n")
	if r.Description != "" {
		b.WriteString("\n" + r.Description + "\n")
	}

	var meta []string
	if r.PrepTime != "" {
		meta = append(meta, "Prep: "+string(r.PrepTime))
	}
	if r.CookTime != "" {
		meta = append(meta, "Cook: "+string(r.CookTime))
	}
	if r.Servings != "" {
		meta = append(meta, "Serves: "+string(r.Servings))
	}
	if len(meta) > 0 {
		b.WriteString("\n" + strings.Join(meta, " | ") + "\n")
	}

	b.WriteString("\nIngredients\n")
	for _, ing := range r.Ingredients {
		if ing.Quantity == "" {
			fmt.Fprintf(&b, "  - %s\n", ing.Name)
			continue
		}
		fmt.Fprintf(&b, "  - %s: %s\n", ing.Name, ing.Quantity)
	}

	b.WriteString("\nInstructions\n")
	for i, step := range r.Instructions {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
	}

	if notes := strings.TrimSpace(r.ChefNotes); notes != "" {
		b.WriteString("\nChef's Notes\n  " + notes + "\n")
	}

	return b.String()
}
