package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// GenerateRecipeRequest is the body of a recipe generation call.
type GenerateRecipeRequest struct {
	Desire string `json:"desire" binding:"required,max=2000"`
}

// FlexString is a string field the model sometimes emits as a number
// (e.g. "servings": 4). Both forms decode to the string form.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = FlexString(str)
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*s = FlexString(strconv.FormatFloat(num, 'f', -1, 64))
		return nil
	}

	return fmt.Errorf("invalid string value: %s", data)
}

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	Name     FlexString `json:"name" jsonschema_description:"Ingredient name, e.g. Spaghetti."`
	Quantity FlexString `json:"quantity" jsonschema_description:"Precise amount, e.g. 400g or 1/2 cup."`
}

// Recipe is a complete generated recipe.
type Recipe struct {
	Title        string       `json:"title" jsonschema_description:"A concise and appealing title."`
	Description  string       `json:"description" jsonschema_description:"A brief enticing summary of one or two sentences."`
	PrepTime     FlexString   `json:"prepTime" jsonschema_description:"Estimated preparation time, e.g. 15 minutes."`
	CookTime     FlexString   `json:"cookTime" jsonschema_description:"Estimated cooking time, e.g. 20 minutes."`
	Servings     FlexString   `json:"servings" jsonschema_description:"Number of people served, e.g. 4 servings."`
	Ingredients  []Ingredient `json:"ingredients" jsonschema_description:"Every ingredient with its quantity."`
	Instructions []string     `json:"instructions" jsonschema_description:"Clear step-by-step instructions in order."`
	ChefNotes    string       `json:"chefNotes,omitempty" jsonschema_description:"Optional tips, variations or serving suggestions. Empty string when there are none."`
}

// ClarificationNeeded is returned when the desire was too vague to cook from.
type ClarificationNeeded struct {
	ClarificationMessage string `json:"clarificationMessage"`
}

// ResultKind discriminates RecipeResult.
type ResultKind string

const (
	ResultRecipe        ResultKind = "recipe"
	ResultClarification ResultKind = "clarification"
)

// RecipeResult holds exactly one of Recipe or Clarification, as named by Kind.
// Results are built once per generation and never modified afterwards.
type RecipeResult struct {
	Kind          ResultKind
	Recipe        *Recipe
	Clarification *ClarificationNeeded
}

// NewRecipeResult wraps a completed recipe.
func NewRecipeResult(r Recipe) *RecipeResult {
	return &RecipeResult{Kind: ResultRecipe, Recipe: &r}
}

// NewClarificationResult wraps a clarification request.
func NewClarificationResult(message string) *RecipeResult {
	return &RecipeResult{
		Kind:          ResultClarification,
		Clarification: &ClarificationNeeded{ClarificationMessage: message},
	}
}

// NeedsClarification reports whether the result asks the user to refine the desire.
func (r *RecipeResult) NeedsClarification() bool {
	return r.Kind == ResultClarification
}

type recipeWire struct {
	NeedsClarification bool `json:"needsClarification"`
	Recipe
}

type clarificationWire struct {
	NeedsClarification bool `json:"needsClarification"`
	ClarificationNeeded
}

// MarshalJSON writes the result in the shape the web front-end consumes:
// a recipe object, or {"needsClarification": true, "clarificationMessage": ...}.
func (r RecipeResult) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case ResultRecipe:
		if r.Recipe == nil {
			return nil, fmt.Errorf("recipe result without recipe")
		}
		return json.Marshal(recipeWire{Recipe: *r.Recipe})
	case ResultClarification:
		if r.Clarification == nil {
			return nil, fmt.Errorf("clarification result without message")
		}
		return json.Marshal(clarificationWire{NeedsClarification: true, ClarificationNeeded: *r.Clarification})
	default:
		return nil, fmt.Errorf("unknown result kind %q", r.Kind)
	}
}
