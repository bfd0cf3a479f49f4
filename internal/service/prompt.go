package service

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/pageza/recipe-chef/backend/internal/types"
)

// clarificationShape documents the clarification reply for the prompt schema.
type clarificationShape struct {
	NeedsClarification   bool   `json:"needsClarification" jsonschema_description:"Always true for this shape."`
	ClarificationMessage string `json:"clarificationMessage" jsonschema_description:"A short friendly question asking the user for the missing details."`
}

var (
	recipeSchema        = schemaJSON[types.Recipe]()
	clarificationSchema = schemaJSON[clarificationShape]()
	systemPrompt        = buildSystemPrompt()
)

func schemaJSON[T any]() string {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	schema.Version = ""
	schema.ID = ""

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		panic(fmt.Sprintf("marshal prompt schema: %v", err))
	}
	return string(data)
}

func buildSystemPrompt() string {
	return fmt.Sprintf(`You are an expert culinary AI. Your task is to turn a user's food desire into a complete and delicious recipe.

The response MUST be a single, valid JSON object. Do not include any text outside of this JSON object, including markdown fences.
Respond with exactly one of the two shapes below.

1. When the request is clear enough to cook from, return a recipe matching this JSON schema:
%s

2. When the request is too vague, ambiguous or not about food, return a clarification matching this JSON schema:
%s

Rules:
- ingredients and instructions must never be empty in a recipe.
- If there are no chef notes, set chefNotes to an empty string "".
- Ensure all string values are properly escaped if they contain special characters.
- Focus on clarity, taste, and practicality.`, recipeSchema, clarificationSchema)
}

func buildUserPrompt(desire string) string {
	return fmt.Sprintf(`A user wants a recipe for: "%s".
Generate the best possible recipe based on the user's request, or ask for clarification if you cannot.`, desire)
}
