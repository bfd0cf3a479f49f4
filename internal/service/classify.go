package service

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pageza/recipe-chef/backend/internal/types"
)

// essentialRecipeFields must all be present and non-empty for a recipe reply.
var essentialRecipeFields = []string{"title", "ingredients", "instructions"}

// fenceRegex matches a reply wrapped in a markdown code fence, optionally tagged json.
var fenceRegex = regexp.MustCompile("(?is)^```(?:json)?\\s*\\n?(.*?)\\n?\\s*```$")

// stripFences trims the reply and unwraps a surrounding ``` fence if present.
// JSON output mode should make this a no-op, but not every upstream honours it.
func stripFences(reply string) string {
	s := strings.TrimSpace(reply)
	if m := fenceRegex.FindStringSubmatch(s); m != nil && m[1] != "" {
		return strings.TrimSpace(m[1])
	}
	return s
}

// ClassifyPayload decides whether a decoded reply is a clarification request
// or a recipe. A truthy needsClarification flag always wins: a malformed
// clarification is reported as such and never re-read as a recipe.
// raw is kept on errors for diagnostics only.
func ClassifyPayload(raw string, payload map[string]any) (*types.RecipeResult, error) {
	if truthy(payload["needsClarification"]) {
		msg, ok := payload["clarificationMessage"].(string)
		if !ok || strings.TrimSpace(msg) == "" {
			return nil, &SchemaError{
				Message: "AI flagged the request as needing clarification but the message is missing or invalid",
				Raw:     raw,
				Payload: payload,
			}
		}
		return types.NewClarificationResult(msg), nil
	}

	var missing []string
	for _, field := range essentialRecipeFields {
		if !present(payload[field]) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{
			Message: "AI response is missing essential recipe fields: " + strings.Join(missing, ", "),
			Raw:     raw,
			Payload: payload,
		}
	}

	data, err := json.Marshal(normalizeEntries(payload))
	if err != nil {
		return nil, &SchemaError{Message: "AI response could not be re-encoded", Raw: raw, Payload: payload, Err: err}
	}
	var recipe types.Recipe
	if err := json.Unmarshal(data, &recipe); err != nil {
		return nil, &SchemaError{Message: "AI response has malformed recipe fields", Raw: raw, Payload: payload, Err: err}
	}

	return types.NewRecipeResult(recipe), nil
}

// normalizeEntries returns a shallow copy of payload whose ingredient and
// instruction entries are coerced into the shapes Recipe decodes. Entries are
// trusted, not validated: a bare string becomes an ingredient name, an object
// step becomes its text.
func normalizeEntries(payload map[string]any) map[string]any {
	out := make(map[string]any, len(payload))
	for k, v := range payload {
		out[k] = v
	}

	if list, ok := payload["ingredients"].([]any); ok {
		ingredients := make([]any, len(list))
		for i, entry := range list {
			ingredients[i] = normalizeIngredient(entry)
		}
		out["ingredients"] = ingredients
	}
	if list, ok := payload["instructions"].([]any); ok {
		steps := make([]any, len(list))
		for i, entry := range list {
			steps[i] = normalizeStep(entry)
		}
		out["instructions"] = steps
	}
	return out
}

func normalizeIngredient(entry any) map[string]any {
	obj, ok := entry.(map[string]any)
	if !ok {
		return map[string]any{"name": entryText(entry), "quantity": ""}
	}
	name, hasName := firstField(obj, "name", "ingredient", "item")
	quantity, _ := firstField(obj, "quantity", "amount")
	if !hasName {
		name = entryText(obj)
	}
	return map[string]any{"name": name, "quantity": quantity}
}

func normalizeStep(entry any) string {
	if obj, ok := entry.(map[string]any); ok {
		for _, key := range []string{"text", "instruction", "description", "step"} {
			if s, ok := obj[key].(string); ok && s != "" {
				return s
			}
		}
	}
	return entryText(entry)
}

func firstField(obj map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		if v, ok := obj[key]; ok && v != nil {
			return entryText(v), true
		}
	}
	return "", false
}

// entryText renders any decoded JSON value as display text.
func entryText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		data, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(data)
	}
}

// truthy follows JavaScript truthiness, which is how the model's flag was
// historically interpreted by the web client.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case string:
		return x != ""
	default:
		return true
	}
}

// present is truthy, tightened for the fields a recipe cannot do without:
// blank strings and empty lists do not count.
func present(v any) bool {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x) != ""
	case []any:
		return len(x) > 0
	default:
		return truthy(v)
	}
}
