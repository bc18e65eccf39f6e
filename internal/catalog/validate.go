package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/wwells/Recipes/internal/recipe"
)

// Problem is a single invariant violation found in a catalog
type Problem struct {
	RecipeID string
	Field    string
	Message  string
}

func (p Problem) String() string {
	if p.RecipeID == "" {
		return fmt.Sprintf("%s: %s", p.Field, p.Message)
	}
	return fmt.Sprintf("%s.%s: %s", p.RecipeID, p.Field, p.Message)
}

// Validator checks recipes and catalogs against their invariants
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator that reports JSON field names
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Recipe validates a single recipe
func (v *Validator) Recipe(r recipe.Recipe) []Problem {
	err := v.validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Problem{{RecipeID: r.ID, Field: "recipe", Message: err.Error()}}
	}

	problems := make([]Problem, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, Problem{
			RecipeID: r.ID,
			Field:    fe.Field(),
			Message:  message(fe),
		})
	}
	return problems
}

// Catalog validates every recipe plus the document-level invariants: unique
// ids and a tag list equal to the recipe vocabulary
func (v *Validator) Catalog(c *Catalog) []Problem {
	var problems []Problem

	seen := make(map[string]bool, len(c.Recipes))
	for _, r := range c.Recipes {
		problems = append(problems, v.Recipe(r)...)
		if r.ID != "" && seen[r.ID] {
			problems = append(problems, Problem{RecipeID: r.ID, Field: "id", Message: "duplicate id"})
		}
		seen[r.ID] = true
	}

	if vocab := c.Vocabulary(); !slices.Equal(vocab, c.Tags) {
		added := difference(vocab, c.Tags)
		removed := difference(c.Tags, vocab)
		msg := "tag list is out of date"
		if len(added) > 0 {
			msg += fmt.Sprintf("; missing %s", strings.Join(added, ", "))
		}
		if len(removed) > 0 {
			msg += fmt.Sprintf("; unused %s", strings.Join(removed, ", "))
		}
		problems = append(problems, Problem{Field: "tags", Message: msg})
	}

	return problems
}

// message renders a field error in plain words
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "startswith":
		return fmt.Sprintf("must start with %q", fe.Param())
	case "url":
		return "must be an absolute URL"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "unique":
		return "must not contain duplicates"
	case "lowercase":
		return "must be lowercase"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
