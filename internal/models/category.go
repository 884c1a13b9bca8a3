package models

// Category is one of the fixed expense categories.
//
// Expenses store the category display name as plain text, so values
// outside this set are accepted and map back to Other.
type Category struct {
	Key  string `json:"key" example:"food"`
	Name string `json:"name" example:"Food"`
}

// Categories is the fixed set of expense categories.
var Categories = []Category{
	{Key: "food", Name: "Food"},
	{Key: "transportation", Name: "Transportation"},
	{Key: "housing", Name: "Housing"},
	{Key: "entertainment", Name: "Entertainment"},
	{Key: "shopping", Name: "Shopping"},
	{Key: "utilities", Name: "Utilities"},
	{Key: "healthcare", Name: "Healthcare"},
	{Key: "education", Name: "Education"},
	{Key: "other", Name: "Other"},
}

// CategoryOther is the fallback category.
var CategoryOther = Categories[len(Categories)-1]

// CategoryFromName returns the category with the given display name.
// Unknown names return Other, this is a deliberate default, not an error.
func CategoryFromName(name string) Category {
	for _, category := range Categories {
		if category.Name == name {
			return category
		}
	}

	return CategoryOther
}

// CategoryNames returns the display names of all categories.
func CategoryNames() []string {
	names := make([]string, 0, len(Categories))
	for _, category := range Categories {
		names = append(names, category.Name)
	}

	return names
}
