package types

// RecipeRequest represents the request body for generating a recipe
type RecipeRequest struct {
	DietType string `json:"diet_type"`
	APIKey   string `json:"api_key"`
}

// RecipeResponse represents a generated recipe
type RecipeResponse struct {
	Recipe   string   `json:"recipe"`
	DietType DietType `json:"diet_type"`
}

// ErrorResponse is the body of every error returned by the API
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse is the body of the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}
