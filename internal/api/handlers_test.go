package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/diet-recipe/backend/config"
	"github.com/pageza/diet-recipe/backend/internal/mocks"
	"github.com/pageza/diet-recipe/backend/internal/service"
	"github.com/pageza/diet-recipe/backend/internal/types"
)

func TestHealthCheck(t *testing.T) {
	generator := new(mocks.MockRecipeGenerator)
	generator.On("GenerateRecipe", mock.Anything, mock.Anything, mock.Anything).Return("", fmt.Errorf("boom"))
	router := setupRecipeTestRouter(generator)

	// A failed recipe request must not affect health.
	postRecipe(router, `{"diet_type":"vegan","api_key":"sk-test"}`)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	}
}

func TestIndex(t *testing.T) {
	router := setupRecipeTestRouter(new(mocks.MockRecipeGenerator))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, `id="recipeForm"`)
	assert.Contains(t, body, `id="apiKey"`)
	assert.Contains(t, body, `value="vegetarian"`)
	assert.Contains(t, body, `value="vegan"`)
	assert.Contains(t, body, "/api/recipe")
	assert.Contains(t, body, "data.detail")
}

func TestGenerateRecipeThroughUpstream(t *testing.T) {
	const upstreamText = "Mushroom Risotto\n\nCooking time: 40 minutes"

	var calls int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		body, _ := json.Marshal(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": upstreamText}},
			},
		})
		w.Write(body)
	}))
	defer upstream.Close()

	cfg := &config.Config{
		LLMAPIURL:      upstream.URL,
		LLMModel:       config.DefaultLLMModel,
		LLMMaxTokens:   config.DefaultLLMMaxTokens,
		LLMTemperature: config.DefaultLLMTemperature,
		LLMTimeout:     config.DefaultLLMTimeout,
	}
	router := setupRecipeTestRouter(service.NewLLMService(cfg))

	w := postRecipe(router, `{"diet_type":"vegetarian","api_key":"sk-test"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.RecipeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, upstreamText, resp.Recipe)
	assert.Equal(t, types.Vegetarian, resp.DietType)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	w = postRecipe(router, `{"diet_type":"carnivore","api_key":"sk-test"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	w = postRecipe(router, `{"diet_type":"vegan","api_key":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
