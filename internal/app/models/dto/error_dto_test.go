package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponseBody(t *testing.T) {
	t.Parallel()

	details := NewValidationErrors().AddError("start", "start must be a term code like 2024-1")
	resp := NewErrorResponse(NewErrorDetail(ErrorCodeValidationFailed, "start must be a term code like 2024-1").
		WithField("start").
		WithDetails(details.Errors))

	body, err := json.Marshal(resp)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, false, got["success"])
	assert.Equal(t, "start must be a term code like 2024-1", got["message"])

	detail := got["error"].(map[string]any)
	assert.Equal(t, "VAL_001", detail["code"])
	assert.Equal(t, "start", detail["field"])
	assert.Equal(t, "ERROR", detail["severity"])
	assert.Len(t, detail["details"], 1)
	assert.NotContains(t, detail, "debugInfo")
}
