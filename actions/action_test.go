package actions

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionError(t *testing.T) {
	err := NewError("Something went wrong")
	assert.Equal(t, "Something went wrong", err.Message)
	assert.Empty(t, err.Code)

	withCode := NewErrorWithCode("Not found", "404")
	assert.Equal(t, "404", withCode.Code)
}

func TestActionResponseSuccess(t *testing.T) {
	resp := Success(map[string]int{"id": 1})
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data)
	assert.Nil(t, resp.Err)
	assert.NotEmpty(t, resp.InvocationID)

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(resp.Data, &decoded))
	assert.Equal(t, 1, decoded["id"])
}

func TestActionResponseInvocationIDsAreUnique(t *testing.T) {
	a := Success(1)
	b := Success(1)
	assert.NotEqual(t, a.InvocationID, b.InvocationID)
}

func TestActionResponseError(t *testing.T) {
	resp := Failure(NewError("Failed"))
	assert.False(t, resp.Success)
	assert.Empty(t, resp.Data)
	require.NotNil(t, resp.Err)
	assert.Equal(t, "Failed", resp.Err.Message)
}
