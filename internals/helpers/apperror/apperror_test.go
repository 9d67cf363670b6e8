package apperror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guipadovan/library-manager/internals/helpers/apperror"
)

func Test_FieldErrors_FirstMessageWins(t *testing.T) {
	// setup
	fe := apperror.FieldErrors{}

	// act
	fe.Add("bookId", "book not found")
	fe.Add("bookId", "book already in use")
	fe.Merge(map[string]string{"userId": "user not found", "bookId": "ignored"})

	// assert
	assert.Equal(t, "book not found", fe["bookId"])
	assert.Equal(t, "user not found", fe["userId"])
	assert.True(t, fe.Has("userId"))
}

func Test_FieldErrors_Err(t *testing.T) {
	assert.NoError(t, apperror.FieldErrors{}.Err())

	fe := apperror.FieldErrors{"userId": "user not found"}
	err := fe.Err()
	require.Error(t, err)

	var ve *apperror.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, map[string]string{"userId": "user not found"}, ve.Fields)
	assert.True(t, apperror.IsValidation(err))

	// the error keeps its own copy
	fe["bookId"] = "book not found"
	assert.Len(t, ve.Fields, 1)
}

func Test_NotFound_Wrapped(t *testing.T) {
	err := fmt.Errorf("load: %w", apperror.NotFound("User", int64(7)))

	assert.True(t, apperror.IsNotFound(err))
	assert.Contains(t, err.Error(), "User with id 7 not found.")
	assert.False(t, apperror.IsNotFound(errors.New("boom")))
}

func Test_External_Unwraps(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := apperror.External("google books", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "google books request failed: dial tcp: timeout", err.Error())
}
