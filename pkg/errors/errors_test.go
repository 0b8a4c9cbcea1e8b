package errors_test

import (
	"errors"
	"os"
	"testing"

	pkgerrors "github.com/agentstation/gamecat/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("with id", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("oldest game", "platform=Linux")
		assert.Equal(t, "cannot determine oldest game: no entries match platform=Linux", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("without id", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{Resource: "newest game"}
		assert.Equal(t, "cannot determine newest game: no matching entries", err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		wrapped := errors.Join(errors.New("query failed"), pkgerrors.NewNotFoundError("game", ""))
		assert.True(t, pkgerrors.IsNotFound(wrapped))
		assert.True(t, pkgerrors.IsCannotDetermine(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Field: "month", Value: 13, Message: "must be between 1 and 12"}
		assert.Equal(t, "validation failed for field month: must be between 1 and 12", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "bad record"}
		assert.Equal(t, "validation failed: bad record", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestFormatError(t *testing.T) {
	err := pkgerrors.NewFormatError("games.txt", ".csv")
	assert.Equal(t, `invalid file path "games.txt": expected a .csv file`, err.Error())
	assert.True(t, pkgerrors.IsFormatError(err))
	assert.False(t, pkgerrors.IsIOError(err))
}

func TestIOError(t *testing.T) {
	t.Run("unwraps cause", func(t *testing.T) {
		err := pkgerrors.NewIOError("read", "games.csv", os.ErrNotExist)
		assert.True(t, pkgerrors.IsIOError(err))
		assert.True(t, errors.Is(err, os.ErrNotExist))
		assert.Contains(t, err.Error(), "read of games.csv")
	})

	t.Run("without path", func(t *testing.T) {
		err := &pkgerrors.IOError{Operation: "write", Message: "disk full"}
		assert.Equal(t, "IO error during write: disk full", err.Error())
	})

	t.Run("wrap", func(t *testing.T) {
		assert.Nil(t, pkgerrors.WrapIO("read", "x.csv", nil))

		err := pkgerrors.WrapIO("write", "x.csv", os.ErrPermission)
		var ioErr *pkgerrors.IOError
		require.True(t, errors.As(err, &ioErr))
		assert.Equal(t, "write", ioErr.Operation)
		assert.Equal(t, "x.csv", ioErr.Path)
	})
}

func TestEmptyCatalogError(t *testing.T) {
	err := pkgerrors.NewEmptyCatalogError("average release year")
	assert.Equal(t, "cannot determine average release year: catalog is empty", err.Error())
	assert.True(t, pkgerrors.IsEmptyCatalog(err))
	assert.True(t, pkgerrors.IsCannotDetermine(err))
	assert.False(t, pkgerrors.IsNotFound(err))
}
