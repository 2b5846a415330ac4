package apperr

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("boş olamaz")))
	assert.Equal(t, KindDuplicate, KindOf(Duplicate("zaten var")))
	assert.Equal(t, KindConflict, KindOf(Conflict("silinemez")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("bulunamadı")))
	assert.Equal(t, KindReference, KindOf(Reference("ilişkili kayıt yok")))

	// Unclassified errors are internal.
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))

	// The kind survives wrapping.
	wrapped := fmt.Errorf("record movement: %w", NotFound("Hareket bulunamadı"))
	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, KindNotFound))
	assert.Equal(t, "Hareket bulunamadı", MessageOf(wrapped))
}

func TestFromStorage(t *testing.T) {
	assert.NoError(t, FromStorage(nil, "", "", ""))

	err := FromStorage(sql.ErrNoRows, "dup", "ref", "Kullanıcı bulunamadı")
	assert.True(t, IsKind(err, KindNotFound))
	assert.Equal(t, "Kullanıcı bulunamadı", MessageOf(err))

	// Already-classified errors pass through untouched.
	orig := Conflict("Son admin kullanıcısı silinemez")
	assert.Equal(t, error(orig), FromStorage(orig, "dup", "ref", "nf"))

	// Anything else is internal and keeps its cause.
	cause := errors.New("connection reset")
	err = FromStorage(cause, "dup", "ref", "nf")
	assert.True(t, IsKind(err, KindInternal))
	assert.ErrorIs(t, err, cause)
}
