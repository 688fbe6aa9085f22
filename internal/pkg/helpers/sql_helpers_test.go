package helpers

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullableConversions(t *testing.T) {
	assert.False(t, GetNullString(nil).Valid)
	s := "thumb.png"
	assert.Equal(t, sql.NullString{String: "thumb.png", Valid: true}, GetNullString(&s))

	assert.False(t, GetContentNullString("").Valid)
	assert.True(t, GetContentNullString("x").Valid)

	assert.False(t, GetNullInt64(nil).Valid)
	id := int64(7)
	assert.Equal(t, sql.NullInt64{Int64: 7, Valid: true}, GetNullInt64(&id))

	assert.Nil(t, StringPtr(sql.NullString{}))
	assert.Equal(t, "a", *StringPtr(sql.NullString{String: "a", Valid: true}))

	assert.Nil(t, Int64Ptr(sql.NullInt64{}))
	assert.Equal(t, int64(3), *Int64Ptr(sql.NullInt64{Int64: 3, Valid: true}))
}
