package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notebook/pkg/core"
)

func TestNewRecord(t *testing.T) {
	tags := []string{"a", "b"}
	r := core.NewRecord("T", "C", tags...)
	tags[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, r.Tags, "record must own its tags")

	empty := core.NewRecord("T", "C")
	require.NotNil(t, empty.Tags)
	assert.Empty(t, empty.Tags)
}

func TestRecord_HasTag(t *testing.T) {
	r := core.NewRecord("Restaurants", "Parma in Boulder", "places", "food")

	assert.True(t, r.HasTag("food"))
	assert.False(t, r.HasTag("foo"), "tag match is exact, not substring")
	assert.False(t, r.HasTag("Food"), "tag match is case-sensitive")
}

func TestRecord_Validate(t *testing.T) {
	require.NoError(t, core.NewRecord("T", "C", "a").Validate())

	bad := core.NewRecord("T", "bad \xff content")
	err := bad.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrMalformedRecord))

	err = core.ValidateAll([]core.Record{core.NewRecord("ok", "ok"), core.NewRecord("T", "C", "\xfe")})
	assert.True(t, errors.Is(err, core.ErrMalformedRecord))
}
