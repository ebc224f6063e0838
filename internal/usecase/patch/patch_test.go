package patch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Title    Field[string] `json:"title"`
	Priority Field[int]    `json:"priority"`
}

func TestField_UnmarshalDistinguishesAbsentNullValue(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"title":null,"priority":3}`), &p))

	assert.True(t, p.Title.IsSet())
	assert.True(t, p.Title.IsNull())
	_, ok := p.Title.Value()
	assert.False(t, ok)

	assert.True(t, p.Priority.IsSet())
	assert.False(t, p.Priority.IsNull())
	v, ok := p.Priority.Value()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestField_ZeroValueIsAbsent(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))

	assert.False(t, p.Title.IsSet())
	assert.False(t, p.Title.IsNull())
	_, ok := p.Title.Value()
	assert.False(t, ok)
}

func TestField_ExplicitZeroIsPresent(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"title":""}`), &p))

	assert.True(t, p.Title.IsSet())
	v, ok := p.Title.Value()
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestField_Apply(t *testing.T) {
	dst := "before"

	Field[string]{}.Apply(&dst)
	assert.Equal(t, "before", dst)

	Null[string]().Apply(&dst)
	assert.Equal(t, "before", dst)

	Set("after").Apply(&dst)
	assert.Equal(t, "after", dst)
}

func TestField_ApplyPtr(t *testing.T) {
	initial := "before"
	dst := &initial

	Field[string]{}.ApplyPtr(&dst)
	require.NotNil(t, dst)
	assert.Equal(t, "before", *dst)

	Set("after").ApplyPtr(&dst)
	require.NotNil(t, dst)
	assert.Equal(t, "after", *dst)

	Null[string]().ApplyPtr(&dst)
	assert.Nil(t, dst)
}

func TestField_PatchValue(t *testing.T) {
	// Present values unwrap as themselves, even when zero.
	assert.Equal(t, "x", Set("x").PatchValue())
	assert.Equal(t, "", Set("").PatchValue())

	// Absent and null unwrap as a typed nil pointer.
	assert.Equal(t, (*string)(nil), Field[string]{}.PatchValue())
	assert.Equal(t, (*string)(nil), Null[string]().PatchValue())
}

func TestField_MarshalRoundTrip(t *testing.T) {
	out, err := json.Marshal(payload{Title: Set("draft")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"draft","priority":null}`, string(out))
}
