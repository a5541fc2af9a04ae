package docdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCreateSeedsDesignDoc(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Create("testdb"))

	db, err := r.Get("testdb")
	require.NoError(t, err)

	info := db.Info()
	assert.Equal(t, "testdb", info.Name)
	assert.Equal(t, 1, info.DocCount)
	assert.Equal(t, 0, info.DeletedDocCount)
	assert.Len(t, info.UpdateSeq, 138)

	_, err = db.Get(designDocID)
	assert.NoError(t, err)
}

func TestRegistryCreateRejectsInvalidName(t *testing.T) {
	r := NewRegistry()
	err := r.Create("$3213324")
	require.Error(t, err)
	tag, ok := TagOf(err)
	require.True(t, ok)
	assert.Equal(t, TagInvalidDBName, tag)

	_, err = r.Get("$3213324")
	require.Error(t, err)
	tag, _ = TagOf(err)
	assert.Equal(t, TagDBNotFound, tag)

	assert.NotContains(t, r.List(), "$3213324")
}

func TestRegistryCreateRejectsDuplicate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Create("testdb"))

	err := r.Create("testdb")
	require.Error(t, err)
	tag, _ := TagOf(err)
	assert.Equal(t, TagDBExists, tag)
}

func TestRegistryDropAndList(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Create("testdb"))
	assert.Contains(t, r.List(), "testdb")

	require.NoError(t, r.Drop("testdb"))
	assert.NotContains(t, r.List(), "testdb")

	err := r.Drop("testdb")
	require.Error(t, err)
	tag, _ := TagOf(err)
	assert.Equal(t, TagDBNotFound, tag)
}
