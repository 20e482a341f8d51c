package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindUserByEmail_FirstMatchWins(t *testing.T) {
	users := []User{
		{ID: "1", Email: "a@x.com"},
		{ID: "2", Email: "a@x.com"},
	}

	got := FindUserByEmail(users, "a@x.com")
	require.NotNil(t, got)
	assert.Equal(t, "1", got.ID)

	assert.Nil(t, FindUserByEmail(users, "A@x.com"), "match is exact")
	assert.Nil(t, FindUserByID(users, "3"))
}

func TestNameOr(t *testing.T) {
	var missing *User
	assert.Equal(t, UnknownUserName, missing.NameOr(UnknownUserName))
	assert.Equal(t, "Ana", (&User{Name: "Ana"}).NameOr(UnknownUserName))
}

func TestPublic_OmitsPassword(t *testing.T) {
	data, err := json.Marshal(User{ID: "1", Name: "Ana", Password: "senha1"}.Public())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "senha1")
	assert.NotContains(t, string(data), "password")
}

func TestGroupHasMember(t *testing.T) {
	g := Group{Members: []string{"1", "2"}}
	assert.True(t, g.HasMember("2"))
	assert.False(t, g.HasMember("3"))
	assert.False(t, Group{}.HasMember("1"))
}

func TestParseMaterialType(t *testing.T) {
	for _, s := range []string{"file", "link"} {
		got, err := ParseMaterialType(s)
		require.NoError(t, err)
		assert.Equal(t, MaterialType(s), got)
	}

	_, err := ParseMaterialType("Link")
	assert.Error(t, err)
	_, err = ParseMaterialType("")
	assert.Error(t, err)
}

func TestGroupView_FlattensGroupInJSON(t *testing.T) {
	data, err := json.Marshal(GroupView{Group: Group{ID: "g1", Name: "Cálculo I"}, CreatorName: "Ana", MemberCount: 1})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "g1", m["id"])
	assert.Equal(t, "Ana", m["creatorName"])
	assert.EqualValues(t, 1, m["memberCount"])
}
