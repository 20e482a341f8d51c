package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroups_CreateJoinList(t *testing.T) {
	api := newTestAPI(t)
	anaID, ana := api.register(t, "Ana", "a@x.com")
	biaID, bia := api.register(t, "Bia", "b@x.com")

	rec := api.do(t, http.MethodPost, "/api/groups", map[string]string{
		"name": "Cálculo I", "subject": "Matemática", "description": "desc",
	}, ana)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var group struct {
		ID      string   `json:"id"`
		Members []string `json:"members"`
	}
	decode(t, rec, &group)
	assert.Equal(t, []string{anaID}, group.Members)

	rec = api.do(t, http.MethodGet, "/api/groups/available", nil, bia)
	require.Equal(t, http.StatusOK, rec.Code)
	var available []struct {
		ID          string `json:"id"`
		CreatorName string `json:"creatorName"`
		MemberCount int    `json:"memberCount"`
	}
	decode(t, rec, &available)
	require.Len(t, available, 1)
	assert.Equal(t, "Ana", available[0].CreatorName)
	assert.Equal(t, 1, available[0].MemberCount)

	for _, want := range []bool{true, false} {
		rec = api.do(t, http.MethodPost, "/api/groups/"+group.ID+"/join", nil, bia)
		require.Equal(t, http.StatusOK, rec.Code)
		var joined map[string]bool
		decode(t, rec, &joined)
		assert.Equal(t, want, joined["joined"])
	}

	rec = api.do(t, http.MethodGet, "/api/groups", nil, bia)
	require.Equal(t, http.StatusOK, rec.Code)
	var mine []struct {
		Members []string `json:"members"`
	}
	decode(t, rec, &mine)
	require.Len(t, mine, 1)
	assert.Equal(t, []string{anaID, biaID}, mine[0].Members)
}

func TestGroups_CreateValidation(t *testing.T) {
	api := newTestAPI(t)
	_, ana := api.register(t, "Ana", "a@x.com")

	rec := api.do(t, http.MethodPost, "/api/groups", map[string]string{"subject": "Matemática"}, ana)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMentors_ConnectAndList(t *testing.T) {
	api := newTestAPI(t)
	caioID, caio := api.register(t, "Caio", "c@x.com")
	_, duda := api.register(t, "Duda", "d@x.com")

	rec := api.do(t, http.MethodPost, "/api/mentors", map[string]string{
		"subject": "Física", "experience": "5 anos",
	}, caio)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = api.do(t, http.MethodGet, "/api/mentors/available", nil, caio)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String(), "own profile is not offered")

	rec = api.do(t, http.MethodGet, "/api/mentors/available", nil, duda)
	require.Equal(t, http.StatusOK, rec.Code)
	var mentors []struct {
		Name string `json:"name"`
	}
	decode(t, rec, &mentors)
	require.Len(t, mentors, 1)
	assert.Equal(t, "Caio", mentors[0].Name)

	rec = api.do(t, http.MethodPost, "/api/mentors/"+caioID+"/connect", map[string]string{"subject": "Física"}, duda)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = api.do(t, http.MethodGet, "/api/mentorings", nil, caio)
	require.Equal(t, http.StatusOK, rec.Code)
	var views []struct {
		Role           string `json:"role"`
		OtherPartyName string `json:"otherPartyName"`
	}
	decode(t, rec, &views)
	require.Len(t, views, 1)
	assert.Equal(t, "Mentor", views[0].Role)
	assert.Equal(t, "Duda", views[0].OtherPartyName)
}

func TestMaterials_ShareAndList(t *testing.T) {
	api := newTestAPI(t)
	_, ana := api.register(t, "Ana", "a@x.com")
	_, bia := api.register(t, "Bia", "b@x.com")

	rec := api.do(t, http.MethodPost, "/api/materials", map[string]any{
		"title": "Lista 1", "subject": "Física", "type": "file", "fileName": "lista1.pdf", "fileSize": 2048,
	}, ana)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = api.do(t, http.MethodPost, "/api/materials", map[string]any{
		"title": "Vídeo", "type": "video",
	}, ana)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/materials", nil, ana)
	require.Equal(t, http.StatusOK, rec.Code)
	var mine []struct {
		FileName string `json:"fileName"`
		FileSize int64  `json:"fileSize"`
	}
	decode(t, rec, &mine)
	require.Len(t, mine, 1)
	assert.Equal(t, "lista1.pdf", mine[0].FileName)
	assert.Equal(t, int64(2048), mine[0].FileSize)

	rec = api.do(t, http.MethodGet, "/api/materials", nil, bia)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
