package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hackconnect-backend/internal/appwrite"
	"hackconnect-backend/internal/config"
	apperrors "hackconnect-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDatabases(serverURL string) *appwrite.Databases {
	client := appwrite.NewClient(&config.Config{
		AppwriteEndpoint:  serverURL,
		AppwriteProjectID: "test-project",
		AppwriteAPIKey:    "test-key",
	})
	return appwrite.NewDatabases(client, "db-1")
}

func TestTeamRepositoryGetByIDMapsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Document with the requested ID could not be found.","code":404,"type":"document_not_found"}`))
	}))
	defer server.Close()

	repo := NewTeamRepository(newTestDatabases(server.URL), "teams")

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
}

func TestTeamRepositoryGetByIDPassesThroughOtherErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"message":"Server is overloaded","code":503,"type":"general_unavailable"}`))
	}))
	defer server.Close()

	repo := NewTeamRepository(newTestDatabases(server.URL), "teams")

	_, err := repo.GetByID(context.Background(), "team-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrTeamNotFound)

	var upstream *apperrors.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusServiceUnavailable, upstream.StatusCode)
}

func TestTeamRepositoryGetByHackathonIDFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries := r.URL.Query()["queries[]"]
		require.Len(t, queries, 1)
		assert.JSONEq(t, `{"method":"equal","attribute":"hackathon_id","values":["hack-1"]}`, queries[0])

		w.Write([]byte(`{"total":2,"documents":[
			{"$id":"team-1","name":"Night Owls","hackathon_id":"hack-1","leader_id":"u1","members":["u1"],"join_requests":[]},
			{"$id":"team-2","name":"Bit Shifters","hackathon_id":"hack-1","leader_id":"u2","members":["u2","u3"],"join_requests":["u4"]}
		]}`))
	}))
	defer server.Close()

	repo := NewTeamRepository(newTestDatabases(server.URL), "teams")

	teams, total, err := repo.GetByHackathonID(context.Background(), "hack-1")

	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, teams, 2)
	assert.Equal(t, "Night Owls", teams[0].Name)
	assert.Equal(t, []string{"u4"}, teams[1].JoinRequests)
}

func TestTeamRepositoryGetNamesByIDs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries := r.URL.Query()["queries[]"]
		require.Len(t, queries, 2)
		assert.JSONEq(t, `{"method":"equal","attribute":"$id","values":["team-1","team-2"]}`, queries[0])
		assert.JSONEq(t, `{"method":"select","values":["$id","name"]}`, queries[1])

		w.Write([]byte(`{"total":2,"documents":[
			{"$id":"team-1","name":"Night Owls"},
			{"$id":"team-2","name":"Bit Shifters"}
		]}`))
	}))
	defer server.Close()

	repo := NewTeamRepository(newTestDatabases(server.URL), "teams")

	names, err := repo.GetNamesByIDs(context.Background(), []string{"team-1", "team-2"})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"team-1": "Night Owls",
		"team-2": "Bit Shifters",
	}, names)
}

func TestTeamRepositoryGetNamesByIDsEmptyInput(t *testing.T) {
	// No server: an empty id list must not touch the store at all.
	repo := NewTeamRepository(newTestDatabases("http://127.0.0.1:0"), "teams")

	names, err := repo.GetNamesByIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, names)
	assert.NotNil(t, names)
}

func TestTeamRepositoryCountByHackathonID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries := r.URL.Query()["queries[]"]
		require.Len(t, queries, 2)
		assert.JSONEq(t, `{"method":"equal","attribute":"hackathon_id","values":["hack-1"]}`, queries[0])
		assert.JSONEq(t, `{"method":"limit","values":[1]}`, queries[1])

		w.Write([]byte(`{"total":17,"documents":[{"$id":"team-1"}]}`))
	}))
	defer server.Close()

	repo := NewTeamRepository(newTestDatabases(server.URL), "teams")

	count, err := repo.CountByHackathonID(context.Background(), "hack-1")

	require.NoError(t, err)
	assert.Equal(t, int64(17), count)
}

func TestTeamRepositoryDeleteMapsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"not found","code":404,"type":"document_not_found"}`))
	}))
	defer server.Close()

	repo := NewTeamRepository(newTestDatabases(server.URL), "teams")

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
}
