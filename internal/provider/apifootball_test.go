package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"OddsScout/internal/model"
)

func TestSearchTeams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/teams", r.URL.Path)
		assert.Equal(t, "Man City", r.URL.Query().Get("search"))
		assert.Equal(t, "secret", r.Header.Get("x-apisports-key"))
		_, _ = w.Write([]byte(`{"response":[
			{"team":{"id":50,"name":"Manchester City"}},
			{"team":{"id":1006,"name":"Manchester City W"}}
		]}`))
	}))
	defer srv.Close()

	f := NewAPIFootball(srv.URL, "secret")
	refs, err := f.SearchTeams(context.Background(), "Man City")
	require.NoError(t, err)
	assert.Equal(t, []model.TeamRef{
		{ID: 50, Name: "Manchester City"},
		{ID: 1006, Name: "Manchester City W"},
	}, refs)
}

func TestFetchRoster(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/players", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("team"))
		assert.Equal(t, "2024", r.URL.Query().Get("season"))
		_, _ = w.Write([]byte(`{"response":[
			{"player":{"name":"Striker","position":"Attacker"},
			 "statistics":[{"games":{"position":"Attacker","rating":"7.81"},
			                "shots":{"total":41},
			                "goals":{"conceded":0,"saves":null}}]},
			{"player":{"name":"Keeper","position":"Goalkeeper"},
			 "statistics":[{"games":{"position":"","rating":null},
			                "shots":{"total":null},
			                "goals":{"conceded":12,"saves":38}}]},
			{"player":{"name":"NoStats","position":"Midfielder"},"statistics":[]}
		]}`))
	}))
	defer srv.Close()

	f := NewAPIFootball(srv.URL, "secret")
	players, err := f.FetchRoster(context.Background(), 50, 2024)
	require.NoError(t, err)
	require.Len(t, players, 3)

	// String rating coerced, games position preferred.
	assert.Equal(t, model.PlayerStats{Name: "Striker", Position: "Attacker", Rating: 7.81, Shots: 41}, players[0])
	// Null fields default to zero; profile position used when games position empty.
	assert.Equal(t, model.PlayerStats{Name: "Keeper", Position: "Goalkeeper", Saves: 38, Conceded: 12}, players[1])
	// Entirely absent statistics yield the zero-valued record.
	assert.Equal(t, model.PlayerStats{Name: "NoStats", Position: "Midfielder"}, players[2])
}

func TestFetchRosterProviderDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewAPIFootball(srv.URL, "secret")
	_, err := f.FetchRoster(context.Background(), 50, 2024)
	assert.Error(t, err)
}

func TestToFloat(t *testing.T) {
	assert.Equal(t, 0.0, toFloat(nil))
	assert.Equal(t, 7.5, toFloat(7.5))
	assert.Equal(t, 3.0, toFloat(3))
	assert.Equal(t, 6.91, toFloat("6.91"))
	assert.Equal(t, 0.0, toFloat("n/a"))
	assert.Equal(t, 0.0, toFloat([]string{"x"}))
}
