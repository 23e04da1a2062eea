package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newDiscordServer(t *testing.T, user string) (*httptest.Server, *Discord) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "the-code", r.Form.Get("code"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/users/@me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer at", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(user))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	d := NewDiscord("client", "secret", "http://localhost/auth/discord/callback")
	d.conf.Endpoint = oauth2.Endpoint{AuthURL: srv.URL + "/oauth2/authorize", TokenURL: srv.URL + "/oauth2/token"}
	d.apiBase = srv.URL
	return srv, d
}

func TestDiscordProfile(t *testing.T) {
	_, d := newDiscordServer(t, `{"id":"80351110224678912","username":"nelly","global_name":"Nelly","email":"nelly@example.com","avatar":"8342729096ea3675442027381ff50dfe"}`)

	p, err := d.Profile(context.Background(), "the-code")
	require.NoError(t, err)
	assert.Equal(t, "80351110224678912", p.ID)
	assert.Equal(t, "Nelly", p.Name)
	assert.Equal(t, "nelly@example.com", p.Email)
	assert.Equal(t, "https://cdn.discordapp.com/avatars/80351110224678912/8342729096ea3675442027381ff50dfe.png", p.AvatarURL)
}

func TestDiscordProfileFallsBackToUsername(t *testing.T) {
	_, d := newDiscordServer(t, `{"id":"1","username":"nelly"}`)

	p, err := d.Profile(context.Background(), "the-code")
	require.NoError(t, err)
	assert.Equal(t, "nelly", p.Name)
	assert.Empty(t, p.AvatarURL)
}

func TestDiscordProfileWithoutID(t *testing.T) {
	_, d := newDiscordServer(t, `{}`)

	_, err := d.Profile(context.Background(), "the-code")
	assert.Error(t, err)
}

func TestDiscordAuthCodeURL(t *testing.T) {
	d := NewDiscord("client", "secret", "http://localhost/cb")
	u := d.AuthCodeURL("xyz")
	assert.Contains(t, u, "https://discord.com/oauth2/authorize?")
	assert.Contains(t, u, "state=xyz")
	assert.Contains(t, u, "client_id=client")
}
