package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/Guyuepp/community-comments/domain"
)

const (
	discordAPI = "https://discord.com/api"
	discordCDN = "https://cdn.discordapp.com"
)

var discordEndpoint = oauth2.Endpoint{
	AuthURL:  "https://discord.com/oauth2/authorize",
	TokenURL: "https://discord.com/api/oauth2/token",
}

// Discord signs users in through Discord's OAuth2 code flow.
type Discord struct {
	conf    *oauth2.Config
	apiBase string
}

var _ domain.IdentityProvider = (*Discord)(nil)

func NewDiscord(clientID, clientSecret, redirectURL string) *Discord {
	return &Discord{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     discordEndpoint,
			Scopes:       []string{"identify", "email"},
		},
		apiBase: discordAPI,
	}
}

func (d *Discord) AuthCodeURL(state string) string {
	return d.conf.AuthCodeURL(state)
}

type discordUser struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	GlobalName string `json:"global_name"`
	Email      string `json:"email"`
	Avatar     string `json:"avatar"`
}

// Profile exchanges the authorization code and reads the user behind it.
func (d *Discord) Profile(ctx context.Context, code string) (domain.ProviderProfile, error) {
	tok, err := d.conf.Exchange(ctx, code)
	if err != nil {
		return domain.ProviderProfile{}, fmt.Errorf("discord code exchange: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.apiBase+"/users/@me", nil)
	if err != nil {
		return domain.ProviderProfile{}, err
	}
	resp, err := d.conf.Client(ctx, tok).Do(req)
	if err != nil {
		return domain.ProviderProfile{}, fmt.Errorf("discord users/@me: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return domain.ProviderProfile{}, fmt.Errorf("discord users/@me: status %d", resp.StatusCode)
	}

	var u discordUser
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return domain.ProviderProfile{}, fmt.Errorf("decode discord user: %w", err)
	}
	if u.ID == "" {
		return domain.ProviderProfile{}, fmt.Errorf("discord user without id")
	}

	p := domain.ProviderProfile{
		ID:    u.ID,
		Name:  u.GlobalName,
		Email: u.Email,
	}
	if p.Name == "" {
		p.Name = u.Username
	}
	if u.Avatar != "" {
		p.AvatarURL = fmt.Sprintf("%s/avatars/%s/%s.png", discordCDN, u.ID, u.Avatar)
	}
	return p, nil
}
