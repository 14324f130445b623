// Package auth implements the identity boundary: the Google OAuth
// sign-in flow, the lazy guest provisioning that follows it, and the
// session tokens handed back to the client.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// Profile is what we keep from the identity provider after a
// successful sign-in.
type Profile struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Provider wraps the OAuth2 client for the external identity provider.
type Provider struct {
	oauth *oauth2.Config
	http  *http.Client
}

// NewGoogleProvider configures the Google sign-in flow. The redirect
// URL must match the callback route registered with the provider.
func NewGoogleProvider(clientID, clientSecret, redirectURL string) *Provider {
	return &Provider{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewState returns a fresh opaque state value for one redirect round
// trip. It is stored in a short-lived cookie and compared on callback.
func NewState() string { return uuid.NewString() }

// AuthURL builds the provider redirect URL for the given state.
func (p *Provider) AuthURL(state string) string {
	return p.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the callback code for a provider token.
func (p *Provider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return p.oauth.Exchange(ctx, code)
}

// FetchProfile loads the signed-in user's email, name and picture from
// the provider's userinfo endpoint.
func (p *Provider) FetchProfile(ctx context.Context, tok *oauth2.Token) (Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userinfoURL, nil)
	if err != nil {
		return Profile{}, err
	}
	tok.SetAuthHeader(req)
	resp, err := p.http.Do(req)
	if err != nil {
		return Profile{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Profile{}, fmt.Errorf("userinfo request failed: %s", resp.Status)
	}
	var prof Profile
	if err := json.NewDecoder(resp.Body).Decode(&prof); err != nil {
		return Profile{}, err
	}
	if prof.Email == "" {
		return Profile{}, fmt.Errorf("userinfo response carried no email")
	}
	return prof, nil
}
