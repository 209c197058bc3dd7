// Package auth obtains OAuth2-authenticated HTTP clients for Google APIs,
// caching tokens on disk between runs.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Client runs the OAuth2 installed-application flow and returns an HTTP
// client whose requests carry (and refresh) the resulting token.
//
// credentialsFile is the client_secret.json downloaded from the Google
// developer console. The token is cached at tokenFile; when no cached token
// exists the user is prompted to visit the consent URL and paste the
// authorization code.
func Client(ctx context.Context, credentialsFile, tokenFile string, scopes ...string) (*http.Client, error) {
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, errors.Wrapf(err, "reading client secret %q", credentialsFile)
	}
	config, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	token, err := tokenFromFile(tokenFile)
	if err != nil {
		token, err = tokenFromWeb(ctx, config)
		if err != nil {
			return nil, err
		}
		if err := saveToken(tokenFile, token); err != nil {
			return nil, err
		}
	}

	return config.Client(ctx, token), nil
}

func tokenFromWeb(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then paste the authorization code:\n%s\n", authURL)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, errors.Wrap(err, "reading authorization code")
	}

	token, err := config.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "exchanging authorization code")
	}
	return token, nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	var token oauth2.Token
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, errors.Wrapf(err, "decoding cached token %q", path)
	}
	return &token, nil
}

func saveToken(path string, token *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return errors.Wrapf(err, "caching token to %q", path)
	}
	defer f.Close()

	return errors.WithStack(json.NewEncoder(f).Encode(token))
}
