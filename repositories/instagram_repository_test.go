package repositories

import (
	"net/http"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
)

func TestGetProfileCachesLookups(t *testing.T) {
	defer gock.Off()

	gock.New("https://graph.test").
		Get("/ig-42").
		MatchParam("fields", "id,username,name").
		MatchParam("access_token", "token-1").
		Reply(http.StatusOK).
		JSON(InstagramProfile{Id: "ig-42", Username: "ada", Name: "Ada Lovelace"})

	repo := NewInstagramRepository("https://graph.test", nil)

	profile, err := repo.GetProfile(t.Context(), "ig-42", "token-1")
	assert.NoError(t, err)
	assert.Equal(t, "ada", profile.Username)

	// Second call must be served from the cache: no mock is registered
	// anymore, so a request would fail.
	cached, err := repo.GetProfile(t.Context(), "ig-42", "token-1")
	assert.NoError(t, err)
	assert.Equal(t, profile, cached)
	assert.True(t, gock.IsDone())
}

func TestSendMessagePostsToMessagesEdge(t *testing.T) {
	defer gock.Off()

	gock.New("https://graph.test").
		Post("/ig-42/messages").
		MatchParam("access_token", "token-1").
		JSON(map[string]any{
			"recipient": map[string]string{"id": "ig-99"},
			"message":   map[string]string{"text": "Hi Ada, our plans start at 499 INR."},
		}).
		Reply(http.StatusOK).
		JSON(map[string]string{"recipient_id": "ig-99", "message_id": "m-1"})

	repo := NewInstagramRepository("https://graph.test", nil)

	err := repo.SendMessage(t.Context(), "ig-42", "token-1", "ig-99", "Hi Ada, our plans start at 499 INR.")
	assert.NoError(t, err)
	assert.True(t, gock.IsDone())
}

func TestGraphApiErrorIsSurfaced(t *testing.T) {
	defer gock.Off()

	gock.New("https://graph.test").
		Post("/comment-7/replies").
		Reply(http.StatusBadRequest).
		JSON(map[string]any{
			"error": map[string]any{
				"message": "Invalid OAuth access token.",
				"type":    "OAuthException",
				"code":    190,
			},
		})

	repo := NewInstagramRepository("https://graph.test", nil)

	err := repo.ReplyToComment(t.Context(), "stale-token", "comment-7", "Thanks!")
	assert.ErrorContains(t, err, "graph api error 190 (OAuthException): Invalid OAuth access token.")
}

func TestExchangeCodeDecodesToken(t *testing.T) {
	defer gock.Off()

	gock.New("https://graph.test").
		Post("/oauth/access_token").
		BodyString("client_id=app-1&client_secret=secret&code=auth-code&grant_type=authorization_code&redirect_uri=https%3A%2F%2Fapp.replyflow.test%2Fcallback").
		Reply(http.StatusOK).
		JSON(InstagramTokenResponse{AccessToken: "short-lived", UserId: "ig-42", ExpiresIn: 3600})

	repo := NewInstagramRepository("https://graph.test", nil)

	token, err := repo.ExchangeCode(t.Context(), "app-1", "secret", "https://app.replyflow.test/callback", "auth-code")
	assert.NoError(t, err)
	assert.Equal(t, "short-lived", token.AccessToken)
	assert.Equal(t, "ig-42", token.UserId)
}
