package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cockroachdb/errors"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

const DEFAULT_GRAPH_API_URL = "https://graph.instagram.com"

// Meta's published default app-level rate limit is generous; we stay well
// under it.
const GRAPH_API_RATE_LIMIT_PER_SECOND = 10

const PROFILE_CACHE_SIZE = 1024

type InstagramProfile struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type InstagramMedia struct {
	Id        string `json:"id"`
	Caption   string `json:"caption"`
	MediaType string `json:"media_type"`
	Permalink string `json:"permalink"`
}

type InstagramConversation struct {
	Id        string `json:"id"`
	UpdatedAt string `json:"updated_time"`
}

type InstagramTokenResponse struct {
	AccessToken string `json:"access_token"`
	UserId      string `json:"user_id"`
	ExpiresIn   int    `json:"expires_in"`
}

type graphApiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// InstagramRepository is the Graph API client. All calls are plain
// request/response with no retry; the limiter only smooths bursts.
type InstagramRepository struct {
	baseUrl      string
	client       *http.Client
	limiter      *rate.Limiter
	profileCache *lru.Cache[string, InstagramProfile]
}

func NewInstagramRepository(baseUrl string, client *http.Client) *InstagramRepository {
	if baseUrl == "" {
		baseUrl = DEFAULT_GRAPH_API_URL
	}
	if client == nil {
		client = http.DefaultClient
	}

	cache, _ := lru.New[string, InstagramProfile](PROFILE_CACHE_SIZE)

	return &InstagramRepository{
		baseUrl:      baseUrl,
		client:       client,
		limiter:      rate.NewLimiter(rate.Limit(GRAPH_API_RATE_LIMIT_PER_SECOND), GRAPH_API_RATE_LIMIT_PER_SECOND),
		profileCache: cache,
	}
}

func (repo *InstagramRepository) do(ctx context.Context, req *http.Request, out any) error {
	if err := repo.limiter.Wait(ctx); err != nil {
		return err
	}

	resp, err := repo.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "graph api request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr graphApiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			return errors.Newf("graph api error %d (%s): %s",
				apiErr.Error.Code, apiErr.Error.Type, apiErr.Error.Message)
		}
		return errors.Newf("graph api returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return errors.Wrap(json.NewDecoder(resp.Body).Decode(out), "can't decode graph api response")
}

// ExchangeCode trades an OAuth authorization code for a short-lived token.
func (repo *InstagramRepository) ExchangeCode(ctx context.Context,
	appId, appSecret, redirectUri, code string,
) (InstagramTokenResponse, error) {
	form := url.Values{
		"client_id":     {appId},
		"client_secret": {appSecret},
		"grant_type":    {"authorization_code"},
		"redirect_uri":  {redirectUri},
		"code":          {code},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		repo.baseUrl+"/oauth/access_token",
		bytes.NewBufferString(form.Encode()))
	if err != nil {
		return InstagramTokenResponse{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var token InstagramTokenResponse
	if err := repo.do(ctx, req, &token); err != nil {
		return InstagramTokenResponse{}, err
	}
	return token, nil
}

// ExchangeLongLivedToken trades a short-lived token for a 60-day one.
func (repo *InstagramRepository) ExchangeLongLivedToken(ctx context.Context,
	appSecret, shortLivedToken string,
) (InstagramTokenResponse, error) {
	query := url.Values{
		"grant_type":    {"ig_exchange_token"},
		"client_secret": {appSecret},
		"access_token":  {shortLivedToken},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		repo.baseUrl+"/access_token?"+query.Encode(), nil)
	if err != nil {
		return InstagramTokenResponse{}, err
	}

	var token InstagramTokenResponse
	if err := repo.do(ctx, req, &token); err != nil {
		return InstagramTokenResponse{}, err
	}
	return token, nil
}

func (repo *InstagramRepository) GetProfile(ctx context.Context, igUserId, accessToken string) (InstagramProfile, error) {
	if profile, ok := repo.profileCache.Get(igUserId); ok {
		return profile, nil
	}

	query := url.Values{
		"fields":       {"id,username,name"},
		"access_token": {accessToken},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/%s?%s", repo.baseUrl, igUserId, query.Encode()), nil)
	if err != nil {
		return InstagramProfile{}, err
	}

	var profile InstagramProfile
	if err := repo.do(ctx, req, &profile); err != nil {
		return InstagramProfile{}, err
	}

	repo.profileCache.Add(igUserId, profile)
	return profile, nil
}

func (repo *InstagramRepository) GetMedia(ctx context.Context, igUserId, accessToken string) ([]InstagramMedia, error) {
	query := url.Values{
		"fields":       {"id,caption,media_type,permalink"},
		"access_token": {accessToken},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/%s/media?%s", repo.baseUrl, igUserId, query.Encode()), nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Data []InstagramMedia `json:"data"`
	}
	if err := repo.do(ctx, req, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

func (repo *InstagramRepository) GetConversations(ctx context.Context, igUserId, accessToken string) ([]InstagramConversation, error) {
	query := url.Values{"access_token": {accessToken}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/%s/conversations?%s", repo.baseUrl, igUserId, query.Encode()), nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Data []InstagramConversation `json:"data"`
	}
	if err := repo.do(ctx, req, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

// SendMessage delivers a DM to recipientId on behalf of the connected
// account.
func (repo *InstagramRepository) SendMessage(ctx context.Context,
	igUserId, accessToken, recipientId, text string,
) error {
	body, err := json.Marshal(map[string]any{
		"recipient": map[string]string{"id": recipientId},
		"message":   map[string]string{"text": text},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/%s/messages?access_token=%s", repo.baseUrl, igUserId, url.QueryEscape(accessToken)),
		bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return repo.do(ctx, req, nil)
}

// ReplyToComment posts a public reply under the comment.
func (repo *InstagramRepository) ReplyToComment(ctx context.Context,
	accessToken, commentId, text string,
) error {
	form := url.Values{
		"message":      {text},
		"access_token": {accessToken},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/%s/replies", repo.baseUrl, commentId),
		bytes.NewBufferString(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return repo.do(ctx, req, nil)
}

// SubscribeWebhooks registers the app for messages and comments field
// notifications on the account.
func (repo *InstagramRepository) SubscribeWebhooks(ctx context.Context, igUserId, accessToken string) error {
	form := url.Values{
		"subscribed_fields": {"messages,comments"},
		"access_token":      {accessToken},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/%s/subscribed_apps", repo.baseUrl, igUserId),
		bytes.NewBufferString(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return repo.do(ctx, req, nil)
}
