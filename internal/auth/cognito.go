package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	sharedauth "resume-assist/internal/shared/auth"
	"resume-assist/internal/shared/server/respond"
	"resume-assist/internal/shared/telemetry"
)

// CognitoService handles the AWS Cognito hosted-UI OIDC code flow.
type CognitoService struct {
	oauthConfig *oauth2.Config
	domain      string
	logoutURL   string
	uiRedirect  string
	stateTTL    time.Duration
	stateStore  *stateStore
}

// NewCognitoService builds a CognitoService. domain is the Cognito
// hosted-UI domain, e.g. https://myapp.auth.us-east-1.amazoncognito.com.
func NewCognitoService(clientID, clientSecret, domain, redirectURL, logoutURL, uiRedirect string) *CognitoService {
	domain = strings.TrimRight(strings.TrimSpace(domain), "/")
	return &CognitoService{
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  domain + "/oauth2/authorize",
				TokenURL: domain + "/oauth2/token",
			},
		},
		domain:     domain,
		logoutURL:  logoutURL,
		uiRedirect: uiRedirect,
		stateTTL:   5 * time.Minute,
		stateStore: newStateStore(),
	}
}

// RegisterRoutes attaches the auth routes.
func (s *CognitoService) RegisterRoutes(r gin.IRoutes) {
	r.GET("/auth/login", s.login)
	r.GET("/auth/callback", s.callback)
	r.GET("/auth/logout", s.logout)
}

func (s *CognitoService) login(c *gin.Context) {
	if s.oauthConfig.ClientID == "" || s.domain == "" || s.oauthConfig.RedirectURL == "" {
		respond.Error(c, http.StatusInternalServerError, "auth_not_configured", "Cognito auth not configured", nil)
		return
	}

	state := uuid.NewString()
	s.stateStore.put(state, time.Now().Add(s.stateTTL))

	c.Redirect(http.StatusFound, s.oauthConfig.AuthCodeURL(state))
}

func (s *CognitoService) callback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "missing state or code", nil)
		return
	}

	if !s.stateStore.consume(state) {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid or expired state", nil)
		return
	}

	ctx := c.Request.Context()
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "failed to exchange code", nil)
		return
	}

	userInfo, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		telemetry.Error("auth.callback.userinfo_failed", map[string]any{
			"err": err.Error(),
		})
		respond.Error(c, http.StatusBadGateway, "auth_failed", "failed to fetch user profile", nil)
		return
	}
	if userInfo.Sub == "" {
		respond.Error(c, http.StatusBadGateway, "auth_failed", "invalid user profile", nil)
		return
	}

	jwt, err := sharedauth.SignJWT(sharedauth.Claims{
		Sub:   "cognito:" + userInfo.Sub,
		Email: userInfo.Email,
		Name:  userInfo.name(),
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to issue token", nil)
		return
	}

	redirectURL, err := appendToken(s.uiRedirect, jwt)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to redirect", nil)
		return
	}

	telemetry.Info("auth.callback.ok", map[string]any{"email": userInfo.Email})
	c.Redirect(http.StatusFound, redirectURL)
}

// logout clears nothing server side (tokens are stateless); it sends the
// browser to the Cognito hosted-UI logout so the IdP session ends too.
func (s *CognitoService) logout(c *gin.Context) {
	if s.domain == "" {
		respond.Error(c, http.StatusInternalServerError, "auth_not_configured", "Cognito auth not configured", nil)
		return
	}
	c.Redirect(http.StatusFound, s.cognitoLogoutURL())
}

func (s *CognitoService) cognitoLogoutURL() string {
	q := url.Values{}
	q.Set("client_id", s.oauthConfig.ClientID)
	q.Set("logout_uri", s.logoutURL)
	return s.domain + "/logout?" + q.Encode()
}

type cognitoUserInfo struct {
	Sub      string `json:"sub"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

func (u cognitoUserInfo) name() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

func (s *CognitoService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (cognitoUserInfo, error) {
	client := s.oauthConfig.Client(ctx, token)
	resp, err := client.Get(s.domain + "/oauth2/userInfo")
	if err != nil {
		return cognitoUserInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return cognitoUserInfo{}, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var info cognitoUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return cognitoUserInfo{}, err
	}
	return info, nil
}

type stateStore struct {
	items map[string]time.Time
	mu    sync.Mutex
}

func newStateStore() *stateStore {
	return &stateStore{items: make(map[string]time.Time)}
}

func (s *stateStore) put(state string, exp time.Time) {
	s.mu.Lock()
	s.items[state] = exp
	s.mu.Unlock()
}

func (s *stateStore) consume(state string) bool {
	s.mu.Lock()
	exp, ok := s.items[state]
	if ok {
		delete(s.items, state)
	}
	s.mu.Unlock()
	if !ok {
		return false
	}
	return !time.Now().After(exp)
}

func appendToken(rawURL, token string) (string, error) {
	if rawURL == "" {
		return "", errors.New("redirect url required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
