package authservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	playerservice "github.com/mulligan-crew/golftrip/app/modules/player/application"
	sharedtypes "github.com/mulligan-crew/golftrip/app/shared/types"
	"github.com/mulligan-crew/golftrip/config"
	"github.com/mulligan-crew/golftrip/internal/observability/attr"
	"github.com/mulligan-crew/golftrip/pkg/jwt"
)

var (
	// ErrExchangeFailed is returned when the provider rejects the code.
	ErrExchangeFailed = errors.New("authorization code exchange failed")

	// ErrNoIdentity is returned when the provider's userinfo carries no email.
	ErrNoIdentity = errors.New("identity provider returned no email")
)

// Session is an issued trip session: the resolved identity plus its token.
type Session struct {
	PlayerID    sharedtypes.PlayerID    `json:"player_id"`
	DisplayName sharedtypes.DisplayName `json:"display_name"`
	Token       string                  `json:"token"`
	ExpiresAt   time.Time               `json:"expires_at"`
}

// Service resolves a caller to an email-like identity and issues trip tokens.
type Service interface {
	AuthCodeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Session, error)
}

// AuthService implements Service on an OAuth2 identity provider.
type AuthService struct {
	oauth       *oauth2.Config
	userInfoURL string
	jwtService  jwt.Service
	tokenTTL    time.Duration
	players     playerservice.Service
	logger      *slog.Logger
	httpClient  *http.Client
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, jwtService jwt.Service, players playerservice.Service, logger *slog.Logger) *AuthService {
	return &AuthService{
		oauth: &oauth2.Config{
			ClientID:     cfg.OAuth.ClientID,
			ClientSecret: cfg.OAuth.ClientSecret,
			RedirectURL:  cfg.OAuth.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.OAuth.AuthURL,
				TokenURL: cfg.OAuth.TokenURL,
			},
		},
		userInfoURL: cfg.OAuth.UserInfoURL,
		jwtService:  jwtService,
		tokenTTL:    cfg.JWT.DefaultTTL,
		players:     players,
		logger:      logger,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

var _ Service = (*AuthService)(nil)

// AuthCodeURL builds the provider's consent URL for the given state.
func (s *AuthService) AuthCodeURL(state string) string {
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// userInfo is the subset of the provider's userinfo response the service
// reads. Email doubles as the player identity.
type userInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ExchangeCode swaps an authorization code for the caller's identity, upserts
// their profile, and issues a trip token.
func (s *AuthService) ExchangeCode(ctx context.Context, code string) (*Session, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		s.logger.WarnContext(ctx, "Authorization code exchange rejected", attr.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrExchangeFailed, err)
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		return nil, err
	}
	if info.Email == "" {
		return nil, ErrNoIdentity
	}

	playerID := sharedtypes.PlayerID(info.Email)
	if info.Name != "" {
		// Profile upkeep is best effort; the session is still issued on
		// failure.
		if err := s.players.UpsertProfile(ctx, playerID, sharedtypes.DisplayName(info.Name)); err != nil {
			s.logger.WarnContext(ctx, "Failed to upsert player profile",
				attr.PlayerID("player_id", playerID),
				attr.Error(err),
			)
		}
	}
	resolvedName := s.players.ResolveDisplayName(ctx, playerID)

	signed, err := s.jwtService.GenerateToken(string(playerID), string(resolvedName), jwt.RoleScorer, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.InfoContext(ctx, "Session issued",
		attr.PlayerID("player_id", playerID),
	)

	return &Session{
		PlayerID:    playerID,
		DisplayName: resolvedName,
		Token:       signed,
		ExpiresAt:   time.Now().Add(s.tokenTTL),
	}, nil
}

func (s *AuthService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*userInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build userinfo request: %w", err)
	}
	token.SetAuthHeader(req)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("userinfo returned %d: %s", resp.StatusCode, body)
	}

	var info userInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo: %w", err)
	}
	return &info, nil
}
