package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	authModel "autismcare_backend/internals/features/users/auth/model"
	authRepo "autismcare_backend/internals/features/users/auth/repository"
	userModel "autismcare_backend/internals/features/users/user/model"
	userRepo "autismcare_backend/internals/features/users/user/repository"
	helperAuth "autismcare_backend/internals/helpers/auth"
	"autismcare_backend/internals/softdelete"
)

var (
	ErrInvalidCredentials = errors.New("no active account found with the given credentials")
	ErrInvalidToken       = errors.New("token is invalid or expired")
	ErrTokenBlacklisted   = errors.New("token is blacklisted")
)

type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// Claims carried by both token types; token_type tells them apart.
type Claims struct {
	TokenType string `json:"token_type"`
	UserType  string `json:"user_type,omitempty"`
	Username  string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// ClientMeta is stored next to each refresh token.
type ClientMeta struct {
	UserAgent string
	IP        string
}

type TokenPair struct {
	Access  string
	Refresh string
}

type TokenService struct {
	Users     userRepo.UserRepository
	Refreshes authRepo.RefreshTokenRepository
	Blacklist helperAuth.Blacklist
	Cfg       TokenConfig
	Log       *zap.Logger

	// Now is swapped in tests.
	Now func() time.Time
}

var _ helperAuth.Verifier = (*TokenService)(nil)

func NewTokenService(
	users userRepo.UserRepository,
	refreshes authRepo.RefreshTokenRepository,
	blacklist helperAuth.Blacklist,
	cfg TokenConfig,
	log *zap.Logger,
) *TokenService {
	if log == nil {
		log = zap.NewNop()
	}
	return &TokenService{
		Users:     users,
		Refreshes: refreshes,
		Blacklist: blacklist,
		Cfg:       cfg,
		Log:       log,
		Now:       func() time.Time { return time.Now().UTC() },
	}
}

// ========================== LOGIN ==========================

// Login checks credentials (identifier may be an email or a username) and
// issues a fresh pair.
func (s *TokenService) Login(ctx context.Context, identifier, password string, meta ClientMeta) (*userModel.UserModel, TokenPair, error) {
	u, err := s.Users.FindByLogin(ctx, identifier)
	if errors.Is(err, softdelete.ErrNotFound) {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	if err != nil {
		return nil, TokenPair{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	if !u.CanLogin() {
		return nil, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.IssuePair(ctx, u, meta)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

// IssuePair signs an access and a refresh token and records the refresh jti.
func (s *TokenService) IssuePair(ctx context.Context, u *userModel.UserModel, meta ClientMeta) (TokenPair, error) {
	now := s.Now()

	access, _, err := s.sign(u, helperAuth.TokenTypeAccess, now, s.Cfg.AccessTTL, s.Cfg.AccessSecret)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rc, err := s.sign(u, helperAuth.TokenTypeRefresh, now, s.Cfg.RefreshTTL, s.Cfg.RefreshSecret)
	if err != nil {
		return TokenPair{}, err
	}

	if err := s.Refreshes.Create(ctx, &authModel.RefreshTokenModel{
		JTI:       rc.ID,
		UserID:    u.ID,
		ExpiresAt: rc.ExpiresAt.Time,
		UserAgent: strptr(meta.UserAgent),
		IP:        strptr(meta.IP),
	}); err != nil {
		return TokenPair{}, fmt.Errorf("store refresh token: %w", err)
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

// ========================== REFRESH ==========================

// Refresh returns a new access token for a known, live refresh token.
// The refresh token itself is not rotated.
func (s *TokenService) Refresh(ctx context.Context, rawRefresh string) (string, error) {
	rc, err := s.parse(rawRefresh, s.Cfg.RefreshSecret, helperAuth.TokenTypeRefresh)
	if err != nil {
		return "", err
	}
	if err := s.checkBlacklist(ctx, rc.ID); err != nil {
		return "", err
	}

	rt, err := s.Refreshes.FindByJTI(ctx, rc.ID)
	if errors.Is(err, softdelete.ErrNotFound) {
		return "", ErrInvalidToken
	}
	if err != nil {
		return "", err
	}
	now := s.Now()
	if !rt.Active(now) {
		return "", ErrInvalidToken
	}

	u, err := s.Users.Find(ctx, rt.UserID)
	if errors.Is(err, softdelete.ErrNotFound) {
		return "", ErrInvalidToken
	}
	if err != nil {
		return "", err
	}
	if !u.CanLogin() {
		return "", ErrInvalidToken
	}

	access, _, err := s.sign(u, helperAuth.TokenTypeAccess, now, s.Cfg.AccessTTL, s.Cfg.AccessSecret)
	return access, err
}

// ========================== LOGOUT ==========================

// Logout blacklists the refresh token and, when given, the access token the
// caller is still holding. An invalid access token is ignored.
func (s *TokenService) Logout(ctx context.Context, rawRefresh, rawAccess string) error {
	rc, err := s.parse(rawRefresh, s.Cfg.RefreshSecret, helperAuth.TokenTypeRefresh)
	if err != nil {
		return err
	}
	if err := s.checkBlacklist(ctx, rc.ID); err != nil {
		return err
	}

	if err := s.Blacklist.Add(ctx, rc.ID, helperAuth.TokenTypeRefresh, rc.ExpiresAt.Time); err != nil {
		return fmt.Errorf("blacklist refresh token: %w", err)
	}
	if err := s.Refreshes.Revoke(ctx, rc.ID, s.Now()); err != nil {
		s.Log.Warn("revoke refresh token failed", zap.String("jti", rc.ID), zap.Error(err))
	}

	if strings.TrimSpace(rawAccess) != "" {
		if ac, err := s.parse(rawAccess, s.Cfg.AccessSecret, helperAuth.TokenTypeAccess); err == nil {
			if err := s.Blacklist.Add(ctx, ac.ID, helperAuth.TokenTypeAccess, ac.ExpiresAt.Time); err != nil {
				return fmt.Errorf("blacklist access token: %w", err)
			}
		}
	}
	return nil
}

// ========================== VERIFY ==========================

// Verify implements helperAuth.Verifier for access tokens.
func (s *TokenService) Verify(ctx context.Context, rawToken string) (*helperAuth.Principal, error) {
	ac, err := s.parse(rawToken, s.Cfg.AccessSecret, helperAuth.TokenTypeAccess)
	if err != nil {
		return nil, err
	}
	if err := s.checkBlacklist(ctx, ac.ID); err != nil {
		return nil, err
	}
	userID, err := strconv.ParseUint(ac.Subject, 10, 64)
	if err != nil || userID == 0 {
		return nil, ErrInvalidToken
	}

	// the account may have been deleted or deactivated since the token was signed
	u, err := s.Users.Find(ctx, uint(userID))
	if errors.Is(err, softdelete.ErrNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	if !u.CanLogin() {
		return nil, ErrInvalidToken
	}

	return &helperAuth.Principal{
		UserID:    u.ID,
		Username:  u.Username,
		UserType:  u.UserType,
		TokenID:   ac.ID,
		ExpiresAt: ac.ExpiresAt.Time,
	}, nil
}

// PurgeExpired removes expired blacklist entries and refresh-token rows.
func (s *TokenService) PurgeExpired(ctx context.Context) (blacklisted, refreshes int64, err error) {
	blacklisted, err = s.Blacklist.PurgeExpired(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("purge blacklist: %w", err)
	}
	refreshes, err = s.Refreshes.PurgeExpired(ctx, s.Now())
	if err != nil {
		return blacklisted, 0, fmt.Errorf("purge refresh tokens: %w", err)
	}
	return blacklisted, refreshes, nil
}

/* ========================== internals ========================== */

func (s *TokenService) sign(u *userModel.UserModel, tokenType string, now time.Time, ttl time.Duration, secret string) (string, *Claims, error) {
	claims := &Claims{
		TokenType: tokenType,
		UserType:  u.UserType,
		Username:  u.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(u.ID), 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", nil, fmt.Errorf("sign %s token: %w", tokenType, err)
	}
	return signed, claims, nil
}

func (s *TokenService) parse(raw, secret, wantType string) (*Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrInvalidToken
	}
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != wantType || claims.ID == "" || claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *TokenService) checkBlacklist(ctx context.Context, jti string) error {
	listed, err := s.Blacklist.Contains(ctx, jti)
	if err != nil {
		return fmt.Errorf("check blacklist: %w", err)
	}
	if listed {
		return ErrTokenBlacklisted
	}
	return nil
}

func strptr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
