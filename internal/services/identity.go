package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/yungbote/bacprep-backend/internal/data/repos"
	types "github.com/yungbote/bacprep-backend/internal/domain"
	"github.com/yungbote/bacprep-backend/internal/platform/apierr"
	"github.com/yungbote/bacprep-backend/internal/platform/logger"
)

// IdentityConfig describes the bearer tokens minted by the identity provider
// (HS256, subject = identity uuid).
type IdentityConfig struct {
	Secret   string
	Audience string
	Issuer   string
}

type IdentityClaims struct {
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type IdentityService interface {
	// VerifyToken checks the signature and expiry and returns the identity id.
	// It never touches the database.
	VerifyToken(token string) (uuid.UUID, error)
	// ResolveStudent maps a verified identity to its Student profile.
	ResolveStudent(ctx context.Context, userID uuid.UUID) (*types.Student, error)
	Resolve(ctx context.Context, token string) (*types.Student, error)
	// IssueToken mints a token the way the identity provider would. Used by
	// the development CLI and tests.
	IssueToken(userID uuid.UUID, ttl time.Duration) (string, error)
}

type identityService struct {
	log         *logger.Logger
	studentRepo repos.StudentRepo
	cfg         IdentityConfig
	parser      *jwt.Parser
}

func NewIdentityService(log *logger.Logger, studentRepo repos.StudentRepo, cfg IdentityConfig) (IdentityService, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(30 * time.Second),
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	return &identityService{
		log:         log.With("service", "IdentityService"),
		studentRepo: studentRepo,
		cfg:         cfg,
		parser:      jwt.NewParser(opts...),
	}, nil
}

func (s *identityService) VerifyToken(token string) (uuid.UUID, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return uuid.Nil, apierr.Unauthenticated("No authorization header")
	}
	claims := &IdentityClaims{}
	parsed, err := s.parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !parsed.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			s.log.Debug("expired bearer token")
		} else {
			s.log.Debug("rejected bearer token", "error", err)
		}
		return uuid.Nil, apierr.Unauthenticated("Invalid token")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, apierr.Unauthenticated("Invalid token")
	}
	return userID, nil
}

func (s *identityService) ResolveStudent(ctx context.Context, userID uuid.UUID) (*types.Student, error) {
	student, err := s.studentRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		s.log.Error("student lookup failed", "user_id", userID, "error", err)
		return nil, fmt.Errorf("student lookup: %w", err)
	}
	if student == nil {
		return nil, apierr.ProfileNotFound()
	}
	return student, nil
}

func (s *identityService) Resolve(ctx context.Context, token string) (*types.Student, error) {
	userID, err := s.VerifyToken(token)
	if err != nil {
		return nil, err
	}
	return s.ResolveStudent(ctx, userID)
}

func (s *identityService) IssueToken(userID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := IdentityClaims{
		Role: "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if s.cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{s.cfg.Audience}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}
