package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/api"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/models"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/repositories"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/store"
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/pkg/utils"
)

// LoginResult is the discriminated outcome of a login attempt. Error carries
// a user-facing localized message; the service never panics and never
// returns a Go error to the caller.
type LoginResult struct {
	Success bool
	Data    *models.User
	Error   string
}

// --- AuthService Interface ---

// AuthService establishes and tears down the session: login, token recovery
// at app start, logout.
type AuthService interface {
	Login(ctx context.Context, userName, password string) LoginResult
	// RestoreSession rebuilds the session from the persistent store. It is
	// store-only: no network validation happens on this path. It never
	// fails outward; anything unusable degrades to unauthenticated.
	RestoreSession(ctx context.Context) (Session, bool)
	// Logout notifies the backend best-effort, then unconditionally clears
	// the store and the in-memory session.
	Logout(ctx context.Context)
}

// --- authService Implementation ---

type authService struct {
	authRepo repositories.AuthRepository
	userRepo repositories.UserRepository
	store    store.SessionStore
	sessions *SessionCell
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(authRepo repositories.AuthRepository, userRepo repositories.UserRepository, st store.SessionStore, sessions *SessionCell) AuthService {
	return &authService{
		authRepo: authRepo,
		userRepo: userRepo,
		store:    st,
		sessions: sessions,
	}
}

// --- Login response shapes ---

// The login endpoint has answered in three shapes over the backend's history:
// a bare JWT string, a legacy user object with no token at all, and the
// current {token, user} object. All three must keep working.

type loginShape int

const (
	shapeUnknown loginShape = iota
	shapeBareToken
	shapeLegacyProfile
	shapeTokenAndUser
)

type loginPayload struct {
	shape loginShape
	token string
	user  *models.User
}

// classifyLoginPayload dispatches the raw login response to its shape. It
// replaces runtime duck-typing with one exhaustive decision point.
func classifyLoginPayload(raw json.RawMessage) (loginPayload, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return loginPayload{}, fmt.Errorf("empty login response")
	}

	// A JSON string, or an unquoted token from the oldest backend builds.
	if raw[0] == '"' {
		var token string
		if err := json.Unmarshal(raw, &token); err != nil {
			return loginPayload{}, fmt.Errorf("decoding token string: %w", err)
		}
		return loginPayload{shape: shapeBareToken, token: token}, nil
	}
	if raw[0] != '{' && raw[0] != '[' {
		token := strings.TrimSpace(string(raw))
		return loginPayload{shape: shapeBareToken, token: token}, nil
	}

	var envelope struct {
		Token string       `json:"token"`
		User  *models.User `json:"user"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return loginPayload{}, fmt.Errorf("decoding login response: %w", err)
	}
	if envelope.Token != "" && envelope.User != nil {
		return loginPayload{shape: shapeTokenAndUser, token: envelope.Token, user: envelope.User}, nil
	}
	if envelope.Token != "" {
		return loginPayload{shape: shapeBareToken, token: envelope.Token}, nil
	}

	// Legacy: the object IS the user profile.
	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return loginPayload{}, fmt.Errorf("decoding legacy profile: %w", err)
	}
	if user.UserID == "" {
		return loginPayload{}, fmt.Errorf("login response matches no known shape")
	}
	return loginPayload{shape: shapeLegacyProfile, user: &user}, nil
}

// Login authenticates against the backend and installs the session. All
// failures, transport included, come back as a LoginResult with a localized
// message.
func (s *authService) Login(ctx context.Context, userName, password string) LoginResult {
	raw, err := s.authRepo.Login(ctx, userName, password)
	if err != nil {
		utils.LogError(err, "Login: request failed")
		return LoginResult{Error: api.AsError(err).LocalizedMessage()}
	}

	payload, err := classifyLoginPayload(raw)
	if err != nil {
		utils.LogError(err, "Login: unrecognized response shape")
		return LoginResult{Error: api.GenericFailureMessage}
	}

	switch payload.shape {
	case shapeBareToken:
		return s.loginWithBareToken(ctx, payload.token)
	case shapeLegacyProfile:
		return s.loginWithLegacyProfile(ctx, payload.user)
	default:
		return s.finishLogin(ctx, payload.token, payload.user, nil)
	}
}

// loginWithBareToken handles the token-only shape: decode claims, fetch the
// full profile, merge. A failed profile fetch degrades to a partial record
// built from the claims alone; the session still counts as authenticated.
func (s *authService) loginWithBareToken(ctx context.Context, token string) LoginResult {
	claims, err := utils.DecodeClaims(token)
	if err != nil {
		// Without claims there is no user id and no role, and a session
		// must be all-or-nothing. This is the one bare-token failure that
		// cannot degrade.
		utils.LogError(err, "Login: token claims undecodable")
		return LoginResult{Error: api.GenericFailureMessage}
	}

	user := s.fetchProfileWithFallback(ctx, claims)
	return s.finishLogin(ctx, token, user, claims)
}

// fetchProfileWithFallback loads the full profile for the claims' user,
// falling back to a claims-only partial record on any failure.
func (s *authService) fetchProfileWithFallback(ctx context.Context, claims *models.TokenClaims) *models.User {
	profile, err := s.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil || profile == nil {
		utils.LogWarn("Login: profile fetch failed, using claims-derived profile", map[string]interface{}{
			"user_id": claims.UserID,
		})
		return userFromClaims(claims)
	}

	// Profile wins for display fields; the JWT role only applies when the
	// profile carries no role information of its own.
	if profile.UserID == "" {
		profile.UserID = claims.UserID
	}
	if profile.UserName == "" {
		profile.UserName = claims.Username
	}
	if profile.Role == "" && profile.RoleID == "" {
		profile.Role = models.RoleFromName(claims.Role)
	}
	return profile
}

// userFromClaims builds the degraded partial profile: username doubles as the
// display name, contact fields stay empty.
func userFromClaims(claims *models.TokenClaims) *models.User {
	return &models.User{
		UserID:   claims.UserID,
		UserName: claims.Username,
		FullName: claims.Username,
		Role:     models.RoleFromName(claims.Role),
	}
}

// loginWithLegacyProfile handles the tokenless legacy shape by synthesizing
// an opaque local token so downstream session handling stays uniform.
func (s *authService) loginWithLegacyProfile(ctx context.Context, user *models.User) LoginResult {
	token := fmt.Sprintf("local-%s-%s", user.UserID, uuid.NewString())
	return s.finishLogin(ctx, token, user, nil)
}

// finishLogin resolves the role, persists session state and installs the
// in-memory session. Storage failures are logged, not surfaced: the session
// still works for this run, it just will not survive a restart.
func (s *authService) finishLogin(ctx context.Context, token string, user *models.User, claims *models.TokenClaims) LoginResult {
	role := user.EffectiveRole()
	user.Role = role
	user.Position = role.Position()

	if err := s.store.SetToken(ctx, token); err != nil {
		utils.LogError(err, "Login: persisting token failed")
	}
	if err := s.store.SetUserData(ctx, user); err != nil {
		utils.LogError(err, "Login: persisting user data failed")
	}

	sess := Session{
		Token:     token,
		UserID:    user.UserID,
		Username:  user.UserName,
		FullName:  user.FullName,
		Role:      role,
		Position:  user.Position,
		User:      user,
		RawClaims: claims,
	}
	if err := s.sessions.Set(sess); err != nil {
		utils.LogError(err, "Login: session rejected")
		return LoginResult{Error: api.GenericFailureMessage}
	}

	utils.LogInfo("Login succeeded", map[string]interface{}{
		"user_id": user.UserID,
		"role":    string(role),
	})
	return LoginResult{Success: true, Data: user}
}

func (s *authService) RestoreSession(ctx context.Context) (Session, bool) {
	token, err := s.store.GetToken(ctx)
	if err != nil {
		utils.LogError(err, "RestoreSession: reading token failed")
	}
	user, err := s.store.GetUserData(ctx)
	if err != nil {
		utils.LogError(err, "RestoreSession: reading user data failed")
	}

	if token == "" || user == nil || user.UserID == "" {
		// A half-present session is worse than none; drop whatever is there.
		if token != "" || user != nil {
			utils.LogWarn("RestoreSession: partial session state found, clearing")
			if err := s.store.Clear(ctx); err != nil {
				utils.LogError(err, "RestoreSession: clearing partial state failed")
			}
		}
		s.sessions.Clear()
		return Session{}, false
	}

	role := user.EffectiveRole()
	sess := Session{
		Token:    token,
		UserID:   user.UserID,
		Username: user.UserName,
		FullName: user.FullName,
		Role:     role,
		Position: role.Position(),
		User:     user,
	}
	if err := s.sessions.Set(sess); err != nil {
		utils.LogError(err, "RestoreSession: session rejected")
		return Session{}, false
	}
	utils.LogInfo("Session restored", map[string]interface{}{"user_id": user.UserID})
	return sess, true
}

func (s *authService) Logout(ctx context.Context) {
	if err := s.authRepo.Logout(ctx); err != nil {
		// Best-effort only; local teardown proceeds regardless.
		utils.LogWarn("Logout: server notification failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if err := s.store.Clear(ctx); err != nil {
		utils.LogError(err, "Logout: clearing session store failed")
	}
	s.sessions.Clear()
	utils.LogInfo("Logged out")
}
