// Package credstore owns the persisted credential record: the bearer
// token, its decoded expiry hint, and the cached user profile. It does
// storage and expiry arithmetic only; token validity is ultimately the
// server's call.
package credstore

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/zeebo/blake3"

	"github.com/sdtaxation/adminctl/internal/errors"
	"github.com/sdtaxation/adminctl/internal/log"
)

// Storage keys. Each key is a file under the store directory.
const (
	keyToken    = "auth_token"
	keyTokenExp = "auth_token_exp"
	keyProfile  = "user_data"
)

// Profile is the cached user record stored alongside the token so a
// session can be restored without a network round trip.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Store persists credentials under a single directory.
type Store struct {
	dir    string
	logger *log.Logger
	now    func() time.Time
}

// New creates a Store rooted at dir. The directory is created on first write.
func New(dir string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Store{
		dir:    dir,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock overrides the wall clock. Test hook.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// SetToken stores the raw token and best-effort derives its expiry from
// the JWT exp claim. A token that cannot be decoded is still stored; the
// failure is logged, not raised.
func (s *Store) SetToken(token string) error {
	if err := s.write(keyToken, []byte(token)); err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, "failed to persist token", err)
	}

	exp, ok := decodeExpiry(token)
	if !ok {
		s.logger.Warn("could not derive token expiry", "token_fp", Fingerprint(token))
		// Drop any expiry derived from a previous token.
		s.remove(keyTokenExp)
		return nil
	}
	if err := s.write(keyTokenExp, []byte(strconv.FormatInt(exp, 10))); err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, "failed to persist token expiry", err)
	}
	return nil
}

// Token returns the stored bearer token, or "" when none is stored.
func (s *Store) Token() string {
	data, err := os.ReadFile(filepath.Join(s.dir, keyToken))
	if err != nil {
		return ""
	}
	return string(data)
}

// SetProfile caches the user profile next to the token.
func (s *Store) SetProfile(p Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, "failed to encode profile", err)
	}
	if err := s.write(keyProfile, data); err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, "failed to persist profile", err)
	}
	return nil
}

// Profile returns the cached user profile, or nil when absent or unreadable.
func (s *Store) Profile() *Profile {
	data, err := os.ReadFile(filepath.Join(s.dir, keyProfile))
	if err != nil {
		return nil
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		s.logger.Warn("cached profile is corrupt", "error", err.Error())
		return nil
	}
	return &p
}

// ExpiresAt returns the known expiry as Unix seconds. The stored hint is
// preferred; otherwise the token is decoded on the fly. ok is false when
// no expiry is known.
func (s *Store) ExpiresAt() (int64, bool) {
	if data, err := os.ReadFile(filepath.Join(s.dir, keyTokenExp)); err == nil {
		if exp, err := strconv.ParseInt(string(data), 10, 64); err == nil {
			return exp, true
		}
	}
	token := s.Token()
	if token == "" {
		return 0, false
	}
	exp, ok := decodeExpiry(token)
	return exp, ok
}

// IsExpired reports whether the stored token should be treated as expired.
// No token means expired. An undecodable token is treated as expired
// (fail-closed); a decodable token without an exp claim is treated as
// valid (fail-open — the server is the final arbiter).
func (s *Store) IsExpired() bool {
	token := s.Token()
	if token == "" {
		return true
	}

	if data, err := os.ReadFile(filepath.Join(s.dir, keyTokenExp)); err == nil {
		if exp, err := strconv.ParseInt(string(data), 10, 64); err == nil {
			return s.now().Unix() >= exp
		}
	}

	if _, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{}); err != nil {
		return true
	}
	exp, ok := decodeExpiry(token)
	if !ok {
		return false
	}
	return s.now().Unix() >= exp
}

// ClearAll removes the token, the expiry hint, and the cached profile together.
func (s *Store) ClearAll() error {
	var firstErr error
	for _, key := range []string{keyToken, keyTokenExp, keyProfile} {
		if err := s.remove(key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return errors.Wrap(errors.ErrCodeStoreClear, "failed to clear credentials", firstErr)
	}
	return nil
}

func (s *Store) write(key string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, key), data, 0o600)
}

func (s *Store) remove(key string) error {
	err := os.Remove(filepath.Join(s.dir, key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// decodeExpiry reads the exp claim from a JWT-shaped token without
// verifying its signature. ok is false when the token cannot be decoded
// or carries no exp claim.
func decodeExpiry(token string) (int64, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return 0, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0, false
	}
	return exp.Unix(), true
}

// Fingerprint returns a short BLAKE3 digest of the token, safe to log.
func Fingerprint(token string) string {
	if token == "" {
		return ""
	}
	sum := blake3.Sum256([]byte(token))
	return hex.EncodeToString(sum[:6])
}
