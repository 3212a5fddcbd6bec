package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtgo "github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"pokertable-server/internal/config"
	"pokertable-server/pkg/token"
)

// Issuer issues the JWT
const Issuer = "pokertable-server"

// Audience is the intended JWT audience
const Audience = "pokertable-seat"

// secretLength is the length of a generated secret
const secretLength = 43

// ErrMissingSecret is returned when tokens are used before a secret is configured
var ErrMissingSecret = errors.New("jwt secret is not configured")

var secret []byte
var ttl time.Duration

// SeatClaims identifies a seat at a table
type SeatClaims struct {
	jwtgo.StandardClaims
	TableUUID string `json:"tableUuid"`
}

// LoadSecret will load the signing secret from the configuration.
// If no secret is configured, a random one is generated and tokens will not
// survive a restart.
func LoadSecret() {
	cfg := config.Instance().JWT
	if cfg.Secret == "" {
		logrus.Warn("no jwt secret configured, generating a random one")
		generated, err := token.Generate(secretLength)
		if err != nil {
			logrus.WithError(err).Fatal("could not generate jwt secret")
		}

		cfg.Secret = generated
	}

	SetSecret(cfg.Secret, cfg.TTL)
}

// SetSecret sets the signing secret and token lifetime
// A zero ttl means tokens do not expire
func SetSecret(s string, d time.Duration) {
	secret = []byte(s)
	ttl = d
}

// Sign will sign a JWT for the player's seat at the table
func Sign(tableUUID, playerID string) (string, error) {
	if len(secret) == 0 {
		return "", ErrMissingSecret
	}

	now := time.Now()
	claims := SeatClaims{
		StandardClaims: jwtgo.StandardClaims{
			Audience: Audience,
			Id:       uuid.New().String(),
			IssuedAt: now.Unix(),
			Issuer:   Issuer,
			Subject:  playerID,
		},
		TableUUID: tableUUID,
	}

	if ttl > 0 {
		claims.ExpiresAt = now.Add(ttl).Unix()
	}

	return jwtgo.NewWithClaims(jwtgo.SigningMethodHS256, claims).SignedString(secret)
}

// ValidSeat will validate a signed JWT and return the table and player it was issued for
func ValidSeat(signedString string) (tableUUID string, playerID string, err error) {
	if len(secret) == 0 {
		return "", "", ErrMissingSecret
	}

	token, err := jwtgo.ParseWithClaims(signedString, &SeatClaims{}, func(token *jwtgo.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwtgo.SigningMethodHMAC); !ok {
			return nil, errors.New("expected HS256 signing method")
		}

		return secret, nil
	})

	if err != nil {
		return "", "", err
	}

	if token.Valid {
		if claims, ok := token.Claims.(*SeatClaims); ok {
			if !claims.VerifyAudience(Audience, true) {
				return "", "", errors.New("invalid audience")
			}

			if claims.Issuer != Issuer {
				return "", "", errors.New("invalid issuer")
			}

			if claims.Subject == "" || claims.TableUUID == "" {
				return "", "", errors.New("missing seat")
			}

			return claims.TableUUID, claims.Subject, nil
		}

		return "", "", fmt.Errorf("expected SeatClaims, got %T", token.Claims)
	}

	logrus.Warn("token claims were not valid. did not expect to reach this code")
	return "", "", errors.New("claims were not valid")
}
