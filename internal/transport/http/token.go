package http

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/connect4/server/internal/bot"
	"github.com/connect4/server/internal/game"
)

// PlayState is the full transport state carried in the URL: the core
// game state plus the presentation extras the page needs (which piece
// just landed, which difficulty is selected). The server holds nothing
// between requests; this value is everything.
type PlayState struct {
	Game                 game.State     `json:"game"`
	NewestPieceColumn    *int           `json:"newest_piece_column,omitempty"`
	NewestComputerColumn *int           `json:"newest_computer_piece_column,omitempty"`
	Difficulty           bot.Difficulty `json:"difficulty"`
}

type stateClaims struct {
	Play PlayState `json:"play"`
	jwt.RegisteredClaims
}

// StateCodec serializes PlayState to a compact, URL-safe, signed token.
// The token is a JWT: base64url-encoded JSON with an HMAC, so the
// client can carry the state but cannot forge one. Tokens do not expire
// since a game link may live in a bookmark indefinitely.
type StateCodec struct {
	secret []byte
}

func NewStateCodec(secret string) *StateCodec {
	return &StateCodec{secret: []byte(secret)}
}

func (c *StateCodec) Encode(play PlayState) (string, error) {
	claims := &stateClaims{
		Play: play,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

func (c *StateCodec) Decode(tokenString string) (PlayState, error) {
	token, err := jwt.ParseWithClaims(tokenString, &stateClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return c.secret, nil
	})
	if err != nil {
		return PlayState{}, err
	}

	claims, ok := token.Claims.(*stateClaims)
	if !ok || !token.Valid {
		return PlayState{}, errors.New("invalid state token")
	}
	return claims.Play, nil
}
