package http

import (
	"strings"
	"testing"

	"github.com/connect4/server/internal/bot"
	"github.com/connect4/server/internal/game"
)

func TestStateCodecRoundTrip(t *testing.T) {
	e := game.Default()
	codec := NewStateCodec("test-secret")

	state := e.ApplyMove(e.InitialState(), 3)
	col := 3
	play := PlayState{
		Game:              state,
		NewestPieceColumn: &col,
		Difficulty:        bot.DifficultyModerate,
	}

	token, err := codec.Encode(play)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !decoded.Game.Equal(play.Game) {
		t.Fatalf("game state did not survive the round trip")
	}
	if decoded.Difficulty != bot.DifficultyModerate {
		t.Fatalf("expected difficulty %s, got %s", bot.DifficultyModerate, decoded.Difficulty)
	}
	if decoded.NewestPieceColumn == nil || *decoded.NewestPieceColumn != 3 {
		t.Fatalf("newest piece column did not survive the round trip")
	}
}

func TestStateCodecRejectsTamperedToken(t *testing.T) {
	e := game.Default()
	codec := NewStateCodec("test-secret")

	token, err := codec.Encode(PlayState{Game: e.InitialState(), Difficulty: bot.DifficultyStrong})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	// Flip a character in the payload segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected a three-segment token, got %d segments", len(parts))
	}
	payload := []byte(parts[1])
	if payload[10] == 'A' {
		payload[10] = 'B'
	} else {
		payload[10] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := codec.Decode(tampered); err == nil {
		t.Fatalf("expected tampered token to be rejected")
	}
}

func TestStateCodecRejectsWrongSecret(t *testing.T) {
	e := game.Default()
	token, err := NewStateCodec("secret-a").Encode(PlayState{Game: e.InitialState(), Difficulty: bot.DifficultyStrong})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if _, err := NewStateCodec("secret-b").Decode(token); err == nil {
		t.Fatalf("expected token signed with a different secret to be rejected")
	}
}

func TestStateCodecRejectsGarbage(t *testing.T) {
	codec := NewStateCodec("test-secret")
	for _, input := range []string{"", "garbage", "a.b.c"} {
		if _, err := codec.Decode(input); err == nil {
			t.Fatalf("expected %q to be rejected", input)
		}
	}
}
