package works

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseID_RoundTrip(t *testing.T) {
	want := primitive.NewObjectID()

	got, err := ParseID(want.Hex())
	if err != nil {
		t.Fatalf("parse canonical hex: %v", err)
	}
	if got != want {
		t.Fatalf("expected %s, got %s", want.Hex(), got.Hex())
	}
}

func TestParseID_RejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"not-a-valid-id",
		"123",
		// right length, wrong alphabet
		"zzzzzzzzzzzzzzzzzzzzzzzz",
		// hex, wrong length
		"64b0f0c2e4b0a1d2c3e4f5",
		"64b0f0c2e4b0a1d2c3e4f5a6b7",
		"64b0f0c2-e4b0-a1d2-c3e4-f5a6",
		"ObjectId(64b0f0c2e4b0a1d2c3e4f5a6)",
	}

	for _, s := range cases {
		if _, err := ParseID(s); !errors.Is(err, ErrMalformedID) {
			t.Errorf("ParseID(%q): expected ErrMalformedID, got %v", s, err)
		}
	}
}
