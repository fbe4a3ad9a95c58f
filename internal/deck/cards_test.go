package deck

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCardsValid(t *testing.T) {
	cards := DefaultCards()
	require.NoError(t, ValidateCards(cards))
	require.Len(t, cards, Size)

	cards[0].Message = "mutated"
	if DefaultCards()[0].Message == "mutated" {
		t.Fatalf("DefaultCards returned shared backing storage")
	}
}

func TestLoadCardsTOMLAndYAMLAgree(t *testing.T) {
	fromTOML, err := LoadCards(filepath.Join("testdata", "cards.toml"))
	require.NoError(t, err)
	fromYAML, err := LoadCards(filepath.Join("testdata", "cards.yaml"))
	require.NoError(t, err)

	require.Equal(t, fromTOML, fromYAML)
	require.Equal(t, "Three", fromTOML[2].Message)
	require.Equal(t, VariantSky, fromTOML[3].Style)
	require.InDelta(t, -1.5, fromTOML[4].Rotation, 1e-9)
}

func TestLoadCardsRejectsWrongCount(t *testing.T) {
	_, err := LoadCards(filepath.Join("testdata", "short.yaml"))
	require.ErrorIs(t, err, ErrCardCount)
}

func TestLoadCardsRejectsBlankMessage(t *testing.T) {
	_, err := LoadCards(filepath.Join("testdata", "blank.toml"))
	require.ErrorIs(t, err, ErrEmptyMessage)
}

func TestLoadCardsUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))

	_, err := LoadCards(path)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadCardsMissingFile(t *testing.T) {
	_, err := LoadCards(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoadCardsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[cards]\nmessage = "), 0o600))

	_, err := LoadCards(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode toml cards")
}
