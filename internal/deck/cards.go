package deck

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Size is the number of cards in a deck.
const Size = 5

var (
	ErrCardCount         = errors.New("deck must contain exactly 5 cards")
	ErrEmptyMessage      = errors.New("card message is empty")
	ErrUnsupportedFormat = errors.New("unsupported card file format")
)

// Variant names the visual style of a card.
type Variant string

const (
	VariantRose  Variant = "rose"
	VariantPeach Variant = "peach"
	VariantMauve Variant = "mauve"
	VariantSky   Variant = "sky"
	VariantGreen Variant = "green"
)

// Card is one fixed entry of the deck. Rotation is in degrees.
type Card struct {
	Message  string  `toml:"message" yaml:"message"`
	Style    Variant `toml:"style" yaml:"style"`
	Rotation float64 `toml:"rotation" yaml:"rotation"`
}

type cardFile struct {
	Cards []Card `toml:"cards" yaml:"cards"`
}

func DefaultCards() []Card {
	return []Card{
		{Message: "You make ordinary days feel like good ones.", Style: VariantRose, Rotation: -6},
		{Message: "Thank you for every small kindness you never mention.", Style: VariantPeach, Rotation: 4},
		{Message: "Your laugh is still my favourite sound.", Style: VariantMauve, Rotation: -3},
		{Message: "Whatever comes next, I'm glad it's with you.", Style: VariantSky, Rotation: 5},
		{Message: "Happy day. Now go see what's waiting for you.", Style: VariantGreen, Rotation: -2},
	}
}

// LoadCards reads a card file. The format is chosen by extension:
// .toml, or .yaml/.yml.
func LoadCards(path string) ([]Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cards: %w", err)
	}
	var f cardFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f); err != nil {
			return nil, fmt.Errorf("decode toml cards: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("decode yaml cards: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err := ValidateCards(f.Cards); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f.Cards, nil
}

func ValidateCards(cards []Card) error {
	if len(cards) != Size {
		return fmt.Errorf("%w: got %d", ErrCardCount, len(cards))
	}
	for i, c := range cards {
		if strings.TrimSpace(c.Message) == "" {
			return fmt.Errorf("card %d: %w", i+1, ErrEmptyMessage)
		}
	}
	return nil
}
