package domain

import (
	"fmt"
	"math"
)

// RashiKey identifies one of the twelve Vedic moon signs.
type RashiKey string

// The closed set of rashi keys, in zodiac order.
const (
	Mesha      RashiKey = "MESHA"
	Vrishabha  RashiKey = "VRISHABHA"
	Mithuna    RashiKey = "MITHUNA"
	Karka      RashiKey = "KARKA"
	Simha      RashiKey = "SIMHA"
	Kanya      RashiKey = "KANYA"
	Tula       RashiKey = "TULA"
	Vrishchika RashiKey = "VRISHCHIKA"
	Dhanu      RashiKey = "DHANU"
	Makara     RashiKey = "MAKARA"
	Kumbha     RashiKey = "KUMBHA"
	Meena      RashiKey = "MEENA"
)

// signOrder indexes rashi keys by moon sign number minus one.
var signOrder = [12]RashiKey{
	Mesha, Vrishabha, Mithuna, Karka, Simha, Kanya,
	Tula, Vrishchika, Dhanu, Makara, Kumbha, Meena,
}

// RashiKeys returns all rashi keys in zodiac order.
func RashiKeys() []RashiKey {
	keys := make([]RashiKey, len(signOrder))
	copy(keys, signOrder[:])

	return keys
}

// Valid reports whether k belongs to the closed set.
func (k RashiKey) Valid() bool {
	return k.SignNumber() > 0
}

// SignNumber returns the 1-12 moon sign index of k, or 0 when k is unknown.
func (k RashiKey) SignNumber() int {
	for i, key := range signOrder {
		if key == k {
			return i + 1
		}
	}

	return 0
}

// String implements fmt.Stringer.
func (k RashiKey) String() string {
	return string(k)
}

// RashiKeyForSign maps a moon sign index to its rashi key.
// The index must be an integer in [1,12]; anything else is ErrUnknownSign.
func RashiKeyForSign(sign float64) (RashiKey, error) {
	if math.IsNaN(sign) || math.IsInf(sign, 0) || sign != math.Trunc(sign) || sign < 1 || sign > 12 {
		return "", fmt.Errorf("%w: %v", ErrUnknownSign, sign)
	}

	return signOrder[int(sign)-1], nil
}

// Element is the classical element associated with a rashi.
type Element string

// Elements.
const (
	ElementFire  Element = "Fire"
	ElementEarth Element = "Earth"
	ElementAir   Element = "Air"
	ElementWater Element = "Water"
)

// Rashi is an immutable catalog entry for one moon sign.
type Rashi struct {
	Key          RashiKey
	Label        string // catalog transliteration, e.g. "Kark"
	Vedic        string // name reported with computed results, e.g. "Karka"
	NativeLabel  string // Devanagari
	EnglishName  string
	Symbol       string
	Element      Element
	RulingPlanet string
	Color        string
	Image        string
}

// SignNumber returns the 1-12 zodiac index of the rashi.
func (r Rashi) SignNumber() int {
	return r.Key.SignNumber()
}

// DisplayLabel is the catalog label followed by the English name.
func (r Rashi) DisplayLabel() string {
	return r.Label + " (" + r.EnglishName + ")"
}

// ComputedLabel is the Vedic name followed by the English name.
func (r Rashi) ComputedLabel() string {
	return r.Vedic + " (" + r.EnglishName + ")"
}

// Tree is a native tree species recommended for planting.
// IsPrimary is only meaningful inside a resolution result.
type Tree struct {
	ID             string
	Name           string
	ScientificName string
	Description    string
	CareTips       string
	IdealRegion    string
	Image          string
	IsPrimary      bool
}

// RashiTreeMapping links a rashi to its recommended trees.
type RashiTreeMapping struct {
	Rashi      RashiKey
	Primary    string
	Alternates []string
	Graha      string
}

// TreeIDs returns the primary id followed by the alternates.
func (m RashiTreeMapping) TreeIDs() []string {
	ids := make([]string, 0, len(m.Alternates)+1)
	ids = append(ids, m.Primary)

	return append(ids, m.Alternates...)
}
