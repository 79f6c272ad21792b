package build

// SlotKind tags which enhancement a slot holds
type SlotKind string

const (
	SlotKindGeneric SlotKind = "io-generic"
	SlotKindOrigin  SlotKind = "origin"
	SlotKindSet     SlotKind = "io-set"
	SlotKindSpecial SlotKind = "hamidon"
)

// OriginTier is the grade of an origin enhancement
type OriginTier int

const (
	TierTrainingOrigin OriginTier = iota
	TierDualOrigin
	TierSingleOrigin
)

func (t OriginTier) String() string {
	switch t {
	case TierTrainingOrigin:
		return "Training Origin"
	case TierDualOrigin:
		return "Dual Origin"
	case TierSingleOrigin:
		return "Single Origin"
	default:
		return "Unknown"
	}
}

// Slot is one enhancement held by a power. A nil *Slot is an empty slot.
// Only the fields matching Kind are meaningful.
type Slot struct {
	Kind SlotKind `json:"type"`

	// generic and origin items
	Aspect string `json:"aspect,omitempty"`
	Level  int    `json:"level,omitempty"`

	Tier  OriginTier `json:"tier,omitempty"`
	Value float64    `json:"value,omitempty"`

	SetID    string `json:"setId,omitempty"`
	PieceNum int    `json:"pieceNum,omitempty"`

	SpecialType string   `json:"hamiType,omitempty"`
	Aspects     []string `json:"aspects,omitempty"`
}

// GenericSlot creates a common invention enhancement
func GenericSlot(aspect string, level int) *Slot {
	return &Slot{Kind: SlotKindGeneric, Aspect: aspect, Level: level}
}

// OriginSlot creates a training, dual or single origin enhancement
func OriginSlot(tier OriginTier, aspect string, value float64) *Slot {
	return &Slot{Kind: SlotKindOrigin, Tier: tier, Aspect: aspect, Value: value}
}

// SetSlot creates a piece of an item set
func SetSlot(setID string, pieceNum int) *Slot {
	return &Slot{Kind: SlotKindSet, SetID: setID, PieceNum: pieceNum}
}

// SpecialSlot creates a special enhancement with several aspects
func SpecialSlot(specialType string, aspects ...string) *Slot {
	return &Slot{Kind: SlotKindSpecial, SpecialType: specialType, Aspects: aspects}
}

// IsSetItem reports whether the slot holds an item-set piece
func (s *Slot) IsSetItem() bool {
	return s != nil && s.Kind == SlotKindSet && s.SetID != ""
}
