package shared

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
)

func NewID(prefix string) string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	return prefix + hex.EncodeToString(b)
}

// IDFromSeed formats a deterministic ID from two random words.
func IDFromSeed(prefix string, hi, lo uint64) string {
	b := make([]byte, 16)
	binary.BigEndian.PutUint64(b[:8], hi)
	binary.BigEndian.PutUint64(b[8:], lo)
	return prefix + hex.EncodeToString(b)
}

type ModelCategory string

const (
	ModelCategoryProductivity  ModelCategory = "productivity"
	ModelCategoryEducation     ModelCategory = "education"
	ModelCategoryCreative      ModelCategory = "creative"
	ModelCategoryDeveloper     ModelCategory = "developer"
	ModelCategoryAssistant     ModelCategory = "assistant"
	ModelCategoryResearch      ModelCategory = "research"
	ModelCategoryEntertainment ModelCategory = "entertainment"
	ModelCategoryHealth        ModelCategory = "health"
	ModelCategoryFinance       ModelCategory = "finance"
)

func (c ModelCategory) String() string {
	return string(c)
}
