package db_models

import (
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// Place is a verified real-world entity used by the rule-based planner and
// the grounding pass. Destination is the normalized (lowercased) city key.
// Kind is "attraction" or "restaurant".
type Place struct {
	BaseModel
	Name        string
	Destination string `gorm:"index"`
	Address     string
	Kind        string `gorm:"index"`
	PriceTier   string
	AvgCost     float64
	Tags        pq.StringArray  `gorm:"type:text[]"`
	Embedding   pgvector.Vector `gorm:"type:vector(1536)"`
}
