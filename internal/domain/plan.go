package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Plan is a saved nutrition plan: the body metrics a visitor submitted
// together with the report generated for them. Fields other than ID are
// never mutated after insertion; there is no update path.
type Plan struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Age       string             `bson:"age" json:"age"`
	Weight    string             `bson:"weight" json:"weight"`
	Height    string             `bson:"height" json:"height"`
	Gender    string             `bson:"gender" json:"gender"`
	Activity  string             `bson:"activity" json:"activity"`
	Goal      string             `bson:"goal" json:"goal"`
	AIReport  string             `bson:"aiReport" json:"aiReport"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
