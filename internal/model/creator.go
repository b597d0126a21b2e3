package model

import (
	"time"
)

// Creator content_creators 集合的创作者档案，每次流水线运行各生成一条
type Creator struct {
	CreatorID     string    `bson:"creator_id" json:"creator_id"`
	Name          *string   `bson:"name" json:"name"`
	HandlePrimary string    `bson:"handle_primary" json:"handle_primary"`
	Categories    []string  `bson:"categories" json:"categories"`
	Bio           *string   `bson:"bio" json:"bio"`
	Country       string    `bson:"country" json:"country"`
	Tags          []string  `bson:"tags" json:"tags"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}
