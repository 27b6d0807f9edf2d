package models

type City struct {
	ID            string `bson:"_id" json:"id"`
	Name          string `bson:"name" json:"name"`
	Description   string `bson:"description" json:"description"`
	PropertyCount int    `bson:"propertyCount" json:"propertyCount"`
	Featured      bool   `bson:"featured" json:"featured"`
}
