package models

import "time"

// AffiliateTool is an affiliate-product catalog item.
type AffiliateTool struct {
	ID          string  `json:"id"          bson:"id"`
	Name        string  `json:"name"        bson:"name"`
	Category    string  `json:"category"    bson:"category"`
	Description string  `json:"description" bson:"description"`
	Price       float64 `json:"price"       bson:"price"`
	Rating      float64 `json:"rating"      bson:"rating"`
	Image       string  `json:"image"       bson:"image"`
	Link        string  `json:"link"        bson:"link"`
}

// Video is a video catalog item.
type Video struct {
	ID        string    `json:"id"        bson:"id"`
	Title     string    `json:"title"     bson:"title"`
	Category  string    `json:"category"  bson:"category"`
	Thumbnail string    `json:"thumbnail" bson:"thumbnail"`
	URL       string    `json:"url"       bson:"url"`
	Duration  string    `json:"duration"  bson:"duration"`
	Views     int       `json:"views"     bson:"views"`
	Date      time.Time `json:"date"      bson:"date"`
}
