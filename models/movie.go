package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Movie struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title      string             `bson:"title" json:"title"`
	Year       int                `bson:"year" json:"year"`
	PosterURL  string             `bson:"poster_url" json:"poster_url"`
	Plot       string             `bson:"plot" json:"plot"`
	Director   string             `bson:"director" json:"director"`
	Genre      string             `bson:"genre" json:"genre"`
	Actors     string             `bson:"actors" json:"actors"`
	IMDBRating string             `bson:"imdb_rating" json:"imdb_rating"`
	IMDBID     string             `bson:"imdb_id" json:"imdb_id"`

	// GlobalElo is the cross-session baseline a session with global Elo
	// handling propagates its deltas into.
	GlobalElo float64 `bson:"global_elo" json:"global_elo"`
	// Popularity is an open-ended audience-volume figure (vote count
	// scaled down), one of the merged ranking signals.
	Popularity float64 `bson:"popularity" json:"popularity"`
}
