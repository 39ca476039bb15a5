package data_access

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ollie-C/myvu-movies-sub000/models"
)

type UserRepository struct {
	db         *MongoDB
	collection *mongo.Collection
}

type MovieRepository struct {
	db *MongoDB
}

func NewUserRepository(db *MongoDB) *UserRepository {
	return &UserRepository{
		db:         db,
		collection: db.Collection("users"),
	}
}

func NewMovieRepository(db *MongoDB) *MovieRepository {
	return &MovieRepository{db: db}
}

// UserRepository methods
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	return err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &user, err
}

// MovieRepository methods
func (r *MovieRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error) {
	var movie models.Movie
	err := r.db.Collection("movies").FindOne(ctx, bson.M{"_id": id}).Decode(&movie)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &movie, err
}

func (r *MovieRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Movie, error) {
	cursor, err := r.db.Collection("movies").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var movies []models.Movie
	if err = cursor.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *MovieRepository) FindMovieByTitle(ctx context.Context, title string) (*models.Movie, error) {
	var movie models.Movie
	err := r.db.Collection("movies").FindOne(ctx, bson.M{"title": title}).Decode(&movie)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &movie, err
}

// UpsertByTitle inserts a catalog movie or refreshes an existing one.
func (r *MovieRepository) UpsertByTitle(ctx context.Context, movie *models.Movie) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.db.Collection("movies").UpdateOne(ctx,
		bson.M{"title": movie.Title},
		bson.M{"$set": bson.M{
			"title":       movie.Title,
			"year":        movie.Year,
			"poster_url":  movie.PosterURL,
			"plot":        movie.Plot,
			"director":    movie.Director,
			"genre":       movie.Genre,
			"actors":      movie.Actors,
			"imdb_rating": movie.IMDBRating,
			"imdb_id":     movie.IMDBID,
			"popularity":  movie.Popularity,
		},
			"$setOnInsert": bson.M{"global_elo": movie.GlobalElo},
		}, opts)
	return err
}

// ApplyGlobalEloDelta shifts a movie's cross-session Elo baseline. Used
// by sessions configured for global Elo handling.
func (r *MovieRepository) ApplyGlobalEloDelta(ctx context.Context, id primitive.ObjectID, delta float64) error {
	_, err := r.db.Collection("movies").UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"global_elo": delta}})
	return err
}
