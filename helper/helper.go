package helper

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/Ollie-C/myvu-movies-sub000/engine"
	"github.com/Ollie-C/myvu-movies-sub000/models"
)

// ReadMovieCSV parses an IMDB-style CSV export into catalog movies. Only
// the Title column is mandatory; Year, Rating and Votes are picked up
// when present so imported movies arrive with their popularity signals.
func ReadMovieCSV(path string) ([]models.Movie, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	columns := map[string]int{}
	for i, column := range header {
		columns[column] = i
	}
	titleIndex, ok := columns["Title"]
	if !ok {
		return nil, errors.New("title column not found in CSV")
	}

	var movies []models.Movie
	for {
		row, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		movie := models.Movie{
			Title:     row[titleIndex],
			GlobalElo: engine.DefaultElo,
		}
		if i, ok := columns["Year"]; ok {
			movie.Year, _ = strconv.Atoi(row[i])
		}
		if i, ok := columns["Rating"]; ok {
			movie.IMDBRating = row[i]
		}
		if i, ok := columns["Votes"]; ok {
			if votes, err := strconv.Atoi(row[i]); err == nil && votes > 0 {
				movie.Popularity = float64(votes) / 10000.0
			}
		}

		movies = append(movies, movie)
	}

	return movies, nil
}
