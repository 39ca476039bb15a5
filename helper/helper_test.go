package helper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ollie-C/myvu-movies-sub000/engine"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadMovieCSV(t *testing.T) {
	path := writeCSV(t, "Rank,Title,Year,Rating,Votes\n"+
		"1,Guardians of the Galaxy,2014,8.1,757074\n"+
		"2,Prometheus,2012,7.0,485820\n")

	movies, err := ReadMovieCSV(path)
	require.NoError(t, err)
	require.Len(t, movies, 2)

	assert.Equal(t, "Guardians of the Galaxy", movies[0].Title)
	assert.Equal(t, 2014, movies[0].Year)
	assert.Equal(t, "8.1", movies[0].IMDBRating)
	assert.InDelta(t, 75.7, movies[0].Popularity, 0.01)
	assert.Equal(t, engine.DefaultElo, movies[0].GlobalElo)
}

func TestReadMovieCSVTitleOnly(t *testing.T) {
	path := writeCSV(t, "Title\nHeat\n")

	movies, err := ReadMovieCSV(path)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Heat", movies[0].Title)
	assert.Zero(t, movies[0].Popularity)
}

func TestReadMovieCSVMissingTitleColumn(t *testing.T) {
	path := writeCSV(t, "Rank,Year\n1,1999\n")

	_, err := ReadMovieCSV(path)
	assert.EqualError(t, err, "title column not found in CSV")
}

func TestReadMovieCSVMissingFile(t *testing.T) {
	_, err := ReadMovieCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
