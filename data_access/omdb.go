package data_access

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Ollie-C/myvu-movies-sub000/models"
)

type OMDBClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewOMDBClient(apiKey, baseURL string) *OMDBClient {
	return &OMDBClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  http.DefaultClient,
	}
}

// FetchMovie looks a title up on OMDB and maps it onto our movie model,
// including the public rating and vote volume the merged ranking uses as
// its external signals.
func (c *OMDBClient) FetchMovie(ctx context.Context, title string) (*models.Movie, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("OMDB API key not found")
	}

	reqURL := fmt.Sprintf("%s?apikey=%s&t=%s", c.baseURL, c.apiKey, url.QueryEscape(title))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request to OMDB API: %v", err)
	}
	defer resp.Body.Close()

	var omdbResp models.OmdbResponse
	if err := json.NewDecoder(resp.Body).Decode(&omdbResp); err != nil {
		return nil, fmt.Errorf("error decoding OMDB response: %v", err)
	}
	if omdbResp.Response == "False" {
		return nil, fmt.Errorf("OMDB: %s", omdbResp.Error)
	}

	year, err := strconv.Atoi(omdbResp.Year)
	if err != nil {
		return nil, fmt.Errorf("error converting year: %v", err)
	}

	movie := &models.Movie{
		Title:      omdbResp.Title,
		Year:       year,
		Plot:       omdbResp.Plot,
		Director:   omdbResp.Director,
		PosterURL:  omdbResp.Poster,
		Genre:      omdbResp.Genre,
		Actors:     omdbResp.Actors,
		IMDBRating: omdbResp.ImdbRating,
		IMDBID:     omdbResp.ImdbID,
		Popularity: popularityFromVotes(omdbResp.ImdbVotes),
	}

	return movie, nil
}

// popularityFromVotes scales an IMDB vote count ("1,234,567") onto the
// open-ended popularity figure the merged score expects: 100 at a
// million votes and up.
func popularityFromVotes(votes string) float64 {
	n, err := strconv.Atoi(strings.ReplaceAll(votes, ",", ""))
	if err != nil || n <= 0 {
		return 0
	}
	return float64(n) / 10000.0
}
