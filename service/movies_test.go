package service

import (
	"testing"
	"time"

	"etickets/model"
)

func movieNamed(name, description string) model.Movie {
	return model.Movie{Name: name, Description: description}
}

func TestFilterMoviesMatchesNameAndDescription(t *testing.T) {
	movies := []model.Movie{
		movieNamed("Dune", "Spice and sandworms"),
		movieNamed("Arrival", "First contact, carried by language"),
		movieNamed("The Ghost", "A haunted house story"),
	}

	got := FilterMovies(movies, "rri")
	if len(got) != 1 || got[0].Name != "Arrival" {
		t.Fatalf("FilterMovies(%q) = %v, want only Arrival", "rri", got)
	}

	got = FilterMovies(movies, "sandworms")
	if len(got) != 1 || got[0].Name != "Dune" {
		t.Fatalf("FilterMovies(%q) = %v, want only Dune", "sandworms", got)
	}
}

func TestFilterMoviesIsCaseSensitive(t *testing.T) {
	movies := []model.Movie{
		movieNamed("Dune", "Spice and sandworms"),
	}

	if got := FilterMovies(movies, "dune"); len(got) != 0 {
		t.Fatalf("FilterMovies(%q) = %v, want no matches", "dune", got)
	}
	if got := FilterMovies(movies, "Dune"); len(got) != 1 {
		t.Fatalf("FilterMovies(%q) = %v, want one match", "Dune", got)
	}
}

func TestFilterMoviesEmptyQueryReturnsAll(t *testing.T) {
	movies := []model.Movie{
		movieNamed("Dune", "Spice and sandworms"),
		movieNamed("Arrival", "First contact"),
	}

	got := FilterMovies(movies, "")
	if len(got) != len(movies) {
		t.Fatalf("FilterMovies with empty query returned %d movies, want %d", len(got), len(movies))
	}
}

func TestStatusForDates(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		now  time.Time
		want string
	}{
		{"before run", start.AddDate(0, 0, -1), model.MOVIE_COMING_SOON},
		{"first day", start, model.MOVIE_NOW_SHOWING},
		{"mid run", start.AddDate(0, 0, 14), model.MOVIE_NOW_SHOWING},
		{"last day", end, model.MOVIE_NOW_SHOWING},
		{"after run", end.AddDate(0, 0, 1), model.MOVIE_ENDED},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusForDates(start, end, tc.now); got != tc.want {
				t.Fatalf("StatusForDates(now=%s) = %q, want %q", tc.now, got, tc.want)
			}
		})
	}
}
