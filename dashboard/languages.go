package dashboard

import (
	"cmp"
	"context"
	"slices"
	"strconv"

	"github.com/andyle182810/cinemadash/cinema"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const UnknownLanguage = "Unknown"

type LanguageShare struct {
	LanguageID   *int64          `json:"languageId"   yaml:"language_id"`
	LanguageName string          `json:"languageName" yaml:"language_name"`
	Movies       int             `json:"movies"       yaml:"movies"`
	Collection   decimal.Decimal `json:"collection"   yaml:"collection"`
	Crores       decimal.Decimal `json:"crores"       yaml:"crores"`
}

// LanguageCollection sums box-office totals per movie language. Language
// names are a best-effort lookup: if that call fails the ids are used as
// labels and the failure is only logged.
func (s *Service) LanguageCollection(ctx context.Context) ([]LanguageShare, error) {
	var (
		g         errgroup.Group
		movies    []cinema.Movie
		records   []cinema.BoxOffice
		languages []cinema.Language

		moviesErr, recordsErr, languagesErr error
	)

	task(&g, &moviesErr, "movies", func() (err error) {
		movies, err = s.backend.Movies(ctx, cinema.MovieFilter{})

		return err
	})

	task(&g, &recordsErr, "box office", func() (err error) {
		records, err = s.backend.BoxOfficeRecords(ctx, cinema.BoxOfficeFilter{})

		return err
	})

	task(&g, &languagesErr, "languages", func() (err error) {
		languages, err = s.backend.Languages(ctx, cinema.Page{})

		return err
	})

	if err := wait(&g, &moviesErr, &recordsErr); err != nil {
		s.logger.Error().Err(err).Msg("Failed to load collection by language")

		return nil, err
	}

	if languagesErr != nil {
		s.logger.Warn().Err(languagesErr).Msg("Language names unavailable, labelling by id")
	}

	return GroupByLanguage(movies, records, languages), nil
}

// GroupByLanguage joins box-office records to movies by movie id. When a movie
// has several records the last one wins. Movies without a language are grouped
// under UnknownLanguage. Shares are ordered by collection, largest first.
func GroupByLanguage(
	movies []cinema.Movie,
	records []cinema.BoxOffice,
	languages []cinema.Language,
) []LanguageShare {
	collectionByMovie := make(map[int64]decimal.Decimal, len(records))
	for _, record := range records {
		collectionByMovie[record.MovieID] = record.TotalCollection.Decimal
	}

	names := make(map[int64]string, len(languages))
	for _, language := range languages {
		names[language.LanguageID] = language.LanguageName
	}

	const unknownKey = -1

	shares := make(map[int64]*LanguageShare)
	order := make([]int64, 0)

	for _, movie := range movies {
		key := int64(unknownKey)
		if movie.LanguageID != nil {
			key = *movie.LanguageID
		}

		share, ok := shares[key]
		if !ok {
			share = &LanguageShare{
				LanguageID:   movie.LanguageID,
				LanguageName: languageLabel(movie.LanguageID, names),
				Movies:       0,
				Collection:   decimal.Zero,
				Crores:       decimal.Zero,
			}
			shares[key] = share
			order = append(order, key)
		}

		share.Movies++
		share.Collection = share.Collection.Add(collectionByMovie[movie.MovieID])
	}

	result := make([]LanguageShare, 0, len(order))

	for _, key := range order {
		share := shares[key]
		share.Crores = cinema.ToCrores(share.Collection).Round(2)
		result = append(result, *share)
	}

	slices.SortStableFunc(result, func(a, b LanguageShare) int {
		return cmp.Compare(0, a.Collection.Cmp(b.Collection))
	})

	return result
}

func languageLabel(id *int64, names map[int64]string) string {
	if id == nil {
		return UnknownLanguage
	}

	if name, ok := names[*id]; ok && name != "" {
		return name
	}

	return strconv.FormatInt(*id, 10)
}
