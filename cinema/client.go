package cinema

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/andyle182810/cinemadash/endpoint"
	"github.com/andyle182810/cinemadash/httpclient"
	"github.com/andyle182810/cinemadash/query"
	"github.com/andyle182810/cinemadash/validator"
)

const DefaultAnalyticsLimit = 10

var ErrInvalidInput = errors.New("cinema: invalid input")

// Client is the typed view of the cinema backend. It holds no state beyond
// its dependencies and is safe for concurrent use.
type Client struct {
	api      *httpclient.Client
	validate *validator.Validator
}

// New wraps an existing request client. The client's catalog must contain the
// endpoint.Cinema names.
func New(api *httpclient.Client) *Client {
	return &Client{
		api:      api,
		validate: validator.New(),
	}
}

// Dial builds the request client for baseURL with the cinema catalog and wraps it.
func Dial(baseURL string, opts ...httpclient.Option) *Client {
	opts = append([]httpclient.Option{httpclient.WithCatalog(endpoint.Cinema())}, opts...)

	return New(httpclient.New(baseURL, opts...))
}

func (c *Client) API() *httpclient.Client {
	return c.api
}

// Movies

func (c *Client) Movies(ctx context.Context, filter MovieFilter) ([]Movie, error) {
	return list[Movie](ctx, c, endpoint.Movies, filter.Params())
}

func (c *Client) Movie(ctx context.Context, id int64) (Movie, error) {
	return get[Movie](ctx, c, endpoint.Movie, id)
}

func (c *Client) CreateMovie(ctx context.Context, input MovieInput) (Created, error) {
	return create(ctx, c, endpoint.Movies, input)
}

func (c *Client) UpdateMovie(ctx context.Context, id int64, input MovieInput) (Message, error) {
	return update(ctx, c, endpoint.Movie, id, input)
}

func (c *Client) DeleteMovie(ctx context.Context, id int64) (Message, error) {
	return remove(ctx, c, endpoint.Movie, id)
}

func (c *Client) MovieDetails(ctx context.Context, id int64) (MovieDetails, error) {
	details, err := get[MovieDetails](ctx, c, endpoint.MovieDetails, id)
	if err != nil {
		return details, err
	}

	if details.Cast == nil {
		details.Cast = []CastCredit{}
	}

	if details.Crew == nil {
		details.Crew = []CrewCredit{}
	}

	return details, nil
}

func (c *Client) MovieProfit(ctx context.Context, id int64) (ProfitReport, error) {
	return get[ProfitReport](ctx, c, endpoint.MovieProfit, id)
}

func (c *Client) MovieBoxOffice(ctx context.Context, movieID int64) (BoxOffice, error) {
	return get[BoxOffice](ctx, c, endpoint.MovieBoxOffice, movieID)
}

// Producers

func (c *Client) Producers(ctx context.Context, filter ProducerFilter) ([]Producer, error) {
	return list[Producer](ctx, c, endpoint.Producers, filter.Params())
}

func (c *Client) Producer(ctx context.Context, id int64) (Producer, error) {
	return get[Producer](ctx, c, endpoint.Producer, id)
}

func (c *Client) CreateProducer(ctx context.Context, input ProducerInput) (Created, error) {
	return create(ctx, c, endpoint.Producers, input)
}

func (c *Client) UpdateProducer(ctx context.Context, id int64, input ProducerInput) (Message, error) {
	return update(ctx, c, endpoint.Producer, id, input)
}

func (c *Client) DeleteProducer(ctx context.Context, id int64) (Message, error) {
	return remove(ctx, c, endpoint.Producer, id)
}

// Genres

func (c *Client) Genres(ctx context.Context) ([]Genre, error) {
	return list[Genre](ctx, c, endpoint.Genres, nil)
}

func (c *Client) Genre(ctx context.Context, id int64) (Genre, error) {
	return get[Genre](ctx, c, endpoint.Genre, id)
}

func (c *Client) CreateGenre(ctx context.Context, input GenreInput) (Created, error) {
	return create(ctx, c, endpoint.Genres, input)
}

func (c *Client) UpdateGenre(ctx context.Context, id int64, input GenreInput) (Message, error) {
	return update(ctx, c, endpoint.Genre, id, input)
}

func (c *Client) DeleteGenre(ctx context.Context, id int64) (Message, error) {
	return remove(ctx, c, endpoint.Genre, id)
}

// Box office

func (c *Client) BoxOfficeRecords(ctx context.Context, filter BoxOfficeFilter) ([]BoxOffice, error) {
	return list[BoxOffice](ctx, c, endpoint.BoxOffice, filter.Params())
}

func (c *Client) BoxOfficeRecord(ctx context.Context, id int64) (BoxOffice, error) {
	return get[BoxOffice](ctx, c, endpoint.BoxOfficeRecord, id)
}

func (c *Client) CreateBoxOfficeRecord(ctx context.Context, input BoxOfficeInput) (Created, error) {
	return create(ctx, c, endpoint.BoxOffice, input)
}

func (c *Client) UpdateBoxOfficeRecord(ctx context.Context, id int64, input BoxOfficeInput) (Message, error) {
	return update(ctx, c, endpoint.BoxOfficeRecord, id, input)
}

func (c *Client) DeleteBoxOfficeRecord(ctx context.Context, id int64) (Message, error) {
	return remove(ctx, c, endpoint.BoxOfficeRecord, id)
}

// Analytics

// TopMovies lists the highest grossing movies. A non-positive limit means
// DefaultAnalyticsLimit.
func (c *Client) TopMovies(ctx context.Context, limit int) ([]TopMovie, error) {
	return list[TopMovie](ctx, c, endpoint.TopMovies, limitParams(limit))
}

func (c *Client) ProfitAnalysis(ctx context.Context, limit int) ([]ProfitRow, error) {
	return list[ProfitRow](ctx, c, endpoint.ProfitAnalysis, limitParams(limit))
}

// Actors

func (c *Client) Actors(ctx context.Context, filter ActorFilter) ([]Actor, error) {
	return list[Actor](ctx, c, endpoint.Actors, filter.Params())
}

func (c *Client) Actor(ctx context.Context, id int64) (Actor, error) {
	return get[Actor](ctx, c, endpoint.Actor, id)
}

func (c *Client) CreateActor(ctx context.Context, input ActorInput) (Created, error) {
	return create(ctx, c, endpoint.Actors, input)
}

func (c *Client) UpdateActor(ctx context.Context, id int64, input ActorInput) (Message, error) {
	return update(ctx, c, endpoint.Actor, id, input)
}

func (c *Client) DeleteActor(ctx context.Context, id int64) (Message, error) {
	return remove(ctx, c, endpoint.Actor, id)
}

func (c *Client) ActorFilmography(ctx context.Context, id int64) ([]FilmographyEntry, error) {
	return listByID[FilmographyEntry](ctx, c, endpoint.ActorFilmography, id)
}

// Crew

func (c *Client) Crew(ctx context.Context, filter CrewFilter) ([]CrewMember, error) {
	return list[CrewMember](ctx, c, endpoint.Crew, filter.Params())
}

func (c *Client) CrewMember(ctx context.Context, id int64) (CrewMember, error) {
	return get[CrewMember](ctx, c, endpoint.CrewMember, id)
}

func (c *Client) CreateCrewMember(ctx context.Context, input CrewInput) (Created, error) {
	return create(ctx, c, endpoint.Crew, input)
}

func (c *Client) UpdateCrewMember(ctx context.Context, id int64, input CrewInput) (Message, error) {
	return update(ctx, c, endpoint.CrewMember, id, input)
}

func (c *Client) DeleteCrewMember(ctx context.Context, id int64) (Message, error) {
	return remove(ctx, c, endpoint.CrewMember, id)
}

func (c *Client) CrewProjects(ctx context.Context, id int64) ([]CrewProject, error) {
	return listByID[CrewProject](ctx, c, endpoint.CrewProjects, id)
}

// Languages

func (c *Client) Languages(ctx context.Context, page Page) ([]Language, error) {
	return list[Language](ctx, c, endpoint.Languages, page.Params())
}

func (c *Client) Language(ctx context.Context, id int64) (Language, error) {
	return get[Language](ctx, c, endpoint.Language, id)
}

func (c *Client) CreateLanguage(ctx context.Context, input LanguageInput) (Created, error) {
	return create(ctx, c, endpoint.Languages, input)
}

func (c *Client) UpdateLanguage(ctx context.Context, id int64, input LanguageInput) (Message, error) {
	return update(ctx, c, endpoint.Language, id, input)
}

func (c *Client) DeleteLanguage(ctx context.Context, id int64) (Message, error) {
	return remove(ctx, c, endpoint.Language, id)
}

func limitParams(limit int) *query.Params {
	if limit <= 0 {
		limit = DefaultAnalyticsLimit
	}

	return query.New().Set("limit", limit)
}

// list never returns a nil slice on success.
func list[T any](ctx context.Context, c *Client, name string, params *query.Params) ([]T, error) {
	items, err := httpclient.Fetch[[]T](ctx, c.api, name, nil, httpclient.WithParams(params))
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []T{}
	}

	return items, nil
}

func listByID[T any](ctx context.Context, c *Client, name string, id int64) ([]T, error) {
	items, err := httpclient.Fetch[[]T](ctx, c.api, name, []any{id})
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []T{}
	}

	return items, nil
}

func get[T any](ctx context.Context, c *Client, name string, id int64) (T, error) {
	return httpclient.Fetch[T](ctx, c.api, name, []any{id})
}

func create(ctx context.Context, c *Client, name string, input any) (Created, error) {
	if err := c.validate.Validate(input); err != nil {
		return Created{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return httpclient.Call[Created](ctx, c.api, http.MethodPost, name, nil, input)
}

func update(ctx context.Context, c *Client, name string, id int64, input any) (Message, error) {
	if err := c.validate.Validate(input); err != nil {
		return Message{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	msg, err := httpclient.Call[Message](ctx, c.api, http.MethodPut, name, []any{id}, input)
	if err != nil {
		return Message{}, err
	}

	msg.Success = true

	return msg, nil
}

func remove(ctx context.Context, c *Client, name string, id int64) (Message, error) {
	msg, err := httpclient.Call[Message](ctx, c.api, http.MethodDelete, name, []any{id}, nil)
	if err != nil {
		return Message{}, err
	}

	msg.Success = true

	return msg, nil
}
