package cinema

import "github.com/andyle182810/cinemadash/query"

// Filters map to the backend's list query strings. Zero fields are not sent.

type MovieFilter struct {
	Title      string
	LanguageID *int64
	ProducerID *int64
	Skip       *int
	Limit      *int
}

func (f MovieFilter) Params() *query.Params {
	return query.New().
		Set("title", f.Title).
		Set("language_id", f.LanguageID).
		Set("producer_id", f.ProducerID).
		Set("skip", f.Skip).
		Set("limit", f.Limit)
}

type ProducerFilter struct {
	Name    string
	Company string
	Region  string
	Skip    *int
	Limit   *int
}

func (f ProducerFilter) Params() *query.Params {
	return query.New().
		Set("name", f.Name).
		Set("company", f.Company).
		Set("region", f.Region).
		Set("skip", f.Skip).
		Set("limit", f.Limit)
}

type ActorFilter struct {
	Name   string
	Gender Gender
	Limit  *int
	Offset *int
}

func (f ActorFilter) Params() *query.Params {
	return query.New().
		Set("name", f.Name).
		Set("gender", f.Gender).
		Set("limit", f.Limit).
		Set("offset", f.Offset)
}

// Match applies the filter locally, the way the dashboard narrows an already
// loaded list: case-insensitive name substring and exact gender.
func (f ActorFilter) Match(actor Actor) bool {
	if !containsFold(actor.Name, f.Name) {
		return false
	}

	return f.Gender == "" || actor.Gender == f.Gender
}

type CrewFilter struct {
	Name string
	Role CrewRole
}

func (f CrewFilter) Params() *query.Params {
	return query.New().
		Set("name", f.Name).
		Set("role", f.Role)
}

func (f CrewFilter) Match(member CrewMember) bool {
	if !containsFold(member.Name, f.Name) {
		return false
	}

	return f.Role == "" || member.Role == f.Role
}

type BoxOfficeFilter struct {
	MovieID          *int64
	CollectionStatus CollectionStatus
	Skip             *int
	Limit            *int
}

func (f BoxOfficeFilter) Params() *query.Params {
	return query.New().
		Set("movie_id", f.MovieID).
		Set("collection_status", f.CollectionStatus).
		Set("skip", f.Skip).
		Set("limit", f.Limit)
}

type Page struct {
	Limit  *int
	Offset *int
}

func (p Page) Params() *query.Params {
	return query.New().
		Set("limit", p.Limit).
		Set("offset", p.Offset)
}
