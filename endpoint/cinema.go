package endpoint

const (
	Movies           = "movies"
	Movie            = "movie"
	MovieDetails     = "movie_details"
	MovieProfit      = "movie_profit"
	MovieBoxOffice   = "movie_box_office"
	Producers        = "producers"
	Producer         = "producer"
	Genres           = "genres"
	Genre            = "genre"
	BoxOffice        = "box_office"
	BoxOfficeRecord  = "box_office_record"
	Actors           = "actors"
	Actor            = "actor"
	ActorFilmography = "actor_filmography"
	Crew             = "crew"
	CrewMember       = "crew_member"
	CrewProjects     = "crew_projects"
	Languages        = "languages"
	Language         = "language"
	TopMovies        = "top_movies"
	ProfitAnalysis   = "profit_analysis"
)

// Cinema returns the resource catalog served by the cinema backend.
func Cinema() Catalog {
	return MustCatalog(map[string]string{
		Movies:           "/api/movies",
		Movie:            "/api/movies/{id}",
		MovieDetails:     "/api/movies/{id}/details",
		MovieProfit:      "/api/movies/{id}/profit-analysis",
		MovieBoxOffice:   "/api/movies/{id}/box-office",
		Producers:        "/api/producers",
		Producer:         "/api/producers/{id}",
		Genres:           "/api/genres",
		Genre:            "/api/genres/{id}",
		BoxOffice:        "/api/box-office",
		BoxOfficeRecord:  "/api/box-office/{id}",
		Actors:           "/api/actors",
		Actor:            "/api/actors/{id}",
		ActorFilmography: "/api/actors/{id}/filmography",
		Crew:             "/api/crew",
		CrewMember:       "/api/crew/{id}",
		CrewProjects:     "/api/crew/{id}/projects",
		Languages:        "/api/languages",
		Language:         "/api/languages/{id}",
		TopMovies:        "/api/analytics/top-movies",
		ProfitAnalysis:   "/api/analytics/profit-analysis",
	})
}
