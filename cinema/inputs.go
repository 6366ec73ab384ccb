package cinema

import "github.com/shopspring/decimal"

// Inputs are the create/update payloads. They are validated before any
// request is sent; unset optional fields are left out of the body.

type MovieInput struct {
	Title          string              `json:"title"                      validate:"notblank,max=200"`
	ReleaseDate    *Date               `json:"release_date,omitempty"`
	LanguageID     *int64              `json:"language_id,omitempty"      validate:"omitempty,gt=0"`
	Duration       *int                `json:"duration,omitempty"         validate:"omitempty,gt=0"`
	Certification  Certification       `json:"certification,omitempty"    validate:"omitempty,oneof=U UA A S"`
	Budget         decimal.NullDecimal `json:"budget"                     validate:"omitempty,gte=0"`
	OTTRightsValue decimal.NullDecimal `json:"ott_rights_value"           validate:"omitempty,gte=0"`
	PosterURL      string              `json:"poster_url,omitempty"       validate:"omitempty,url"`
	PlotSummary    string              `json:"plot_summary,omitempty"`
	IMDBRating     decimal.NullDecimal `json:"imdb_rating"                validate:"omitempty,gte=0,lte=10"`
	ProducerID     *int64              `json:"producer_id,omitempty"      validate:"omitempty,gt=0"`
	GenreIDs       []int64             `json:"genre_ids,omitempty"        validate:"omitempty,dive,gt=0"`
}

type ProducerInput struct {
	Name      string `json:"name"                 validate:"notblank,max=100"`
	Company   string `json:"company,omitempty"    validate:"omitempty,max=150"`
	Phone     string `json:"phone,omitempty"      validate:"omitempty,max=15"`
	Email     string `json:"email,omitempty"      validate:"omitempty,email"`
	StartDate *Date  `json:"start_date,omitempty"`
	Region    string `json:"region,omitempty"     validate:"omitempty,max=50"`
}

type GenreInput struct {
	GenreName   string `json:"genre_name"            validate:"notblank,max=50"`
	Description string `json:"description,omitempty"`
}

type LanguageInput struct {
	LanguageName string `json:"language_name"         validate:"notblank,max=50"`
	Description  string `json:"description,omitempty"`
}

type ActorInput struct {
	Name            string              `json:"name"                    validate:"notblank,max=100"`
	Gender          Gender              `json:"gender,omitempty"        validate:"omitempty,oneof=Male Female Other"`
	DateOfBirth     *Date               `json:"date_of_birth,omitempty"`
	Nationality     string              `json:"nationality,omitempty"   validate:"omitempty,max=50"`
	PopularityScore decimal.NullDecimal `json:"popularity_score"        validate:"omitempty,gte=0,lte=10"`
	Email           string              `json:"email,omitempty"         validate:"omitempty,email"`
}

type CrewInput struct {
	Name            string   `json:"name"                       validate:"notblank,max=100"`
	Role            CrewRole `json:"role"                       validate:"required,oneof=Director Cinematographer 'Music Director' Editor Producer Writer Choreographer Other"` //nolint:lll
	Specialty       string   `json:"specialty,omitempty"        validate:"omitempty,max=100"`
	ExperienceYears *int     `json:"experience_years,omitempty" validate:"omitempty,gte=0"`
	Email           string   `json:"email,omitempty"            validate:"omitempty,email"`
}

type BoxOfficeInput struct {
	MovieID            int64               `json:"movie_id"                    validate:"gt=0"`
	DomesticCollection decimal.NullDecimal `json:"domestic_collection"         validate:"omitempty,gte=0"`
	IntlCollection     decimal.NullDecimal `json:"intl_collection"             validate:"omitempty,gte=0"`
	OpeningWeekend     decimal.NullDecimal `json:"opening_weekend"             validate:"omitempty,gte=0"`
	ReleaseScreens     *int                `json:"release_screens,omitempty"   validate:"omitempty,gte=0"`
	CollectionStatus   CollectionStatus    `json:"collection_status,omitempty" validate:"omitempty,oneof=pending updated confirmed"`
}
