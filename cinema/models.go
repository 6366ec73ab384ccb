package cinema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

type Movie struct {
	MovieID        int64               `json:"movie_id"         yaml:"movie_id"`
	Title          string              `json:"title"            yaml:"title"`
	ReleaseDate    Date                `json:"release_date"     yaml:"release_date"`
	LanguageID     *int64              `json:"language_id"      yaml:"language_id"`
	Duration       *int                `json:"duration"         yaml:"duration"`
	Certification  Certification       `json:"certification"    yaml:"certification"`
	Budget         decimal.NullDecimal `json:"budget"           yaml:"budget"`
	OTTRightsValue decimal.NullDecimal `json:"ott_rights_value" yaml:"ott_rights_value"`
	PosterURL      string              `json:"poster_url"       yaml:"poster_url"`
	PlotSummary    string              `json:"plot_summary"     yaml:"plot_summary"`
	IMDBRating     decimal.NullDecimal `json:"imdb_rating"      yaml:"imdb_rating"`
	ProducerID     *int64              `json:"producer_id"      yaml:"producer_id"`
}

type Producer struct {
	ProducerID      int64  `json:"producer_id"      yaml:"producer_id"`
	Name            string `json:"name"             yaml:"name"`
	Company         string `json:"company"          yaml:"company"`
	Phone           string `json:"phone"            yaml:"phone"`
	Email           string `json:"email"            yaml:"email"`
	StartDate       Date   `json:"start_date"       yaml:"start_date"`
	Region          string `json:"region"           yaml:"region"`
	ExperienceYears *int   `json:"experience_years" yaml:"experience_years"`
}

type Genre struct {
	GenreID     int64  `json:"genre_id"    yaml:"genre_id"`
	GenreName   string `json:"genre_name"  yaml:"genre_name"`
	Description string `json:"description" yaml:"description"`
}

type Language struct {
	LanguageID   int64  `json:"language_id"   yaml:"language_id"`
	LanguageName string `json:"language_name" yaml:"language_name"`
	Description  string `json:"description"   yaml:"description"`
}

type Actor struct {
	ActorID         int64               `json:"actor_id"         yaml:"actor_id"`
	Name            string              `json:"name"             yaml:"name"`
	Gender          Gender              `json:"gender"           yaml:"gender"`
	DateOfBirth     Date                `json:"date_of_birth"    yaml:"date_of_birth"`
	Nationality     string              `json:"nationality"      yaml:"nationality"`
	PopularityScore decimal.NullDecimal `json:"popularity_score" yaml:"popularity_score"`
	Email           string              `json:"email"            yaml:"email"`
}

type CrewMember struct {
	CrewID          int64    `json:"crew_id"          yaml:"crew_id"`
	Name            string   `json:"name"             yaml:"name"`
	Role            CrewRole `json:"role"             yaml:"role"`
	Specialty       string   `json:"specialty"        yaml:"specialty"`
	ExperienceYears *int     `json:"experience_years" yaml:"experience_years"`
	Email           string   `json:"email"            yaml:"email"`
}

type BoxOffice struct {
	BoxID              int64               `json:"box_id"              yaml:"box_id"`
	MovieID            int64               `json:"movie_id"            yaml:"movie_id"`
	DomesticCollection decimal.NullDecimal `json:"domestic_collection" yaml:"domestic_collection"`
	IntlCollection     decimal.NullDecimal `json:"intl_collection"     yaml:"intl_collection"`
	OpeningWeekend     decimal.NullDecimal `json:"opening_weekend"     yaml:"opening_weekend"`
	TotalCollection    decimal.NullDecimal `json:"total_collection"    yaml:"total_collection"`
	ProfitMargin       decimal.NullDecimal `json:"profit_margin"       yaml:"profit_margin"`
	ReleaseScreens     *int                `json:"release_screens"     yaml:"release_screens"`
	CollectionStatus   CollectionStatus    `json:"collection_status"   yaml:"collection_status"`
}

type CastCredit struct {
	ActorID   int64    `json:"actor_id"   yaml:"actor_id"`
	ActorName string   `json:"actor_name" yaml:"actor_name"`
	RoleName  string   `json:"role_name"  yaml:"role_name"`
	RoleType  RoleType `json:"role_type"  yaml:"role_type"`
}

type CrewCredit struct {
	CrewID          int64    `json:"crew_id"          yaml:"crew_id"`
	CrewName        string   `json:"crew_name"        yaml:"crew_name"`
	CrewRole        CrewRole `json:"crew_role"        yaml:"crew_role"`
	RoleDescription string   `json:"role_description" yaml:"role_description"`
}

// MovieDetails is a movie together with its cast and crew credits.
type MovieDetails struct {
	Movie Movie        `json:"movie" yaml:"movie"`
	Cast  []CastCredit `json:"cast"  yaml:"cast"`
	Crew  []CrewCredit `json:"crew"  yaml:"crew"`
}

// ProfitReport is the per-movie profit analysis. The backend answers either
// with a single object or with a one-row result set; both decode here, and an
// empty result set leaves Found false.
type ProfitReport struct {
	MovieID                 int64               `json:"movie_id"                 yaml:"movie_id"`
	Title                   string              `json:"title"                    yaml:"title"`
	Budget                  decimal.NullDecimal `json:"budget"                   yaml:"budget"`
	DomesticCollection      decimal.NullDecimal `json:"domestic_collection"      yaml:"domestic_collection"`
	InternationalCollection decimal.NullDecimal `json:"international_collection" yaml:"international_collection"`
	TotalCollection         decimal.NullDecimal `json:"total_collection"         yaml:"total_collection"`
	NetProfit               decimal.NullDecimal `json:"net_profit"               yaml:"net_profit"`
	ProfitPercentage        decimal.NullDecimal `json:"profit_percentage"        yaml:"profit_percentage"`
	ProfitMargin            decimal.NullDecimal `json:"profit_margin"            yaml:"profit_margin"`
	Found                   bool                `json:"-"                        yaml:"-"`
}

type profitReportFields ProfitReport

func (p *ProfitReport) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*p = ProfitReport{}

		return nil
	}

	if len(data) > 0 && data[0] == '[' {
		var rows []profitReportFields
		if err := json.Unmarshal(data, &rows); err != nil {
			return fmt.Errorf("cinema: decode profit report rows: %w", err)
		}

		*p = ProfitReport{}

		if len(rows) > 0 {
			*p = ProfitReport(rows[0])
			p.Found = true
		}

		return nil
	}

	var fields profitReportFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("cinema: decode profit report: %w", err)
	}

	*p = ProfitReport(fields)
	p.Found = true

	return nil
}

type TopMovie struct {
	Title              string              `json:"title"               yaml:"title"`
	LanguageName       string              `json:"language_name"       yaml:"language_name"`
	ReleaseDate        Date                `json:"release_date"        yaml:"release_date"`
	TotalCollection    decimal.NullDecimal `json:"total_collection"    yaml:"total_collection"`
	DomesticCollection decimal.NullDecimal `json:"domestic_collection" yaml:"domestic_collection"`
	IntlCollection     decimal.NullDecimal `json:"intl_collection"     yaml:"intl_collection"`
	Budget             decimal.NullDecimal `json:"budget"              yaml:"budget"`
	ProfitPercentage   decimal.NullDecimal `json:"profit_percentage"   yaml:"profit_percentage"`
	IMDBRating         decimal.NullDecimal `json:"imdb_rating"         yaml:"imdb_rating"`
}

type ProfitRow struct {
	Title            string              `json:"title"             yaml:"title"`
	Budget           decimal.NullDecimal `json:"budget"            yaml:"budget"`
	TotalCollection  decimal.NullDecimal `json:"total_collection"  yaml:"total_collection"`
	NetProfit        decimal.NullDecimal `json:"net_profit"        yaml:"net_profit"`
	ProfitPercentage decimal.NullDecimal `json:"profit_percentage" yaml:"profit_percentage"`
	OpeningWeekend   decimal.NullDecimal `json:"opening_weekend"   yaml:"opening_weekend"`
	ReleaseScreens   *int                `json:"release_screens"   yaml:"release_screens"`
	ProfitMargin     decimal.NullDecimal `json:"profit_margin"     yaml:"profit_margin"`
}

type FilmographyEntry struct {
	ActorID     int64    `json:"actor_id"     yaml:"actor_id"`
	ActorName   string   `json:"actor_name"   yaml:"actor_name"`
	MovieID     int64    `json:"movie_id"     yaml:"movie_id"`
	Title       string   `json:"title"        yaml:"title"`
	ReleaseDate Date     `json:"release_date" yaml:"release_date"`
	RoleName    string   `json:"role_name"    yaml:"role_name"`
	RoleType    RoleType `json:"role_type"    yaml:"role_type"`
}

type CrewProject struct {
	CrewID          int64    `json:"crew_id"          yaml:"crew_id"`
	CrewName        string   `json:"crew_name"        yaml:"crew_name"`
	Role            CrewRole `json:"role"             yaml:"role"`
	MovieID         int64    `json:"movie_id"         yaml:"movie_id"`
	Title           string   `json:"title"            yaml:"title"`
	ReleaseDate     Date     `json:"release_date"     yaml:"release_date"`
	RoleDescription string   `json:"role_description" yaml:"role_description"`
}

// Created is the backend's answer to a create call. ID is taken from whichever
// "<resource>_id" key the backend used.
type Created struct {
	ID      int64  `json:"id"      yaml:"id"`
	Message string `json:"message" yaml:"message"`
}

func (c *Created) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("cinema: decode create result: %w", err)
	}

	*c = Created{}

	for key, raw := range fields {
		switch {
		case key == "message":
			_ = json.Unmarshal(raw, &c.Message)
		case key == "id" || (len(key) > 3 && key[len(key)-3:] == "_id"):
			var id int64
			if err := json.Unmarshal(raw, &id); err == nil {
				c.ID = id
			}
		}
	}

	return nil
}

// Message is the backend's answer to update and delete calls. A body-less
// success decodes as Success.
type Message struct {
	Message string `json:"message" yaml:"message"`
	Success bool   `json:"success" yaml:"success"`
}
