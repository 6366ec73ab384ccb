package cinema_test

import (
	"testing"

	"github.com/andyle182810/cinemadash/cinema"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestProfitPercentage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		budget     string
		collection string
		want       string
	}{
		{name: "profit", budget: "100", collection: "150", want: "50"},
		{name: "loss", budget: "300", collection: "100", want: "-66.67"},
		{name: "rounded", budget: "3", collection: "4", want: "33.33"},
		{name: "zero budget", budget: "0", collection: "500", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := cinema.ProfitPercentage(dec(tt.budget), dec(tt.collection))
			require.True(t, got.Equal(dec(tt.want)), "got %s", got)
		})
	}
}

func TestCrores(t *testing.T) {
	t.Parallel()

	require.True(t, cinema.ToCrores(dec("250000000")).Equal(dec("25")))
	require.Equal(t, "₹25.00 Cr", cinema.FormatCrores(decimal.NewNullDecimal(dec("250000000"))))
	require.Equal(t, "₹0.12 Cr", cinema.FormatCrores(decimal.NewNullDecimal(dec("1234567"))))
	require.Equal(t, "₹0 Cr", cinema.FormatCrores(decimal.NullDecimal{}))
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	minutes := 155
	zero := 0

	require.Equal(t, "2h 35m", cinema.FormatDuration(&minutes))
	require.Equal(t, "-", cinema.FormatDuration(&zero))
	require.Equal(t, "-", cinema.FormatDuration(nil))
}

func TestTierOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, cinema.TierHit, cinema.TierOf(dec("50.01")))
	require.Equal(t, cinema.TierProfit, cinema.TierOf(dec("50")))
	require.Equal(t, cinema.TierProfit, cinema.TierOf(dec("0.5")))
	require.Equal(t, cinema.TierBreakEven, cinema.TierOf(decimal.Zero))
	require.Equal(t, cinema.TierLoss, cinema.TierOf(dec("-3")))
}

func TestFilterActors(t *testing.T) {
	t.Parallel()

	actors := []cinema.Actor{
		{ActorID: 1, Name: "Shah Rukh Khan", Gender: cinema.GenderMale},
		{ActorID: 2, Name: "Kareena Kapoor Khan", Gender: cinema.GenderFemale},
		{ActorID: 3, Name: "Ranbir Kapoor", Gender: cinema.GenderMale},
	}

	byName := cinema.FilterActors(actors, cinema.ActorFilter{Name: "khan"})
	require.Len(t, byName, 2)
	require.Equal(t, int64(1), byName[0].ActorID)

	byBoth := cinema.FilterActors(actors, cinema.ActorFilter{Name: "kapoor", Gender: cinema.GenderMale})
	require.Len(t, byBoth, 1)
	require.Equal(t, int64(3), byBoth[0].ActorID)

	require.Len(t, cinema.FilterActors(actors, cinema.ActorFilter{}), 3)
	require.NotNil(t, cinema.FilterActors(nil, cinema.ActorFilter{Name: "x"}))
}

func TestFilterCrew(t *testing.T) {
	t.Parallel()

	crew := []cinema.CrewMember{
		{CrewID: 1, Name: "A. R. Rahman", Role: cinema.CrewMusicDirector},
		{CrewID: 2, Name: "Sanjay Leela Bhansali", Role: cinema.CrewDirector},
		{CrewID: 3, Name: "Rahman Khan", Role: cinema.CrewEditor},
	}

	require.Len(t, cinema.FilterCrew(crew, cinema.CrewFilter{Name: "RAHMAN"}), 2)

	directors := cinema.FilterCrew(crew, cinema.CrewFilter{Role: cinema.CrewDirector})
	require.Len(t, directors, 1)
	require.Equal(t, int64(2), directors[0].CrewID)
}

func TestFilterParams(t *testing.T) {
	t.Parallel()

	require.Equal(t, "name=Rahman&role=Music+Director",
		cinema.CrewFilter{Name: "Rahman", Role: cinema.CrewMusicDirector}.Params().Encode())
	require.Equal(t, "gender=Female&limit=20",
		cinema.ActorFilter{Gender: cinema.GenderFemale, Limit: ptr(20)}.Params().Encode())
	require.Empty(t, cinema.ProducerFilter{}.Params().Encode())
}
