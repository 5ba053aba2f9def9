package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penzionapp/guesthouse-booking-backend/internal/calendar"
)

func date(s string) time.Time {
	t, err := time.Parse(calendar.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSimpleModel(t *testing.T) {
	// 3 nights at 800 per night.
	total := TotalPrice(ModelSimple, 800, nil, date("2025-06-01"), date("2025-06-04"))
	assert.Equal(t, 2400, total)

	assert.Equal(t, 1, MinimumStay(ModelSimple, nil))
}

func TestSeasonalTableFallback(t *testing.T) {
	seasonal := &Seasonal{
		MainSeason: Table{2: 100, 5: 200},
		OffSeason:  Table{2: 100, 5: 200},
	}

	// June check-in is off season; both tables are identical here so the
	// fallback rules are what is under test.
	price := func(nights int) int {
		in := date("2025-06-01")
		return TotalPrice(ModelSeasonal, 0, seasonal, in, in.AddDate(0, 0, nights))
	}

	assert.Equal(t, 100, price(2), "exact match")
	assert.Equal(t, 100, price(3), "rounds down to nearest shorter tier")
	assert.Equal(t, 100, price(4))
	assert.Equal(t, 200, price(5), "exact match at top tier")
	assert.Equal(t, 200, price(6), "caps at the longest tier")
	assert.Equal(t, 200, price(30))
}

func TestSeasonSelection(t *testing.T) {
	seasonal := &Seasonal{
		MainSeason: Table{7: 49000},
		OffSeason:  Table{7: 45000},
	}

	// July check-in is main season.
	assert.Equal(t, 49000, TotalPrice(ModelSeasonal, 1000, seasonal, date("2025-07-01"), date("2025-07-08")))
	// October check-in is off season.
	assert.Equal(t, 45000, TotalPrice(ModelSeasonal, 1000, seasonal, date("2025-10-06"), date("2025-10-13")))
	// February check-in is main season again.
	assert.Equal(t, 49000, TotalPrice(ModelSeasonal, 1000, seasonal, date("2025-02-03"), date("2025-02-10")))

	assert.Equal(t, 7, MinimumStay(ModelSeasonal, seasonal))
}

func TestEmptySeasonalTableFallsBackToFlatRate(t *testing.T) {
	seasonal := &Seasonal{}
	assert.Equal(t, 3*1000, TotalPrice(ModelSeasonal, 1000, seasonal, date("2025-06-01"), date("2025-06-04")))
}

func TestHolidayPrecedenceOverSeason(t *testing.T) {
	seasonal := &Seasonal{
		MainSeason: Table{7: 49000},
		OffSeason:  Table{7: 45000},
		Holidays: map[Holiday]Table{
			HolidayChristmas: {7: 70000},
		},
	}

	// Late December check-in: main season by month would not apply anyway,
	// but the christmas window must win over any season table.
	total := TotalPrice(ModelSeasonal, 1000, seasonal, date("2025-12-26"), date("2026-01-02"))
	assert.Equal(t, 70000, total)
}

func TestHolidayRequiresExactNightCount(t *testing.T) {
	seasonal := &Seasonal{
		MainSeason: Table{2: 18000, 7: 49000},
		OffSeason:  Table{2: 16000, 7: 45000},
		Holidays: map[Holiday]Table{
			HolidayChristmas: {6: 50000},
		},
	}

	// 7 nights over Christmas with no 7-night holiday entry: falls through to
	// the season table of the check-in month (December is off season).
	total := TotalPrice(ModelSeasonal, 1000, seasonal, date("2025-12-24"), date("2025-12-31"))
	assert.Equal(t, 45000, total)
}

func TestHolidayEvaluationOrder(t *testing.T) {
	// Dec 28 -> Jan 2 sits inside both the christmas and newyear windows;
	// christmas is checked first and wins.
	seasonal := &Seasonal{
		OffSeason: Table{5: 30000},
		Holidays: map[Holiday]Table{
			HolidayChristmas: {5: 55000},
			HolidayNewYear:   {5: 66000},
		},
	}
	total := TotalPrice(ModelSeasonal, 1000, seasonal, date("2025-12-28"), date("2026-01-02"))
	assert.Equal(t, 55000, total)
}

func TestEasterWindowCoversMarchAndApril(t *testing.T) {
	seasonal := &Seasonal{
		MainSeason: Table{5: 37000},
		OffSeason:  Table{5: 33000},
		Holidays: map[Holiday]Table{
			HolidayEaster: {5: 45000},
		},
	}

	// Any stay touching March or April lands in the easter window.
	assert.Equal(t, 45000, TotalPrice(ModelSeasonal, 1000, seasonal, date("2025-03-10"), date("2025-03-15")))
	assert.Equal(t, 45000, TotalPrice(ModelSeasonal, 1000, seasonal, date("2025-04-20"), date("2025-04-25")))
	// May is out of the window; check-in month May is off season.
	assert.Equal(t, 33000, TotalPrice(ModelSeasonal, 1000, seasonal, date("2025-05-10"), date("2025-05-15")))
}

func TestMinimumStayAcrossSeasons(t *testing.T) {
	seasonal := &Seasonal{
		MainSeason: Table{3: 25000, 7: 49000},
		OffSeason:  Table{2: 16000, 7: 45000},
		Holidays: map[Holiday]Table{
			// Holiday tables never lower the floor.
			HolidayNewYear: {1: 9000},
		},
	}
	assert.Equal(t, 2, MinimumStay(ModelSeasonal, seasonal))

	assert.Equal(t, 1, MinimumStay(ModelSeasonal, &Seasonal{}), "empty tables default to one night")
}

func TestTableValidate(t *testing.T) {
	require.NoError(t, Table{2: 100}.Validate())

	err := Table{0: 100}.Validate()
	require.Error(t, err)

	seasonal := &Seasonal{MainSeason: Table{2: 100}, OffSeason: Table{-1: 50}}
	require.Error(t, seasonal.Validate())

	var nilSeasonal *Seasonal
	require.NoError(t, nilSeasonal.Validate())
}

func TestDepositAmount(t *testing.T) {
	assert.Equal(t, 1200, DepositAmount(2400, 50))
	assert.Equal(t, 13, DepositAmount(25, 50), "rounds half-up")
	assert.Equal(t, 8, DepositAmount(25, 30), "7.5 rounds up to 8")
	assert.Equal(t, 0, DepositAmount(0, 50))
	assert.Equal(t, 2400, DepositAmount(2400, 100))
}
