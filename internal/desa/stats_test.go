package desa

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/daniilsolovey/desa-portal/internal/db"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormInt(t *testing.T) {
	tests := []struct {
		name string
		json string
		want FormInt
	}{
		{name: "Number", json: `12`, want: FormInt{Value: 12, Valid: true}},
		{name: "NumericString", json: `"34"`, want: FormInt{Value: 34, Valid: true}},
		{name: "PaddedString", json: `" 7 "`, want: FormInt{Value: 7, Valid: true}},
		{name: "Float", json: `3.9`, want: FormInt{Value: 3, Valid: true}},
		{name: "Blank", json: `""`, want: FormInt{}},
		{name: "Null", json: `null`, want: FormInt{}},
		{name: "Garbage", json: `"abc"`, want: FormInt{}},
		{name: "HugeExponent", json: `1e20`, want: FormInt{}},
		{name: "HugeExponentString", json: `"1e20"`, want: FormInt{}},
		{name: "AboveInt32", json: `"2147483648"`, want: FormInt{}},
		{name: "NegativeAboveInt32", json: `-3000000000`, want: FormInt{}},
		{name: "MaxInt32", json: `2147483647`, want: FormInt{Value: 2147483647, Valid: true}},
		{name: "NaNString", json: `"NaN"`, want: FormInt{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FormInt
			require.NoError(t, json.Unmarshal([]byte(tt.json), &got))
			assert.Equal(t, tt.want, got)

			var param FormInt
			require.NoError(t, param.UnmarshalParam(trimQuotes(tt.json)))
			if tt.name != "Null" {
				assert.Equal(t, tt.want, param)
			}
		})
	}
}

func trimQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func TestAgeRows(t *testing.T) {
	statsID := uuid.New()
	var rows []AgeGroupRow
	require.NoError(t, json.Unmarshal([]byte(`[
		{"age_group": "0-4", "male_count": "10", "female_count": 12},
		{"age_group": "5-9", "male_count": "", "female_count": "0"},
		{"age_group": "10-14", "male_count": 0, "female_count": "3"},
		{"age_group": "15-19", "male_count": "x", "female_count": null}
	]`), &rows))

	got := AgeRows(statsID, rows, uuid.New)

	want := []db.AgeDistribution{
		{StatsID: statsID, Position: 0, AgeGroup: "0-4", MaleCount: 10, FemaleCount: 12},
		{StatsID: statsID, Position: 1, AgeGroup: "10-14", MaleCount: 0, FemaleCount: 3},
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(db.AgeDistribution{}, "ID"), cmpopts.IgnoreUnexported(db.AgeDistribution{})); diff != "" {
		t.Errorf("AgeRows mismatch (-want +got):\n%s", diff)
	}
}

func TestOccupationAndEducationRows(t *testing.T) {
	statsID := uuid.New()

	occ := OccupationRows(statsID, []OccupationRow{
		{Occupation: "Petani", Count: FormInt{Value: 120, Valid: true}},
		{Occupation: "Nelayan", Count: FormInt{}},
		{Occupation: "Guru", Count: FormInt{Value: 0, Valid: true}},
	}, uuid.New)
	require.Len(t, occ, 1)
	assert.Equal(t, "Petani", occ[0].Occupation)

	edu := EducationRows(statsID, []EducationRow{
		{Level: " SD ", Count: FormInt{Value: 40, Valid: true}},
		{Level: "S1", Count: FormInt{}},
	}, uuid.New)
	require.Len(t, edu, 1)
	assert.Equal(t, "SD", edu[0].Level)
}

func validStats(year int) StatsInput {
	return StatsInput{
		Year:            FormInt{Value: year, Valid: true},
		TotalPopulation: FormInt{Value: 3120, Valid: true},
		TotalMale:       FormInt{Value: 1550, Valid: true},
		TotalFemale:     FormInt{Value: 1570, Valid: true},
		TotalRW:         FormInt{},
		Notes:           "  ",
	}
}

func TestManager_SaveStats(t *testing.T) {
	t.Run("ExactlyOneCurrentAfterEachCall", func(t *testing.T) {
		f := newFixture(t)

		var lastID uuid.UUID
		for year := 2021; year <= 2024; year++ {
			f.clock.Advance(time.Minute)
			res, err := f.manager.SaveStats(f.ctx, validStats(year))
			require.NoError(t, err)
			assert.Equal(t, "Data statistik berhasil disimpan sebagai data terkini!", res.Message)
			assert.Equal(t, 1, f.store.CurrentCount())
			lastID = res.ID
		}

		stats, err := f.manager.Statistics(f.ctx)
		require.NoError(t, err)
		require.NotNil(t, stats.Current)
		assert.Equal(t, lastID, stats.Current.ID)
		assert.Equal(t, 0, stats.Current.TotalRW)
		assert.Nil(t, stats.Current.Notes)
		require.Len(t, stats.History, 4)
		assert.Equal(t, 2024, stats.History[0].Year)
		assert.Equal(t, []string{ViewAdminStatistics, ViewStatistics, ViewHome}, f.cache.last())
	})

	t.Run("Breakdowns", func(t *testing.T) {
		f := newFixture(t)

		in := validStats(2024)
		in.AgeGroups = `[{"age_group":"0-4","male_count":"5","female_count":"6"},{"age_group":"5-9","male_count":"","female_count":"0"}]`
		in.Occupations = `[{"occupation":"Petani","count":"8"},{"occupation":"Pedagang","count":20}]`
		in.Educations = `not json`

		_, err := f.manager.SaveStats(f.ctx, in)
		require.NoError(t, err)

		current, err := f.manager.CurrentStats(f.ctx)
		require.NoError(t, err)
		require.Len(t, current.Age, 1)
		assert.Equal(t, "0-4", current.Age[0].AgeGroup)
		require.Len(t, current.Occupations, 2)
		assert.Equal(t, "Pedagang", current.Occupations[0].Occupation)
		assert.Empty(t, current.Educations)
	})

	t.Run("BreakdownFailureIsSwallowed", func(t *testing.T) {
		f := newFixture(t)
		f.store.FailOn("InsertAgeDistribution", errors.New("fk violation"))

		in := validStats(2024)
		in.AgeGroups = `[{"age_group":"0-4","male_count":1,"female_count":1}]`
		in.Educations = `[{"level":"SMA","count":3}]`

		res, err := f.manager.SaveStats(f.ctx, in)
		require.NoError(t, err)

		current, err := f.manager.CurrentStats(f.ctx)
		require.NoError(t, err)
		assert.Equal(t, res.ID, current.ID)
		assert.Empty(t, current.Age)
		assert.Len(t, current.Educations, 1)
	})

	t.Run("SwapFailureKeepsPreviousCurrent", func(t *testing.T) {
		f := newFixture(t)

		first, err := f.manager.SaveStats(f.ctx, validStats(2023))
		require.NoError(t, err)

		f.store.FailOn("InsertCurrentStats", errors.New("serialization failure"))
		_, err = f.manager.SaveStats(f.ctx, validStats(2024))
		var storeErr *StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "Gagal: serialization failure", storeErr.Message)

		current, err := f.manager.CurrentStats(f.ctx)
		require.NoError(t, err)
		assert.Equal(t, first.ID, current.ID)
		assert.Equal(t, 1, f.store.CurrentCount())
	})

	t.Run("Validation", func(t *testing.T) {
		f := newFixture(t)

		in := validStats(2024)
		in.Year = FormInt{}
		_, err := f.manager.SaveStats(f.ctx, in)
		msg, ok := IsValidation(err)
		require.True(t, ok)
		assert.Equal(t, "Tahun dan total penduduk wajib diisi.", msg)

		in = validStats(2024)
		in.TotalPopulation = FormInt{}
		_, err = f.manager.SaveStats(f.ctx, in)
		_, ok = IsValidation(err)
		assert.True(t, ok)
		assert.Equal(t, 0, f.store.CurrentCount())
	})

	t.Run("NoCurrent", func(t *testing.T) {
		f := newFixture(t)

		current, err := f.manager.CurrentStats(f.ctx)
		require.NoError(t, err)
		assert.Nil(t, current)
	})
}
