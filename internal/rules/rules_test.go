package rules

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/casecalc/internal/cache"
	"github.com/ppiankov/casecalc/internal/model"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDefault_Parses(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)

	assert.Len(t, b.PersonalInjurySOL, 51, "50 states plus DC")
	assert.Len(t, b.WrongfulDeathSOL, 51)
	assert.Equal(t, "1.0.0", b.Version)
}

func TestBook_Lookups(t *testing.T) {
	b := MustDefault()

	r, ok := b.PersonalInjury("ca")
	require.True(t, ok, "lookup is case-insensitive")
	assert.Equal(t, "CA", r.Code)
	assert.Equal(t, 2, r.Years)

	r, ok = b.PersonalInjury("ME")
	require.True(t, ok)
	assert.Equal(t, 6, r.Years)

	wd, ok := b.WrongfulDeath("NY")
	require.True(t, ok)
	assert.Equal(t, 2, wd.Years)
	assert.Equal(t, "2 years from death", wd.Description)

	_, ok = b.PersonalInjury("ZZ")
	assert.False(t, ok)
	assert.False(t, b.IsKnownJurisdiction("ZZ"))
}

func TestBook_DamagesCap(t *testing.T) {
	b := MustDefault()

	tx, ok := b.DamagesCap("TX")
	require.True(t, ok)
	assert.Equal(t, CapNonEconomic, tx.Category)
	assert.True(t, tx.Limit.Equal(d("250000")))
	assert.True(t, tx.Category.LimitsNonEconomic())

	nc, ok := b.DamagesCap("NC")
	require.True(t, ok)
	assert.Equal(t, CapPunitiveRatio, nc.Category)
	assert.False(t, nc.Category.LimitsNonEconomic())

	_, ok = b.DamagesCap("NY")
	assert.False(t, ok, "absent key means no statutory cap")
}

func TestPunitiveRule_Ceiling(t *testing.T) {
	b := MustDefault()

	tests := []struct {
		code         string
		compensatory string
		want         string
	}{
		{"CO", "300000", "300000"},  // ratio 1x
		{"FL", "100000", "500000"},  // floor wins
		{"FL", "400000", "1200000"}, // ratio wins
		{"GA", "1000000", "250000"}, // flat
		{"NC", "50000", "250000"},   // floor wins
		{"NC", "200000", "600000"},  // ratio wins
		{"VA", "10", "350000"},      // flat
	}

	for _, tt := range tests {
		t.Run(tt.code+"_"+tt.compensatory, func(t *testing.T) {
			r, ok := b.PunitiveCap(tt.code)
			require.True(t, ok)
			got := r.Ceiling(d(tt.compensatory))
			assert.True(t, got.Equal(d(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestBook_HasStateAgency(t *testing.T) {
	b := MustDefault()

	assert.True(t, b.HasStateAgency("CA"))
	assert.True(t, b.HasStateAgency("dc"))
	assert.False(t, b.HasStateAgency("AL"))
	assert.False(t, b.HasStateAgency("GA"))
}

func TestBook_AgeBand(t *testing.T) {
	b := MustDefault()

	tests := []struct {
		age  int
		want string
		note bool
	}{
		{0, "1.3", true},
		{17, "1.3", true},
		{18, "1.2", false},
		{39, "1.2", false},
		{40, "1", false},
		{59, "1", false},
		{60, "0.9", false},
		{120, "0.9", false},
	}

	for _, tt := range tests {
		band := b.AgeBand(tt.age)
		assert.True(t, band.Factor.Equal(d(tt.want)), "age %d: got %s want %s", tt.age, band.Factor, tt.want)
		assert.Equal(t, tt.note, band.Note != "", "age %d note", tt.age)
	}
}

func TestBook_Jurisdictions_Sorted(t *testing.T) {
	codes := MustDefault().Jurisdictions()
	require.Len(t, codes, 51)
	assert.Equal(t, "AK", codes[0])
	assert.Equal(t, "WY", codes[len(codes)-1])
}

func TestParse_Errors(t *testing.T) {
	valid := string(Embedded())

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"malformed", "personal_injury_sol: [", "parse rule book"},
		{"empty", "version: x\n", "no personal_injury_sol"},
		{
			"bad cap category",
			strings.Replace(valid, "category: non_economic, limit: 250000, description: \"$250K cap per defendant\"", "category: bogus, limit: 250000, description: \"x\"", 1),
			"unknown category",
		},
		{
			"bad punitive kind",
			strings.Replace(valid, "GA: {kind: flat", "GA: {kind: weird", 1),
			"unknown kind",
		},
		{
			"fee tiers out of order",
			strings.Replace(valid, "{above: 500000, amount: 200000", "{above: 50000, amount: 200000", 1),
			"ascending",
		},
		{
			"ratio guard mid above high",
			strings.Replace(valid, "    mid_ratio: 4\n", "    mid_ratio: 12\n", 1),
			"mid_ratio must not exceed high_ratio",
		},
		{
			"missing fallback conduct",
			strings.Replace(valid, "    reckless: {low: 0.5, mid: 1.0, high: 2.0}\n", "", 1),
			"fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRegistry_EmbeddedAndFile(t *testing.T) {
	mem := cache.NewMemoryCache(time.Minute, time.Minute)
	reg := NewRegistry(mem, nil)

	def, err := reg.Book("")
	require.NoError(t, err)
	assert.Same(t, MustDefault(), def)

	// Override book: Alabama extended to 5 years.
	custom := strings.Replace(string(Embedded()), `AL: {years: 2, description: "Alabama - 2 years"}`, `AL: {years: 5, description: "Alabama - 5 years (test)"}`, 1)
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(custom), 0644))

	first, err := reg.Book(path)
	require.NoError(t, err)
	al, _ := first.PersonalInjury("AL")
	assert.Equal(t, 5, al.Years)

	second, err := reg.Book(path)
	require.NoError(t, err)
	assert.Same(t, first, second, "second load should come from cache")
	assert.Equal(t, 1, mem.Len())
}

func TestRegistry_MissingFile(t *testing.T) {
	reg := NewRegistry(nil, nil)
	_, err := reg.Book(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestProfiles_CoverAllClaimTypes(t *testing.T) {
	for _, ct := range model.AllClaimTypes {
		p, ok := Profile(ct)
		require.True(t, ok, "missing profile for %s", ct)
		assert.Equal(t, ct, p.Type)
		assert.NotEmpty(t, p.Label)
	}

	p, _ := Profile(model.ClaimStateTort)
	assert.False(t, p.FeeShifting())
	p, _ = Profile(model.ClaimSection1983)
	assert.True(t, p.FeeShifting())
	assert.True(t, p.PunitiveAvailable)

	for _, ct := range []model.ClaimType{model.ClaimADA, model.ClaimADATitleI, model.ClaimADATitleII, model.ClaimADATitleIII} {
		p, _ := Profile(ct)
		assert.False(t, p.PunitiveAvailable, "%s should not allow punitive damages", ct)
	}
}

func TestBook_Summary(t *testing.T) {
	b := MustDefault()

	fl, ok := b.Summary("fl")
	require.True(t, ok)
	assert.Equal(t, "FL", fl.Code)
	assert.Equal(t, 4, fl.PersonalInjury.Years)
	require.NotNil(t, fl.WrongfulDeath)
	require.NotNil(t, fl.DamagesCap)
	assert.Equal(t, CapMedicalMalpractice, fl.DamagesCap.Category)
	require.NotNil(t, fl.PunitiveCap)
	assert.Equal(t, PunitiveRatioOrFloor, fl.PunitiveCap.Kind)
	assert.True(t, fl.StateAgency)
	assert.Equal(t, 300, fl.ChargeWindowDays)

	al, ok := b.Summary("AL")
	require.True(t, ok)
	assert.Nil(t, al.DamagesCap)
	assert.Nil(t, al.PunitiveCap)
	assert.False(t, al.StateAgency)
	assert.Equal(t, 180, al.ChargeWindowDays)

	_, ok = b.Summary("ZZ")
	assert.False(t, ok)

	all := b.Summaries()
	require.Len(t, all, 51)
	assert.Equal(t, "AK", all[0].Code)
}
