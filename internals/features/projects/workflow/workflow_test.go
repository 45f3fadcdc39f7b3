package workflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressMappingIsTotal(t *testing.T) {
	require.Len(t, progressMapping, len(ProgressOrder))
	for _, p := range ProgressOrder {
		st, ok := progressMapping[p]
		require.True(t, ok, "missing stage for %q", p)
		assert.Equal(t, st, Lookup(p))
		assert.True(t, IsCanonicalProgress(p))
	}
}

func TestLookupDefaultsForBlank(t *testing.T) {
	assert.Equal(t, DefaultStage, Lookup(""))
	assert.Equal(t, DefaultStage, Lookup("   "))
	assert.Equal(t, Stage{Status: "PENDING", UIC: "PLANNING & DEPLOYMENT", Percentage: 0}, Lookup("NOT A STAGE"))
}

func TestLookupBast(t *testing.T) {
	assert.Equal(t, Stage{Status: StatusRFS, UIC: UICDeployment, Percentage: 85}, Lookup("BAST"))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	for _, r := range Regionals {
		assert.Equal(t, r, NormalizeRegional(r))
		assert.Equal(t, r, NormalizeRegional(NormalizeRegional(r)))
	}
	for _, p := range ProgressOrder {
		assert.Equal(t, p, NormalizeProgress(p))
	}
	for _, c := range CirculirStatuses {
		assert.Equal(t, c, NormalizeCirculir(c))
	}
}

func TestNumberPrefixStripping(t *testing.T) {
	cases := map[string]string{
		"18. BAST":  "BAST",
		"18 BAST":   "BAST",
		"18BAST":    "BAST",
		"3.  const": "CONST",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeProgress(in), in)
	}
	assert.Equal(t, "JABAR", NormalizeRegional("1.JABAR"))
	assert.Equal(t, "JABAR", NormalizeRegional(" 1. jabar "))
	assert.Equal(t, "JATIM", NormalizeRegional("5 jatim"))
	assert.Equal(t, "hold", NormalizeCirculir("2. HOLD "))
}

func TestNormalizeProgressCollapsesSpaces(t *testing.T) {
	assert.Equal(t, "APPROVED BOQ DRM", NormalizeProgress("approved   boq\tdrm"))
	assert.Equal(t, "", NormalizeProgress("   "))
}

func TestAliasResolution(t *testing.T) {
	want := map[string]string{
		"hold":               "PENDING / HOLD",
		"Pending":            "PENDING / HOLD",
		"cancel":             "REJECT",
		"CANCELLED":          "REJECT",
		"canceled":           "REJECT",
		"rfs":                "REKON",
		"ready  for service": "REKON",
		"Construction":       "CONST",
		"complete":           "DONE",
		"COMPLETED":          "DONE",
		"finish":             "DONE",
		"Finished":           "DONE",
		"deployment":         "DONE",
	}
	for alias, canonical := range want {
		got := NormalizeProgress(alias)
		assert.Equal(t, canonical, got, alias)
		assert.Equal(t, canonical, NormalizeProgress(got), "re-normalizing %q", got)
	}
	for alias, canonical := range Aliases() {
		assert.True(t, IsCanonicalProgress(canonical), "alias %q targets unknown %q", alias, canonical)
	}
}

func TestSuggestProgress(t *testing.T) {
	assert.Equal(t, "BAST", SuggestProgress("BASTX"))
	assert.Equal(t, "CREATED BOQ", SuggestProgress("CREATED"))
	assert.Equal(t, "COMMTEST", SuggestProgress("comm"))
	assert.Equal(t, "", SuggestProgress("XYZ"))
	assert.Equal(t, "", SuggestProgress(""))
}

func TestAuthorizeDivision(t *testing.T) {
	err := AuthorizeDivision("PLANNING", UICDeployment)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDivisionForbidden))

	err = AuthorizeDivision("deployment", UICPlanning)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDivisionForbidden))

	assert.NoError(t, AuthorizeDivision("DEPLOYMENT", UICDeployment))
	assert.NoError(t, AuthorizeDivision("PLANNING", UICPlanning))
	assert.NoError(t, AuthorizeDivision("PLANNING", UICBoth))
	assert.NoError(t, AuthorizeDivision("ADMIN", UICDeployment))
}
