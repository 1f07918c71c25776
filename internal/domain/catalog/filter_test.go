package catalog

import (
	"strings"
	"testing"

	"pet-friendly-stays/internal/domain/pets"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T) []Accommodation {
	t.Helper()
	items, err := Seed()
	require.NoError(t, err)
	require.Len(t, items, 6)
	return items
}

func ids(items []Accommodation) []string {
	out := make([]string, 0, len(items))
	for _, a := range items {
		out = append(out, a.ID)
	}
	return out
}

func TestFilter_NoCriteriaReturnsFullCatalogInOrder(t *testing.T) {
	items := seedCatalog(t)
	assert.Equal(t, ids(items), ids(Filter(items, SearchCriteria{})))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	items := seedCatalog(t)
	before := ids(items)

	_ = Filter(items, SearchCriteria{Location: "gangwon", PetSize: pets.SizeSmall})
	assert.Equal(t, before, ids(items))
}

func TestFilter_LocationCaseInsensitiveSubstring(t *testing.T) {
	items := seedCatalog(t)

	for _, loc := range []string{"gangwon", "GANGNEUNG", "seoul", "-do", "nowhere"} {
		got := Filter(items, SearchCriteria{Location: loc})
		kept := map[string]bool{}
		for _, a := range got {
			kept[a.ID] = true
			assert.Contains(t, strings.ToLower(a.Location), strings.ToLower(loc))
		}
		for _, a := range items {
			if !kept[a.ID] {
				assert.NotContains(t, strings.ToLower(a.Location), strings.ToLower(loc))
			}
		}
	}

	assert.Equal(t, []string{"1", "6"}, ids(Filter(items, SearchCriteria{Location: "Gangwon"})))
}

func TestFilter_PetSizeAndAgeTagMembership(t *testing.T) {
	items := seedCatalog(t)

	assert.Equal(t, []string{"1", "3", "5", "6"}, ids(Filter(items, SearchCriteria{PetSize: pets.SizeSmall})))
	assert.Equal(t, []string{"2", "3", "5"}, ids(Filter(items, SearchCriteria{PetAge: pets.AgePuppy})))
	assert.Equal(t, []string{"3", "5"}, ids(Filter(items, SearchCriteria{PetSize: pets.SizeSmall, PetAge: pets.AgePuppy})))
}

func TestFilter_PriceRangeUsesBasePrice(t *testing.T) {
	items := seedCatalog(t)

	// 180,000 + 30,000 de tarifa: entra en 100-200 por el precio base.
	got := Filter(items, SearchCriteria{PriceRange: ParsePriceRange("100-200")})
	assert.Contains(t, ids(got), "1")
	assert.Equal(t, []string{"1", "2", "5", "6"}, ids(got))

	for _, a := range got {
		assert.GreaterOrEqual(t, a.Price, int64(100*PriceUnit))
		assert.LessOrEqual(t, a.Price, int64(200*PriceUnit))
	}
}

func TestFilter_PriceRangeScenario(t *testing.T) {
	resort := Accommodation{ID: "x", Price: 180000, PetFee: 30000}
	got := Filter([]Accommodation{resort}, SearchCriteria{PriceRange: ParsePriceRange("100-200")})
	require.Len(t, got, 1)
	assert.Equal(t, int64(210000), got[0].TotalNightlyCost())
}

func TestFilter_OpenEndedPriceRange(t *testing.T) {
	items := seedCatalog(t)

	got := Filter(items, SearchCriteria{PriceRange: ParsePriceRange("200+")})
	assert.Equal(t, []string{"3"}, ids(got))

	got = Filter(items, SearchCriteria{PriceRange: ParsePriceRange("0-100")})
	assert.Equal(t, []string{"4"}, ids(got))
}

func TestFilter_AmenitiesAnyOfSubstrings(t *testing.T) {
	items := seedCatalog(t)

	assert.Equal(t, []string{"1", "3"}, ids(Filter(items, SearchCriteria{Amenities: []string{"pool"}})))
	assert.Equal(t, []string{"3", "5"}, ids(Filter(items, SearchCriteria{Amenities: []string{"grooming", "xyz"}})))
	assert.Empty(t, Filter(items, SearchCriteria{Amenities: []string{"helipad"}}))

	// Etiquetas en blanco no filtran.
	assert.Len(t, Filter(items, SearchCriteria{Amenities: []string{"", "  "}}), 6)
}

func TestFilter_CriteriaCombineWithAND(t *testing.T) {
	items := seedCatalog(t)

	got := Filter(items, SearchCriteria{
		Location:   "gangwon",
		PetSize:    pets.SizeLarge,
		PriceRange: ParsePriceRange("100-150"),
		Amenities:  []string{"playground"},
	})
	assert.Equal(t, []string{"6"}, ids(got))
}

func TestParsePriceRange(t *testing.T) {
	cases := map[string]PriceRange{
		"0-100":   {Min: 0, Max: 100, Set: true},
		"100-200": {Min: 100, Max: 200, Set: true},
		" 300+ ":  {Min: 300, Open: true, Set: true},
		"":        {},
		"abc":     {},
		"200-100": {},
		"-5-10":   {},
		"10":      {},
	}
	for in, want := range cases {
		assert.Equal(t, want, ParsePriceRange(in), "input %q", in)
	}

	assert.Equal(t, "100-200", ParsePriceRange("100-200").String())
	assert.Equal(t, "300+", ParsePriceRange("300+").String())
	assert.True(t, PriceRange{}.Contains(-1))
}

func TestSort(t *testing.T) {
	items := seedCatalog(t)

	assert.Equal(t, ids(items), ids(Sort(items, SortRecommended)))
	assert.Equal(t, []string{"4", "6", "2", "5", "1", "3"}, ids(Sort(items, SortPriceAsc)))
	assert.Equal(t, []string{"3", "1", "5", "2", "6", "4"}, ids(Sort(items, SortPriceDesc)))
	assert.Equal(t, []string{"3", "1", "5", "2", "6", "4"}, ids(Sort(items, SortRating)))
	assert.Equal(t, "3", Sort(items, SortPetFriendly)[0].ID)

	assert.Equal(t, SortRecommended, ParseSortKey("bogus"))
	assert.Equal(t, SortPriceAsc, ParseSortKey(" PRICE_ASC "))
}

func TestGradeScore(t *testing.T) {
	assert.Equal(t, "excellent", GradeScore(4.5).Level)
	assert.Equal(t, "very_good", GradeScore(4.4).Level)
	assert.Equal(t, "average", GradeScore(3.5).Level)
	assert.Equal(t, "needs_improvement", GradeScore(3.49).Level)
}

func TestParseSeed_RejectsDuplicates(t *testing.T) {
	_, err := ParseSeed([]byte("- id: \"1\"\n- id: \"1\"\n"))
	assert.Error(t, err)

	_, err = ParseSeed([]byte("- id: \"1\"\n  pet_friendly_score: 7\n"))
	assert.Error(t, err)
}

func TestParseSeed_WrapsYAMLError(t *testing.T) {
	_, err := ParseSeed([]byte("- id: [unclosed"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "catalog seed: "))
	assert.NotEqual(t, err, errors.Cause(err), "yaml error must be wrapped")
}
