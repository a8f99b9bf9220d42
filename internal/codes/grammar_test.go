package codes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nosvasedis/iliosDB-sub004/internal/model"
)

func TestDecodeEmptySuffixIsBaseVariant(t *testing.T) {
	d := DecodeSuffix("", model.Women)
	assert.Nil(t, d.Finish)
	assert.Nil(t, d.Stone)
	assert.Empty(t, d.Residual)
}

func TestDecodeFinishAndStone(t *testing.T) {
	d := DecodeSuffix("XKR", model.Women)
	require.NotNil(t, d.Finish)
	require.NotNil(t, d.Stone)
	assert.Equal(t, "X", d.Finish.Code)
	assert.Equal(t, "KR", d.Stone.Code)
	assert.Empty(t, d.Residual)
}

func TestDecodeLongestFinishPrefixWins(t *testing.T) {
	// "XB" must not be read as finish "X" plus residual "B...".
	d := DecodeSuffix("XBKR", model.Women)
	require.NotNil(t, d.Finish)
	assert.Equal(t, "XB", d.Finish.Code)
	require.NotNil(t, d.Stone)
	assert.Equal(t, "KR", d.Stone.Code)
}

func TestDecodeTieBreakFinishBeforeStone(t *testing.T) {
	// "R" is both a finish (rose gold-plated) and a women's stone (ruby).
	// Finish is checked first; the finish reading must win.
	d := DecodeSuffix("R", model.Women)
	require.NotNil(t, d.Finish)
	assert.Equal(t, "R", d.Finish.Code)
	assert.Equal(t, Finish, d.Finish.Kind)
	assert.Nil(t, d.Stone)
}

func TestDecodePreservesUnclassifiedResidual(t *testing.T) {
	// Trailing size codes are opaque qualifiers, not errors.
	d := DecodeSuffix("XKR52", model.Women)
	require.NotNil(t, d.Finish)
	require.NotNil(t, d.Stone)
	assert.Equal(t, "52", d.Residual)

	d = DecodeSuffix("54", model.Men)
	assert.Nil(t, d.Finish)
	assert.Nil(t, d.Stone)
	assert.Equal(t, "54", d.Residual)
}

func TestDecodeStoneVocabularyIsGenderScoped(t *testing.T) {
	men := DecodeSuffix("ON", model.Men)
	require.NotNil(t, men.Stone)
	assert.Equal(t, "Onyx", men.Stone.Name)

	women := DecodeSuffix("ON", model.Women)
	assert.Nil(t, women.Stone)
	assert.Equal(t, "ON", women.Residual)

	unisex := DecodeSuffix("ON", model.Unisex)
	require.NotNil(t, unisex.Stone)
	assert.Equal(t, "Onyx", unisex.Stone.Name)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, gender := range []model.Gender{model.Men, model.Women, model.Unisex} {
		for _, finish := range FinishTokens() {
			for _, stone := range StoneTokens(gender) {
				f, s := finish, stone
				suffix := EncodeSuffix(&f, &s)
				d := DecodeSuffix(suffix, gender)
				require.NotNilf(t, d.Finish, "%s/%s: finish lost", gender, suffix)
				require.NotNilf(t, d.Stone, "%s/%s: stone lost", gender, suffix)
				assert.Equal(t, f.Code, d.Finish.Code)
				assert.Equal(t, s.Code, d.Stone.Code)
				assert.Empty(t, d.Residual)
			}
		}
	}
}

func TestDescribeSuffix(t *testing.T) {
	label, ok := DescribeSuffix("XKR", model.Women)
	require.True(t, ok)
	assert.Equal(t, "Gold-plated, Crystal", label)

	label, ok = DescribeSuffix("PE", model.Women)
	require.True(t, ok)
	assert.Equal(t, "Pearl", label)

	_, ok = DescribeSuffix("52", model.Women)
	assert.False(t, ok)
}

func TestIsVariantOf(t *testing.T) {
	ok, suffix := IsVariantOf("RN200XKR", "RN200")
	assert.True(t, ok)
	assert.Equal(t, "XKR", suffix)

	// Identical code is the master itself, not a variant.
	ok, _ = IsVariantOf("RN200", "RN200")
	assert.False(t, ok)

	ok, _ = IsVariantOf("DA100", "RN200")
	assert.False(t, ok)

	ok, _ = IsVariantOf("RN200XKR", "")
	assert.False(t, ok)
}
