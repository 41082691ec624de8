package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllAgeGroupsUrutanTetap(t *testing.T) {
	assert.Equal(t, []AgeGroup{AgeGroupInfant, AgeGroupToddler, AgeGroupPreschool, AgeGroupSchoolAge}, AllAgeGroups())
}

func TestAgeGroupDefaultRatio(t *testing.T) {
	assert.Equal(t, 5, AgeGroupInfant.DefaultRatio())
	assert.Equal(t, 8, AgeGroupToddler.DefaultRatio())
	assert.Equal(t, 10, AgeGroupPreschool.DefaultRatio())
	assert.Equal(t, 20, AgeGroupSchoolAge.DefaultRatio())
}

func TestParseAgeGroup(t *testing.T) {
	g, err := ParseAgeGroup("toddler")
	require.NoError(t, err)
	assert.Equal(t, AgeGroupToddler, g)

	_, err = ParseAgeGroup("teenager")
	require.Error(t, err, "label tak dikenal ditolak, bukan fallback diam-diam")

	_, err = ParseAgeGroup("")
	require.Error(t, err)
}

func TestBucketKeyDanLabel(t *testing.T) {
	facility := Bucket{AgeGroup: AgeGroupInfant}
	assert.Equal(t, "infant", facility.Key())
	assert.Equal(t, "Infant", facility.DisplayLabel())

	room := Bucket{AgeGroup: AgeGroupToddler, RoomName: "Melati"}
	assert.Equal(t, "toddler@Melati", room.Key())
	assert.Equal(t, "Toddler - Melati", room.DisplayLabel())
}

func TestThresholdConfigRequiredRatio(t *testing.T) {
	cfg := ThresholdConfig{RequiredRatios: map[AgeGroup]int{
		AgeGroupInfant:  4,
		AgeGroupToddler: 0,  // invalid: di bawah 1
		AgeGroupPreschool: 99, // invalid: di atas 50
	}}

	r, usedDefault := cfg.RequiredRatio(AgeGroupInfant)
	assert.Equal(t, 4, r)
	assert.False(t, usedDefault)

	r, usedDefault = cfg.RequiredRatio(AgeGroupToddler)
	assert.Equal(t, 8, r)
	assert.True(t, usedDefault)

	r, usedDefault = cfg.RequiredRatio(AgeGroupPreschool)
	assert.Equal(t, 10, r)
	assert.True(t, usedDefault)

	// tidak terkonfigurasi sama sekali → default
	r, usedDefault = cfg.RequiredRatio(AgeGroupSchoolAge)
	assert.Equal(t, 20, r)
	assert.True(t, usedDefault)
}
