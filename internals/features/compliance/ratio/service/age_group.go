// internals/features/compliance/ratio/service/age_group.go
package service

import "github.com/gofiber/fiber/v2"

// AgeGroup adalah enumerasi tertutup kelompok usia anak.
// Rasio wajib (anak per staf) default mengikuti regulasi; bisa
// di-override per fasilitas lewat compliance_settings.
type AgeGroup string

const (
	AgeGroupInfant    AgeGroup = "infant"
	AgeGroupToddler   AgeGroup = "toddler"
	AgeGroupPreschool AgeGroup = "preschool"
	AgeGroupSchoolAge AgeGroup = "school_age"
)

type ageGroupInfo struct {
	Label        string
	AgeRange     string
	DefaultRatio int
}

var ageGroupInfos = map[AgeGroup]ageGroupInfo{
	AgeGroupInfant:    {Label: "Infant", AgeRange: "0-12 bulan", DefaultRatio: 5},
	AgeGroupToddler:   {Label: "Toddler", AgeRange: "1-3 tahun", DefaultRatio: 8},
	AgeGroupPreschool: {Label: "Preschool", AgeRange: "3-5 tahun", DefaultRatio: 10},
	AgeGroupSchoolAge: {Label: "School Age", AgeRange: "5 tahun ke atas", DefaultRatio: 20},
}

// AllAgeGroups urutan tetap (dipakai saat enumerasi pass & laporan).
func AllAgeGroups() []AgeGroup {
	return []AgeGroup{AgeGroupInfant, AgeGroupToddler, AgeGroupPreschool, AgeGroupSchoolAge}
}

func (g AgeGroup) Valid() bool {
	_, ok := ageGroupInfos[g]
	return ok
}

func (g AgeGroup) Label() string {
	return ageGroupInfos[g].Label
}

func (g AgeGroup) AgeRange() string {
	return ageGroupInfos[g].AgeRange
}

// DefaultRatio = rasio statutori untuk kelompok usia ini.
func (g AgeGroup) DefaultRatio() int {
	return ageGroupInfos[g].DefaultRatio
}

// ParseAgeGroup menolak label tak dikenal (bukan fallback diam-diam).
func ParseAgeGroup(s string) (AgeGroup, error) {
	g := AgeGroup(s)
	if !g.Valid() {
		return "", fiber.NewError(fiber.StatusBadRequest, "Kelompok usia tidak dikenal: "+s)
	}
	return g, nil
}
