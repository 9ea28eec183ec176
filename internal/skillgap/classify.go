package skillgap

import "github.com/alexanderramin/skillpath/internal/domain"

// Classify maps a proficiency value to its gap category.
func Classify(proficiency float64) domain.Category {
	switch {
	case proficiency >= 75:
		return domain.CategoryStrong
	case proficiency >= 50:
		return domain.CategoryModerate
	case proficiency >= 25:
		return domain.CategoryWeak
	default:
		return domain.CategoryMissing
	}
}

// NeedRank returns how urgently a category needs remediation.
// Strong sits two ranks below Moderate so nearly-mastered skills sink.
func NeedRank(c domain.Category) int {
	switch c {
	case domain.CategoryMissing:
		return 4
	case domain.CategoryWeak:
		return 3
	case domain.CategoryModerate:
		return 2
	default:
		return 0
	}
}
