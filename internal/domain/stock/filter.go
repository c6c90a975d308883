package stock

import (
	"strings"

	"github.com/sorawitt/spareparts-api/internal/domain/entity"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

// Matches reports whether a part passes the catalog view filter: a
// case-insensitive substring match of term against code, name, machine type
// or storage location (first hit wins), combined with the category filter.
// An empty term matches everything; category "all" (or empty) passes every
// category.
func Matches(p *entity.Part, term, category string) bool {
	if category != "" && category != CategoryAll && p.Category != category {
		return false
	}
	if term == "" {
		return true
	}
	t := strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Code), t) ||
		strings.Contains(strings.ToLower(p.Name), t) ||
		strings.Contains(strings.ToLower(p.MachineType), t) ||
		strings.Contains(strings.ToLower(p.StorageLocation), t)
}
