package optimizer

import (
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
)

const (
	maxTechnicalAdds = 5
	maxSoftAdds      = 3
)

// OptimizeSkills appends up to five missing technical and three missing soft
// job keywords to the comma-joined skill strings. A keyword counts as present
// when it is a case-insensitive substring of the existing string.
func OptimizeSkills(technical, soft string, ks *types.KeywordSet) (string, string, []types.Change) {
	changes := []types.Change{}
	if ks == nil {
		return technical, soft, changes
	}

	if missing := missingFrom(technical, ks.Technical, maxTechnicalAdds); len(missing) > 0 {
		added := strings.Join(missing, ", ")
		technical = appendList(technical, added)
		changes = append(changes, types.Change{
			Type:     types.ChangeAdded,
			Section:  SectionSkills,
			Text:     "Added missing skills: " + added,
			Keywords: missing,
		})
	}

	if missing := missingFrom(soft, ks.Soft, maxSoftAdds); len(missing) > 0 {
		added := strings.Join(missing, ", ")
		soft = appendList(soft, added)
		changes = append(changes, types.Change{
			Type:     types.ChangeAdded,
			Section:  SectionSkills,
			Text:     "Added soft skills: " + added,
			Keywords: missing,
		})
	}

	return technical, soft, changes
}

func appendList(list, more string) string {
	if list == "" {
		return more
	}
	return list + ", " + more
}
