package selection

const (
	// MaxJobSkills is how many ranked job skills are considered
	MaxJobSkills = 50
	// MinConfirmedSkills is the intersection size below which job skills are backfilled
	MinConfirmedSkills = 10
	// MaxSelectedSkills caps the selected skill list
	MaxSelectedSkills = 15
)

// SelectSkills picks skill ids for a resume. Job-ranked skills the user has
// confirmed come first in job rank order; when fewer than MinConfirmedSkills
// are confirmed, the remaining job skills backfill up to MaxSelectedSkills.
func SelectSkills(jobSkillIDs []string, confirmed map[string]bool) []string {
	if len(jobSkillIDs) > MaxJobSkills {
		jobSkillIDs = jobSkillIDs[:MaxJobSkills]
	}

	selected := make([]string, 0, MaxSelectedSkills)
	inSelected := make(map[string]bool)
	for _, id := range jobSkillIDs {
		if len(selected) >= MaxSelectedSkills {
			break
		}
		if confirmed[id] && !inSelected[id] {
			selected = append(selected, id)
			inSelected[id] = true
		}
	}

	if len(selected) >= MinConfirmedSkills {
		return selected
	}

	for _, id := range jobSkillIDs {
		if len(selected) >= MaxSelectedSkills {
			break
		}
		if !inSelected[id] {
			selected = append(selected, id)
			inSelected[id] = true
		}
	}
	return selected
}

// ResolveSkillNames maps skill ids to catalog names. Ids missing from the
// catalog are shown as the raw id and also returned in unresolved.
func ResolveSkillNames(ids []string, names map[string]string) (resolved, unresolved []string) {
	resolved = make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := names[id]; ok && name != "" {
			resolved = append(resolved, name)
			continue
		}
		resolved = append(resolved, id)
		unresolved = append(unresolved, id)
	}
	return resolved, unresolved
}
