package state

import "taskboard-client/internal/domain"

func reduceSections(s SectionsState, a Action) SectionsState {
	switch a := a.(type) {
	case LoadSections:
		all := make(map[int]domain.Section, len(a.Sections))
		for _, sec := range a.Sections {
			all[sec.ID] = sec
		}
		return SectionsState{BoardSections: all}

	case AddSection:
		all := cloneMap(s.BoardSections)
		all[a.Section.ID] = a.Section
		return SectionsState{BoardSections: all}

	case UpdateSection:
		all := cloneMap(s.BoardSections)
		all[a.Section.ID] = a.Section
		return SectionsState{BoardSections: all}

	case RemoveSection:
		all := cloneMap(s.BoardSections)
		delete(all, a.ID)
		return SectionsState{BoardSections: all}
	}
	return s
}
