package state

import "taskboard-client/internal/domain"

func reduceBoards(s BoardsState, a Action) BoardsState {
	switch a := a.(type) {
	case LoadBoards:
		// A bulk fetch is authoritative for membership: ids absent from
		// the list are dropped. SingleBoard is left as-is.
		all := make(map[int]domain.Board, len(a.Boards))
		for _, b := range a.Boards {
			all[b.ID] = b
		}
		return BoardsState{AllBoards: all, SingleBoard: s.SingleBoard}

	case AddBoard:
		all := cloneMap(s.AllBoards)
		all[a.Board.ID] = a.Board
		return BoardsState{AllBoards: all, SingleBoard: s.SingleBoard}

	case UpdateBoard:
		all := cloneMap(s.AllBoards)
		all[a.Board.ID] = a.Board
		board := a.Board
		return BoardsState{AllBoards: all, SingleBoard: &board}

	case RemoveBoard:
		all := cloneMap(s.AllBoards)
		delete(all, a.ID)
		single := s.SingleBoard
		if single != nil && single.ID == a.ID {
			single = nil
		}
		return BoardsState{AllBoards: all, SingleBoard: single}
	}
	return s
}
