package state

import "taskboard-client/internal/domain"

func reduceFavorites(s FavoritesState, a Action) FavoritesState {
	switch a := a.(type) {
	case LoadFavorites:
		all := make(map[int]domain.Favorite, len(a.Favorites))
		for _, f := range a.Favorites {
			all[f.ID] = f
		}
		return FavoritesState{UserFavorites: all}

	case AddFavorite:
		all := cloneMap(s.UserFavorites)
		all[a.Favorite.ID] = a.Favorite
		return FavoritesState{UserFavorites: all}

	case RemoveFavorite:
		all := cloneMap(s.UserFavorites)
		delete(all, a.ID)
		return FavoritesState{UserFavorites: all}
	}
	return s
}
