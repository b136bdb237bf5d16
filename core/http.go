package core

type HTTPAdapter interface {
	RegisterRoutes(gym *Gym) error
}

// RankingHandler provides ranking operations for HTTP adapters.
type RankingHandler interface {
	Recompute()
	Rank(username string) (*int, error)
	Share(username string) (string, error)
}
