package engine

type Options struct {
	// transposition table size in megabytes
	Hash int
	// search depth in plies
	Depth int
	// side the engine plays when the caller does not say
	WhiteSide bool
}

func NewOptions() Options {
	return Options{
		Hash:      16,
		Depth:     5,
		WhiteSide: false,
	}
}
