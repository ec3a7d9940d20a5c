package glicko

import "errors"

var (
	ErrDuplicatePlayer  = errors.New("player with this id already exists")
	ErrPlayerNotFound   = errors.New("player with this id does not exist")
	ErrInvalidParameter = errors.New("invalid rating parameter")
)
