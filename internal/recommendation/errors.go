package recommendation

import "errors"

var (
	ErrInvalidLocation = errors.New("invalid location, expected \"lat,lon\"")
)
