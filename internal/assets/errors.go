package assets

import "errors"

var (
	// ErrNotFound indicates no file exists for any candidate path of a part.
	ErrNotFound = errors.New("assets: asset not found")
	// ErrDecode indicates a file exists but could not be decoded.
	ErrDecode = errors.New("assets: asset not decodable")
)
