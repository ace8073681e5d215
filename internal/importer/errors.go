package importer

import "errors"

var (
	ErrNoDirectory  = errors.New("import directory is required")
	ErrNotDirectory = errors.New("import path is not a directory")
)
