package http

import (
	"errors"
	"net/http"

	"voice-memos/internal/memo"
	repo "voice-memos/internal/memo/repository"
	pkgErrors "voice-memos/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Use cases wrap sentinels with the offending name, so the wrapped message is kept.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, memo.ErrNoNames),
		errors.Is(err, memo.ErrInvalidName):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, memo.ErrMemoNotFound),
		errors.Is(err, memo.ErrAudioFileMissing):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, repo.ErrAlreadyExists):
		return pkgErrors.NewHTTPError(http.StatusConflict, "a memo with the merged name already exists")
	case errors.Is(err, repo.ErrStaleRecords):
		return pkgErrors.NewHTTPError(http.StatusConflict, "memos changed while merging, reload and retry")
	case errors.Is(err, memo.ErrInvalidLabel):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, memo.ErrUnsupportedPlatform),
		errors.Is(err, memo.ErrThingsNotInstalled):
		return pkgErrors.NewHTTPError(http.StatusNotImplemented, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
