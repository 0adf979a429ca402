package api

import "Kazuru/internal/api/handler"

// HandlersGroup bundles every initialized handler instance.
type HandlersGroup struct {
	UserHandler   *handler.UserHandler
	PostHandler   *handler.PostHandler
	TagHandler    *handler.TagHandler
	UploadHandler *handler.UploadHandler
	MediaHandler  *handler.MediaHandler
	LegacyHandler *handler.LegacyHandler
}
