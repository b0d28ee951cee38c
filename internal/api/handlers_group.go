package api

import "mysonai/internal/api/handler"

// HandlersGroup bundles the initialized handler instances.
type HandlersGroup struct {
	ChatHandler    *handler.ChatHandler
	UserHandler    *handler.UserHandler
	BlogHandler    *handler.BlogHandler
	ContactHandler *handler.ContactHandler
	AdminHandler   *handler.AdminHandler
}
