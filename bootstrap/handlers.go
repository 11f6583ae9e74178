package bootstrap

import "go_trustedbot_backend/handlers"

type Handlers struct {
	ChatHandler *handlers.ChatHandler
	WSHandler   *handlers.WSHandler
}

func NewHandlers(services *Services, infra *Infrastructure) *Handlers {
	res := &Handlers{}
	c := handlers.NewChatHandler(services.ChatService)
	res.ChatHandler = c
	w := handlers.NewWSHandler(infra.EventPublisher)
	res.WSHandler = w
	return res
}
