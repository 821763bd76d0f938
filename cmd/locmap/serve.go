package main

import (
	"fmt"

	"github.com/fwojciec/locmap/fiber"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	s := fiber.NewServer()
	s.Addr = deps.Config.Server.Addr
	if c.Addr != "" {
		s.Addr = c.Addr
	}
	s.Sites = deps.Sites
	s.Locator = deps.Locator
	s.Cache = deps.Cache
	s.Logger = deps.Logger

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", s.Addr)
	return s.ListenAndServe(deps.Ctx)
}
