package core

import "errors"

var (
	ErrInvalidStateShape   = errors.New("state length does not match configured agent counts")
	ErrInvalidActionShape  = errors.New("invalid action shape")
	ErrInvalidActionIndex  = errors.New("action index out of range")
	ErrInactiveAgent       = errors.New("agent is no longer in play")
	ErrInvalidRabbitPolicy = errors.New("unrecognized rabbit policy")
	ErrEpisodeOver         = errors.New("episode is over")
)
