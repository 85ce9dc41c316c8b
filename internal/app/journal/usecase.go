package journal

import (
	"context"
	"errors"

	"farmstead/internal/app/ports"
	"farmstead/internal/domain/farm"
)

var ErrInvalidRequest = errors.New("invalid journal request")

const defaultLimit = 50

// UseCase lists a player's recent domain events.
type UseCase struct {
	Events ports.EventRepository
}

type Request struct {
	PlayerID string
	Limit    int
}

type Response struct {
	Events []farm.Event `json:"events"`
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	playerID, err := farm.NewPlayerID(req.PlayerID)
	if err != nil {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	events, err := u.Events.ListByPlayerID(ctx, playerID, limit)
	if err != nil {
		return Response{}, err
	}
	return Response{Events: events}, nil
}
