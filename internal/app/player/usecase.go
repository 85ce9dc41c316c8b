package player

import (
	"context"
	"errors"
	"time"

	"farmstead/internal/app/ports"
	"farmstead/internal/domain/farm"
)

var ErrInvalidRequest = errors.New("invalid player request")

type UseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Events    ports.EventRepository
	Sink      ports.EventSink
	Now       func() time.Time
}

type MoneyRequest struct {
	PlayerID string
	Amount   int
}

type Response struct {
	Player farm.Player  `json:"player"`
	Events []farm.Event `json:"events,omitempty"`
}

func (u UseCase) Get(ctx context.Context, playerID string) (Response, error) {
	id, err := farm.NewPlayerID(playerID)
	if err != nil {
		return Response{}, ErrInvalidRequest
	}
	p, err := u.Players.GetPlayer(ctx, id)
	if err != nil {
		return Response{}, err
	}
	return Response{Player: p}, nil
}

func (u UseCase) EarnMoney(ctx context.Context, req MoneyRequest) (Response, error) {
	return u.adjustMoney(ctx, req, func(m farm.Money) (farm.Money, error) {
		amount, err := farm.NewMoney(req.Amount)
		if err != nil {
			return m, ErrInvalidRequest
		}
		return m.Add(amount), nil
	})
}

func (u UseCase) SpendMoney(ctx context.Context, req MoneyRequest) (Response, error) {
	return u.adjustMoney(ctx, req, func(m farm.Money) (farm.Money, error) {
		amount, err := farm.NewMoney(req.Amount)
		if err != nil {
			return m, ErrInvalidRequest
		}
		return m.Subtract(amount)
	})
}

func (u UseCase) adjustMoney(ctx context.Context, req MoneyRequest, apply func(farm.Money) (farm.Money, error)) (Response, error) {
	id, err := farm.NewPlayerID(req.PlayerID)
	if err != nil {
		return Response{}, ErrInvalidRequest
	}

	var out Response
	err = u.runInTx(ctx, func(txCtx context.Context) error {
		p, err := u.Players.GetPlayer(txCtx, id)
		if err != nil {
			return err
		}
		old := p.Money
		next, err := apply(old)
		if err != nil {
			return err
		}
		p.Money = next
		if err := u.Players.SavePlayer(txCtx, p); err != nil {
			return err
		}
		events := []farm.Event{
			farm.NewEvent(id, u.now(), farm.MoneyChanged{PlayerID: id, OldAmount: old, NewAmount: next}),
		}
		if u.Events != nil {
			if err := u.Events.Append(txCtx, events); err != nil {
				return err
			}
		}
		out = Response{Player: p, Events: events}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	if u.Sink != nil {
		for _, event := range out.Events {
			u.Sink.Publish(event)
		}
	}
	return out, nil
}

func (u UseCase) runInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if u.TxManager == nil {
		return fn(ctx)
	}
	return u.TxManager.RunInTx(ctx, fn)
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}
