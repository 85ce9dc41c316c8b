package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"farmstead/internal/app/ports"
	"farmstead/internal/domain/farm"
)

var (
	ErrInvalidRequest     = errors.New("invalid inventory request")
	ErrInventoryFull      = errors.New("inventory full")
	ErrNotEnoughItems     = errors.New("not enough items")
	ErrCatalogUnavailable = errors.New("catalog not configured")
)

// UseCase is a thin orchestrator over the inventory aggregate: resolve
// the item template, mutate, persist, emit the matching event.
type UseCase struct {
	TxManager   ports.TxManager
	Inventories ports.InventoryRepository
	Items       ports.ItemCatalog
	Events      ports.EventRepository
	Sink        ports.EventSink
	Now         func() time.Time
}

type MutateRequest struct {
	PlayerID string
	ItemID   string
	Quantity int
}

type QueryRequest struct {
	PlayerID string
	ItemID   string
}

type SlotView struct {
	ItemID   farm.ItemID `json:"item_id,omitempty"`
	Quantity int         `json:"quantity"`
}

type Response struct {
	Slots  []SlotView   `json:"slots"`
	Events []farm.Event `json:"events,omitempty"`
}

type QueryResponse struct {
	ItemID   farm.ItemID `json:"item_id"`
	Quantity int         `json:"quantity"`
	Has      bool        `json:"has"`
}

func (u UseCase) Add(ctx context.Context, req MutateRequest) (Response, error) {
	playerID, itemID, err := parseMutate(req)
	if err != nil {
		return Response{}, err
	}
	if u.Items == nil {
		return Response{}, fmt.Errorf("%w: items", ErrCatalogUnavailable)
	}
	item, ok := u.Items.Get(itemID)
	if !ok {
		return Response{}, fmt.Errorf("%w: item %s", ports.ErrNotFound, itemID)
	}

	var out Response
	var overflowed bool
	err = u.runInTx(ctx, func(txCtx context.Context) error {
		inv, err := u.Inventories.GetInventory(txCtx, playerID)
		if err != nil {
			return err
		}
		ok := inv.AddItem(item, req.Quantity)
		if err := u.Inventories.SaveInventory(txCtx, playerID, inv); err != nil {
			return err
		}
		if !ok {
			// Partial application is persisted on purpose: the tx
			// commits with whatever fit, and the caller learns the
			// add did not fully fit only after the save is durable.
			overflowed = true
			out = Response{Slots: toSlotViews(inv)}
			return nil
		}
		events := []farm.Event{
			farm.NewEvent(playerID, u.now(), farm.ItemAdded{PlayerID: playerID, ItemID: itemID, Quantity: req.Quantity}),
		}
		if err := u.appendEvents(txCtx, events); err != nil {
			return err
		}
		out = Response{Slots: toSlotViews(inv), Events: events}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	if overflowed {
		return out, fmt.Errorf("%w: %d x %s", ErrInventoryFull, req.Quantity, itemID)
	}
	u.publish(out.Events)
	return out, nil
}

func (u UseCase) Remove(ctx context.Context, req MutateRequest) (Response, error) {
	playerID, itemID, err := parseMutate(req)
	if err != nil {
		return Response{}, err
	}

	var out Response
	err = u.runInTx(ctx, func(txCtx context.Context) error {
		inv, err := u.Inventories.GetInventory(txCtx, playerID)
		if err != nil {
			return err
		}
		ok := inv.RemoveItem(itemID, req.Quantity)
		if err := u.Inventories.SaveInventory(txCtx, playerID, inv); err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %d x %s", ErrNotEnoughItems, req.Quantity, itemID)
		}
		events := []farm.Event{
			farm.NewEvent(playerID, u.now(), farm.ItemRemoved{PlayerID: playerID, ItemID: itemID, Quantity: req.Quantity}),
		}
		if err := u.appendEvents(txCtx, events); err != nil {
			return err
		}
		out = Response{Slots: toSlotViews(inv), Events: events}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	u.publish(out.Events)
	return out, nil
}

func (u UseCase) Query(ctx context.Context, req QueryRequest) (QueryResponse, error) {
	playerID, err := farm.NewPlayerID(req.PlayerID)
	if err != nil {
		return QueryResponse{}, ErrInvalidRequest
	}
	itemID, err := farm.NewItemID(req.ItemID)
	if err != nil {
		return QueryResponse{}, ErrInvalidRequest
	}
	inv, err := u.Inventories.GetInventory(ctx, playerID)
	if err != nil {
		return QueryResponse{}, err
	}
	quantity := inv.Quantity(itemID)
	return QueryResponse{ItemID: itemID, Quantity: quantity, Has: quantity > 0}, nil
}

func (u UseCase) List(ctx context.Context, playerID string) (Response, error) {
	id, err := farm.NewPlayerID(playerID)
	if err != nil {
		return Response{}, ErrInvalidRequest
	}
	inv, err := u.Inventories.GetInventory(ctx, id)
	if err != nil {
		return Response{}, err
	}
	return Response{Slots: toSlotViews(inv)}, nil
}

func parseMutate(req MutateRequest) (farm.PlayerID, farm.ItemID, error) {
	playerID, err := farm.NewPlayerID(req.PlayerID)
	if err != nil {
		return "", "", ErrInvalidRequest
	}
	itemID, err := farm.NewItemID(req.ItemID)
	if err != nil {
		return "", "", ErrInvalidRequest
	}
	if req.Quantity <= 0 {
		return "", "", ErrInvalidRequest
	}
	return playerID, itemID, nil
}

func toSlotViews(inv *farm.Inventory) []SlotView {
	out := make([]SlotView, 0, len(inv.Slots))
	for _, slot := range inv.Slots {
		view := SlotView{Quantity: slot.Quantity}
		if slot.Item != nil {
			view.ItemID = slot.Item.ID
		}
		out = append(out, view)
	}
	return out
}

func (u UseCase) appendEvents(ctx context.Context, events []farm.Event) error {
	if u.Events == nil {
		return nil
	}
	return u.Events.Append(ctx, events)
}

func (u UseCase) publish(events []farm.Event) {
	if u.Sink == nil {
		return
	}
	for _, event := range events {
		u.Sink.Publish(event)
	}
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
