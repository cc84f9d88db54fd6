package usecase

import (
	"context"
	"errors"
	"strings"

	"fridge-inventory/internal/inventory"
	repo "fridge-inventory/internal/inventory/repository"
	"fridge-inventory/internal/model"
	"fridge-inventory/internal/voice"
	"fridge-inventory/internal/voice/codec"
)

// maxActionAttempts bounds the retry when a concurrent add wins the (shelf, name) race.
const maxActionAttempts = 2

// actionFailure aborts one action's transaction with a reason.
type actionFailure struct {
	reason voice.FailureReason
}

func (f actionFailure) Error() string {
	return string(f.reason)
}

func fail(reason voice.FailureReason) error {
	return actionFailure{reason: reason}
}

// execute runs actions one by one and returns one outcome per action in input order.
// Each action commits on its own; a failed action never rolls back earlier ones.
func (uc *implUseCase) execute(ctx context.Context, sc model.Scope, snap snapshot, actions []voice.ParsedAction) []voice.ActionOutcome {
	outcomes := make([]voice.ActionOutcome, 0, len(actions))
	for _, a := range actions {
		o := uc.executeOne(ctx, sc, snap, a)
		if !o.Succeeded() {
			uc.l.Warnf(ctx, "voice.usecase.execute: action=%s item=%q shelf=%d failed: %s", a.Type, a.ItemName, a.ShelfID, o.Reason)
		}
		uc.metrics.ObserveAction(actionLabel(o.Type), string(o.Status))
		outcomes = append(outcomes, o)
	}
	return outcomes
}

// actionLabel keeps the metric label set fixed whatever type the model returned.
func actionLabel(t voice.ActionType) string {
	if !t.IsKnown() {
		return "unknown"
	}
	return string(t)
}

func (uc *implUseCase) executeOne(ctx context.Context, sc model.Scope, snap snapshot, a voice.ParsedAction) voice.ActionOutcome {
	o := voice.ActionOutcome{
		Type:          a.Type,
		Status:        voice.StatusFailed,
		ItemName:      strings.TrimSpace(a.ItemName),
		Quantity:      a.Quantity,
		ShelfName:     uc.msg.unknownShelf,
		ContainerName: uc.msg.unknownContainer,
	}

	switch {
	case !a.Type.IsKnown():
		o.Reason = voice.ReasonUnknownAction
		return o
	case !a.Type.IsMutation():
		o.Status = voice.StatusSuccess
		return o
	}

	shelfVID := a.ShelfID
	if shelfVID == 0 {
		shelfVID = snap.defaultShelfID
	}
	if shelfVID == 0 {
		o.Reason = voice.ReasonShelfRequired
		return o
	}
	shelfID, err := snap.codec.Resolve(shelfVID, codec.Shelf)
	if err != nil {
		o.Reason = voice.ReasonShelfNotFound
		return o
	}

	for attempt := 0; attempt < maxActionAttempts; attempt++ {
		err = uc.repo.RunInTx(ctx, func(ctx context.Context) error {
			return uc.apply(ctx, sc, shelfID, a, &o)
		})
		if !errors.Is(err, repo.ErrDuplicate) || a.Type != voice.ActionAddItem {
			break
		}
	}

	var af actionFailure
	switch {
	case err == nil:
		o.Status = voice.StatusSuccess
		o.Reason = ""
	case errors.As(err, &af):
		o.Reason = af.reason
	default:
		uc.l.Errorf(ctx, "voice.usecase.executeOne: action=%s shelf=%s: %v", a.Type, shelfID, err)
		o.Reason = voice.ReasonRepositoryError
	}
	return o
}

// apply performs one mutation inside a transaction and fills the display fields of o.
func (uc *implUseCase) apply(ctx context.Context, sc model.Scope, shelfID string, a voice.ParsedAction, o *voice.ActionOutcome) error {
	loc, err := uc.repo.GetShelf(ctx, repo.GetShelfOptions{ID: shelfID, UserID: sc.UserID})
	if err != nil {
		return err
	}
	if loc.Shelf.ID == "" {
		return fail(voice.ReasonShelfNotFound)
	}
	o.ShelfName = loc.Shelf.Name
	o.ContainerName = loc.Container.Name

	name, err := inventory.NormalizeName(a.ItemName)
	if err != nil {
		return fail(voice.ReasonInvalidItemName)
	}
	o.ItemName = name

	switch a.Type {
	case voice.ActionAddItem:
		return uc.applyAdd(ctx, shelfID, name, a.Quantity, o)
	case voice.ActionRemoveItem:
		return uc.applyRemove(ctx, shelfID, name, a.Quantity, o)
	case voice.ActionUpdateItem:
		return uc.applyUpdate(ctx, shelfID, name, a.Quantity, o)
	default:
		return fail(voice.ReasonUnknownAction)
	}
}

func (uc *implUseCase) applyAdd(ctx context.Context, shelfID, name string, quantity int, o *voice.ActionOutcome) error {
	if quantity <= 0 {
		return fail(voice.ReasonInvalidQuantity)
	}

	existing, err := uc.repo.FindItemOnShelf(ctx, shelfID, name)
	if err != nil {
		return err
	}

	var item model.Item
	if existing.ID != "" {
		item, err = uc.repo.IncrementItemQuantity(ctx, existing.ID, quantity)
	} else {
		item, err = uc.repo.CreateItem(ctx, repo.CreateItemOptions{ShelfID: shelfID, Name: name, Quantity: quantity})
	}
	if err != nil {
		return err
	}
	o.ResultQuantity = item.Quantity
	return nil
}

func (uc *implUseCase) applyRemove(ctx context.Context, shelfID, name string, quantity int, o *voice.ActionOutcome) error {
	if quantity <= 0 {
		return fail(voice.ReasonInvalidQuantity)
	}

	item, err := uc.findItem(ctx, shelfID, name)
	if err != nil {
		return err
	}

	remaining := item.Quantity - quantity
	if remaining <= 0 {
		o.ResultQuantity = 0
		return uc.repo.DeleteItem(ctx, item.ID)
	}

	updated, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:       item.ID,
		ShelfID:  item.ShelfID,
		Name:     item.Name,
		Quantity: remaining,
	})
	if err != nil {
		return err
	}
	o.ResultQuantity = updated.Quantity
	return nil
}

func (uc *implUseCase) applyUpdate(ctx context.Context, shelfID, name string, quantity int, o *voice.ActionOutcome) error {
	if quantity < 0 {
		return fail(voice.ReasonInvalidQuantity)
	}

	item, err := uc.findItem(ctx, shelfID, name)
	if err != nil {
		return err
	}

	if quantity == 0 {
		o.ResultQuantity = 0
		return uc.repo.DeleteItem(ctx, item.ID)
	}

	updated, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:       item.ID,
		ShelfID:  item.ShelfID,
		Name:     item.Name,
		Quantity: quantity,
	})
	if err != nil {
		return err
	}
	o.ResultQuantity = updated.Quantity
	return nil
}

func (uc *implUseCase) findItem(ctx context.Context, shelfID, name string) (model.Item, error) {
	item, err := uc.repo.FindItemOnShelf(ctx, shelfID, name)
	if err != nil {
		return model.Item{}, err
	}
	if item.ID == "" {
		return model.Item{}, fail(voice.ReasonItemNotFound)
	}
	return item, nil
}
