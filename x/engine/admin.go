package engine

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/sigs"
)

// applyAdmin decodes and applies a quorum approved self administration
// payload. The caller stages the mutations in a nested cache, so a
// failing action rolls back completely.
func (e *AuthorizationEngine) applyAdmin(db quorum.KVStore, payload []byte) ([]Event, error) {
	var msg AdminMsg
	if err := msg.Unmarshal(payload); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "admin payload: %v", err)
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	before, err := e.owners.Threshold(db)
	if err != nil {
		return nil, err
	}

	var events []Event
	switch msg.Action {
	case AdminActionAddOwner:
		threshold := msg.Threshold
		if threshold == 0 {
			threshold = before
		}
		if err := e.owners.AddOwner(db, msg.Member, threshold); err != nil {
			return nil, err
		}
		events = append(events, Event{Kind: EventOwnerAdded, Actor: msg.Member})

	case AdminActionRemoveOwner:
		if err := e.owners.RemoveOwner(db, msg.Prev, msg.Member, msg.Threshold); err != nil {
			return nil, err
		}
		events = append(events, Event{Kind: EventOwnerRemoved, Actor: msg.Member})

	case AdminActionSwapOwner:
		if err := e.owners.SwapOwner(db, msg.Prev, msg.Member, msg.Replacement); err != nil {
			return nil, err
		}
		events = append(events, Event{Kind: EventOwnerSwapped, Actor: msg.Replacement})

	case AdminActionChangeThreshold:
		if err := e.owners.ChangeThreshold(db, msg.Threshold); err != nil {
			return nil, err
		}

	case AdminActionEnableModule:
		if err := e.modules.EnableModule(db, msg.Member); err != nil {
			return nil, err
		}
		events = append(events, Event{Kind: EventModuleEnabled, Actor: msg.Member})

	case AdminActionDisableModule:
		if err := e.modules.DisableModule(db, msg.Prev, msg.Member); err != nil {
			return nil, err
		}
		events = append(events, Event{Kind: EventModuleDisabled, Actor: msg.Member})

	case AdminActionSignMessage:
		if err := sigs.RecordSignedMessage(db, msg.Digest); err != nil {
			return nil, err
		}
		events = append(events, Event{Kind: EventMessageSigned})

	default:
		return nil, errors.Wrapf(errors.ErrInput, "admin action %d", msg.Action)
	}

	after, err := e.owners.Threshold(db)
	if err != nil {
		return nil, err
	}
	if after != before {
		events = append(events, Event{Kind: EventThresholdChange, Threshold: after})
	}
	return events, nil
}

// Payload helpers for building self administration transactions.

// AddOwnerPayload encodes an add owner action. A zero threshold keeps
// the current one.
func AddOwnerPayload(owner quorum.Address, threshold int64) ([]byte, error) {
	return (&AdminMsg{Action: AdminActionAddOwner, Member: owner, Threshold: threshold}).Marshal()
}

// RemoveOwnerPayload encodes a remove owner action. A zero threshold
// keeps the current one, auto lowered to the remaining owner count.
func RemoveOwnerPayload(prev, owner quorum.Address, threshold int64) ([]byte, error) {
	return (&AdminMsg{Action: AdminActionRemoveOwner, Prev: prev, Member: owner, Threshold: threshold}).Marshal()
}

// SwapOwnerPayload encodes an owner replacement action.
func SwapOwnerPayload(prev, old, replacement quorum.Address) ([]byte, error) {
	return (&AdminMsg{Action: AdminActionSwapOwner, Prev: prev, Member: old, Replacement: replacement}).Marshal()
}

// ChangeThresholdPayload encodes a threshold change action.
func ChangeThresholdPayload(threshold int64) ([]byte, error) {
	return (&AdminMsg{Action: AdminActionChangeThreshold, Threshold: threshold}).Marshal()
}

// EnableModulePayload encodes a module activation action.
func EnableModulePayload(module quorum.Address) ([]byte, error) {
	return (&AdminMsg{Action: AdminActionEnableModule, Member: module}).Marshal()
}

// DisableModulePayload encodes a module removal action.
func DisableModulePayload(prev, module quorum.Address) ([]byte, error) {
	return (&AdminMsg{Action: AdminActionDisableModule, Prev: prev, Member: module}).Marshal()
}

// SignMessagePayload encodes a signed message record action.
func SignMessagePayload(digest []byte) ([]byte, error) {
	return (&AdminMsg{Action: AdminActionSignMessage, Digest: digest}).Marshal()
}
