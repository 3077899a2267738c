package engine

import (
	"crypto/sha256"

	"github.com/iov-one/quorum/errors"
)

// Validate ensures the transaction can be persisted.
func (m *Transaction) Validate() error {
	if m.Kind != CallKindCall && m.Kind != CallKindDelegate {
		return errors.Wrapf(errors.ErrInput, "call kind %d", m.Kind)
	}
	if err := m.Target.Validate(); err != nil {
		return errors.Wrap(err, "target")
	}
	if m.Approvals < 0 {
		return errors.Wrapf(errors.ErrModel, "negative approvals %d", m.Approvals)
	}
	return nil
}

// Copy returns a deep copy, detached from any bucket owned buffers.
func (m *Transaction) Copy() *Transaction {
	return &Transaction{
		Kind:      m.Kind,
		Target:    m.Target.Clone(),
		Value:     m.Value,
		Payload:   append([]byte(nil), m.Payload...),
		Approvals: m.Approvals,
		Executed:  m.Executed,
	}
}

// Validate ensures the admin message is routable. Per action field
// requirements are checked by the registries when applied.
func (m *AdminMsg) Validate() error {
	switch m.Action {
	case AdminActionAddOwner, AdminActionRemoveOwner, AdminActionEnableModule, AdminActionDisableModule:
		return errors.Wrap(m.Member.Validate(), "member")
	case AdminActionSwapOwner:
		if err := m.Member.Validate(); err != nil {
			return errors.Wrap(err, "member")
		}
		return errors.Wrap(m.Replacement.Validate(), "replacement")
	case AdminActionChangeThreshold:
		if m.Threshold < 1 {
			return errors.Wrapf(errors.ErrInput, "threshold %d", m.Threshold)
		}
		return nil
	case AdminActionSignMessage:
		if len(m.Digest) != sha256.Size {
			return errors.Wrapf(errors.ErrInput, "digest size %d", len(m.Digest))
		}
		return nil
	default:
		return errors.Wrapf(errors.ErrInput, "admin action %d", m.Action)
	}
}
