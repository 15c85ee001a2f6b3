package filemodel

import "github.com/joshuapare/blockedit/filemodel/changelog"

// Undo reverts the most recent applied change by applying its inverse. The
// change stays in the journal and can be reapplied with Redo.
func (m *Model) Undo() error {
	if m.readOnly {
		return ErrReadOnly
	}
	if !m.opts.UndoEnabled {
		return ErrUndoDisabled
	}
	if m.nchange == 0 {
		return ErrNoMoreChanges
	}

	c := m.changes.Get(m.nchange - 1)

	var err error
	switch c.Kind {
	case changelog.KindModify:
		err = m.modify(c.Off, c.Old, false)
	case changelog.KindAdd:
		err = m.remove(c.Off, c.Len, false)
	default: // changelog.KindRemove
		err = m.add(c.Off, c.Old, false)
	}

	if err != nil {
		return err
	}
	m.nchange--
	return nil
}

// Redo reapplies the most recently undone change.
func (m *Model) Redo() error {
	if m.readOnly {
		return ErrReadOnly
	}
	if !m.opts.UndoEnabled {
		return ErrUndoDisabled
	}
	if m.nchange == m.changes.Len() {
		return ErrNoMoreChanges
	}

	c := m.changes.Get(m.nchange)

	var err error
	switch c.Kind {
	case changelog.KindModify:
		err = m.modify(c.Off, c.New, false)
	case changelog.KindAdd:
		err = m.add(c.Off, c.New, false)
	default: // changelog.KindRemove
		err = m.remove(c.Off, c.Len, false)
	}

	if err != nil {
		return err
	}
	m.nchange++
	return nil
}
