package steps

import "github.com/goliatone/go-formbuilder/pkg/model"

// State describes the machine position against a given schema.
type State struct {
	StepMode    bool
	Total       int
	Index       int
	Groups      int
	IsSummary   bool
	IsFirst     bool
	IsLast      bool
	CanNext     bool
	CanPrevious bool
	CanSubmit   bool
	// Group is the active group in step mode. Nil on the summary step and for
	// flat schemas.
	Group *model.GroupField
}

// Machine tracks the active step of a multi-step form. It stores only the
// position; every query takes the current schema so edits to the field list
// are picked up on the next call.
//
// A Machine is not safe for concurrent use.
type Machine struct {
	index int
}

// New returns a machine positioned on the first step.
func New() *Machine {
	return &Machine{}
}

// Index returns the raw position. It may be stale until Sync is called.
func (m *Machine) Index() int {
	return m.index
}

// Reset moves back to the first step.
func (m *Machine) Reset() {
	m.index = 0
}

// Sync applies the re-entrancy rule: when the schema no longer has a step at
// the current position the machine returns to the first step. It reports
// whether a reset happened.
func (m *Machine) Sync(schema model.FormSchema) bool {
	if m.index >= 0 && m.index < Total(schema) {
		return false
	}
	m.index = 0
	return true
}

// Next advances one step. It is a no-op on the terminal step.
func (m *Machine) Next(schema model.FormSchema) State {
	m.Sync(schema)
	if m.index < Total(schema)-1 {
		m.index++
	}
	return m.State(schema)
}

// Previous moves back one step. It is a no-op on the first step.
func (m *Machine) Previous(schema model.FormSchema) State {
	m.Sync(schema)
	if m.index > 0 {
		m.index--
	}
	return m.State(schema)
}

// State reports the current position. It syncs first.
func (m *Machine) State(schema model.FormSchema) State {
	m.Sync(schema)
	return At(schema, m.index)
}

// At reports the state of step index without a machine. Out of range indices
// resolve to the first step.
func At(schema model.FormSchema, index int) State {
	total := Total(schema)
	if index < 0 || index >= total {
		index = 0
	}

	state := State{
		StepMode:    schema.StepMode(),
		Total:       total,
		Index:       index,
		IsFirst:     index == 0,
		IsLast:      index == total-1,
		CanNext:     index < total-1,
		CanPrevious: index > 0,
	}
	state.CanSubmit = state.IsLast
	if !state.StepMode {
		return state
	}

	groups := schema.Groups()
	state.Groups = len(groups)
	if index < len(groups) {
		group := groups[index].Clone().(model.GroupField)
		state.Group = &group
		return state
	}
	state.IsSummary = true
	return state
}

// Total returns the number of steps: one per group plus the summary in step
// mode, and a single step for flat schemas.
func Total(schema model.FormSchema) int {
	if !schema.StepMode() {
		return 1
	}
	total := len(schema.Fields)
	if schema.ShowResponseSummary {
		total++
	}
	return total
}

// HasSummary reports whether the schema ends in a response summary step.
func HasSummary(schema model.FormSchema) bool {
	return schema.ShowResponseSummary && schema.StepMode()
}
