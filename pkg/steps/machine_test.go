package steps_test

import (
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/steps"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func TestMachine_WalksToSummary(t *testing.T) {
	schema := testsupport.StepSchema()
	groups := len(schema.Fields)

	if got := steps.Total(schema); got != groups+1 {
		t.Fatalf("expected %d steps, got %d", groups+1, got)
	}

	m := steps.New()
	var state steps.State
	for i := 0; i < groups; i++ {
		state = m.Next(schema)
	}
	if !state.IsSummary || state.Index != groups {
		t.Fatalf("expected summary at %d, got %#v", groups, state)
	}
	if state.CanNext || !state.CanSubmit || !state.CanPrevious {
		t.Fatalf("summary should offer only previous and submit: %#v", state)
	}
	if state.Group != nil {
		t.Fatalf("summary must not carry a group")
	}

	state = m.Next(schema)
	if !state.IsSummary {
		t.Fatalf("next on terminal step must be a no-op")
	}

	state = m.Previous(schema)
	if state.IsSummary || state.Index != groups-1 {
		t.Fatalf("expected last group, got %#v", state)
	}
	if state.Group == nil || state.Group.ID != "g3" {
		t.Fatalf("expected group g3, got %#v", state.Group)
	}
}

func TestMachine_PreviousOnFirstIsNoop(t *testing.T) {
	m := steps.New()
	state := m.Previous(testsupport.StepSchema())
	if state.Index != 0 || !state.IsFirst || state.CanPrevious {
		t.Fatalf("unexpected state %#v", state)
	}
}

func TestMachine_WithoutSummaryLastGroupSubmits(t *testing.T) {
	schema := testsupport.StepSchema()
	schema.ShowResponseSummary = false

	m := steps.New()
	m.Next(schema)
	state := m.Next(schema)
	if state.IsSummary || !state.IsLast || !state.CanSubmit {
		t.Fatalf("expected last group to submit, got %#v", state)
	}
	if state.Total != 3 {
		t.Fatalf("expected 3 steps, got %d", state.Total)
	}
}

func TestMachine_ResetsWhenStepDisappears(t *testing.T) {
	schema := testsupport.StepSchema()
	m := steps.New()
	m.Next(schema)
	m.Next(schema)
	m.Next(schema)

	shrunk := schema.Clone()
	shrunk.Fields = shrunk.Fields[:1]
	shrunk.ShowResponseSummary = false

	if !m.Sync(shrunk) {
		t.Fatalf("expected reset")
	}
	if state := m.State(shrunk); state.Index != 0 || state.Group.ID != "g1" {
		t.Fatalf("unexpected state after reset %#v", state)
	}
}

func TestMachine_FlatSchemaIsSingleStep(t *testing.T) {
	schema := testsupport.FlatSchema()
	schema.ShowResponseSummary = true

	state := steps.New().Next(schema)
	if state.StepMode || state.Total != 1 || !state.CanSubmit || state.IsSummary {
		t.Fatalf("unexpected flat state %#v", state)
	}
	if steps.HasSummary(schema) {
		t.Fatalf("flat schema must not have a summary")
	}
}

func TestAt_MixedTopLevelIsFlat(t *testing.T) {
	schema := model.NewSchema("mixed")
	schema.Fields = model.Fields{testsupport.Group("g", "G"), testsupport.TextField("a", "A")}

	state := steps.At(schema, 4)
	if state.StepMode || state.Index != 0 || state.Total != 1 {
		t.Fatalf("unexpected state %#v", state)
	}
}
