// Package tests provides reusable contract suites for ports implementations.
package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wanderkit/packlist/pkg/domain"
	"github.com/wanderkit/packlist/pkg/ports"
)

// SessionStoreContract verifies that a store complies with ports.SessionStore.
// Adapters call this from their own tests.
func SessionStoreContract(t *testing.T, store ports.SessionStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load_NotFound", func(t *testing.T) {
		_, err := store.Load(ctx, "nobody")
		if !errors.Is(err, domain.ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("Save_Load_RoundTrip", func(t *testing.T) {
		sess := domain.NewSession("alice")
		sess.ActiveChecklistID = "hiking"
		sess.Cursor = 2
		sess.Phase = domain.PhaseAsking
		sess.Responses["Tent"] = domain.DispositionTake
		sess.LastTouched = time.Now().UTC().Truncate(time.Second)

		if err := store.Save(ctx, sess); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		loaded, err := store.Load(ctx, "alice")
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if loaded.ActiveChecklistID != "hiking" || loaded.Cursor != 2 {
			t.Errorf("round trip mismatch: %+v", loaded)
		}
		if loaded.Phase != domain.PhaseAsking {
			t.Errorf("expected phase asking, got %s", loaded.Phase)
		}
		if loaded.Responses["Tent"] != domain.DispositionTake {
			t.Errorf("expected Tent=take, got %v", loaded.Responses)
		}
	})

	t.Run("Load_Returns_Copy", func(t *testing.T) {
		sess := domain.NewSession("bob")
		sess.Responses["Lamp"] = domain.DispositionSkip
		if err := store.Save(ctx, sess); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		first, err := store.Load(ctx, "bob")
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		first.Responses["Lamp"] = domain.DispositionTake
		first.Cursor = 99

		second, err := store.Load(ctx, "bob")
		if err != nil {
			t.Fatalf("reload failed: %v", err)
		}
		if second.Responses["Lamp"] != domain.DispositionSkip || second.Cursor != 0 {
			t.Error("mutating a loaded session leaked into the store")
		}
	})

	t.Run("List_Contains_Saved", func(t *testing.T) {
		ids, err := store.List(ctx)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		lookup := make(map[string]bool, len(ids))
		for _, id := range ids {
			lookup[id] = true
		}
		if !lookup["alice"] || !lookup["bob"] {
			t.Errorf("expected alice and bob in %v", ids)
		}
	})

	t.Run("Delete_Then_NotFound", func(t *testing.T) {
		if err := store.Delete(ctx, "alice"); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if _, err := store.Load(ctx, "alice"); !errors.Is(err, domain.ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
		}
		// Idempotent delete.
		if err := store.Delete(ctx, "alice"); err != nil {
			t.Fatalf("second delete failed: %v", err)
		}
	})
}

// CatalogSourceContract verifies that a source complies with ports.CatalogSource
// given the checklist IDs it is expected to contain, in order.
func CatalogSourceContract(t *testing.T, source ports.CatalogSource, wantIDs []string) {
	t.Helper()

	t.Run("ListChecklists_Order", func(t *testing.T) {
		summaries, err := source.ListChecklists()
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(summaries) != len(wantIDs) {
			t.Fatalf("expected %d checklists, got %d", len(wantIDs), len(summaries))
		}
		for i, want := range wantIDs {
			if summaries[i].ID != want {
				t.Errorf("position %d: expected %q, got %q", i, want, summaries[i].ID)
			}
		}
	})

	t.Run("GetChecklist_Success", func(t *testing.T) {
		for _, id := range wantIDs {
			def, err := source.GetChecklist(id)
			if err != nil {
				t.Fatalf("get %q failed: %v", id, err)
			}
			if def.ID != id {
				t.Errorf("expected ID %q, got %q", id, def.ID)
			}
			if err := def.Validate(); err != nil {
				t.Errorf("definition %q invalid: %v", id, err)
			}
		}
	})

	t.Run("GetChecklist_Unknown", func(t *testing.T) {
		_, err := source.GetChecklist("no-such-checklist")
		if !errors.Is(err, domain.ErrUnknownChecklist) {
			t.Fatalf("expected ErrUnknownChecklist, got %v", err)
		}
	})
}
