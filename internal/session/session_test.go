package session

import (
	"path/filepath"
	"testing"

	"github.com/msarvaro/gastro-sub000/internal/models"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "credentials.json"))
	if err != nil {
		t.Fatal(err)
	}
	return store
}

func TestLoadMissingFileReturnsNil(t *testing.T) {
	store := newStore(t)
	creds, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if creds != nil {
		t.Errorf("expected nil credentials, got %+v", creds)
	}
}

func TestSaveThenLoad(t *testing.T) {
	store := newStore(t)
	in := &Credentials{Token: "tok", Role: models.RoleManager, BusinessID: "b1"}
	if err := store.Save(in); err != nil {
		t.Fatal(err)
	}

	out, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if out.Token != "tok" || out.Role != models.RoleManager || out.BusinessID != "b1" {
		t.Errorf("got %+v", out)
	}
	if out.SavedAt.IsZero() {
		t.Error("SavedAt should be stamped on save")
	}
}

func TestClearIsIdempotent(t *testing.T) {
	store := newStore(t)
	if err := store.Save(&Credentials{Token: "tok", Role: models.RoleAdmin}); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Errorf("second clear should be a no-op, got %v", err)
	}
}

func TestEnsureRole(t *testing.T) {
	store := newStore(t)
	if err := store.Save(&Credentials{Token: "tok", Role: models.RoleWaiter}); err != nil {
		t.Fatal(err)
	}

	ok, err := store.EnsureRole(models.RoleWaiter)
	if err != nil || !ok {
		t.Fatalf("matching role: ok=%v err=%v", ok, err)
	}

	ok, err = store.EnsureRole(models.RoleCook)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("mismatched role should not pass")
	}
	creds, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if creds != nil {
		t.Error("mismatched role should clear the store")
	}
}

func TestEnsureRoleWithoutCredentials(t *testing.T) {
	store := newStore(t)
	ok, err := store.EnsureRole(models.RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("empty store should not pass the role gate")
	}
}
