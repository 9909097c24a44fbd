// Package registry contains the barber and client registry use cases.
package registry

import (
	"context"
	"errors"
	"testing"

	domainerror "github.com/barber-manager/backend/internal/domain/error"
	"github.com/barber-manager/backend/internal/integration/persistence/memory"
)

func TestCreateBarber_AssignsSequentialCodes(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBarberStore()
	uc := NewCreateBarberUseCase(repo)

	first, err := uc.Execute(ctx, CreateBarberInput{Name: "Carlos", Phone: "11 99999-0001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Barber.Code != "01" {
		t.Errorf("expected code 01, got %q", first.Barber.Code)
	}

	second, err := uc.Execute(ctx, CreateBarberInput{Name: "Rafael", Phone: "11 99999-0002"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Barber.Code != "02" {
		t.Errorf("expected code 02, got %q", second.Barber.Code)
	}
}

func TestCreateBarber_MissingFields(t *testing.T) {
	ctx := context.Background()
	uc := NewCreateBarberUseCase(memory.NewBarberStore())

	_, err := uc.Execute(ctx, CreateBarberInput{Name: "Carlos"})

	var regErr *domainerror.RegistryError
	if !errors.As(err, &regErr) || regErr.Code != domainerror.ErrCodeRegistryMissingFields {
		t.Fatalf("expected missing-fields registry error, got %v", err)
	}
}

func TestUpdateBarber_CodeImmutable(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBarberStore()
	create := NewCreateBarberUseCase(repo)
	update := NewUpdateBarberUseCase(repo)

	created, err := create.Execute(ctx, CreateBarberInput{Name: "Carlos", Phone: "11 99999-0001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := update.Execute(ctx, UpdateBarberInput{
		ID:    created.Barber.ID,
		Name:  "Carlos Eduardo",
		Phone: "11 99999-0009",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Barber.Code != created.Barber.Code {
		t.Errorf("code changed on update: %q -> %q", created.Barber.Code, updated.Barber.Code)
	}
	if updated.Barber.Name != "Carlos Eduardo" {
		t.Errorf("expected updated name, got %q", updated.Barber.Name)
	}
}

func TestDeleteClient_NotFoundAfterDeletion(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewClientStore()
	create := NewCreateClientUseCase(repo)
	del := NewDeleteClientUseCase(repo)
	list := NewListClientsUseCase(repo)

	created, err := create.Execute(ctx, CreateClientInput{Name: "João", Phone: "11 98888-0001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := del.Execute(ctx, DeleteClientInput{ID: created.Client.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output, err := list.Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Clients) != 0 {
		t.Errorf("expected empty registry, got %d clients", len(output.Clients))
	}

	err = del.Execute(ctx, DeleteClientInput{ID: created.Client.ID})
	var regErr *domainerror.RegistryError
	if !errors.As(err, &regErr) || regErr.Code != domainerror.ErrCodeClientNotFound {
		t.Fatalf("expected client-not-found error, got %v", err)
	}
}
