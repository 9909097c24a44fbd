// Package catalog contains service catalog use cases.
package catalog

import (
	"context"
	"errors"
	"testing"

	domainerror "github.com/barber-manager/backend/internal/domain/error"
	"github.com/barber-manager/backend/internal/integration/persistence/memory"
)

func TestCreateService_AssignsSequentialCodes(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewServiceStore()
	uc := NewCreateServiceUseCase(repo)

	first, err := uc.Execute(ctx, CreateServiceInput{
		Description:  "Corte",
		PriceText:    "R$ 30,00",
		DurationText: "0h 30min",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Service.Code != "01" {
		t.Errorf("expected first code 01, got %q", first.Service.Code)
	}

	second, err := uc.Execute(ctx, CreateServiceInput{
		Description:  "Barba",
		PriceText:    "R$ 20,00",
		DurationText: "0h 20min",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Service.Code != "02" {
		t.Errorf("expected second code 02, got %q", second.Service.Code)
	}
}

func TestCreateService_CodesNotReusedAfterDeletion(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewServiceStore()
	create := NewCreateServiceUseCase(repo)
	del := NewDeleteServiceUseCase(repo)

	_, err := create.Execute(ctx, CreateServiceInput{Description: "Corte", PriceText: "30,00", DurationText: "30min"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := create.Execute(ctx, CreateServiceInput{Description: "Barba", PriceText: "20,00", DurationText: "20min"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := del.Execute(ctx, DeleteServiceInput{ID: second.Service.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Codes derive from the max present in the catalog, so deleting the
	// top entry frees its number while interior gaps stay unused.
	third, err := create.Execute(ctx, CreateServiceInput{Description: "Sobrancelha", PriceText: "15,00", DurationText: "15min"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if third.Service.Code != "02" {
		t.Errorf("expected code 02 after max deletion, got %q", third.Service.Code)
	}
}

func TestCreateService_NormalizesDisplayText(t *testing.T) {
	ctx := context.Background()
	uc := NewCreateServiceUseCase(memory.NewServiceStore())

	output, err := uc.Execute(ctx, CreateServiceInput{
		Description:  "Corte",
		PriceText:    "45,50",
		DurationText: "1h 15min",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Service.PriceText != "R$ 45,50" {
		t.Errorf("expected price text R$ 45,50, got %q", output.Service.PriceText)
	}
	if output.Service.DurationMinutes != 75 {
		t.Errorf("expected 75 minutes, got %d", output.Service.DurationMinutes)
	}
	if output.Service.DurationText != "1h 15min" {
		t.Errorf("expected duration text 1h 15min, got %q", output.Service.DurationText)
	}
}

func TestCreateService_MissingFields(t *testing.T) {
	ctx := context.Background()
	uc := NewCreateServiceUseCase(memory.NewServiceStore())

	_, err := uc.Execute(ctx, CreateServiceInput{Description: "Corte"})
	if err == nil {
		t.Fatal("expected an error for missing price and duration")
	}

	var catErr *domainerror.CatalogError
	if !errors.As(err, &catErr) {
		t.Fatalf("expected a catalog error, got %T", err)
	}
	if catErr.Code != domainerror.ErrCodeServiceMissingFields {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeServiceMissingFields, catErr.Code)
	}
}

func TestDeleteService_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewServiceStore()
	create := NewCreateServiceUseCase(repo)
	del := NewDeleteServiceUseCase(repo)

	output, err := create.Execute(ctx, CreateServiceInput{Description: "Corte", PriceText: "30,00", DurationText: "30min"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := del.Execute(ctx, DeleteServiceInput{ID: output.Service.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = del.Execute(ctx, DeleteServiceInput{ID: output.Service.ID})
	var catErr *domainerror.CatalogError
	if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeServiceNotFound {
		t.Errorf("expected a not-found catalog error, got %v", err)
	}
}
