// seed crea el usuario administrador inicial y la bodega principal.
//
// Uso: go run ./cmd/seed <username> <email> <password>
// Es idempotente: si el usuario o la bodega ya existen, los deja como están.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jhoicas/dulceria-lilis/internal/application/dto"
	"github.com/jhoicas/dulceria-lilis/internal/application/usecase"
	"github.com/jhoicas/dulceria-lilis/internal/domain"
	"github.com/jhoicas/dulceria-lilis/internal/domain/entity"
	"github.com/jhoicas/dulceria-lilis/internal/infrastructure/postgres"
	"github.com/jhoicas/dulceria-lilis/pkg/config"
)

var mainWarehouse = dto.WarehouseRequest{
	Code:        "BOD-01",
	Name:        "Bodega principal",
	Description: "Creada por seed",
}

func main() {
	if len(os.Args) < 4 {
		fmt.Fprintln(os.Stderr, "Uso: seed <username> <email> <password>")
		os.Exit(2)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Migraciones: %v\n", err)
		os.Exit(1)
	}

	users := usecase.NewUserUseCase(postgres.NewUserRepository(pool))
	_, err = users.Create(ctx, dto.CreateUserRequest{
		Username: os.Args[1],
		Email:    os.Args[2],
		Password: os.Args[3],
		Role:     entity.RoleAdmin,
		Status:   entity.UserActive,
	})
	report("usuario "+os.Args[1], err, "username", "email")

	warehouses := usecase.NewWarehouseUseCase(postgres.NewWarehouseRepository(pool))
	_, err = warehouses.Create(ctx, mainWarehouse)
	report("bodega "+mainWarehouse.Code, err, "codigo")
}

// report imprime el resultado. Si todos los errores son de unicidad (dupFields), ya existía.
func report(what string, err error, dupFields ...string) {
	if err == nil {
		fmt.Printf("Creado %s\n", what)
		return
	}
	var fe domain.FieldErrors
	if errors.As(err, &fe) && onlyFields(fe, dupFields) {
		fmt.Printf("Ya existe %s\n", what)
		return
	}
	fmt.Fprintf(os.Stderr, "Crear %s: %v\n", what, err)
	os.Exit(1)
}

func onlyFields(fe domain.FieldErrors, fields []string) bool {
	for k := range fe {
		found := false
		for _, f := range fields {
			if k == f {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return len(fe) > 0
}
