// import_catalog carga productos desde una planilla exportada del sistema anterior.
//
// Uso: go run ./cmd/import_catalog <catalogo.csv|catalogo.xlsx>
// El CSV va separado por ";" y codificado en ISO-8859-1, con encabezado
// sku;nombre;categoria;uom;precio;stock_minimo. Los SKU existentes se omiten.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jhoicas/dulceria-lilis/internal/application/usecase"
	"github.com/jhoicas/dulceria-lilis/internal/domain"
	"github.com/jhoicas/dulceria-lilis/internal/infrastructure/postgres"
	"github.com/jhoicas/dulceria-lilis/pkg/config"
	"github.com/jhoicas/dulceria-lilis/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: import_catalog <archivo.csv|archivo.xlsx>")
		os.Exit(2)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Named("import_catalog")

	rows, err := readRows(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Str("file", os.Args[1]).Msg("leer archivo")
	}
	if len(rows) == 0 {
		log.Fatal().Msg("archivo vacío")
	}
	idx, err := headerIndex(rows[0])
	if err != nil {
		log.Fatal().Err(err).Msg("encabezado")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	productUC := usecase.NewProductUseCase(productRepo, nil)

	var created, skipped, rejected int
	for n, row := range rows[1:] {
		line := n + 2
		in, err := toRequest(idx, row)
		if err != nil {
			rejected++
			log.Warn().Int("fila", line).Err(err).Msg("fila rechazada")
			continue
		}
		existing, err := productRepo.GetBySKU(ctx, strings.ToUpper(in.SKU))
		if err != nil {
			log.Fatal().Err(err).Int("fila", line).Msg("consultar SKU")
		}
		if existing != nil {
			skipped++
			continue
		}
		if _, err := productUC.Create(ctx, in); err != nil {
			var fe domain.FieldErrors
			if !errors.As(err, &fe) {
				log.Fatal().Err(err).Int("fila", line).Msg("crear producto")
			}
			rejected++
			log.Warn().Int("fila", line).Str("sku", in.SKU).Str("errores", fe.Error()).Msg("fila rechazada")
			continue
		}
		created++
	}

	log.Info().Int("creados", created).Int("omitidos", skipped).Int("rechazados", rejected).Msg("importación terminada")
	fmt.Printf("Creados: %d, omitidos: %d, rechazados: %d\n", created, skipped, rejected)
}
