package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/quickworkapp/quickwork-cli/internal/client/cities"
	"github.com/quickworkapp/quickwork-cli/internal/client/jobs"
	"github.com/quickworkapp/quickwork-cli/internal/client/models"
)

// ShowJobs activates the listings screen: one fetch, then the filtered view.
// A failed fetch shows a notice and an empty list; there is no retry.
func (a *App) ShowJobs(ctx context.Context) error {
	if a.Navigate(ScreenJobs) != ScreenJobs {
		printlnFn("Inicia sesión para ver los trabajos.")
		return nil
	}

	if err := a.directory.Refresh(ctx); err != nil {
		if ctx.Err() != nil {
			return err
		}
		printlnFn("No se pudieron cargar los trabajos")
	}

	a.renderVisible()
	return nil
}

// Search updates the free-text search and re-renders without refetching.
func (a *App) Search(ctx context.Context, query string) error {
	if a.Navigate(ScreenJobs) != ScreenJobs {
		printlnFn("Inicia sesión para ver los trabajos.")
		return nil
	}
	a.directory.Criteria.Search = query
	a.renderVisible()
	return nil
}

// SetFilter updates one structured constraint: location, minpay or duration.
// The location value is chosen from the city list.
func (a *App) SetFilter(ctx context.Context, field, value string) error {
	if a.Navigate(ScreenJobs) != ScreenJobs {
		printlnFn("Inicia sesión para ver los trabajos.")
		return nil
	}

	switch strings.ToLower(field) {
	case "location", "ubicacion", "ubicación":
		city, err := a.pickCity(ctx)
		if err != nil {
			return err
		}
		a.directory.Criteria.Location = city
	case "minpay", "pago":
		a.directory.Criteria.MinPay = jobs.ParseMinPay(value)
	case "duration", "duracion", "duración":
		a.directory.Criteria.Duration = value
	default:
		printlnFn("Filtro desconocido:", field)
		return nil
	}

	a.renderVisible()
	return nil
}

// ClearFilters resets search and all structured constraints.
func (a *App) ClearFilters(ctx context.Context) error {
	a.directory.Criteria.Clear()
	if a.screen == ScreenJobs {
		a.renderVisible()
	}
	return nil
}

// Cities searches the static reference list.
func (a *App) Cities(ctx context.Context, query string) error {
	for _, c := range a.cities.Search(query) {
		printlnFn(cities.Label(c))
	}
	return nil
}

// ShowJob renders one job from the current batch.
func (a *App) ShowJob(ctx context.Context, id string) error {
	if a.Navigate(ScreenJobs) != ScreenJobs {
		printlnFn("Inicia sesión para ver los trabajos.")
		return nil
	}

	job, err := a.directory.Get(id)
	if err != nil {
		printlnFn("Trabajo no encontrado:", id)
		return err
	}

	printlnFn(renderJob(job))
	if job.Description != "" {
		printlnFn(job.Description)
	}
	return nil
}

func (a *App) renderVisible() {
	visible := a.directory.Visible()
	if len(visible) == 0 {
		printlnFn("No hay trabajos para mostrar.")
		return
	}
	for _, job := range visible {
		printlnFn(renderJob(job))
	}
}

func renderJob(job models.Job) string {
	return fmt.Sprintf("[%s] %s | %s | Pago: $%d | Duración: %s",
		job.ID, job.Title, job.Location, job.Pay, job.Duration)
}

// pickCity runs the interactive city selector: search, then pick by number.
// Returns the "{name}, {department}" label of the selected city.
func (a *App) pickCity(ctx context.Context) (string, error) {
	query, err := getSimpleText(a.reader, "Buscar ciudad o departamento", os.Stdout)
	if err != nil {
		return "", err
	}

	matches := a.cities.Search(query)
	if len(matches) == 0 {
		printlnFn("Sin resultados para:", query)
		return "", nil
	}

	for i, c := range matches {
		printlnFn(fmt.Sprintf("%d. %s", i+1, cities.Label(c)))
	}

	choice, err := getSimpleText(a.reader, "Número de la ciudad", os.Stdout)
	if err != nil {
		return "", err
	}

	idx := 0
	if _, err := fmt.Sscanf(choice, "%d", &idx); err != nil || idx < 1 || idx > len(matches) {
		printlnFn("Selección inválida.")
		return "", nil
	}

	return cities.Label(matches[idx-1]), nil
}
