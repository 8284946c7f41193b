package cli

import (
	"context"
	"encoding/json"

	"github.com/quickworkapp/quickwork-cli/internal/client/models"
	"github.com/quickworkapp/quickwork-cli/internal/client/storage"
)

// defaultProfile seeds a profile the first time the screen is opened.
var defaultProfile = models.Profile{
	Name:     "John Doe",
	Email:    "john.doe@example.com",
	Phone:    "+57 300 123 4567",
	Location: "Bogotá, Cundinamarca",
	Avatar:   "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?q=80&w=2070&auto=format&fit=crop",
}

// sampleApplications is the static application history shown on the profile
// screen; the backend does not expose applications yet.
var sampleApplications = []models.Application{
	{ID: "1", JobTitle: "House Moving Help", Date: "2024-02-15", Status: "Pending"},
	{ID: "2", JobTitle: "Garden Maintenance", Date: "2024-02-10", Status: "Accepted"},
	{ID: "3", JobTitle: "Event Setup", Date: "2024-02-05", Status: "Completed"},
}

func (a *App) loadProfile(ctx context.Context) models.Profile {
	raw, err := a.kv.Get(ctx, storage.KeyProfile)
	if err != nil || raw == nil {
		return defaultProfile
	}
	var p models.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		a.log.Warn(ctx, "stored profile unreadable, using defaults", "error", err)
		return defaultProfile
	}
	return p
}

func (a *App) saveProfile(ctx context.Context, p models.Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return a.kv.Set(ctx, storage.KeyProfile, raw)
}

// Profile renders the profile screen: personal data plus application history.
func (a *App) Profile(ctx context.Context) error {
	if a.Navigate(ScreenProfile) != ScreenProfile {
		printlnFn("Inicia sesión para ver tu perfil.")
		return nil
	}

	p := a.loadProfile(ctx)
	printlnFn("Nombre:   ", p.Name)
	printlnFn("Email:    ", p.Email)
	printlnFn("Teléfono: ", p.Phone)
	printlnFn("Ubicación:", p.Location)

	printlnFn("Postulaciones:")
	for _, app := range sampleApplications {
		printlnFn(" -", app.JobTitle, "("+app.Date+")", app.Status)
	}
	return nil
}

// EditProfile walks the editable fields; Enter keeps the current value and
// the location is chosen from the city list. Edits persist locally only.
func (a *App) EditProfile(ctx context.Context) error {
	if a.Navigate(ScreenProfile) != ScreenProfile {
		printlnFn("Inicia sesión para editar tu perfil.")
		return nil
	}

	p := a.loadProfile(ctx)

	var err error
	if p.Name, err = a.promptKeeping("Nombre", p.Name); err != nil {
		return err
	}
	if p.Email, err = a.promptKeeping("Email", p.Email); err != nil {
		return err
	}
	if p.Phone, err = a.promptKeeping("Teléfono", p.Phone); err != nil {
		return err
	}

	city, err := a.pickCity(ctx)
	if err != nil {
		return err
	}
	if city != "" {
		p.Location = city
	}

	if err := a.saveProfile(ctx, p); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Perfil actualizado.")
	return nil
}
