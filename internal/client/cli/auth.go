package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/quickworkapp/quickwork-cli/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and opens a session. On success the guard
// moves the user onto the jobs screen and the first batch is fetched right
// away. Auth and transport errors are shown with their message and leave
// the user on the login screen.
func (a *App) Login(ctx context.Context) error {
	a.Navigate(ScreenLogin)

	prompt := "Email"
	if a.prefillEmail != "" {
		prompt = fmt.Sprintf("Email [%s]", a.prefillEmail)
	}
	username, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return err
	}
	if username == "" && a.prefillEmail != "" {
		username = a.prefillEmail
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, username, password); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	a.prefillEmail = ""

	if a.isLoggedIn() {
		printlnFn("Sesión iniciada.")
		return a.ShowJobs(ctx)
	}
	return nil
}

// Register collects the signup form. The city is chosen from the reference
// list; defaults (id, document type, role) are filled by the auth service.
// On success the user is sent to the login screen with the email prefilled.
func (a *App) Register(ctx context.Context) error {
	a.Navigate(ScreenRegister)

	form := models.RegistrationForm{}
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Nombre completo", &form.Name},
		{"Email", &form.Email},
		{"Teléfono", &form.PhoneNumber},
		{"Tipo de documento (CC/TI/CE)", &form.DocumentType},
		{"Número de documento", &form.DocumentNumber},
		{"Perfil", &form.Profile},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	city, err := a.pickCity(ctx)
	if err != nil {
		return err
	}
	form.City = city

	form.Password, err = getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Register(ctx, form); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Registro enviado con éxito. Inicia sesión para continuar.")
	a.prefillEmail = form.Email
	a.Navigate(ScreenLogin)
	return nil
}

// Logout clears the session; the guard lands the user on the login screen.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Sesión cerrada.")
	return nil
}
