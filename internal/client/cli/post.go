package cli

import (
	"context"
	"os"
)

// Post runs the job posting form. The draft survives a failed submission,
// so prompts show the previous value and Enter keeps it.
func (a *App) Post(ctx context.Context) error {
	if a.Navigate(ScreenPost) != ScreenPost {
		printlnFn("Inicia sesión para publicar un trabajo.")
		return nil
	}

	draft := &a.composer.Draft

	var err error
	if draft.Title, err = a.promptKeeping("Título", draft.Title); err != nil {
		return err
	}

	if draft.Location == "" {
		city, err := a.pickCity(ctx)
		if err != nil {
			return err
		}
		draft.Location = city
	}

	if draft.Pay, err = a.promptKeeping("Pago", draft.Pay); err != nil {
		return err
	}
	if draft.Duration, err = a.promptKeeping("Duración", draft.Duration); err != nil {
		return err
	}

	if draft.Description == "" {
		if draft.Description, err = GetMultiline(a.reader, "Descripción", os.Stdout); err != nil {
			return err
		}
	}

	job, err := a.composer.Submit(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("¡Trabajo publicado con éxito!", string(job.ID))
	return nil
}

// promptKeeping asks for a field, keeping the current value when the user
// just presses Enter.
func (a *App) promptKeeping(prompt, current string) (string, error) {
	if current != "" {
		prompt = prompt + " [" + current + "]"
	}
	v, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}
