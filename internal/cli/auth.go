package cli

import (
	"context"
	"fmt"

	"finanzas/internal/models"
)

// Login prompts for credentials and opens a session. Failures are rendered
// inline and the prior session, if any, stays in place.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Bienvenido, %s\n", a.session.Usuario().Nombre)
	return nil
}

// Register prompts for the account data, creates the account, and logs in
// with the same credentials. A creation failure aborts before any login.
func (a *App) Register(ctx context.Context) error {
	nombre, err := getSimpleText(a.reader, "Nombre", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	rol, err := getSimpleText(a.reader, "Rol (user/admin) [user]", a.out)
	if err != nil {
		return err
	}
	if rol == "" {
		rol = "user"
	}

	alta := models.NuevoUsuario{Nombre: nombre, Email: email, Password: password, Rol: rol}
	if err := a.session.Register(ctx, alta); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Cuenta creada. Bienvenido, %s\n", a.session.Usuario().Nombre)
	return nil
}

// Logout closes the session and drops the data-manager state.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	a.registros = nil
	fmt.Fprintln(a.out, "Sesión cerrada")
	return nil
}

// Whoami shows the identity plus, when the token is a JWT, its lifetimes.
// Display only: expiry is never enforced client-side.
func (a *App) Whoami(ctx context.Context) error {
	u := a.session.Usuario()
	fmt.Fprintf(a.out, "ID: %d\nNombre: %s\nEmail: %s\nRol: %s\n", u.ID, u.Nombre, u.Email, u.Rol)

	if emitido, expira, ok := a.session.TokenClaims(); ok {
		if !emitido.IsZero() {
			fmt.Fprintf(a.out, "Token emitido: %s\n", emitido.Format("02/01/2006 15:04"))
		}
		if !expira.IsZero() {
			fmt.Fprintf(a.out, "Token expira: %s\n", expira.Format("02/01/2006 15:04"))
		}
	}
	return nil
}
