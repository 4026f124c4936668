package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"finanzas/internal/models"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Ledger(ctx context.Context, libro models.Libro) error
	Filtro(ctx context.Context) error
	Nuevo(ctx context.Context) error
	Editar(ctx context.Context, id string) error
	Eliminar(ctx context.Context, id string) error
	Importar(ctx context.Context) error
}

// runREPL is the read–eval–print loop behind App.Run.
//
// It reads a line from the scanner, takes the first token as the command,
// and dispatches to methods on 'a'. Unknown commands are reported back. The
// loop exits on scanner EOF or when the user types "exit" or "quit".
// Handler errors are already rendered inline by the handlers themselves, so
// they are ignored here; nothing propagates past the view boundary.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, out io.Writer) {
	for {
		fmt.Fprintf(out, "finanzas %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		if protegido(cmd) && !a.isLoggedIn() {
			fmt.Fprintln(out, "Inicia sesión primero ('login' o 'register')")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Comandos: dashboard, ventas, gastos, filtro, nuevo, editar <id>, eliminar <id>, importar, whoami, logout, exit")
			} else {
				fmt.Fprintln(out, "Comandos: login, register, exit")
			}

		case "login":
			_ = a.Login(ctx)
		case "register":
			_ = a.Register(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.Whoami(ctx)

		case "d", "dashboard":
			_ = a.Dashboard(ctx)

		case "ventas":
			_ = a.Ledger(ctx, models.LibroVentas)
		case "gastos":
			_ = a.Ledger(ctx, models.LibroGastos)
		case "filtro":
			_ = a.Filtro(ctx)
		case "nuevo":
			_ = a.Nuevo(ctx)

		case "editar":
			if len(args) == 0 {
				fmt.Fprintln(out, "Uso: editar <id>")
				continue
			}
			_ = a.Editar(ctx, args[0])

		case "eliminar":
			if len(args) == 0 {
				fmt.Fprintln(out, "Uso: eliminar <id>")
				continue
			}
			_ = a.Eliminar(ctx, args[0])

		case "importar":
			_ = a.Importar(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "¡Hasta luego!")
			return

		default:
			fmt.Fprintln(out, "Comando desconocido:", cmd)
		}
	}
}

// protegido reports whether a command requires an authenticated session.
func protegido(cmd string) bool {
	switch cmd {
	case "help", "login", "register", "exit", "quit":
		return false
	}
	return true
}
