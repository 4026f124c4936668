package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"finanzas/internal/api"
	"finanzas/internal/config"
	"finanzas/internal/logging"
	"finanzas/internal/models"
	"finanzas/internal/refresh"
	"finanzas/internal/session"
)

// SessionStore is the authentication capability the views compose.
// *session.Store satisfies it; tests substitute fakes.
type SessionStore interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, alta models.NuevoUsuario) error
	Logout()
	Token() string
	Usuario() *models.Usuario
	IsAuthenticated() bool
	TokenClaims() (emitido, expira time.Time, ok bool)
}

// RecordsAPI is the record-service capability the views compose.
// *api.FinanzasClient satisfies it.
type RecordsAPI interface {
	Listar(ctx context.Context, token string, libro models.Libro, filtros models.Filtros) ([]models.Registro, error)
	Crear(ctx context.Context, token string, libro models.Libro, r models.RegistroNuevo) (*models.Registro, error)
	Actualizar(ctx context.Context, token string, libro models.Libro, id int, r models.RegistroNuevo) (*models.Registro, error)
	Eliminar(ctx context.Context, token string, libro models.Libro, id int) error
	LineChart(ctx context.Context, token string, p models.Periodo) ([]models.PuntoGrafico, error)
	Resumen(ctx context.Context, token string, p models.Periodo) (*models.Resumen, error)
	Importar(ctx context.Context, token string, p *models.ImportPayload) (string, error)
}

type App struct {
	config  *config.Config
	session SessionStore
	records RecordsAPI
	refresh *refresh.Signal
	logger  logging.Logger

	reader *bufio.Reader
	out    io.Writer

	// Data-manager state: active ledger, criteria, and the currently
	// rendered list (the optimistic-delete projection lives here).
	libro     models.Libro
	filtros   models.Filtros
	registros []models.Registro

	// Refresh-signal value at the last dashboard render.
	vistoDashboard int64
}

func NewApp(cfg *config.Config) *App {
	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := logging.NewDefault(level)

	authClient := api.NewAuthClient(cfg.AuthAPIBase, logger)
	store := session.NewStore(authClient, session.NewFileStorage(cfg.SessionFile), logger)

	return &App{
		config:  cfg,
		session: store,
		records: api.NewFinanzasClient(cfg.FinanzasAPIBase, logger),
		refresh: &refresh.Signal{},
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		libro:   models.LibroVentas,
		filtros: models.Filtros{Periodo: models.PeriodoMes},
	}
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Bienvenido a finanzas (escribe 'help' para ver los comandos)")
	if a.session.IsAuthenticated() {
		fmt.Fprintf(a.out, "Sesión restaurada: %s\n", a.session.Usuario().Email)
	}
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin), a.out)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// getStatus builds the prompt decoration: current user, active ledger, and a
// star when mutations happened since the dashboard was last rendered.
func (a *App) getStatus() string {
	u := a.session.Usuario()
	if u == nil {
		return ""
	}
	s := u.Email + " " + string(a.libro)
	if a.refresh.ChangedSince(a.vistoDashboard) {
		s += " *"
	}
	return "(" + s + ")"
}
