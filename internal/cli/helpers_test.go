package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"finanzas/internal/logging"
	"finanzas/internal/models"
	"finanzas/internal/refresh"
)

type fakeSession struct {
	token string
	user  *models.Usuario
}

func (f *fakeSession) Login(ctx context.Context, email, password string) error { return nil }
func (f *fakeSession) Register(ctx context.Context, alta models.NuevoUsuario) error {
	return nil
}
func (f *fakeSession) Logout() { f.token, f.user = "", nil }

func (f *fakeSession) Token() string { return f.token }

func (f *fakeSession) Usuario() *models.Usuario { return f.user }

func (f *fakeSession) IsAuthenticated() bool { return f.token != "" && f.user != nil }

func (f *fakeSession) TokenClaims() (time.Time, time.Time, bool) {
	return time.Time{}, time.Time{}, false
}

type listarLlamada struct {
	libro   models.Libro
	filtros models.Filtros
}

// fakeRecords records calls and delegates to per-method hooks when set.
// Listar may be called concurrently by the dashboard, hence the mutex.
type fakeRecords struct {
	mu sync.Mutex

	listarFn     func(libro models.Libro, f models.Filtros) ([]models.Registro, error)
	crearFn      func(r models.RegistroNuevo) (*models.Registro, error)
	actualizarFn func(id int, r models.RegistroNuevo) (*models.Registro, error)
	eliminarFn   func(id int) error
	lineChartFn  func() ([]models.PuntoGrafico, error)
	resumenFn    func() (*models.Resumen, error)
	importarFn   func(p *models.ImportPayload) (string, error)

	listarLlamadas   []listarLlamada
	crearLlamadas    int
	importarLlamadas int
	eliminados       []int
}

func (f *fakeRecords) Listar(ctx context.Context, token string, libro models.Libro, filtros models.Filtros) ([]models.Registro, error) {
	f.mu.Lock()
	f.listarLlamadas = append(f.listarLlamadas, listarLlamada{libro: libro, filtros: filtros})
	f.mu.Unlock()
	if f.listarFn != nil {
		return f.listarFn(libro, filtros)
	}
	return nil, nil
}

func (f *fakeRecords) Crear(ctx context.Context, token string, libro models.Libro, r models.RegistroNuevo) (*models.Registro, error) {
	f.crearLlamadas++
	if f.crearFn != nil {
		return f.crearFn(r)
	}
	return &models.Registro{ID: 1}, nil
}

func (f *fakeRecords) Actualizar(ctx context.Context, token string, libro models.Libro, id int, r models.RegistroNuevo) (*models.Registro, error) {
	if f.actualizarFn != nil {
		return f.actualizarFn(id, r)
	}
	return &models.Registro{ID: id}, nil
}

func (f *fakeRecords) Eliminar(ctx context.Context, token string, libro models.Libro, id int) error {
	f.eliminados = append(f.eliminados, id)
	if f.eliminarFn != nil {
		return f.eliminarFn(id)
	}
	return nil
}

func (f *fakeRecords) LineChart(ctx context.Context, token string, p models.Periodo) ([]models.PuntoGrafico, error) {
	if f.lineChartFn != nil {
		return f.lineChartFn()
	}
	return nil, nil
}

func (f *fakeRecords) Resumen(ctx context.Context, token string, p models.Periodo) (*models.Resumen, error) {
	if f.resumenFn != nil {
		return f.resumenFn()
	}
	return &models.Resumen{}, nil
}

func (f *fakeRecords) Importar(ctx context.Context, token string, p *models.ImportPayload) (string, error) {
	f.importarLlamadas++
	if f.importarFn != nil {
		return f.importarFn(p)
	}
	return "", nil
}

func newTestApp(records RecordsAPI) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &App{
		session: &fakeSession{
			token: "tok",
			user:  &models.Usuario{ID: 1, Nombre: "Ana", Email: "ana@example.com", Rol: "user"},
		},
		records: records,
		refresh: &refresh.Signal{},
		logger:  logging.NewNop(),
		reader:  bufio.NewReader(strings.NewReader("")),
		out:     out,
		libro:   models.LibroVentas,
		filtros: models.Filtros{Periodo: models.PeriodoMes},
	}, out
}

// stubText makes getSimpleText return the given answers in order; once they
// run out it reports EOF.
func stubText(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		a := answers[i]
		i++
		return a, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

func stubConfirm(t *testing.T, answers ...bool) {
	t.Helper()
	orig := getConfirm
	i := 0
	getConfirm = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) {
		if i >= len(answers) {
			return false, io.EOF
		}
		a := answers[i]
		i++
		return a, nil
	}
	t.Cleanup(func() { getConfirm = orig })
}

func stubMultiline(t *testing.T, text string) {
	t.Helper()
	orig := getMultiline
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		return text, nil
	}
	t.Cleanup(func() { getMultiline = orig })
}
