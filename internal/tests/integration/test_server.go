package integration

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	v1 "matchday/internal/http/v1"
	"matchday/internal/http/v1/views"
	"matchday/internal/lib/password"
	"matchday/internal/repo"
	"matchday/internal/service"
	"matchday/internal/session"
	"matchday/internal/tests/testdb"
)

const cookieName = "matchday_session"

type TestServer struct {
	DB     *sqlx.DB
	Server *httptest.Server
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	db := testdb.New(t)

	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	userRepo := repo.NewUserRepo(db)
	teamRepo := repo.NewTeamRepo(db)
	matchRepo := repo.NewMatchRepo(db)

	sessions := session.NewManager(log, session.NewMemoryStore(), session.Options{
		CookieName: cookieName,
		Lifetime:   time.Hour,
	})

	deps := &v1.RouterDependencies{
		AuthService: service.NewAuthService(log, userRepo, password.NewBcryptHasher(bcrypt.MinCost)),
		UserService: service.NewUserService(log, userRepo),
		TeamService: service.NewTeamService(log, teamRepo),
		HomeService: service.NewHomeService(log, userRepo, matchRepo, teamRepo),
		Sessions:    sessions,
		Views:       views.MustNew(),
	}

	r := chi.NewRouter()
	v1.SetupRoutes(r, deps, log)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	return &TestServer{
		DB:     db,
		Server: ts,
	}
}

// LoadFixtures replaces the seeded reference data with a small known set.
func (s *TestServer) LoadFixtures() error {
	tables := []string{"sessions", "users", "matches", "teams"}
	for _, table := range tables {
		_, err := s.DB.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	fixtures := `
		INSERT INTO teams (name, group_name) VALUES
			('TeamA', 'A'),
			('TeamB', 'A'),
			('TeamC', 'B');

		INSERT INTO matches (team1, team2, stage, venue, kickoff) VALUES
			('TeamA', 'TeamB', 'Group A', 'Lusail Stadium', '2022-11-20 16:00:00+00:00'),
			('TeamC', 'TeamB', 'Group A', 'Al Bayt Stadium', '2022-11-24 16:00:00+00:00'),
			('TeamC', 'TeamA', 'Group A', 'Stadium 974', '2022-11-28 19:00:00+00:00');
	`

	if _, err := s.DB.Exec(fixtures); err != nil {
		return fmt.Errorf("failed to load fixtures: %w", err)
	}

	return nil
}

// Client returns a browser-like client with its own cookie jar. Redirects are
// not followed so tests can assert on them.
func (s *TestServer) Client(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}

	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}
