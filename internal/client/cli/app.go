package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"cardhub/internal/client/api"
	"cardhub/internal/client/config"
	"cardhub/internal/client/models"
	"cardhub/internal/client/repositories/metadata"
	"cardhub/internal/client/screens"
	"cardhub/internal/client/session"
	"cardhub/internal/client/storage"
	"cardhub/internal/logging"

	_ "modernc.org/sqlite"
)

// accountAPI is the slice of the API client the shell calls directly;
// everything else goes through a screen controller.
type accountAPI interface {
	Register(ctx context.Context, req models.RegisterRequest) error
	Login(ctx context.Context, email, password string) (string, error)
}

// App owns the session store, the screen controllers and the interactive
// reader. One instance lives for the whole process.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	session *session.Store
	account accountAPI

	browse    *screens.BrowseScreen
	favorites *screens.FavoritesScreen
	myCards   *screens.CardsScreen
	profile   *screens.ProfileScreen

	reader *bufio.Reader

	// userEmail is remembered from the last successful login for the prompt;
	// it is not persisted, so after a restart the prompt falls back to a
	// generic signed-in marker.
	userEmail string
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error opening local database", "path", cfg.DatabasePath, "error", err)
		return nil, err
	}

	sess := session.NewStore(metadata.NewSQLiteRepository(db), log)
	if err := sess.Init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	apiClient := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, log)

	return &App{
		config:    cfg,
		log:       log,
		db:        db,
		session:   sess,
		account:   apiClient,
		browse:    screens.NewBrowseScreen(apiClient, sess),
		favorites: screens.NewFavoritesScreen(apiClient, sess),
		myCards:   screens.NewCardsScreen(apiClient, sess),
		profile:   screens.NewProfileScreen(apiClient, sess),
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	printlnFn("Welcome to cardhub (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.Current().LoggedIn
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	if a.userEmail != "" {
		return "(" + a.userEmail + ")"
	}
	return "(signed in)"
}
