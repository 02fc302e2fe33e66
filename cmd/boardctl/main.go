package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"taskboard-client/internal/client"
	"taskboard-client/internal/config"
	"taskboard-client/internal/domain"
	"taskboard-client/internal/dto"
	"taskboard-client/internal/job"
	"taskboard-client/internal/metrics"
	"taskboard-client/internal/response"
	"taskboard-client/internal/service"
	"taskboard-client/internal/state"
)

const usage = `Usage: boardctl [-config path] <command> [args]

Commands:
  boards                            list boards
  board <id>                        show board detail
  create-board <name>               create a board
  edit-board <id> <name>            rename a board
  delete-board <id>                 delete a board
  sections <board-id>               list sections of a board
  create-section <board-id> <title> create a section
  edit-section <id> <title>         rename a section
  delete-section <id>               delete a section
  cards <section-id>                list cards of a section
  create-card <section-id> <name>   create a card
  edit-card <id> <name>             rename a card
  delete-card <id>                  delete a card
  reorder <section-id> <card-id>... move cards into a section in the given order
  favorites                         list favorites
  favorite <board-id>               favorite a board
  unfavorite <id>                   remove a favorite
  watch                             refresh on a schedule and print state changes
`

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	m := metrics.NewWithLogger(logger)
	store := state.New(logger, m)
	api := client.New(cfg.API.BaseURL, cfg.API.Timeout, logger, m)
	services := service.NewServices(api, store, m, logger)

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()
	app := &app{cfg: cfg, logger: logger, metrics: m, store: store, services: services}
	if err := app.run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "boardctl: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	metrics  *metrics.Metrics
	store    *state.Store
	services *service.Services
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "boards":
		return report(a.services.Boards.FetchBoards(ctx), func(boards []domain.Board) {
			for _, b := range boards {
				fmt.Printf("%d\t%s\n", b.ID, b.Name)
			}
		})
	case "board":
		id, err := intArg(args, 0, "board id")
		if err != nil {
			return err
		}
		return report(a.services.Boards.FetchBoardDetail(ctx, id), printBoardDetail)
	case "create-board":
		name, err := stringArg(args, 0, "board name")
		if err != nil {
			return err
		}
		return report(a.services.Boards.CreateBoard(ctx, &dto.CreateBoardRequest{Name: name}), func(b domain.Board) {
			fmt.Printf("created board %d\t%s\n", b.ID, b.Name)
		})
	case "edit-board":
		id, err := intArg(args, 0, "board id")
		if err != nil {
			return err
		}
		name, err := stringArg(args, 1, "board name")
		if err != nil {
			return err
		}
		return report(a.services.Boards.EditBoard(ctx, id, &dto.UpdateBoardRequest{Name: name}), func(b domain.Board) {
			fmt.Printf("updated board %d\t%s\n", b.ID, b.Name)
		})
	case "delete-board":
		id, err := intArg(args, 0, "board id")
		if err != nil {
			return err
		}
		return report(a.services.Boards.DeleteBoard(ctx, id), printMessage)
	case "sections":
		id, err := intArg(args, 0, "board id")
		if err != nil {
			return err
		}
		return report(a.services.Sections.FetchBoardSections(ctx, id), func(sections []domain.Section) {
			for _, s := range sections {
				fmt.Printf("%d\t%s\n", s.ID, s.Title)
			}
		})
	case "create-section":
		id, err := intArg(args, 0, "board id")
		if err != nil {
			return err
		}
		title, err := stringArg(args, 1, "section title")
		if err != nil {
			return err
		}
		return report(a.services.Sections.CreateSection(ctx, id, &dto.CreateSectionRequest{Title: title}), func(s domain.Section) {
			fmt.Printf("created section %d\t%s\n", s.ID, s.Title)
		})
	case "edit-section":
		id, err := intArg(args, 0, "section id")
		if err != nil {
			return err
		}
		title, err := stringArg(args, 1, "section title")
		if err != nil {
			return err
		}
		return report(a.services.Sections.EditSection(ctx, id, &dto.UpdateSectionRequest{Title: title}), func(s domain.Section) {
			fmt.Printf("updated section %d\t%s\n", s.ID, s.Title)
		})
	case "delete-section":
		id, err := intArg(args, 0, "section id")
		if err != nil {
			return err
		}
		return report(a.services.Sections.DeleteSection(ctx, id), printMessage)
	case "cards":
		id, err := intArg(args, 0, "section id")
		if err != nil {
			return err
		}
		return report(a.services.Cards.FetchSectionCards(ctx, id), func(cards []domain.Card) {
			for _, c := range cards {
				fmt.Printf("%d\t%d\t%s\n", c.ID, c.Order, c.Name)
			}
		})
	case "create-card":
		id, err := intArg(args, 0, "section id")
		if err != nil {
			return err
		}
		name, err := stringArg(args, 1, "card name")
		if err != nil {
			return err
		}
		return report(a.services.Cards.CreateCard(ctx, id, &dto.CreateCardRequest{Name: name}), func(c domain.Card) {
			fmt.Printf("created card %d\t%s\n", c.ID, c.Name)
		})
	case "edit-card":
		id, err := intArg(args, 0, "card id")
		if err != nil {
			return err
		}
		name, err := stringArg(args, 1, "card name")
		if err != nil {
			return err
		}
		return report(a.services.Cards.EditCard(ctx, id, &dto.UpdateCardRequest{Name: name}), func(c domain.Card) {
			fmt.Printf("updated card %d\t%s\n", c.ID, c.Name)
		})
	case "delete-card":
		id, err := intArg(args, 0, "card id")
		if err != nil {
			return err
		}
		return report(a.services.Cards.DeleteCard(ctx, id), printMessage)
	case "reorder":
		sectionID, err := intArg(args, 0, "section id")
		if err != nil {
			return err
		}
		if len(args) < 2 {
			return fmt.Errorf("missing card ids")
		}
		positions := make([]domain.CardPosition, 0, len(args)-1)
		for i, raw := range args[1:] {
			cardID, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("invalid card id %q", raw)
			}
			positions = append(positions, domain.CardPosition{ID: cardID, Order: i, CardSectionID: sectionID})
		}
		return report(a.services.Cards.ReorderCards(ctx, positions), func(positions []domain.CardPosition) {
			fmt.Printf("reordered %d cards\n", len(positions))
		})
	case "favorites":
		return report(a.services.Favorites.FetchFavorites(ctx), func(favorites []domain.Favorite) {
			for _, f := range favorites {
				fmt.Printf("%d\tboard %d\t%s\n", f.ID, f.BoardID, f.Board.Name)
			}
		})
	case "favorite":
		id, err := intArg(args, 0, "board id")
		if err != nil {
			return err
		}
		return report(a.services.Favorites.CreateFavorite(ctx, id), func(f domain.Favorite) {
			fmt.Printf("favorited board %d (favorite %d)\n", f.BoardID, f.ID)
		})
	case "unfavorite":
		id, err := intArg(args, 0, "favorite id")
		if err != nil {
			return err
		}
		return report(a.services.Favorites.DeleteFavorite(ctx, id), printMessage)
	case "watch":
		return a.watch()
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

// watch runs the background refresh schedule and prints board counts as
// state snapshots change
func (a *app) watch() error {
	unsubscribe := a.store.Subscribe(func(s state.State) {
		fmt.Printf("state: %d boards, %d sections, %d cards, %d favorites\n",
			len(s.Boards.AllBoards),
			len(s.Sections.BoardSections),
			len(s.Cards.AllCards),
			len(s.Favorites.UserFavorites),
		)
	})
	defer unsubscribe()

	refreshJob := job.NewRefreshJob(a.services, a.metrics, a.logger)
	refreshJob.Run()

	c := cron.New()
	if _, err := c.AddJob(a.cfg.Refresh.Schedule, refreshJob); err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", a.cfg.Refresh.Schedule, err)
	}
	c.Start()
	defer c.Stop()

	a.logger.Info("Watching for changes", zap.String("schedule", a.cfg.Refresh.Schedule))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	return nil
}

// report prints a pipeline result or surfaces its error with details
func report[T any](res response.Result[T], print func(T)) error {
	if res.IsOk() {
		print(res.Value())
		return nil
	}
	apiErr := res.Err()
	for field, message := range apiErr.Details {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", field, message)
	}
	return fmt.Errorf("%s", apiErr.Message)
}

func printBoardDetail(b domain.Board) {
	fmt.Printf("board %d\t%s\n", b.ID, b.Name)
	for _, s := range b.Sections {
		fmt.Printf("  section %d\t%s\n", s.ID, s.Title)
		for _, c := range s.Cards {
			fmt.Printf("    card %d\t%s\n", c.ID, c.Name)
		}
	}
}

func printMessage(msg dto.MessageResponse) {
	fmt.Println(msg.Message)
}

func intArg(args []string, i int, name string) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("missing %s", name)
	}
	id, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, args[i])
	}
	return id, nil
}

func stringArg(args []string, i int, name string) (string, error) {
	if i >= len(args) {
		return "", fmt.Errorf("missing %s", name)
	}
	return args[i], nil
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
